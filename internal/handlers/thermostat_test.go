package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"smart_thermostat/internal/models"
	"smart_thermostat/internal/service"
	"smart_thermostat/internal/thermostat"
)

func doJSON(t *testing.T, h http.Handler, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	return w
}

func TestThermostatHandlers_GetState(t *testing.T) {
	st := *models.NewThermostatState()
	r := newTestRouter(&service.Service{Monitoring: &mockMonitoring{state: st}})

	w := doJSON(t, r, http.MethodGet, "/api/v1/thermostat/state", "")
	if w.Code != http.StatusOK {
		t.Fatalf("status=%d body=%s", w.Code, w.Body.String())
	}
	var got map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	for _, key := range []string{"indoor_temp_f", "hvac_mode", "comfort", "setpoints", "location", "weather_status"} {
		if _, ok := got[key]; !ok {
			t.Errorf("missing key %q", key)
		}
	}
}

func TestThermostatHandlers_Mutations(t *testing.T) {
	tests := []struct {
		name   string
		method string
		path   string
		body   string
		status string
		check  func(t *testing.T, m *mockControls)
	}{
		{
			name: "mode", method: http.MethodPost, path: "/api/v1/thermostat/mode",
			body: `{"mode":"Cool"}`, status: statusModeSet,
			check: func(t *testing.T, m *mockControls) {
				if m.lastMode != models.HvacCool {
					t.Errorf("mode = %q", m.lastMode)
				}
			},
		},
		{
			name: "fan", method: http.MethodPost, path: "/api/v1/thermostat/fan",
			body: `{"fan":"On"}`, status: statusFanSet,
			check: func(t *testing.T, m *mockControls) {
				if m.lastFan != models.FanOn {
					t.Errorf("fan = %q", m.lastFan)
				}
			},
		},
		{
			name: "setpoint with zero value", method: http.MethodPost, path: "/api/v1/thermostat/setpoint",
			body: `{"target":"heat","value":0}`, status: statusSetpointSet,
			check: func(t *testing.T, m *mockControls) {
				want := service.SetpointParams{Target: models.TargetHeat, Value: 0}
				if m.lastSetpoint != want {
					t.Errorf("params = %+v", m.lastSetpoint)
				}
			},
		},
		{
			name: "dial step", method: http.MethodPost, path: "/api/v1/thermostat/dial/step",
			body: `{"delta":-1}`, status: statusSetpointSet,
			check: func(t *testing.T, m *mockControls) {
				if m.lastDelta != -1 {
					t.Errorf("delta = %d", m.lastDelta)
				}
			},
		},
		{
			name: "comfort preset", method: http.MethodPut, path: "/api/v1/thermostat/comforts/Vacation",
			body: `{"heat":60,"cool":85}`, status: statusSetpointSet,
			check: func(t *testing.T, m *mockControls) {
				if m.lastComfort != "Vacation" || m.lastHeat != 60 || m.lastCool != 85 {
					t.Errorf("comfort = %q %d/%d", m.lastComfort, m.lastHeat, m.lastCool)
				}
			},
		},
		{
			name: "location", method: http.MethodPost, path: "/api/v1/thermostat/location",
			body: `{"location":"Oakland, CA"}`, status: statusLocationSet,
			check: func(t *testing.T, m *mockControls) {
				if m.lastLocation != "Oakland, CA" {
					t.Errorf("location = %q", m.lastLocation)
				}
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			ctl := &mockControls{}
			r := newTestRouter(&service.Service{Controls: ctl, Monitoring: &mockMonitoring{}})
			w := doJSON(t, r, tc.method, tc.path, tc.body)
			if w.Code != http.StatusOK {
				t.Fatalf("status=%d body=%s", w.Code, w.Body.String())
			}
			var resp struct {
				Status string `json:"status"`
			}
			_ = json.Unmarshal(w.Body.Bytes(), &resp)
			if resp.Status != tc.status {
				t.Fatalf("status = %q; want %q", resp.Status, tc.status)
			}
			tc.check(t, ctl)
		})
	}
}

func TestThermostatHandlers_BadInput(t *testing.T) {
	tests := []struct {
		name  string
		path  string
		body  string
		err   error
		calls int
	}{
		{name: "malformed body", path: "/api/v1/thermostat/mode", body: `{"mode":`},
		{name: "missing field", path: "/api/v1/thermostat/setpoint", body: `{"target":"heat"}`},
		{name: "invalid mode", path: "/api/v1/thermostat/mode", body: `{"mode":"Turbo"}`, err: thermostat.ErrInvalidMode, calls: 1},
		{name: "unknown comfort", path: "/api/v1/thermostat/comfort", body: `{"comfort":"Vacation"}`, err: thermostat.ErrInvalidComfort, calls: 1},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			ctl := &mockControls{err: tc.err}
			r := newTestRouter(&service.Service{Controls: ctl, Monitoring: &mockMonitoring{}})
			w := doJSON(t, r, http.MethodPost, tc.path, tc.body)
			if w.Code != http.StatusBadRequest {
				t.Fatalf("status=%d body=%s", w.Code, w.Body.String())
			}
			if ctl.calls != tc.calls {
				t.Fatalf("service calls = %d; want %d", ctl.calls, tc.calls)
			}
		})
	}
}
