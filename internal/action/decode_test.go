package action

import (
	"math"
	"testing"

	"smart_thermostat/internal/models"
)

func TestDecode(t *testing.T) {
	tests := []struct {
		name       string
		in         string
		want       Action
		wantReason string
		wantErr    bool
	}{
		{name: "mode", in: `{"type":"set_hvac_mode","mode":"Auto"}`, want: SetHvacMode{Mode: models.HvacAuto}},
		{name: "bad mode", in: `{"type":"set_hvac_mode","mode":"Turbo"}`, wantReason: ReasonInvalidMode},
		{name: "fan", in: `{"type":"set_fan","fan":"On"}`, want: SetFan{Fan: models.FanOn}},
		{name: "bad fan", in: `{"type":"set_fan","fan":"Off"}`, wantReason: ReasonInvalidFan},
		{name: "comfort", in: `{"type":"set_comfort","comfort":"Vacation"}`, want: SetComfort{Comfort: "Vacation"}},
		{name: "missing comfort", in: `{"type":"set_comfort"}`, wantReason: ReasonInvalidComfort},
		{name: "setpoint float truncates", in: `{"type":"set_setpoint","target":"heat","value":70.9}`, want: SetSetpoint{Target: models.TargetHeat, Value: 70}},
		{name: "setpoint negative float", in: `{"type":"set_setpoint","target":"heat","value":-3.7}`, want: SetSetpoint{Target: models.TargetHeat, Value: -3}},
		{name: "setpoint string", in: `{"type":"set_setpoint","target":"cool","value":" 72 "}`, want: SetSetpoint{Target: models.TargetCool, Value: 72}},
		{name: "setpoint exponent saturates", in: `{"type":"set_setpoint","target":"cool","value":1e10}`, want: SetSetpoint{Target: models.TargetCool, Value: math.MaxInt32}},
		{name: "setpoint large negative saturates", in: `{"type":"set_setpoint","target":"heat","value":-3000000000}`, want: SetSetpoint{Target: models.TargetHeat, Value: math.MinInt32}},
		{name: "setpoint large string saturates", in: `{"type":"set_setpoint","target":"cool","value":"99999999999999999999"}`, want: SetSetpoint{Target: models.TargetCool, Value: math.MaxInt32}},
		{name: "setpoint fractional string", in: `{"type":"set_setpoint","target":"cool","value":"72.5"}`, wantReason: ReasonInvalidValue},
		{name: "setpoint non-numeric string", in: `{"type":"set_setpoint","target":"cool","value":"warm"}`, wantReason: ReasonInvalidValue},
		{name: "setpoint missing value", in: `{"type":"set_setpoint","target":"cool"}`, wantReason: ReasonInvalidValue},
		{name: "setpoint bad target", in: `{"type":"set_setpoint","target":"warm","value":70}`, wantReason: ReasonInvalidTarget},
		{name: "setpoint non-string comfort", in: `{"type":"set_setpoint","target":"heat","value":70,"comfort":5}`, wantReason: ReasonInvalidComfort},
		{name: "location trimmed", in: `{"type":"set_location","location":"  Oakland "}`, want: SetLocation{Location: "Oakland"}},
		{name: "blank location", in: `{"type":"set_location","location":"  "}`, wantReason: ReasonInvalidLocation},
		{name: "unknown type", in: `{"type":"reboot"}`, wantReason: ReasonUnknownType},
		{name: "missing type", in: `{"mode":"Cool"}`, wantReason: ReasonUnknownType},
		{name: "array", in: `[1,2]`, wantErr: true},
		{name: "null", in: `null`, wantErr: true},
		{name: "garbage", in: `{nope}`, wantErr: true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := Decode([]byte(tc.in))
			if tc.wantErr {
				if err == nil {
					t.Fatalf("expected error, got %#v", got)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if tc.wantReason != "" {
				u, ok := got.(Unknown)
				if !ok || u.Reason != tc.wantReason {
					t.Fatalf("got %#v; want Unknown(%q)", got, tc.wantReason)
				}
				if string(u.Raw) != tc.in {
					t.Fatalf("raw = %s", u.Raw)
				}
				return
			}
			if got != tc.want {
				t.Fatalf("got %#v; want %#v", got, tc.want)
			}
		})
	}
}

func TestDescribe(t *testing.T) {
	cases := []struct {
		a    Action
		want string
	}{
		{SetHvacMode{Mode: models.HvacCool}, "Proposed change: HVAC mode → Cool"},
		{SetFan{Fan: models.FanOn}, "Proposed change: Fan → On"},
		{SetComfort{Comfort: "Home"}, "Proposed change: Comfort → Home"},
		{SetSetpoint{Target: models.TargetHeat, Value: 70}, "Proposed change: Away heat setpoint → 70"},
		{SetSetpoint{Target: models.TargetCool, Value: 74, Comfort: "Home"}, "Proposed change: Home cool setpoint → 74"},
		{SetLocation{Location: "Oakland"}, "Proposed change: Location → Oakland"},
		{Unknown{Type: "reboot"}, "Proposed change: (unknown)"},
	}
	for _, c := range cases {
		if got := Describe(c.a, "Away"); got != c.want {
			t.Errorf("Describe(%#v) = %q; want %q", c.a, got, c.want)
		}
	}
}
