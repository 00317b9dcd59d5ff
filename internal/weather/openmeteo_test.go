package weather

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestSearch(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		if q.Get("name") != "Berkeley, CA" || q.Get("count") != "5" || q.Get("language") != "en" || q.Get("format") != "json" {
			t.Errorf("query = %v", q)
		}
		_, _ = w.Write([]byte(`{"results":[
			{"name":"Berkeley","admin1":"California","country":"United States","country_code":"US","latitude":37.87,"longitude":-122.27},
			{"name":"Berkeley Heights","admin1":"New Jersey","country":"United States","country_code":"US","latitude":40.67,"longitude":-74.43}
		]}`))
	}))
	defer srv.Close()

	c := NewOpenMeteo(Config{GeocodingURL: srv.URL})
	places, err := c.Search(context.Background(), "Berkeley, CA", 0)
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	if len(places) != 2 {
		t.Fatalf("got %d places", len(places))
	}
	if got := places[0].Label(); got != "Berkeley, California, United States (US)" {
		t.Fatalf("label = %q", got)
	}
	if places[1].Latitude != 40.67 {
		t.Fatalf("latitude = %v", places[1].Latitude)
	}
}

func TestSearch_NoResults(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"generationtime_ms":0.5}`))
	}))
	defer srv.Close()

	places, err := NewOpenMeteo(Config{GeocodingURL: srv.URL}).Search(context.Background(), "Nowhere", 3)
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	if len(places) != 0 {
		t.Fatalf("places = %v", places)
	}
}

func TestCurrent(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		if q.Get("latitude") != "37.87" || q.Get("longitude") != "-122.27" {
			t.Errorf("coords = %s,%s", q.Get("latitude"), q.Get("longitude"))
		}
		if q.Get("temperature_unit") != "fahrenheit" || q.Get("current") != "temperature_2m,relative_humidity_2m" {
			t.Errorf("query = %v", q)
		}
		_, _ = w.Write([]byte(`{"current":{"temperature_2m":61.3,"relative_humidity_2m":70}}`))
	}))
	defer srv.Close()

	r, err := NewOpenMeteo(Config{ForecastURL: srv.URL}).Current(context.Background(), 37.87, -122.27)
	if err != nil {
		t.Fatalf("Current: %v", err)
	}
	if r.TemperatureF != 61.3 {
		t.Fatalf("temp = %v", r.TemperatureF)
	}
	if r.HumidityPct == nil || *r.HumidityPct != 70 {
		t.Fatalf("humidity = %v", r.HumidityPct)
	}
}

func TestCurrent_Errors(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		body    string
		wantIs  error
		wantSub string
	}{
		{name: "no temperature", status: http.StatusOK, body: `{"current":{"relative_humidity_2m":40}}`, wantIs: ErrNoTemperature},
		{name: "no current block", status: http.StatusOK, body: `{}`, wantIs: ErrNoTemperature},
		{name: "server error", status: http.StatusBadGateway, body: "upstream down", wantSub: "API error 502: upstream down"},
		{name: "bad json", status: http.StatusOK, body: `not json`, wantSub: "decode response"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tc.status)
				_, _ = w.Write([]byte(tc.body))
			}))
			defer srv.Close()

			_, err := NewOpenMeteo(Config{ForecastURL: srv.URL}).Current(context.Background(), 1, 2)
			if err == nil {
				t.Fatalf("expected error")
			}
			if tc.wantIs != nil && !errors.Is(err, tc.wantIs) {
				t.Fatalf("err = %v; want %v", err, tc.wantIs)
			}
			if tc.wantSub != "" && !strings.Contains(err.Error(), tc.wantSub) {
				t.Fatalf("err = %v; want substring %q", err, tc.wantSub)
			}
		})
	}
}
