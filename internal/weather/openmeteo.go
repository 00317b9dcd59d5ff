// Package weather looks up places and current outdoor conditions from
// Open-Meteo. It is a read-only collaborator: it never touches thermostat
// state itself.
package weather

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/felixgeelhaar/fortify/circuitbreaker"

	"smart_thermostat/internal/models"
)

const (
	DefaultGeocodingURL = "https://geocoding-api.open-meteo.com/v1/search"
	DefaultForecastURL  = "https://api.open-meteo.com/v1/forecast"
	DefaultTimeout      = 10 * time.Second
	DefaultCandidates   = 5

	maxErrorBody = 1 << 10
)

// ErrNoTemperature means the forecast response carried no current temperature.
var ErrNoTemperature = errors.New("weather data unavailable (no temperature in response)")

// Reading is the current outdoor condition at a coordinate.
type Reading struct {
	TemperatureF float64
	HumidityPct  *float64
}

// Provider is the contract the weather service consumes.
type Provider interface {
	Search(ctx context.Context, name string, count int) ([]models.Place, error)
	Current(ctx context.Context, lat, lon float64) (Reading, error)
}

// Config configures an OpenMeteo client.
type Config struct {
	GeocodingURL string
	ForecastURL  string
	Timeout      time.Duration
}

// OpenMeteo is the Provider backed by the free Open-Meteo APIs.
type OpenMeteo struct {
	cfg        Config
	httpClient *http.Client
	searchCB   circuitbreaker.CircuitBreaker[[]models.Place]
	currentCB  circuitbreaker.CircuitBreaker[Reading]
}

var _ Provider = (*OpenMeteo)(nil)

// NewOpenMeteo creates a client; zero config fields take defaults.
func NewOpenMeteo(cfg Config) *OpenMeteo {
	if cfg.GeocodingURL == "" {
		cfg.GeocodingURL = DefaultGeocodingURL
	}
	if cfg.ForecastURL == "" {
		cfg.ForecastURL = DefaultForecastURL
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultTimeout
	}
	return &OpenMeteo{
		cfg:        cfg,
		httpClient: &http.Client{Timeout: cfg.Timeout},
		searchCB:   circuitbreaker.New[[]models.Place](breakerConfig()),
		currentCB:  circuitbreaker.New[Reading](breakerConfig()),
	}
}

func breakerConfig() circuitbreaker.Config {
	return circuitbreaker.Config{
		MaxRequests: 1,
		Interval:    time.Minute,
		Timeout:     30 * time.Second,
		ReadyToTrip: func(counts circuitbreaker.Counts) bool {
			return counts.ConsecutiveFailures >= 5
		},
	}
}

type geocodingResponse struct {
	Results []models.Place `json:"results"`
}

// Search returns up to count places matching name. Zero matches is not an error.
func (c *OpenMeteo) Search(ctx context.Context, name string, count int) ([]models.Place, error) {
	if count <= 0 {
		count = DefaultCandidates
	}
	q := url.Values{}
	q.Set("name", name)
	q.Set("count", strconv.Itoa(count))
	q.Set("language", "en")
	q.Set("format", "json")

	return c.searchCB.Execute(ctx, func(ctx context.Context) ([]models.Place, error) {
		var out geocodingResponse
		if err := c.getJSON(ctx, c.cfg.GeocodingURL, q, &out); err != nil {
			return nil, err
		}
		return out.Results, nil
	})
}

type forecastResponse struct {
	Current struct {
		Temperature *float64 `json:"temperature_2m"`
		Humidity    *float64 `json:"relative_humidity_2m"`
	} `json:"current"`
}

// Current returns the temperature in Fahrenheit and relative humidity.
func (c *OpenMeteo) Current(ctx context.Context, lat, lon float64) (Reading, error) {
	q := url.Values{}
	q.Set("latitude", strconv.FormatFloat(lat, 'f', -1, 64))
	q.Set("longitude", strconv.FormatFloat(lon, 'f', -1, 64))
	q.Set("current", "temperature_2m,relative_humidity_2m")
	q.Set("temperature_unit", "fahrenheit")
	q.Set("wind_speed_unit", "mph")

	return c.currentCB.Execute(ctx, func(ctx context.Context) (Reading, error) {
		var out forecastResponse
		if err := c.getJSON(ctx, c.cfg.ForecastURL, q, &out); err != nil {
			return Reading{}, err
		}
		if out.Current.Temperature == nil {
			return Reading{}, ErrNoTemperature
		}
		return Reading{TemperatureF: *out.Current.Temperature, HumidityPct: out.Current.Humidity}, nil
	})
}

func (c *OpenMeteo) getJSON(ctx context.Context, base string, q url.Values, dst any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, base+"?"+q.Encode(), nil)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		b, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return fmt.Errorf("API error %d: %s", resp.StatusCode, strings.TrimSpace(string(b)))
	}
	if err := json.NewDecoder(resp.Body).Decode(dst); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}
