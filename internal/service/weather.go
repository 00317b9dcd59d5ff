package service

import (
	"context"
	"errors"
	"fmt"
	"net"
	"strings"

	"smart_thermostat/internal/models"
	"smart_thermostat/internal/thermostat"
	"smart_thermostat/internal/weather"
)

const (
	statusTypeLocation = "Type a location first."
	statusTimedOut     = "Weather request timed out. Try again."
	statusStale        = "Location changed during lookup; result discarded."
)

var ErrInvalidCoordinates = errors.New("invalid coordinates")

// WeatherService refreshes outdoor readings. Provider calls run without the
// state lock; results are written back only if the location is unchanged.
type WeatherService struct {
	session  *Session
	provider weather.Provider
	events   *recorder
}

func NewWeatherService(session *Session, provider weather.Provider, events *recorder) *WeatherService {
	return &WeatherService{session: session, provider: provider, events: events}
}

// Update geocodes the current location, picks the selected candidate and
// fetches its current conditions. Failures end up in the status string.
func (s *WeatherService) Update(ctx context.Context) WeatherReport {
	snap := s.session.Snapshot()
	query := strings.TrimSpace(snap.Location)
	if query == "" {
		return s.fail(ctx, snap.Location, statusTypeLocation)
	}

	places, err := s.provider.Search(ctx, query, weather.DefaultCandidates)
	if err != nil {
		return s.fail(ctx, snap.Location, fmt.Sprintf("Geocoding error: %v", err))
	}
	if len(places) == 0 {
		return s.fail(ctx, snap.Location,
			fmt.Sprintf("No matches for '%s'. Try a more complete address like 'Berkeley, California, USA'.", query))
	}

	idx := min(max(snap.GeoChoice, 0), len(places)-1)
	chosen := places[idx]
	place := chosen.Label()
	reading, werr := s.provider.Current(ctx, chosen.Latitude, chosen.Longitude)

	var report WeatherReport
	stale := false
	_ = s.session.update(func(st *models.ThermostatState) error {
		if st.Location != snap.Location {
			stale = true
			return nil
		}
		thermostat.SetGeoCandidates(st, places)
		if werr != nil {
			report = WeatherReport{Status: fmt.Sprintf("%s for %s", weatherErrorText(werr), place), Place: place}
			report.Message = report.Status
			thermostat.RecordWeatherFailure(st, report.Status)
		} else {
			report = WeatherReport{
				OK:      true,
				Status:  "Updated for " + place,
				Message: fmt.Sprintf("Weather updated! %s in %s", readingText(reading), place),
				Place:   place,
			}
			thermostat.RecordWeather(st, reading.TemperatureF, reading.HumidityPct, report.Status)
		}
		s.session.lastReply = report.Message
		return nil
	})
	if stale {
		return WeatherReport{Status: statusStale, Stale: true}
	}
	s.recordReport(ctx, report)
	return report
}

// SelectCandidate chooses which cached geocoding match the next Update uses.
func (s *WeatherService) SelectCandidate(_ context.Context, index int) (models.Place, error) {
	var p models.Place
	err := s.session.update(func(st *models.ThermostatState) error {
		var err error
		p, err = thermostat.SelectGeoCandidate(st, index)
		return err
	})
	return p, err
}

// Detect sets the location from device coordinates and fetches its weather.
// A failed reverse lookup falls back to the formatted coordinates.
func (s *WeatherService) Detect(ctx context.Context, lat, lon float64) (WeatherReport, error) {
	if lat < -90 || lat > 90 || lon < -180 || lon > 180 {
		return WeatherReport{}, ErrInvalidCoordinates
	}

	label := fmt.Sprintf("%.4f, %.4f", lat, lon)
	if places, err := s.provider.Search(ctx, fmt.Sprintf("%v,%v", lat, lon), 1); err == nil && len(places) > 0 {
		label = places[0].Label()
	}
	reading, werr := s.provider.Current(ctx, lat, lon)

	var report WeatherReport
	err := s.session.update(func(st *models.ThermostatState) error {
		if err := thermostat.SetLocation(st, label); err != nil {
			return err
		}
		if werr != nil {
			report = WeatherReport{Status: fmt.Sprintf("%s for %s", weatherErrorText(werr), label), Place: label}
			report.Message = report.Status
			thermostat.RecordWeatherFailure(st, report.Status)
		} else {
			report = WeatherReport{
				OK:      true,
				Status:  "GPS location: " + label,
				Message: fmt.Sprintf("Location detected! %s in %s", readingText(reading), label),
				Place:   label,
			}
			thermostat.RecordWeather(st, reading.TemperatureF, reading.HumidityPct, report.Status)
		}
		s.session.lastReply = report.Message
		return nil
	})
	if err != nil {
		return WeatherReport{}, err
	}
	s.events.record(ctx, models.EventLocationChange, "Location → "+label,
		map[string]any{"location": label, "lat": lat, "lon": lon})
	s.recordReport(ctx, report)
	return report, nil
}

// fail stores a lookup failure unless the location moved meanwhile.
func (s *WeatherService) fail(ctx context.Context, location, status string) WeatherReport {
	stale := false
	_ = s.session.update(func(st *models.ThermostatState) error {
		if st.Location != location {
			stale = true
			return nil
		}
		thermostat.RecordWeatherFailure(st, status)
		s.session.lastReply = status
		return nil
	})
	if stale {
		return WeatherReport{Status: statusStale, Stale: true}
	}
	report := WeatherReport{Status: status, Message: status}
	s.recordReport(ctx, report)
	return report
}

func (s *WeatherService) recordReport(ctx context.Context, r WeatherReport) {
	typ := models.EventWeatherUpdate
	if !r.OK {
		typ = models.EventError
	}
	s.events.record(ctx, typ, r.Status, map[string]any{"place": r.Place, "ok": r.OK})
}

// weatherErrorText maps a provider error to the status shown to the user.
func weatherErrorText(err error) string {
	var netErr net.Error
	switch {
	case errors.Is(err, weather.ErrNoTemperature):
		return "Weather data unavailable (no temperature in response)"
	case errors.Is(err, context.DeadlineExceeded), errors.As(err, &netErr) && netErr.Timeout():
		return statusTimedOut
	default:
		return "Weather API error: " + err.Error()
	}
}

func readingText(r weather.Reading) string {
	s := fmt.Sprintf("%.0f°F", r.TemperatureF)
	if r.HumidityPct != nil && *r.HumidityPct != 0 {
		s += fmt.Sprintf(", %.0f%% RH", *r.HumidityPct)
	}
	return s
}
