package service

import (
	"context"

	"smart_thermostat/internal/models"
)

type MonitoringService struct {
	session *Session
}

func NewMonitoringService(session *Session) *MonitoringService {
	return &MonitoringService{session: session}
}

// GetState returns a deep copy of the live state; callers may keep or modify
// it freely.
func (s *MonitoringService) GetState(_ context.Context) (models.ThermostatState, error) {
	st := s.session.Snapshot()
	st.UpdatedAt = normalizeToUTC(st.UpdatedAt)
	return st, nil
}
