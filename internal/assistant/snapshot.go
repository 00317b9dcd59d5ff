package assistant

import "smart_thermostat/internal/models"

// Controls enumerates the values a producer may use in actions.
type Controls struct {
	HvacModes []models.HvacMode       `json:"hvac_modes"`
	FanToggle []models.FanSetting     `json:"fan_toggle"`
	Comforts  []string                `json:"comforts"`
	Setpoints []models.SetpointTarget `json:"setpoints"`
}

// Snapshot is the read-only state context sent with every request.
type Snapshot struct {
	IndoorTempF        int               `json:"indoor_temp_f"`
	OutdoorTempF       *float64          `json:"outdoor_temp_f"`
	OutdoorHumidityPct *float64          `json:"outdoor_humidity_pct"`
	IndoorHumidityPct  int               `json:"indoor_humidity_pct"`
	AirQuality         string            `json:"air_quality"`
	HvacMode           models.HvacMode   `json:"hvac_mode"`
	Fan                models.FanSetting `json:"fan"`
	Comfort            string            `json:"comfort"`
	SetpointsActive    *models.Setpoint  `json:"setpoints_active"`
	Location           string            `json:"location"`
	ControlsAvailable  Controls          `json:"controls_available"`
}

// BuildSnapshot projects st onto the producer-facing snapshot.
func BuildSnapshot(st *models.ThermostatState) Snapshot {
	var active *models.Setpoint
	if sp, ok := st.Setpoints[st.Comfort]; ok {
		active = &sp
	}
	return Snapshot{
		IndoorTempF:        st.IndoorTempF,
		OutdoorTempF:       st.OutdoorTempF,
		OutdoorHumidityPct: st.OutdoorHumidityPct,
		IndoorHumidityPct:  st.HumidityPct,
		AirQuality:         st.AirQuality,
		HvacMode:           st.HvacMode,
		Fan:                st.Fan(),
		Comfort:            st.Comfort,
		SetpointsActive:    active,
		Location:           st.Location,
		ControlsAvailable: Controls{
			HvacModes: models.HvacModes,
			FanToggle: models.FanSettings,
			Comforts:  st.ComfortNames(),
			Setpoints: models.SetpointTargets,
		},
	}
}
