package handlers

import (
	"errors"
	"net/http"

	"smart_thermostat/internal/models"
	"smart_thermostat/internal/service"
	"smart_thermostat/internal/thermostat"

	"github.com/gin-gonic/gin"
)

// Common response/status constants to avoid magic strings and typos.
const (
	statusOK          = "ok"
	statusModeSet     = "mode_set"
	statusFanSet      = "fan_set"
	statusComfortSet  = "comfort_set"
	statusSetpointSet = "setpoint_set"
	statusDialSet     = "dial_set"
	statusLocationSet = "location_set"

	errGetState        = "failed to load state"
	errInvalidBodyPref = "invalid body: "
)

// Centralized error logging and response.
func (h *Handler) logAndJSONError(c *gin.Context, httpCode int, userMsg, logKey string, err error, kv ...interface{}) {
	if h.log != nil && err != nil {
		fields := append([]interface{}{"err", err}, kv...)
		h.log.Errorw(logKey, fields...)
	}
	c.JSON(httpCode, gin.H{"error": userMsg})
}

// respondServiceError maps input validation failures to 400 and everything
// else to 500.
func (h *Handler) respondServiceError(c *gin.Context, logKey string, err error, kv ...interface{}) {
	if isInvalidInput(err) {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	h.logAndJSONError(c, http.StatusInternalServerError, "internal error", logKey, err, kv...)
}

func isInvalidInput(err error) bool {
	for _, target := range []error{
		thermostat.ErrInvalidMode,
		thermostat.ErrInvalidFan,
		thermostat.ErrInvalidComfort,
		thermostat.ErrInvalidTarget,
		thermostat.ErrInvalidLocation,
		thermostat.ErrInvalidChoice,
		service.ErrInvalidCoordinates,
		service.ErrEmptyMessage,
		service.ErrInvalidTimeRange,
		service.ErrInvalidEventType,
		service.ErrInvalidOutcome,
	} {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}

// Respond with a status and include current state if available (best-effort).
func (h *Handler) respondWithStatusAndState(c *gin.Context, status string, extra gin.H) {
	ctx := c.Request.Context()
	resp := gin.H{"status": status}
	for k, v := range extra {
		resp[k] = v
	}
	st, err := h.services.Monitoring.GetState(ctx)
	if err == nil {
		resp["state"] = st
	}
	c.JSON(http.StatusOK, resp)
}

// SetModeRequest is the payload of POST /thermostat/mode.
type SetModeRequest struct {
	// Allowed: Off, Heat, Cool, Auto, Aux
	Mode string `json:"mode" binding:"required" example:"Cool"`
}

// SetFanRequest is the payload of POST /thermostat/fan.
type SetFanRequest struct {
	// Allowed: Auto, On
	Fan string `json:"fan" binding:"required" example:"On"`
}

// SetComfortRequest is the payload of POST /thermostat/comfort.
type SetComfortRequest struct {
	Comfort string `json:"comfort" binding:"required" example:"Home"`
}

// SetSetpointRequest is the payload of POST /thermostat/setpoint.
type SetSetpointRequest struct {
	// Comfort to edit; empty means the active comfort. Created if missing.
	Comfort string `json:"comfort,omitempty" example:"Home"`
	Target  string `json:"target" binding:"required" example:"heat"`
	// Clamped to [45, 90]
	Value *int `json:"value" binding:"required" example:"70"`
}

// SetDialRequest is the payload of POST /thermostat/dial.
type SetDialRequest struct {
	Target string `json:"target" binding:"required" example:"cool"`
}

// StepDialRequest is the payload of POST /thermostat/dial/step.
type StepDialRequest struct {
	Delta *int `json:"delta" binding:"required" example:"-1"`
}

// SetLocationRequest is the payload of POST /thermostat/location.
type SetLocationRequest struct {
	Location string `json:"location" binding:"required" example:"Berkeley, California, USA"`
}

// ComfortSetpointsRequest is the payload of PUT /thermostat/comforts/{name}.
type ComfortSetpointsRequest struct {
	Heat *int `json:"heat" binding:"required" example:"68"`
	Cool *int `json:"cool" binding:"required" example:"76"`
}

// @Summary      Health check
// @Tags         system
// @Produce      json
// @Success      200  {object}  map[string]string
// @Router       /health [get]
func (h *Handler) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": statusOK,
	})
}

// @Summary      Get thermostat state
// @Tags         thermostat
// @Produce      json
// @Success      200  {object}  models.ThermostatState
// @Failure      500  {object}  map[string]string
// @Router       /api/v1/thermostat/state [get]
func (h *Handler) getState(c *gin.Context) {
	ctx := c.Request.Context()
	st, err := h.services.Monitoring.GetState(ctx)
	if err != nil {
		h.logAndJSONError(c, http.StatusInternalServerError, errGetState, "thermostat_get_state_failed", err)
		return
	}
	c.JSON(http.StatusOK, st)
}

// @Summary      Set HVAC mode
// @Tags         thermostat
// @Accept       json
// @Produce      json
// @Param        body  body   SetModeRequest  true  "Mode payload"
// @Success      200   {object}  map[string]interface{}  "status, mode, state"
// @Failure      400   {object}  map[string]string
// @Router       /api/v1/thermostat/mode [post]
func (h *Handler) setMode(c *gin.Context) {
	var req SetModeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": errInvalidBodyPref + err.Error()})
		return
	}
	if err := h.services.Controls.SetHvacMode(c.Request.Context(), models.HvacMode(req.Mode)); err != nil {
		h.respondServiceError(c, "thermostat_set_mode_failed", err, "mode", req.Mode)
		return
	}
	h.respondWithStatusAndState(c, statusModeSet, gin.H{"mode": req.Mode})
}

// @Summary      Set fan
// @Tags         thermostat
// @Accept       json
// @Produce      json
// @Param        body  body   SetFanRequest  true  "Fan payload"
// @Success      200   {object}  map[string]interface{}
// @Failure      400   {object}  map[string]string
// @Router       /api/v1/thermostat/fan [post]
func (h *Handler) setFan(c *gin.Context) {
	var req SetFanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": errInvalidBodyPref + err.Error()})
		return
	}
	if err := h.services.Controls.SetFan(c.Request.Context(), models.FanSetting(req.Fan)); err != nil {
		h.respondServiceError(c, "thermostat_set_fan_failed", err, "fan", req.Fan)
		return
	}
	h.respondWithStatusAndState(c, statusFanSet, gin.H{"fan": req.Fan})
}

// @Summary      Select comfort preset
// @Description  The preset must already exist.
// @Tags         thermostat
// @Accept       json
// @Produce      json
// @Param        body  body   SetComfortRequest  true  "Comfort payload"
// @Success      200   {object}  map[string]interface{}
// @Failure      400   {object}  map[string]string
// @Router       /api/v1/thermostat/comfort [post]
func (h *Handler) setComfort(c *gin.Context) {
	var req SetComfortRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": errInvalidBodyPref + err.Error()})
		return
	}
	if err := h.services.Controls.SetComfort(c.Request.Context(), req.Comfort); err != nil {
		h.respondServiceError(c, "thermostat_set_comfort_failed", err, "comfort", req.Comfort)
		return
	}
	h.respondWithStatusAndState(c, statusComfortSet, gin.H{"comfort": req.Comfort})
}

// @Summary      Set one setpoint
// @Description  Value is clamped to [45, 90]; a missing comfort is created with defaults 66/78.
// @Tags         thermostat
// @Accept       json
// @Produce      json
// @Param        body  body   SetSetpointRequest  true  "Setpoint payload"
// @Success      200   {object}  map[string]interface{}  "status, value, state"
// @Failure      400   {object}  map[string]string
// @Router       /api/v1/thermostat/setpoint [post]
func (h *Handler) setSetpoint(c *gin.Context) {
	var req SetSetpointRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": errInvalidBodyPref + err.Error()})
		return
	}
	v, err := h.services.Controls.SetSetpoint(c.Request.Context(), service.SetpointParams{
		Comfort: req.Comfort,
		Target:  models.SetpointTarget(req.Target),
		Value:   *req.Value,
	})
	if err != nil {
		h.respondServiceError(c, "thermostat_set_setpoint_failed", err, "target", req.Target)
		return
	}
	h.respondWithStatusAndState(c, statusSetpointSet, gin.H{"value": v})
}

// @Summary      Choose dial target
// @Tags         thermostat
// @Accept       json
// @Produce      json
// @Param        body  body   SetDialRequest  true  "heat or cool"
// @Success      200   {object}  map[string]interface{}
// @Failure      400   {object}  map[string]string
// @Router       /api/v1/thermostat/dial [post]
func (h *Handler) setDialTarget(c *gin.Context) {
	var req SetDialRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": errInvalidBodyPref + err.Error()})
		return
	}
	if err := h.services.Controls.SetDialTarget(c.Request.Context(), models.SetpointTarget(req.Target)); err != nil {
		h.respondServiceError(c, "thermostat_set_dial_failed", err, "target", req.Target)
		return
	}
	h.respondWithStatusAndState(c, statusDialSet, gin.H{"target": req.Target})
}

// @Summary      Step the dial
// @Tags         thermostat
// @Accept       json
// @Produce      json
// @Param        body  body   StepDialRequest  true  "Delta in °F"
// @Success      200   {object}  map[string]interface{}  "status, value, state"
// @Failure      400   {object}  map[string]string
// @Router       /api/v1/thermostat/dial/step [post]
func (h *Handler) stepDial(c *gin.Context) {
	var req StepDialRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": errInvalidBodyPref + err.Error()})
		return
	}
	v, err := h.services.Controls.StepDial(c.Request.Context(), *req.Delta)
	if err != nil {
		h.respondServiceError(c, "thermostat_step_dial_failed", err, "delta", *req.Delta)
		return
	}
	h.respondWithStatusAndState(c, statusSetpointSet, gin.H{"value": v})
}

// @Summary      Set location
// @Description  Clears outdoor readings and cached geocoding candidates.
// @Tags         thermostat
// @Accept       json
// @Produce      json
// @Param        body  body   SetLocationRequest  true  "Location payload"
// @Success      200   {object}  map[string]interface{}
// @Failure      400   {object}  map[string]string
// @Router       /api/v1/thermostat/location [post]
func (h *Handler) setLocation(c *gin.Context) {
	var req SetLocationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": errInvalidBodyPref + err.Error()})
		return
	}
	if err := h.services.Controls.SetLocation(c.Request.Context(), req.Location); err != nil {
		h.respondServiceError(c, "thermostat_set_location_failed", err)
		return
	}
	h.respondWithStatusAndState(c, statusLocationSet, gin.H{})
}

// @Summary      Create or replace a comfort preset
// @Tags         thermostat
// @Accept       json
// @Produce      json
// @Param        name  path   string                   true  "Comfort name"
// @Param        body  body   ComfortSetpointsRequest  true  "Heat and cool setpoints"
// @Success      200   {object}  map[string]interface{}  "status, setpoint, state"
// @Failure      400   {object}  map[string]string
// @Router       /api/v1/thermostat/comforts/{name} [put]
func (h *Handler) putComfort(c *gin.Context) {
	var req ComfortSetpointsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": errInvalidBodyPref + err.Error()})
		return
	}
	name := c.Param("name")
	sp, err := h.services.Controls.SetComfortSetpoints(c.Request.Context(), name, *req.Heat, *req.Cool)
	if err != nil {
		h.respondServiceError(c, "thermostat_put_comfort_failed", err, "comfort", name)
		return
	}
	h.respondWithStatusAndState(c, statusSetpointSet, gin.H{"comfort": name, "setpoint": sp})
}
