package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

const (
	statusWeatherUpdated   = "weather_updated"
	statusWeatherFailed    = "weather_failed"
	statusCandidateChosen  = "candidate_selected"
	statusLocationDetected = "location_detected"
)

// SelectCandidateRequest picks one cached geocoding match.
type SelectCandidateRequest struct {
	Index *int `json:"index" binding:"required" example:"1"`
}

// DetectLocationRequest carries device coordinates.
type DetectLocationRequest struct {
	Latitude  *float64 `json:"latitude" binding:"required" example:"37.8716"`
	Longitude *float64 `json:"longitude" binding:"required" example:"-122.2727"`
}

// @Summary      Refresh outdoor weather
// @Description  Geocodes the current location, uses the selected candidate and fetches current conditions. Lookup failures are reported in the report status, not as HTTP errors.
// @Tags         weather
// @Produce      json
// @Success      200  {object}  map[string]interface{}  "status, report, state"
// @Router       /api/v1/weather/update [post]
func (h *Handler) updateWeather(c *gin.Context) {
	rep := h.services.Weather.Update(c.Request.Context())
	status := statusWeatherUpdated
	if !rep.OK {
		status = statusWeatherFailed
	}
	h.respondWithStatusAndState(c, status, gin.H{"report": rep})
}

// @Summary      Select geocoding candidate
// @Tags         weather
// @Accept       json
// @Produce      json
// @Param        body  body   SelectCandidateRequest  true  "Candidate index"
// @Success      200   {object}  map[string]interface{}  "status, place, state"
// @Failure      400   {object}  map[string]string
// @Router       /api/v1/weather/candidate [post]
func (h *Handler) selectCandidate(c *gin.Context) {
	var req SelectCandidateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": errInvalidBodyPref + err.Error()})
		return
	}
	place, err := h.services.Weather.SelectCandidate(c.Request.Context(), *req.Index)
	if err != nil {
		h.respondServiceError(c, "weather_select_candidate_failed", err, "index", *req.Index)
		return
	}
	h.respondWithStatusAndState(c, statusCandidateChosen, gin.H{"place": place, "label": place.Label()})
}

// @Summary      Detect location from coordinates
// @Tags         weather
// @Accept       json
// @Produce      json
// @Param        body  body   DetectLocationRequest  true  "Coordinates"
// @Success      200   {object}  map[string]interface{}  "status, report, state"
// @Failure      400   {object}  map[string]string
// @Router       /api/v1/weather/detect [post]
func (h *Handler) detectLocation(c *gin.Context) {
	var req DetectLocationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": errInvalidBodyPref + err.Error()})
		return
	}
	rep, err := h.services.Weather.Detect(c.Request.Context(), *req.Latitude, *req.Longitude)
	if err != nil {
		h.respondServiceError(c, "weather_detect_failed", err)
		return
	}
	h.respondWithStatusAndState(c, statusLocationDetected, gin.H{"report": rep})
}
