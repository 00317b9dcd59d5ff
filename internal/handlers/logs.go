package handlers

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"smart_thermostat/internal/service"

	"github.com/gin-gonic/gin"
)

const (
	errFromInvalid = "invalid 'from' time; use RFC3339 or YYYY-MM-DD"
	errToInvalid   = "invalid 'to' time; use RFC3339 or YYYY-MM-DD"
	errLoadLogs    = "failed to load logs"

	layoutDateTime = "2006-01-02 15:04:05"
	layoutDate     = "2006-01-02"
)

// @Summary      List thermostat events
// @Description  Filter by date (RFC3339, 'YYYY-MM-DD HH:MM:SS', or 'YYYY-MM-DD'), event type, or how an assistant proposal ended. A date-only 'to' covers that whole day.
// @Tags         logs
// @Produce      json
// @Param        from     query   string  false  "Start of range"  example(2026-10-01)
// @Param        to       query   string  false  "End of range; date-only means end of day"  example(2026-10-31)
// @Param        type     query   string  false  "Event type"  Enums(MODE_CHANGE,FAN_CHANGE,COMFORT_CHANGE,SETPOINT_CHANGE,LOCATION_CHANGE,WEATHER_UPDATE,ACTION_PROPOSED,ACTION_CONFIRMED,ACTION_CANCELLED,INDOOR_DRIFT,ERROR)
// @Param        outcome  query   string  false  "Proposal outcome; selects the matching ACTION_* events"  Enums(proposed,confirmed,cancelled)
// @Success      200   {object}  map[string]interface{}  "count, by_type, events"
// @Failure      400   {object}  map[string]string
// @Failure      500   {object}  map[string]string
// @Router       /api/v1/logs [get]
func (h *Handler) getLogs(c *gin.Context) {
	filter, msg := logFilterFromQuery(c)
	if msg != "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": msg})
		return
	}

	events, err := h.services.EventLog.List(c.Request.Context(), filter)
	if err != nil {
		if isInvalidInput(err) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		h.logAndJSONError(c, http.StatusInternalServerError, errLoadLogs, "logs_list_failed", err,
			"from", filter.From, "to", filter.To, "type", filter.Type, "outcome", filter.Outcome)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"count":   len(events),
		"by_type": service.CountByType(events),
		"events":  events,
	})
}

// logFilterFromQuery reads the filter from the query string. It returns a
// client-facing message when a time cannot be parsed; range, type and
// outcome checks belong to the service.
func logFilterFromQuery(c *gin.Context) (service.LogFilter, string) {
	f := service.LogFilter{
		Type:    c.Query("type"),
		Outcome: c.Query("outcome"),
	}
	if qs := c.Query("from"); qs != "" {
		t, err := parseQueryTime(qs)
		if err != nil {
			return f, errFromInvalid
		}
		f.From = t
	}
	if qs := c.Query("to"); qs != "" {
		t, err := parseQueryTime(qs)
		if err != nil {
			return f, errToInvalid
		}
		// A date-only 'to' is end-of-day inclusive.
		if !strings.ContainsAny(qs, "T ") {
			t = t.Add(24*time.Hour - time.Nanosecond)
		}
		f.To = t
	}
	return f, ""
}

// parseQueryTime accepts RFC3339, "YYYY-MM-DD HH:MM:SS" or "YYYY-MM-DD", in UTC.
func parseQueryTime(s string) (time.Time, error) {
	for _, layout := range []string{time.RFC3339, layoutDateTime, layoutDate} {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid time %q: want RFC3339, 'YYYY-MM-DD HH:MM:SS' or 'YYYY-MM-DD'", s)
}
