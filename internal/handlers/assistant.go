package handlers

import (
	"net/http"

	"smart_thermostat/internal/service"

	"github.com/gin-gonic/gin"
)

const (
	statusReplied   = "replied"
	statusConfirmed = "confirmed"
	statusCancelled = "cancelled"

	errNothingPending = "no pending action"
	errLoadHistory    = "failed to load history"
)

// MessageRequest is one user turn.
type MessageRequest struct {
	Message string `json:"message" binding:"required" example:"It's chilly, bump the heat to 70"`
}

// @Summary      Send a message to the assistant
// @Description  The reply may carry a proposed action. It is staged, never applied, until confirmed.
// @Tags         assistant
// @Accept       json
// @Produce      json
// @Param        body  body   MessageRequest  true  "User message"
// @Success      200   {object}  map[string]interface{}  "status, reply, pending, replaced"
// @Failure      400   {object}  map[string]string
// @Router       /api/v1/assistant/messages [post]
func (h *Handler) postMessage(c *gin.Context) {
	var req MessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": errInvalidBodyPref + err.Error()})
		return
	}
	res, err := h.services.Assistant.Ask(c.Request.Context(), req.Message)
	if err != nil {
		h.respondServiceError(c, "assistant_turn_failed", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"status":   statusReplied,
		"reply":    res.Reply,
		"pending":  res.Pending,
		"replaced": res.Replaced,
	})
}

// @Summary      Show the pending proposal
// @Tags         assistant
// @Produce      json
// @Success      200  {object}  map[string]interface{}  "pending (null when nothing is staged)"
// @Router       /api/v1/assistant/pending [get]
func (h *Handler) getPending(c *gin.Context) {
	p, ok := h.services.Assistant.Pending(c.Request.Context())
	if !ok {
		c.JSON(http.StatusOK, gin.H{"pending": nil})
		return
	}
	c.JSON(http.StatusOK, gin.H{"pending": p})
}

// @Summary      Confirm the pending proposal
// @Tags         assistant
// @Produce      json
// @Success      200  {object}  map[string]interface{}  "status, reply, state"
// @Failure      409  {object}  map[string]string
// @Router       /api/v1/assistant/confirm [post]
func (h *Handler) confirmAction(c *gin.Context) {
	reply, err := h.services.Assistant.Confirm(c.Request.Context())
	if err != nil {
		h.respondGateError(c, "assistant_confirm_failed", err)
		return
	}
	h.respondWithStatusAndState(c, statusConfirmed, gin.H{"reply": reply})
}

// @Summary      Cancel the pending proposal
// @Tags         assistant
// @Produce      json
// @Success      200  {object}  map[string]interface{}  "status, reply, state"
// @Failure      409  {object}  map[string]string
// @Router       /api/v1/assistant/cancel [post]
func (h *Handler) cancelAction(c *gin.Context) {
	reply, err := h.services.Assistant.Cancel(c.Request.Context())
	if err != nil {
		h.respondGateError(c, "assistant_cancel_failed", err)
		return
	}
	h.respondWithStatusAndState(c, statusCancelled, gin.H{"reply": reply})
}

// @Summary      Conversation history
// @Tags         assistant
// @Produce      json
// @Success      200  {object}  map[string]interface{}  "count, messages"
// @Failure      500  {object}  map[string]string
// @Router       /api/v1/assistant/history [get]
func (h *Handler) getHistory(c *gin.Context) {
	msgs, err := h.services.Assistant.History(c.Request.Context())
	if err != nil {
		h.logAndJSONError(c, http.StatusInternalServerError, errLoadHistory, "assistant_history_failed", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"count":    len(msgs),
		"messages": msgs,
	})
}

func (h *Handler) respondGateError(c *gin.Context, logKey string, err error) {
	if service.IsNothingPending(err) {
		c.JSON(http.StatusConflict, gin.H{"error": errNothingPending})
		return
	}
	h.logAndJSONError(c, http.StatusInternalServerError, "internal error", logKey, err)
}
