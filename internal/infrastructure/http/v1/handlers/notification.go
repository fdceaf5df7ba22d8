package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"stocktake/internal/domain/notify"
	"stocktake/internal/infrastructure/http/v1/dto"
)

// NotificationHandler serves the cross-navigation notification endpoint.
type NotificationHandler struct {
	relay *notify.Relay
}

// NewNotificationHandler creates a notification handler.
func NewNotificationHandler(relay *notify.Relay) *NotificationHandler {
	return &NotificationHandler{relay: relay}
}

// Register mounts the notification routes on the group.
func (h *NotificationHandler) Register(rg *gin.RouterGroup) {
	rg.POST("/notifications/consume", h.Consume)
}

// Consume returns the pending notification if it is still fresh and clears
// the slot, so a message is delivered at most once. 204 means nothing fresh
// is pending.
func (h *NotificationHandler) Consume(c *gin.Context) {
	n, ok := h.relay.Consume()
	if !ok {
		c.Status(http.StatusNoContent)
		return
	}
	c.JSON(http.StatusOK, dto.FromNotification(n))
}
