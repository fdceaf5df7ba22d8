package dto

import (
	"time"

	"stocktake/internal/domain/notify"
)

// NotificationResponse is the API shape of a consumed notification.
type NotificationResponse struct {
	Message   string    `json:"message"`
	Severity  string    `json:"severity"`
	CreatedAt time.Time `json:"createdAt"`
}

// FromNotification converts a relay notification to its API shape.
func FromNotification(n *notify.Notification) NotificationResponse {
	return NotificationResponse{
		Message:   n.Message,
		Severity:  string(n.Severity),
		CreatedAt: n.CreatedAt,
	}
}
