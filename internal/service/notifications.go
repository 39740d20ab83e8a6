package service

import (
	"context"
	"fmt"
	"time"

	"github.com/Dan9191/saveeasy/internal/models"
	"github.com/Dan9191/saveeasy/internal/utils"
)

// NotificationRequest describes an in-app notification
type NotificationRequest struct {
	Title     string                  `json:"title,omitempty"`
	Message   string                  `json:"message"`
	Type      models.NotificationType `json:"type,omitempty"`
	ActionURL string                  `json:"action_url,omitempty"`
}

// SendNotification simulates delivering a notification. The result is
// always unread.
func (s *Service) SendNotification(ctx context.Context, req NotificationRequest) Result[models.Notification] {
	const op = "send_notification"
	start := time.Now()

	switch req.Type {
	case "", models.NotifyInfo, models.NotifySuccess, models.NotifyWarning, models.NotifyError:
	default:
		return observe(s, op, start, fail[models.Notification]("Invalid notification type",
			fmt.Sprintf("Unknown notification type %q", req.Type)))
	}

	if err := s.wait(ctx, s.rules.Delays.Notification); err != nil {
		return observe(s, op, start, cancelled[models.Notification](err))
	}

	n := models.Notification{
		ID:        utils.GenerateID(),
		Title:     req.Title,
		Message:   req.Message,
		Type:      req.Type,
		Date:      s.now(),
		ActionURL: req.ActionURL,
	}
	if n.Title == "" {
		n.Title = "Notification"
	}
	if n.Type == "" {
		n.Type = models.NotifyInfo
	}
	return observe(s, op, start, ok(n, "Notification sent"))
}
