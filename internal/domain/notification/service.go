package notification

import (
	"context"
)

// Service exposes the notification inbox. Event fan-out methods live on the
// implementation and are consumed through per-package notifier interfaces.
type Service interface {
	ListNotifications(ctx context.Context, recipientID string, page, limit int, unreadOnly bool) ([]Notification, int, error)
	MarkRead(ctx context.Context, ids []string, recipientID string) error
	MarkAllRead(ctx context.Context, recipientID string) error
	UnreadCount(ctx context.Context, recipientID string) (int, error)
}
