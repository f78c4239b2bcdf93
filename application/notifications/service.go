// Package notifications implements the notification views and the mark-read
// operations on top of the domain store.
package notifications

import (
	"sort"
	"time"

	"go.uber.org/zap"

	"github.com/Japan1907/StackIt/application/store"
	"github.com/Japan1907/StackIt/domain/core/entities"
	"github.com/Japan1907/StackIt/domain/core/valueobjects"
)

// Service exposes notification operations scoped to the current user.
type Service struct {
	store  *store.Store
	logger *zap.Logger
}

// NewService creates a notification service.
func NewService(st *store.Store, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{store: st, logger: logger}
}

// CreateInput carries the caller-supplied fields of a notification.
type CreateInput struct {
	UserID    string
	Kind      entities.NotificationKind
	Message   string
	RelatedID string
}

// Create synthesizes and dispatches a notification, returning it. An empty
// UserID is accepted and marks the notification undeliverable.
func (s *Service) Create(input CreateInput) entities.Notification {
	notification := entities.Notification{
		ID:        valueobjects.NewNotificationID(),
		UserID:    input.UserID,
		Kind:      input.Kind,
		Message:   input.Message,
		Read:      false,
		CreatedAt: time.Now(),
		RelatedID: input.RelatedID,
	}
	s.store.Dispatch(store.AddNotification{Notification: notification})
	return notification
}

// ForCurrentUser returns the current user's notifications, newest first.
// Without a current user it returns nil.
func (s *Service) ForCurrentUser() []entities.Notification {
	snap := s.store.Snapshot()
	if snap.CurrentUser == nil {
		return nil
	}

	mine := make([]entities.Notification, 0)
	for _, n := range snap.Notifications {
		if n.UserID == snap.CurrentUser.ID {
			mine = append(mine, n)
		}
	}

	sort.SliceStable(mine, func(i, j int) bool {
		return mine[i].CreatedAt.After(mine[j].CreatedAt)
	})

	return mine
}

// UnreadCount returns the number of unread notifications for the current
// user.
func (s *Service) UnreadCount() int {
	count := 0
	for _, n := range s.ForCurrentUser() {
		if !n.Read {
			count++
		}
	}
	return count
}

// MarkAsRead marks one notification read. Idempotent; an absent id is a
// no-op.
func (s *Service) MarkAsRead(id string) {
	s.store.Dispatch(store.MarkNotificationRead{NotificationID: id})
}

// MarkAllAsRead marks every unread notification of the current user read.
func (s *Service) MarkAllAsRead() {
	for _, n := range s.ForCurrentUser() {
		if !n.Read {
			s.store.Dispatch(store.MarkNotificationRead{NotificationID: n.ID})
		}
	}
}
