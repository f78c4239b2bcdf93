package entities

import "time"

// NotificationKind classifies what triggered a notification.
type NotificationKind string

const (
	NotificationAnswer  NotificationKind = "answer"
	NotificationComment NotificationKind = "comment"
	NotificationMention NotificationKind = "mention"
	NotificationVote    NotificationKind = "vote"
)

// Notification targets one user. An empty UserID marks the notification as
// undeliverable (the target could not be resolved); that is tolerated, not
// an error.
type Notification struct {
	ID        string           `json:"id"`
	UserID    string           `json:"userId"`
	Kind      NotificationKind `json:"type"`
	Message   string           `json:"message"`
	Read      bool             `json:"read"`
	CreatedAt time.Time        `json:"createdAt"`
	RelatedID string           `json:"relatedId,omitempty"`
}

// Clone returns a copy of the notification.
func (n Notification) Clone() Notification {
	return n
}
