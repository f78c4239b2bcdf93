// Package ports defines the interfaces the application layer depends on.
// Infrastructure provides the implementations.
package ports

import (
	"context"

	"github.com/Japan1907/StackIt/domain/core/entities"
)

// StateRepository is the persistence gateway: it reads and writes the named
// records the store mirrors to durable local storage. Implementations do
// nothing beyond (de)serialization; absence of a record is reported as the
// zero value with a nil error, never as an error.
type StateRepository interface {
	// SaveCurrentUser persists the logged-in user.
	SaveCurrentUser(ctx context.Context, user entities.User) error

	// LoadCurrentUser returns the persisted current user, or ok=false when
	// nobody is logged in.
	LoadCurrentUser(ctx context.Context) (user entities.User, ok bool, err error)

	// ClearCurrentUser removes the current-user record (logout).
	ClearCurrentUser(ctx context.Context) error

	// SaveQuestions persists the full ordered question sequence, answers and
	// comments included.
	SaveQuestions(ctx context.Context, questions []entities.Question) error

	// LoadQuestions returns the persisted question sequence; nil when the
	// record is absent.
	LoadQuestions(ctx context.Context) ([]entities.Question, error)

	// SaveNotifications persists the full notification sequence.
	SaveNotifications(ctx context.Context, notifications []entities.Notification) error

	// LoadNotifications returns the persisted notification sequence; nil when
	// the record is absent.
	LoadNotifications(ctx context.Context) ([]entities.Notification, error)

	// SaveUsers persists the registered-user credential records.
	SaveUsers(ctx context.Context, users []entities.Credential) error

	// LoadUsers returns the registered-user credential records; nil when the
	// record is absent.
	LoadUsers(ctx context.Context) ([]entities.Credential, error)

	// Close releases the underlying storage.
	Close() error
}
