package store

import (
	"context"
	"reflect"

	"go.uber.org/zap"

	"github.com/Japan1907/StackIt/application/ports"
	pkgerrors "github.com/Japan1907/StackIt/pkg/errors"
)

const mirrorErrorBuffer = 16

// Mirror subscribes to a store and writes the relevant state slices to the
// persistence gateway after every transition. Writes are best-effort from
// the dispatching caller's point of view: a failure never propagates back
// through Dispatch, but it is logged and delivered on Errors rather than
// silently dropped.
type Mirror struct {
	repo   ports.StateRepository
	logger *zap.Logger
	errs   chan error
}

// NewMirror creates a mirror over the given gateway.
func NewMirror(repo ports.StateRepository, logger *zap.Logger) *Mirror {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Mirror{
		repo:   repo,
		logger: logger,
		errs:   make(chan error, mirrorErrorBuffer),
	}
}

// Attach subscribes the mirror to the store.
func (m *Mirror) Attach(s *Store) {
	s.Subscribe(m.onTransition)
}

// Errors delivers persistence failures. The channel is buffered; when nobody
// drains it, surplus failures are dropped after logging.
func (m *Mirror) Errors() <-chan error {
	return m.errs
}

func (m *Mirror) onTransition(old, next Snapshot) {
	ctx := context.Background()

	if old.CurrentUser != next.CurrentUser {
		if next.CurrentUser == nil {
			m.report("clear current user", m.repo.ClearCurrentUser(ctx))
		} else {
			m.report("save current user", m.repo.SaveCurrentUser(ctx, *next.CurrentUser))
		}
	}

	if sliceChanged(old.Questions, next.Questions) {
		m.report("save questions", m.repo.SaveQuestions(ctx, next.Questions))
	}

	if sliceChanged(old.Notifications, next.Notifications) {
		m.report("save notifications", m.repo.SaveNotifications(ctx, next.Notifications))
	}
}

func (m *Mirror) report(operation string, err error) {
	if err == nil {
		return
	}

	wrapped := pkgerrors.NewStorageError(operation, err)
	m.logger.Error("persistence mirror write failed",
		zap.String("operation", operation),
		zap.Error(err),
	)

	select {
	case m.errs <- wrapped:
	default:
		m.logger.Warn("mirror error channel full, dropping error", zap.String("operation", operation))
	}
}

// sliceChanged reports whether the two slices are backed by different
// arrays. Reducers rebuild a slice whenever an action touches it, so a
// changed backing array is the transition signal.
func sliceChanged[T any](old, next []T) bool {
	if len(old) != len(next) {
		return true
	}
	if len(next) == 0 {
		return false
	}
	return reflect.ValueOf(old).Pointer() != reflect.ValueOf(next).Pointer()
}
