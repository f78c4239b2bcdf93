// Package store implements the domain store: one mutable reference to the
// latest immutable snapshot, advanced exclusively through dispatched actions.
package store

import (
	"fmt"
	"reflect"
	"sync"

	"go.uber.org/zap"
)

// Reducer computes the next snapshot from the previous one and an action.
// Reducers are pure: they never mutate the given snapshot or anything it
// references.
type Reducer func(Snapshot, Action) Snapshot

// Listener observes every state transition. Listeners run synchronously
// after the snapshot pointer has been swapped, in registration order.
type Listener func(old, next Snapshot)

// Store holds exactly one mutable reference: the pointer to the latest
// snapshot. Reducer dispatch is keyed on the concrete action type; actions
// without a registered reducer are silent no-ops.
type Store struct {
	mu        sync.RWMutex
	snapshot  Snapshot
	reducers  map[reflect.Type]Reducer
	listeners []Listener
	logger    *zap.Logger
}

// New creates a store with all built-in reducers registered and an empty
// initial snapshot.
func New(logger *zap.Logger) *Store {
	if logger == nil {
		logger = zap.NewNop()
	}

	s := &Store{
		reducers: make(map[reflect.Type]Reducer),
		logger:   logger,
	}
	s.registerBuiltins()
	return s
}

// Register registers a reducer for the concrete type of the given action
// value. Registering the same type twice is an error.
func (s *Store) Register(action Action, reducer Reducer) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	t := reflect.TypeOf(action)
	if _, exists := s.reducers[t]; exists {
		return fmt.Errorf("reducer already registered for action type %s", t.Name())
	}

	s.reducers[t] = reducer
	return nil
}

// Dispatch applies the action and returns the new snapshot. Unrecognized
// action types return the unchanged snapshot, never an error.
func (s *Store) Dispatch(action Action) Snapshot {
	s.mu.Lock()

	old := s.snapshot
	reducer, exists := s.reducers[reflect.TypeOf(action)]
	if !exists {
		s.mu.Unlock()
		s.logger.Debug("ignoring unrecognized action", zap.String("type", fmt.Sprintf("%T", action)))
		return old
	}

	next := reducer(old, action)
	s.snapshot = next

	listeners := make([]Listener, len(s.listeners))
	copy(listeners, s.listeners)
	s.mu.Unlock()

	for _, l := range listeners {
		l(old, next)
	}

	return next
}

// Snapshot returns the latest snapshot value.
func (s *Store) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snapshot
}

// Subscribe registers a listener for state transitions.
func (s *Store) Subscribe(l Listener) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.listeners = append(s.listeners, l)
}

// registerBuiltins wires the closed action set. Called once from New, before
// the store is shared, so direct map writes are safe.
func (s *Store) registerBuiltins() {
	builtins := map[reflect.Type]Reducer{
		reflect.TypeOf(SetUser{}):              reduceSetUser,
		reflect.TypeOf(SetQuestions{}):         reduceSetQuestions,
		reflect.TypeOf(AddQuestion{}):          reduceAddQuestion,
		reflect.TypeOf(UpdateQuestion{}):       reduceUpdateQuestion,
		reflect.TypeOf(DeleteQuestion{}):       reduceDeleteQuestion,
		reflect.TypeOf(AddAnswer{}):            reduceAddAnswer,
		reflect.TypeOf(UpdateAnswer{}):         reduceUpdateAnswer,
		reflect.TypeOf(VoteQuestion{}):         reduceVoteQuestion,
		reflect.TypeOf(VoteAnswer{}):           reduceVoteAnswer,
		reflect.TypeOf(AcceptAnswer{}):         reduceAcceptAnswer,
		reflect.TypeOf(AddNotification{}):      reduceAddNotification,
		reflect.TypeOf(SetNotifications{}):     reduceSetNotifications,
		reflect.TypeOf(MarkNotificationRead{}): reduceMarkNotificationRead,
		reflect.TypeOf(SetLoading{}):           reduceSetLoading,
		reflect.TypeOf(SetError{}):             reduceSetError,
	}
	for t, r := range builtins {
		s.reducers[t] = r
	}
}
