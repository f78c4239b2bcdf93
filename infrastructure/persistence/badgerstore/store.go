// Package badgerstore implements the persistence gateway on BadgerDB, an
// embedded key-value store. Each named record is one key holding a JSON
// document; absence of a key is reported as the zero value, never as an
// error.
package badgerstore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/dgraph-io/badger/v4"
	"go.uber.org/zap"

	"github.com/Japan1907/StackIt/domain/core/entities"
)

// Record keys. They match the browser-storage keys of the web client so
// exported data stays recognizable.
const (
	keyCurrentUser   = "stackit_user"
	keyQuestions     = "stackit_questions"
	keyNotifications = "stackit_notifications"
	keyUsers         = "stackit_users"
)

// Options configures the store.
type Options struct {
	// Path is the directory for database files. Required unless InMemory.
	Path string

	// InMemory disables disk persistence. Useful for testing.
	InMemory bool

	// SyncWrites enables synchronous writes for durability.
	SyncWrites bool

	// Logger receives BadgerDB's internal log output. Nil disables it.
	Logger *zap.Logger
}

// Store is a BadgerDB-backed StateRepository.
type Store struct {
	db *badger.DB
}

// New opens the database and returns the store. The caller must Close it.
func New(opts Options) (*Store, error) {
	if !opts.InMemory && opts.Path == "" {
		return nil, errors.New("path is required for persistent database")
	}

	var badgerOpts badger.Options
	if opts.InMemory {
		badgerOpts = badger.DefaultOptions("").WithInMemory(true)
	} else {
		if err := os.MkdirAll(opts.Path, 0750); err != nil {
			return nil, fmt.Errorf("create database directory %s: %w", opts.Path, err)
		}
		badgerOpts = badger.DefaultOptions(opts.Path)
	}
	badgerOpts = badgerOpts.WithSyncWrites(opts.SyncWrites)

	if opts.Logger != nil {
		badgerOpts = badgerOpts.WithLogger(&badgerLogger{logger: opts.Logger.Sugar()})
	} else {
		badgerOpts = badgerOpts.WithLogger(nil)
	}

	db, err := badger.Open(badgerOpts)
	if err != nil {
		return nil, fmt.Errorf("open badger database: %w", err)
	}

	return &Store{db: db}, nil
}

// Close releases the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

// SaveCurrentUser persists the logged-in user.
func (s *Store) SaveCurrentUser(ctx context.Context, user entities.User) error {
	return s.setJSON(ctx, keyCurrentUser, user)
}

// LoadCurrentUser returns the persisted current user, or ok=false when
// nobody is logged in.
func (s *Store) LoadCurrentUser(ctx context.Context) (entities.User, bool, error) {
	var user entities.User
	found, err := s.getJSON(ctx, keyCurrentUser, &user)
	return user, found, err
}

// ClearCurrentUser removes the current-user record.
func (s *Store) ClearCurrentUser(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Delete([]byte(keyCurrentUser))
	})
}

// SaveQuestions persists the full ordered question sequence.
func (s *Store) SaveQuestions(ctx context.Context, questions []entities.Question) error {
	return s.setJSON(ctx, keyQuestions, questions)
}

// LoadQuestions returns the persisted question sequence; nil when absent.
func (s *Store) LoadQuestions(ctx context.Context) ([]entities.Question, error) {
	var questions []entities.Question
	if _, err := s.getJSON(ctx, keyQuestions, &questions); err != nil {
		return nil, err
	}
	return questions, nil
}

// SaveNotifications persists the full notification sequence.
func (s *Store) SaveNotifications(ctx context.Context, notifications []entities.Notification) error {
	return s.setJSON(ctx, keyNotifications, notifications)
}

// LoadNotifications returns the persisted notification sequence; nil when
// absent.
func (s *Store) LoadNotifications(ctx context.Context) ([]entities.Notification, error) {
	var notifications []entities.Notification
	if _, err := s.getJSON(ctx, keyNotifications, &notifications); err != nil {
		return nil, err
	}
	return notifications, nil
}

// SaveUsers persists the registered-user credential records.
func (s *Store) SaveUsers(ctx context.Context, users []entities.Credential) error {
	return s.setJSON(ctx, keyUsers, users)
}

// LoadUsers returns the registered-user credential records; nil when absent.
func (s *Store) LoadUsers(ctx context.Context) ([]entities.Credential, error) {
	var users []entities.Credential
	if _, err := s.getJSON(ctx, keyUsers, &users); err != nil {
		return nil, err
	}
	return users, nil
}

func (s *Store) setJSON(ctx context.Context, key string, value interface{}) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("marshal %s: %w", key, err)
	}
	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(key), data)
	})
}

// getJSON unmarshals the record at key into out. It reports whether the key
// existed.
func (s *Store) getJSON(ctx context.Context, key string, out interface{}) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}
	var data []byte
	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(key))
		if err != nil {
			return err
		}
		data, err = item.ValueCopy(nil)
		return err
	})
	if errors.Is(err, badger.ErrKeyNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	if err := json.Unmarshal(data, out); err != nil {
		return false, fmt.Errorf("unmarshal %s: %w", key, err)
	}
	return true, nil
}

// badgerLogger adapts zap to BadgerDB's Logger interface.
type badgerLogger struct {
	logger *zap.SugaredLogger
}

func (l *badgerLogger) Errorf(format string, args ...interface{}) {
	l.logger.Errorf(format, args...)
}

func (l *badgerLogger) Warningf(format string, args ...interface{}) {
	l.logger.Warnf(format, args...)
}

func (l *badgerLogger) Infof(format string, args ...interface{}) {
	l.logger.Infof(format, args...)
}

func (l *badgerLogger) Debugf(format string, args ...interface{}) {
	l.logger.Debugf(format, args...)
}
