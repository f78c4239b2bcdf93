// Package session manages current-user identity and the registered-user
// credential records on top of the domain store and the persistence gateway.
package session

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/Japan1907/StackIt/application/ports"
	"github.com/Japan1907/StackIt/application/store"
	"github.com/Japan1907/StackIt/domain/config"
	"github.com/Japan1907/StackIt/domain/core/entities"
	"github.com/Japan1907/StackIt/domain/core/valueobjects"
	pkgerrors "github.com/Japan1907/StackIt/pkg/errors"
	"github.com/Japan1907/StackIt/pkg/utils"
)

// Invalid-credential and collision messages are part of the public AuthError
// contract; callers match on them.
const (
	msgInvalidCredentials = "Invalid email or password"
	msgUserExists         = "User with this email or username already exists"
)

// Service exposes the session operations. Credential records live in the
// gateway only; the store never sees password hashes.
type Service struct {
	store  *store.Store
	repo   ports.StateRepository
	cfg    *config.DomainConfig
	logger *zap.Logger
}

// NewService creates a session service.
func NewService(st *store.Store, repo ports.StateRepository, cfg *config.DomainConfig, logger *zap.Logger) *Service {
	if cfg == nil {
		cfg = config.DefaultDomainConfig()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{store: st, repo: repo, cfg: cfg, logger: logger}
}

// Login authenticates by email and password after a simulated round-trip.
// Unknown email and wrong password both fail with the same AuthError so the
// caller cannot distinguish which part was wrong. On success the user
// becomes the store's current user.
func (s *Service) Login(ctx context.Context, email, password string) (*entities.User, error) {
	s.store.Dispatch(store.SetLoading{Loading: true})
	s.store.Dispatch(store.SetError{})
	defer s.store.Dispatch(store.SetLoading{Loading: false})

	s.simulateLatency()

	credentials, err := s.repo.LoadUsers(ctx)
	if err != nil {
		storageErr := pkgerrors.NewStorageError("load users", err)
		s.store.Dispatch(store.SetError{Err: storageErr.Message})
		return nil, storageErr
	}

	for _, cred := range credentials {
		if cred.User.Email != email {
			continue
		}
		if bcrypt.CompareHashAndPassword([]byte(cred.PasswordHash), []byte(password)) != nil {
			break
		}

		user := cred.User.Clone()
		s.store.Dispatch(store.SetUser{User: &user})
		s.logger.Info("user logged in", zap.String("userId", user.ID))
		return &user, nil
	}

	authErr := pkgerrors.NewAuthError(msgInvalidCredentials)
	s.store.Dispatch(store.SetError{Err: authErr.Message})
	return nil, authErr
}

// RegisterInput carries the registration fields.
type RegisterInput struct {
	Username string `validate:"required,min=3,max=50"`
	Email    string `validate:"required,email"`
	Password string `validate:"required,min=6,max=128"`
}

// Register creates a new account after a simulated round-trip. Colliding
// email or username fails with an AuthError. The new user starts with zero
// reputation and a generated avatar, is appended to the persisted user list
// and becomes the current user.
func (s *Service) Register(ctx context.Context, input RegisterInput) (*entities.User, error) {
	if err := utils.ValidateStruct(input); err != nil {
		return nil, err
	}

	s.store.Dispatch(store.SetLoading{Loading: true})
	s.store.Dispatch(store.SetError{})
	defer s.store.Dispatch(store.SetLoading{Loading: false})

	s.simulateLatency()

	credentials, err := s.repo.LoadUsers(ctx)
	if err != nil {
		storageErr := pkgerrors.NewStorageError("load users", err)
		s.store.Dispatch(store.SetError{Err: storageErr.Message})
		return nil, storageErr
	}

	for _, cred := range credentials {
		if cred.User.Email == input.Email || cred.User.Username == input.Username {
			authErr := pkgerrors.NewAuthError(msgUserExists)
			s.store.Dispatch(store.SetError{Err: authErr.Message})
			return nil, authErr
		}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), s.cfg.BcryptCost)
	if err != nil {
		return nil, pkgerrors.NewInternalError("failed to hash password").WithCause(err)
	}

	user := entities.User{
		ID:         valueobjects.NewUserID(),
		Username:   input.Username,
		Email:      input.Email,
		Avatar:     fmt.Sprintf(s.cfg.AvatarURLTemplate, input.Username),
		Reputation: 0,
		JoinedAt:   time.Now(),
	}

	credentials = append(credentials, entities.Credential{User: user, PasswordHash: string(hash)})
	if err := s.repo.SaveUsers(ctx, credentials); err != nil {
		storageErr := pkgerrors.NewStorageError("save users", err)
		s.store.Dispatch(store.SetError{Err: storageErr.Message})
		return nil, storageErr
	}

	s.store.Dispatch(store.SetUser{User: &user})
	s.logger.Info("user registered", zap.String("userId", user.ID), zap.String("username", user.Username))
	return &user, nil
}

// Logout clears the current user.
func (s *Service) Logout() {
	s.store.Dispatch(store.SetUser{User: nil})
}

// UpdateProfile merges the patch into the current user, re-persists the
// current-user record (via the store mirror) and updates the matching entry
// in the persisted user list. Without a current user it is a no-op returning
// nil.
func (s *Service) UpdateProfile(ctx context.Context, patch entities.UserPatch) (*entities.User, error) {
	current := s.store.Snapshot().CurrentUser
	if current == nil {
		return nil, nil
	}

	merged := patch.Apply(*current)
	s.store.Dispatch(store.SetUser{User: &merged})

	credentials, err := s.repo.LoadUsers(ctx)
	if err != nil {
		return &merged, pkgerrors.NewStorageError("load users", err)
	}
	for i, cred := range credentials {
		if cred.User.ID == merged.ID {
			credentials[i].User = merged
			if err := s.repo.SaveUsers(ctx, credentials); err != nil {
				return &merged, pkgerrors.NewStorageError("save users", err)
			}
			break
		}
	}

	return &merged, nil
}

func (s *Service) simulateLatency() {
	if s.cfg.SimulatedLatency > 0 {
		time.Sleep(s.cfg.SimulatedLatency)
	}
}
