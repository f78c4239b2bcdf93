// Package di wires the application together: configuration, logging,
// persistence, the domain store with its mirror, and the services.
package di

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/Japan1907/StackIt/application/content"
	"github.com/Japan1907/StackIt/application/notifications"
	"github.com/Japan1907/StackIt/application/ports"
	"github.com/Japan1907/StackIt/application/session"
	"github.com/Japan1907/StackIt/application/store"
	domainconfig "github.com/Japan1907/StackIt/domain/config"
	"github.com/Japan1907/StackIt/infrastructure/config"
	"github.com/Japan1907/StackIt/infrastructure/persistence/badgerstore"
)

// Container holds all application dependencies
type Container struct {
	Config        *config.Config
	DomainConfig  *domainconfig.DomainConfig
	Logger        *zap.Logger
	Repo          ports.StateRepository
	Store         *store.Store
	Mirror        *store.Mirror
	Content       *content.Service
	Session       *session.Service
	Notifications *notifications.Service
}

// ProvideLogger creates a new logger instance
func ProvideLogger(cfg *config.Config) (*zap.Logger, error) {
	if cfg.IsProduction() {
		return zap.NewProduction()
	}
	return zap.NewDevelopment()
}

// ProvideDomainConfig derives the domain configuration, applying any
// environment overrides.
func ProvideDomainConfig(cfg *config.Config) *domainconfig.DomainConfig {
	dc := domainconfig.DefaultDomainConfig()
	if latency, ok := cfg.SimulatedLatency(); ok {
		dc.SimulatedLatency = latency
	}
	return dc
}

// ProvideStateRepository opens the persistence gateway.
func ProvideStateRepository(cfg *config.Config, logger *zap.Logger) (ports.StateRepository, error) {
	return badgerstore.New(badgerstore.Options{
		Path:       cfg.DataDir,
		InMemory:   cfg.InMemory,
		SyncWrites: cfg.SyncWrites,
		Logger:     logger.Named("badger"),
	})
}

// InitializeContainer creates a fully wired container
func InitializeContainer(ctx context.Context, cfg *config.Config) (*Container, error) {
	logger, err := ProvideLogger(cfg)
	if err != nil {
		return nil, fmt.Errorf("initialize logger: %w", err)
	}

	repo, err := ProvideStateRepository(cfg, logger)
	if err != nil {
		return nil, fmt.Errorf("open state repository: %w", err)
	}

	domainCfg := ProvideDomainConfig(cfg)

	st := store.New(logger.Named("store"))
	mirror := store.NewMirror(repo, logger.Named("mirror"))

	c := &Container{
		Config:        cfg,
		DomainConfig:  domainCfg,
		Logger:        logger,
		Repo:          repo,
		Store:         st,
		Mirror:        mirror,
		Content:       content.NewService(st, domainCfg, logger.Named("content")),
		Session:       session.NewService(st, repo, domainCfg, logger.Named("session")),
		Notifications: notifications.NewService(st, logger.Named("notifications")),
	}

	if err := c.Hydrate(ctx); err != nil {
		repo.Close()
		return nil, err
	}

	// Attach after hydration so the initial load is not written straight
	// back to storage.
	mirror.Attach(st)

	return c, nil
}

// Hydrate loads the persisted records into the store. A missing record
// leaves the corresponding slice of state at its zero value.
func (c *Container) Hydrate(ctx context.Context) error {
	user, ok, err := c.Repo.LoadCurrentUser(ctx)
	if err != nil {
		return fmt.Errorf("load current user: %w", err)
	}
	if ok {
		c.Store.Dispatch(store.SetUser{User: &user})
	}

	questions, err := c.Repo.LoadQuestions(ctx)
	if err != nil {
		return fmt.Errorf("load questions: %w", err)
	}
	if questions != nil {
		c.Store.Dispatch(store.SetQuestions{Questions: questions})
	}

	notifs, err := c.Repo.LoadNotifications(ctx)
	if err != nil {
		return fmt.Errorf("load notifications: %w", err)
	}
	if notifs != nil {
		c.Store.Dispatch(store.SetNotifications{Notifications: notifs})
	}

	return nil
}

// Close flushes and releases all resources.
func (c *Container) Close() error {
	err := c.Repo.Close()
	c.Logger.Sync()
	return err
}
