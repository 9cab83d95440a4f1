// Package initializer wires the application: logger, storage backend,
// per-account locks, event bus, and the shared dependency bundle.
package initializer

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/minibank/ledger/infra/memory"
	infrarepo "github.com/minibank/ledger/infra/repository"
	"github.com/minibank/ledger/pkg/config"
	"github.com/minibank/ledger/pkg/domain"
	"github.com/minibank/ledger/pkg/domain/ledger"
	"github.com/minibank/ledger/pkg/eventbus"
	"github.com/minibank/ledger/pkg/lock"
	"github.com/minibank/ledger/pkg/repository"
)

// InitializeDependencies builds the dependency bundle from configuration.
// An empty database url selects the in-memory backend; anything else is
// treated as a Postgres DSN.
func InitializeDependencies(cfg *config.App) (config.Deps, error) {
	logger := setupLogger(&cfg.Log)

	var uow repository.UnitOfWork
	if cfg.DB.Url == "" {
		logger.Warn("no database url configured, using in-memory backend")
		uow = memory.NewUoW()
	} else {
		db, err := infrarepo.NewDBConnection(cfg.DB.Url)
		if err != nil {
			return config.Deps{}, fmt.Errorf("connecting to database: %w", err)
		}
		uow = infrarepo.NewUoW(db)
	}

	bus := eventbus.NewSimpleEventBus()
	registerObservers(bus, logger)

	return config.Deps{
		Uow:      uow,
		Locks:    lock.NewManager(),
		EventBus: bus,
		Logger:   logger,
		Config:   cfg,
	}, nil
}

// registerObservers attaches the logging observer to every ledger event.
// Observers run after the operation has committed or been rejected and
// never alter control flow.
func registerObservers(bus eventbus.EventBus, logger *slog.Logger) {
	observe := func(ctx context.Context, e domain.Event) {
		logger.Info("ledger event", "event", e.Type(), "payload", e)
	}
	for _, t := range []string{
		ledger.AccountCreatedEvent{}.Type(),
		ledger.DepositCommittedEvent{}.Type(),
		ledger.WithdrawCommittedEvent{}.Type(),
		ledger.OperationRejectedEvent{}.Type(),
	} {
		bus.Subscribe(t, observe)
	}
}
