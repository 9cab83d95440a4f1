package config

import (
	"log/slog"

	"github.com/minibank/ledger/pkg/eventbus"
	"github.com/minibank/ledger/pkg/lock"
	"github.com/minibank/ledger/pkg/repository"
)

// Deps bundles the dependencies shared by services. The initializer builds
// one of these and hands it to every constructor that needs wiring.
type Deps struct {
	Uow      repository.UnitOfWork
	Locks    *lock.Manager
	EventBus eventbus.EventBus
	Logger   *slog.Logger
	Config   *App
}
