// Package repository defines the data-access contracts of the ledger core.
// Implementations live under infra; the engine only ever sees these
// interfaces.
package repository

import (
	"context"

	"github.com/google/uuid"

	"github.com/minibank/ledger/pkg/domain/ledger"
	"github.com/minibank/ledger/pkg/domain/money"
)

// AccountRepository owns account records: identity, owner, current
// balance.
type AccountRepository interface {
	// Create inserts a new account. Returns domain.ErrDuplicateOwner if
	// the owner already has one.
	Create(ctx context.Context, account *ledger.Account) error

	// Get retrieves an account by id. Returns domain.ErrAccountNotFound
	// if missing.
	Get(ctx context.Context, id uuid.UUID) (*ledger.Account, error)

	// GetByOwner retrieves the owner's account, if any. Returns
	// domain.ErrAccountNotFound if the owner has no account.
	GetByOwner(ctx context.Context, ownerID uuid.UUID) (*ledger.Account, error)

	// UpdateBalance overwrites the stored balance. Called only by the
	// ledger engine while holding the account's guard, inside the same
	// unit of work as the matching transaction append.
	UpdateBalance(ctx context.Context, id uuid.UUID, balance money.Money) error
}

// TransactionRepository owns the append-only transaction log, partitioned
// by account id. Entries are never reordered, modified, or removed.
type TransactionRepository interface {
	// Create appends an entry to the owning account's log.
	Create(ctx context.Context, tx *ledger.Transaction) error

	// ListByAccount returns the account's entries oldest first, matching
	// the order balance changes were applied. This sequence is the
	// statement.
	ListByAccount(ctx context.Context, accountID uuid.UUID) ([]*ledger.Transaction, error)
}
