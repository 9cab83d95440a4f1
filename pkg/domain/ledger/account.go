// Package ledger defines the entities of the ledger core: accounts and the
// append-only transactions that produced their balances.
package ledger

import (
	"time"

	"github.com/google/uuid"

	"github.com/minibank/ledger/pkg/domain"
	"github.com/minibank/ledger/pkg/domain/money"
)

// Account represents a single owner's financial account.
//
// Invariants:
//   - OwnerID is set and unique across accounts (one account per owner).
//   - Balance is never negative, at any observable point.
//   - Balance is mutated only by the ledger engine, together with a
//     transaction append, under the account's guard.
type Account struct {
	ID        uuid.UUID
	OwnerID   uuid.UUID
	Balance   money.Money
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Builder provides a fluent API for constructing Account instances, either
// fresh or hydrated from a data store.
type Builder struct {
	id        uuid.UUID
	ownerID   uuid.UUID
	balance   money.Money
	createdAt time.Time
	updatedAt time.Time
}

// New creates a Builder with a fresh id and zero balance.
func New() *Builder {
	return &Builder{
		id:        uuid.New(),
		createdAt: time.Now(),
	}
}

// WithID sets the account id. Used when hydrating from a data store.
func (b *Builder) WithID(id uuid.UUID) *Builder {
	b.id = id
	return b
}

// WithOwnerID sets the owning user's id. This is a mandatory field.
func (b *Builder) WithOwnerID(ownerID uuid.UUID) *Builder {
	b.ownerID = ownerID
	return b
}

// WithBalance sets the balance. Only for hydration and test setup; new
// accounts always start at zero.
func (b *Builder) WithBalance(balance money.Money) *Builder {
	b.balance = balance
	return b
}

// WithCreatedAt sets the creation timestamp, for hydration.
func (b *Builder) WithCreatedAt(t time.Time) *Builder {
	b.createdAt = t
	return b
}

// WithUpdatedAt sets the last-updated timestamp, for hydration.
func (b *Builder) WithUpdatedAt(t time.Time) *Builder {
	b.updatedAt = t
	return b
}

// Build validates the invariants and returns the Account.
func (b *Builder) Build() (*Account, error) {
	if b.ownerID == uuid.Nil {
		return nil, domain.ErrInvalidOwner
	}
	if b.balance.IsNegative() {
		return nil, domain.ErrInvalidAmount
	}
	return &Account{
		ID:        b.id,
		OwnerID:   b.ownerID,
		Balance:   b.balance,
		CreatedAt: b.createdAt,
		UpdatedAt: b.updatedAt,
	}, nil
}

// ValidateDeposit checks the invariants for a deposit of amount.
func (a *Account) ValidateDeposit(amount money.Money) error {
	if !amount.IsPositive() {
		return domain.ErrInvalidAmount
	}
	return nil
}

// ValidateWithdraw checks the invariants for a withdrawal of amount.
// Withdrawing the exact balance is allowed; zero is a valid resulting
// balance.
func (a *Account) ValidateWithdraw(amount money.Money) error {
	if !amount.IsPositive() {
		return domain.ErrInvalidAmount
	}
	if a.Balance.LessThan(amount) {
		return domain.ErrInsufficientFunds
	}
	return nil
}
