// Package memory provides an in-memory implementation of the ledger's
// repositories and unit of work. It backs the test suite, the CLI, and
// servers started without a database URL. Do takes a snapshot before
// running the unit and restores it on error, so a failed commit never
// leaves a partial change behind.
package memory

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/minibank/ledger/pkg/domain"
	"github.com/minibank/ledger/pkg/domain/ledger"
	"github.com/minibank/ledger/pkg/domain/money"
	"github.com/minibank/ledger/pkg/repository"
)

type accountRecord struct {
	id        uuid.UUID
	ownerID   uuid.UUID
	balance   int64
	createdAt time.Time
	updatedAt time.Time
}

type store struct {
	mu       sync.Mutex
	accounts map[uuid.UUID]accountRecord
	owners   map[uuid.UUID]uuid.UUID // ownerID -> accountID
	logs     map[uuid.UUID][]ledger.Transaction
}

type snapshot struct {
	accounts map[uuid.UUID]accountRecord
	owners   map[uuid.UUID]uuid.UUID
	logs     map[uuid.UUID][]ledger.Transaction
}

func (s *store) snapshot() snapshot {
	snap := snapshot{
		accounts: make(map[uuid.UUID]accountRecord, len(s.accounts)),
		owners:   make(map[uuid.UUID]uuid.UUID, len(s.owners)),
		logs:     make(map[uuid.UUID][]ledger.Transaction, len(s.logs)),
	}
	for k, v := range s.accounts {
		snap.accounts[k] = v
	}
	for k, v := range s.owners {
		snap.owners[k] = v
	}
	for k, v := range s.logs {
		snap.logs[k] = v
	}
	return snap
}

func (s *store) restore(snap snapshot) {
	s.accounts = snap.accounts
	s.owners = snap.owners
	s.logs = snap.logs
}

// UoW is the in-memory repository.UnitOfWork. The root UoW serializes each
// repository call on the store mutex; inside Do the mutex is held for the
// whole unit, and a snapshot taken up front is restored if the unit fails.
type UoW struct {
	s    *store
	inTx bool
}

// NewUoW creates an empty in-memory backend.
func NewUoW() *UoW {
	return &UoW{s: &store{
		accounts: make(map[uuid.UUID]accountRecord),
		owners:   make(map[uuid.UUID]uuid.UUID),
		logs:     make(map[uuid.UUID][]ledger.Transaction),
	}}
}

// Do runs fn as one atomic unit. Nested calls join the ambient unit.
func (u *UoW) Do(ctx context.Context, fn func(uow repository.UnitOfWork) error) error {
	if u.inTx {
		return fn(u)
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	u.s.mu.Lock()
	defer u.s.mu.Unlock()
	snap := u.s.snapshot()
	if err := fn(&UoW{s: u.s, inTx: true}); err != nil {
		u.s.restore(snap)
		return err
	}
	return nil
}

// AccountRepository returns the account repository bound to this session.
func (u *UoW) AccountRepository() (repository.AccountRepository, error) {
	return &accountRepository{s: u.s, inTx: u.inTx}, nil
}

// TransactionRepository returns the transaction log bound to this session.
func (u *UoW) TransactionRepository() (repository.TransactionRepository, error) {
	return &transactionRepository{s: u.s, inTx: u.inTx}, nil
}

type accountRepository struct {
	s    *store
	inTx bool
}

func (r *accountRepository) lock() func() {
	if r.inTx {
		return func() {}
	}
	r.s.mu.Lock()
	return r.s.mu.Unlock
}

func (r *accountRepository) Create(ctx context.Context, a *ledger.Account) error {
	defer r.lock()()
	if _, exists := r.s.owners[a.OwnerID]; exists {
		return domain.ErrDuplicateOwner
	}
	r.s.accounts[a.ID] = accountRecord{
		id:        a.ID,
		ownerID:   a.OwnerID,
		balance:   a.Balance.Cents(),
		createdAt: a.CreatedAt,
		updatedAt: a.UpdatedAt,
	}
	r.s.owners[a.OwnerID] = a.ID
	return nil
}

func (r *accountRepository) Get(ctx context.Context, id uuid.UUID) (*ledger.Account, error) {
	defer r.lock()()
	rec, ok := r.s.accounts[id]
	if !ok {
		return nil, domain.ErrAccountNotFound
	}
	return hydrate(rec)
}

func (r *accountRepository) GetByOwner(ctx context.Context, ownerID uuid.UUID) (*ledger.Account, error) {
	defer r.lock()()
	id, ok := r.s.owners[ownerID]
	if !ok {
		return nil, domain.ErrAccountNotFound
	}
	return hydrate(r.s.accounts[id])
}

func (r *accountRepository) UpdateBalance(ctx context.Context, id uuid.UUID, balance money.Money) error {
	defer r.lock()()
	rec, ok := r.s.accounts[id]
	if !ok {
		return domain.ErrAccountNotFound
	}
	rec.balance = balance.Cents()
	rec.updatedAt = time.Now()
	r.s.accounts[id] = rec
	return nil
}

func hydrate(rec accountRecord) (*ledger.Account, error) {
	return ledger.New().
		WithID(rec.id).
		WithOwnerID(rec.ownerID).
		WithBalance(money.New(rec.balance)).
		WithCreatedAt(rec.createdAt).
		WithUpdatedAt(rec.updatedAt).
		Build()
}

type transactionRepository struct {
	s    *store
	inTx bool
}

func (r *transactionRepository) lock() func() {
	if r.inTx {
		return func() {}
	}
	r.s.mu.Lock()
	return r.s.mu.Unlock
}

func (r *transactionRepository) Create(ctx context.Context, tx *ledger.Transaction) error {
	defer r.lock()()
	r.s.logs[tx.AccountID] = append(r.s.logs[tx.AccountID], *tx)
	return nil
}

func (r *transactionRepository) ListByAccount(ctx context.Context, accountID uuid.UUID) ([]*ledger.Transaction, error) {
	defer r.lock()()
	entries := r.s.logs[accountID]
	out := make([]*ledger.Transaction, len(entries))
	for i := range entries {
		cp := entries[i]
		out[i] = &cp
	}
	return out, nil
}
