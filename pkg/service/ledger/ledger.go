// Package ledger implements the ledger engine: the orchestrator that
// validates inputs, acquires the per-account guard, mutates balance and
// log as one atomic unit, and reports the post-operation state.
//
// The engine owns neither store. It coordinates the account repository and
// the transaction log through a unit of work so the two are never left
// inconsistent with each other, even when a commit fails.
package ledger

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/minibank/ledger/pkg/config"
	"github.com/minibank/ledger/pkg/domain"
	domledger "github.com/minibank/ledger/pkg/domain/ledger"
	"github.com/minibank/ledger/pkg/domain/money"
	"github.com/minibank/ledger/pkg/eventbus"
	"github.com/minibank/ledger/pkg/lock"
	"github.com/minibank/ledger/pkg/repository"
)

// Service provides the ledger operations: account creation, deposits,
// withdrawals, and statements.
type Service struct {
	uow    repository.UnitOfWork
	locks  *lock.Manager
	bus    eventbus.EventBus
	logger *slog.Logger
}

// NewService creates a Service from the shared dependency bundle.
func NewService(deps config.Deps) *Service {
	return &Service{
		uow:    deps.Uow,
		locks:  deps.Locks,
		bus:    deps.EventBus,
		logger: deps.Logger,
	}
}

// CreateAccount creates a zero-balance account for the owner. A second
// attempt for the same owner fails with ErrDuplicateOwner; the original
// account is untouched.
func (s *Service) CreateAccount(ctx context.Context, ownerID uuid.UUID) (a *domledger.Account, err error) {
	logger := s.logger.With("operation", "create_account", "ownerID", ownerID)
	err = s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		repo, err := uow.AccountRepository()
		if err != nil {
			return err
		}
		if _, err := repo.GetByOwner(ctx, ownerID); err == nil {
			return domain.ErrDuplicateOwner
		} else if !errors.Is(err, domain.ErrAccountNotFound) {
			return err
		}
		a, err = domledger.New().WithOwnerID(ownerID).Build()
		if err != nil {
			return err
		}
		return repo.Create(ctx, a)
	})
	if err != nil {
		a = nil
		logger.Error("account creation failed", "error", err)
		return nil, s.classify(err)
	}
	logger.Info("account created", "accountID", a.ID)
	s.publish(ctx, domledger.AccountCreatedEvent{
		AccountID: a.ID,
		OwnerID:   ownerID,
		Timestamp: a.CreatedAt,
	})
	return a, nil
}

// Deposit adds funds to the account and appends the matching log entry in
// one commit. Returns the created transaction, whose Balance field carries
// the post-operation balance.
func (s *Service) Deposit(ctx context.Context, accountID uuid.UUID, amount money.Money) (*domledger.Transaction, error) {
	return s.mutate(ctx, accountID, domledger.KindDeposit, amount)
}

// Withdraw removes funds from the account, rejecting any amount that would
// take the balance below zero. Withdrawing the exact balance is allowed.
func (s *Service) Withdraw(ctx context.Context, accountID uuid.UUID, amount money.Money) (*domledger.Transaction, error) {
	return s.mutate(ctx, accountID, domledger.KindWithdraw, amount)
}

// mutate is the single state transition shared by Deposit and Withdraw:
// validate, lock the account, re-read state, apply, and commit balance and
// log together. Once inside the critical section the operation runs to
// completion; cancellation is honored only before the lock is taken.
func (s *Service) mutate(ctx context.Context, accountID uuid.UUID, kind domledger.Kind, amount money.Money) (*domledger.Transaction, error) {
	op := string(kind)
	logger := s.logger.With("operation", op, "accountID", accountID, "amount", amount.String())

	if !amount.IsPositive() {
		logger.Warn("rejected non-positive amount")
		s.rejected(ctx, accountID, op, domain.ErrInvalidAmount)
		return nil, domain.ErrInvalidAmount
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var tx *domledger.Transaction
	err := s.locks.WithAccountLock(accountID, func() error {
		return s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
			accounts, err := uow.AccountRepository()
			if err != nil {
				return err
			}
			transactions, err := uow.TransactionRepository()
			if err != nil {
				return err
			}

			a, err := accounts.Get(ctx, accountID)
			if err != nil {
				return err
			}

			var balance money.Money
			switch kind {
			case domledger.KindDeposit:
				if err := a.ValidateDeposit(amount); err != nil {
					return err
				}
				balance, err = a.Balance.Add(amount)
			default:
				if err := a.ValidateWithdraw(amount); err != nil {
					return err
				}
				balance, err = a.Balance.Subtract(amount)
			}
			if err != nil {
				return err
			}

			if err := accounts.UpdateBalance(ctx, accountID, balance); err != nil {
				return err
			}
			tx = domledger.NewTransaction(accountID, kind, amount, balance)
			return transactions.Create(ctx, tx)
		})
	})
	if err != nil {
		err = s.classify(err)
		logger.Error("operation failed", "error", err)
		s.rejected(ctx, accountID, op, err)
		return nil, err
	}

	logger.Info("operation committed", "transactionID", tx.ID, "balance", tx.Balance.String())
	s.committed(ctx, tx)
	return tx, nil
}

// GetBalance returns the account's current balance.
func (s *Service) GetBalance(ctx context.Context, accountID uuid.UUID) (money.Money, error) {
	repo, err := s.uow.AccountRepository()
	if err != nil {
		return money.Zero(), s.classify(err)
	}
	a, err := repo.Get(ctx, accountID)
	if err != nil {
		return money.Zero(), s.classify(err)
	}
	return a.Balance, nil
}

// GetStatement returns the account's transactions in creation order,
// oldest first. The read takes no lock: it may observe a slightly stale
// but always internally consistent snapshot, since every entry it returns
// was committed together with its balance change.
func (s *Service) GetStatement(ctx context.Context, accountID uuid.UUID) ([]*domledger.Transaction, error) {
	accounts, err := s.uow.AccountRepository()
	if err != nil {
		return nil, s.classify(err)
	}
	if _, err := accounts.Get(ctx, accountID); err != nil {
		return nil, s.classify(err)
	}
	transactions, err := s.uow.TransactionRepository()
	if err != nil {
		return nil, s.classify(err)
	}
	entries, err := transactions.ListByAccount(ctx, accountID)
	if err != nil {
		return nil, s.classify(err)
	}
	return entries, nil
}

// classify passes domain sentinels and context errors through unchanged
// and folds everything else into ErrStorageFault, so callers always see a
// specific kind.
func (s *Service) classify(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, domain.ErrInvalidAmount),
		errors.Is(err, domain.ErrInvalidOwner),
		errors.Is(err, domain.ErrDuplicateOwner),
		errors.Is(err, domain.ErrAccountNotFound),
		errors.Is(err, domain.ErrInsufficientFunds),
		errors.Is(err, domain.ErrStorageFault),
		errors.Is(err, context.Canceled),
		errors.Is(err, context.DeadlineExceeded):
		return err
	default:
		return fmt.Errorf("%w: %v", domain.ErrStorageFault, err)
	}
}

func (s *Service) publish(ctx context.Context, event domain.Event) {
	if s.bus == nil {
		return
	}
	if err := s.bus.Publish(ctx, event); err != nil {
		s.logger.Warn("event publish failed", "event", event.Type(), "error", err)
	}
}

func (s *Service) committed(ctx context.Context, tx *domledger.Transaction) {
	var event domain.Event
	switch tx.Kind {
	case domledger.KindWithdraw:
		event = domledger.WithdrawCommittedEvent{
			AccountID:     tx.AccountID,
			TransactionID: tx.ID,
			Amount:        tx.Amount.Cents(),
			Balance:       tx.Balance.Cents(),
			Timestamp:     tx.CreatedAt,
		}
	default:
		event = domledger.DepositCommittedEvent{
			AccountID:     tx.AccountID,
			TransactionID: tx.ID,
			Amount:        tx.Amount.Cents(),
			Balance:       tx.Balance.Cents(),
			Timestamp:     tx.CreatedAt,
		}
	}
	s.publish(ctx, event)
}

func (s *Service) rejected(ctx context.Context, accountID uuid.UUID, op string, reason error) {
	s.publish(ctx, domledger.OperationRejectedEvent{
		AccountID: accountID,
		Operation: op,
		Reason:    reason.Error(),
		Timestamp: time.Now(),
	})
}
