package repository

import "context"

// UnitOfWork is the transaction boundary of the ledger. Repositories
// obtained inside Do share one storage session, so a balance update and
// its transaction append commit together or not at all; the
// reconciliation invariant holds by construction, not by repair.
type UnitOfWork interface {
	// Do executes fn within a transaction boundary. If fn returns an
	// error the transaction is rolled back and the error is returned
	// unchanged.
	Do(ctx context.Context, fn func(uow UnitOfWork) error) error

	// AccountRepository returns the account repository bound to the
	// current session.
	AccountRepository() (AccountRepository, error)

	// TransactionRepository returns the transaction repository bound to
	// the current session.
	TransactionRepository() (TransactionRepository, error)
}
