package ledger

import (
	"time"

	"github.com/google/uuid"

	"github.com/minibank/ledger/pkg/domain/money"
)

// Kind classifies a transaction. The amount is always strictly positive;
// the sign of the balance effect is implied by the kind, never encoded as a
// negative amount.
type Kind string

const (
	KindDeposit  Kind = "deposit"
	KindWithdraw Kind = "withdraw"
)

// Transaction is one immutable entry in an account's append-only log.
// Balance holds the account balance immediately after the entry was
// applied, which lets a statement be reconciled without replaying it.
type Transaction struct {
	ID        uuid.UUID
	AccountID uuid.UUID
	Kind      Kind
	Amount    money.Money
	Balance   money.Money
	CreatedAt time.Time
}

// NewTransaction creates a log entry at the moment an operation is
// accepted. The timestamp is assigned here, inside the account's critical
// section, so entries stay monotonic per account.
func NewTransaction(accountID uuid.UUID, kind Kind, amount, balance money.Money) *Transaction {
	return &Transaction{
		ID:        uuid.New(),
		AccountID: accountID,
		Kind:      kind,
		Amount:    amount,
		Balance:   balance,
		CreatedAt: time.Now(),
	}
}

// NewTransactionFromData rebuilds a Transaction from raw data. This
// bypasses invariants and is only for repository hydration and tests.
func NewTransactionFromData(
	id, accountID uuid.UUID,
	kind Kind,
	amount, balance money.Money,
	created time.Time,
) *Transaction {
	return &Transaction{
		ID:        id,
		AccountID: accountID,
		Kind:      kind,
		Amount:    amount,
		Balance:   balance,
		CreatedAt: created,
	}
}

// Signed returns the balance effect of the entry: the amount for deposits,
// its negation for withdrawals.
func (t *Transaction) Signed() int64 {
	if t.Kind == KindWithdraw {
		return -t.Amount.Cents()
	}
	return t.Amount.Cents()
}
