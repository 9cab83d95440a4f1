package webapi

import (
	"time"

	"github.com/minibank/ledger/pkg/domain/ledger"
)

// CreateAccountRequest opens an account for an owner. The owner id is an
// already-validated identifier supplied by the caller; authentication is
// the caller's concern, not the ledger's.
type CreateAccountRequest struct {
	OwnerID string `json:"owner_id" validate:"required,uuid"`
}

// AmountRequest carries a monetary amount as decimal text. Parsing and
// precision checks happen in the money package, not here.
type AmountRequest struct {
	Amount string `json:"amount" validate:"required"`
}

// AccountResponse is the wire form of an account.
type AccountResponse struct {
	AccountID string    `json:"account_id"`
	OwnerID   string    `json:"owner_id"`
	Balance   string    `json:"balance"`
	CreatedAt time.Time `json:"created_at"`
}

// BalanceResponse reports the post-operation or current balance.
type BalanceResponse struct {
	AccountID string `json:"account_id"`
	Balance   string `json:"balance"`
}

// TransactionResponse is one statement line.
type TransactionResponse struct {
	ID        string    `json:"id"`
	Kind      string    `json:"kind"`
	Amount    string    `json:"amount"`
	Balance   string    `json:"balance"`
	Timestamp time.Time `json:"timestamp"`
}

func newAccountResponse(a *ledger.Account) AccountResponse {
	return AccountResponse{
		AccountID: a.ID.String(),
		OwnerID:   a.OwnerID.String(),
		Balance:   a.Balance.String(),
		CreatedAt: a.CreatedAt,
	}
}

func newTransactionResponse(tx *ledger.Transaction) TransactionResponse {
	return TransactionResponse{
		ID:        tx.ID.String(),
		Kind:      string(tx.Kind),
		Amount:    tx.Amount.String(),
		Balance:   tx.Balance.String(),
		Timestamp: tx.CreatedAt,
	}
}
