package ledger

import (
	"time"

	"github.com/google/uuid"
)

// AccountCreatedEvent is published after an account is committed.
type AccountCreatedEvent struct {
	AccountID uuid.UUID
	OwnerID   uuid.UUID
	Timestamp time.Time
}

// Type returns the event type name.
func (e AccountCreatedEvent) Type() string { return "AccountCreatedEvent" }

// DepositCommittedEvent is published after a deposit's balance update and
// log append have committed together.
type DepositCommittedEvent struct {
	AccountID     uuid.UUID
	TransactionID uuid.UUID
	Amount        int64 // minor units
	Balance       int64 // minor units, post-operation
	Timestamp     time.Time
}

// Type returns the event type name.
func (e DepositCommittedEvent) Type() string { return "DepositCommittedEvent" }

// WithdrawCommittedEvent is published after a withdrawal has committed.
type WithdrawCommittedEvent struct {
	AccountID     uuid.UUID
	TransactionID uuid.UUID
	Amount        int64
	Balance       int64
	Timestamp     time.Time
}

// Type returns the event type name.
func (e WithdrawCommittedEvent) Type() string { return "WithdrawCommittedEvent" }

// OperationRejectedEvent is published when an operation fails validation.
// The account state is untouched.
type OperationRejectedEvent struct {
	AccountID uuid.UUID
	Operation string
	Reason    string
	Timestamp time.Time
}

// Type returns the event type name.
func (e OperationRejectedEvent) Type() string { return "OperationRejectedEvent" }
