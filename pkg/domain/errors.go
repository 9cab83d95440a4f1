// Package domain holds the error taxonomy and event contract shared by the
// ledger core. Every rejected operation maps to exactly one of these
// sentinels so callers can render precise failures with errors.Is.
package domain

import "errors"

var (
	// ErrInvalidAmount is returned for non-positive, malformed, or
	// unparsable monetary values.
	ErrInvalidAmount = errors.New("invalid amount")

	// ErrInvalidOwner is returned when account creation names a missing or
	// nil owner id.
	ErrInvalidOwner = errors.New("invalid owner id")

	// ErrDuplicateOwner is returned when account creation is attempted for
	// an owner that already has an account.
	ErrDuplicateOwner = errors.New("owner already has an account")

	// ErrAccountNotFound is returned when an operation references an
	// unknown account id.
	ErrAccountNotFound = errors.New("account not found")

	// ErrInsufficientFunds is returned when a withdrawal exceeds the
	// current balance.
	ErrInsufficientFunds = errors.New("insufficient funds")

	// ErrStorageFault is returned when the persistence collaborator is
	// unreachable or a commit fails. The atomic update is rolled back;
	// neither balance nor log reflects a partial change.
	ErrStorageFault = errors.New("storage fault")
)

// Event is implemented by all domain events published on the event bus.
type Event interface {
	Type() string
}
