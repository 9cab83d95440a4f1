// Package repository implements the ledger's repositories and unit of
// work on GORM with the Postgres driver. Storage models stay separate
// from domain entities; mapping happens at the repository edge.
package repository

import (
	"time"

	"github.com/google/uuid"
)

// Account is the accounts table: keyed by account id, with a unique index
// on owner id enforcing one account per owner at the storage layer too.
type Account struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	OwnerID   uuid.UUID `gorm:"type:uuid;uniqueIndex;not null"`
	Balance   int64     `gorm:"not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName specifies the table name for the Account model.
func (Account) TableName() string {
	return "accounts"
}

// Transaction is the transactions table. Seq is an auto-incrementing key
// that gives every account's entries a total order; statements read
// ascending by it.
type Transaction struct {
	Seq       int64     `gorm:"primaryKey;autoIncrement"`
	ID        uuid.UUID `gorm:"type:uuid;uniqueIndex;not null"`
	AccountID uuid.UUID `gorm:"type:uuid;index;not null"`
	Kind      string    `gorm:"type:varchar(16);not null"`
	Amount    int64     `gorm:"not null"`
	Balance   int64     `gorm:"not null"`
	CreatedAt time.Time
}

// TableName specifies the table name for the Transaction model.
func (Transaction) TableName() string {
	return "transactions"
}
