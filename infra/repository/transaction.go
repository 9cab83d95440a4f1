package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/minibank/ledger/pkg/domain/ledger"
	"github.com/minibank/ledger/pkg/domain/money"
	"github.com/minibank/ledger/pkg/repository"
)

type transactionRepository struct {
	db *gorm.DB
}

// NewTransactionRepository creates a transaction log repository bound to
// the given session.
func NewTransactionRepository(db *gorm.DB) repository.TransactionRepository {
	return &transactionRepository{db: db}
}

func (r *transactionRepository) Create(ctx context.Context, tx *ledger.Transaction) error {
	m := Transaction{
		ID:        tx.ID,
		AccountID: tx.AccountID,
		Kind:      string(tx.Kind),
		Amount:    tx.Amount.Cents(),
		Balance:   tx.Balance.Cents(),
		CreatedAt: tx.CreatedAt,
	}
	return r.db.WithContext(ctx).Create(&m).Error
}

func (r *transactionRepository) ListByAccount(ctx context.Context, accountID uuid.UUID) ([]*ledger.Transaction, error) {
	var rows []Transaction
	if err := r.db.WithContext(ctx).
		Where("account_id = ?", accountID).
		Order("seq ASC").
		Find(&rows).Error; err != nil {
		return nil, err
	}
	out := make([]*ledger.Transaction, 0, len(rows))
	for i := range rows {
		out = append(out, ledger.NewTransactionFromData(
			rows[i].ID,
			rows[i].AccountID,
			ledger.Kind(rows[i].Kind),
			money.New(rows[i].Amount),
			money.New(rows[i].Balance),
			rows[i].CreatedAt,
		))
	}
	return out, nil
}
