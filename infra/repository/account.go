package repository

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/minibank/ledger/pkg/domain"
	"github.com/minibank/ledger/pkg/domain/ledger"
	"github.com/minibank/ledger/pkg/domain/money"
	"github.com/minibank/ledger/pkg/repository"
)

type accountRepository struct {
	db *gorm.DB
}

// NewAccountRepository creates an account repository bound to the given
// session.
func NewAccountRepository(db *gorm.DB) repository.AccountRepository {
	return &accountRepository{db: db}
}

func (r *accountRepository) Create(ctx context.Context, a *ledger.Account) error {
	m := Account{
		ID:        a.ID,
		OwnerID:   a.OwnerID,
		Balance:   a.Balance.Cents(),
		CreatedAt: a.CreatedAt,
		UpdatedAt: a.UpdatedAt,
	}
	if err := r.db.WithContext(ctx).Create(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return domain.ErrDuplicateOwner
		}
		return err
	}
	return nil
}

func (r *accountRepository) Get(ctx context.Context, id uuid.UUID) (*ledger.Account, error) {
	var m Account
	if err := r.db.WithContext(ctx).First(&m, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrAccountNotFound
		}
		return nil, err
	}
	return mapModelToAccount(&m)
}

func (r *accountRepository) GetByOwner(ctx context.Context, ownerID uuid.UUID) (*ledger.Account, error) {
	var m Account
	if err := r.db.WithContext(ctx).First(&m, "owner_id = ?", ownerID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrAccountNotFound
		}
		return nil, err
	}
	return mapModelToAccount(&m)
}

func (r *accountRepository) UpdateBalance(ctx context.Context, id uuid.UUID, balance money.Money) error {
	res := r.db.WithContext(ctx).Model(&Account{}).Where("id = ?", id).Updates(map[string]any{
		"balance":    balance.Cents(),
		"updated_at": time.Now(),
	})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.ErrAccountNotFound
	}
	return nil
}

func mapModelToAccount(m *Account) (*ledger.Account, error) {
	return ledger.New().
		WithID(m.ID).
		WithOwnerID(m.OwnerID).
		WithBalance(money.New(m.Balance)).
		WithCreatedAt(m.CreatedAt).
		WithUpdatedAt(m.UpdatedAt).
		Build()
}
