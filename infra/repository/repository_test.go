package repository_test

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	infrarepo "github.com/minibank/ledger/infra/repository"
	"github.com/minibank/ledger/pkg/domain"
	"github.com/minibank/ledger/pkg/domain/ledger"
	"github.com/minibank/ledger/pkg/domain/money"
	"github.com/minibank/ledger/pkg/repository"
)

func setupTestDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()
	mockDb, mock, err := sqlmock.New()
	require.NoError(t, err)

	dialector := postgres.New(postgres.Config{
		Conn:       mockDb,
		DriverName: "postgres",
	})
	db, err := gorm.Open(dialector, &gorm.Config{
		SkipDefaultTransaction: true,
		TranslateError:         true,
		Logger:                 logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	t.Cleanup(func() {
		assert.NoError(t, mock.ExpectationsWereMet())
		_ = mockDb.Close()
	})
	return db, mock
}

func accountRows(a *ledger.Account) *sqlmock.Rows {
	return sqlmock.NewRows([]string{"id", "owner_id", "balance", "created_at", "updated_at"}).
		AddRow(a.ID, a.OwnerID, a.Balance.Cents(), a.CreatedAt, a.UpdatedAt)
}

func TestAccountRepositoryCreate(t *testing.T) {
	db, mock := setupTestDB(t)
	repo := infrarepo.NewAccountRepository(db)
	a, err := ledger.New().WithOwnerID(uuid.New()).Build()
	require.NoError(t, err)

	mock.ExpectExec(`INSERT INTO "accounts"`).
		WithArgs(a.ID, a.OwnerID, int64(0), sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))

	assert.NoError(t, repo.Create(context.Background(), a))
}

func TestAccountRepositoryCreateDuplicateOwner(t *testing.T) {
	db, mock := setupTestDB(t)
	repo := infrarepo.NewAccountRepository(db)
	a, err := ledger.New().WithOwnerID(uuid.New()).Build()
	require.NoError(t, err)

	mock.ExpectExec(`INSERT INTO "accounts"`).
		WithArgs(a.ID, a.OwnerID, int64(0), sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnError(gorm.ErrDuplicatedKey)

	assert.ErrorIs(t, repo.Create(context.Background(), a), domain.ErrDuplicateOwner)
}

func TestAccountRepositoryGet(t *testing.T) {
	db, mock := setupTestDB(t)
	repo := infrarepo.NewAccountRepository(db)
	a, err := ledger.New().
		WithOwnerID(uuid.New()).
		WithBalance(money.New(1234)).
		Build()
	require.NoError(t, err)

	mock.ExpectQuery(`SELECT \* FROM "accounts" WHERE id =`).
		WithArgs(a.ID, 1).
		WillReturnRows(accountRows(a))

	got, err := repo.Get(context.Background(), a.ID)
	require.NoError(t, err)
	assert.Equal(t, a.ID, got.ID)
	assert.Equal(t, int64(1234), got.Balance.Cents())
}

func TestAccountRepositoryGetNotFound(t *testing.T) {
	db, mock := setupTestDB(t)
	repo := infrarepo.NewAccountRepository(db)
	id := uuid.New()

	mock.ExpectQuery(`SELECT \* FROM "accounts" WHERE id =`).
		WithArgs(id, 1).
		WillReturnRows(sqlmock.NewRows([]string{"id", "owner_id", "balance", "created_at", "updated_at"}))

	_, err := repo.Get(context.Background(), id)
	assert.ErrorIs(t, err, domain.ErrAccountNotFound)
}

func TestAccountRepositoryGetByOwner(t *testing.T) {
	db, mock := setupTestDB(t)
	repo := infrarepo.NewAccountRepository(db)
	a, err := ledger.New().WithOwnerID(uuid.New()).Build()
	require.NoError(t, err)

	mock.ExpectQuery(`SELECT \* FROM "accounts" WHERE owner_id =`).
		WithArgs(a.OwnerID, 1).
		WillReturnRows(accountRows(a))

	got, err := repo.GetByOwner(context.Background(), a.OwnerID)
	require.NoError(t, err)
	assert.Equal(t, a.ID, got.ID)
}

func TestAccountRepositoryUpdateBalance(t *testing.T) {
	db, mock := setupTestDB(t)
	repo := infrarepo.NewAccountRepository(db)
	id := uuid.New()

	mock.ExpectExec(`UPDATE "accounts" SET`).
		WithArgs(int64(5000), sqlmock.AnyArg(), id).
		WillReturnResult(sqlmock.NewResult(0, 1))

	assert.NoError(t, repo.UpdateBalance(context.Background(), id, money.New(5000)))

	t.Run("no matching row", func(t *testing.T) {
		mock.ExpectExec(`UPDATE "accounts" SET`).
			WithArgs(int64(5000), sqlmock.AnyArg(), id).
			WillReturnResult(sqlmock.NewResult(0, 0))

		err := repo.UpdateBalance(context.Background(), id, money.New(5000))
		assert.ErrorIs(t, err, domain.ErrAccountNotFound)
	})
}

func TestTransactionRepositoryCreate(t *testing.T) {
	db, mock := setupTestDB(t)
	repo := infrarepo.NewTransactionRepository(db)
	tx := ledger.NewTransaction(uuid.New(), ledger.KindDeposit, money.New(100), money.New(100))

	mock.ExpectQuery(`INSERT INTO "transactions"`).
		WithArgs(tx.ID, tx.AccountID, "deposit", int64(100), int64(100), sqlmock.AnyArg()).
		WillReturnRows(sqlmock.NewRows([]string{"seq"}).AddRow(int64(1)))

	assert.NoError(t, repo.Create(context.Background(), tx))
}

func TestTransactionRepositoryListByAccount(t *testing.T) {
	db, mock := setupTestDB(t)
	repo := infrarepo.NewTransactionRepository(db)
	accountID := uuid.New()
	now := time.Now()

	rows := sqlmock.NewRows([]string{"seq", "id", "account_id", "kind", "amount", "balance", "created_at"}).
		AddRow(int64(1), uuid.New(), accountID, "deposit", int64(10000), int64(10000), now).
		AddRow(int64(2), uuid.New(), accountID, "withdraw", int64(3000), int64(7000), now)

	mock.ExpectQuery(`SELECT \* FROM "transactions" WHERE account_id = .+ ORDER BY seq ASC`).
		WithArgs(accountID).
		WillReturnRows(rows)

	entries, err := repo.ListByAccount(context.Background(), accountID)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, ledger.KindDeposit, entries[0].Kind)
	assert.Equal(t, int64(10000), entries[0].Amount.Cents())
	assert.Equal(t, ledger.KindWithdraw, entries[1].Kind)
	assert.Equal(t, int64(7000), entries[1].Balance.Cents())
}

func TestUoWDoCommitsBalanceAndLogTogether(t *testing.T) {
	db, mock := setupTestDB(t)
	uow := infrarepo.NewUoW(db)
	accountID := uuid.New()

	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE "accounts" SET`).
		WithArgs(int64(100), sqlmock.AnyArg(), accountID).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery(`INSERT INTO "transactions"`).
		WillReturnRows(sqlmock.NewRows([]string{"seq"}).AddRow(int64(1)))
	mock.ExpectCommit()

	err := uow.Do(context.Background(), func(tx repository.UnitOfWork) error {
		accounts, err := tx.AccountRepository()
		if err != nil {
			return err
		}
		if err := accounts.UpdateBalance(context.Background(), accountID, money.New(100)); err != nil {
			return err
		}
		transactions, err := tx.TransactionRepository()
		if err != nil {
			return err
		}
		entry := ledger.NewTransaction(accountID, ledger.KindDeposit, money.New(100), money.New(100))
		return transactions.Create(context.Background(), entry)
	})
	assert.NoError(t, err)
}

func TestUoWDoRollsBackOnError(t *testing.T) {
	db, mock := setupTestDB(t)
	uow := infrarepo.NewUoW(db)
	accountID := uuid.New()

	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE "accounts" SET`).
		WithArgs(int64(100), sqlmock.AnyArg(), accountID).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectRollback()

	err := uow.Do(context.Background(), func(tx repository.UnitOfWork) error {
		accounts, err := tx.AccountRepository()
		if err != nil {
			return err
		}
		if err := accounts.UpdateBalance(context.Background(), accountID, money.New(100)); err != nil {
			return err
		}
		return assert.AnError
	})
	assert.ErrorIs(t, err, assert.AnError)
}
