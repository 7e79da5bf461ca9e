package salary_test

import (
	"context"
	"regexp"
	"testing"
	"time"

	"go-salary/internal/salary"
	"go-salary/internal/shared/connection"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var recordColumns = []string{
	"id", "name", "email", "password", "role",
	"salary_local_currency", "salary_euros", "commission",
	"created_at", "updated_at",
}

func setupRepoTest(t *testing.T) (salary.Repository, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	gormDB, err := gorm.Open(postgres.New(postgres.Config{Conn: db}), connection.GormConfig())
	require.NoError(t, err)

	return salary.NewRepository(gormDB), mock
}

func TestSalaryRepository_FindByEmail(t *testing.T) {
	repo, mock := setupRepoTest(t)
	ctx := context.Background()
	now := time.Now()

	t.Run("found", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "users" WHERE email = $1`)).
			WillReturnRows(sqlmock.NewRows(recordColumns).
				AddRow(7, "Ann", "ann@example.com", nil, "USER", "1000.00", "800.00", "500.00", now, now))

		record, err := repo.FindByEmail(ctx, "ann@example.com")

		require.NoError(t, err)
		assert.Equal(t, uint(7), record.ID)
		assert.Nil(t, record.Password)
		assert.True(t, record.SalaryEuros.Valid)
		assert.True(t, record.DisplayedSalary().Equal(decimal.RequireFromString("1300")))
	})

	t.Run("null salaries", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "users" WHERE email = $1`)).
			WillReturnRows(sqlmock.NewRows(recordColumns).
				AddRow(1, "Admin", "admin@example.com", "$2a$10$hash", "ADMIN", nil, nil, "500.00", now, now))

		record, err := repo.FindByEmail(ctx, "admin@example.com")

		require.NoError(t, err)
		assert.False(t, record.SalaryEuros.Valid)
		assert.False(t, record.SalaryLocalCurrency.Valid)
		assert.True(t, record.DisplayedSalary().Equal(decimal.RequireFromString("500")))
	})

	t.Run("not found", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "users" WHERE email = $1`)).
			WillReturnRows(sqlmock.NewRows(recordColumns))

		record, err := repo.FindByEmail(ctx, "ghost@example.com")

		assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
		assert.Nil(t, record)
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSalaryRepository_FindAll(t *testing.T) {
	repo, mock := setupRepoTest(t)
	now := time.Now()

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "users" ORDER BY id ASC`)).
		WillReturnRows(sqlmock.NewRows(recordColumns).
			AddRow(1, "Ann", "ann@example.com", nil, "USER", "1000.00", "800.00", "600.00", now, now).
			AddRow(2, "Bob", "bob@example.com", nil, "USER", "10.00", "20.00", "500.00", now, now))

	records, err := repo.FindAll(context.Background())

	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, "ann@example.com", records[0].Email)
	assert.True(t, records[0].DisplayedSalary().Equal(decimal.RequireFromString("1400")))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSalaryRepository_Create(t *testing.T) {
	repo, mock := setupRepoTest(t)

	mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO "users"`)).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(11))

	record := &salary.SalaryRecord{
		Name:                "Ann",
		Email:               "ann@example.com",
		Role:                "USER",
		SalaryLocalCurrency: decimal.NewNullDecimal(decimal.RequireFromString("1000")),
		SalaryEuros:         decimal.NewNullDecimal(decimal.RequireFromString("800")),
		Commission:          salary.DefaultCommission,
	}
	err := repo.Create(context.Background(), record)

	require.NoError(t, err)
	assert.Equal(t, uint(11), record.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSalaryRepository_UpdateCommission(t *testing.T) {
	repo, mock := setupRepoTest(t)
	record := &salary.SalaryRecord{ID: 3, Email: "ann@example.com", Commission: decimal.RequireFromString("600")}

	t.Run("writes only commission", func(t *testing.T) {
		mock.ExpectExec(`UPDATE "users" SET "commission"=\$1,"updated_at"=\$2 WHERE "id" = \$3`).
			WillReturnResult(sqlmock.NewResult(0, 1))

		assert.NoError(t, repo.UpdateCommission(context.Background(), record))
	})

	t.Run("row vanished", func(t *testing.T) {
		mock.ExpectExec(`UPDATE "users" SET "commission"=\$1`).
			WillReturnResult(sqlmock.NewResult(0, 0))

		err := repo.UpdateCommission(context.Background(), record)
		assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSalaryRepository_UpdateSubmission(t *testing.T) {
	repo, mock := setupRepoTest(t)

	mock.ExpectExec(`UPDATE "users" SET "name"=\$1,"salary_local_currency"=\$2,"salary_euros"=\$3,"updated_at"=\$4 WHERE "id" = \$5`).
		WillReturnResult(sqlmock.NewResult(0, 1))

	record := &salary.SalaryRecord{
		ID:                  3,
		Name:                "Ann",
		SalaryLocalCurrency: decimal.NewNullDecimal(decimal.RequireFromString("1")),
		SalaryEuros:         decimal.NewNullDecimal(decimal.RequireFromString("2")),
	}
	assert.NoError(t, repo.UpdateSubmission(context.Background(), record))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSalaryRepository_Delete(t *testing.T) {
	repo, mock := setupRepoTest(t)

	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM "users" WHERE "users"."id" = $1`)).
		WithArgs(5).
		WillReturnResult(sqlmock.NewResult(0, 1))

	assert.NoError(t, repo.Delete(context.Background(), &salary.SalaryRecord{ID: 5}))
	assert.NoError(t, mock.ExpectationsWereMet())
}
