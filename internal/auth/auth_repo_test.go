package auth_test

import (
	"context"
	"regexp"
	"testing"
	"time"

	"go-salary/internal/auth"
	"go-salary/internal/domain"
	"go-salary/internal/shared/connection"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var userColumns = []string{"id", "name", "email", "password", "role", "created_at", "updated_at"}

func setupRepoTest(t *testing.T) (auth.Repository, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	gormDB, err := gorm.Open(postgres.New(postgres.Config{Conn: db}), connection.GormConfig())
	require.NoError(t, err)

	return auth.NewRepository(gormDB), mock
}

func TestAuthRepository_GetByEmail(t *testing.T) {
	repo, mock := setupRepoTest(t)
	ctx := context.Background()
	now := time.Now()

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "users" WHERE email = $1`)).
		WillReturnRows(sqlmock.NewRows(userColumns).
			AddRow(1, "Admin", "admin@example.com", "$2a$10$hash", "ADMIN", now, now))

	user, err := repo.GetByEmail(ctx, "admin@example.com")

	require.NoError(t, err)
	assert.Equal(t, uint(1), user.ID)
	assert.True(t, user.HasPassword())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAuthRepository_GetByID_NotFound(t *testing.T) {
	repo, mock := setupRepoTest(t)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "users" WHERE id = $1`)).
		WillReturnRows(sqlmock.NewRows(userColumns))

	user, err := repo.GetByID(context.Background(), 99)

	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
	assert.Nil(t, user)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAuthRepository_Create(t *testing.T) {
	repo, mock := setupRepoTest(t)
	hash := "$2a$10$hash"
	user := &auth.User{Name: "Admin", Email: "admin@example.com", Password: &hash, Role: domain.RoleAdmin}

	mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO "users"`)).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(1))

	require.NoError(t, repo.Create(context.Background(), user))
	assert.Equal(t, uint(1), user.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAuthRepository_UpdateCredentials(t *testing.T) {
	repo, mock := setupRepoTest(t)
	hash := "$2a$10$hash"
	user := &auth.User{ID: 4, Name: "Ann", Email: "ann@example.com", Password: &hash, Role: domain.RoleAdmin}

	// email tidak boleh ikut ter-update
	mock.ExpectExec(`UPDATE "users" SET "name"=\$1,"password"=\$2,"role"=\$3,"updated_at"=\$4 WHERE "id" = \$5`).
		WithArgs("Ann", hash, domain.RoleAdmin, sqlmock.AnyArg(), 4).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.UpdateCredentials(context.Background(), user))
	assert.NoError(t, mock.ExpectationsWereMet())
}
