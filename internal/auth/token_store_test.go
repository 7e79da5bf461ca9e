package auth_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"go-salary/internal/auth"

	"github.com/go-redis/redismock/v9"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRedisTokenStore_Revoke(t *testing.T) {
	ctx := context.Background()

	t.Run("stores jti until expiry", func(t *testing.T) {
		rdb, mock := redismock.NewClientMock()
		store := auth.NewRedisTokenStore(rdb)

		expiresAt := time.Now().Add(time.Hour).Truncate(time.Second)
		mock.ExpectSetArgs(auth.RevokedTokenKey("jti-1"), "1", redis.SetArgs{ExpireAt: expiresAt}).SetVal("OK")

		require.NoError(t, store.Revoke(ctx, "jti-1", expiresAt))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("already expired token is not stored", func(t *testing.T) {
		rdb, mock := redismock.NewClientMock()
		store := auth.NewRedisTokenStore(rdb)

		require.NoError(t, store.Revoke(ctx, "jti-2", time.Now().Add(-time.Minute)))
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestRedisTokenStore_IsRevoked(t *testing.T) {
	ctx := context.Background()
	rdb, mock := redismock.NewClientMock()
	store := auth.NewRedisTokenStore(rdb)

	mock.ExpectExists(auth.RevokedTokenKey("revoked")).SetVal(1)
	mock.ExpectExists(auth.RevokedTokenKey("active")).SetVal(0)
	mock.ExpectExists(auth.RevokedTokenKey("broken")).SetErr(errors.New("connection refused"))

	revoked, err := store.IsRevoked(ctx, "revoked")
	require.NoError(t, err)
	assert.True(t, revoked)

	revoked, err = store.IsRevoked(ctx, "active")
	require.NoError(t, err)
	assert.False(t, revoked)

	_, err = store.IsRevoked(ctx, "broken")
	assert.Error(t, err)

	assert.NoError(t, mock.ExpectationsWereMet())
}
