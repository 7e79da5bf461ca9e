package auth

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

const RevokedTokenKeyPrefix = "auth:revoked:"

func RevokedTokenKey(jti string) string {
	return RevokedTokenKeyPrefix + jti
}

// TokenStore remembers revoked access tokens until they would have expired anyway.
//
//go:generate mockgen -source=token_store.go -destination=mock/token_store_mock.go -package=mock
type TokenStore interface {
	Revoke(ctx context.Context, jti string, expiresAt time.Time) error
	IsRevoked(ctx context.Context, jti string) (bool, error)
}

type redisTokenStore struct {
	rdb *redis.Client
}

func NewRedisTokenStore(rdb *redis.Client) TokenStore {
	return &redisTokenStore{rdb: rdb}
}

func (s *redisTokenStore) Revoke(ctx context.Context, jti string, expiresAt time.Time) error {
	// Token sudah kedaluwarsa, tidak perlu disimpan
	if !expiresAt.After(time.Now()) {
		return nil
	}
	return s.rdb.SetArgs(ctx, RevokedTokenKey(jti), "1", redis.SetArgs{ExpireAt: expiresAt}).Err()
}

func (s *redisTokenStore) IsRevoked(ctx context.Context, jti string) (bool, error) {
	n, err := s.rdb.Exists(ctx, RevokedTokenKey(jti)).Result()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}
