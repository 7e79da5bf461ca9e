package config_test

import (
	"testing"
	"time"

	"go-salary/internal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromEnv_Defaults(t *testing.T) {
	t.Setenv("JWT_SECRET", "secret")
	t.Setenv("PORT", "")
	t.Setenv("TOKEN_TTL", "")
	t.Setenv("ADMIN_EMAIL", "")
	t.Setenv("RUN_MIGRATIONS", "")

	cfg, err := config.FromEnv()
	require.NoError(t, err)

	assert.Equal(t, "3000", cfg.Port)
	assert.Equal(t, 24*time.Hour, cfg.TokenTTL)
	assert.True(t, cfg.RunMigrations)
	assert.Equal(t, "salary.submission.requested.v1", cfg.Kafka.SubmissionTopic)
	assert.Empty(t, cfg.Admin.Email)
}

func TestFromEnv_Overrides(t *testing.T) {
	t.Setenv("JWT_SECRET", "secret")
	t.Setenv("PORT", "8080")
	t.Setenv("TOKEN_TTL", "2h")
	t.Setenv("RUN_MIGRATIONS", "false")
	t.Setenv("APP_ENV", "production")
	t.Setenv("ADMIN_EMAIL", "")

	cfg, err := config.FromEnv()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, 2*time.Hour, cfg.TokenTTL)
	assert.False(t, cfg.RunMigrations)
	assert.True(t, cfg.IsProduction())
}

func TestFromEnv_Errors(t *testing.T) {
	t.Run("missing jwt secret", func(t *testing.T) {
		t.Setenv("JWT_SECRET", "")
		_, err := config.FromEnv()
		assert.ErrorContains(t, err, "JWT_SECRET")
	})

	t.Run("admin email without password", func(t *testing.T) {
		t.Setenv("JWT_SECRET", "secret")
		t.Setenv("ADMIN_EMAIL", "admin@example.com")
		t.Setenv("ADMIN_PASSWORD", "")
		_, err := config.FromEnv()
		assert.ErrorContains(t, err, "ADMIN_PASSWORD")
	})

	t.Run("bad duration", func(t *testing.T) {
		t.Setenv("JWT_SECRET", "secret")
		t.Setenv("ADMIN_EMAIL", "")
		t.Setenv("TOKEN_TTL", "tomorrow")
		_, err := config.FromEnv()
		assert.ErrorContains(t, err, "TOKEN_TTL")
	})
}
