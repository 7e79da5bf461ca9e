package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"go-salary/internal/events"

	"github.com/joho/godotenv"
)

type DBConfig struct {
	Host     string
	User     string
	Password string
	Name     string
	Port     string
	SSLMode  string
}

type KafkaConfig struct {
	Broker          string
	SubmissionTopic string
	GroupID         string
}

// AdminConfig describes the administrator account ensured at startup.
// Empty Email disables the bootstrap.
type AdminConfig struct {
	Name     string
	Email    string
	Password string
}

type Config struct {
	AppEnv        string
	Port          string
	DB            DBConfig
	RunMigrations bool
	RedisAddr     string
	JWTSecret     string
	TokenTTL      time.Duration
	Kafka         KafkaConfig
	Admin         AdminConfig
	ConnRetries   int
}

func (c Config) IsProduction() bool {
	return c.AppEnv == "production"
}

// Load reads .env (if present) and then the process environment.
func Load() (Config, error) {
	_ = godotenv.Load()
	return FromEnv()
}

// FromEnv builds a Config from the current environment without touching .env.
func FromEnv() (Config, error) {
	cfg := Config{
		AppEnv: getEnvOrDefault("APP_ENV", "development"),
		Port:   getEnvOrDefault("PORT", "3000"),
		DB: DBConfig{
			Host:     getEnvOrDefault("DB_HOST", "localhost"),
			User:     getEnvOrDefault("DB_USER", "postgres"),
			Password: os.Getenv("DB_PASSWORD"),
			Name:     getEnvOrDefault("DB_NAME", "salary"),
			Port:     getEnvOrDefault("DB_PORT", "5432"),
			SSLMode:  getEnvOrDefault("DB_SSLMODE", "disable"),
		},
		RedisAddr: getEnvOrDefault("REDIS_ADDR", "localhost:6379"),
		JWTSecret: os.Getenv("JWT_SECRET"),
		Kafka: KafkaConfig{
			Broker:          os.Getenv("KAFKA_BROKER"),
			SubmissionTopic: getEnvOrDefault("KAFKA_SUBMISSION_TOPIC", events.SalarySubmissionRequestedTopic),
			GroupID:         getEnvOrDefault("KAFKA_GROUP_ID", "go-salary-submission"),
		},
		Admin: AdminConfig{
			Name:     getEnvOrDefault("ADMIN_NAME", "Administrator"),
			Email:    strings.TrimSpace(os.Getenv("ADMIN_EMAIL")),
			Password: os.Getenv("ADMIN_PASSWORD"),
		},
	}

	var err error
	if cfg.RunMigrations, err = getBool("RUN_MIGRATIONS", true); err != nil {
		return Config{}, err
	}
	if cfg.TokenTTL, err = getDuration("TOKEN_TTL", 24*time.Hour); err != nil {
		return Config{}, err
	}
	if cfg.ConnRetries, err = getInt("CONN_MAX_RETRIES", 5); err != nil {
		return Config{}, err
	}

	if cfg.JWTSecret == "" {
		return Config{}, fmt.Errorf("JWT_SECRET is required")
	}
	if cfg.Admin.Email != "" && cfg.Admin.Password == "" {
		return Config{}, fmt.Errorf("ADMIN_PASSWORD is required when ADMIN_EMAIL is set")
	}

	return cfg, nil
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := strings.TrimSpace(os.Getenv(key)); value != "" {
		return value
	}
	return defaultValue
}

func getBool(key string, defaultValue bool) (bool, error) {
	raw := os.Getenv(key)
	if raw == "" {
		return defaultValue, nil
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return false, fmt.Errorf("%s: %w", key, err)
	}
	return v, nil
}

func getInt(key string, defaultValue int) (int, error) {
	raw := os.Getenv(key)
	if raw == "" {
		return defaultValue, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", key, err)
	}
	return v, nil
}

func getDuration(key string, defaultValue time.Duration) (time.Duration, error) {
	raw := os.Getenv(key)
	if raw == "" {
		return defaultValue, nil
	}
	v, err := time.ParseDuration(raw)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", key, err)
	}
	return v, nil
}
