package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	// DefaultJWTSecret is only acceptable outside production.
	DefaultJWTSecret = "super-secret-ldss-key"

	CredentialModeFixed  = "fixed"
	CredentialModeStored = "stored"
)

// Config aggregates runtime configuration for the service.
type Config struct {
	App      AppConfig
	Postgres PostgresConfig
	Redis    RedisConfig
	Logger   LoggerConfig
	Auth     AuthConfig
	CORS     CORSConfig
}

// AppConfig controls server level behavior.
type AppConfig struct {
	Name                  string
	Env                   string
	Host                  string
	Port                  string
	Version               string
	RequestTimeoutSeconds int
}

// PostgresConfig holds DB connection values.
type PostgresConfig struct {
	DSN            string
	MaxConns       int32
	MinConns       int32
	RunMigrations  bool
	MigrationsDir  string
	ConnMaxIdleSec int32
	ConnMaxLifeSec int32
}

// RedisConfig holds Redis connection values.
type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

// LoggerConfig configures logging behavior.
type LoggerConfig struct {
	Level string
}

// AuthConfig defines authentication parameters.
type AuthConfig struct {
	JWTSecret          string
	TokenTTLHours      int
	CookieName         string
	CredentialMode     string
	AdminSecret        string
	StaffSecret        string
	LearnerSecret      string
	BcryptCost         int
	LoginMaxAttempts   int
	LoginWindowSeconds int
}

// CORSConfig lists the browser origins allowed to send credentials.
type CORSConfig struct {
	AllowOrigins string
}

// Load reads configuration from environment variables, applying defaults where possible.
func Load() (*Config, error) {
	_ = godotenv.Load()

	redisDB, err := strconv.Atoi(getEnv("REDIS_DB", "0"))
	if err != nil {
		return nil, fmt.Errorf("invalid REDIS_DB: %w", err)
	}

	cfg := &Config{
		App: AppConfig{
			Name:                  getEnv("APP_NAME", "ldss-portal"),
			Env:                   getEnv("APP_ENV", "development"),
			Host:                  getEnv("APP_HOST", "0.0.0.0"),
			Port:                  getEnv("APP_PORT", "4000"),
			Version:               getEnv("APP_VERSION", "dev"),
			RequestTimeoutSeconds: getEnvAsInt("HTTP_REQUEST_TIMEOUT_SECONDS", 30),
		},
		Postgres: PostgresConfig{
			DSN:            os.Getenv("POSTGRES_DSN"),
			MaxConns:       int32(getEnvAsInt("POSTGRES_MAX_CONNS", 10)),
			MinConns:       int32(getEnvAsInt("POSTGRES_MIN_CONNS", 2)),
			RunMigrations:  getEnvAsBool("POSTGRES_RUN_MIGRATIONS", true),
			MigrationsDir:  getEnv("POSTGRES_MIGRATIONS_DIR", "migrations"),
			ConnMaxIdleSec: int32(getEnvAsInt("POSTGRES_CONN_MAX_IDLE_SECONDS", 30)),
			ConnMaxLifeSec: int32(getEnvAsInt("POSTGRES_CONN_MAX_LIFE_SECONDS", 300)),
		},
		Redis: RedisConfig{
			Addr:     os.Getenv("REDIS_ADDR"),
			Password: os.Getenv("REDIS_PASSWORD"),
			DB:       redisDB,
		},
		Logger: LoggerConfig{
			Level: getEnv("LOG_LEVEL", "info"),
		},
		Auth: AuthConfig{
			JWTSecret:          getEnv("JWT_SECRET", DefaultJWTSecret),
			TokenTTLHours:      getEnvAsInt("AUTH_TOKEN_TTL_HOURS", 24),
			CookieName:         getEnv("AUTH_COOKIE_NAME", "jwt"),
			CredentialMode:     strings.ToLower(getEnv("AUTH_CREDENTIAL_MODE", CredentialModeFixed)),
			AdminSecret:        getEnv("AUTH_ADMIN_SECRET", "LDSSadmin123"),
			StaffSecret:        getEnv("AUTH_STAFF_SECRET", "LDSSstaff123"),
			LearnerSecret:      getEnv("AUTH_LEARNER_SECRET", "LDSS2025"),
			BcryptCost:         getEnvAsInt("AUTH_BCRYPT_COST", 10),
			LoginMaxAttempts:   getEnvAsInt("AUTH_LOGIN_MAX_ATTEMPTS", 10),
			LoginWindowSeconds: getEnvAsInt("AUTH_LOGIN_WINDOW_SECONDS", 900),
		},
		CORS: CORSConfig{
			AllowOrigins: getEnv("CORS_ALLOW_ORIGINS", "http://localhost:5173,http://localhost:3000"),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate rejects combinations the service cannot run with.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.Auth.JWTSecret) == "" {
		return errors.New("JWT_SECRET must not be empty")
	}
	if c.App.IsProduction() && c.Auth.JWTSecret == DefaultJWTSecret {
		return errors.New("JWT_SECRET must be set explicitly in production")
	}
	switch c.Auth.CredentialMode {
	case CredentialModeFixed, CredentialModeStored:
	default:
		return fmt.Errorf("invalid AUTH_CREDENTIAL_MODE %q", c.Auth.CredentialMode)
	}
	// Stored credentials need the persistent account store.
	if c.Auth.CredentialMode == CredentialModeStored && strings.TrimSpace(c.Postgres.DSN) == "" {
		return errors.New("AUTH_CREDENTIAL_MODE=stored requires POSTGRES_DSN")
	}
	return nil
}

// Addr returns the HTTP bind address.
func (a AppConfig) Addr() string {
	return fmt.Sprintf("%s:%s", a.Host, a.Port)
}

// IsProduction reports whether secure cookies and strict secrets apply.
func (a AppConfig) IsProduction() bool {
	return strings.EqualFold(a.Env, "production")
}

// RequestTimeout returns the configured request timeout duration.
func (a AppConfig) RequestTimeout() time.Duration {
	if a.RequestTimeoutSeconds <= 0 {
		return 0
	}
	return time.Duration(a.RequestTimeoutSeconds) * time.Second
}

// TokenTTL returns the lifetime of issued tokens.
func (a AuthConfig) TokenTTL() time.Duration {
	if a.TokenTTLHours <= 0 {
		return 24 * time.Hour
	}
	return time.Duration(a.TokenTTLHours) * time.Hour
}

// LoginWindow returns the throttling window for failed logins.
func (a AuthConfig) LoginWindow() time.Duration {
	return time.Duration(a.LoginWindowSeconds) * time.Second
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

func getEnvAsInt(key string, fallback int) int {
	val := os.Getenv(key)
	if val == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(val)
	if err != nil {
		return fallback
	}
	return parsed
}

func getEnvAsBool(key string, fallback bool) bool {
	val := os.Getenv(key)
	if val == "" {
		return fallback
	}
	parsed, err := strconv.ParseBool(val)
	if err != nil {
		return fallback
	}
	return parsed
}
