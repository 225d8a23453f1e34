package app

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"github.com/yungbote/panchayat-backend/internal/data/db"
	"github.com/yungbote/panchayat-backend/internal/observability"
	"github.com/yungbote/panchayat-backend/internal/platform/envutil"
	"github.com/yungbote/panchayat-backend/internal/platform/validate"
)

type Config struct {
	Port            string        `json:"PORT" validate:"required,numeric"`
	Environment     string        `json:"APP_ENV" validate:"required,oneof=development staging production test"`
	ShutdownTimeout time.Duration `json:"SHUTDOWN_TIMEOUT_SECONDS" validate:"gt=0"`

	DBDriver    string `json:"DB_DRIVER" validate:"oneof=postgres sqlite"`
	PostgresDSN string `json:"DATABASE_URL" validate:"required_if=DBDriver postgres"`
	SQLitePath  string `json:"SQLITE_PATH" validate:"required_if=DBDriver sqlite"`

	RedisAddr     string        `json:"REDIS_ADDR"`
	RedisPassword string        `json:"REDIS_PASSWORD"`
	RedisDB       int           `json:"REDIS_DB" validate:"gte=0"`
	CacheTTL      time.Duration `json:"CACHE_TTL_SECONDS" validate:"gt=0"`

	MetricsEnabled bool                     `json:"METRICS_ENABLED"`
	ServiceName    string                   `json:"OTEL_SERVICE_NAME" validate:"required"`
	Otel           observability.OtelConfig `json:"-"`
	AllowedOrigins []string                 `json:"CORS_ALLOWED_ORIGINS"`
}

// LoadConfig reads .env files when present (non-fatal) and then the process environment.
func LoadConfig() (Config, error) {
	_ = godotenv.Load(".env.local")
	_ = godotenv.Load()

	cfg := Config{
		Port:            envutil.String("PORT", "8080"),
		Environment:     envutil.String("APP_ENV", "development"),
		ShutdownTimeout: envutil.Seconds("SHUTDOWN_TIMEOUT_SECONDS", 15*time.Second),
		DBDriver:        strings.ToLower(envutil.String("DB_DRIVER", db.DriverPostgres)),
		PostgresDSN:     envutil.String("DATABASE_URL", ""),
		SQLitePath:      envutil.String("SQLITE_PATH", "panchayat.db"),
		RedisAddr:       envutil.String("REDIS_ADDR", ""),
		RedisPassword:   envutil.String("REDIS_PASSWORD", ""),
		RedisDB:         envutil.Int("REDIS_DB", 0),
		CacheTTL:        envutil.Seconds("CACHE_TTL_SECONDS", 300*time.Second),
		MetricsEnabled:  envutil.Bool("METRICS_ENABLED", true),
		Otel:            observability.OtelConfigFromEnv(),
		AllowedOrigins:  splitList(envutil.String("CORS_ALLOWED_ORIGINS", "")),
	}
	cfg.ServiceName = cfg.Otel.ServiceName
	if cfg.DBDriver == db.DriverPostgres && cfg.PostgresDSN == "" {
		cfg.PostgresDSN = postgresDSNFromParts()
	}

	if fe := validate.Struct(cfg); fe != nil {
		parts := make([]string, 0, len(fe))
		for _, field := range fe.Fields() {
			parts = append(parts, fmt.Sprintf("%s %s", field, strings.Join(fe[field], ", ")))
		}
		return Config{}, fmt.Errorf("invalid configuration: %s", strings.Join(parts, "; "))
	}
	return cfg, nil
}

// postgresDSNFromParts builds a URL DSN from POSTGRES_* variables. It returns "" when no
// host is configured.
func postgresDSNFromParts() string {
	host := envutil.String("POSTGRES_HOST", "")
	if host == "" {
		return ""
	}
	u := url.URL{
		Scheme: "postgres",
		User: url.UserPassword(
			envutil.String("POSTGRES_USER", "postgres"),
			envutil.String("POSTGRES_PASSWORD", ""),
		),
		Host: fmt.Sprintf("%s:%s", host, envutil.String("POSTGRES_PORT", "5432")),
		Path: "/" + envutil.String("POSTGRES_NAME", "panchayat"),
	}
	q := u.Query()
	q.Set("sslmode", envutil.String("POSTGRES_SSLMODE", "disable"))
	u.RawQuery = q.Encode()
	return u.String()
}

func splitList(raw string) []string {
	if raw == "" {
		return nil
	}
	var out []string
	for _, p := range strings.Split(raw, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
