// Package config loads service settings from EMPLOYEES_* environment
// variables. A .env file in the working directory is read first when present.
package config

import (
    "fmt"
    "strings"

    "github.com/go-playground/validator/v10"
    _ "github.com/joho/godotenv/autoload"
    "github.com/knadh/koanf/providers/env"
    "github.com/knadh/koanf/v2"
)

// EnvPrefix is stripped from variable names before mapping them to keys,
// e.g. EMPLOYEES_DATABASE_URL -> database_url.
const EnvPrefix = "EMPLOYEES_"

// Storage backends.
const (
    StoreMemory   = "memory"
    StorePostgres = "postgres"
    StoreORM      = "orm"
)

// Config is the runtime configuration of the employees service.
type Config struct {
    Addr            string `koanf:"addr" validate:"required"`
    Store           string `koanf:"store" validate:"oneof=memory postgres orm"`
    DatabaseURL     string `koanf:"database_url" validate:"required_if=Store postgres"`
    ORMDialect      string `koanf:"orm_dialect" validate:"oneof=postgres sqlite"`
    ORMDSN          string `koanf:"orm_dsn" validate:"required_if=Store orm"`
    LogLevel        string `koanf:"log_level"`
    LogFormat       string `koanf:"log_format" validate:"oneof=json text"`
    LogFile         string `koanf:"log_file"`
    DevSeed         bool   `koanf:"dev_seed"`
    MigrateOnStart  bool   `koanf:"migrate_on_start"`
    ShutdownTimeout int    `koanf:"shutdown_timeout" validate:"gte=1"` // seconds
}

// Default returns the settings used when nothing is configured: an in-memory
// store on :8080 with JSON logs to stdout.
func Default() Config {
    return Config{
        Addr:            ":8080",
        Store:           StoreMemory,
        ORMDialect:      "sqlite",
        ORMDSN:          "file:employees.db?_pragma=foreign_keys(1)",
        LogLevel:        "info",
        LogFormat:       "json",
        DevSeed:         true,
        ShutdownTimeout: 10,
    }
}

// Load reads the environment over Default and validates the result.
func Load() (*Config, error) {
    k := koanf.New(".")
    err := k.Load(env.Provider(EnvPrefix, ".", func(s string) string {
        return strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
    }), nil)
    if err != nil {
        return nil, fmt.Errorf("config: load env: %w", err)
    }

    cfg := Default()
    if err := k.Unmarshal("", &cfg); err != nil {
        return nil, fmt.Errorf("config: unmarshal: %w", err)
    }
    if err := cfg.Validate(); err != nil {
        return nil, err
    }
    return &cfg, nil
}

func (c *Config) normalize() {
    c.Store = strings.ToLower(strings.TrimSpace(c.Store))
    c.ORMDialect = strings.ToLower(strings.TrimSpace(c.ORMDialect))
    c.LogFormat = strings.ToLower(strings.TrimSpace(c.LogFormat))
    c.DatabaseURL = strings.TrimSpace(c.DatabaseURL)
}

// Validate normalizes enum-like values and checks the struct tags. Flag
// overrides call it again after applying.
func (c *Config) Validate() error {
    c.normalize()
    if err := validator.New().Struct(c); err != nil {
        return fmt.Errorf("config: %w", err)
    }
    return nil
}
