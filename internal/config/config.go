// Package config loads runtime settings from the environment and an optional
// config file.
package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/viper"
	"golang.org/x/crypto/bcrypt"
)

// Database drivers accepted by DATABASE_DRIVER.
const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
	DriverMemory   = "memory"
)

// Config holds runtime settings for the server.
type Config struct {
	AppPort           string
	DatabaseDriver    string
	DatabaseDSN       string
	DBMaxOpenConns    int
	DBMaxIdleConns    int
	DBConnMaxLifetime time.Duration
	JWTSecret         string
	BcryptCost        int
	FrontendURL       string
	RabbitMQURL       string // empty disables activity events
}

// SetDefaults registers the default value of every key on v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("APP_PORT", ":8080")
	v.SetDefault("DATABASE_DRIVER", DriverPostgres)
	v.SetDefault("DATABASE_DSN", "host=127.0.0.1 user=postgres password=postgres dbname=tododb port=5432 sslmode=disable")
	v.SetDefault("DB_MAX_OPEN_CONNS", 25)
	v.SetDefault("DB_MAX_IDLE_CONNS", 5)
	v.SetDefault("DB_CONN_MAX_LIFETIME", 30*time.Minute)
	v.SetDefault("BCRYPT_COST", bcrypt.DefaultCost)
	v.SetDefault("FRONTEND_URL", "http://localhost:3000")
	v.SetDefault("RABBITMQ_URL", "")
	v.SetDefault("JWT_SECRET", "")
}

// Load reads configuration from environment variables and, when CONFIG_FILE
// is set, from that file. Environment variables win over the file.
func Load(v *viper.Viper) (Config, error) {
	SetDefaults(v)
	v.AutomaticEnv()

	if file := v.GetString("CONFIG_FILE"); file != "" {
		v.SetConfigFile(file)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("failed to read config file %s: %w", file, err)
		}
	}

	cfg := Config{
		AppPort:           v.GetString("APP_PORT"),
		DatabaseDriver:    v.GetString("DATABASE_DRIVER"),
		DatabaseDSN:       v.GetString("DATABASE_DSN"),
		DBMaxOpenConns:    v.GetInt("DB_MAX_OPEN_CONNS"),
		DBMaxIdleConns:    v.GetInt("DB_MAX_IDLE_CONNS"),
		DBConnMaxLifetime: v.GetDuration("DB_CONN_MAX_LIFETIME"),
		JWTSecret:         v.GetString("JWT_SECRET"),
		BcryptCost:        v.GetInt("BCRYPT_COST"),
		FrontendURL:       v.GetString("FRONTEND_URL"),
		RabbitMQURL:       v.GetString("RABBITMQ_URL"),
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate reports the first invalid setting.
func (c Config) Validate() error {
	if c.JWTSecret == "" {
		return errors.New("JWT_SECRET is required")
	}
	switch c.DatabaseDriver {
	case DriverPostgres, DriverSQLite:
		if c.DatabaseDSN == "" {
			return fmt.Errorf("DATABASE_DSN is required for driver %q", c.DatabaseDriver)
		}
	case DriverMemory:
	default:
		return fmt.Errorf("DATABASE_DRIVER %q is not one of %s, %s, %s", c.DatabaseDriver, DriverPostgres, DriverSQLite, DriverMemory)
	}
	if c.BcryptCost < bcrypt.MinCost || c.BcryptCost > bcrypt.MaxCost {
		return fmt.Errorf("BCRYPT_COST must be between %d and %d", bcrypt.MinCost, bcrypt.MaxCost)
	}
	return nil
}
