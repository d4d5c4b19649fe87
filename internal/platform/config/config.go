package config

import (
	"errors"
	"fmt"
	"time"
)

// Config adalah struct utama yang menampung semua konfigurasi
type Config struct {
	Server     ServerConfig     `mapstructure:"server"`
	Database   DatabaseConfig   `mapstructure:"database"`
	Redis      RedisConfig      `mapstructure:"redis"`
	JWT        JWTConfig        `mapstructure:"jwt"`
	Scheduling SchedulingConfig `mapstructure:"scheduling"`
	Booking    BookingConfig    `mapstructure:"booking"`
}

type ServerConfig struct {
	Port         string `mapstructure:"port"`
	Env          string `mapstructure:"env"`
	ReadTimeout  int    `mapstructure:"read_timeout"`
	WriteTimeout int    `mapstructure:"write_timeout"`
}

// IsProduction controls the Secure flag on the refresh-token cookie.
func (s ServerConfig) IsProduction() bool {
	return s.Env == "production"
}

type DatabaseConfig struct {
	Host         string `mapstructure:"host"`
	Port         string `mapstructure:"port"`
	User         string `mapstructure:"user"`
	Password     string `mapstructure:"password"`
	DBName       string `mapstructure:"dbname"`
	MaxIdleConns int    `mapstructure:"max_idle_conns"`
	MaxOpenConns int    `mapstructure:"max_open_conns"`
}

type RedisConfig struct {
	Host     string `mapstructure:"host"`
	Port     string `mapstructure:"port"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

type JWTConfig struct {
	AccessSecret       string `mapstructure:"access_secret"`
	RefreshSecret      string `mapstructure:"refresh_secret"`
	AccessTokenExpiry  string `mapstructure:"access_token_expiry"`
	RefreshTokenExpiry string `mapstructure:"refresh_token_expiry"`

	accessTTL  time.Duration
	refreshTTL time.Duration
}

// AccessTTL returns the validated access-token lifetime.
func (j JWTConfig) AccessTTL() time.Duration { return j.accessTTL }

// RefreshTTL returns the validated refresh-token lifetime.
func (j JWTConfig) RefreshTTL() time.Duration { return j.refreshTTL }

// SchedulingConfig toggles the optional hardening of the class scheduler.
type SchedulingConfig struct {
	// OverlapDetection rejects classes whose time window overlaps an existing
	// class for the same trainer and date, instead of only exact duplicates.
	OverlapDetection bool `mapstructure:"overlap_detection"`
	// AtomicGuard runs the conflict and capacity checks inside one database
	// transaction so concurrent requests cannot race past them.
	AtomicGuard bool `mapstructure:"atomic_guard"`
}

// BookingConfig toggles the optional validation layers on bookings.
type BookingConfig struct {
	RequireTraineeRole bool `mapstructure:"require_trainee_role"`
	PreventDuplicates  bool `mapstructure:"prevent_duplicates"`
}

const (
	defaultAccessTokenExpiry  = 15 * time.Minute
	defaultRefreshTokenExpiry = 365 * 24 * time.Hour

	// An access token must stay short-lived; anything beyond a day is a
	// misconfiguration, not a policy choice.
	maxAccessTokenExpiry = 24 * time.Hour
)

// Validate fills defaults and rejects unusable values.
func (c *Config) Validate() error {
	if c.JWT.AccessSecret == "" {
		return errors.New("jwt.access_secret is required")
	}
	if c.JWT.RefreshSecret == "" {
		return errors.New("jwt.refresh_secret is required")
	}

	c.JWT.accessTTL = defaultAccessTokenExpiry
	if c.JWT.AccessTokenExpiry != "" {
		ttl, err := time.ParseDuration(c.JWT.AccessTokenExpiry)
		if err != nil {
			return fmt.Errorf("invalid jwt.access_token_expiry: %w", err)
		}
		c.JWT.accessTTL = ttl
	}
	if c.JWT.accessTTL <= 0 || c.JWT.accessTTL > maxAccessTokenExpiry {
		return fmt.Errorf("jwt.access_token_expiry must be between 0 and %s", maxAccessTokenExpiry)
	}

	c.JWT.refreshTTL = defaultRefreshTokenExpiry
	if c.JWT.RefreshTokenExpiry != "" {
		ttl, err := time.ParseDuration(c.JWT.RefreshTokenExpiry)
		if err != nil {
			return fmt.Errorf("invalid jwt.refresh_token_expiry: %w", err)
		}
		c.JWT.refreshTTL = ttl
	}
	if c.JWT.refreshTTL <= c.JWT.accessTTL {
		return errors.New("jwt.refresh_token_expiry must exceed jwt.access_token_expiry")
	}

	return nil
}
