// Package config provides configuration management for the props advisor.
package config

import (
	"fmt"
	"time"
)

// Config represents the complete application configuration
type Config struct {
	App           AppConfig           `mapstructure:"app" validate:"required"`
	Server        ServerConfig        `mapstructure:"server" validate:"required"`
	OddsProvider  OddsProviderConfig  `mapstructure:"odds_provider" validate:"required"`
	StatsProvider StatsProviderConfig `mapstructure:"stats_provider" validate:"required"`
	Model         ModelConfig         `mapstructure:"model" validate:"required"`
	Analysis      AnalysisConfig      `mapstructure:"analysis" validate:"required"`
	Cache         CacheConfig         `mapstructure:"cache" validate:"required"`
	Database      DatabaseConfig      `mapstructure:"database"`
	Metrics       MetricsConfig       `mapstructure:"metrics" validate:"required"`
	Health        HealthConfig        `mapstructure:"health" validate:"required"`
	Secrets       SecretsConfig       `mapstructure:"secrets"`
}

// AppConfig represents application-level configuration
type AppConfig struct {
	Name        string `mapstructure:"name" validate:"required"`
	Environment string `mapstructure:"environment" validate:"required,environment"`
	LogLevel    string `mapstructure:"log_level" validate:"required,loglevel"`
}

// ServerConfig represents the public API server configuration
type ServerConfig struct {
	Port        int      `mapstructure:"port" validate:"required,min=1,max=65535"`
	CORSOrigins []string `mapstructure:"cors_origins"`
}

// OddsProviderConfig represents the odds/events provider configuration
type OddsProviderConfig struct {
	BaseURL            string  `mapstructure:"base_url" validate:"required,url"`
	APIKey             string  `mapstructure:"api_key" validate:"required"`
	TimeoutSeconds     int     `mapstructure:"timeout_seconds" validate:"required,gt=0"`
	RetryAttempts      int     `mapstructure:"retry_attempts" validate:"gte=0"`
	RateLimitPerSecond float64 `mapstructure:"rate_limit_per_second" validate:"required,gt=0"`
}

// StatsProviderConfig represents the game-log provider configuration
type StatsProviderConfig struct {
	BaseURL            string  `mapstructure:"base_url" validate:"required,url"`
	APIKey             string  `mapstructure:"api_key" validate:"required"`
	TimeoutSeconds     int     `mapstructure:"timeout_seconds" validate:"required,gt=0"`
	RetryAttempts      int     `mapstructure:"retry_attempts" validate:"gte=0"`
	RateLimitPerSecond float64 `mapstructure:"rate_limit_per_second" validate:"required,gt=0"`
	GameLogTTLMinutes  int     `mapstructure:"game_log_ttl_minutes" validate:"required,gt=0"`
	GameLogLimit       int     `mapstructure:"game_log_limit" validate:"required,gt=0"`
}

// ModelConfig represents the prediction model endpoint configuration
type ModelConfig struct {
	PredictURL   string `mapstructure:"predict_url" validate:"required,url"`
	TokenURL     string `mapstructure:"token_url" validate:"required,url"`
	ClientID     string `mapstructure:"client_id" validate:"required"`
	ClientSecret string `mapstructure:"client_secret" validate:"required"`
}

// AnalysisConfig tunes the recommendation pipeline
type AnalysisConfig struct {
	Concurrency      int    `mapstructure:"concurrency" validate:"required,gt=0,lte=32"`
	TopProps         int    `mapstructure:"top_props" validate:"required,gt=0,lte=50"`
	RosterFile       string `mapstructure:"roster_file"`
	RosterReloadCron string `mapstructure:"roster_reload_cron"`
}

// CacheConfig selects and tunes the cache backend
type CacheConfig struct {
	Backend           string `mapstructure:"backend" validate:"required,oneof=memory redis"`
	DefaultTTLMinutes int    `mapstructure:"default_ttl_minutes" validate:"required,gt=0"`
	RedisAddr         string `mapstructure:"redis_addr"`
	RedisDB           int    `mapstructure:"redis_db" validate:"gte=0"`
	RedisPrefix       string `mapstructure:"redis_prefix"`
}

// DatabaseConfig represents the optional history database
type DatabaseConfig struct {
	Enabled        bool   `mapstructure:"enabled"`
	Host           string `mapstructure:"host"`
	Port           int    `mapstructure:"port" validate:"omitempty,min=1,max=65535"`
	Name           string `mapstructure:"name"`
	User           string `mapstructure:"user"`
	Password       string `mapstructure:"password"`
	SSLMode        string `mapstructure:"ssl_mode" validate:"omitempty,oneof=disable require verify-full"`
	MaxConnections int    `mapstructure:"max_connections" validate:"omitempty,gt=0"`
}

// MetricsConfig represents metrics and monitoring configuration
type MetricsConfig struct {
	Enabled bool `mapstructure:"enabled"`
	Port    int  `mapstructure:"port" validate:"required,min=1,max=65535"`
}

// HealthConfig represents the health probe server configuration
type HealthConfig struct {
	Port int `mapstructure:"port" validate:"required,min=1,max=65535"`
}

// SecretsConfig enables the AWS Secrets Manager overlay
type SecretsConfig struct {
	Enabled    bool   `mapstructure:"enabled"`
	Region     string `mapstructure:"region"`
	SecretName string `mapstructure:"secret_name"`
}

// IsDevelopment checks if the application is running in development mode
func (c *Config) IsDevelopment() bool {
	return c.App.Environment == "development"
}

// IsProduction checks if the application is running in production mode
func (c *Config) IsProduction() bool {
	return c.App.Environment == "production"
}

// GameLogTTL returns the game-log cache TTL as a duration
func (c *Config) GameLogTTL() time.Duration {
	return time.Duration(c.StatsProvider.GameLogTTLMinutes) * time.Minute
}

// CacheDefaultTTL returns the cache default TTL as a duration
func (c *Config) CacheDefaultTTL() time.Duration {
	return time.Duration(c.Cache.DefaultTTLMinutes) * time.Minute
}

// GetDatabaseDSN returns a PostgreSQL DSN string
func (c *Config) GetDatabaseDSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		c.Database.User,
		c.Database.Password,
		c.Database.Host,
		c.Database.Port,
		c.Database.Name,
		c.Database.SSLMode,
	)
}
