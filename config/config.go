package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all application configuration.
type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	Database DatabaseConfig `mapstructure:"database"`
	Redis    RedisConfig    `mapstructure:"redis"`
	JWT      JWTConfig      `mapstructure:"jwt"`
	AES      AESConfig      `mapstructure:"aes"`
	Log      LogConfig      `mapstructure:"log"`
	Vending  VendingConfig  `mapstructure:"vending"`
	Requery  RequeryConfig  `mapstructure:"requery"`
	Sweeper  SweeperConfig  `mapstructure:"sweeper"`
	Provider ProviderConfig `mapstructure:"provider"`
}

type ServerConfig struct {
	Host string `mapstructure:"host"`
	Port int    `mapstructure:"port"`
	Mode string `mapstructure:"mode"` // debug, release, test
}

type DatabaseConfig struct {
	Host            string        `mapstructure:"host"`
	Port            int           `mapstructure:"port"`
	User            string        `mapstructure:"user"`
	Password        string        `mapstructure:"password"`
	DBName          string        `mapstructure:"dbname"`
	SSLMode         string        `mapstructure:"sslmode"`
	MaxConns        int32         `mapstructure:"max_conns"`
	MinConns        int32         `mapstructure:"min_conns"`
	ConnMaxLifetime time.Duration `mapstructure:"conn_max_lifetime"`
}

// DSN returns the PostgreSQL connection string.
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		d.User, d.Password, d.Host, d.Port, d.DBName, d.SSLMode,
	)
}

type RedisConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

// Addr returns the Redis address string.
func (r RedisConfig) Addr() string {
	return fmt.Sprintf("%s:%d", r.Host, r.Port)
}

type JWTConfig struct {
	Secret string        `mapstructure:"secret"`
	Expiry time.Duration `mapstructure:"expiry"`
	Issuer string        `mapstructure:"issuer"`
}

type AESConfig struct {
	Key string `mapstructure:"key"` // 32-byte hex-encoded key for AES-256
}

type LogConfig struct {
	Level  string `mapstructure:"level"`  // debug, info, warn, error
	Pretty bool   `mapstructure:"pretty"` // human-readable output (dev only)
}

// VendingConfig holds tunables for C1/C7: the merchant's daily-limit
// rollover boundary and the idempotency cache TTL.
type VendingConfig struct {
	Timezone        string        `mapstructure:"timezone"` // Africa/Lagos
	IdempotencyTTL  time.Duration `mapstructure:"idempotency_ttl"`
	NonceTTL        time.Duration `mapstructure:"nonce_ttl"`
	TimestampWindow time.Duration `mapstructure:"timestamp_window"`
}

// Location parses the configured IANA timezone, defaulting to UTC on error.
func (v VendingConfig) Location() *time.Location {
	loc, err := time.LoadLocation(v.Timezone)
	if err != nil {
		return time.UTC
	}
	return loc
}

// RequeryConfig tunes the C8 async requery worker.
type RequeryConfig struct {
	InitialDelay  time.Duration `mapstructure:"initial_delay"`  // 30s
	RetryInterval time.Duration `mapstructure:"retry_interval"` // 20s
	MaxRetries    int           `mapstructure:"max_retries"`    // 3
	LeaseTTL      time.Duration `mapstructure:"lease_ttl"`      // 60s
}

// SweeperConfig tunes the C8 timeout-reversal sweeper cron job.
type SweeperConfig struct {
	Interval       time.Duration `mapstructure:"interval"`        // 7m
	PendingTimeout time.Duration `mapstructure:"pending_timeout"` // 2m
	BatchSize      int           `mapstructure:"batch_size"`      // 100
}

// ProviderConfig holds provider tunables. CircuitBreakerWindow and
// CircuitBreakerTrips configure the dispatcher's per-provider breakers;
// RequestTimeout is not read by the C4 adapters, which use a fixed
// 10-second HTTP timeout. Per-provider base URLs and credentials live on the
// provider_accounts row (see ProviderAccount.Config) since they vary by
// operational account, not by deployment environment.
type ProviderConfig struct {
	RequestTimeout       time.Duration `mapstructure:"request_timeout"`
	CircuitBreakerWindow time.Duration `mapstructure:"circuit_breaker_window"`
	CircuitBreakerTrips  uint32        `mapstructure:"circuit_breaker_trips"`
}

// Load reads configuration from file and environment variables.
// Environment variables override file values. Prefix: VAS_ (Value-Added
// Services gateway). Nested keys use underscore: VAS_DATABASE_HOST,
// VAS_JWT_SECRET, etc.
func Load(path string) (*Config, error) {
	v := viper.New()

	// Defaults
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.mode", "debug")
	v.SetDefault("database.host", "localhost")
	v.SetDefault("database.port", 5432)
	v.SetDefault("database.user", "postgres")
	v.SetDefault("database.password", "postgres")
	v.SetDefault("database.dbname", "vas_gateway")
	v.SetDefault("database.sslmode", "disable")
	v.SetDefault("database.max_conns", 20)
	v.SetDefault("database.min_conns", 5)
	v.SetDefault("database.conn_max_lifetime", "30m")
	v.SetDefault("redis.host", "localhost")
	v.SetDefault("redis.port", 6379)
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)
	v.SetDefault("jwt.secret", "")
	v.SetDefault("jwt.expiry", "24h")
	v.SetDefault("jwt.issuer", "vas-gateway")
	v.SetDefault("aes.key", "")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.pretty", false)
	v.SetDefault("vending.timezone", "Africa/Lagos")
	v.SetDefault("vending.idempotency_ttl", "24h")
	v.SetDefault("vending.nonce_ttl", "300s")
	v.SetDefault("vending.timestamp_window", "300s")
	v.SetDefault("requery.initial_delay", "30s")
	v.SetDefault("requery.retry_interval", "20s")
	v.SetDefault("requery.max_retries", 3)
	v.SetDefault("requery.lease_ttl", "60s")
	v.SetDefault("sweeper.interval", "7m")
	v.SetDefault("sweeper.pending_timeout", "2m")
	v.SetDefault("sweeper.batch_size", 100)
	v.SetDefault("provider.request_timeout", "15s")
	v.SetDefault("provider.circuit_breaker_window", "60s")
	v.SetDefault("provider.circuit_breaker_trips", 5)

	// File config
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./config")
	}

	// Environment variables: VAS_DATABASE_HOST -> database.host
	v.SetEnvPrefix("VAS")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Read config file (not required - env vars can suffice)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}

	return &cfg, nil
}
