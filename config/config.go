package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all engine configuration.
type Config struct {
	// Environment Configuration
	Environment EnvironmentConfig

	// Server Configuration
	Server ServerConfig
	Logger LoggerConfig

	// Storage Configuration
	Postgres PostgresConfig
	Redis    RedisConfig

	// Authentication & Security Configuration
	JWT      JWTConfig
	Internal InternalConfig

	// Delivery Configuration
	Dispatch DispatchConfig
	Push     PushConfig
	SMTP     SMTPConfig
}

// EnvironmentConfig is the configuration for the deployment environment.
type EnvironmentConfig struct {
	Name string
}

// ServerConfig is the configuration for the HTTP server.
type ServerConfig struct {
	Host string
	Port int
	Mode string
}

// LoggerConfig is the configuration for the logger.
type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

// PostgresConfig is the configuration for PostgreSQL.
type PostgresConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	DBName   string
	SSLMode  string
}

// RedisConfig is the configuration for Redis.
type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
}

// JWTConfig is the configuration for the JWT.
type JWTConfig struct {
	SecretKey string
}

// InternalConfig guards service-to-service endpoints.
type InternalConfig struct {
	APIKey string
}

// DispatchConfig tunes alert fan-out.
type DispatchConfig struct {
	MaxPerWindow   int
	Window         time.Duration
	PerSendTimeout time.Duration
	OverallTimeout time.Duration
}

// PushConfig is the configuration for the mobile push gateway.
type PushConfig struct {
	Endpoint string
	APIKey   string
	Timeout  time.Duration
}

// SMTPConfig is the configuration for the email relay.
type SMTPConfig struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
}

// Load loads configuration using Viper.
func Load() (*Config, error) {
	viper.SetConfigName("secops-config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./config")
	viper.AddConfigPath(".")
	viper.AddConfigPath("/etc/secops/")

	// Enable environment variable override
	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults()

	// Config file is optional; env vars cover everything
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	// Environment
	cfg.Environment.Name = viper.GetString("environment.name")

	// Server
	cfg.Server.Host = viper.GetString("server.host")
	cfg.Server.Port = viper.GetInt("server.port")
	cfg.Server.Mode = viper.GetString("server.mode")

	// Logger
	cfg.Logger.Level = viper.GetString("logger.level")
	cfg.Logger.Mode = viper.GetString("logger.mode")
	cfg.Logger.Encoding = viper.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = viper.GetBool("logger.color_enabled")

	// Postgres
	cfg.Postgres.Host = viper.GetString("postgres.host")
	cfg.Postgres.Port = viper.GetInt("postgres.port")
	cfg.Postgres.User = viper.GetString("postgres.user")
	cfg.Postgres.Password = viper.GetString("postgres.password")
	cfg.Postgres.DBName = viper.GetString("postgres.dbname")
	cfg.Postgres.SSLMode = viper.GetString("postgres.sslmode")

	// Redis
	cfg.Redis.Host = viper.GetString("redis.host")
	cfg.Redis.Port = viper.GetInt("redis.port")
	cfg.Redis.Password = viper.GetString("redis.password")
	cfg.Redis.DB = viper.GetInt("redis.db")

	// JWT
	cfg.JWT.SecretKey = viper.GetString("jwt.secret_key")

	// Internal
	cfg.Internal.APIKey = viper.GetString("internal.api_key")

	// Dispatch
	cfg.Dispatch.MaxPerWindow = viper.GetInt("dispatch.max_per_window")
	cfg.Dispatch.Window = viper.GetDuration("dispatch.window")
	cfg.Dispatch.PerSendTimeout = viper.GetDuration("dispatch.per_send_timeout")
	cfg.Dispatch.OverallTimeout = viper.GetDuration("dispatch.overall_timeout")

	// Push
	cfg.Push.Endpoint = viper.GetString("push.endpoint")
	cfg.Push.APIKey = viper.GetString("push.api_key")
	cfg.Push.Timeout = viper.GetDuration("push.timeout")

	// SMTP
	cfg.SMTP.Host = viper.GetString("smtp.host")
	cfg.SMTP.Port = viper.GetInt("smtp.port")
	cfg.SMTP.Username = viper.GetString("smtp.username")
	cfg.SMTP.Password = viper.GetString("smtp.password")
	cfg.SMTP.From = viper.GetString("smtp.from")

	if err := validate(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

func setDefaults() {
	// Environment
	viper.SetDefault("environment.name", "production")

	// Server
	viper.SetDefault("server.host", "0.0.0.0")
	viper.SetDefault("server.port", 8082)
	viper.SetDefault("server.mode", "release")

	// Logger
	viper.SetDefault("logger.level", "info")
	viper.SetDefault("logger.mode", "production")
	viper.SetDefault("logger.encoding", "json")
	viper.SetDefault("logger.color_enabled", false)

	// Postgres
	viper.SetDefault("postgres.host", "localhost")
	viper.SetDefault("postgres.port", 5432)
	viper.SetDefault("postgres.user", "secops")
	viper.SetDefault("postgres.dbname", "secops_console")
	viper.SetDefault("postgres.sslmode", "disable")

	// Redis
	viper.SetDefault("redis.host", "localhost")
	viper.SetDefault("redis.port", 6379)
	viper.SetDefault("redis.password", "")
	viper.SetDefault("redis.db", 0)

	// Dispatch
	viper.SetDefault("dispatch.max_per_window", 60)
	viper.SetDefault("dispatch.window", time.Minute)
	viper.SetDefault("dispatch.per_send_timeout", 5*time.Second)
	viper.SetDefault("dispatch.overall_timeout", 30*time.Second)

	// Push
	viper.SetDefault("push.timeout", 5*time.Second)

	// SMTP
	viper.SetDefault("smtp.port", 587)
}

func validate(cfg *Config) error {
	// Validate JWT
	if cfg.JWT.SecretKey == "" {
		return fmt.Errorf("jwt.secret_key is required")
	}
	if len(cfg.JWT.SecretKey) < 32 {
		return fmt.Errorf("jwt.secret_key must be at least 32 characters for security")
	}

	// Validate internal key
	if cfg.Internal.APIKey == "" {
		return fmt.Errorf("internal.api_key is required")
	}

	// Validate Postgres
	if cfg.Postgres.Host == "" {
		return fmt.Errorf("postgres.host is required")
	}
	if cfg.Postgres.Port == 0 {
		return fmt.Errorf("postgres.port is required")
	}

	// Validate Redis
	if cfg.Redis.Host == "" {
		return fmt.Errorf("redis.host is required")
	}
	if cfg.Redis.Port == 0 {
		return fmt.Errorf("redis.port is required")
	}

	return nil
}
