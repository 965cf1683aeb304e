package config

import (
	"fmt"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config represents the application configuration structure.
// It contains settings for the environment, HTTP server, database connection,
// upstream breach data providers, notification delivery and the monitoring
// scheduler.
type Config struct {
	// Environment specifies the current running environment (development, production, etc.)
	Environment string `env:"ENVIRONMENT" env-default:"development" yaml:"environment"`

	// HTTP contains all HTTP server related configurations
	HTTP struct {
		// Addr is the address and port the HTTP server will listen on
		Addr string `env:"HTTP_ADDR" env-default:":8080" yaml:"addr"`
		// ReadTimeout is the maximum duration for reading the entire request, including the body
		ReadTimeout time.Duration `env:"HTTP_READ_TIMEOUT" env-default:"1m" yaml:"readTimeout"`
		// ReadHeaderTimeout is the amount of time allowed to read request headers
		ReadHeaderTimeout time.Duration `env:"HTTP_READ_HEADER_TIMEOUT" env-default:"10s" yaml:"readHeaderTimeout"`
		// WriteTimeout is the maximum duration before timing out writes of the response
		WriteTimeout time.Duration `env:"HTTP_WRITE_TIMEOUT" env-default:"2m" yaml:"writeTimeout"`
		// IdleTimeout is the maximum amount of time to wait for the next request when keep-alives are enabled
		IdleTimeout time.Duration `env:"HTTP_IDLE_TIMEOUT" env-default:"2m" yaml:"idleTimeout"`
		// RequestTimeout is the maximum time allowed for processing a single request
		RequestTimeout time.Duration `env:"HTTP_REQUEST_TIMEOUT" env-default:"30s" yaml:"requestTimeout"`
		// MaxHeaderBytes controls the maximum number of bytes the server will read parsing the request header
		MaxHeaderBytes int `env:"HTTP_MAX_HEADER_BYTES" env-default:"0" yaml:"maxHeaderBytes"`
		// MetricsPath defines the URL path where metrics are exposed
		MetricsPath string `env:"HTTP_METRICS_PATH" env-default:"/metrics" yaml:"metricsPath"`
	} `yaml:"http"`

	// Database contains all database connection related configurations
	Database struct {
		// Username for database authentication
		Username string `env:"DATABASE_USERNAME" env-default:"myuser" yaml:"username"`
		// Password for database authentication
		Password string `env:"DATABASE_PASSWORD" env-default:"mypassword" yaml:"password"`
		// Host is the database server hostname or IP address
		Host string `env:"DATABASE_HOST" env-default:"localhost" yaml:"host"`
		// Port is the database server port number
		Port int `env:"DATABASE_PORT" env-default:"5432" yaml:"port"`
		// SslMode defines the SSL mode for the database connection
		SslMode string `env:"DATABASE_SSL_MODE" env-default:"disable" yaml:"sslMode"`
		// DatabaseName is the name of the database to connect to
		DatabaseName string `env:"DATABASE_NAME" env-default:"leakwatch" yaml:"name"`
		// MaxOpenConnections limits the number of open connections to the database
		MaxOpenConnections int `env:"DATABASE_MAX_OPEN_CONNECTIONS" env-default:"10" yaml:"maxOpenConnections"`
		// MaxIdleConnections limits the number of connections in the idle connection pool
		MaxIdleConnections int `env:"DATABASE_MAX_IDLE_CONNECTIONS" env-default:"8" yaml:"maxIdleConnections"`
		// ConnMaxLifetime is the maximum amount of time a connection may be reused
		ConnMaxLifetime time.Duration `env:"DATABASE_CONNECTION_MAX_LIFETIME" env-default:"3m" yaml:"connMaxLifetime"`
		// ConnMaxIdleTime is the maximum amount of time a connection may be idle
		ConnMaxIdleTime time.Duration `env:"DATABASE_CONNECTION_MAX_IDLE_TIME" env-default:"3m" yaml:"connMaxIdleTime"`
	} `yaml:"database"`

	// HIBP configures the Have I Been Pwned breach data provider. The remote
	// source is disabled when APIKey is empty; local catalog matching still
	// works in that case.
	HIBP struct {
		// APIKey authenticates requests against the HIBP API
		APIKey string `env:"HIBP_API_KEY" env-default:"" yaml:"apiKey"`
		// BaseURL overrides the API endpoint, mainly for testing
		BaseURL string `env:"HIBP_BASE_URL" env-default:"" yaml:"baseUrl"`
		// Timeout bounds a single API call
		Timeout time.Duration `env:"HIBP_TIMEOUT" env-default:"10s" yaml:"timeout"`
	} `yaml:"hibp"`

	// PwnedPasswords configures the k-anonymity password range provider
	PwnedPasswords struct {
		// BaseURL overrides the API endpoint, mainly for testing
		BaseURL string `env:"PWNED_PASSWORDS_BASE_URL" env-default:"" yaml:"baseUrl"`
		// Timeout bounds a single range call
		Timeout time.Duration `env:"PWNED_PASSWORDS_TIMEOUT" env-default:"5s" yaml:"timeout"`
	} `yaml:"pwnedPasswords"`

	// Telegram configures alert delivery through a Telegram bot
	Telegram struct {
		// Token is the bot token; alert delivery is disabled when empty
		Token string `env:"TELEGRAM_TOKEN" env-default:"" yaml:"token"`
		// BaseURL overrides the Bot API endpoint, mainly for testing
		BaseURL string `env:"TELEGRAM_BASE_URL" env-default:"" yaml:"baseUrl"`
		// Timeout bounds a single sendMessage call
		Timeout time.Duration `env:"TELEGRAM_TIMEOUT" env-default:"10s" yaml:"timeout"`
	} `yaml:"telegram"`

	// Monitor configures the recurring re-check scheduler
	Monitor struct {
		// LeakInterval is how often the leak re-check cycle runs
		LeakInterval time.Duration `env:"MONITOR_LEAK_INTERVAL" env-default:"6h" yaml:"leakInterval"`
		// DarkWebInterval is how often the dark-web scan cycle runs
		DarkWebInterval time.Duration `env:"MONITOR_DARKWEB_INTERVAL" env-default:"24h" yaml:"darkWebInterval"`
		// ItemDelay is the pause between consecutive watches within a cycle,
		// keeping upstream request rates low
		ItemDelay time.Duration `env:"MONITOR_ITEM_DELAY" env-default:"2s" yaml:"itemDelay"`
		// CheckTimeout bounds the check of a single watch
		CheckTimeout time.Duration `env:"MONITOR_CHECK_TIMEOUT" env-default:"20s" yaml:"checkTimeout"`
	} `yaml:"monitor"`

	// Severity configures the pwn-count thresholds used when classifying
	// breaches that expose credentials
	Severity struct {
		// CriticalPwnCount is the affected-account count above which a
		// password-exposing breach is critical
		CriticalPwnCount int64 `env:"SEVERITY_CRITICAL_PWN_COUNT" env-default:"1000000" yaml:"criticalPwnCount"`
		// HighPwnCount is the count above which any breach is at least high
		HighPwnCount int64 `env:"SEVERITY_HIGH_PWN_COUNT" env-default:"10000000" yaml:"highPwnCount"`
		// MediumPwnCount is the count above which any breach is at least medium
		MediumPwnCount int64 `env:"SEVERITY_MEDIUM_PWN_COUNT" env-default:"100000" yaml:"mediumPwnCount"`
	} `yaml:"severity"`

	// GracefulShutdownTimeout is the maximum duration to wait for ongoing requests to complete during shutdown
	GracefulShutdownTimeout time.Duration `env:"GRACEFUL_SHUTDOWN_TIMEOUT" env-default:"10s" yaml:"gracefulShutdownTimeout"` //nolint: lll
}

// Load receives the path for yaml config file and returns a filled Config struct.
func Load(configPath string) (*Config, error) {
	var cfg Config
	err := cleanenv.ReadConfig(configPath, &cfg)
	if err != nil {
		return nil, fmt.Errorf("could not read config: %w", err)
	}

	return &cfg, nil
}
