package config

import (
	"strings"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Environment string          `mapstructure:"environment"`
	LogLevel    string          `mapstructure:"log_level"`
	Server      ServerConfig    `mapstructure:"server"`
	Engine      EngineConfig    `mapstructure:"engine"`
	Redis       RedisConfig     `mapstructure:"redis"`
	Database    DatabaseConfig  `mapstructure:"database"`
	Telemetry   TelemetryConfig `mapstructure:"telemetry"`
	Forecast    ForecastConfig  `mapstructure:"forecast"`
}

type ServerConfig struct {
	Port int `mapstructure:"port"`
}

// EngineConfig points at the forecasting engine sidecar that performs the
// actual statistical and neural fitting.
type EngineConfig struct {
	ServiceURL string `mapstructure:"service_url"`
	// Timeout in seconds; fitting calls can be slow (ARIMA order search,
	// neural epochs), so the default is generous.
	Timeout int `mapstructure:"timeout"`
}

type RedisConfig struct {
	Enabled  bool   `mapstructure:"enabled"`
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

type DatabaseConfig struct {
	Enabled         bool   `mapstructure:"enabled"`
	Host            string `mapstructure:"host"`
	Port            int    `mapstructure:"port"`
	User            string `mapstructure:"user"`
	Password        string `mapstructure:"password"`
	DBName          string `mapstructure:"dbname"`
	SSLMode         string `mapstructure:"sslmode"`
	DatabaseURL     string `mapstructure:"database_url"`
	MaxOpenConns    int    `mapstructure:"max_open_conns"`
	MaxIdleConns    int    `mapstructure:"max_idle_conns"`
	ConnMaxLifetime string `mapstructure:"conn_max_lifetime"`
}

type TelemetryConfig struct {
	Enabled        bool   `mapstructure:"enabled"`
	OTLPEndpoint   string `mapstructure:"otlp_endpoint"`
	ServiceName    string `mapstructure:"service_name"`
	ServiceVersion string `mapstructure:"service_version"`
	LogLevel       string `mapstructure:"log_level"`
}

// ForecastConfig tunes the broker pipeline itself.
type ForecastConfig struct {
	// BatchFailFast aborts a batch on the first item failure instead of the
	// default per-item isolation.
	BatchFailFast bool `mapstructure:"batch_fail_fast"`
	CacheEnabled  bool `mapstructure:"cache_enabled"`
	// CacheTTL is a duration string, e.g. "60s".
	CacheTTL       string `mapstructure:"cache_ttl"`
	HistoryEnabled bool   `mapstructure:"history_enabled"`
}

// CacheTTLDuration parses the configured cache TTL, falling back to one
// minute on a missing or malformed value.
func (f ForecastConfig) CacheTTLDuration() time.Duration {
	d, err := time.ParseDuration(f.CacheTTL)
	if err != nil || d <= 0 {
		return time.Minute
	}
	return d
}

func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./configs")
	viper.AddConfigPath(".")

	// Set default values
	setDefaults()

	// Enable environment variable support
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	// Read config file
	if err := viper.ReadInConfig(); err != nil {
		// Config file not found, use defaults and environment variables
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
	}

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, err
	}

	// Normalize environment to lowercase for consistent comparison
	config.Environment = strings.ToLower(config.Environment)

	return &config, nil
}

func setDefaults() {
	// Environment
	viper.SetDefault("environment", "development")
	viper.SetDefault("log_level", "info")

	// Server
	viper.SetDefault("server.port", 8080)

	// Engine
	viper.SetDefault("engine.service_url", "http://localhost:8001")
	viper.SetDefault("engine.timeout", 120)

	// Redis
	viper.SetDefault("redis.enabled", false)
	viper.SetDefault("redis.host", "localhost")
	viper.SetDefault("redis.port", 6379)
	viper.SetDefault("redis.password", "")
	viper.SetDefault("redis.db", 0)

	// Database
	viper.SetDefault("database.enabled", false)
	viper.SetDefault("database.host", "localhost")
	viper.SetDefault("database.port", 5432)
	viper.SetDefault("database.user", "postgres")
	viper.SetDefault("database.password", "postgres")
	viper.SetDefault("database.dbname", "kairos")
	viper.SetDefault("database.sslmode", "disable")
	viper.SetDefault("database.database_url", "")
	viper.SetDefault("database.max_open_conns", 25)
	viper.SetDefault("database.max_idle_conns", 5)
	viper.SetDefault("database.conn_max_lifetime", "300s")

	// Telemetry
	viper.SetDefault("telemetry.enabled", false)
	viper.SetDefault("telemetry.otlp_endpoint", "localhost:4318")
	viper.SetDefault("telemetry.service_name", "kairos-go")
	viper.SetDefault("telemetry.service_version", "1.0.0")
	viper.SetDefault("telemetry.log_level", "info")

	// Forecast pipeline
	viper.SetDefault("forecast.batch_fail_fast", false)
	viper.SetDefault("forecast.cache_enabled", false)
	viper.SetDefault("forecast.cache_ttl", "60s")
	viper.SetDefault("forecast.history_enabled", false)
}
