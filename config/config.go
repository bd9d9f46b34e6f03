package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	StorageDriverFile   = "file"
	StorageDriverSQLite = "sqlite"
)

// Config holds all service configuration.
type Config struct {
	// Environment
	Environment EnvironmentConfig

	// Server
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig

	// Planner specifics
	Planner   PlannerConfig
	Storage   StorageConfig
	Gemini    GeminiConfig
	RateLimit RateLimitConfig
}

type EnvironmentConfig struct {
	Name string
}

type HTTPServerConfig struct {
	Port int
	Mode string
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

type PlannerConfig struct {
	Timezone string
}

type StorageConfig struct {
	Driver     string // file | sqlite
	Dir        string // used by the file driver
	SQLitePath string
}

type GeminiConfig struct {
	APIKey  string
	Model   string
	APIURL  string
	Timeout time.Duration // 0 = no client-side deadline
}

type RateLimitConfig struct {
	RequestsPerMin int
}

// Load loads configuration using Viper.
// A .env file in the working directory is applied first, if present.
// Config file name: config.yaml, searched in ./config, ., /etc/app/
func Load() (*Config, error) {
	_ = godotenv.Load()

	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./config")
	viper.AddConfigPath(".")
	viper.AddConfigPath("/etc/app/")

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = viper.GetString("environment.name")
	cfg.HTTPServer.Port = viper.GetInt("http_server.port")
	cfg.HTTPServer.Mode = viper.GetString("http_server.mode")
	cfg.Logger.Level = viper.GetString("logger.level")
	cfg.Logger.Mode = viper.GetString("logger.mode")
	cfg.Logger.Encoding = viper.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = viper.GetBool("logger.color_enabled")

	// Planner
	cfg.Planner.Timezone = viper.GetString("planner.timezone")

	cfg.Storage.Driver = strings.ToLower(strings.TrimSpace(viper.GetString("storage.driver")))
	cfg.Storage.Dir = viper.GetString("storage.dir")
	cfg.Storage.SQLitePath = viper.GetString("storage.sqlite_path")

	// Gemini: the bare API_KEY and GEMINI_API_KEY env names are honoured too
	cfg.Gemini.APIKey = viper.GetString("gemini.api_key")
	for _, key := range []string{"gemini_api_key", "api_key"} {
		if cfg.Gemini.APIKey != "" {
			break
		}
		cfg.Gemini.APIKey = viper.GetString(key)
	}
	cfg.Gemini.Model = viper.GetString("gemini.model")
	cfg.Gemini.APIURL = viper.GetString("gemini.api_url")
	cfg.Gemini.Timeout = viper.GetDuration("gemini.timeout")

	cfg.RateLimit.RequestsPerMin = viper.GetInt("rate_limit.requests_per_min")

	if err := validate(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

func validate(cfg *Config) error {
	if cfg.HTTPServer.Port <= 0 {
		return fmt.Errorf("http_server.port must be positive, got %d", cfg.HTTPServer.Port)
	}
	switch cfg.Storage.Driver {
	case StorageDriverFile:
		if cfg.Storage.Dir == "" {
			return fmt.Errorf("storage.dir is required for the file driver")
		}
	case StorageDriverSQLite:
		if cfg.Storage.SQLitePath == "" {
			return fmt.Errorf("storage.sqlite_path is required for the sqlite driver")
		}
	default:
		return fmt.Errorf("unknown storage.driver %q", cfg.Storage.Driver)
	}
	if cfg.Gemini.Timeout < 0 {
		return fmt.Errorf("gemini.timeout must not be negative")
	}
	return nil
}

func setDefaults() {
	viper.SetDefault("environment.name", "development")
	viper.SetDefault("http_server.port", 8080)
	viper.SetDefault("http_server.mode", "debug")
	viper.SetDefault("logger.level", "debug")
	viper.SetDefault("logger.mode", "debug")
	viper.SetDefault("logger.encoding", "console")
	viper.SetDefault("logger.color_enabled", true)

	viper.SetDefault("planner.timezone", "Asia/Jakarta")
	viper.SetDefault("storage.driver", StorageDriverFile)
	viper.SetDefault("storage.dir", "./data")
	viper.SetDefault("storage.sqlite_path", "./data/planner.db")
	viper.SetDefault("gemini.model", "gemini-2.5-flash")
	viper.SetDefault("gemini.timeout", "0s")
	viper.SetDefault("rate_limit.requests_per_min", 30)
}
