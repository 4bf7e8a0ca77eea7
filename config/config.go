package config

import (
	"errors"
	"fmt"

	"github.com/spf13/viper"
)

/* Config é um pacote auxiliar. Poderia ser uma lib externa*/

const (
	BackendFile   = "file"
	BackendSQLite = "sqlite"
	BackendRedis  = "redis"
)

type Config struct {
	LibraryFile    string `mapstructure:"LIBRARY_FILE"`
	StorageBackend string `mapstructure:"STORAGE_BACKEND"`
	StorageFormat  string `mapstructure:"STORAGE_FORMAT"`
	RedisAddr      string `mapstructure:"REDIS_ADDR"`
	RedisPassword  string `mapstructure:"REDIS_PASSWORD"`
	RedisDB        int    `mapstructure:"REDIS_DB"`
	RedisKey       string `mapstructure:"REDIS_KEY"`
	LogLevel       string `mapstructure:"LOG_LEVEL"`
	LogJSON        bool   `mapstructure:"LOG_JSON"`
	Port           string `mapstructure:"PORT"`
}

var defaults = map[string]any{
	"LIBRARY_FILE":    "",
	"STORAGE_BACKEND": BackendFile,
	"STORAGE_FORMAT":  "json",
	"REDIS_ADDR":      "localhost:6379",
	"REDIS_PASSWORD":  "",
	"REDIS_DB":        0,
	"REDIS_KEY":       "library:books",
	"LOG_LEVEL":       "warn",
	"LOG_JSON":        false,
	"PORT":            "8080",
}

// GetConfig loads the configuration from ./.env and the environment
func GetConfig() (*Config, error) {
	return Load(".")
}

// Load reads an optional .env file from the given paths, then the environment.
// A missing file is not an error; every key has a default.
func Load(paths ...string) (*Config, error) {
	v := viper.New()
	v.SetConfigName(".env")
	v.SetConfigType("env")
	for _, p := range paths {
		v.AddConfigPath(p)
	}
	for key, value := range defaults {
		v.SetDefault(key, value)
	}
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("parsing config data: %w", err)
	}
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}
	return &config, nil
}

// Validate checks backend and format names
func (c *Config) Validate() error {
	switch c.StorageBackend {
	case BackendFile, BackendSQLite, BackendRedis:
	default:
		return fmt.Errorf("unknown STORAGE_BACKEND %q (want file, sqlite or redis)", c.StorageBackend)
	}
	switch c.StorageFormat {
	case "json", "yaml", "yml":
	default:
		return fmt.Errorf("unknown STORAGE_FORMAT %q (want json or yaml)", c.StorageFormat)
	}
	if c.StorageBackend == BackendRedis && c.RedisAddr == "" {
		return fmt.Errorf("REDIS_ADDR is required for the redis backend")
	}
	return nil
}

// GetLibraryPath returns LIBRARY_FILE or a default that suits the backend
func (c *Config) GetLibraryPath() string {
	if c.LibraryFile != "" {
		return c.LibraryFile
	}
	switch {
	case c.StorageBackend == BackendSQLite:
		return "library.db"
	case c.StorageFormat == "yaml" || c.StorageFormat == "yml":
		return "library.yaml"
	}
	return "library.txt"
}
