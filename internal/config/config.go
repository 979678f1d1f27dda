// Package config loads service settings from defaults, an optional config
// file, and TRIVIA_* environment variables, in increasing precedence.
package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"

	"trivia-app/internal/logger"
	"trivia-app/internal/trivia/postgres"
)

const EnvPrefix = "TRIVIA"

const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
	DriverMemory   = "memory"
)

type Config struct {
	Addr      string          `mapstructure:"addr"`
	Store     StoreConfig     `mapstructure:"store"`
	Postgres  postgres.Config `mapstructure:"postgres"`
	Log       logger.Config   `mapstructure:"log"`
	CORS      CORSConfig      `mapstructure:"cors"`
	RateLimit RateLimitConfig `mapstructure:"ratelimit"`
	OpenTDB   OpenTDBConfig   `mapstructure:"opentdb"`
}

type StoreConfig struct {
	Driver     string `mapstructure:"driver"`
	SQLitePath string `mapstructure:"sqlite_path"`
	// Migrate applies pending migrations when a postgres store is opened.
	// SQLite stores always migrate on open.
	Migrate bool `mapstructure:"migrate"`
}

type CORSConfig struct {
	Origin string `mapstructure:"origin"`
}

// RateLimitConfig disables limiting when RequestsPerMinute is 0.
type RateLimitConfig struct {
	RequestsPerMinute int `mapstructure:"requests_per_minute"`
	Burst             int `mapstructure:"burst"`
}

type OpenTDBConfig struct {
	URL string `mapstructure:"url"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("addr", ":8080")
	v.SetDefault("store.driver", DriverSQLite)
	v.SetDefault("store.sqlite_path", "trivia.db")
	v.SetDefault("store.migrate", true)
	v.SetDefault("postgres.url", "")
	v.SetDefault("postgres.host", "localhost")
	v.SetDefault("postgres.port", 5432)
	v.SetDefault("postgres.user", "postgres")
	v.SetDefault("postgres.password", "")
	v.SetDefault("postgres.name", "trivia")
	v.SetDefault("postgres.sslmode", "disable")
	v.SetDefault("log.level", "INFO")
	v.SetDefault("log.format", "json")
	v.SetDefault("log.add_source", false)
	v.SetDefault("cors.origin", "*")
	v.SetDefault("ratelimit.requests_per_minute", 0)
	v.SetDefault("ratelimit.burst", 20)
	v.SetDefault("opentdb.url", "https://opentdb.com/api.php")
}

// Load reads configuration. path may be empty, in which case only defaults
// and the environment are consulted.
func Load(path string) (Config, error) {
	v := viper.New()
	setDefaults(v)

	// TRIVIA_STORE_SQLITE_PATH -> store.sqlite_path
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("read config %s: %w", path, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	switch cfg.Store.Driver {
	case DriverSQLite, DriverPostgres, DriverMemory:
	default:
		return Config{}, fmt.Errorf("unknown store driver %q", cfg.Store.Driver)
	}

	return cfg, nil
}
