// Package config loads server settings from a YAML file
package config

import (
	"log/slog"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/pokebattle/battle-api/internal/clients/pokeapi"
	"github.com/pokebattle/battle-api/internal/errors"
	"github.com/pokebattle/battle-api/internal/repositories/pokedex"
)

// Storage drivers for battle history
const (
	StorageMemory = "memory"
	StorageRedis  = "redis"
	StorageSQLite = "sqlite"
)

// Log output formats
const (
	LogFormatText = "text"
	LogFormatJSON = "json"
)

// DefaultMaxRecords is the number of battles kept by the memory and redis drivers
const DefaultMaxRecords = 1000

// Config is the full server configuration
type Config struct {
	HTTP    HTTPConfig    `yaml:"http"`
	GRPC    GRPCConfig    `yaml:"grpc"`
	PokeAPI PokeAPIConfig `yaml:"pokeapi"`
	Cache   CacheConfig   `yaml:"cache"`
	Storage StorageConfig `yaml:"storage"`
	Battle  BattleConfig  `yaml:"battle"`
	Log     LogConfig     `yaml:"log"`
}

// HTTPConfig configures the REST listener
type HTTPConfig struct {
	Address string `yaml:"address"`
}

// GRPCConfig configures the gRPC listener
type GRPCConfig struct {
	Port int `yaml:"port"`
}

// PokeAPIConfig configures the species data provider
type PokeAPIConfig struct {
	BaseURL     string        `yaml:"base_url"`
	HTTPTimeout time.Duration `yaml:"http_timeout"`
	CacheTTL    time.Duration `yaml:"cache_ttl"`
	CacheSize   int           `yaml:"cache_size"`
}

// CacheConfig configures the resolved species cache
type CacheConfig struct {
	// MaxSpecies of 0 keeps every resolved species
	MaxSpecies int `yaml:"max_species"`
}

// StorageConfig selects the battle history backend
type StorageConfig struct {
	Driver     string `yaml:"driver"`
	RedisAddr  string `yaml:"redis_addr"`
	SQLitePath string `yaml:"sqlite_path"`
	// MaxRecords drops the oldest battles once exceeded; zero keeps everything.
	// The sqlite driver keeps everything.
	MaxRecords int `yaml:"max_records"`
}

// BattleConfig configures the battle engine
type BattleConfig struct {
	// Seed of 0 uses the default time-seeded roller
	Seed uint64 `yaml:"seed"`
}

// LogConfig configures the process logger
type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// Default returns the configuration used when no file is given
func Default() *Config {
	return &Config{
		HTTP: HTTPConfig{Address: ":5000"},
		GRPC: GRPCConfig{Port: 50051},
		PokeAPI: PokeAPIConfig{
			BaseURL:     pokeapi.DefaultBaseURL,
			HTTPTimeout: pokeapi.DefaultHTTPTimeout,
			CacheTTL:    pokeapi.DefaultCacheTTL,
			CacheSize:   pokeapi.DefaultCacheSize,
		},
		Cache: CacheConfig{MaxSpecies: pokedex.DefaultMaxSpecies},
		Storage: StorageConfig{
			Driver:     StorageMemory,
			RedisAddr:  "localhost:6379",
			SQLitePath: "battles.db",
			MaxRecords: DefaultMaxRecords,
		},
		Log: LogConfig{Level: "info", Format: LogFormatText},
	}
}

// Load reads path over the defaults. An empty path returns the defaults.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.WrapWithCodef(err, errors.CodeInvalidArgument, "failed to read config file %s", path)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, errors.WrapWithCodef(err, errors.CodeInvalidArgument, "failed to parse config file %s", path)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the configuration for values the server cannot start with
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.HTTP.Address == "" {
		vb.RequiredField("http.address")
	}
	if c.GRPC.Port <= 0 || c.GRPC.Port > 65535 {
		vb.Fieldf("grpc.port", "must be between 1 and 65535, got %d", c.GRPC.Port)
	}
	if c.PokeAPI.HTTPTimeout < 0 {
		vb.Field("pokeapi.http_timeout", "must not be negative")
	}
	if c.PokeAPI.CacheTTL < 0 {
		vb.Field("pokeapi.cache_ttl", "must not be negative")
	}
	if c.PokeAPI.CacheSize < 0 {
		vb.Field("pokeapi.cache_size", "must not be negative")
	}
	if c.Cache.MaxSpecies < 0 {
		vb.Field("cache.max_species", "must not be negative")
	}

	switch c.Storage.Driver {
	case StorageMemory:
	case StorageRedis:
		if c.Storage.RedisAddr == "" {
			vb.RequiredField("storage.redis_addr")
		}
	case StorageSQLite:
		if c.Storage.SQLitePath == "" {
			vb.RequiredField("storage.sqlite_path")
		}
	default:
		vb.Fieldf("storage.driver", "unknown driver %q", c.Storage.Driver)
	}
	if c.Storage.MaxRecords < 0 {
		vb.Field("storage.max_records", "must not be negative")
	}

	if _, err := c.Log.SlogLevel(); err != nil {
		vb.Fieldf("log.level", "unknown level %q", c.Log.Level)
	}
	if c.Log.Format != LogFormatText && c.Log.Format != LogFormatJSON {
		vb.Fieldf("log.format", "unknown format %q", c.Log.Format)
	}

	return vb.Build()
}

// SlogLevel parses the configured level
func (l LogConfig) SlogLevel() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.ToUpper(l.Level))); err != nil {
		return slog.LevelInfo, err
	}
	return level, nil
}
