// Package config loads the cityroute application configuration from TOML,
// applies defaults, then environment overrides, then validates the result.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/BurntSushi/toml"
	log "github.com/sirupsen/logrus"

	"github.com/katalvlaran/cityroute/dijkstra"
)

// Environment variables that override file values.
const (
	EnvLogLevel = "CITYROUTE_LOG_LEVEL"
	EnvDB       = "CITYROUTE_DB"
	EnvNetwork  = "CITYROUTE_NETWORK"
	EnvWorkers  = "CITYROUTE_WORKERS"
)

// Defaults.
const (
	DefaultLogLevel   = "info"
	DefaultWorkers    = 4
	DefaultMaxSizeMB  = 100
	DefaultMaxBackups = 7
	DefaultMaxAgeDays = 30
)

// ErrInvalid wraps every validation failure.
var ErrInvalid = errors.New("config: invalid value")

// Config is the application configuration.
type Config struct {
	// Network is a network file (.yaml, .yml, .toml, .osm), "neo4j" to read
	// from the [neo4j] database, or empty for the built-in sample city.
	Network string `toml:"network"`
	// Database is the SQLite run history; empty disables persistence.
	Database string `toml:"database"`
	// Workers bounds parallel shortest-path computations.
	Workers int `toml:"workers"`
	// Frontier is "heap" or "linear".
	Frontier string `toml:"frontier"`

	Log   LogConfig   `toml:"log"`
	Neo4j Neo4jConfig `toml:"neo4j"`
}

// LogConfig controls logging.Setup.
type LogConfig struct {
	Level string `toml:"level"`
	// File enables rotated file output; stderr is used when empty.
	File       string `toml:"file"`
	MaxSizeMB  int    `toml:"max_size_mb"`
	MaxBackups int    `toml:"max_backups"`
	MaxAgeDays int    `toml:"max_age_days"`
	Compress   bool   `toml:"compress"`
}

// Neo4jConfig locates a network stored in Neo4j.
type Neo4jConfig struct {
	URI      string `toml:"uri"`
	Database string `toml:"database"`
	Username string `toml:"username"`
	Password string `toml:"password"`
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()

	return cfg
}

// Load reads path (when non-empty), fills defaults, applies environment
// overrides and validates.
func Load(path string) (*Config, error) {
	cfg := &Config{}
	if path != "" {
		md, err := toml.DecodeFile(path, cfg)
		if err != nil {
			return nil, fmt.Errorf("failed to decode config file %s: %w", path, err)
		}
		if undecoded := md.Undecoded(); len(undecoded) > 0 {
			log.Warnf("config %s: ignoring unknown keys %v", path, undecoded)
		}
	}
	cfg.applyDefaults()
	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) applyDefaults() {
	if c.Workers == 0 {
		c.Workers = DefaultWorkers
	}
	if c.Frontier == "" {
		c.Frontier = dijkstra.FrontierHeap.String()
	}
	if c.Log.Level == "" {
		c.Log.Level = DefaultLogLevel
	}
	if c.Log.MaxSizeMB == 0 {
		c.Log.MaxSizeMB = DefaultMaxSizeMB
	}
	if c.Log.MaxBackups == 0 {
		c.Log.MaxBackups = DefaultMaxBackups
	}
	if c.Log.MaxAgeDays == 0 {
		c.Log.MaxAgeDays = DefaultMaxAgeDays
	}
}

func (c *Config) applyEnv() error {
	if v, ok := os.LookupEnv(EnvLogLevel); ok {
		c.Log.Level = v
	}
	if v, ok := os.LookupEnv(EnvDB); ok {
		c.Database = v
	}
	if v, ok := os.LookupEnv(EnvNetwork); ok {
		c.Network = v
	}
	if v, ok := os.LookupEnv(EnvWorkers); ok {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%w: %s=%q: %v", ErrInvalid, EnvWorkers, v, err)
		}
		c.Workers = n
	}

	return nil
}

// Validate checks value ranges.
func (c *Config) Validate() error {
	if _, err := log.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("%w: log level %q", ErrInvalid, c.Log.Level)
	}
	if c.Workers <= 0 {
		return fmt.Errorf("%w: workers must be positive, got %d", ErrInvalid, c.Workers)
	}
	if _, err := dijkstra.ParseFrontier(c.Frontier); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	if c.Network == "neo4j" && c.Neo4j.URI == "" {
		return fmt.Errorf("%w: network \"neo4j\" needs [neo4j] uri", ErrInvalid)
	}

	return nil
}

// EngineOptions translates the configuration into engine options.
func (c *Config) EngineOptions() []dijkstra.Option {
	f, _ := dijkstra.ParseFrontier(c.Frontier)

	return []dijkstra.Option{dijkstra.WithFrontier(f)}
}
