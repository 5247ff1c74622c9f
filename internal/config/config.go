// Package config loads metroroute settings.
//
// Settings come from three layers, later ones winning:
//
//  1. built-in defaults ([Default])
//  2. a TOML file, by default $XDG_CONFIG_HOME/metroroute/config.toml
//  3. METROROUTE_* environment variables
//
// The merged result is checked with validator struct tags before use.
//
//	network = "~/transit/delhi.yaml"
//
//	[cache]
//	redis_url = "redis://localhost:6379/0"
//	ttl = "24h"
//
//	[server]
//	addr = ":8080"
package config

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/go-playground/validator/v10"

	merrors "github.com/matzehuels/metroroute/pkg/errors"
)

// AppName names the config and cache directories.
const AppName = "metroroute"

// Environment variables that override file settings.
const (
	EnvNetwork  = "METROROUTE_NETWORK"
	EnvCacheDir = "METROROUTE_CACHE_DIR"
	EnvNoCache  = "METROROUTE_NO_CACHE"
	EnvRedisURL = "METROROUTE_REDIS_URL"
	EnvAddr     = "METROROUTE_ADDR"
	EnvLogLevel = "METROROUTE_LOG_LEVEL"
)

// Config is the merged application configuration.
type Config struct {
	// Network is the data file to load; empty means the built-in network.
	Network string       `toml:"network"`
	Cache   CacheConfig  `toml:"cache"`
	Server  ServerConfig `toml:"server"`
	Log     LogConfig    `toml:"log"`
}

// CacheConfig configures the rendered-map cache.
type CacheConfig struct {
	Disabled bool          `toml:"disabled"`
	Dir      string        `toml:"dir"`
	RedisURL string        `toml:"redis_url" validate:"omitempty,url"`
	Memory   bool          `toml:"memory"`
	TTL      time.Duration `toml:"ttl" validate:"gte=0"`
}

// ServerConfig configures `metroroute serve`.
type ServerConfig struct {
	Addr            string        `toml:"addr" validate:"required,hostname_port"`
	ReadTimeout     time.Duration `toml:"read_timeout" validate:"gt=0"`
	WriteTimeout    time.Duration `toml:"write_timeout" validate:"gt=0"`
	ShutdownTimeout time.Duration `toml:"shutdown_timeout" validate:"gt=0"`

	// CORSOrigins lists the origins allowed to call the API from a
	// browser; "*" allows any. Empty disables CORS headers.
	CORSOrigins []string `toml:"cors_origins" validate:"dive,required"`
}

// LogConfig sets the default log level; --verbose still forces debug.
type LogConfig struct {
	Level string `toml:"level" validate:"omitempty,oneof=debug info warn error"`
}

// Default returns the built-in settings.
func Default() *Config {
	return &Config{
		Cache: CacheConfig{TTL: 7 * 24 * time.Hour},
		Server: ServerConfig{
			Addr:            ":8080",
			ReadTimeout:     5 * time.Second,
			WriteTimeout:    30 * time.Second,
			ShutdownTimeout: 10 * time.Second,
			CORSOrigins:     []string{"*"},
		},
		Log: LogConfig{Level: "info"},
	}
}

// =============================================================================
// Paths
// =============================================================================

// Path returns the default config file location.
func Path() (string, error) {
	return xdgPath("XDG_CONFIG_HOME", ".config", "config.toml")
}

// CacheDir returns the default cache directory (~/.cache/metroroute/).
func CacheDir() (string, error) {
	return xdgPath("XDG_CACHE_HOME", ".cache", "")
}

func xdgPath(env, fallback, file string) (string, error) {
	base := os.Getenv(env)
	if base == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		base = filepath.Join(home, fallback)
	}
	return filepath.Join(base, AppName, file), nil
}

// =============================================================================
// Loading
// =============================================================================

var validate = validator.New()

// Load reads the config file at path, applies environment overrides and
// validates the result. An empty path means the default location, which
// may be absent; an explicitly named file must exist.
func Load(path string) (*Config, error) {
	cfg := Default()

	explicit := path != ""
	if !explicit {
		p, err := Path()
		if err == nil {
			path = p
		}
	}
	if path != "" {
		if err := cfg.readFile(path); err != nil {
			if explicit || !errors.Is(err, fs.ErrNotExist) {
				return nil, err
			}
		}
	}

	if err := cfg.applyEnv(os.LookupEnv); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) readFile(path string) error {
	md, err := toml.DecodeFile(path, c)
	if errors.Is(err, fs.ErrNotExist) {
		return merrors.Wrap(merrors.ErrCodeFileNotFound, err, "config file %s", path)
	}
	if err != nil {
		return merrors.Wrap(merrors.ErrCodeInvalidConfig, err, "config file %s", path)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return merrors.New(merrors.ErrCodeInvalidConfig, "config file %s: unknown keys %v", path, undecoded)
	}
	return nil
}

func (c *Config) applyEnv(lookup func(string) (string, bool)) error {
	if v, ok := lookup(EnvNetwork); ok {
		c.Network = v
	}
	if v, ok := lookup(EnvCacheDir); ok {
		c.Cache.Dir = v
	}
	if v, ok := lookup(EnvRedisURL); ok {
		c.Cache.RedisURL = v
	}
	if v, ok := lookup(EnvAddr); ok {
		c.Server.Addr = v
	}
	if v, ok := lookup(EnvLogLevel); ok {
		c.Log.Level = v
	}
	if v, ok := lookup(EnvNoCache); ok && v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return merrors.Wrap(merrors.ErrCodeInvalidConfig, err, "%s", EnvNoCache)
		}
		c.Cache.Disabled = b
	}
	return nil
}

// Validate checks field constraints.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return merrors.Wrap(merrors.ErrCodeInvalidConfig, err, "invalid configuration")
	}
	return nil
}

// CacheDirOrDefault returns the configured cache directory, or the XDG
// default.
func (c *Config) CacheDirOrDefault() (string, error) {
	if c.Cache.Dir != "" {
		return c.Cache.Dir, nil
	}
	return CacheDir()
}
