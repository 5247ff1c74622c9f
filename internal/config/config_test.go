package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	merrors "github.com/matzehuels/metroroute/pkg/errors"
)

// isolate points the XDG directories at a temp dir and clears overrides.
func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(dir, "config"))
	t.Setenv("XDG_CACHE_HOME", filepath.Join(dir, "cache"))
	for _, env := range []string{EnvNetwork, EnvCacheDir, EnvNoCache, EnvRedisURL, EnvAddr, EnvLogLevel} {
		t.Setenv(env, "")
		os.Unsetenv(env)
	}
	return dir
}

func writeConfig(t *testing.T, path, body string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(body), 0644); err != nil {
		t.Fatal(err)
	}
}

func TestLoadDefaults(t *testing.T) {
	isolate(t)

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Server.Addr != ":8080" {
		t.Errorf("Server.Addr = %q, want :8080", cfg.Server.Addr)
	}
	if cfg.Network != "" {
		t.Errorf("Network = %q, want built-in", cfg.Network)
	}
	if cfg.Cache.TTL != 7*24*time.Hour {
		t.Errorf("Cache.TTL = %v", cfg.Cache.TTL)
	}
}

func TestLoadDefaultLocation(t *testing.T) {
	dir := isolate(t)
	writeConfig(t, filepath.Join(dir, "config", AppName, "config.toml"), `
network = "/data/delhi.yaml"

[cache]
ttl = "1h"
memory = true

[server]
addr = "127.0.0.1:9000"
cors_origins = ["https://maps.example.com"]
`)

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Network != "/data/delhi.yaml" {
		t.Errorf("Network = %q", cfg.Network)
	}
	if cfg.Cache.TTL != time.Hour {
		t.Errorf("Cache.TTL = %v, want 1h", cfg.Cache.TTL)
	}
	if !cfg.Cache.Memory {
		t.Error("Cache.Memory should be set")
	}
	if len(cfg.Server.CORSOrigins) != 1 || cfg.Server.CORSOrigins[0] != "https://maps.example.com" {
		t.Errorf("Server.CORSOrigins = %v", cfg.Server.CORSOrigins)
	}
	if cfg.Server.Addr != "127.0.0.1:9000" {
		t.Errorf("Server.Addr = %q", cfg.Server.Addr)
	}
	if cfg.Server.ReadTimeout != 5*time.Second {
		t.Errorf("unset fields should keep defaults, ReadTimeout = %v", cfg.Server.ReadTimeout)
	}
}

func TestLoadEnvOverrides(t *testing.T) {
	dir := isolate(t)
	path := filepath.Join(dir, "explicit.toml")
	writeConfig(t, path, "[server]\naddr = \":7000\"\n")

	t.Setenv(EnvAddr, ":7001")
	t.Setenv(EnvNetwork, "net.json")
	t.Setenv(EnvNoCache, "true")
	t.Setenv(EnvRedisURL, "redis://localhost:6379/1")
	t.Setenv(EnvLogLevel, "debug")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Server.Addr != ":7001" {
		t.Errorf("Server.Addr = %q, want env override", cfg.Server.Addr)
	}
	if cfg.Network != "net.json" || !cfg.Cache.Disabled || cfg.Cache.RedisURL != "redis://localhost:6379/1" || cfg.Log.Level != "debug" {
		t.Errorf("env overrides not applied: %+v", cfg)
	}
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name string
		body string
		env  map[string]string
		code merrors.Code
	}{
		{name: "unknown key", body: "netwrok = \"x\"\n", code: merrors.ErrCodeInvalidConfig},
		{name: "bad toml", body: "network = \n", code: merrors.ErrCodeInvalidConfig},
		{name: "bad addr", body: "[server]\naddr = \"nope\"\n", code: merrors.ErrCodeInvalidConfig},
		{name: "bad log level", body: "[log]\nlevel = \"loud\"\n", code: merrors.ErrCodeInvalidConfig},
		{name: "negative ttl", body: "[cache]\nttl = \"-1h\"\n", code: merrors.ErrCodeInvalidConfig},
		{name: "bad redis url", body: "[cache]\nredis_url = \"not a url\"\n", code: merrors.ErrCodeInvalidConfig},
		{name: "bad no-cache env", env: map[string]string{EnvNoCache: "maybe"}, code: merrors.ErrCodeInvalidConfig},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := isolate(t)
			path := filepath.Join(dir, "c.toml")
			writeConfig(t, path, tt.body)
			for k, v := range tt.env {
				t.Setenv(k, v)
			}

			_, err := Load(path)
			if got := merrors.GetCode(err); got != tt.code {
				t.Errorf("Load() error = %v, want code %v", err, tt.code)
			}
		})
	}
}

func TestLoadMissingExplicitFile(t *testing.T) {
	dir := isolate(t)
	_, err := Load(filepath.Join(dir, "missing.toml"))
	if !merrors.Is(err, merrors.ErrCodeFileNotFound) {
		t.Errorf("Load(missing) error = %v, want FILE_NOT_FOUND", err)
	}
}

func TestPaths(t *testing.T) {
	dir := isolate(t)

	p, err := Path()
	if err != nil {
		t.Fatal(err)
	}
	if want := filepath.Join(dir, "config", AppName, "config.toml"); p != want {
		t.Errorf("Path() = %q, want %q", p, want)
	}

	c, err := CacheDir()
	if err != nil {
		t.Fatal(err)
	}
	if want := filepath.Join(dir, "cache", AppName); c != want {
		t.Errorf("CacheDir() = %q, want %q", c, want)
	}

	cfg := Default()
	if got, _ := cfg.CacheDirOrDefault(); got != c {
		t.Errorf("CacheDirOrDefault() = %q, want %q", got, c)
	}
	cfg.Cache.Dir = "/elsewhere"
	if got, _ := cfg.CacheDirOrDefault(); got != "/elsewhere" {
		t.Errorf("CacheDirOrDefault() = %q, want /elsewhere", got)
	}
}

func TestCacheDirHomeFallback(t *testing.T) {
	isolate(t)
	os.Unsetenv("XDG_CACHE_HOME")

	home, err := os.UserHomeDir()
	if err != nil {
		t.Skip("no home directory")
	}
	dir, err := CacheDir()
	if err != nil {
		t.Fatal(err)
	}
	if want := filepath.Join(home, ".cache", AppName); dir != want {
		t.Errorf("CacheDir() = %q, want %q", dir, want)
	}
}
