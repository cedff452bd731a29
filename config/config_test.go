package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)
	assert.Equal(t, Defaults(), cfg)
	assert.Equal(t, "0.0.0.0:8080", cfg.Addr())
}

func TestLoadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "fleetdash.yaml")
	data := `
web:
  port: 9090
database:
  driver: sqlite
  sqlite:
    path: /tmp/fleet.db
messaging:
  backend: kafka
  kafka:
    brokers: [k1:9092, k2:9092]
live:
  interval: 2s
  seed: 42
`
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 9090, cfg.Web.Port)
	assert.Equal(t, "0.0.0.0", cfg.Web.Host)
	assert.Equal(t, "sqlite", cfg.Database.Driver)
	assert.Equal(t, "/tmp/fleet.db", cfg.Database.SQLite.Path)
	assert.Equal(t, []string{"k1:9092", "k2:9092"}, cfg.Messaging.Kafka.Brokers)
	assert.Equal(t, 2*time.Second, cfg.Live.Interval)
	assert.Equal(t, uint64(42), cfg.Live.Seed)
}

func TestEnvOverridesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "fleetdash.yaml")
	require.NoError(t, os.WriteFile(path, []byte("web:\n  port: 9090\n"), 0o644))
	t.Setenv("FLEETDASH_WEB_PORT", "7070")
	t.Setenv("FLEETDASH_REDIS_ENABLED", "true")
	t.Setenv("FLEETDASH_LIVE_INTERVAL", "750ms")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 7070, cfg.Web.Port)
	assert.True(t, cfg.Redis.Enabled)
	assert.Equal(t, 750*time.Millisecond, cfg.Live.Interval)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		want   string
	}{
		{"driver", func(c *Config) { c.Database.Driver = "oracle" }, "unsupported database driver"},
		{"backend", func(c *Config) { c.Messaging.Backend = "amqp" }, "unsupported messaging backend"},
		{"port", func(c *Config) { c.Web.Port = 0 }, "invalid web port"},
		{"interval", func(c *Config) { c.Live.Interval = time.Millisecond }, "live interval too short"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := Defaults()
			tc.mutate(cfg)
			err := cfg.Validate()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.want)
		})
	}
}

func TestSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.yaml")
	cfg := Defaults()
	cfg.Database.Driver = "postgres"
	require.NoError(t, cfg.Save(path))

	got, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "postgres", got.Database.Driver)
}
