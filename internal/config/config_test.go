package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoad_Defaults(t *testing.T) {
	path := writeConfig(t, `
[database]
dbname = "salons"
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.HTTPPort)
	assert.Equal(t, "info", cfg.Logs.Level)
	assert.Equal(t, "/metrics", cfg.Metrics.Path)
	assert.Equal(t, 60, cfg.Availability.DefaultServiceDuration)
	assert.Equal(t, 300, cfg.Redis.CacheTTL)
	assert.False(t, cfg.Redis.Enabled)
}

func TestLoad_ExpandsEnv(t *testing.T) {
	t.Setenv("SALON_DB_PASSWORD", "s3cret")
	path := writeConfig(t, `
[server]
http_port = 9090

[database]
host = "db"
port = 5433
user = "salon"
password = "${SALON_DB_PASSWORD}"
dbname = "salons"
sslmode = "require"

[redis]
enabled = true
addr = "redis:6379"
cache_ttl = 120
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.HTTPPort)
	assert.Equal(t, "s3cret", cfg.Database.Password)
	assert.Equal(t, "host=db port=5433 user=salon password=s3cret dbname=salons sslmode=require", cfg.Database.DSN())
	assert.Equal(t, "redis:6379", cfg.Redis.Addr)
	assert.Equal(t, float64(120), cfg.Redis.TTL().Seconds())
}

func TestLoad_Errors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.toml"))
	assert.ErrorIs(t, err, ErrReadConfig)

	_, err = Load(writeConfig(t, "[database\n"))
	assert.ErrorIs(t, err, ErrParseConfig)

	_, err = Load(writeConfig(t, "[server]\nhttp_port = 8080\n"))
	assert.ErrorIs(t, err, ErrInvalidConfig)

	_, err = Load(writeConfig(t, "[database]\ndbname = \"x\"\n[availability]\ndefault_service_duration = 0\n"))
	assert.ErrorIs(t, err, ErrInvalidConfig)
}
