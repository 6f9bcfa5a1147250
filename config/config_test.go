package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoadFile(t *testing.T) {
	path := writeConfig(t, `
server:
  addr: ":9090"
db:
  host: db
  port: "5433"
  user: geo
  password: secret
  dbname: cells
  sslmode: require
redis:
  addr: redis:6379
  db: 2
  ttl: 10m
geohash:
  defaultprecision: 7
`)
	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, ":9090", cfg.Server.Addr)
	assert.Equal(t, "host=db port=5433 user=geo password=secret dbname=cells sslmode=require", cfg.DB.DSN())
	assert.Equal(t, "postgres://geo:secret@db:5433/cells?sslmode=require", cfg.DB.URL())
	assert.Equal(t, "redis:6379", cfg.Redis.Addr)
	assert.Equal(t, 2, cfg.Redis.DB)
	assert.Equal(t, 10*time.Minute, cfg.Redis.TTL)
	assert.Equal(t, 7, cfg.Geohash.DefaultPrecision)
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load(writeConfig(t, "server:\n  addr: \":8081\"\n"))
	require.NoError(t, err)

	assert.Equal(t, ":8081", cfg.Server.Addr)
	assert.Equal(t, "localhost:6379", cfg.Redis.Addr)
	assert.Equal(t, 24*time.Hour, cfg.Redis.TTL)
	assert.Equal(t, 9, cfg.Geohash.DefaultPrecision)
}

func TestLoadEnvOverride(t *testing.T) {
	t.Setenv("GEOHASH_GEOHASH_DEFAULTPRECISION", "5")
	t.Setenv("GEOHASH_DB_HOST", "pg.internal")

	cfg, err := Load(writeConfig(t, "db:\n  host: localhost\n"))
	require.NoError(t, err)
	assert.Equal(t, 5, cfg.Geohash.DefaultPrecision)
	assert.Equal(t, "pg.internal", cfg.DB.Host)
}

func TestLoadRejectsBadPrecision(t *testing.T) {
	_, err := Load(writeConfig(t, "geohash:\n  defaultprecision: 13\n"))
	assert.Error(t, err)
}

func TestLoadMissingExplicitFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}
