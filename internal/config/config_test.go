package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Port)
	assert.Equal(t, "file", cfg.SnapshotBackend)
	assert.Equal(t, "data/save.json", cfg.SnapshotPath)
	assert.Equal(t, time.Second, cfg.SaveDebounce)
	assert.Equal(t, 10*time.Second, cfg.OracleTimeout)
}

func TestLoad_InvalidPort(t *testing.T) {
	t.Setenv("PORT", "not-a-port")

	_, err := Load()
	assert.Error(t, err)
}

func TestLoad_InvalidBackendRejected(t *testing.T) {
	t.Setenv("SNAPSHOT_BACKEND", "redis")

	_, err := Load()
	assert.Error(t, err)
}

func TestGetDBConnString(t *testing.T) {
	cfg := &Config{
		DBUser:     "u",
		DBPassword: "p",
		DBHost:     "db",
		DBPort:     "5432",
		DBName:     "cookierng",
	}
	assert.Equal(t, "postgres://u:p@db:5432/cookierng?sslmode=disable", cfg.GetDBConnString())
}
