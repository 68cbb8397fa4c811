package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(`
[Database]
Addr = "db:5432"
User = "blog"
Password = "secret"
Database = "blog"

[App]
Port = 9000
SessionTTL = "2h"
Secure = true
`), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "db:5432", cfg.Database.Addr)
	assert.Equal(t, "secret", cfg.Database.Password)
	assert.Equal(t, 10, cfg.Database.PoolSize, "default kept")
	assert.Equal(t, 9000, cfg.App.Port)
	assert.Equal(t, 2*time.Hour, cfg.App.SessionTTL)
	assert.True(t, cfg.App.Secure)
	assert.Equal(t, "session_id", cfg.App.CookieName, "default kept")
	assert.Equal(t, "0.0.0.0:9000", cfg.App.Addr())
}

func TestLoad_Missing(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.toml"))
	assert.Error(t, err)
}
