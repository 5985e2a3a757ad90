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
	t.Run("Should load all sections from yaml", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.yaml")
		require.NoError(t, os.WriteFile(path, []byte(`
server:
  host: "127.0.0.1"
  port: 4000
  read_timeout: 30s
database:
  host: "db"
  port: 5432
  user: "tasks"
  password: "secret"
  name: "tasks"
  sslmode: "disable"
logger:
  level: "debug"
ai:
  request_timeout: 25s
  openrouter_url: "http://localhost:9999"
features:
  enable_request_logging: true
  request_id_header: "X-Request-ID"
auth:
  allowed_origins: ["http://localhost:3000"]
`), 0o600))

		cfg, err := Load(path)

		require.NoError(t, err)
		assert.Equal(t, "127.0.0.1:4000", cfg.Server.Address())
		assert.Equal(t, 30*time.Second, cfg.Server.ReadTimeout)
		assert.Equal(t, "host=db port=5432 user=tasks password=secret dbname=tasks sslmode=disable", cfg.Database.DSN())
		assert.Equal(t, "debug", cfg.Logger.Level)
		assert.Equal(t, 25*time.Second, cfg.AI.RequestTimeout)
		assert.Equal(t, "http://localhost:9999", cfg.AI.OpenRouterURL)
		assert.True(t, cfg.Features.EnableRequestLogging)
		assert.Equal(t, []string{"http://localhost:3000"}, cfg.Auth.AllowedOrigins)
	})

	t.Run("Should fail for a missing file", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
		assert.Error(t, err)
	})
}
