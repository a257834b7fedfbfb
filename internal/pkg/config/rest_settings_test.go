//go:build unit
// +build unit

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfigFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "rest-app.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))
	return path
}

func TestInitializeRestConfig(t *testing.T) {
	t.Run("valid config", func(t *testing.T) {
		path := writeConfigFile(t, `
port: "9090"
logger:
  log_level: debug
  log_type: console
`)
		settings, err := InitializeRestConfig(path)
		require.NoError(t, err)
		assert.Equal(t, "9090", settings.Port)
		assert.Equal(t, LogLevelDebug, settings.Logger.LogLevel)
		assert.Equal(t, LogTypeConsole, settings.Logger.LogType)
	})

	t.Run("defaults applied", func(t *testing.T) {
		path := writeConfigFile(t, "{}\n")
		settings, err := InitializeRestConfig(path)
		require.NoError(t, err)
		assert.Equal(t, "8080", settings.Port)
		assert.Equal(t, LogLevelInfo, settings.Logger.LogLevel)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := InitializeRestConfig("/nonexistent/rest-app.yaml")
		assert.Error(t, err)
	})

	t.Run("invalid logger settings", func(t *testing.T) {
		path := writeConfigFile(t, `
port: "8080"
logger:
  log_level: loud
  log_type: console
`)
		_, err := InitializeRestConfig(path)
		assert.Error(t, err)
	})
}
