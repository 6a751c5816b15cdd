package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{"HOST", "PORT", "LOG_LEVEL", "SHUTDOWN_TIMEOUT", "MAX_NAME_LENGTH", "ASSETS_DIR"} {
		t.Setenv(k, "")
		require.NoError(t, os.Unsetenv(k))
	}
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)
	req := require.New(t)

	cfg, err := Load(filepath.Join(t.TempDir(), "missing.env"))

	req.NoError(err)
	req.Equal("localhost", cfg.Host)
	req.Equal(8080, cfg.Port)
	req.Equal("info", cfg.LogLevel)
	req.Equal(5*time.Second, cfg.ShutdownTimeout)
	req.Equal(256, cfg.MaxNameLength)
	req.Empty(cfg.AssetsDir)
	req.Equal("localhost:8080", cfg.Addr())
}

func TestLoad_EnvironmentOverridesDotenv(t *testing.T) {
	clearEnv(t)
	req := require.New(t)
	dotenv := filepath.Join(t.TempDir(), ".env")
	req.NoError(os.WriteFile(dotenv, []byte("PORT=9000\nLOG_LEVEL=debug\n"), 0o600))
	t.Setenv("PORT", "9100")

	cfg, err := Load(dotenv)

	req.NoError(err)
	req.Equal(9100, cfg.Port)
	req.Equal("debug", cfg.LogLevel)
}

func TestLoad_RejectsInvalidValues(t *testing.T) {
	tests := []struct {
		name string
		key  string
		val  string
	}{
		{"port out of range", "PORT", "70000"},
		{"unknown log level", "LOG_LEVEL", "loud"},
		{"non numeric port", "PORT", "http"},
		{"zero name length", "MAX_NAME_LENGTH", "0"},
		{"missing assets dir", "ASSETS_DIR", "/does/not/exist"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			t.Setenv(tt.key, tt.val)

			_, err := Load(filepath.Join(t.TempDir(), "missing.env"))

			require.Error(t, err)
		})
	}
}

func TestLoad_AssetsDir(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()
	t.Setenv("ASSETS_DIR", dir)

	cfg, err := Load(filepath.Join(t.TempDir(), "missing.env"))

	require.NoError(t, err)
	require.Equal(t, dir, cfg.AssetsDir)
}
