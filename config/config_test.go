package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load(viper.New())
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.Server.Addr)
	assert.Equal(t, 10*time.Second, cfg.Backend.RequestTimeout)
	assert.Equal(t, "json", cfg.Logger.Encoding)
	assert.NotEmpty(t, cfg.Session.File)
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Run("prefixed keys", func(t *testing.T) {
		t.Setenv("MENUFRONT_BACKEND_BASE_URL", "https://api.example.com/")
		t.Setenv("MENUFRONT_BACKEND_REQUEST_TIMEOUT", "3s")

		cfg, err := Load(viper.New())
		require.NoError(t, err)
		assert.Equal(t, "https://api.example.com", cfg.Backend.BaseURL)
		assert.Equal(t, 3*time.Second, cfg.Backend.RequestTimeout)
	})

	t.Run("plain dotenv names", func(t *testing.T) {
		t.Setenv("BACKEND_BASE_URL", "https://menu.example.com")
		t.Setenv("ALLOWED_ORIGINS", "https://a.example.com,https://b.example.com")
		t.Setenv("APP_ENV", "development")

		cfg, err := Load(viper.New())
		require.NoError(t, err)
		assert.Equal(t, "https://menu.example.com", cfg.Backend.BaseURL)
		assert.Equal(t, "https://a.example.com,https://b.example.com", cfg.Server.AllowedOrigins)
		assert.True(t, cfg.IsDevelopment())
		assert.Equal(t, "console", cfg.Logger.Encoding)
		assert.Equal(t, "debug", cfg.Logger.Level)
	})
}

func TestLoadConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "menufront.yaml")
	require.NoError(t, os.WriteFile(path, []byte("backend:\n  base_url: https://file.example.com\nserver:\n  addr: \":9090\"\n"), 0o600))

	v := viper.New()
	v.SetConfigFile(path)
	cfg, err := Load(v)
	require.NoError(t, err)
	assert.Equal(t, "https://file.example.com", cfg.Backend.BaseURL)
	assert.Equal(t, ":9090", cfg.Server.Addr)

	v = viper.New()
	v.SetConfigFile(filepath.Join(t.TempDir(), "missing.yaml"))
	_, err = Load(v)
	assert.Error(t, err)
}
