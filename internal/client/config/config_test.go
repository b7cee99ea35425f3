package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg := &Config{}
	cfg.LoadDefaults()

	assert.Equal(t, "http://localhost:8080", cfg.APIBaseURL)
	assert.Equal(t, 15*time.Second, cfg.RequestTimeout)
	assert.NotEmpty(t, cfg.DataDir)
}

func TestDefaultDataDir_XDG(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/tmp/xdg")
	assert.Equal(t, filepath.Join("/tmp/xdg", "payego"), defaultDataDir())
}

func TestParseJson_Overlay(t *testing.T) {
	file := filepath.Join(t.TempDir(), "payego.json")
	require.NoError(t, os.WriteFile(file, []byte(`{
		"api_base_url": "https://api.payego.example",
		"request_timeout": "30s"
	}`), 0o600))

	oldArgs := os.Args
	os.Args = []string{"payego", "-c", file}
	t.Cleanup(func() { os.Args = oldArgs })

	cfg := &Config{}
	cfg.LoadDefaults()
	dataDir := cfg.DataDir
	parseJson(cfg)

	assert.Equal(t, "https://api.payego.example", cfg.APIBaseURL)
	assert.Equal(t, 30*time.Second, cfg.RequestTimeout)
	assert.Equal(t, dataDir, cfg.DataDir, "fields absent from JSON keep defaults")
}

func TestParseFlags_Overlay(t *testing.T) {
	oldArgs := os.Args
	os.Args = []string{"payego", "-a", "https://staging.payego.example", "-t", "5"}
	t.Cleanup(func() { os.Args = oldArgs })

	cfg := &Config{}
	cfg.LoadDefaults()
	parseFlags(cfg)

	assert.Equal(t, "https://staging.payego.example", cfg.APIBaseURL)
	assert.Equal(t, 5*time.Second, cfg.RequestTimeout)
}
