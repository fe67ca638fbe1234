package config

import (
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	viper.Reset()
	dir := t.TempDir()
	t.Setenv("CONFIG_DIR", dir)
	t.Setenv("HISTORY_BACKEND", "")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, EnvLocal, cfg.Env)
	assert.Equal(t, defaultDecodeBaseURL, cfg.DecodeBaseURL)
	assert.Equal(t, 0, cfg.DecodeTimeout)
	assert.Equal(t, filepath.Join(dir, defaultDataFile), cfg.DataPath)
	assert.Equal(t, []string{"zbarcam", "--raw", "--nodisplay"}, cfg.ScannerCommand)
	assert.Equal(t, defaultScanBuffer, cfg.ScanBuffer)
}

func TestLoad_EnvOverrides(t *testing.T) {
	viper.Reset()
	t.Setenv("CONFIG_DIR", t.TempDir())
	t.Setenv("HISTORY_BACKEND", "MEMORY")
	t.Setenv("DECODE_BASE_URL", "http://localhost:9999/decode/")
	t.Setenv("APP_ENV", EnvProd)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, BackendMemory, cfg.HistoryBackend)
	assert.Equal(t, "http://localhost:9999/decode", cfg.DecodeBaseURL)
	assert.True(t, cfg.IsProd())
	assert.False(t, cfg.IsLocal())
}

func TestConfig_Validate(t *testing.T) {
	valid := func() Config {
		return Config{
			DecodeBaseURL:  defaultDecodeBaseURL,
			HistoryBackend: BackendSQLite,
			DataPath:       "/tmp/history.db",
			ScanBuffer:     1,
		}
	}

	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr bool
	}{
		{name: "valid sqlite", mutate: func(c *Config) {}},
		{name: "empty base url", mutate: func(c *Config) { c.DecodeBaseURL = "" }, wantErr: true},
		{name: "negative timeout", mutate: func(c *Config) { c.DecodeTimeout = -1 }, wantErr: true},
		{name: "postgres without uri", mutate: func(c *Config) { c.HistoryBackend = BackendPostgres }, wantErr: true},
		{name: "postgres with uri", mutate: func(c *Config) {
			c.HistoryBackend = BackendPostgres
			c.DatabaseURI = "postgres://localhost/vin"
		}},
		{name: "redis without addr", mutate: func(c *Config) { c.HistoryBackend = BackendRedis }, wantErr: true},
		{name: "unknown backend", mutate: func(c *Config) { c.HistoryBackend = "mongo" }, wantErr: true},
		{name: "zero scan buffer", mutate: func(c *Config) { c.ScanBuffer = 0 }, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := valid()
			tt.mutate(&c)
			err := c.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
