package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{"LUCKYDRAW_INPUT", "LUCKYDRAW_OUTPUT", "LUCKYDRAW_LOG_LEVEL", "LUCKYDRAW_LOG_FORMAT"} {
		t.Setenv(k, "")
	}
}

func TestLoad_MissingFileReturnsDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestLoad_ParsesYAML(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "luckydraw.yaml")
	content := `
input: assets/info/draw.xlsm
output: out/extracted_data.json
logging:
  level: debug
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "assets/info/draw.xlsm", cfg.Input)
	assert.Equal(t, "out/extracted_data.json", cfg.Output)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, "console", cfg.Logging.Format, "unset keys keep defaults")
}

func TestLoad_InvalidYAML(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "luckydraw.yaml")
	require.NoError(t, os.WriteFile(path, []byte("input: [unclosed"), 0644))

	_, err := Load(path)
	assert.ErrorContains(t, err, "failed to parse config")
}

func TestEnvOverrides(t *testing.T) {
	t.Run("env replaces file values", func(t *testing.T) {
		clearEnv(t)
		t.Setenv("LUCKYDRAW_INPUT", "env.xlsm")
		t.Setenv("LUCKYDRAW_LOG_FORMAT", "json")

		cfg := &Config{Input: "file.xlsm", Output: "file.json"}
		cfg.applyEnvOverrides()

		assert.Equal(t, "env.xlsm", cfg.Input)
		assert.Equal(t, "file.json", cfg.Output)
		assert.Equal(t, "json", cfg.Logging.Format)
	})

	t.Run("empty env keeps file values", func(t *testing.T) {
		clearEnv(t)

		cfg := &Config{Output: "file.json", Logging: LoggingConfig{Level: "warn"}}
		cfg.applyEnvOverrides()

		assert.Equal(t, "file.json", cfg.Output)
		assert.Equal(t, "warn", cfg.Logging.Level)
	})
}
