package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_ValidJSON(t *testing.T) {
	content := `{
		"port": 9090,
		"default_template": "classic",
		"render_timeout": 45,
		"state_dir": "/var/lib/resume-builder"
	}`

	tmpFile := filepath.Join(t.TempDir(), "config.json")
	err := os.WriteFile(tmpFile, []byte(content), 0644)
	require.NoError(t, err)

	cfg, err := LoadConfig(tmpFile)
	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.Equal(t, 9090, cfg.Port)
	assert.Equal(t, "classic", cfg.DefaultTemplate)
	assert.Equal(t, 45, cfg.RenderTimeout)
	assert.Equal(t, "/var/lib/resume-builder", cfg.StateDir)
}

func TestLoadConfig_InvalidJSON(t *testing.T) {
	content := `{ invalid json }`

	tmpFile := filepath.Join(t.TempDir(), "config.json")
	err := os.WriteFile(tmpFile, []byte(content), 0644)
	require.NoError(t, err)

	cfg, err := LoadConfig(tmpFile)
	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "failed to parse config JSON")
}

func TestLoadConfig_FileNotFound(t *testing.T) {
	cfg, err := LoadConfig("/nonexistent/path/config.json")
	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "failed to read config file")
}

func TestLoadConfig_EmptyPath(t *testing.T) {
	cfg, err := LoadConfig("")
	assert.Error(t, err)
	assert.Nil(t, cfg)
}

func TestValidate_Defaults(t *testing.T) {
	cfg := Defaults()
	assert.NoError(t, cfg.Validate())
}

func TestValidate_UnknownTemplate(t *testing.T) {
	cfg := Defaults()
	cfg.DefaultTemplate = "brutalist"

	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown template")
}

func TestValidate_BadPort(t *testing.T) {
	cfg := Defaults()
	cfg.Port = 70000

	assert.Error(t, cfg.Validate())
}

func TestValidate_MissingChromeBinary(t *testing.T) {
	cfg := Defaults()
	cfg.ChromePath = "/nonexistent/chrome"

	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "chrome binary not found")
}

func TestValidate_NegativeTimeout(t *testing.T) {
	cfg := Defaults()
	cfg.RenderTimeout = -1

	assert.Error(t, cfg.Validate())
}

func TestMergeWithDefaults(t *testing.T) {
	cfg := Config{Port: 3000, DatabaseURL: "postgres://localhost/resume"}

	merged := cfg.MergeWithDefaults(Defaults())

	assert.Equal(t, 3000, merged.Port)
	assert.Equal(t, "postgres://localhost/resume", merged.DatabaseURL)
	assert.Equal(t, "modern", merged.DefaultTemplate)
	assert.Equal(t, 30, merged.RenderTimeout)
	assert.Equal(t, 2, merged.MaxRenders)
	assert.Equal(t, ".resume-builder", merged.StateDir)
}

func TestFromEnv_FillsUnsetFields(t *testing.T) {
	t.Setenv("PORT", "4000")
	t.Setenv("DATABASE_URL", "postgres://env/resume")

	cfg := Config{}
	cfg.FromEnv()

	assert.Equal(t, 4000, cfg.Port)
	assert.Equal(t, "postgres://env/resume", cfg.DatabaseURL)
}

func TestFromEnv_DoesNotOverrideExplicit(t *testing.T) {
	t.Setenv("PORT", "4000")

	cfg := Config{Port: 3000}
	cfg.FromEnv()

	assert.Equal(t, 3000, cfg.Port)
}
