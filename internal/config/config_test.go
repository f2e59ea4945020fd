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
		"port": 9000,
		"database_url": "postgres://localhost/screener",
		"shortlist_path": "data/shortlist.db",
		"max_file_size": 5242880,
		"verbose": true
	}`

	tmpFile := filepath.Join(t.TempDir(), "config.json")
	err := os.WriteFile(tmpFile, []byte(content), 0o644)
	require.NoError(t, err)

	cfg, err := LoadConfig(tmpFile)
	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.Equal(t, 9000, cfg.Port)
	assert.Equal(t, "postgres://localhost/screener", cfg.DatabaseURL)
	assert.Equal(t, "data/shortlist.db", cfg.ShortlistPath)
	assert.Equal(t, int64(5242880), cfg.MaxFileSize)
	assert.True(t, cfg.Verbose)
}

func TestLoadConfig_InvalidJSON(t *testing.T) {
	tmpFile := filepath.Join(t.TempDir(), "config.json")
	err := os.WriteFile(tmpFile, []byte(`{ invalid json }`), 0o644)
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
	assert.Contains(t, err.Error(), "config path is empty")
}

func TestApplyEnv(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://env/screener")
	t.Setenv("GEMINI_API_KEY", "env-key")
	t.Setenv("PORT", "9100")

	cfg := &Config{}
	cfg.ApplyEnv()

	assert.Equal(t, "postgres://env/screener", cfg.DatabaseURL)
	assert.Equal(t, "env-key", cfg.APIKey)
	assert.Equal(t, 9100, cfg.Port)
}

func TestApplyEnv_FileValuesWin(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://env/screener")
	t.Setenv("PORT", "9100")

	cfg := &Config{DatabaseURL: "postgres://file/screener", Port: 9000}
	cfg.ApplyEnv()

	assert.Equal(t, "postgres://file/screener", cfg.DatabaseURL)
	assert.Equal(t, 9000, cfg.Port)
}

func TestValidate(t *testing.T) {
	cfg := Defaults()
	assert.NoError(t, cfg.Validate())
}

func TestValidate_BadPort(t *testing.T) {
	cfg := Config{Port: 70000}
	assert.Error(t, cfg.Validate())
}

func TestValidate_MissingRolesFile(t *testing.T) {
	cfg := Config{RolesPath: filepath.Join(t.TempDir(), "missing.json")}
	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "roles file not found")
}

func TestMergeWithDefaults(t *testing.T) {
	cfg := Config{Port: 9000, DatabaseURL: "postgres://localhost/screener"}
	merged := cfg.MergeWithDefaults(Defaults())

	assert.Equal(t, 9000, merged.Port)
	assert.Equal(t, "postgres://localhost/screener", merged.DatabaseURL)
	assert.Equal(t, "uploads", merged.UploadDir)
	assert.Equal(t, int64(10<<20), merged.MaxFileSize)
	assert.Equal(t, "data/shortlisted_candidates.db", merged.ShortlistPath)
}
