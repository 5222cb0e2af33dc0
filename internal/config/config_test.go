package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	content := `{
		"profile_path": "profiles/me.json",
		"job_path": "jobs/current.json",
		"output_dir": ".",
		"model": "gemini-2.5-pro",
		"verbose": true
	}`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "profiles/me.json", cfg.ProfilePath)
	assert.Equal(t, "jobs/current.json", cfg.JobPath)
	assert.Equal(t, "gemini-2.5-pro", cfg.Model)
	assert.True(t, cfg.Verbose)
}

func TestLoadConfig_EmptyPath(t *testing.T) {
	_, err := LoadConfig("")
	assert.Error(t, err)
}

func TestLoadConfig_MissingFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "nope.json"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read config file")
}

func TestLoadConfig_MalformedJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte("{bad"), 0o644))

	_, err := LoadConfig(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse config JSON")
}

func TestValidate_OutputDir(t *testing.T) {
	dir := t.TempDir()

	cfg := &Config{OutputDir: dir}
	assert.NoError(t, cfg.Validate())

	cfg = &Config{OutputDir: filepath.Join(dir, "missing")}
	assert.Error(t, cfg.Validate())

	file := filepath.Join(dir, "file.txt")
	require.NoError(t, os.WriteFile(file, []byte("x"), 0o644))
	cfg = &Config{OutputDir: file}
	assert.Error(t, cfg.Validate())
}

func TestValidate_EmptyConfig(t *testing.T) {
	cfg := &Config{}
	assert.NoError(t, cfg.Validate())
}

func TestMergeWithDefaults(t *testing.T) {
	cfg := Config{Model: "gemini-2.5-pro"}
	defaults := Config{
		ProfilePath: "user_profile.json",
		JobPath:     "job_description.json",
		OutputDir:   ".",
		Model:       "gemini-2.5-flash",
	}

	merged := cfg.MergeWithDefaults(defaults)

	assert.Equal(t, "user_profile.json", merged.ProfilePath)
	assert.Equal(t, "job_description.json", merged.JobPath)
	assert.Equal(t, ".", merged.OutputDir)
	assert.Equal(t, "gemini-2.5-pro", merged.Model) // explicit value wins
}
