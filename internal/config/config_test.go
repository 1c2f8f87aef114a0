package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTempConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadConfig(t *testing.T) {
	path := writeTempConfig(t, `{
		"style": "modern",
		"engine": "native",
		"out_dir": "./output",
		"timeout_seconds": 30,
		"concurrency": 2,
		"verbose": true
	}`)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "modern", cfg.Style)
	assert.Equal(t, "native", cfg.Engine)
	assert.Equal(t, "./output", cfg.OutDir)
	assert.Equal(t, 30, cfg.TimeoutSeconds)
	assert.Equal(t, 2, cfg.Concurrency)
	assert.True(t, cfg.Verbose)
}

func TestLoadConfigErrors(t *testing.T) {
	tests := []struct {
		name string
		path string
	}{
		{"Empty path", ""},
		{"Missing file", filepath.Join(t.TempDir(), "absent.json")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadConfig(tt.path)
			assert.Error(t, err)
		})
	}
}

func TestLoadConfigRejectsMalformedJSON(t *testing.T) {
	path := writeTempConfig(t, `{"style": `)

	_, err := LoadConfig(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse config JSON")
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr string
	}{
		{"Empty config is valid", Config{}, ""},
		{"Chromium engine", Config{Engine: "chromium"}, ""},
		{"Native engine", Config{Engine: "native"}, ""},
		{"Unknown engine", Config{Engine: "pandoc"}, "'engine' must be"},
		{"Negative timeout", Config{TimeoutSeconds: -1}, "'timeout_seconds' must be non-negative"},
		{"Negative concurrency", Config{Concurrency: -1}, "'concurrency' must be non-negative"},
		{"Missing record file", Config{Record: "/nonexistent/record.json"}, "record file not found"},
		{"Missing photo file", Config{Photo: "/nonexistent/photo.jpg"}, "photo file not found"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
			} else {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
			}
		})
	}
}

func TestConfigValidateAcceptsExistingPaths(t *testing.T) {
	record := writeTempConfig(t, `{}`)

	cfg := Config{Record: record}
	assert.NoError(t, cfg.Validate())
}

func TestMergeWithDefaults(t *testing.T) {
	cfg := Config{Style: "minimal"}
	defaults := Config{
		Style:          "professional",
		Engine:         "chromium",
		OutDir:         "./out",
		TimeoutSeconds: 60,
		Concurrency:    4,
	}

	merged := cfg.MergeWithDefaults(defaults)

	assert.Equal(t, "minimal", merged.Style, "explicit value wins")
	assert.Equal(t, "chromium", merged.Engine)
	assert.Equal(t, "./out", merged.OutDir)
	assert.Equal(t, 60, merged.TimeoutSeconds)
	assert.Equal(t, 4, merged.Concurrency)
}

func TestMergeWithDefaultsDoesNotMutateReceiver(t *testing.T) {
	cfg := Config{}
	_ = cfg.MergeWithDefaults(Config{Style: "modern"})
	assert.Empty(t, cfg.Style)
}
