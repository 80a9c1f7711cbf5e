package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, "shacl", cfg.Shapes.Dir)
	assert.Equal(t, "vocabularies", cfg.Vocabularies.Dir)
	assert.Equal(t, 10*time.Second, cfg.HTTP.Timeout)
	assert.Equal(t, 7*24*time.Hour, cfg.Shapes.UpdateInterval)
	assert.False(t, cfg.Shapes.Watch)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"empty shapes dir", func(c *Config) { c.Shapes.Dir = "" }},
		{"empty vocab dir", func(c *Config) { c.Vocabularies.Dir = "" }},
		{"zero timeout", func(c *Config) { c.HTTP.Timeout = 0 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			assert.Error(t, cfg.Validate())
		})
	}
}

func TestMerge(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Merge(&Config{
		Shapes: ShapesConfig{Dir: "/opt/shapes", Extra: []string{"custom/**/*.ttl"}, Watch: true},
		HTTP:   HTTPConfig{Timeout: 30 * time.Second},
	})

	assert.Equal(t, "/opt/shapes", cfg.Shapes.Dir)
	assert.Equal(t, []string{"custom/**/*.ttl"}, cfg.Shapes.Extra)
	assert.True(t, cfg.Shapes.Watch)
	assert.Equal(t, 30*time.Second, cfg.HTTP.Timeout)
	// Untouched fields keep their defaults.
	assert.Equal(t, "vocabularies", cfg.Vocabularies.Dir)
	assert.Equal(t, 7*24*time.Hour, cfg.Shapes.UpdateInterval)

	cfg.Merge(nil)
	assert.Equal(t, "/opt/shapes", cfg.Shapes.Dir)
}

func TestLoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "dcatqa.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
shapes:
  dir: /data/shapes
  watch: true
http:
  timeout: 5s
  insecure_skip_verify: true
`), 0o644))

	cfg, err := LoadFromFile(path)
	require.NoError(t, err)
	assert.Equal(t, "/data/shapes", cfg.Shapes.Dir)
	assert.True(t, cfg.Shapes.Watch)
	assert.Equal(t, 5*time.Second, cfg.HTTP.Timeout)
	assert.True(t, cfg.HTTP.InsecureSkipVerify)
}

func TestLoadFromFileErrors(t *testing.T) {
	_, err := LoadFromFile(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)

	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("{{{{"), 0o644))
	_, err = LoadFromFile(path)
	assert.Error(t, err)
}

func TestLoaderLayering(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "override.yaml")
	require.NoError(t, os.WriteFile(path, []byte("shapes:\n  dir: /env/shapes\n"), 0o644))
	t.Setenv(EnvConfigPath, path)

	cfg, err := NewLoader(nil).Load()
	require.NoError(t, err)
	assert.Equal(t, "/env/shapes", cfg.Shapes.Dir)
	assert.Equal(t, "vocabularies", cfg.Vocabularies.Dir)
}
