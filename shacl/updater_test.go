package shacl

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/c360studio/dcatqa/config"
)

func updaterConfig(t *testing.T) *config.Config {
	t.Helper()
	cfg := config.DefaultConfig()
	cfg.Shapes.Dir = t.TempDir()
	return cfg
}

func TestUpdaterDue(t *testing.T) {
	cfg := updaterConfig(t)
	u := NewUpdater(cfg, nil)

	assert.True(t, u.Due(), "no timestamp file means due")

	stamp := filepath.Join(cfg.Shapes.Dir, stampFile)
	now := time.Now().UTC().Format(time.RFC3339)
	require.NoError(t, os.WriteFile(stamp, []byte(now), 0o644))
	assert.False(t, u.Due())

	old := time.Now().UTC().Add(-8 * 24 * time.Hour).Format(time.RFC3339)
	require.NoError(t, os.WriteFile(stamp, []byte(old), 0o644))
	assert.True(t, u.Due())

	require.NoError(t, os.WriteFile(stamp, []byte("garbage"), 0o644))
	assert.True(t, u.Due(), "unreadable timestamp counts as due")
}

func TestUpdaterSkipsWhenFresh(t *testing.T) {
	cfg := updaterConfig(t)
	stamp := filepath.Join(cfg.Shapes.Dir, stampFile)
	now := time.Now().UTC().Format(time.RFC3339)
	require.NoError(t, os.WriteFile(stamp, []byte(now), 0o644))

	n, err := NewUpdater(cfg, nil).Update(context.Background(), false)
	require.NoError(t, err)
	assert.Zero(t, n)
}
