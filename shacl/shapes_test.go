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
	"github.com/c360studio/dcatqa/profile"
)

func TestOrderFiles(t *testing.T) {
	files := []profile.ShapeFile{
		{Name: "dcat-ap/2.1.1/dcat-ap_2.1.1_shacl_shapes.ttl"},
		{Name: "dcat-ap-es/1.0.0/shacl_common_shapes.ttl"},
		{Name: "dcat-ap/2.1.1/dcat-ap_2.1.1_shacl_imports.ttl"},
		{Name: "dcat-ap-es/1.0.0/shacl_mdr-vocabularies.shape.ttl"},
		{Name: "dcat-ap-es/1.0.0/shacl_dataset_shape.ttl"},
		{Name: "dcat-ap/2.1.1/dcat-ap_2.1.1_shacl_mdr_imports.ttl"},
	}
	orderFiles(files)

	// Imports first, then common/mdr, then entity shapes; stable within a
	// priority class.
	assert.Equal(t, "dcat-ap/2.1.1/dcat-ap_2.1.1_shacl_imports.ttl", files[0].Name)
	assert.Equal(t, "dcat-ap/2.1.1/dcat-ap_2.1.1_shacl_mdr_imports.ttl", files[1].Name)
	assert.Equal(t, "dcat-ap-es/1.0.0/shacl_common_shapes.ttl", files[2].Name)
	assert.Equal(t, "dcat-ap-es/1.0.0/shacl_mdr-vocabularies.shape.ttl", files[3].Name)
	assert.Equal(t, "dcat-ap/2.1.1/dcat-ap_2.1.1_shacl_shapes.ttl", files[4].Name)
	assert.Equal(t, "dcat-ap-es/1.0.0/shacl_dataset_shape.ttl", files[5].Name)
}

func TestLoadPriority(t *testing.T) {
	assert.Equal(t, 0, loadPriority("dir/dcat-ap_2.1.1_shacl_imports.ttl"))
	assert.Equal(t, 0, loadPriority("mdr_imports.ttl"), "import outranks mdr")
	assert.Equal(t, 1, loadPriority("shacl_common_shapes.ttl"))
	assert.Equal(t, 1, loadPriority("shacl_mdr-vocabularies.shape.ttl"))
	assert.Equal(t, 2, loadPriority("shacl_dataset_shape.ttl"))
}

func TestRewritePatterns(t *testing.T) {
	lookahead := `ex:s sh:pattern "^(?!\\s*$).+$" .`
	rewritten := RewritePatterns(lookahead)
	assert.Contains(t, rewritten, `sh:pattern "\\S"`)
	assert.NotContains(t, rewritten, "(?!")

	inlineFlag := `ex:s sh:pattern "(?i)^https?://" .`
	rewritten = RewritePatterns(inlineFlag)
	assert.Contains(t, rewritten, `sh:flags "i"`)
	assert.Contains(t, rewritten, `sh:pattern "^https?://"`)
	assert.NotContains(t, rewritten, "(?i)")

	plain := `ex:s sh:pattern "^[a-z]+$" .`
	assert.Equal(t, plain, RewritePatterns(plain))
}

// localShapesConfig points the loader at a temp shapes dir with extra globs
// only, so tests never touch the network.
func localShapesConfig(t *testing.T, files map[string]string, extra []string) *config.Config {
	t.Helper()
	dir := t.TempDir()
	for name, content := range files {
		path := filepath.Join(dir, filepath.FromSlash(name))
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	}
	cfg := config.DefaultConfig()
	cfg.Shapes.Dir = dir
	cfg.Shapes.Extra = extra
	cfg.HTTP.Timeout = 100 * time.Millisecond
	return cfg
}

const localShape = shapePrefixes + `
ex:DatasetShape a sh:NodeShape ;
    sh:targetClass dcat:Dataset ;
    sh:property [ sh:path dct:title ; sh:minCount 1 ] .
`

func TestLoaderExtraGlob(t *testing.T) {
	cfg := localShapesConfig(t, map[string]string{
		"custom/org_shapes.ttl": localShape,
	}, []string{"custom/**/*.ttl"})
	loader := NewLoader(cfg, nil)

	files := loader.extraFiles()
	require.Len(t, files, 1)
	assert.Equal(t, "custom/org_shapes.ttl", files[0].Name)
}

func TestLoaderLocalFetch(t *testing.T) {
	cfg := localShapesConfig(t, map[string]string{
		"custom/org_shapes.ttl": localShape,
	}, nil)
	loader := NewLoader(cfg, nil)

	content, err := loader.fetch(context.Background(), profile.ShapeFile{Name: "custom/org_shapes.ttl"})
	require.NoError(t, err)
	assert.Contains(t, content, "DatasetShape")

	_, err = loader.fetch(context.Background(), profile.ShapeFile{Name: "absent.ttl"})
	assert.Error(t, err, "missing local file with no URL is an error")
}

func TestLoaderLoadPartialFailure(t *testing.T) {
	// One extra local file parses; every pinned profile file is absent
	// locally and the upstream fetch can never beat a nanosecond timeout.
	cfg := localShapesConfig(t, map[string]string{
		"custom/org_shapes.ttl": localShape,
	}, []string{"custom/**/*.ttl"})
	cfg.HTTP.Timeout = time.Nanosecond
	loader := NewLoader(cfg, nil)

	sel := profile.Selection{Profile: profile.NTIRISP}
	ds, err := loader.Load(context.Background(), sel)
	require.NoError(t, err, "partial failure degrades coverage, it is not an error")
	assert.Equal(t, 1, ds.FilesLoaded)
	assert.NotZero(t, ds.FilesFailed)
	assert.Len(t, ds.Failures, ds.FilesFailed)
	assert.Equal(t, 1, ds.NodeShapes)

	again, err := loader.Load(context.Background(), sel)
	require.NoError(t, err)
	assert.Same(t, ds, again, "second load served from cache")
}

func TestLoaderLoadAllFilesFail(t *testing.T) {
	cfg := localShapesConfig(t, nil, nil)
	cfg.HTTP.Timeout = time.Nanosecond
	loader := NewLoader(cfg, nil)

	_, err := loader.Load(context.Background(), profile.Selection{Profile: profile.DCATAP})
	require.ErrorIs(t, err, ErrNoShapes)
	assert.Zero(t, loader.Cache().Len(), "failed loads are never cached")
}

func TestCache(t *testing.T) {
	c := NewCache()
	assert.Zero(t, c.Len())

	_, ok := c.Get("k")
	assert.False(t, ok)

	ds := &ShapeDataset{FilesLoaded: 2}
	c.Set("k", ds)
	got, ok := c.Get("k")
	require.True(t, ok)
	assert.Same(t, ds, got)
	assert.Equal(t, 1, c.Len())

	c.Clear()
	assert.Zero(t, c.Len())
	_, ok = c.Get("k")
	assert.False(t, ok)
}

func TestCacheKey(t *testing.T) {
	a := cacheKey(profile.Selection{Profile: profile.DCATAPES})
	b := cacheKey(profile.Selection{Profile: profile.DCATAPES, HVD: true})
	c := cacheKey(profile.Selection{Profile: profile.DCATAP, Level: profile.LevelRecommended})
	assert.NotEqual(t, a, b)
	assert.NotEqual(t, a, c)
	assert.Equal(t, a, cacheKey(profile.Selection{Profile: profile.DCATAPES}))
}
