package pipeline

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/list-bundler/internal/report"
)

func writeFixtureTree(t *testing.T) string {
	t.Helper()
	root := t.TempDir()

	files := map[string]string{
		"animal/birds.yml":  "---\ntitle: All birds\n---\nAcorn Woodpecker\nBlue Jay\n",
		"animal/fish.yml":   "---\ntitle: Fish\n---\nCod\nEel\n",
		"animal/broken.yml": "---\nauthor: nobody\n---\nOwl\n",
		"color/basic.yml":   "---\ntitle: Basic colors\n---\nRed\nBlue\nGreen\n",
	}
	for rel, content := range files {
		path := filepath.Join(root, rel)
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
		require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	}
	return root
}

func TestRunBuild_FromSourceDir(t *testing.T) {
	src := writeFixtureTree(t)
	out := t.TempDir()
	var progress bytes.Buffer

	res, err := RunBuild(context.Background(), RunOptions{
		SourceDir: src,
		OutDir:    out,
		Out:       &progress,
	})
	require.NoError(t, err)

	// Index reflects the fixture tree minus the skipped file.
	assert.Len(t, res.Index.CategoryTable, 3)
	assert.Equal(t, 7, res.Loaded.ItemCount())

	desc, ok := res.Index.Lookup("acorn woodpecker")
	require.True(t, ok)
	assert.Equal(t, "All birds", desc.Title)

	// All three artifacts plus the report exist on disk.
	for _, p := range []string{
		res.Artifacts.IndexPath,
		res.Artifacts.GroupedPath,
		res.Artifacts.DemoPath,
		filepath.Join(out, report.FileName),
	} {
		_, err := os.Stat(p)
		assert.NoError(t, err, p)
	}

	// The malformed file produced a warning, not a failure.
	assert.Contains(t, progress.String(), "Warning: skipped")
	assert.Contains(t, progress.String(), "broken.yml")

	require.Len(t, res.Report.Skipped, 1)
	assert.Equal(t, 2, res.Report.Groups)
	assert.Equal(t, 3, res.Report.Lists)
	assert.Equal(t, src, res.Report.Source)
}

func TestRunBuild_Idempotent(t *testing.T) {
	src := writeFixtureTree(t)
	out := t.TempDir()
	opts := RunOptions{SourceDir: src, OutDir: out, Out: &bytes.Buffer{}}

	first, err := RunBuild(context.Background(), opts)
	require.NoError(t, err)
	bundles := []string{first.Artifacts.IndexPath, first.Artifacts.GroupedPath, first.Artifacts.DemoPath}

	before := make(map[string][]byte, len(bundles))
	for _, p := range bundles {
		raw, err := os.ReadFile(p)
		require.NoError(t, err)
		before[p] = raw
	}

	_, err = RunBuild(context.Background(), opts)
	require.NoError(t, err)

	for _, p := range bundles {
		raw, err := os.ReadFile(p)
		require.NoError(t, err)
		assert.Equal(t, before[p], raw, p)
	}
}

func TestRunBuild_MissingSourceDir(t *testing.T) {
	_, err := RunBuild(context.Background(), RunOptions{
		SourceDir: filepath.Join(t.TempDir(), "nope"),
		OutDir:    t.TempDir(),
		Out:       &bytes.Buffer{},
	})
	require.Error(t, err)
}

func TestRunBuild_VerbosePrintsReport(t *testing.T) {
	src := writeFixtureTree(t)
	var progress bytes.Buffer

	_, err := RunBuild(context.Background(), RunOptions{
		SourceDir: src,
		OutDir:    t.TempDir(),
		Verbose:   true,
		Out:       &progress,
	})
	require.NoError(t, err)
	assert.Contains(t, progress.String(), "Build Report")
}

func TestLoadIndex(t *testing.T) {
	src := writeFixtureTree(t)

	ix, loaded, err := LoadIndex(context.Background(), RunOptions{SourceDir: src})
	require.NoError(t, err)

	assert.Len(t, ix.CategoryTable, 3)
	assert.Equal(t, []string{"animal", "color"}, loaded.Groups())

	_, ok := ix.Lookup("cod")
	assert.True(t, ok)
}
