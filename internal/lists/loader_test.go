package lists

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeList(t *testing.T, root, group, name, content string) {
	t.Helper()
	dir := filepath.Join(root, group)
	require.NoError(t, os.MkdirAll(dir, 0755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0644))
}

func TestLoad_BasicTree(t *testing.T) {
	root := t.TempDir()
	writeList(t, root, "animal", "birds.yml", "---\ntitle: All birds\n---\nAcorn Woodpecker\nBlue Jay\n")
	writeList(t, root, "color", "basic.yml", "---\ntitle: Basic colors\n---\nRed\nBlue\n")

	res, err := Load(root, nil)
	require.NoError(t, err)
	require.Len(t, res.Records, 2)
	assert.Empty(t, res.Skipped)

	// Groups come back in sorted directory order.
	assert.Equal(t, ListRecord{
		Group: "animal",
		Key:   "birds",
		Title: "All birds",
		Items: []string{"Acorn Woodpecker", "Blue Jay"},
	}, res.Records[0])
	assert.Equal(t, "color", res.Records[1].Group)
	assert.Equal(t, "basic", res.Records[1].Key)

	assert.Equal(t, []string{"animal", "color"}, res.Groups())
	assert.Equal(t, 4, res.ItemCount())
}

func TestLoad_BlacklistAndNonYML(t *testing.T) {
	root := t.TempDir()
	writeList(t, root, "animal", "birds.yml", "---\ntitle: All birds\n---\nBlue Jay\n")
	writeList(t, root, "animal", "all.yml", "---\ntitle: Everything\n---\nBlue Jay\n")
	writeList(t, root, "animal", "README.md", "not a list")

	res, err := Load(root, nil)
	require.NoError(t, err)
	require.Len(t, res.Records, 1)
	assert.Equal(t, "birds", res.Records[0].Key)
	assert.Empty(t, res.Skipped)
}

func TestLoad_SkipsMalformedFiles(t *testing.T) {
	root := t.TempDir()
	writeList(t, root, "animal", "birds.yml", "---\ntitle: All birds\n---\nBlue Jay\n")
	writeList(t, root, "animal", "no-title.yml", "---\nauthor: nobody\n---\nBlue Jay\n")
	writeList(t, root, "animal", "empty.yml", "---\ntitle: Empty list\n---\n\n\n")
	writeList(t, root, "animal", "bad-yaml.yml", "---\ntitle: [unclosed\n---\nBlue Jay\n")

	res, err := Load(root, nil)
	require.NoError(t, err)
	require.Len(t, res.Records, 1)
	assert.Equal(t, "birds", res.Records[0].Key)

	require.Len(t, res.Skipped, 3)
	reasons := make(map[string]string)
	for _, s := range res.Skipped {
		reasons[filepath.Base(s.Path)] = s.Reason
	}
	assert.Contains(t, reasons["no-title.yml"], "missing title")
	assert.Contains(t, reasons["empty.yml"], "no items")
	assert.Contains(t, reasons["bad-yaml.yml"], "front matter")
}

func TestLoad_FrontMatterSchema(t *testing.T) {
	schema := `{
		"type": "object",
		"required": ["title"],
		"properties": {"title": {"type": "string", "minLength": 1}}
	}`

	root := t.TempDir()
	writeList(t, root, "animal", "birds.yml", "---\ntitle: All birds\n---\nBlue Jay\n")
	writeList(t, root, "animal", "numeric-title.yml", "---\ntitle: 42\n---\nBlue Jay\n")

	res, err := Load(root, &Options{FrontMatterSchema: schema})
	require.NoError(t, err)
	require.Len(t, res.Records, 1)
	require.Len(t, res.Skipped, 1)
	assert.Contains(t, res.Skipped[0].Reason, "schema")
}

func TestLoad_DuplicateKeys(t *testing.T) {
	root := t.TempDir()
	writeList(t, root, "animal", "My-Birds.yml", "---\ntitle: First\n---\nBlue Jay\n")
	writeList(t, root, "animal", "my-birds.yml", "---\ntitle: Second\n---\nOwl\n")

	res, err := Load(root, nil)
	require.NoError(t, err)
	// Both names slugify to my-birds; the later file is skipped.
	require.Len(t, res.Records, 1)
	assert.Equal(t, "First", res.Records[0].Title)
	require.Len(t, res.Skipped, 1)
	assert.Contains(t, res.Skipped[0].Reason, "duplicate list key")
}

func TestLoad_KeySlugification(t *testing.T) {
	root := t.TempDir()
	writeList(t, root, "place", "Big Cities.yml", "---\ntitle: Big cities\n---\nParis\n")

	res, err := Load(root, nil)
	require.NoError(t, err)
	require.Len(t, res.Records, 1)
	assert.Equal(t, "big-cities", res.Records[0].Key)
}

func TestLoad_MissingRoot(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope"), nil)
	require.Error(t, err)
}

func TestLoad_EmptyGroupOmitted(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(root, "empty-group"), 0755))
	writeList(t, root, "animal", "birds.yml", "---\ntitle: All birds\n---\nBlue Jay\n")

	res, err := Load(root, nil)
	require.NoError(t, err)
	assert.Equal(t, []string{"animal"}, res.Groups())
}
