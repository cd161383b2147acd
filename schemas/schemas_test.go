package schemas

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/list-bundler/internal/schemas"
)

func readSchema(t *testing.T, name string) string {
	t.Helper()
	data, err := os.ReadFile(filepath.Join(".", name))
	require.NoError(t, err)
	return string(data)
}

func TestFrontMatterSchema(t *testing.T) {
	schema := readSchema(t, "list_front_matter.schema.json")

	tests := []struct {
		name    string
		doc     string
		wantErr bool
	}{
		{"title only", `{"title": "All birds"}`, false},
		{"extra fields allowed", `{"title": "All birds", "author": "someone"}`, false},
		{"missing title", `{"author": "someone"}`, true},
		{"empty title", `{"title": ""}`, true},
		{"numeric title", `{"title": 42}`, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := schemas.ValidateJSONString(schema, tt.doc)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestBuildReportSchema(t *testing.T) {
	schema := readSchema(t, "build_report.schema.json")

	valid := `{
		"run_id": "b4a0e6ce-9d3f-4f6a-8a34-1f2f3b4c5d6e",
		"started_at": "2025-01-02T03:04:05Z",
		"finished_at": "2025-01-02T03:04:06Z",
		"source": "https://github.com/ai-prompts/prompt-lists.git",
		"remote": false,
		"groups": 4,
		"lists": 12,
		"items": 300,
		"skipped": [{"path": "animal/broken.yml", "reason": "missing title"}]
	}`
	assert.NoError(t, schemas.ValidateJSONString(schema, valid))

	t.Run("bad run id", func(t *testing.T) {
		doc := `{
			"run_id": "not-a-uuid",
			"started_at": "2025-01-02T03:04:05Z",
			"finished_at": "2025-01-02T03:04:06Z",
			"source": "local",
			"remote": false,
			"groups": 0,
			"lists": 0,
			"items": 0,
			"skipped": []
		}`
		assert.Error(t, schemas.ValidateJSONString(schema, doc))
	})

	t.Run("missing counts", func(t *testing.T) {
		doc := `{
			"run_id": "b4a0e6ce-9d3f-4f6a-8a34-1f2f3b4c5d6e",
			"started_at": "2025-01-02T03:04:05Z",
			"finished_at": "2025-01-02T03:04:06Z",
			"source": "local",
			"skipped": []
		}`
		assert.Error(t, schemas.ValidateJSONString(schema, doc))
	})

	t.Run("unknown field rejected", func(t *testing.T) {
		doc := `{
			"run_id": "b4a0e6ce-9d3f-4f6a-8a34-1f2f3b4c5d6e",
			"started_at": "2025-01-02T03:04:05Z",
			"finished_at": "2025-01-02T03:04:06Z",
			"source": "local",
			"remote": false,
			"groups": 0,
			"lists": 0,
			"items": 0,
			"skipped": [],
			"extra": true
		}`
		assert.Error(t, schemas.ValidateJSONString(schema, doc))
	})
}
