// Package report produces the build report artifact and the formatted
// verbose output for CLI commands.
package report

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"github.com/jonathan/list-bundler/internal/index"
	"github.com/jonathan/list-bundler/internal/lists"
)

// FileName is the report artifact written next to the emitted bundles.
const FileName = "build_report.json"

// BuildReport summarizes one build run: what was read, what was skipped,
// and what the index contains.
type BuildReport struct {
	RunID      uuid.UUID           `json:"run_id"`
	StartedAt  time.Time           `json:"started_at"`
	FinishedAt time.Time           `json:"finished_at"`
	Source     string              `json:"source"`
	Remote     bool                `json:"remote"`
	Groups     int                 `json:"groups"`
	Lists      int                 `json:"lists"`
	Items      int                 `json:"items"`
	Skipped    []lists.SkippedFile `json:"skipped"`
}

// New starts a report for a build reading from the given source.
func New(source string, remote bool) *BuildReport {
	return &BuildReport{
		RunID:     uuid.New(),
		StartedAt: time.Now().UTC(),
		Source:    source,
		Remote:    remote,
		Skipped:   []lists.SkippedFile{},
	}
}

// Finalize fills in the counts from the load result and built index and
// stamps the finish time.
func (r *BuildReport) Finalize(res *lists.LoadResult, ix *index.Index) {
	r.FinishedAt = time.Now().UTC()
	r.Groups = len(res.Groups())
	r.Lists = len(ix.CategoryTable)
	r.Items = res.ItemCount()
	if res.Skipped != nil {
		r.Skipped = res.Skipped
	}
}

// Write serializes the report into outDir and returns the file path.
func (r *BuildReport) Write(outDir string) (string, error) {
	data, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to marshal build report: %w", err)
	}
	data = append(data, '\n')

	path := filepath.Join(outDir, FileName)
	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", fmt.Errorf("failed to write build report: %w", err)
	}
	return path, nil
}
