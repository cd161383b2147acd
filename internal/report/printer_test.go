package report

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/list-bundler/internal/lists"
	"github.com/jonathan/list-bundler/internal/sampling"
)

func TestPrintBuildReport(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	r := New("https://example.com/lists.git", false)
	r.Groups = 4
	r.Lists = 12
	r.Items = 300
	r.FinishedAt = r.StartedAt

	p.PrintBuildReport(r)
	out := buf.String()

	assert.Contains(t, out, "Build Report")
	assert.Contains(t, out, "Groups:   4")
	assert.Contains(t, out, "Lists:    12")
	assert.Contains(t, out, "Items:    300")
	assert.Contains(t, out, "┌")
	assert.Contains(t, out, "└")
	assert.NotContains(t, out, "Skipped files")
}

func TestPrintBuildReport_SkippedCapped(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	r := New("local", false)
	r.FinishedAt = r.StartedAt
	for i := 0; i < maxSkippedToShow+2; i++ {
		r.Skipped = append(r.Skipped, lists.SkippedFile{Path: "animal/x.yml", Reason: "missing title"})
	}

	p.PrintBuildReport(r)
	out := buf.String()

	assert.Contains(t, out, "Skipped files")
	assert.Contains(t, out, "and 2 more")
	assert.Equal(t, maxSkippedToShow, strings.Count(out, "animal/x.yml"))
}

func TestPrintBuildReport_Nil(t *testing.T) {
	var buf bytes.Buffer
	NewPrinter(&buf).PrintBuildReport(nil)
	assert.Empty(t, buf.String())
}

func TestPrintSample(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintSample([]sampling.Instruction{
		{Kind: sampling.GroupHeading, Text: "animal"},
		{Kind: sampling.ListHeading, Text: "All birds", Path: "animal.birds"},
		{Kind: sampling.Item, Text: "Owl"},
		{Kind: sampling.Item, Text: "Wren"},
	})

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 6)
	assert.Equal(t, "animal", lines[0])
	assert.Equal(t, "======", lines[1])
	assert.Equal(t, "", lines[2])
	assert.Equal(t, "All birds (animal.birds)", lines[3])
	assert.Equal(t, "  • Owl", lines[4])
	assert.Equal(t, "  • Wren", lines[5])
}
