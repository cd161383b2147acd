package report

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/jonathan/list-bundler/internal/sampling"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxSkippedToShow bounds how many skipped files the summary lists
	maxSkippedToShow = 5
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	for _, line := range strings.Split(content, "\n") {
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintBuildReport outputs a human-readable summary of a finished build.
func (p *Printer) PrintBuildReport(r *BuildReport) {
	if r == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Run:      %s\n", r.RunID))
	sb.WriteString(fmt.Sprintf("Source:   %s\n", r.Source))
	sb.WriteString(fmt.Sprintf("Duration: %s\n", r.FinishedAt.Sub(r.StartedAt).Round(time.Millisecond)))
	sb.WriteString("\n")
	sb.WriteString(fmt.Sprintf("Groups:   %d\n", r.Groups))
	sb.WriteString(fmt.Sprintf("Lists:    %d\n", r.Lists))
	sb.WriteString(fmt.Sprintf("Items:    %d", r.Items))

	if len(r.Skipped) > 0 {
		sb.WriteString("\n\nSkipped files:\n")
		count := min(len(r.Skipped), maxSkippedToShow)
		for i := 0; i < count; i++ {
			sb.WriteString(fmt.Sprintf("  • %s: %s\n", r.Skipped[i].Path, r.Skipped[i].Reason))
		}
		if len(r.Skipped) > maxSkippedToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(r.Skipped)-maxSkippedToShow))
		}
	}

	p.printBox("Build Report", sb.String())
}

// PrintSample writes a rendered instruction stream as indented text:
// one heading line per group, one per list, one bullet per item.
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) PrintSample(instructions []sampling.Instruction) {
	for _, ins := range instructions {
		switch ins.Kind {
		case sampling.GroupHeading:
			fmt.Fprintf(p.out, "%s\n%s\n", ins.Text, strings.Repeat("=", len(ins.Text)))
		case sampling.ListHeading:
			fmt.Fprintf(p.out, "\n%s (%s)\n", ins.Text, ins.Path)
		case sampling.Item:
			fmt.Fprintf(p.out, "  • %s\n", ins.Text)
		}
	}
}
