// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/ats-analyzer/internal/analysis"
	"github.com/jonathan/ats-analyzer/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
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

// PrintAnalysisResult outputs a human-readable summary of one analysis.
func (p *Printer) PrintAnalysisResult(result *types.AnalysisResult) {
	if result == nil {
		return
	}

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Total Score:  %d / 100\n", result.Score.Total))
	sb.WriteString(fmt.Sprintf("  Keyword:    %.1f\n", result.Score.Keyword))
	sb.WriteString(fmt.Sprintf("  Bullets:    %.1f\n", result.Score.Bullet))
	sb.WriteString(fmt.Sprintf("  Metrics:    %.1f\n", result.Score.Metric))
	sb.WriteString(fmt.Sprintf("  Sections:   %.1f\n", result.Score.Section))
	sb.WriteString("\n")

	sb.WriteString(fmt.Sprintf("Keyword Match: %d%% (%d of %d, source: %s)\n",
		result.Match.Percent,
		len(result.Match.Matched),
		len(result.Match.Matched)+len(result.Match.Missing),
		result.KeywordSource))

	if len(result.Match.Missing) > 0 {
		sb.WriteString("Missing Keywords:\n")
		count := min(len(result.Match.Missing), maxItemsToShow)
		for i := 0; i < count; i++ {
			sb.WriteString(fmt.Sprintf("  • %s\n", result.Match.Missing[i]))
		}
		if len(result.Match.Missing) > count {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(result.Match.Missing)-count))
		}
	}

	if len(result.WeakBullets) > 0 {
		sb.WriteString(fmt.Sprintf("Weak Bullets: %d\n", len(result.WeakBullets)))
	}
	sb.WriteString(fmt.Sprintf("Metric Bullets: %d\n", result.MetricCount))
	if len(result.MissingSections) > 0 {
		sb.WriteString(fmt.Sprintf("Missing Sections: %s\n", strings.Join(result.MissingSections, ", ")))
	}

	p.printBox("ATS Analysis", strings.TrimRight(sb.String(), "\n"))
}

// PrintBatchSummary outputs one line per batch item plus a success count.
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) PrintBatchSummary(items []analysis.BatchItem) {
	succeeded := 0
	for i, item := range items {
		if item.Err != nil {
			fmt.Fprintf(p.out, "Resume %d: FAILED: %v\n", i+1, item.Err)
			continue
		}
		succeeded++
		fmt.Fprintf(p.out, "Resume %d: score %d / 100\n", i+1, item.Result.Score.Total)
	}
	fmt.Fprintf(p.out, "%d of %d analyses succeeded\n", succeeded, len(items))
}

// PrintSuggestions outputs the free-text suggestions block.
func (p *Printer) PrintSuggestions(suggestions string) {
	if strings.TrimSpace(suggestions) == "" {
		return
	}
	p.printBox("Suggestions", suggestions)
}
