// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jmateo/resume-optimizer/internal/types"
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

	lines := strings.Split(content, "\n")
	for _, line := range lines {
		// Truncate long lines
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintResume outputs a human-readable summary of a parsed resume.
func (p *Printer) PrintResume(doc *types.StructuredResume) {
	if doc == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Name:   %s\n", doc.Header.Name))
	if doc.Header.Title != "" {
		sb.WriteString(fmt.Sprintf("Title:  %s\n", doc.Header.Title))
	}
	if doc.Header.Email != "" {
		sb.WriteString(fmt.Sprintf("Email:  %s\n", doc.Header.Email))
	}
	sb.WriteString("\n")

	for _, section := range doc.Sections {
		sb.WriteString(fmt.Sprintf("%s (%s)\n", section.Title, section.Type))
		switch section.Type {
		case types.SectionExperience:
			for i, entry := range section.Experience {
				if i >= maxItemsToShow {
					sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(section.Experience)-maxItemsToShow))
					break
				}
				sb.WriteString(fmt.Sprintf("  %s, %s\n", entry.Title, entry.Company))
			}
		case types.SectionEducation:
			for _, entry := range section.Education {
				sb.WriteString(fmt.Sprintf("  %s, %s\n", entry.Degree, entry.Institution))
			}
		default:
			sb.WriteString(fmt.Sprintf("  %d item(s)\n", sectionItemCount(section)))
		}
	}

	p.printBox("Parsed Resume", strings.TrimRight(sb.String(), "\n"))
}

// PrintComparison outputs a human-readable summary of a content comparison.
func (p *Printer) PrintComparison(cmp *types.ContentComparison) {
	if cmp == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Similarity:  %.0f%%\n", cmp.Similarity*100))
	sb.WriteString(fmt.Sprintf("Added:       %d line(s)\n", len(cmp.AddedSections)))
	sb.WriteString(fmt.Sprintf("Modified:    %d line(s)\n", len(cmp.ModifiedSections)))
	sb.WriteString(fmt.Sprintf("Removed:     %d line(s)\n", len(cmp.RemovedSections)))

	if len(cmp.ImprovementAreas) > 0 {
		sb.WriteString(fmt.Sprintf("Improved:    %s\n", strings.Join(cmp.ImprovementAreas, ", ")))
	}
	if cmp.HasSignificantChanges() {
		sb.WriteString("Significant content changes detected\n")
	}

	p.printBox("Content Comparison", strings.TrimRight(sb.String(), "\n"))
}

func sectionItemCount(section types.Section) int {
	if section.Summary != "" {
		return 1
	}
	return len(section.Items)
}
