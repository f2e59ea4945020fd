// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/resume-screener/internal/types"
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

// PrintParsedResume outputs a human-readable summary of a parsed resume
func (p *Printer) PrintParsedResume(resume *types.ParsedResume) {
	if resume == nil {
		return
	}

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Name:     %s\n", valueOrDash(resume.Name)))
	sb.WriteString(fmt.Sprintf("Email:    %s\n", valueOrDash(resume.Email)))
	sb.WriteString(fmt.Sprintf("Phone:    %s\n", valueOrDash(resume.Phone)))
	sb.WriteString(fmt.Sprintf("Location: %s\n", valueOrDash(resume.Location)))
	sb.WriteString("\n")

	sb.WriteString(fmt.Sprintf("Skills (%d):\n", len(resume.Skills)))
	for i, skill := range resume.Skills {
		if i >= maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(resume.Skills)-maxItemsToShow))
			break
		}
		sb.WriteString(fmt.Sprintf("  - %s\n", skill))
	}

	sb.WriteString(fmt.Sprintf("\nExperience (%d):\n", len(resume.Experience)))
	for i, exp := range resume.Experience {
		if i >= maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(resume.Experience)-maxItemsToShow))
			break
		}
		sb.WriteString(fmt.Sprintf("  - %s @ %s (%s)\n", exp.JobTitle, exp.Company, exp.Duration))
	}

	sb.WriteString(fmt.Sprintf("\nEducation: %d entries, Projects: %d entries",
		len(resume.Education), len(resume.Projects)))

	p.printBox("Parsed Resume", sb.String())
}

// PrintMatchResults outputs a ranked result list
func (p *Printer) PrintMatchResults(results []types.MatchResult) {
	var sb strings.Builder

	if len(results) == 0 {
		sb.WriteString("No candidates cleared the match threshold.")
	}
	for i, result := range results {
		sb.WriteString(fmt.Sprintf("%d. %s  %d%%  (%d/%d skills)\n",
			i+1, result.Name, result.MatchPercentage,
			result.MatchedCount, result.TotalRequired))
		if len(result.MatchedSkills) > 0 {
			sb.WriteString(fmt.Sprintf("   matched: %s\n", strings.Join(result.MatchedSkills, ", ")))
		}
		if len(result.MissingSkills) > 0 {
			sb.WriteString(fmt.Sprintf("   missing: %s\n", strings.Join(result.MissingSkills, ", ")))
		}
	}

	p.printBox(fmt.Sprintf("Ranked Candidates (%d)", len(results)), strings.TrimRight(sb.String(), "\n"))
}

func valueOrDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
