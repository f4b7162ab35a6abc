// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/jonathan/cv-analyzer/internal/types"
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

// PrintAnalysisResult outputs a human-readable summary of an analysis run.
func (p *Printer) PrintAnalysisResult(result *types.CVAnalysisResult) {
	if result == nil {
		return
	}
	p.printPersonalInfo(result)
	p.printWorkExperience(result.WorkExperience)
	p.printEducation(result.Education)
	p.printSkills(result.Skills)
	p.printSuggestions(result.CustomFieldsSuggestions)
}

func (p *Printer) printPersonalInfo(result *types.CVAnalysisResult) {
	var sb strings.Builder

	name := strings.TrimSpace(result.PersonalInfo.FirstName + " " + result.PersonalInfo.LastName)
	if name == "" {
		name = "(not found)"
	}
	sb.WriteString(fmt.Sprintf("Name:   %s\n", name))
	sb.WriteString(fmt.Sprintf("Email:  %s\n", orPlaceholder(result.PersonalInfo.Email)))
	sb.WriteString(fmt.Sprintf("Phone:  %s\n", orPlaceholder(result.PersonalInfo.Phone)))

	if result.Summary != "" {
		sb.WriteString("\n")
		summary := result.Summary
		if len(summary) > 120 {
			summary = summary[:117] + "..."
		}
		sb.WriteString(wrapText(summary, boxWidth-4))
	}

	p.printBox("PERSONAL INFO", strings.TrimSuffix(sb.String(), "\n"))
}

func (p *Printer) printWorkExperience(entries []types.WorkExperience) {
	if len(entries) == 0 {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Found %d positions:\n\n", len(entries)))

	count := min(len(entries), maxItemsToShow)
	for i := 0; i < count; i++ {
		exp := entries[i]
		sb.WriteString(fmt.Sprintf("• %s\n", orPlaceholder(exp.Role)))
		if exp.Company != "" {
			sb.WriteString(fmt.Sprintf("  %s\n", exp.Company))
		}
		end := exp.EndDate
		if exp.CurrentlyWorking {
			end = "present"
		}
		if exp.StartDate != "" || end != "" {
			sb.WriteString(fmt.Sprintf("  %s – %s\n", orPlaceholder(exp.StartDate), orPlaceholder(end)))
		}
		if i < count-1 {
			sb.WriteString("\n")
		}
	}

	if len(entries) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("\n... and %d more positions", len(entries)-maxItemsToShow))
	}

	p.printBox("WORK EXPERIENCE", sb.String())
}

func (p *Printer) printEducation(entries []types.Education) {
	if len(entries) == 0 {
		return
	}

	var sb strings.Builder
	count := min(len(entries), maxItemsToShow)
	for i := 0; i < count; i++ {
		edu := entries[i]
		sb.WriteString(fmt.Sprintf("• %s\n", orPlaceholder(edu.Qualification)))
		if edu.Institution != "" {
			sb.WriteString(fmt.Sprintf("  %s\n", edu.Institution))
		}
		if edu.StartDate != "" || edu.EndDate != "" {
			sb.WriteString(fmt.Sprintf("  %s – %s\n", orPlaceholder(edu.StartDate), orPlaceholder(edu.EndDate)))
		}
		if i < count-1 {
			sb.WriteString("\n")
		}
	}

	if len(entries) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("\n... and %d more entries", len(entries)-maxItemsToShow))
	}

	p.printBox("EDUCATION", sb.String())
}

func (p *Printer) printSkills(skills types.Skills) {
	if len(skills.Technical) == 0 && len(skills.Soft) == 0 {
		return
	}

	var sb strings.Builder
	if len(skills.Technical) > 0 {
		sb.WriteString("Technical:\n")
		sb.WriteString(wrapText("  "+strings.Join(skills.Technical, ", "), boxWidth-4))
		sb.WriteString("\n")
	}
	if len(skills.Soft) > 0 {
		if sb.Len() > 0 {
			sb.WriteString("\n")
		}
		sb.WriteString("Soft:\n")
		sb.WriteString(wrapText("  "+strings.Join(skills.Soft, ", "), boxWidth-4))
		sb.WriteString("\n")
	}

	p.printBox("SKILLS", strings.TrimSuffix(sb.String(), "\n"))
}

func (p *Printer) printSuggestions(suggestions map[string]string) {
	if len(suggestions) == 0 {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Suggestions for %d fields:\n\n", len(suggestions)))

	shown := 0
	for _, name := range sortedKeys(suggestions) {
		if shown >= maxItemsToShow {
			sb.WriteString(fmt.Sprintf("\n... and %d more fields", len(suggestions)-maxItemsToShow))
			break
		}
		value := suggestions[name]
		if len(value) > 40 {
			value = value[:37] + "..."
		}
		if value == "" {
			value = "(none)"
		}
		sb.WriteString(fmt.Sprintf("• %s: %s\n", name, value))
		shown++
	}

	p.printBox("CUSTOM FIELD SUGGESTIONS", strings.TrimSuffix(sb.String(), "\n"))
}

func orPlaceholder(s string) string {
	if s == "" {
		return "?"
	}
	return s
}

func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// wrapText breaks a long line at word boundaries so it fits inside a box.
func wrapText(s string, width int) string {
	words := strings.Fields(s)
	if len(words) == 0 {
		return s
	}
	var sb strings.Builder
	lineLen := 0
	for i, word := range words {
		if lineLen > 0 && lineLen+1+len(word) > width {
			sb.WriteString("\n")
			lineLen = 0
		} else if i > 0 {
			sb.WriteString(" ")
			lineLen++
		}
		sb.WriteString(word)
		lineLen += len(word)
	}
	return sb.String()
}
