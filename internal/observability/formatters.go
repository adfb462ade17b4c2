// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/mkaneko/skills-chatbot/internal/chatbot"
	"github.com/mkaneko/skills-chatbot/internal/ingest"
	"github.com/mkaneko/skills-chatbot/internal/knowledge"
	"github.com/mkaneko/skills-chatbot/internal/search"
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

// PrintIngestSummary outputs the outcome of a batch ingestion run.
func (p *Printer) PrintIngestSummary(summary *ingest.Summary) {
	if summary == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Documents ingested: %d\n", len(summary.Sources)))

	count := min(len(summary.Sources), maxItemsToShow)
	for i := 0; i < count; i++ {
		sb.WriteString(fmt.Sprintf("  • %s\n", summary.Sources[i]))
	}
	if len(summary.Sources) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(summary.Sources)-maxItemsToShow))
	}

	if len(summary.Failed) > 0 {
		sb.WriteString(fmt.Sprintf("\nSkipped after errors: %d\n", len(summary.Failed)))
		for _, path := range summary.Failed {
			sb.WriteString(fmt.Sprintf("  • %s\n", path))
		}
	}

	p.printBox("INGESTION SUMMARY", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintSearchResults outputs ranked search hits with scores and skills.
func (p *Printer) PrintSearchResults(results []search.Result) {
	if len(results) == 0 {
		return
	}

	var sb strings.Builder
	for i, res := range results {
		sb.WriteString(fmt.Sprintf("#%d  %s\n", i+1, res.Source))
		sb.WriteString(fmt.Sprintf("    Relevance: %d\n", res.Relevance))
		if res.Record != nil && len(res.Record.Skills) > 0 {
			skills := strings.Join(res.Record.Skills, ", ")
			if len(skills) > 40 {
				skills = skills[:37] + "..."
			}
			sb.WriteString(fmt.Sprintf("    Skills: %s\n", skills))
		}
		if i < len(results)-1 {
			sb.WriteString("\n")
		}
	}

	p.printBox("SEARCH RESULTS", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintKnowledgeStats outputs aggregate counts over the knowledge base.
func (p *Printer) PrintKnowledgeStats(stats chatbot.Stats) {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Total documents: %d\n", stats.TotalDocuments))

	if len(stats.DocumentTypes) > 0 {
		sb.WriteString("\nBy type:\n")
		for _, docType := range []knowledge.DocumentType{
			knowledge.TypePDF, knowledge.TypeDOCX, knowledge.TypeTXT, knowledge.TypeHTML,
		} {
			if n, ok := stats.DocumentTypes[string(docType)]; ok {
				sb.WriteString(fmt.Sprintf("  %-5s %d\n", docType, n))
			}
		}
	}

	if len(stats.SkillsFound) > 0 {
		sb.WriteString(fmt.Sprintf("\nSkills found: %d\n", len(stats.SkillsFound)))
		count := min(len(stats.SkillsFound), maxItemsToShow)
		sb.WriteString("  " + strings.Join(stats.SkillsFound[:count], ", ") + "\n")
		if len(stats.SkillsFound) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(stats.SkillsFound)-maxItemsToShow))
		}
	}

	p.printBox("KNOWLEDGE BASE", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintRecord outputs one stored knowledge record.
func (p *Printer) PrintRecord(rec *knowledge.Record) {
	if rec == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Source:  %s\n", rec.Source))
	sb.WriteString(fmt.Sprintf("Type:    %s\n", rec.Type))
	if len(rec.Skills) > 0 {
		sb.WriteString(fmt.Sprintf("Skills:  %s\n", strings.Join(rec.Skills, ", ")))
	}
	if len(rec.Technologies) > 0 {
		sb.WriteString(fmt.Sprintf("Tech:    %s\n", strings.Join(rec.Technologies, ", ")))
	}
	if rec.Summary != "" {
		sb.WriteString(fmt.Sprintf("\n%s\n", rec.Summary))
	}

	p.printBox("INGESTED DOCUMENT", strings.TrimSuffix(sb.String(), "\n"))
}
