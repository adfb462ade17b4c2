// Package prompt assembles the natural-language context and system prompt
// handed to the text-generation collaborator. Everything here is pure string
// construction.
package prompt

import (
	"fmt"
	"strings"

	"github.com/mkaneko/skills-chatbot/internal/search"
)

// NoInformationContext is the context block produced when a query matches
// nothing in the knowledge base.
const NoInformationContext = "I don't have specific information about that topic in my knowledge base."

// noInformationSignal is the phrase the orchestrator checks to detect an
// empty context without reparsing it.
const noInformationSignal = "don't have specific information"

// Caps on how much of each record the context quotes
const (
	maxContextProjects = 2
	maxContextInsights = 1
)

// SignalsNoInformation reports whether a context block states that the
// knowledge base had nothing relevant.
func SignalsNoInformation(contextBlock string) bool {
	return strings.Contains(contextBlock, noInformationSignal)
}

// BuildContext turns ranked search results into the grounding context block.
func BuildContext(results []search.Result) string {
	if len(results) == 0 {
		return NoInformationContext
	}

	var sb strings.Builder
	sb.WriteString("Based on my experience and documentation:\n\n")

	for _, result := range results {
		rec := result.Record
		sb.WriteString(fmt.Sprintf("From %s:\n", rec.Source))
		sb.WriteString(fmt.Sprintf("- Summary: %s\n", rec.Summary))

		if len(rec.Skills) > 0 {
			sb.WriteString(fmt.Sprintf("- Skills: %s\n", strings.Join(rec.Skills, ", ")))
		}
		if len(rec.Projects) > 0 {
			projects := rec.Projects
			if len(projects) > maxContextProjects {
				projects = projects[:maxContextProjects]
			}
			sb.WriteString(fmt.Sprintf("- Projects: %s\n", strings.Join(projects, "; ")))
		}
		if len(rec.Insights) > 0 {
			sb.WriteString(fmt.Sprintf("- Insights: %s\n", rec.Insights[0]))
		}

		sb.WriteString("\n")
	}

	return sb.String()
}
