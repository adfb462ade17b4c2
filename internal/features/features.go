// Package features derives structured knowledge (skills, technologies,
// project mentions, insights, summary) from raw document text using fixed
// keyword lists. Extraction is pure and deterministic.
package features

import "strings"

// Caps on extracted collections
const (
	maxProjectMentions = 5
	maxInsights        = 3
	summarySentences   = 3
	minSummarySentence = 10 // trimmed length a sentence must exceed to count toward the summary
)

// Config holds the keyword lists used for matching. Lists are loaded once and
// treated as immutable for the process lifetime; tests can substitute their
// own sets.
type Config struct {
	SkillKeywords   []string
	TechKeywords    []string
	ProjectKeywords []string
	InsightKeywords []string
}

// DefaultConfig returns the built-in keyword lists.
func DefaultConfig() Config {
	return Config{
		SkillKeywords: []string{
			"python", "javascript", "java", "c++", "c#", "react", "node.js",
			"machine learning", "deep learning", "computer vision", "robotics",
			"ros", "opencv", "tensorflow", "pytorch", "docker", "kubernetes",
			"aws", "azure", "gcp", "git", "agile", "scrum",
		},
		TechKeywords: []string{
			"api", "database", "sql", "nosql", "mongodb", "postgresql",
			"html", "css", "bootstrap", "tailwind", "vue", "angular",
			"express", "django", "flask", "spring", "laravel",
		},
		ProjectKeywords: []string{
			"project", "developed", "built", "created", "implemented", "designed",
		},
		InsightKeywords: []string{
			"learned", "discovered", "realized", "found", "concluded", "observed",
		},
	}
}

// Features is the extracted view of one document.
type Features struct {
	Skills          []string
	Technologies    []string
	ProjectMentions []string
	Insights        []string
	Summary         string
}

// Extractor matches text against a fixed keyword configuration.
type Extractor struct {
	cfg Config
}

// NewExtractor creates an extractor with the given keyword configuration.
func NewExtractor(cfg Config) *Extractor {
	return &Extractor{cfg: cfg}
}

// Extract derives all features from raw text. Empty input yields empty
// collections and an empty summary.
func (e *Extractor) Extract(text string) Features {
	lower := strings.ToLower(text)
	sentences := SplitSentences(text)

	return Features{
		Skills:          matchKeywords(lower, e.cfg.SkillKeywords),
		Technologies:    matchKeywords(lower, e.cfg.TechKeywords),
		ProjectMentions: sentencesContaining(sentences, e.cfg.ProjectKeywords, maxProjectMentions),
		Insights:        sentencesContaining(sentences, e.cfg.InsightKeywords, maxInsights),
		Summary:         summarize(sentences),
	}
}

// matchKeywords returns every keyword contained anywhere in the lower-cased
// text, in keyword-list order. Matching is substring containment with no word
// boundary check, so "java" also matches inside "javascript"; that looseness
// is deliberate and covered by tests.
func matchKeywords(lowerText string, keywords []string) []string {
	found := make([]string, 0)
	for _, keyword := range keywords {
		if strings.Contains(lowerText, keyword) {
			found = append(found, keyword)
		}
	}
	return found
}

// sentencesContaining returns up to limit sentences that contain at least one
// of the keywords (case-insensitive), in original sentence order.
func sentencesContaining(sentences []string, keywords []string, limit int) []string {
	matched := make([]string, 0, limit)
	for _, sentence := range sentences {
		if len(matched) >= limit {
			break
		}
		lower := strings.ToLower(sentence)
		for _, keyword := range keywords {
			if strings.Contains(lower, keyword) {
				matched = append(matched, sentence)
				break
			}
		}
	}
	return matched
}

// summarize joins the first few non-trivial sentences with ". " and a
// trailing period.
func summarize(sentences []string) string {
	selected := make([]string, 0, summarySentences)
	for _, sentence := range sentences {
		if len(selected) >= summarySentences {
			break
		}
		if len(sentence) > minSummarySentence {
			selected = append(selected, sentence)
		}
	}
	if len(selected) == 0 {
		return ""
	}
	return strings.Join(selected, ". ") + "."
}
