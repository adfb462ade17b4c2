// Package search ranks knowledge records against free-text queries.
package search

import (
	"sort"
	"strings"

	"github.com/mkaneko/skills-chatbot/internal/knowledge"
)

// Relevance weights. The query is matched case-insensitively as a single
// substring; weights are additive per record.
const (
	contentWeight    = 3
	skillWeight      = 2
	projectWeight    = 2
	technologyWeight = 1
)

// maxResults caps how many records a search returns.
const maxResults = 5

// Result is one ranked hit, produced per query and never persisted.
// The JSON projection matches the search API response shape.
type Result struct {
	Source    string            `json:"source"`
	Relevance int               `json:"relevance"`
	Record    *knowledge.Record `json:"knowledge"`
}

// Engine scores stored records against queries.
type Engine struct {
	store *knowledge.Store
}

// NewEngine creates a search engine over the given store.
func NewEngine(store *knowledge.Store) *Engine {
	return &Engine{store: store}
}

// Search returns up to five records ranked by non-increasing relevance.
// Records scoring zero are excluded; ties keep the store's insertion order.
// Empty or all-whitespace queries are rejected: an empty substring would
// match every record's content and score the whole store at three.
func (e *Engine) Search(query string) ([]Result, error) {
	if strings.TrimSpace(query) == "" {
		return nil, &ValidationError{Field: "query", Message: "query must not be empty"}
	}

	lowerQuery := strings.ToLower(query)

	results := make([]Result, 0)
	for _, rec := range e.store.All() {
		relevance := score(rec, lowerQuery)
		if relevance > 0 {
			results = append(results, Result{
				Source:    rec.Source,
				Relevance: relevance,
				Record:    rec,
			})
		}
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Relevance > results[j].Relevance
	})

	if len(results) > maxResults {
		results = results[:maxResults]
	}
	return results, nil
}

// score computes the additive relevance of one record for a lower-cased query.
func score(rec *knowledge.Record, lowerQuery string) int {
	relevance := 0

	if strings.Contains(strings.ToLower(rec.Content), lowerQuery) {
		relevance += contentWeight
	}
	if anyContains(rec.Skills, lowerQuery) {
		relevance += skillWeight
	}
	if anyContains(rec.Projects, lowerQuery) {
		relevance += projectWeight
	}
	if anyContains(rec.Technologies, lowerQuery) {
		relevance += technologyWeight
	}

	return relevance
}

// anyContains reports whether any entry contains the lower-cased query as a
// substring.
func anyContains(entries []string, lowerQuery string) bool {
	for _, entry := range entries {
		if strings.Contains(strings.ToLower(entry), lowerQuery) {
			return true
		}
	}
	return false
}
