package chatbot

import "sort"

// Stats summarizes the knowledge base contents.
type Stats struct {
	TotalDocuments    int            `json:"totalDocuments"`
	DocumentTypes     map[string]int `json:"documentTypes"`
	SkillsFound       []string       `json:"skillsFound"`
	TechnologiesFound []string       `json:"technologiesFound"`
}

// KnowledgeStats aggregates document counts per type and the union of skills
// and technologies found across every record. The unions are sorted for
// stable output.
func (s *Service) KnowledgeStats() Stats {
	stats := Stats{
		DocumentTypes: make(map[string]int),
	}

	skillSet := make(map[string]bool)
	techSet := make(map[string]bool)

	for _, rec := range s.store.All() {
		stats.TotalDocuments++
		stats.DocumentTypes[string(rec.Type)]++
		for _, skill := range rec.Skills {
			skillSet[skill] = true
		}
		for _, tech := range rec.Technologies {
			techSet[tech] = true
		}
	}

	stats.SkillsFound = sortedKeys(skillSet)
	stats.TechnologiesFound = sortedKeys(techSet)
	return stats
}

func sortedKeys(set map[string]bool) []string {
	keys := make([]string, 0, len(set))
	for key := range set {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}
