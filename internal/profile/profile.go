// Package profile provides curated skill profiles: static reference data
// describing the site owner's named skills, loaded from JSON configuration.
package profile

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/mkaneko/skills-chatbot/internal/schemas"
)

// Level is the proficiency level of a skill.
type Level string

// Skill levels
const (
	LevelBeginner     Level = "Beginner"
	LevelIntermediate Level = "Intermediate"
	LevelAdvanced     Level = "Advanced"
)

// SkillProfile describes one named skill. It is reference data: the chatbot
// reads it but never derives it from ingested documents.
type SkillProfile struct {
	Name       string   `json:"name"`
	Level      Level    `json:"level"`
	Years      int      `json:"years"`
	Projects   []string `json:"projects,omitempty"`
	Experience string   `json:"experience,omitempty"`
	Keywords   []string `json:"keywords,omitempty"`
}

// Set is the full skill profile configuration.
type Set struct {
	Skills []SkillProfile `json:"skills"`
}

// Find returns the profile whose name matches case-insensitively, or nil.
func (s *Set) Find(name string) *SkillProfile {
	for i := range s.Skills {
		if strings.EqualFold(s.Skills[i].Name, name) {
			return &s.Skills[i]
		}
	}
	return nil
}

// Merge folds incoming profiles into the set, matching case-insensitively by
// name. Matching entries are updated field-by-field (zero fields in the
// incoming profile keep the existing value); unmatched entries are appended.
func (s *Set) Merge(incoming []SkillProfile) {
	for _, in := range incoming {
		existing := s.Find(in.Name)
		if existing == nil {
			s.Skills = append(s.Skills, in)
			continue
		}
		if in.Level != "" {
			existing.Level = in.Level
		}
		if in.Years != 0 {
			existing.Years = in.Years
		}
		if len(in.Projects) > 0 {
			existing.Projects = in.Projects
		}
		if in.Experience != "" {
			existing.Experience = in.Experience
		}
		if len(in.Keywords) > 0 {
			existing.Keywords = in.Keywords
		}
	}
}

// Load reads a skill profile set from a JSON file. A missing, unreadable or
// schema-invalid file falls back to the built-in defaults; the returned error
// describes why the fallback was taken (callers log it as a warning).
func Load(path string) (*Set, error) {
	set, err := loadFromFile(path)
	if err != nil {
		return Defaults(), err
	}
	return set, nil
}

// loadFromFile reads and schema-validates a profile set without any fallback.
func loadFromFile(path string) (*Set, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read skills data %s: %w", path, err)
	}

	if err := schemas.ValidateSkillsData(data); err != nil {
		return nil, fmt.Errorf("invalid skills data %s: %w", path, err)
	}

	var set Set
	if err := json.Unmarshal(data, &set); err != nil {
		return nil, fmt.Errorf("failed to parse skills data %s: %w", path, err)
	}
	return &set, nil
}

// Save writes the profile set to a JSON file with two-space indentation.
func (s *Set) Save(path string) error {
	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal skills data: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create skills data directory: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write skills data %s: %w", path, err)
	}
	return nil
}

// Defaults returns the built-in skill profile set used when no configuration
// file is available.
func Defaults() *Set {
	return &Set{
		Skills: []SkillProfile{
			{
				Name:  "Python",
				Level: LevelAdvanced,
				Years: 4,
				Projects: []string{
					"Autonomous Robot Navigation",
					"Computer Vision Pipeline",
					"Machine Learning Models",
				},
				Experience: "Extensive experience in robotics, computer vision, and ML applications",
				Keywords:   []string{"robotics", "computer vision", "machine learning", "automation"},
			},
			{
				Name:  "C++",
				Level: LevelIntermediate,
				Years: 2,
				Projects: []string{
					"Real-time Control Systems",
					"Embedded Systems Programming",
				},
				Experience: "Used for performance-critical applications and embedded systems",
				Keywords:   []string{"embedded systems", "real-time", "performance", "control systems"},
			},
			{
				Name:  "JavaScript",
				Level: LevelAdvanced,
				Years: 3,
				Projects: []string{
					"Web Applications",
					"React Development",
					"API Development",
				},
				Experience: "Full-stack development with modern frameworks and APIs",
				Keywords:   []string{"web development", "react", "node.js", "full-stack"},
			},
		},
	}
}
