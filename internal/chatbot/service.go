// Package chatbot orchestrates a chat request: knowledge search, prompt
// assembly, skill profile lookup, and the call to the text-generation
// collaborator.
package chatbot

import (
	"context"
	"fmt"
	"log"
	"strings"
	"sync"
	"time"

	"github.com/mkaneko/skills-chatbot/internal/knowledge"
	"github.com/mkaneko/skills-chatbot/internal/llm"
	"github.com/mkaneko/skills-chatbot/internal/profile"
	"github.com/mkaneko/skills-chatbot/internal/prompt"
	"github.com/mkaneko/skills-chatbot/internal/search"
)

// apologyMessage is returned whenever the external collaborator fails. The
// raw error is logged, never surfaced to the end user.
const apologyMessage = "I'm having trouble processing your request right now. Please try again."

// defaultTrainingStepDelay paces the simulated training steps.
const defaultTrainingStepDelay = 2 * time.Second

// Config wires the orchestrator's collaborators.
type Config struct {
	Store        *knowledge.Store
	Engine       *search.Engine
	Client       llm.Client
	Profiles     *profile.Set
	ProfilesPath string
	// TrainingStepDelay overrides the pacing of training steps; zero means
	// the default. Tests set this to keep runs fast.
	TrainingStepDelay time.Duration
}

// Service answers chat requests against the knowledge base and skill
// profiles.
type Service struct {
	store  *knowledge.Store
	engine *search.Engine
	client llm.Client

	profilesMu   sync.RWMutex
	profiles     *profile.Set
	profilesPath string

	trainingMu sync.Mutex
	training   TrainingStatus
	stepDelay  time.Duration
}

// NewService creates the orchestrator.
func NewService(cfg Config) *Service {
	delay := cfg.TrainingStepDelay
	if delay == 0 {
		delay = defaultTrainingStepDelay
	}
	profiles := cfg.Profiles
	if profiles == nil {
		profiles = profile.Defaults()
	}
	return &Service{
		store:        cfg.Store,
		engine:       cfg.Engine,
		client:       cfg.Client,
		profiles:     profiles,
		profilesPath: cfg.ProfilesPath,
		training:     TrainingStatus{State: TrainingIdle},
		stepDelay:    delay,
	}
}

// Respond answers a single chat request. Validation failures return a
// *search.ValidationError; external collaborator failures are absorbed and
// surface as a fixed apology, never as an error.
func (s *Service) Respond(ctx context.Context, message, skillName string, history []prompt.Message) (string, error) {
	if strings.TrimSpace(message) == "" {
		return "", &search.ValidationError{Field: "message", Message: "message must not be empty"}
	}
	if strings.TrimSpace(skillName) == "" {
		return "", &search.ValidationError{Field: "skill", Message: "skill name must not be empty"}
	}

	results, err := s.engine.Search(message)
	if err != nil {
		return "", err
	}
	contextBlock := prompt.BuildContext(results)

	// Copy the profile while holding the lock: a completing training job
	// mutates the set's entries in place under the write lock. Merge swaps
	// whole slices, so a shallow copy is enough.
	s.profilesMu.RLock()
	var skill *profile.SkillProfile
	if found := s.profiles.Find(skillName); found != nil {
		snapshot := *found
		skill = &snapshot
	}
	s.profilesMu.RUnlock()

	// Known-empty case: no curated profile and no knowledge hits. Deflect
	// without spending a generation call.
	if skill == nil && prompt.SignalsNoInformation(contextBlock) {
		return deflectionMessage(skillName), nil
	}

	systemPrompt := prompt.BuildSystemPrompt(skill, contextBlock)
	fullPrompt := prompt.Assemble(systemPrompt, history, message)

	text, err := s.client.GenerateContent(ctx, fullPrompt)
	if err != nil {
		log.Printf("chat generation failed: %v", err)
		return apologyMessage, nil
	}
	return text, nil
}

// deflectionMessage names the skill the chatbot knows nothing about.
func deflectionMessage(skillName string) string {
	return fmt.Sprintf("I don't have specific information about %s in my knowledge base. "+
		"Could you ask about a skill I'm familiar with, or would you like me to search "+
		"through my documentation for related information?", skillName)
}

// SkillSummary is the projection returned by the skills listing endpoint.
type SkillSummary struct {
	Name  string        `json:"name"`
	Level profile.Level `json:"level"`
	Years int           `json:"years"`
}

// AvailableSkills lists the configured skill profiles.
func (s *Service) AvailableSkills() []SkillSummary {
	s.profilesMu.RLock()
	defer s.profilesMu.RUnlock()

	out := make([]SkillSummary, 0, len(s.profiles.Skills))
	for _, skill := range s.profiles.Skills {
		out = append(out, SkillSummary{
			Name:  skill.Name,
			Level: skill.Level,
			Years: skill.Years,
		})
	}
	return out
}
