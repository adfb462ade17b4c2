package server

import (
	"encoding/json"
	"net/http"

	"github.com/mkaneko/skills-chatbot/internal/profile"
	"github.com/mkaneko/skills-chatbot/internal/prompt"
)

type chatSkill struct {
	Name string `json:"name"`
}

type chatRequest struct {
	Message             string           `json:"message" validate:"required"`
	Skill               chatSkill        `json:"skill"`
	ConversationHistory []prompt.Message `json:"conversationHistory"`
}

type chatResponse struct {
	Text string `json:"text"`
}

// handleChat answers a visitor question, optionally scoped to one skill.
func (s *Server) handleChat(w http.ResponseWriter, r *http.Request) {
	var req chatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := s.validate.Struct(req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Message is required")
		return
	}

	text, err := s.svc.Respond(r.Context(), req.Message, req.Skill.Name, req.ConversationHistory)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, chatResponse{Text: text})
}

// handleSkills lists the configured skill profiles.
func (s *Server) handleSkills(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, map[string]any{
		"skills": s.svc.AvailableSkills(),
	})
}

// handleKnowledgeStats reports aggregate counts over the knowledge base.
func (s *Server) handleKnowledgeStats(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, s.svc.KnowledgeStats())
}

type searchRequest struct {
	Query string `json:"query" validate:"required"`
}

// handleKnowledgeSearch runs a ranked query over the knowledge base.
func (s *Server) handleKnowledgeSearch(w http.ResponseWriter, r *http.Request) {
	var req searchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	results, err := s.engine.Search(req.Query)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]any{
		"query":   req.Query,
		"count":   len(results),
		"results": results,
	})
}

// handleTrainingStatus reports the state of the background training job.
func (s *Server) handleTrainingStatus(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, s.svc.TrainingStatusSnapshot())
}

type trainingStartRequest struct {
	Skills []profile.SkillProfile `json:"skills"`
}

// handleTrainingStart launches the simulated training job. The optional
// skills payload is folded into the stored profiles when the job completes.
func (s *Server) handleTrainingStart(w http.ResponseWriter, r *http.Request) {
	var req trainingStartRequest
	if r.ContentLength > 0 {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			s.errorResponse(w, http.StatusBadRequest, "Invalid request body")
			return
		}
	}

	jobID, err := s.svc.StartTraining(req.Skills)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	s.jsonResponse(w, http.StatusAccepted, map[string]string{
		"jobId": jobID,
		"state": "running",
	})
}
