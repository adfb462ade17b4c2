// Package server provides the HTTP REST API for the skills chatbot.
package server

import (
	"errors"
	"net/http"

	"github.com/mkaneko/skills-chatbot/internal/chatbot"
	"github.com/mkaneko/skills-chatbot/internal/extract"
	"github.com/mkaneko/skills-chatbot/internal/knowledge"
	"github.com/mkaneko/skills-chatbot/internal/llm"
	"github.com/mkaneko/skills-chatbot/internal/schemas"
	"github.com/mkaneko/skills-chatbot/internal/search"
)

// ErrInvalidCredentials indicates a failed admin login attempt.
type ErrInvalidCredentials struct{}

func (e *ErrInvalidCredentials) Error() string {
	return "invalid password"
}

// HTTPStatus returns the appropriate HTTP status code for an error.
// Errors are unwrapped, so wrapped domain errors map correctly.
func HTTPStatus(err error) int {
	var (
		searchErr   *search.ValidationError
		schemaErr   *schemas.ValidationError
		extractErr  *extract.ExtractionError
		conflictErr *chatbot.ConflictError
		llmErr      *llm.ExternalServiceError
		persistErr  *knowledge.PersistenceError
		credsErr    *ErrInvalidCredentials
	)

	switch {
	case errors.As(err, &searchErr), errors.As(err, &schemaErr), errors.As(err, &extractErr):
		return http.StatusBadRequest
	case errors.As(err, &credsErr):
		return http.StatusUnauthorized
	case errors.As(err, &conflictErr):
		return http.StatusConflict
	case errors.As(err, &llmErr):
		return http.StatusBadGateway
	case errors.As(err, &persistErr):
		return http.StatusInternalServerError
	default:
		return http.StatusInternalServerError
	}
}
