package llm

import "fmt"

// ExternalServiceError represents a failed call to the text-generation
// provider: network errors, quota exhaustion, timeouts, or a malformed
// response.
type ExternalServiceError struct {
	Message string
	Cause   error
}

func (e *ExternalServiceError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("text generation failed: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("text generation failed: %s", e.Message)
}

func (e *ExternalServiceError) Unwrap() error {
	return e.Cause
}
