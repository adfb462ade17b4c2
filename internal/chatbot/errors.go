package chatbot

import "fmt"

// ConflictError indicates a training start was rejected because a job is
// already running.
type ConflictError struct {
	JobID string
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("training already in progress: %s", e.JobID)
}
