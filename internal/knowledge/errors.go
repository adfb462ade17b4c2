package knowledge

import "fmt"

// PersistenceError represents a failure reading or writing the knowledge base file
type PersistenceError struct {
	Op    string // "load" or "save"
	Path  string
	Cause error
}

func (e *PersistenceError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("knowledge base %s failed for %s: %v", e.Op, e.Path, e.Cause)
	}
	return fmt.Sprintf("knowledge base %s failed for %s", e.Op, e.Path)
}

func (e *PersistenceError) Unwrap() error {
	return e.Cause
}
