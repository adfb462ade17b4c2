package extract

import "fmt"

// ExtractionError represents a failure converting a document to plain text:
// an unsupported type, a corrupt file, or an unreadable path.
type ExtractionError struct {
	Path   string
	Format string
	Cause  error
}

func (e *ExtractionError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("failed to extract %s content from %s: %v", e.Format, e.Path, e.Cause)
	}
	return fmt.Sprintf("failed to extract %s content from %s", e.Format, e.Path)
}

func (e *ExtractionError) Unwrap() error {
	return e.Cause
}
