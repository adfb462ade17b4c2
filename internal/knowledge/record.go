// Package knowledge provides the knowledge base: structured records extracted
// from ingested documents, held in memory and persisted to a JSON file.
package knowledge

import "time"

// DocumentType identifies the format a record was extracted from.
type DocumentType string

// Supported document types
const (
	TypePDF  DocumentType = "pdf"
	TypeDOCX DocumentType = "docx"
	TypeTXT  DocumentType = "txt"
	TypeHTML DocumentType = "html"
)

// Record is the structured result of extracting features from one document.
// The JSON field names define the on-disk knowledge base format and must not
// change without a migration.
type Record struct {
	Source       string       `json:"source"`
	Type         DocumentType `json:"type"`
	Content      string       `json:"content"`
	Skills       []string     `json:"skills"`
	Projects     []string     `json:"projects"`
	Technologies []string     `json:"technologies"`
	Insights     []string     `json:"insights"`
	Summary      string       `json:"summary"`
	Timestamp    time.Time    `json:"timestamp"`
}
