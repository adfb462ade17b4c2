// Package extract converts PDF, DOCX, TXT and HTML files to plain text.
// Extraction is a pure transformation with no retries: a failure is reported
// as an ExtractionError and the caller decides whether to skip the document.
package extract

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"

	"github.com/ledongthuc/pdf"

	"github.com/mkaneko/skills-chatbot/internal/knowledge"
)

// typeForExt maps a lower-cased file extension to a document type.
var typeForExt = map[string]knowledge.DocumentType{
	".pdf":  knowledge.TypePDF,
	".docx": knowledge.TypeDOCX,
	".txt":  knowledge.TypeTXT,
	".html": knowledge.TypeHTML,
	".htm":  knowledge.TypeHTML,
}

// Supported reports whether the file's extension is one this package can
// extract text from.
func Supported(path string) bool {
	_, ok := typeForExt[strings.ToLower(filepath.Ext(path))]
	return ok
}

// SourceID derives the knowledge base key for a file: the base name without
// its extension. Two files that share a stem collide, and the later ingestion
// wins.
func SourceID(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// FromFile extracts plain text from the file, picking the extractor by
// extension. Unsupported extensions return an ExtractionError.
func FromFile(path string) (string, knowledge.DocumentType, error) {
	ext := strings.ToLower(filepath.Ext(path))
	docType, ok := typeForExt[ext]
	if !ok {
		return "", "", &ExtractionError{Path: path, Format: strings.TrimPrefix(ext, ".")}
	}

	var text string
	var err error
	switch docType {
	case knowledge.TypePDF:
		text, err = PDF(path)
	case knowledge.TypeDOCX:
		text, err = DOCX(path)
	case knowledge.TypeHTML:
		text, err = HTML(path)
	default:
		text, err = Text(path)
	}
	if err != nil {
		return "", "", err
	}
	return text, docType, nil
}

// Text reads a plain text file.
func Text(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", &ExtractionError{Path: path, Format: "txt", Cause: err}
	}
	return string(data), nil
}

// PDF extracts the plain text of every page in a PDF file.
func PDF(path string) (string, error) {
	f, reader, err := pdf.Open(path)
	if err != nil {
		return "", &ExtractionError{Path: path, Format: "pdf", Cause: err}
	}
	defer f.Close()

	plain, err := reader.GetPlainText()
	if err != nil {
		return "", &ExtractionError{Path: path, Format: "pdf", Cause: err}
	}

	var buf bytes.Buffer
	if _, err := buf.ReadFrom(plain); err != nil {
		return "", &ExtractionError{Path: path, Format: "pdf", Cause: err}
	}
	return buf.String(), nil
}
