package extract

import (
	"archive/zip"
	"encoding/xml"
	"fmt"
	"io"
	"strings"
)

// documentXML mirrors the parts of word/document.xml we read.
type documentXML struct {
	Body struct {
		Paragraphs []paragraph `xml:"p"`
	} `xml:"body"`
}

type paragraph struct {
	Runs []run `xml:"r"`
}

type run struct {
	Text []textElement `xml:"t"`
}

type textElement struct {
	Content string `xml:",chardata"`
}

// DOCX extracts the paragraph text from a Word document. DOCX files are ZIP
// archives; the text lives in word/document.xml.
func DOCX(path string) (string, error) {
	archive, err := zip.OpenReader(path)
	if err != nil {
		return "", &ExtractionError{Path: path, Format: "docx", Cause: err}
	}
	defer archive.Close()

	for _, file := range archive.File {
		if file.Name != "word/document.xml" {
			continue
		}

		rc, err := file.Open()
		if err != nil {
			return "", &ExtractionError{Path: path, Format: "docx", Cause: err}
		}
		content, err := io.ReadAll(rc)
		rc.Close()
		if err != nil {
			return "", &ExtractionError{Path: path, Format: "docx", Cause: err}
		}

		text, err := parseDocumentXML(content)
		if err != nil {
			return "", &ExtractionError{Path: path, Format: "docx", Cause: err}
		}
		return text, nil
	}

	return "", &ExtractionError{Path: path, Format: "docx", Cause: fmt.Errorf("word/document.xml not found in archive")}
}

// parseDocumentXML concatenates run text per paragraph, one paragraph per line.
func parseDocumentXML(content []byte) (string, error) {
	var doc documentXML
	if err := xml.Unmarshal(content, &doc); err != nil {
		return "", err
	}

	var sb strings.Builder
	for i, para := range doc.Body.Paragraphs {
		if i > 0 {
			sb.WriteString("\n")
		}
		for _, r := range para.Runs {
			for _, text := range r.Text {
				sb.WriteString(text.Content)
			}
		}
	}
	return strings.TrimSpace(sb.String()), nil
}
