package server

import (
	"io"
	"net/http"
	"os"
	"path/filepath"

	"github.com/mkaneko/skills-chatbot/internal/extract"
)

// maxUploadBytes caps the in-memory portion of a multipart upload.
const maxUploadBytes = 32 << 20

type uploadResponse struct {
	Success  bool   `json:"success"`
	SourceID string `json:"sourceId"`
	Category string `json:"category"`
}

// defaultCategory labels uploads that carry no category field.
const defaultCategory = "general"

// handleUpload accepts a document plus an optional category label, stores it
// under the category's subdirectory and ingests it into the knowledge base.
// Re-uploading a file with the same name replaces the earlier record.
func (s *Server) handleUpload(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid multipart form")
		return
	}

	file, header, err := r.FormFile("document")
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Missing document field")
		return
	}
	defer file.Close()

	category := r.FormValue("category")
	if category == "" {
		category = defaultCategory
	}
	// Strip any client-supplied directory components.
	category = filepath.Base(filepath.Clean(category))
	if category == "." || category == ".." || category == string(filepath.Separator) {
		category = defaultCategory
	}
	name := filepath.Base(filepath.Clean(header.Filename))
	if name == "." || name == string(filepath.Separator) {
		s.errorResponse(w, http.StatusBadRequest, "Invalid file name")
		return
	}
	if !extract.Supported(name) {
		s.errorResponse(w, http.StatusBadRequest, "Unsupported document type")
		return
	}

	if err := os.MkdirAll(filepath.Join(s.uploadDir, category), 0755); err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Failed to prepare upload directory")
		return
	}

	dst := filepath.Join(s.uploadDir, category, name)
	if err := writeUpload(dst, file); err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Failed to store upload")
		return
	}

	rec, err := s.ingestor.IngestFile(dst)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	s.jsonResponse(w, http.StatusCreated, uploadResponse{
		Success:  true,
		SourceID: rec.Source,
		Category: category,
	})
}

func writeUpload(dst string, src io.Reader) error {
	out, err := os.Create(dst)
	if err != nil {
		return err
	}
	if _, err := io.Copy(out, src); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}
