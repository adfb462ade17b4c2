// Package config provides configuration loading for the chatbot service.
// Values come from environment variables (a .env file is loaded by the CLI
// before this package reads anything).
package config

import (
	"fmt"
	"os"
	"path/filepath"
)

// Defaults for filesystem paths
const (
	DefaultDocumentsPath     = "./documents"
	DefaultReportsPath       = "./reports"
	DefaultKnowledgeBasePath = "./knowledge-base"
	DefaultSkillsDataPath    = "./data/skills-data.json"
	DefaultUploadsPath       = "./uploads"
)

// knowledgeBaseFile is the file name inside the knowledge base directory.
const knowledgeBaseFile = "knowledge-base.json"

// Config holds the service configuration.
type Config struct {
	// DocumentsPath and ReportsPath are scanned recursively at startup.
	DocumentsPath string
	ReportsPath   string
	// KnowledgeBasePath is the directory holding the persisted knowledge
	// base JSON file.
	KnowledgeBasePath string
	// SkillsDataPath is the skill profile configuration file.
	SkillsDataPath string
	// UploadsPath receives uploaded documents before ingestion.
	UploadsPath string
	// GeminiAPIKey authenticates against the generation API.
	GeminiAPIKey string
}

// Load builds a configuration from environment variables, applying defaults
// for unset path values. GEMINI_API_KEY is required.
func Load() (*Config, error) {
	cfg := &Config{
		DocumentsPath:     envOr("DOCUMENTS_PATH", DefaultDocumentsPath),
		ReportsPath:       envOr("REPORTS_PATH", DefaultReportsPath),
		KnowledgeBasePath: envOr("KNOWLEDGE_BASE_PATH", DefaultKnowledgeBasePath),
		SkillsDataPath:    envOr("SKILLS_DATA_PATH", DefaultSkillsDataPath),
		UploadsPath:       envOr("UPLOADS_PATH", DefaultUploadsPath),
		GeminiAPIKey:      os.Getenv("GEMINI_API_KEY"),
	}

	if cfg.GeminiAPIKey == "" {
		return nil, fmt.Errorf("GEMINI_API_KEY environment variable is required")
	}
	return cfg, nil
}

// KnowledgeBaseFile returns the full path of the persisted knowledge base.
func (c *Config) KnowledgeBaseFile() string {
	return filepath.Join(c.KnowledgeBasePath, knowledgeBaseFile)
}

// EnsureDirs creates the configured directories if they are missing.
func (c *Config) EnsureDirs() error {
	for _, dir := range []string{c.DocumentsPath, c.ReportsPath, c.KnowledgeBasePath, c.UploadsPath} {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create directory %s: %w", dir, err)
		}
	}
	return nil
}

func envOr(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
