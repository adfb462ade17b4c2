package main

import (
	"context"
	"fmt"
	"log"

	"github.com/spf13/cobra"

	"github.com/mkaneko/skills-chatbot/internal/chatbot"
	"github.com/mkaneko/skills-chatbot/internal/config"
	"github.com/mkaneko/skills-chatbot/internal/features"
	"github.com/mkaneko/skills-chatbot/internal/ingest"
	"github.com/mkaneko/skills-chatbot/internal/knowledge"
	"github.com/mkaneko/skills-chatbot/internal/llm"
	"github.com/mkaneko/skills-chatbot/internal/profile"
	"github.com/mkaneko/skills-chatbot/internal/search"
	"github.com/mkaneko/skills-chatbot/internal/server"
)

var (
	servePort  int
	skipIngest bool
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the REST API server",
	Long:  `Start an HTTP server that exposes the chat, knowledge and training endpoints. Documents in the configured directories are ingested at startup.`,
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 8080, "Port to listen on")
	serveCmd.Flags().BoolVar(&skipIngest, "skip-ingest", false, "Skip the startup document scan")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if err := cfg.EnsureDirs(); err != nil {
		return err
	}

	store := knowledge.NewStore(cfg.KnowledgeBaseFile())
	if err := store.Load(); err != nil {
		// A corrupt knowledge base is rebuilt from the documents on disk.
		log.Printf("knowledge base not loaded, starting empty: %v", err)
	}

	ingestor := ingest.New(features.NewExtractor(features.DefaultConfig()), store)
	if !skipIngest {
		summary, err := ingestor.IngestDirs(cmd.Context(), cfg.DocumentsPath, cfg.ReportsPath)
		if err != nil {
			return fmt.Errorf("startup ingestion failed: %w", err)
		}
		log.Printf("ingested %d documents (%d failed)", len(summary.Sources), len(summary.Failed))
	}

	profiles, err := profile.Load(cfg.SkillsDataPath)
	if err != nil {
		log.Printf("skill profiles not loaded, using defaults: %v", err)
	}

	client, err := llm.NewGeminiClient(context.Background(), llm.ConfigFromEnv(), cfg.GeminiAPIKey)
	if err != nil {
		return fmt.Errorf("failed to create generation client: %w", err)
	}
	defer client.Close()

	jwtConfig, err := config.NewJWTConfig()
	if err != nil {
		return fmt.Errorf("failed to create JWT config: %w", err)
	}
	adminConfig, err := config.NewAdminConfig()
	if err != nil {
		return fmt.Errorf("failed to create admin config: %w", err)
	}

	engine := search.NewEngine(store)
	svc := chatbot.NewService(chatbot.Config{
		Store:        store,
		Engine:       engine,
		Client:       client,
		Profiles:     profiles,
		ProfilesPath: cfg.SkillsDataPath,
	})

	srv, err := server.New(server.Config{
		Port:      servePort,
		UploadDir: cfg.UploadsPath,
		Service:   svc,
		Ingestor:  ingestor,
		Engine:    engine,
		Store:     store,
		JWT:       jwtConfig,
		Admin:     adminConfig,
	})
	if err != nil {
		return fmt.Errorf("failed to create server: %w", err)
	}

	return srv.Start()
}
