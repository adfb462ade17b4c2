package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/mkaneko/skills-chatbot/internal/features"
	"github.com/mkaneko/skills-chatbot/internal/ingest"
	"github.com/mkaneko/skills-chatbot/internal/knowledge"
	"github.com/mkaneko/skills-chatbot/internal/observability"
)

var (
	ingestKBFile  string
	ingestVerbose bool
)

var ingestCmd = &cobra.Command{
	Use:   "ingest [dirs...]",
	Short: "Ingest documents into the knowledge base",
	Long:  "Scan the given directories recursively, extract features from every supported document (pdf, docx, txt, html) and persist them to the knowledge base file.",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runIngest,
}

func init() {
	ingestCmd.Flags().StringVarP(&ingestKBFile, "knowledge-base", "k", "./knowledge-base/knowledge-base.json", "Knowledge base file")
	ingestCmd.Flags().BoolVarP(&ingestVerbose, "verbose", "v", false, "Print an ingestion summary")
	rootCmd.AddCommand(ingestCmd)
}

func runIngest(cmd *cobra.Command, args []string) error {
	return ingestDirs(cmd.Context(), ingestKBFile, args, ingestVerbose, os.Stdout)
}

func ingestDirs(ctx context.Context, kbFile string, dirs []string, verbose bool, out io.Writer) error {
	store := knowledge.NewStore(kbFile)
	if err := store.Load(); err != nil {
		// A corrupt knowledge base is rebuilt from the documents on disk.
		log.Printf("knowledge base not loaded, starting empty: %v", err)
	}

	ingestor := ingest.New(features.NewExtractor(features.DefaultConfig()), store)
	summary, err := ingestor.IngestDirs(ctx, dirs...)
	if err != nil {
		return fmt.Errorf("ingestion failed: %w", err)
	}

	if verbose {
		observability.NewPrinter(out).PrintIngestSummary(summary)
	} else {
		fmt.Fprintf(out, "Ingested %d documents, %d failed\n", len(summary.Sources), len(summary.Failed))
	}

	return nil
}
