package main

import (
	"io"
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/mkaneko/skills-chatbot/internal/chatbot"
	"github.com/mkaneko/skills-chatbot/internal/knowledge"
	"github.com/mkaneko/skills-chatbot/internal/observability"
	"github.com/mkaneko/skills-chatbot/internal/search"
)

var statsKBFile string

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show knowledge base statistics",
	RunE:  runStats,
}

func init() {
	statsCmd.Flags().StringVarP(&statsKBFile, "knowledge-base", "k", "./knowledge-base/knowledge-base.json", "Knowledge base file")
	rootCmd.AddCommand(statsCmd)
}

func runStats(_ *cobra.Command, _ []string) error {
	return printStats(statsKBFile, os.Stdout)
}

func printStats(kbFile string, out io.Writer) error {
	store := knowledge.NewStore(kbFile)
	if err := store.Load(); err != nil {
		log.Printf("knowledge base not loaded, reporting empty store: %v", err)
	}

	svc := chatbot.NewService(chatbot.Config{
		Store:  store,
		Engine: search.NewEngine(store),
	})
	observability.NewPrinter(out).PrintKnowledgeStats(svc.KnowledgeStats())
	return nil
}
