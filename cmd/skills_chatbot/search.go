package main

import (
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mkaneko/skills-chatbot/internal/knowledge"
	"github.com/mkaneko/skills-chatbot/internal/observability"
	"github.com/mkaneko/skills-chatbot/internal/search"
)

var (
	searchKBFile  string
	searchVerbose bool
)

var searchCmd = &cobra.Command{
	Use:   "search [query...]",
	Short: "Search the knowledge base",
	Long:  "Rank the stored documents against a query and print the top hits.",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runSearch,
}

func init() {
	searchCmd.Flags().StringVarP(&searchKBFile, "knowledge-base", "k", "./knowledge-base/knowledge-base.json", "Knowledge base file")
	searchCmd.Flags().BoolVarP(&searchVerbose, "verbose", "v", false, "Print boxed results")
	rootCmd.AddCommand(searchCmd)
}

func runSearch(_ *cobra.Command, args []string) error {
	return searchKnowledge(searchKBFile, strings.Join(args, " "), searchVerbose, os.Stdout)
}

func searchKnowledge(kbFile, query string, verbose bool, out io.Writer) error {
	store := knowledge.NewStore(kbFile)
	if err := store.Load(); err != nil {
		log.Printf("knowledge base not loaded, searching empty store: %v", err)
	}

	results, err := search.NewEngine(store).Search(query)
	if err != nil {
		return err
	}

	if len(results) == 0 {
		fmt.Fprintln(out, "No matching documents")
		return nil
	}

	if verbose {
		observability.NewPrinter(out).PrintSearchResults(results)
		return nil
	}

	for _, res := range results {
		fmt.Fprintf(out, "%-20s %d\n", res.Source, res.Relevance)
	}
	return nil
}
