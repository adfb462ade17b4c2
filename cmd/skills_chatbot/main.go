// Package main provides the entry point for the skills chatbot HTTP API server.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "skills_chatbot",
	Short: "Portfolio skills chatbot API server",
	Long:  "Skills chatbot answers questions about documented skills and projects. It ingests portfolio documents into a knowledge base and serves chat, search and stats endpoints backed by a text-generation model.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
