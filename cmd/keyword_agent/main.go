// Package main provides the entry point for the keyword research CLI.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "keyword_agent",
	Short: "Keyword opportunity research for a target website",
	Long:  "keyword_agent scrapes a website, generates seed keywords with an LLM, enriches them with search metrics and SERP data, and produces a clustered keyword opportunity report.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
