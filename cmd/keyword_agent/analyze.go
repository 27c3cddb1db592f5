package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/keyword-scout/internal/config"
	"github.com/jonathan/keyword-scout/internal/pipeline"
)

var analyzeCommand = &cobra.Command{
	Use:   "analyze",
	Short: "Run the full keyword research pipeline for a website",
	Long: `Orchestrates the entire analysis: scrape -> seed keywords -> metrics/expansion/SERP -> aggregation -> clustering -> competitor research -> report.

Configuration can be loaded from a JSON file using --config. Command-line arguments override config file values.`,
	RunE: runAnalyzeCmd,
}

var (
	analyzeConfigPath         string
	analyzeURL                string
	analyzeBusinessType       string
	analyzeOutputDir          string
	analyzeMarkdown           bool
	analyzeLocationCode       int
	analyzeLanguageCode       string
	analyzeMinExpansionVolume int
	analyzeMinClusterVolume   int
	analyzeUseBrowser         bool
	analyzeVerbose            bool
)

func init() {
	// Config file flag (processed first)
	analyzeCommand.Flags().StringVar(&analyzeConfigPath, "config", "", "Path to config.json file (values can be overridden by other flags)")

	analyzeCommand.Flags().StringVarP(&analyzeURL, "url", "u", "", "Website URL to analyze")
	analyzeCommand.Flags().StringVarP(&analyzeBusinessType, "business-type", "b", "", "Business type: 'E-commerce', 'SaaS', 'Service Business', 'Blog/Content', or 'Education'")
	analyzeCommand.Flags().StringVarP(&analyzeOutputDir, "output-dir", "o", "", "Directory for report artifacts (defaults to current directory)")
	analyzeCommand.Flags().BoolVar(&analyzeMarkdown, "markdown", false, "Also write a Markdown rendering of the report")
	analyzeCommand.Flags().IntVar(&analyzeLocationCode, "location-code", 0, "Locale location code for metric lookups (defaults to US)")
	analyzeCommand.Flags().StringVar(&analyzeLanguageCode, "language-code", "", "Two-letter language code for metric lookups (defaults to en)")
	analyzeCommand.Flags().IntVar(&analyzeMinExpansionVolume, "min-expansion-volume", 0, "Minimum monthly volume for expansion keywords")
	analyzeCommand.Flags().IntVar(&analyzeMinClusterVolume, "min-cluster-volume", 0, "Minimum monthly volume for clustering candidates")
	analyzeCommand.Flags().BoolVar(&analyzeUseBrowser, "use-browser", false, "Render JS-heavy pages with a headless browser when scraping locally (requires Chrome)")
	analyzeCommand.Flags().BoolVarP(&analyzeVerbose, "verbose", "v", false, "Print detailed debug information")

	rootCmd.AddCommand(analyzeCommand)
}

func runAnalyzeCmd(cmd *cobra.Command, _ []string) error {
	ctx := context.Background()

	// Load config file if provided
	var cfg config.Config
	if analyzeConfigPath != "" {
		loadedCfg, err := config.LoadConfig(analyzeConfigPath)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		cfg = *loadedCfg
		if analyzeVerbose {
			_, _ = fmt.Fprintf(os.Stdout, "Loaded config from: %s\n", analyzeConfigPath)
		}
	}

	// Apply CLI overrides (command-line args take priority). Only override
	// when the flag was explicitly set.
	if cmd.Flags().Changed("url") {
		cfg.WebsiteURL = analyzeURL
	}
	if cmd.Flags().Changed("business-type") {
		cfg.BusinessType = analyzeBusinessType
	}
	if cmd.Flags().Changed("output-dir") {
		cfg.OutputDir = analyzeOutputDir
	}
	if cmd.Flags().Changed("markdown") {
		cfg.Markdown = analyzeMarkdown
	}
	if cmd.Flags().Changed("location-code") {
		cfg.LocationCode = analyzeLocationCode
	}
	if cmd.Flags().Changed("language-code") {
		cfg.LanguageCode = analyzeLanguageCode
	}
	if cmd.Flags().Changed("min-expansion-volume") {
		cfg.MinExpansionVolume = analyzeMinExpansionVolume
	}
	if cmd.Flags().Changed("min-cluster-volume") {
		cfg.MinClusterVolume = analyzeMinClusterVolume
	}
	if cmd.Flags().Changed("use-browser") {
		cfg.UseBrowser = analyzeUseBrowser
	}
	if cmd.Flags().Changed("verbose") {
		cfg.Verbose = analyzeVerbose
	}

	cfg.ApplyDefaults()

	// Validate required fields
	if cfg.WebsiteURL == "" {
		return fmt.Errorf("--url is required (via flag or config)")
	}
	if cfg.BusinessType == "" {
		return fmt.Errorf("--business-type is required (via flag or config)")
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	creds := config.CredentialsFromEnv()
	if creds.GeminiAPIKey == "" {
		return fmt.Errorf("GEMINI_API_KEY environment variable is required")
	}
	if !creds.HasMetricsCredentials() {
		return fmt.Errorf("DATAFORSEO_LOGIN and DATAFORSEO_PASSWORD environment variables are required")
	}

	result, err := pipeline.Run(ctx, pipeline.RunOptions{
		Config:      cfg,
		Credentials: creds,
	})
	if err != nil {
		return err
	}

	fmt.Printf("\nAnalysis complete. Report written to %s\n", result.JSONPath)
	if result.MarkdownPath != "" {
		fmt.Printf("Markdown report written to %s\n", result.MarkdownPath)
	}
	return nil
}
