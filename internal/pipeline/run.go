// Package pipeline provides the high-level orchestration for a keyword
// research run.
package pipeline

import (
	"context"
	"fmt"
	"os"
	"sync"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/jonathan/keyword-scout/internal/aggregate"
	"github.com/jonathan/keyword-scout/internal/cluster"
	"github.com/jonathan/keyword-scout/internal/config"
	"github.com/jonathan/keyword-scout/internal/dataforseo"
	"github.com/jonathan/keyword-scout/internal/keywords"
	"github.com/jonathan/keyword-scout/internal/llm"
	"github.com/jonathan/keyword-scout/internal/observability"
	"github.com/jonathan/keyword-scout/internal/pipeline/steps"
	"github.com/jonathan/keyword-scout/internal/report"
	"github.com/jonathan/keyword-scout/internal/research"
	"github.com/jonathan/keyword-scout/internal/scrape"
	"github.com/jonathan/keyword-scout/internal/types"
)

// ProgressEvent represents a progress update during pipeline execution
type ProgressEvent struct {
	Step     string `json:"step"`
	Category string `json:"category"`
	Message  string `json:"message"`
	RunID    string `json:"run_id,omitempty"`
	Content  any    `json:"content,omitempty"`
}

// ProgressCallback is called when pipeline progress occurs
type ProgressCallback func(event ProgressEvent)

// MetricsProvider is the keyword-metrics surface the pipeline consumes.
// *dataforseo.Client satisfies it.
type MetricsProvider interface {
	SearchVolume(ctx context.Context, keywords []string, locale dataforseo.Locale) ([]dataforseo.KeywordMetrics, error)
	RelatedKeywords(ctx context.Context, seeds []string, locale dataforseo.Locale) ([]dataforseo.KeywordMetrics, error)
	SERP(ctx context.Context, keywords []string, locale dataforseo.Locale) (map[string][]dataforseo.SERPItem, error)
}

// RunOptions holds configuration for running the pipeline
type RunOptions struct {
	Config      config.Config
	Credentials config.Credentials
	OnProgress  ProgressCallback

	// Scraper, LLMClient, and Metrics override the default collaborators
	// built from credentials. Nil means build the real one.
	Scraper   scrape.Scraper
	LLMClient llm.Client
	Metrics   MetricsProvider
}

// RunResult holds the outputs of a completed run.
type RunResult struct {
	RunID        string
	Report       *types.Report
	JSONPath     string
	MarkdownPath string
}

// emitProgress calls the progress callback if configured
func emitProgress(opts *RunOptions, runID, step, message string, content any) {
	if opts.OnProgress != nil {
		opts.OnProgress(ProgressEvent{
			Step:     step,
			Category: steps.Category(step),
			Message:  message,
			RunID:    runID,
			Content:  content,
		})
	}
}

// Run orchestrates the full keyword research pipeline
func Run(ctx context.Context, opts RunOptions) (*RunResult, error) {
	cfg := opts.Config
	cfg.ApplyDefaults()

	runID := uuid.New().String()
	total := steps.Count()
	printer := observability.NewPrinter(os.Stdout)

	scraper, err := buildScraper(&opts, cfg)
	if err != nil {
		return nil, err
	}

	llmClient := opts.LLMClient
	if llmClient == nil {
		if opts.Credentials.GeminiAPIKey == "" {
			return nil, fmt.Errorf("GEMINI_API_KEY is required")
		}
		client, err := llm.NewClient(ctx, nil, opts.Credentials.GeminiAPIKey)
		if err != nil {
			return nil, fmt.Errorf("failed to create LLM client: %w", err)
		}
		defer client.Close()
		llmClient = client
	}

	metrics := opts.Metrics
	if metrics == nil {
		if !opts.Credentials.HasMetricsCredentials() {
			return nil, fmt.Errorf("DATAFORSEO_LOGIN and DATAFORSEO_PASSWORD are required")
		}
		client, err := dataforseo.NewClient(opts.Credentials.DataForSEOLogin, opts.Credentials.DataForSEOPassword, "")
		if err != nil {
			return nil, fmt.Errorf("failed to create metrics client: %w", err)
		}
		metrics = client
	}

	locale := dataforseo.Locale{
		LocationCode: cfg.LocationCode,
		LanguageCode: cfg.LanguageCode,
	}

	// Step 1: Scrape the target website
	fmt.Printf("Step 1/%d: Scraping website: %s...\n", total, cfg.WebsiteURL)
	site, err := scraper.Scrape(ctx, cfg.WebsiteURL)
	if err != nil {
		return nil, fmt.Errorf("website scrape failed: %w", err)
	}
	if cfg.Verbose {
		printer.PrintScrapeResult(site)
	}
	emitProgress(&opts, runID, steps.StepScrapeSite,
		fmt.Sprintf("Scraped %s (%d chars)", site.URL, len(site.Content)), nil)

	// Step 2: Generate seed keywords from the scraped content
	fmt.Printf("Step 2/%d: Generating seed keywords...\n", total)
	seeds, err := keywords.Generate(ctx, llmClient, site, cfg.BusinessType)
	if err != nil {
		return nil, fmt.Errorf("keyword generation failed: %w", err)
	}
	if cfg.Verbose {
		printer.PrintSeedKeywords(seeds.Keywords)
	}
	emitProgress(&opts, runID, steps.StepGenerateKeywords,
		fmt.Sprintf("Generated %d seed keywords", len(seeds.Keywords)), seeds.Keywords)

	// Step 3: Fetch volume, expansion, and SERP data concurrently. The
	// three calls are independent; each writes its own result slot.
	fmt.Printf("Step 3/%d: Fetching keyword metrics, expansions, and SERP data...\n", total)
	var (
		direct    []dataforseo.KeywordMetrics
		expansion []dataforseo.KeywordMetrics
		serps     map[string][]dataforseo.SERPItem
		mu        sync.Mutex
	)

	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		result, err := metrics.SearchVolume(gCtx, seeds.Keywords, locale)
		if err != nil {
			return fmt.Errorf("search volume lookup failed: %w", err)
		}
		mu.Lock()
		direct = result
		mu.Unlock()
		return nil
	})
	g.Go(func() error {
		result, err := metrics.RelatedKeywords(gCtx, seeds.Keywords, locale)
		if err != nil {
			return fmt.Errorf("keyword expansion failed: %w", err)
		}
		mu.Lock()
		expansion = result
		mu.Unlock()
		return nil
	})
	g.Go(func() error {
		result, err := metrics.SERP(gCtx, seeds.Keywords, locale)
		if err != nil {
			return fmt.Errorf("SERP lookup failed: %w", err)
		}
		mu.Lock()
		serps = result
		mu.Unlock()
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}
	emitProgress(&opts, runID, steps.StepFetchMetrics,
		fmt.Sprintf("Fetched %d direct, %d expansion, %d SERP results",
			len(direct), len(expansion), len(serps)), nil)

	// Step 4: Merge, dedupe, and score
	fmt.Printf("Step 4/%d: Aggregating and scoring keywords...\n", total)
	records := aggregate.Merge(direct, expansion, cfg.MinExpansionVolume)
	aggregate.AttachSERP(records, serps)
	emitProgress(&opts, runID, steps.StepAggregateKeywords,
		fmt.Sprintf("Aggregated %d keywords", len(records)), nil)

	// Step 5: Cluster
	fmt.Printf("Step 5/%d: Clustering keywords...\n", total)
	clusters := cluster.Build(records, cluster.Options{MinVolume: cfg.MinClusterVolume})
	if cfg.Verbose {
		printer.PrintClusters(clusters)
	}
	emitProgress(&opts, runID, steps.StepClusterKeywords,
		fmt.Sprintf("Formed %d clusters", len(clusters)), nil)

	// Step 6: Competitor research (best effort)
	fmt.Printf("Step 6/%d: Researching competitors...\n", total)
	clusters = research.Competitors(ctx, llmClient, clusters, cfg.BusinessType)
	emitProgress(&opts, runID, steps.StepResearchCompetitors, "Competitor research complete", nil)

	// Step 7: Assemble and save the report
	fmt.Printf("Step 7/%d: Assembling report...\n", total)
	analysisReport := report.Assemble(clusters, cfg.WebsiteURL, cfg.BusinessType, runID)
	saved, err := report.Save(analysisReport, report.SaveOptions{
		OutputDir: cfg.OutputDir,
		Markdown:  cfg.Markdown,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to save report: %w", err)
	}
	if cfg.Verbose {
		printer.PrintReportSummary(analysisReport)
	}
	emitProgress(&opts, runID, steps.StepAssembleReport,
		fmt.Sprintf("Report written to %s", saved.JSONPath), analysisReport.AnalysisSummary)

	return &RunResult{
		RunID:        runID,
		Report:       analysisReport,
		JSONPath:     saved.JSONPath,
		MarkdownPath: saved.MarkdownPath,
	}, nil
}

// buildScraper prefers the hosted scrape service when an API key is present
// and falls back to direct fetching otherwise.
func buildScraper(opts *RunOptions, cfg config.Config) (scrape.Scraper, error) {
	if opts.Scraper != nil {
		return opts.Scraper, nil
	}
	if opts.Credentials.FirecrawlAPIKey != "" {
		client, err := scrape.NewFirecrawlClient(opts.Credentials.FirecrawlAPIKey, "")
		if err != nil {
			return nil, fmt.Errorf("failed to create scrape client: %w", err)
		}
		return client, nil
	}
	return scrape.NewLocalScraper(cfg.UseBrowser, cfg.Verbose), nil
}
