// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/keyword-scout/internal/scrape"
	"github.com/jonathan/keyword-scout/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	lines := strings.Split(content, "\n")
	for _, line := range lines {
		// Truncate long lines
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintScrapeResult outputs a summary of the scraped website content.
func (p *Printer) PrintScrapeResult(result *scrape.Result) {
	if result == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("URL:         %s\n", result.URL))
	sb.WriteString(fmt.Sprintf("Title:       %s\n", result.Title))
	sb.WriteString(fmt.Sprintf("Description: %s\n", result.Description))
	sb.WriteString(fmt.Sprintf("Content:     %d chars", len(result.Content)))

	p.printBox("SCRAPED WEBSITE", sb.String())
}

// PrintSeedKeywords outputs the generated seed keyword list.
func (p *Printer) PrintSeedKeywords(keywords []string) {
	if len(keywords) == 0 {
		return
	}

	var sb strings.Builder
	count := min(len(keywords), maxItemsToShow*2)
	for i := 0; i < count; i++ {
		sb.WriteString(fmt.Sprintf("  • %s\n", keywords[i]))
	}
	if len(keywords) > count {
		sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(keywords)-count))
	}

	p.printBox(fmt.Sprintf("SEED KEYWORDS (%d)", len(keywords)), strings.TrimSuffix(sb.String(), "\n"))
}

// PrintClusters outputs the top clusters with their aggregate metrics.
func (p *Printer) PrintClusters(clusters []types.Cluster) {
	if len(clusters) == 0 {
		return
	}

	var sb strings.Builder
	count := min(len(clusters), maxItemsToShow)
	for i := 0; i < count; i++ {
		c := clusters[i]
		sb.WriteString(fmt.Sprintf("%d. %s [%s]\n", c.ClusterID, c.MainKeyword, c.Theme))
		sb.WriteString(fmt.Sprintf("   vol %d  score %d  diff %.0f  members %d\n",
			c.TotalSearchVolume, c.TotalCommercialScore, c.AvgDifficulty, len(c.Keywords)))
	}
	if len(clusters) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("... and %d more\n", len(clusters)-maxItemsToShow))
	}

	p.printBox(fmt.Sprintf("KEYWORD CLUSTERS (%d)", len(clusters)), strings.TrimSuffix(sb.String(), "\n"))
}

// PrintReportSummary outputs the headline figures of a finished report.
func (p *Printer) PrintReportSummary(report *types.Report) {
	if report == nil {
		return
	}

	summary := report.AnalysisSummary
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Keywords analyzed:  %d\n", summary.TotalKeywordsAnalyzed))
	sb.WriteString(fmt.Sprintf("Clusters:           %d\n", summary.ClustersIdentified))
	sb.WriteString(fmt.Sprintf("Monthly volume:     %d\n", summary.TotalMonthlySearchVolume))
	sb.WriteString(fmt.Sprintf("Traffic potential:  %d\n", summary.EstimatedMonthlyTrafficPotential))
	sb.WriteString(fmt.Sprintf("Avg CPC:            $%.2f\n", summary.AvgCPC))
	sb.WriteString(fmt.Sprintf("Quick wins:         %d\n", len(report.QuickWins)))
	sb.WriteString(fmt.Sprintf("High value:         %d\n", len(report.HighValue)))
	sb.WriteString(fmt.Sprintf("Competitors:        %d", len(report.Competitors)))

	p.printBox("ANALYSIS SUMMARY", sb.String())
}

// min returns the smaller of two integers
func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
