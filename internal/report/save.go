package report

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/jonathan/keyword-scout/internal/schemas"
	"github.com/jonathan/keyword-scout/internal/types"
)

// SaveOptions control how a report is written to disk.
type SaveOptions struct {
	// OutputDir receives the artifacts; created if absent.
	OutputDir string
	// Markdown also writes a rendered .md file next to the JSON.
	Markdown bool
}

// SaveResult lists the paths written.
type SaveResult struct {
	JSONPath     string
	MarkdownPath string
}

// Save serializes the report to keyword-research-report-<date>.json in the
// output directory, validating it against the report schema first so a
// malformed artifact never reaches disk. With Markdown enabled a rendered
// companion document is written alongside.
func Save(report *types.Report, opts SaveOptions) (*SaveResult, error) {
	data, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to serialize report: %w", err)
	}

	if err := schemas.ValidateReport(string(data)); err != nil {
		return nil, fmt.Errorf("report failed schema validation: %w", err)
	}

	if err := os.MkdirAll(opts.OutputDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create output directory: %w", err)
	}

	date := report.AnalysisSummary.AnalysisDate.Format("2006-01-02")
	result := &SaveResult{
		JSONPath: filepath.Join(opts.OutputDir, fmt.Sprintf("keyword-research-report-%s.json", date)),
	}
	if err := os.WriteFile(result.JSONPath, data, 0644); err != nil {
		return nil, fmt.Errorf("failed to write report: %w", err)
	}

	if opts.Markdown {
		result.MarkdownPath = filepath.Join(opts.OutputDir, fmt.Sprintf("keyword-research-report-%s.md", date))
		if err := os.WriteFile(result.MarkdownPath, []byte(Markdown(report)), 0644); err != nil {
			return nil, fmt.Errorf("failed to write markdown report: %w", err)
		}
	}

	return result, nil
}
