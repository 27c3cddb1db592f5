// Package steps defines the pipeline step catalog: names, categories, and
// ordering dependencies between stages.
package steps

import "fmt"

// Step categories group related stages for progress reporting.
const (
	CategoryScrape     = "scrape"
	CategoryGeneration = "generation"
	CategoryMetrics    = "metrics"
	CategoryAnalysis   = "analysis"
	CategoryResearch   = "research"
	CategoryReport     = "report"
)

// Step names, in execution order.
const (
	StepScrapeSite          = "scrape_site"
	StepGenerateKeywords    = "generate_keywords"
	StepFetchMetrics        = "fetch_metrics"
	StepAggregateKeywords   = "aggregate_keywords"
	StepClusterKeywords     = "cluster_keywords"
	StepResearchCompetitors = "research_competitors"
	StepAssembleReport      = "assemble_report"
)

// Definition describes one pipeline step.
type Definition struct {
	Name         string
	Category     string
	Dependencies []string
}

// Ordered returns the step catalog in execution order. Each step's
// dependencies appear strictly earlier in the list.
func Ordered() []Definition {
	return []Definition{
		{Name: StepScrapeSite, Category: CategoryScrape},
		{Name: StepGenerateKeywords, Category: CategoryGeneration, Dependencies: []string{StepScrapeSite}},
		{Name: StepFetchMetrics, Category: CategoryMetrics, Dependencies: []string{StepGenerateKeywords}},
		{Name: StepAggregateKeywords, Category: CategoryAnalysis, Dependencies: []string{StepFetchMetrics}},
		{Name: StepClusterKeywords, Category: CategoryAnalysis, Dependencies: []string{StepAggregateKeywords}},
		{Name: StepResearchCompetitors, Category: CategoryResearch, Dependencies: []string{StepClusterKeywords}},
		{Name: StepAssembleReport, Category: CategoryReport, Dependencies: []string{StepClusterKeywords}},
	}
}

// Count is the number of steps in the catalog, used for progress numbering.
func Count() int {
	return len(Ordered())
}

// Category looks up the category of a step name, or "" if unknown.
func Category(name string) string {
	for _, def := range Ordered() {
		if def.Name == name {
			return def.Category
		}
	}
	return ""
}

// Validate checks the catalog is internally consistent: unique names and
// every dependency defined before its dependent.
func Validate() error {
	seen := make(map[string]bool)
	for _, def := range Ordered() {
		if seen[def.Name] {
			return fmt.Errorf("duplicate step name: %s", def.Name)
		}
		for _, dep := range def.Dependencies {
			if !seen[dep] {
				return fmt.Errorf("step %s depends on %s which is not defined earlier", def.Name, dep)
			}
		}
		seen[def.Name] = true
	}
	return nil
}
