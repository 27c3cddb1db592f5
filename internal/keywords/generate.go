// Package keywords turns scraped site content into a filtered list of seed
// keywords using the LLM, tolerating loosely formatted model output.
package keywords

import (
	"context"

	"github.com/jonathan/keyword-scout/internal/content"
	"github.com/jonathan/keyword-scout/internal/llm"
	"github.com/jonathan/keyword-scout/internal/prompts"
	"github.com/jonathan/keyword-scout/internal/scrape"
)

// Caps on the generated list, before and after technical filtering.
const (
	maxRawKeywords      = 50
	maxFilteredKeywords = 40
)

// Result holds the generated seed keywords and the decode path that produced
// them, for observability.
type Result struct {
	Keywords []string
	Path     llm.DecodePath
}

// Generate produces seed keywords for the scraped site. The LLM response is
// decoded leniently (strict JSON first, then line extraction); an empty list
// after both paths and filtering is a stage failure.
func Generate(ctx context.Context, client llm.Client, site *scrape.Result, businessType string) (*Result, error) {
	cleaned := content.Normalize(site.Content, businessType)
	excerpt := content.Excerpt(cleaned, content.MaxPromptChars)

	title := site.Title
	if title == "" {
		title = "N/A"
	}
	description := site.Description
	if description == "" {
		description = "N/A"
	}

	prompt := prompts.Format(prompts.MustGet("keywords.json", "generate-seed-keywords"), map[string]string{
		"URL":          site.URL,
		"BusinessType": businessType,
		"Title":        title,
		"Description":  description,
		"Content":      excerpt,
	})
	system := prompts.Format(prompts.MustGet("keywords.json", "seo-strategist-system"), map[string]string{
		"BusinessType": businessType,
	})

	response, err := client.GenerateContent(ctx, system, prompt, llm.TierStandard)
	if err != nil {
		return nil, &APICallError{Message: "keyword generation request failed", Cause: err}
	}

	decoded := llm.DecodeStringList(response)
	raw := decoded.Items
	if len(raw) > maxRawKeywords {
		raw = raw[:maxRawKeywords]
	}

	filtered := FilterTechnical(raw)
	if len(filtered) > maxFilteredKeywords {
		filtered = filtered[:maxFilteredKeywords]
	}

	if len(filtered) == 0 {
		return nil, &GenerationError{Message: "failed to generate keywords from website content"}
	}

	return &Result{Keywords: filtered, Path: decoded.Path}, nil
}
