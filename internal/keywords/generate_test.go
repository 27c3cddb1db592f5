package keywords

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/keyword-scout/internal/llm"
	"github.com/jonathan/keyword-scout/internal/scrape"
)

// stubClient returns a canned response for every generation request.
type stubClient struct {
	response string
	err      error
	prompt   string
	system   string
}

func (s *stubClient) GenerateContent(_ context.Context, system, prompt string, _ llm.ModelTier) (string, error) {
	s.system = system
	s.prompt = prompt
	return s.response, s.err
}

func (s *stubClient) GetModel(llm.ModelTier) string { return "stub" }
func (s *stubClient) Close() error                  { return nil }

func site() *scrape.Result {
	return &scrape.Result{
		URL:         "https://example.com",
		Title:       "Example Shoes",
		Description: "Running shoes and apparel",
		Content:     "We sell premium running shoes to customers across the country every day.",
	}
}

func TestGenerate_JSONResponse(t *testing.T) {
	client := &stubClient{response: `["buy running shoes", "best trail runners", "shoe store near me"]`}

	result, err := Generate(context.Background(), client, site(), "E-commerce")
	require.NoError(t, err)

	assert.Equal(t, llm.DecodePathJSON, result.Path)
	assert.Equal(t, []string{"buy running shoes", "best trail runners", "shoe store near me"}, result.Keywords)
	assert.Contains(t, client.prompt, "https://example.com")
	assert.Contains(t, client.system, "E-commerce")
}

func TestGenerate_LineFallback(t *testing.T) {
	client := &stubClient{response: "1. buy running shoes\n2. best trail runners"}

	result, err := Generate(context.Background(), client, site(), "E-commerce")
	require.NoError(t, err)

	assert.Equal(t, llm.DecodePathLines, result.Path)
	assert.Equal(t, []string{"buy running shoes", "best trail runners"}, result.Keywords)
}

func TestGenerate_FiltersTechnicalKeywords(t *testing.T) {
	client := &stubClient{response: `["buy running shoes", "shoe api endpoint", "jwt tokens"]`}

	result, err := Generate(context.Background(), client, site(), "E-commerce")
	require.NoError(t, err)

	assert.Equal(t, []string{"buy running shoes"}, result.Keywords)
}

func TestGenerate_NoUsableKeywords(t *testing.T) {
	client := &stubClient{response: `["api", "json"]`}

	_, err := Generate(context.Background(), client, site(), "E-commerce")
	require.Error(t, err)

	var genErr *GenerationError
	assert.ErrorAs(t, err, &genErr)
	assert.Contains(t, err.Error(), "failed to generate keywords")
}

func TestGenerate_APIError(t *testing.T) {
	client := &stubClient{err: errors.New("quota exceeded")}

	_, err := Generate(context.Background(), client, site(), "E-commerce")
	require.Error(t, err)

	var apiErr *APICallError
	assert.ErrorAs(t, err, &apiErr)
}

func TestFilterTechnical(t *testing.T) {
	candidates := []string{
		"buy running shoes",
		"react components",  // technical term
		"data",              // generic
		"ok",                // too short
		"shoes {for} sale",  // code punctuation
		"best hiking boots", // fine
	}

	assert.Equal(t, []string{"buy running shoes", "best hiking boots"}, FilterTechnical(candidates))
}

func TestFilterTechnical_Empty(t *testing.T) {
	assert.Empty(t, FilterTechnical(nil))
}
