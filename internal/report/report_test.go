package report

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/keyword-scout/internal/types"
)

func testCluster(id int, main string, volume, score int, difficulty, cpc float64) types.Cluster {
	return types.Cluster{
		ClusterID:   id,
		MainKeyword: main,
		Theme:       types.ThemeGeneral,
		Keywords: []types.KeywordRecord{{
			Keyword:           main,
			SearchVolume:      volume,
			CPC:               cpc,
			CompetitionLevel:  types.CompetitionMedium,
			KeywordDifficulty: int(difficulty),
			SERPURLs:          []types.SERPEntry{},
			CommercialScore:   score,
			IsSeed:            true,
		}},
		TotalSearchVolume:    volume,
		AvgCPC:               cpc,
		AvgDifficulty:        difficulty,
		TotalCommercialScore: score,
		CompetitorDomains:    []string{},
	}
}

func TestAssembleSummaryFigures(t *testing.T) {
	clusters := []types.Cluster{
		testCluster(1, "running shoes", 5000, 9000, 50, 2.0),
		testCluster(2, "trail shoes", 1000, 500, 30, 1.0),
	}

	r := Assemble(clusters, "https://example.com", "E-commerce", "run-1")

	summary := r.AnalysisSummary
	assert.Equal(t, "run-1", summary.RunID)
	assert.Equal(t, "https://example.com", summary.SourceWebsite)
	assert.Equal(t, "E-commerce", summary.BusinessType)
	assert.Equal(t, 2, summary.TotalKeywordsAnalyzed)
	assert.Equal(t, 2, summary.ClustersIdentified)
	assert.Equal(t, 6000, summary.TotalMonthlySearchVolume)
	assert.Equal(t, 1800, summary.EstimatedMonthlyTrafficPotential)
	assert.Equal(t, 1.5, summary.AvgCPC)
	assert.False(t, summary.AnalysisDate.IsZero())
}

func TestAssembleTrafficRounding(t *testing.T) {
	clusters := []types.Cluster{testCluster(1, "running shoes", 1005, 500, 50, 1.0)}

	r := Assemble(clusters, "https://example.com", "E-commerce", "run-1")

	// round(1005 * 0.3) = round(301.5) = 302
	assert.Equal(t, 302, r.AnalysisSummary.EstimatedMonthlyTrafficPotential)
}

func TestAssembleQuickWins(t *testing.T) {
	clusters := []types.Cluster{
		testCluster(1, "hard keyword", 1000, 2000, 75, 1.0),
		testCluster(2, "easy keyword", 1000, 2000, 25, 1.0),
		testCluster(3, "unscored keyword", 1000, 2000, 0, 1.0),
	}

	r := Assemble(clusters, "https://example.com", "SaaS", "run-1")

	require.Len(t, r.QuickWins, 1)
	assert.Equal(t, "easy keyword", r.QuickWins[0].MainKeyword)
}

func TestAssembleQuickWinsCap(t *testing.T) {
	clusters := make([]types.Cluster, 12)
	for i := range clusters {
		clusters[i] = testCluster(i+1, fmt.Sprintf("keyword %d", i), 1000, 2000, 20, 1.0)
	}

	r := Assemble(clusters, "https://example.com", "SaaS", "run-1")

	assert.Len(t, r.QuickWins, 8)
}

func TestAssembleHighValue(t *testing.T) {
	clusters := []types.Cluster{
		testCluster(1, "big keyword", 1000, 5000, 50, 1.0),
		testCluster(2, "small keyword", 1000, 900, 50, 1.0),
	}

	r := Assemble(clusters, "https://example.com", "SaaS", "run-1")

	require.Len(t, r.HighValue, 1)
	assert.Equal(t, "big keyword", r.HighValue[0].MainKeyword)
}

func TestAssembleCompetitorUnion(t *testing.T) {
	a := testCluster(1, "running shoes", 1000, 2000, 50, 1.0)
	a.CompetitorDomains = []string{"nike.com", "amazon.com"}
	a.AICompetitors = []string{"adidas.com", "nike.com"}
	b := testCluster(2, "trail shoes", 1000, 2000, 50, 1.0)
	b.CompetitorDomains = []string{"rei.com", "amazon.com"}

	r := Assemble([]types.Cluster{a, b}, "https://example.com", "E-commerce", "run-1")

	assert.Equal(t, []string{"nike.com", "amazon.com", "rei.com", "adidas.com"}, r.Competitors)
}

func TestAssembleCompetitorCap(t *testing.T) {
	c := testCluster(1, "running shoes", 1000, 2000, 50, 1.0)
	for i := 0; i < 20; i++ {
		c.CompetitorDomains = append(c.CompetitorDomains, fmt.Sprintf("site%02d.com", i))
	}

	r := Assemble([]types.Cluster{c}, "https://example.com", "E-commerce", "run-1")

	assert.Len(t, r.Competitors, 15)
}

func TestAssembleEmptyClusters(t *testing.T) {
	r := Assemble(nil, "https://example.com", "E-commerce", "run-1")

	assert.Equal(t, 0, r.AnalysisSummary.TotalMonthlySearchVolume)
	assert.Equal(t, 0.0, r.AnalysisSummary.AvgCPC)
	assert.NotNil(t, r.Clusters)
	assert.Empty(t, r.QuickWins)
	assert.Empty(t, r.Competitors)
}

func TestMarkdownRendering(t *testing.T) {
	a := testCluster(1, "buy running shoes", 1000, 7500, 35, 2.0)
	a.Theme = types.ThemePurchaseIntent
	a.AICompetitors = []string{"nike.com"}

	r := Assemble([]types.Cluster{a}, "https://example.com", "E-commerce", "run-1")
	md := Markdown(r)

	assert.Contains(t, md, "# Keyword Opportunity Report")
	assert.Contains(t, md, "### 1. buy running shoes")
	assert.Contains(t, md, "Purchase Intent")
	assert.Contains(t, md, "## Quick Wins")
	assert.Contains(t, md, "## High Value")
	assert.Contains(t, md, "Competitors: nike.com")
	assert.Contains(t, md, "| buy running shoes | 1000 | $2.00 | 35 | 7500 |")
}

func TestSaveWritesValidatedJSON(t *testing.T) {
	dir := t.TempDir()
	r := Assemble([]types.Cluster{testCluster(1, "running shoes", 1000, 2000, 50, 1.0)},
		"https://example.com", "E-commerce", "run-1")

	result, err := Save(r, SaveOptions{OutputDir: dir})
	require.NoError(t, err)

	expected := filepath.Join(dir,
		fmt.Sprintf("keyword-research-report-%s.json", r.AnalysisSummary.AnalysisDate.Format("2006-01-02")))
	assert.Equal(t, expected, result.JSONPath)
	assert.Empty(t, result.MarkdownPath)

	data, err := os.ReadFile(result.JSONPath)
	require.NoError(t, err)

	var decoded types.Report
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, "running shoes", decoded.Clusters[0].MainKeyword)
}

func TestSaveMarkdownCompanion(t *testing.T) {
	dir := t.TempDir()
	r := Assemble([]types.Cluster{testCluster(1, "running shoes", 1000, 2000, 50, 1.0)},
		"https://example.com", "E-commerce", "run-1")

	result, err := Save(r, SaveOptions{OutputDir: dir, Markdown: true})
	require.NoError(t, err)
	require.NotEmpty(t, result.MarkdownPath)

	data, err := os.ReadFile(result.MarkdownPath)
	require.NoError(t, err)
	assert.Contains(t, string(data), "# Keyword Opportunity Report")
}

func TestSaveRejectsInvalidReport(t *testing.T) {
	dir := t.TempDir()
	r := Assemble(nil, "https://example.com", "E-commerce", "run-1")
	r.AnalysisSummary.RunID = ""

	_, err := Save(r, SaveOptions{OutputDir: dir})

	require.Error(t, err)
	assert.ErrorContains(t, err, "schema validation")
	entries, readErr := os.ReadDir(dir)
	require.NoError(t, readErr)
	assert.Empty(t, entries)
}

func TestSaveCreatesOutputDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "out")
	r := Assemble(nil, "https://example.com", "E-commerce", "run-1")

	_, err := Save(r, SaveOptions{OutputDir: dir})

	require.NoError(t, err)
	assert.DirExists(t, dir)
}
