package cluster

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/keyword-scout/internal/types"
)

func record(keyword string, volume, difficulty, score int, cpc float64) *types.KeywordRecord {
	return &types.KeywordRecord{
		Keyword:           keyword,
		SearchVolume:      volume,
		CPC:               cpc,
		KeywordDifficulty: difficulty,
		CommercialScore:   score,
	}
}

func recordMap(records ...*types.KeywordRecord) map[string]*types.KeywordRecord {
	m := make(map[string]*types.KeywordRecord, len(records))
	for _, r := range records {
		m[r.Keyword] = r
	}
	return m
}

func TestBuildGroupsRelatedKeywords(t *testing.T) {
	records := recordMap(
		record("running shoes", 5000, 40, 9000, 1.5),
		record("trail running shoes", 2000, 35, 4000, 1.2),
		record("garden hose", 800, 20, 500, 0.6),
	)

	clusters := Build(records, Options{MinVolume: 20})

	require.Len(t, clusters, 2)
	assert.Equal(t, "running shoes", clusters[0].MainKeyword)
	require.Len(t, clusters[0].Keywords, 2)
	assert.Equal(t, "trail running shoes", clusters[0].Keywords[1].Keyword)
	assert.Equal(t, "garden hose", clusters[1].MainKeyword)
}

func TestBuildModifierWordsDoNotLink(t *testing.T) {
	// "best" is too short to count as a shared token, and "shoes" alone is
	// below the two-token threshold for three-word keywords.
	records := recordMap(
		record("best running shoes", 5000, 40, 9000, 1.5),
		record("best hiking shoes", 3000, 35, 6000, 1.2),
	)

	clusters := Build(records, Options{MinVolume: 20})

	require.Len(t, clusters, 2)
	assert.Len(t, clusters[0].Keywords, 1)
	assert.Len(t, clusters[1].Keywords, 1)
}

func TestBuildVolumeFloor(t *testing.T) {
	records := recordMap(
		record("running shoes", 5000, 40, 9000, 1.5),
		record("running shoes near me", 20, 30, 200, 0.9),
	)

	clusters := Build(records, Options{MinVolume: 20})

	require.Len(t, clusters, 1)
	assert.Len(t, clusters[0].Keywords, 1)
}

func TestBuildAggregates(t *testing.T) {
	a := record("running shoes", 5000, 40, 9000, 2.0)
	a.SERPURLs = []types.SERPEntry{{Domain: "nike.com"}, {Domain: "amazon.com"}}
	b := record("trail running shoes", 2000, 20, 4000, 1.0)
	b.SERPURLs = []types.SERPEntry{{Domain: "amazon.com"}, {Domain: "rei.com"}}

	clusters := Build(recordMap(a, b), Options{MinVolume: 20})

	require.Len(t, clusters, 1)
	c := clusters[0]
	assert.Equal(t, 1, c.ClusterID)
	assert.Equal(t, 7000, c.TotalSearchVolume)
	assert.Equal(t, 13000, c.TotalCommercialScore)
	// Pairwise folding: (2.0+1.0)/2 and (40+20)/2.
	assert.Equal(t, 1.5, c.AvgCPC)
	assert.Equal(t, 30.0, c.AvgDifficulty)
	assert.ElementsMatch(t, []string{"nike.com", "amazon.com", "rei.com"}, c.CompetitorDomains)
}

func TestBuildPairwiseAverageOrderSensitivity(t *testing.T) {
	// With three members the running average weights later additions more
	// heavily: ((10+20)/2 + 40)/2 = 27.5, not the true mean 23.33.
	a := record("running shoes", 5000, 10, 9000, 0)
	b := record("trail running shoes", 2000, 20, 4000, 0)
	c := record("road running shoes", 1000, 40, 2000, 0)

	clusters := Build(recordMap(a, b, c), Options{MinVolume: 20})

	require.Len(t, clusters, 1)
	assert.Equal(t, 27.5, clusters[0].AvgDifficulty)
}

func TestBuildMemberCap(t *testing.T) {
	records := make(map[string]*types.KeywordRecord)
	for i := 0; i < 14; i++ {
		kw := fmt.Sprintf("running shoes style%02d", i)
		records[kw] = record(kw, 1000, 30, 2000-i, 1.0)
	}

	clusters := Build(records, Options{MinVolume: 20})

	require.NotEmpty(t, clusters)
	assert.Len(t, clusters[0].Keywords, maxClusterMembers)
}

func TestBuildClusterCapAndOrdering(t *testing.T) {
	records := make(map[string]*types.KeywordRecord)
	for i := 0; i < 20; i++ {
		// Unrelated keywords so each forms a singleton cluster.
		kw := fmt.Sprintf("topic%02d alpha%02d", i, i)
		records[kw] = record(kw, 1000, 30, 100*(i+1), 1.0)
	}

	clusters := Build(records, Options{MinVolume: 20})

	require.Len(t, clusters, maxClusters)
	for i := 1; i < len(clusters); i++ {
		assert.GreaterOrEqual(t, clusters[i-1].TotalCommercialScore, clusters[i].TotalCommercialScore)
	}
	assert.Equal(t, 2000, clusters[0].TotalCommercialScore)
}

func TestBuildEachKeywordInOneCluster(t *testing.T) {
	records := recordMap(
		record("running shoes", 5000, 40, 9000, 1.5),
		record("trail running shoes", 2000, 35, 4000, 1.2),
		record("running shoes women", 1500, 30, 3000, 1.1),
		record("garden hose", 800, 20, 500, 0.6),
	)

	clusters := Build(records, Options{MinVolume: 20})

	seen := make(map[string]int)
	for _, c := range clusters {
		for _, kw := range c.Keywords {
			seen[kw.Keyword]++
		}
	}
	for kw, count := range seen {
		assert.Equal(t, 1, count, "keyword %q appears in %d clusters", kw, count)
	}
	assert.Len(t, seen, len(records))
}

func TestBuildIdempotent(t *testing.T) {
	records := recordMap(
		record("running shoes", 5000, 40, 9000, 1.5),
		record("trail running shoes", 2000, 35, 4000, 1.2),
		record("running shoes women", 1500, 30, 3000, 1.1),
	)

	first := Build(records, Options{MinVolume: 20})
	second := Build(records, Options{MinVolume: 20})

	assert.Equal(t, first, second)
}

func TestBuildEmptyInput(t *testing.T) {
	assert.Empty(t, Build(nil, Options{MinVolume: 20}))
}

func TestClassifyTheme(t *testing.T) {
	assert.Equal(t, types.ThemePurchaseIntent, ClassifyTheme("buy running shoes"))
	assert.Equal(t, types.ThemeResearchComparison, ClassifyTheme("best running shoes"))
	assert.Equal(t, types.ThemeEducational, ClassifyTheme("how to clean shoes"))
	assert.Equal(t, types.ThemeEducational, ClassifyTheme("shoe sizing guide"))
	assert.Equal(t, types.ThemePriceResearch, ClassifyTheme("running shoes price"))
	assert.Equal(t, types.ThemeGeneral, ClassifyTheme("running shoes"))
	// First match wins over later rules.
	assert.Equal(t, types.ThemePurchaseIntent, ClassifyTheme("best place to buy shoes"))
}
