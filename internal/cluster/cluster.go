// Package cluster groups scored keywords into lexical clusters for the
// final report.
package cluster

import (
	"math"
	"sort"
	"strings"

	"github.com/jonathan/keyword-scout/internal/types"
)

const (
	// maxClusterMembers caps how many keywords join a single cluster.
	maxClusterMembers = 10
	// maxClusters caps how many clusters survive into the report.
	maxClusters = 15
	// minSharedTokenLength ignores short filler and modifier words
	// ("best", "top", "how") when comparing keyword texts, so clusters
	// form around subject nouns rather than intent prefixes.
	minSharedTokenLength = 4
)

// Options control cluster formation.
type Options struct {
	// MinVolume excludes keywords at or below this monthly search volume
	// from clustering entirely.
	MinVolume int
}

// Build groups keywords into clusters by lexical overlap. Keywords are
// considered in descending commercial-score order; each unprocessed keyword
// seeds a new cluster and greedily absorbs later keywords that share enough
// significant tokens with it. Clusters are returned sorted by total
// commercial score, at most maxClusters of them.
func Build(records map[string]*types.KeywordRecord, opts Options) []types.Cluster {
	candidates := make([]*types.KeywordRecord, 0, len(records))
	for _, record := range records {
		if record.SearchVolume > opts.MinVolume {
			candidates = append(candidates, record)
		}
	}

	// Secondary ordering by keyword keeps the result deterministic even
	// though the input map iterates in random order.
	sort.SliceStable(candidates, func(i, j int) bool {
		if candidates[i].CommercialScore != candidates[j].CommercialScore {
			return candidates[i].CommercialScore > candidates[j].CommercialScore
		}
		return candidates[i].Keyword < candidates[j].Keyword
	})

	processed := make(map[string]bool, len(candidates))
	var clusters []types.Cluster

	for _, seed := range candidates {
		if processed[seed.Keyword] {
			continue
		}
		processed[seed.Keyword] = true

		c := types.Cluster{
			ClusterID:            len(clusters) + 1,
			MainKeyword:          seed.Keyword,
			Theme:                ClassifyTheme(seed.Keyword),
			Keywords:             []types.KeywordRecord{*seed},
			TotalSearchVolume:    seed.SearchVolume,
			AvgCPC:               seed.CPC,
			AvgDifficulty:        float64(seed.KeywordDifficulty),
			TotalCommercialScore: seed.CommercialScore,
			CompetitorDomains:    seed.Domains(),
		}

		for _, other := range candidates {
			if len(c.Keywords) >= maxClusterMembers {
				break
			}
			if processed[other.Keyword] {
				continue
			}
			if !related(seed.Keyword, other.Keyword) {
				continue
			}
			processed[other.Keyword] = true
			absorb(&c, other)
		}

		clusters = append(clusters, c)
	}

	sort.SliceStable(clusters, func(i, j int) bool {
		return clusters[i].TotalCommercialScore > clusters[j].TotalCommercialScore
	})
	if len(clusters) > maxClusters {
		clusters = clusters[:maxClusters]
	}
	return clusters
}

// absorb adds a keyword to a cluster, updating aggregates. Averages are
// folded in pairwise rather than recomputed over all members, weighting
// recent additions more heavily.
func absorb(c *types.Cluster, record *types.KeywordRecord) {
	c.Keywords = append(c.Keywords, *record)
	c.TotalSearchVolume += record.SearchVolume
	c.TotalCommercialScore += record.CommercialScore
	c.AvgCPC = (c.AvgCPC + record.CPC) / 2
	c.AvgDifficulty = (c.AvgDifficulty + float64(record.KeywordDifficulty)) / 2
	c.CompetitorDomains = unionDomains(c.CompetitorDomains, record.Domains())
}

// related reports whether two keyword texts share enough significant tokens
// to belong together: at least half the token count of the shorter keyword,
// rounded up, counting only tokens longer than minSharedTokenLength.
func related(a, b string) bool {
	tokensA := significantTokens(a)
	tokensB := significantTokens(b)
	if len(tokensA) == 0 || len(tokensB) == 0 {
		return false
	}

	shared := 0
	for token := range tokensB {
		if _, ok := tokensA[token]; ok {
			shared++
		}
	}

	wordsA := len(strings.Fields(a))
	wordsB := len(strings.Fields(b))
	threshold := int(math.Ceil(0.5 * float64(min(wordsA, wordsB))))
	return shared >= threshold
}

func significantTokens(keyword string) map[string]struct{} {
	tokens := make(map[string]struct{})
	for _, token := range strings.Fields(strings.ToLower(keyword)) {
		if len(token) > minSharedTokenLength {
			tokens[token] = struct{}{}
		}
	}
	return tokens
}

func unionDomains(existing, incoming []string) []string {
	seen := make(map[string]struct{}, len(existing))
	for _, d := range existing {
		seen[d] = struct{}{}
	}
	for _, d := range incoming {
		if _, ok := seen[d]; ok {
			continue
		}
		seen[d] = struct{}{}
		existing = append(existing, d)
	}
	return existing
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
