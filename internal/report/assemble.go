// Package report assembles the final analysis artifact from the cluster
// list and serializes it to disk.
package report

import (
	"math"
	"time"

	"github.com/jonathan/keyword-scout/internal/types"
)

const (
	// trafficCaptureRate is the fixed share of total search volume assumed
	// reachable, in place of a per-position click curve.
	trafficCaptureRate = 0.3
	// quickWinDifficultyCeiling marks clusters realistic to rank for soon.
	quickWinDifficultyCeiling = 40
	// highValueScoreFloor marks clusters worth prioritizing on revenue.
	highValueScoreFloor = 1000
	maxQuickWins        = 8
	maxHighValue        = 8
	maxCompetitors      = 15
)

// Assemble derives the full report from the final cluster list. All figures
// are pure aggregation; Assemble never mutates its input.
func Assemble(clusters []types.Cluster, websiteURL, businessType, runID string) *types.Report {
	totalVolume := 0
	totalKeywords := 0
	cpcSum := 0.0
	for _, c := range clusters {
		totalVolume += c.TotalSearchVolume
		totalKeywords += len(c.Keywords)
		cpcSum += c.AvgCPC
	}

	avgCPC := 0.0
	if len(clusters) > 0 {
		avgCPC = cpcSum / float64(len(clusters))
	}

	quickWins := make([]types.Cluster, 0, maxQuickWins)
	for _, c := range clusters {
		if len(quickWins) >= maxQuickWins {
			break
		}
		if c.AvgDifficulty > 0 && c.AvgDifficulty < quickWinDifficultyCeiling {
			quickWins = append(quickWins, c)
		}
	}

	highValue := make([]types.Cluster, 0, maxHighValue)
	for _, c := range clusters {
		if len(highValue) >= maxHighValue {
			break
		}
		if c.TotalCommercialScore > highValueScoreFloor {
			highValue = append(highValue, c)
		}
	}

	if clusters == nil {
		clusters = []types.Cluster{}
	}

	return &types.Report{
		AnalysisSummary: types.AnalysisSummary{
			RunID:                            runID,
			SourceWebsite:                    websiteURL,
			BusinessType:                     businessType,
			AnalysisDate:                     time.Now().UTC(),
			TotalKeywordsAnalyzed:            totalKeywords,
			ClustersIdentified:               len(clusters),
			TotalMonthlySearchVolume:         totalVolume,
			EstimatedMonthlyTrafficPotential: int(math.Round(float64(totalVolume) * trafficCaptureRate)),
			AvgCPC:                           avgCPC,
		},
		Clusters:    clusters,
		QuickWins:   quickWins,
		HighValue:   highValue,
		Competitors: competitorUnion(clusters),
	}
}

// competitorUnion merges SERP-derived and AI-derived competitor domains
// across all clusters, deduplicated in first-seen order.
func competitorUnion(clusters []types.Cluster) []string {
	seen := make(map[string]struct{})
	competitors := make([]string, 0, maxCompetitors)

	add := func(domain string) {
		if domain == "" || len(competitors) >= maxCompetitors {
			return
		}
		if _, ok := seen[domain]; ok {
			return
		}
		seen[domain] = struct{}{}
		competitors = append(competitors, domain)
	}

	for _, c := range clusters {
		for _, d := range c.CompetitorDomains {
			add(d)
		}
	}
	for _, c := range clusters {
		for _, d := range c.AICompetitors {
			add(d)
		}
	}
	return competitors
}
