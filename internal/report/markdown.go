package report

import (
	"fmt"
	"strings"

	"github.com/jonathan/keyword-scout/internal/types"
)

// Markdown renders the report as a human-readable document alongside the
// JSON artifact.
func Markdown(report *types.Report) string {
	var sb strings.Builder
	summary := report.AnalysisSummary

	sb.WriteString("# Keyword Opportunity Report\n\n")
	fmt.Fprintf(&sb, "- **Website:** %s\n", summary.SourceWebsite)
	fmt.Fprintf(&sb, "- **Business type:** %s\n", summary.BusinessType)
	fmt.Fprintf(&sb, "- **Analysis date:** %s\n", summary.AnalysisDate.Format("2006-01-02"))
	fmt.Fprintf(&sb, "- **Run ID:** %s\n\n", summary.RunID)

	sb.WriteString("## Summary\n\n")
	fmt.Fprintf(&sb, "| Metric | Value |\n|---|---|\n")
	fmt.Fprintf(&sb, "| Keywords analyzed | %d |\n", summary.TotalKeywordsAnalyzed)
	fmt.Fprintf(&sb, "| Clusters identified | %d |\n", summary.ClustersIdentified)
	fmt.Fprintf(&sb, "| Total monthly search volume | %d |\n", summary.TotalMonthlySearchVolume)
	fmt.Fprintf(&sb, "| Estimated monthly traffic potential | %d |\n", summary.EstimatedMonthlyTrafficPotential)
	fmt.Fprintf(&sb, "| Average CPC | $%.2f |\n\n", summary.AvgCPC)

	sb.WriteString("## Keyword Clusters\n\n")
	for _, cluster := range report.Clusters {
		writeCluster(&sb, cluster)
	}

	if len(report.QuickWins) > 0 {
		sb.WriteString("## Quick Wins\n\n")
		sb.WriteString("Clusters with low average difficulty, realistic to target first:\n\n")
		for _, cluster := range report.QuickWins {
			fmt.Fprintf(&sb, "- **%s** (difficulty %.0f, volume %d)\n",
				cluster.MainKeyword, cluster.AvgDifficulty, cluster.TotalSearchVolume)
		}
		sb.WriteString("\n")
	}

	if len(report.HighValue) > 0 {
		sb.WriteString("## High Value\n\n")
		sb.WriteString("Clusters with the strongest commercial signals:\n\n")
		for _, cluster := range report.HighValue {
			fmt.Fprintf(&sb, "- **%s** (score %d, avg CPC $%.2f)\n",
				cluster.MainKeyword, cluster.TotalCommercialScore, cluster.AvgCPC)
		}
		sb.WriteString("\n")
	}

	if len(report.Competitors) > 0 {
		sb.WriteString("## Competitors\n\n")
		for _, domain := range report.Competitors {
			fmt.Fprintf(&sb, "- %s\n", domain)
		}
		sb.WriteString("\n")
	}

	return sb.String()
}

func writeCluster(sb *strings.Builder, cluster types.Cluster) {
	fmt.Fprintf(sb, "### %d. %s\n\n", cluster.ClusterID, cluster.MainKeyword)
	fmt.Fprintf(sb, "- **Theme:** %s\n", cluster.Theme)
	fmt.Fprintf(sb, "- **Total volume:** %d\n", cluster.TotalSearchVolume)
	fmt.Fprintf(sb, "- **Avg CPC:** $%.2f\n", cluster.AvgCPC)
	fmt.Fprintf(sb, "- **Avg difficulty:** %.0f\n", cluster.AvgDifficulty)
	fmt.Fprintf(sb, "- **Commercial score:** %d\n\n", cluster.TotalCommercialScore)

	sb.WriteString("| Keyword | Volume | CPC | Difficulty | Score |\n")
	sb.WriteString("|---|---|---|---|---|\n")
	for _, kw := range cluster.Keywords {
		fmt.Fprintf(sb, "| %s | %d | $%.2f | %d | %d |\n",
			kw.Keyword, kw.SearchVolume, kw.CPC, kw.KeywordDifficulty, kw.CommercialScore)
	}
	sb.WriteString("\n")

	if len(cluster.AICompetitors) > 0 {
		fmt.Fprintf(sb, "Competitors: %s\n\n", strings.Join(cluster.AICompetitors, ", "))
	}
}
