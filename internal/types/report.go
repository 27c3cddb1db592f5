package types

import "time"

// AnalysisSummary holds the top-level figures of a completed run.
type AnalysisSummary struct {
	RunID                            string    `json:"run_id"`
	SourceWebsite                    string    `json:"source_website"`
	BusinessType                     string    `json:"business_type"`
	AnalysisDate                     time.Time `json:"analysis_date"`
	TotalKeywordsAnalyzed            int       `json:"total_keywords_analyzed"`
	ClustersIdentified               int       `json:"clusters_identified"`
	TotalMonthlySearchVolume         int       `json:"total_monthly_search_volume"`
	EstimatedMonthlyTrafficPotential int       `json:"estimated_monthly_traffic_potential"`
	AvgCPC                           float64   `json:"avg_cpc"`
}

// Report is the final output artifact of a pipeline run.
type Report struct {
	AnalysisSummary AnalysisSummary `json:"analysis_summary"`
	Clusters        []Cluster       `json:"clusters"`

	// QuickWins are clusters with low estimated difficulty, suggesting
	// near-term ranking feasibility.
	QuickWins []Cluster `json:"quick_wins"`

	// HighValue are clusters whose total commercial score clears the
	// high-value threshold.
	HighValue []Cluster `json:"high_value"`

	// Competitors is the deduplicated union of SERP-derived and AI-derived
	// competitor domains across all clusters, capped for display.
	Competitors []string `json:"competitors"`
}
