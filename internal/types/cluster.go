package types

// Theme is the thematic intent bucket assigned to a cluster based on the
// wording of its main keyword.
type Theme string

// Theme constants. Serialized values match the report vocabulary consumed
// downstream.
const (
	ThemePurchaseIntent     Theme = "Purchase Intent"
	ThemeResearchComparison Theme = "Research & Comparison"
	ThemeEducational        Theme = "Educational"
	ThemePriceResearch      Theme = "Price Research"
	ThemeGeneral            Theme = "General"
)

// Cluster groups lexically related keywords for reporting. The main keyword
// is always the first member and carries the highest commercial score of the
// cluster at formation time.
type Cluster struct {
	ClusterID   int             `json:"cluster_id"`
	MainKeyword string          `json:"main_keyword"`
	Theme       Theme           `json:"theme"`
	Keywords    []KeywordRecord `json:"keywords"`

	TotalSearchVolume    int     `json:"total_search_volume"`
	AvgCPC               float64 `json:"avg_cpc"`
	AvgDifficulty        float64 `json:"avg_difficulty"`
	TotalCommercialScore int     `json:"total_commercial_score"`

	// CompetitorDomains is the union of SERP domains across member keywords.
	CompetitorDomains []string `json:"competitor_domains"`

	// AICompetitors holds domains from the LLM competitor-research step.
	// Populated only for the top clusters; empty otherwise.
	AICompetitors []string `json:"ai_competitors,omitempty"`
}
