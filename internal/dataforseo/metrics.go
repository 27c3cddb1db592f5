package dataforseo

import "context"

// Caps applied to provider requests, matching the documented plan limits the
// tool was built against.
const (
	maxExpansionSeeds = 20
	expansionLimit    = 1000
)

// KeywordMetrics is one normalized volume/cpc/competition record.
type KeywordMetrics struct {
	Keyword          string
	SearchVolume     int
	CPC              float64
	Competition      float64
	CompetitionLevel string
}

// metricsTaskEnvelope is the provider response for metric lookups. Numeric
// fields are pointers so absent or null values degrade to defaults instead of
// failing the decode.
type metricsTaskEnvelope struct {
	Tasks []struct {
		Result []metricsItem `json:"result"`
	} `json:"tasks"`
}

type metricsItem struct {
	Keyword          string   `json:"keyword"`
	SearchVolume     *int     `json:"search_volume"`
	CPC              *float64 `json:"cpc"`
	Competition      *float64 `json:"competition"`
	CompetitionLevel string   `json:"competition_level"`
}

// volumeRequest is the shared request shape for metric lookups.
type volumeRequest struct {
	Keywords     []string `json:"keywords"`
	LocationCode int      `json:"location_code"`
	LanguageCode string   `json:"language_code"`
	Limit        int      `json:"limit,omitempty"`
	OrderBy      []string `json:"order_by,omitempty"`
}

// SearchVolume fetches volume/cpc/competition for exactly the given keywords.
// An entirely missing result array is a stage failure; individual malformed
// entries degrade to defaults.
func (c *Client) SearchVolume(ctx context.Context, keywords []string, locale Locale) ([]KeywordMetrics, error) {
	payload := []volumeRequest{{
		Keywords:     keywords,
		LocationCode: locale.LocationCode,
		LanguageCode: locale.LanguageCode,
	}}

	var envelope metricsTaskEnvelope
	if err := c.post(ctx, "search volume", searchVolumePath, payload, &envelope); err != nil {
		return nil, err
	}

	if len(envelope.Tasks) == 0 || envelope.Tasks[0].Result == nil {
		return nil, &Error{Operation: "search volume", Message: "response contains no result array"}
	}

	return normalizeItems(envelope.Tasks[0].Result), nil
}

// RelatedKeywords fetches expansion keywords for the first seeds, ordered by
// volume descending. An empty result is not an error: expansion is an
// enrichment source, not a required one.
func (c *Client) RelatedKeywords(ctx context.Context, seeds []string, locale Locale) ([]KeywordMetrics, error) {
	if len(seeds) > maxExpansionSeeds {
		seeds = seeds[:maxExpansionSeeds]
	}

	payload := []volumeRequest{{
		Keywords:     seeds,
		LocationCode: locale.LocationCode,
		LanguageCode: locale.LanguageCode,
		Limit:        expansionLimit,
		OrderBy:      []string{"search_volume,desc"},
	}}

	var envelope metricsTaskEnvelope
	if err := c.post(ctx, "related keywords", expansionPath, payload, &envelope); err != nil {
		return nil, err
	}

	if len(envelope.Tasks) == 0 {
		return nil, nil
	}
	return normalizeItems(envelope.Tasks[0].Result), nil
}

// normalizeItems converts raw provider items to KeywordMetrics, applying
// defaults for absent fields and dropping entries without a keyword.
func normalizeItems(items []metricsItem) []KeywordMetrics {
	metrics := make([]KeywordMetrics, 0, len(items))
	for _, item := range items {
		if item.Keyword == "" {
			continue
		}
		metrics = append(metrics, KeywordMetrics{
			Keyword:          item.Keyword,
			SearchVolume:     intOrZero(item.SearchVolume),
			CPC:              floatOrZero(item.CPC),
			Competition:      floatOrZero(item.Competition),
			CompetitionLevel: item.CompetitionLevel,
		})
	}
	return metrics
}

func intOrZero(v *int) int {
	if v == nil {
		return 0
	}
	return *v
}

func floatOrZero(v *float64) float64 {
	if v == nil {
		return 0
	}
	return *v
}
