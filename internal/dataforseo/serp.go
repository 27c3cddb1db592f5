package dataforseo

import "context"

// SERP lookup parameters: keywords queried and result depth per keyword.
const (
	maxSERPKeywords = 15
	serpDepth       = 5
	serpDevice      = "desktop"
)

// SERPItem is one ranked organic result for a keyword.
type SERPItem struct {
	URL   string
	Title string
	Rank  int
}

// serpRequest is one SERP task in the request payload.
type serpRequest struct {
	Keyword      string `json:"keyword"`
	LocationCode int    `json:"location_code"`
	LanguageCode string `json:"language_code"`
	Device       string `json:"device"`
	Depth        int    `json:"depth"`
}

// serpTaskEnvelope is the provider response for SERP lookups. Each task
// carries the requested keyword in its data echo.
type serpTaskEnvelope struct {
	Tasks []struct {
		Data struct {
			Keyword string `json:"keyword"`
		} `json:"data"`
		Result []struct {
			Items []serpResponseItem `json:"items"`
		} `json:"result"`
	} `json:"tasks"`
}

type serpResponseItem struct {
	Type         string `json:"type"`
	URL          string `json:"url"`
	Title        string `json:"title"`
	RankGroup    int    `json:"rank_group"`
	RankAbsolute int    `json:"rank_absolute"`
}

// SERP fetches ranked organic results for the first keywords. The returned
// map is keyed by keyword text; keywords whose tasks are missing or malformed
// are simply absent (SERP data is best-effort enrichment).
func (c *Client) SERP(ctx context.Context, keywords []string, locale Locale) (map[string][]SERPItem, error) {
	if len(keywords) > maxSERPKeywords {
		keywords = keywords[:maxSERPKeywords]
	}

	payload := make([]serpRequest, 0, len(keywords))
	for _, keyword := range keywords {
		payload = append(payload, serpRequest{
			Keyword:      keyword,
			LocationCode: locale.LocationCode,
			LanguageCode: locale.LanguageCode,
			Device:       serpDevice,
			Depth:        serpDepth,
		})
	}

	var envelope serpTaskEnvelope
	if err := c.post(ctx, "serp", serpPath, payload, &envelope); err != nil {
		return nil, err
	}

	results := make(map[string][]SERPItem)
	for _, task := range envelope.Tasks {
		if task.Data.Keyword == "" || len(task.Result) == 0 {
			continue
		}

		var organic []SERPItem
		for _, item := range task.Result[0].Items {
			if item.Type != "organic" || item.URL == "" {
				continue
			}
			rank := item.RankGroup
			if rank == 0 {
				rank = item.RankAbsolute
			}
			organic = append(organic, SERPItem{
				URL:   item.URL,
				Title: item.Title,
				Rank:  rank,
			})
		}

		if len(organic) > 0 {
			results[task.Data.Keyword] = organic
		}
	}

	return results, nil
}
