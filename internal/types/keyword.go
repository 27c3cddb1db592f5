// Package types defines the shared data structures passed between pipeline stages.
package types

import "strings"

// CompetitionLevel is the advertiser-competition bucket reported by the
// metrics provider for a keyword.
type CompetitionLevel string

// Competition level constants as reported by the metrics provider.
const (
	CompetitionLow     CompetitionLevel = "LOW"
	CompetitionMedium  CompetitionLevel = "MEDIUM"
	CompetitionHigh    CompetitionLevel = "HIGH"
	CompetitionUnknown CompetitionLevel = "UNKNOWN"
)

// ParseCompetitionLevel maps a raw provider string to a CompetitionLevel.
// Anything unrecognized (including empty) maps to CompetitionUnknown.
func ParseCompetitionLevel(raw string) CompetitionLevel {
	switch strings.ToUpper(strings.TrimSpace(raw)) {
	case "LOW":
		return CompetitionLow
	case "MEDIUM":
		return CompetitionMedium
	case "HIGH":
		return CompetitionHigh
	default:
		return CompetitionUnknown
	}
}

// SERPEntry is one organic search result for a keyword, most relevant first.
type SERPEntry struct {
	URL      string `json:"url"`
	Title    string `json:"title"`
	Domain   string `json:"domain"`
	Position int    `json:"position"`
}

// KeywordRecord is the atomic unit of the pipeline: one keyword with its
// metrics, SERP snapshot, and derived scores.
type KeywordRecord struct {
	Keyword           string           `json:"keyword"`
	SearchVolume      int              `json:"search_volume"`
	CPC               float64          `json:"cpc"`
	Competition       float64          `json:"competition"`
	CompetitionLevel  CompetitionLevel `json:"competition_level"`
	KeywordDifficulty int              `json:"keyword_difficulty"`
	SERPURLs          []SERPEntry      `json:"serp_urls"`
	CommercialScore   int              `json:"commercial_score"`

	// IsSeed is true when the keyword came directly from the generated seed
	// list, false when discovered via expansion. A seed record is never
	// overwritten by an expansion record for the same keyword text.
	IsSeed bool `json:"is_seed"`
}

// Domains returns the non-empty SERP domains for this keyword, in rank order.
func (k *KeywordRecord) Domains() []string {
	domains := make([]string, 0, len(k.SERPURLs))
	for _, entry := range k.SERPURLs {
		if entry.Domain != "" {
			domains = append(domains, entry.Domain)
		}
	}
	return domains
}
