// Package aggregate merges direct-lookup and expansion keyword metrics into
// a single deduplicated record set and attaches SERP snapshots to it.
package aggregate

import (
	"github.com/jonathan/keyword-scout/internal/dataforseo"
	"github.com/jonathan/keyword-scout/internal/scoring"
	"github.com/jonathan/keyword-scout/internal/types"
)

// maxExpansionCandidates bounds how many expansion suggestions are even
// considered before the volume filter runs, in provider order.
const maxExpansionCandidates = 500

// maxSERPEntries caps the stored snapshot per keyword regardless of how many
// organic results the provider returns.
const maxSERPEntries = 10

// Merge combines direct seed metrics with expansion suggestions into one
// keyword map keyed by keyword text. Seed keywords are admitted whenever
// they have any search volume; expansion keywords additionally must clear
// minExpansionVolume and must not collide with an existing entry, so a seed
// record always wins over an expansion record for the same text. Every
// record enters the map with a metric-based difficulty and a commercial
// score already computed.
func Merge(direct, expansion []dataforseo.KeywordMetrics, minExpansionVolume int) map[string]*types.KeywordRecord {
	records := make(map[string]*types.KeywordRecord, len(direct)+len(expansion))

	for _, m := range direct {
		if m.SearchVolume <= 0 {
			continue
		}
		records[m.Keyword] = newRecord(m, true)
	}

	candidates := expansion
	if len(candidates) > maxExpansionCandidates {
		candidates = candidates[:maxExpansionCandidates]
	}
	for _, m := range candidates {
		if m.SearchVolume <= minExpansionVolume {
			continue
		}
		if _, exists := records[m.Keyword]; exists {
			continue
		}
		records[m.Keyword] = newRecord(m, false)
	}

	return records
}

func newRecord(m dataforseo.KeywordMetrics, isSeed bool) *types.KeywordRecord {
	level := types.ParseCompetitionLevel(m.CompetitionLevel)
	return &types.KeywordRecord{
		Keyword:           m.Keyword,
		SearchVolume:      m.SearchVolume,
		CPC:               m.CPC,
		Competition:       m.Competition,
		CompetitionLevel:  level,
		KeywordDifficulty: scoring.FallbackDifficulty(m.SearchVolume, m.CPC, m.Competition, level),
		CommercialScore:   scoring.CommercialScore(m.Keyword, m.SearchVolume, m.CPC, m.Competition),
		SERPURLs:          []types.SERPEntry{},
		IsSeed:            isSeed,
	}
}

// AttachSERP stores SERP snapshots on their matching records and recomputes
// difficulty so that SERP-derived estimates replace the metric-based ones.
// SERP results for keywords outside the record set are ignored. At most the
// first ten usable organic results are kept per keyword, even when the
// provider returns more than the requested depth.
func AttachSERP(records map[string]*types.KeywordRecord, serps map[string][]dataforseo.SERPItem) {
	for keyword, items := range serps {
		record, ok := records[keyword]
		if !ok {
			continue
		}
		entries := make([]types.SERPEntry, 0, maxSERPEntries)
		for _, item := range items {
			if len(entries) == maxSERPEntries {
				break
			}
			domain := scoring.ExtractDomain(item.URL)
			if domain == "" {
				continue
			}
			entries = append(entries, types.SERPEntry{
				URL:      item.URL,
				Title:    item.Title,
				Domain:   domain,
				Position: item.Rank,
			})
		}
		record.SERPURLs = entries
		record.KeywordDifficulty = scoring.Difficulty(record)
	}
}
