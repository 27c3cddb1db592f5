// Package scoring computes keyword difficulty and commercial value scores
// from provider metrics and SERP composition.
package scoring

import (
	"math"
	"net/url"
	"strings"

	"github.com/jonathan/keyword-scout/internal/types"
)

// highAuthorityDomains are sites whose presence in a SERP signals it is hard
// to outrank on content alone.
var highAuthorityDomains = map[string]struct{}{
	"wikipedia.org":  {},
	"amazon.com":     {},
	"youtube.com":    {},
	"facebook.com":   {},
	"linkedin.com":   {},
	"reddit.com":     {},
	"quora.com":      {},
	"forbes.com":     {},
	"cnn.com":        {},
	"bbc.com":        {},
	"nytimes.com":    {},
	"yelp.com":       {},
	"trustpilot.com": {},
	"glassdoor.com":  {},
	"indeed.com":     {},
}

// bigBoxDomains are large retail and marketplace sites, weighted slightly
// below the high-authority list.
var bigBoxDomains = map[string]struct{}{
	"walmart.com":   {},
	"target.com":    {},
	"bestbuy.com":   {},
	"homedepot.com": {},
	"lowes.com":     {},
	"costco.com":    {},
	"ebay.com":      {},
	"etsy.com":      {},
	"shopify.com":   {},
}

const maxSERPPositions = 10

// SERPDifficulty estimates ranking difficulty from the composition of the
// top organic results. Each result contributes a weight based on who owns
// the domain, scaled down by position so the first result counts full and
// the tenth barely at all. Returns 0 when no SERP data is available, which
// callers treat as "fall back to metric-based difficulty".
func SERPDifficulty(entries []types.SERPEntry) int {
	if len(entries) == 0 {
		return 0
	}

	score := 0.0
	for i, entry := range entries {
		if i >= maxSERPPositions {
			break
		}
		domain := entry.Domain
		if domain == "" {
			domain = ExtractDomain(entry.URL)
		}
		score += domainWeight(domain) * float64(maxSERPPositions-i) / float64(maxSERPPositions)
	}

	return clampInt(int(math.Round(score)), 0, 100)
}

func domainWeight(domain string) float64 {
	root := rootDomain(domain)
	if _, ok := highAuthorityDomains[root]; ok {
		return 35
	}
	if _, ok := bigBoxDomains[root]; ok {
		return 30
	}
	// Subdomains and long domain names tend to be easier to outrank.
	if strings.Count(domain, ".") > 1 {
		return 20
	}
	if len(domain) > 15 {
		return 15
	}
	return 10
}

func rootDomain(domain string) string {
	parts := strings.Split(domain, ".")
	if len(parts) < 2 {
		return domain
	}
	return strings.Join(parts[len(parts)-2:], ".")
}

// FallbackDifficulty estimates difficulty from advertiser metrics alone,
// for keywords where no SERP snapshot was fetched. The base comes from the
// provider's competition bucket, nudged upward for high volume and high CPC.
func FallbackDifficulty(searchVolume int, cpc float64, competition float64, level types.CompetitionLevel) int {
	if math.IsNaN(cpc) || math.IsNaN(competition) {
		return 30
	}

	var base float64
	switch level {
	case types.CompetitionHigh:
		base = 70
	case types.CompetitionMedium:
		base = 45
	case types.CompetitionLow:
		base = 25
	default:
		base = math.Max(20, competition*100)
	}

	switch {
	case searchVolume > 100000:
		base += 15
	case searchVolume > 10000:
		base += 10
	case searchVolume > 1000:
		base += 5
	}

	switch {
	case cpc > 5:
		base += 10
	case cpc > 2:
		base += 5
	case cpc > 1:
		base += 3
	}

	return clampInt(int(math.Round(base)), 15, 100)
}

// Difficulty picks the SERP-based estimate when one is available and falls
// back to the metric-based estimate otherwise.
func Difficulty(record *types.KeywordRecord) int {
	if serp := SERPDifficulty(record.SERPURLs); serp > 0 {
		return serp
	}
	return FallbackDifficulty(record.SearchVolume, record.CPC, record.Competition, record.CompetitionLevel)
}

// ExtractDomain returns the registrable hostname of a URL with any "www."
// prefix removed, or "" when the URL does not contain a usable host.
func ExtractDomain(rawURL string) string {
	if rawURL == "" {
		return ""
	}
	u, err := url.Parse(rawURL)
	if err != nil || u.Host == "" {
		// SERP payloads occasionally carry bare hostnames without a scheme.
		u, err = url.Parse("https://" + rawURL)
		if err != nil || u.Host == "" {
			return ""
		}
	}
	host := strings.TrimPrefix(strings.ToLower(u.Hostname()), "www.")
	if !strings.Contains(host, ".") || host == "localhost" {
		return ""
	}
	return host
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
