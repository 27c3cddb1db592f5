// Package research enriches top clusters with LLM-sourced competitor
// domains.
package research

import (
	"context"
	"log"
	"strings"
	"time"

	"golang.org/x/time/rate"

	"github.com/jonathan/keyword-scout/internal/llm"
	"github.com/jonathan/keyword-scout/internal/prompts"
	"github.com/jonathan/keyword-scout/internal/types"
)

const (
	// maxResearchedClusters bounds how many clusters get an LLM query.
	maxResearchedClusters = 8
	// maxPromptKeywords is how many member keywords go into the prompt.
	maxPromptKeywords = 5
	// maxCompetitorsPerCluster caps the accepted domains per cluster.
	maxCompetitorsPerCluster = 8
)

// requestInterval paces requests to stay under provider rate limits.
var requestInterval = 500 * time.Millisecond

// Competitors queries the LLM for competitor domains of the top clusters,
// writing results into each cluster's AICompetitors field in place. The
// step is best-effort: a failed query or unparseable response leaves that
// cluster with an empty competitor list and the run continues.
func Competitors(ctx context.Context, client llm.Client, clusters []types.Cluster, businessType string) []types.Cluster {
	limiter := rate.NewLimiter(rate.Every(requestInterval), 1)

	count := len(clusters)
	if count > maxResearchedClusters {
		count = maxResearchedClusters
	}

	for i := 0; i < count; i++ {
		cluster := &clusters[i]
		if err := limiter.Wait(ctx); err != nil {
			cluster.AICompetitors = []string{}
			continue
		}

		domains, err := researchCluster(ctx, client, cluster, businessType)
		if err != nil {
			log.Printf("competitor research failed for %q: %v", cluster.MainKeyword, err)
			cluster.AICompetitors = []string{}
			continue
		}
		cluster.AICompetitors = domains
	}

	return clusters
}

func researchCluster(ctx context.Context, client llm.Client, cluster *types.Cluster, businessType string) ([]string, error) {
	keywords := make([]string, 0, maxPromptKeywords)
	for _, kw := range cluster.Keywords {
		if len(keywords) >= maxPromptKeywords {
			break
		}
		keywords = append(keywords, kw.Keyword)
	}

	system := prompts.Format(prompts.MustGet("research.json", "competitive-intel-system"), map[string]string{
		"BusinessType": businessType,
	})
	prompt := prompts.Format(prompts.MustGet("research.json", "competitor-research"), map[string]string{
		"BusinessType": businessType,
		"Keywords":     strings.Join(keywords, ", "),
	})

	response, err := client.GenerateContent(ctx, system, prompt, llm.TierStandard)
	if err != nil {
		return nil, err
	}

	decoded := llm.DecodeStringList(response)
	domains := make([]string, 0, maxCompetitorsPerCluster)
	for _, raw := range decoded.Items {
		if len(domains) >= maxCompetitorsPerCluster {
			break
		}
		domain := NormalizeDomain(raw)
		if domain == "" {
			continue
		}
		domains = append(domains, domain)
	}
	return domains, nil
}

// NormalizeDomain reduces an LLM-returned competitor entry to a bare lowercase
// domain, or "" when the entry does not look like one. Scheme prefixes, a
// leading "www.", and any path suffix are stripped before validation.
func NormalizeDomain(raw string) string {
	domain := strings.TrimSpace(raw)
	domain = strings.TrimPrefix(domain, "https://")
	domain = strings.TrimPrefix(domain, "http://")
	domain = strings.TrimPrefix(domain, "www.")
	if idx := strings.Index(domain, "/"); idx >= 0 {
		domain = domain[:idx]
	}
	domain = strings.ToLower(domain)

	if !strings.Contains(domain, ".") || strings.ContainsAny(domain, " \t") {
		return ""
	}
	if len(domain) <= 3 || len(domain) >= 50 {
		return ""
	}
	return domain
}
