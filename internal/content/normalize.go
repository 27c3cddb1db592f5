// Package content cleans raw scraped page text before it reaches the keyword
// generation prompt: technical and code-like sentences are dropped and the
// remainder is ranked by business-type relevance.
package content

import (
	"regexp"
	"sort"
	"strings"
)

// maxSentences is the number of top-ranked sentences kept for the prompt.
const maxSentences = 10

// MaxPromptChars caps the normalized content passed to the LLM prompt.
const MaxPromptChars = 1500

// technicalTerms flag development jargon that signals scraped docs or code
// rather than customer-facing copy.
var technicalTerms = []string{
	"json", "api", "javascript", "html", "css", "code", "function", "variable",
	"array", "object", "string", "boolean", "null", "undefined", "console",
	"log", "error", "debug", "github", "npm", "node", "react", "vue", "angular",
	"webpack", "babel", "typescript", "php", "python", "java", "sql", "database",
	"server", "localhost", "http", "https", "url", "endpoint", "crud", "rest",
	"graphql", "oauth", "jwt", "cookie", "session", "cache", "cdn", "aws",
	"docker", "kubernetes", "deployment", "pipeline", "repository", "commit",
}

// businessKeywords rank sentences by relevance to the declared business type.
var businessKeywords = map[string][]string{
	"E-commerce":       {"product", "shop", "buy", "sell", "store", "customer", "order", "payment"},
	"SaaS":             {"software", "solution", "platform", "tool", "service", "feature", "plan", "subscription"},
	"Service Business": {"service", "help", "support", "expert", "professional", "consultant", "solution"},
	"Blog/Content":     {"article", "guide", "tips", "learn", "tutorial", "information", "resource"},
	"Education":        {"course", "learn", "training", "education", "student", "class", "certification"},
}

var sentenceSplitPattern = regexp.MustCompile(`[.!?]+`)

// Normalize cleans raw page content for prompt use: sentences with heavy
// technical vocabulary, code markers, or too little text are dropped; the
// survivors are ordered by business-type relevance and the top ones joined.
func Normalize(content, businessType string) string {
	if content == "" {
		return ""
	}

	sentences := sentenceSplitPattern.Split(content, -1)
	kept := make([]string, 0, len(sentences))
	for _, sentence := range sentences {
		if keepSentence(sentence) {
			kept = append(kept, strings.TrimSpace(sentence))
		}
	}

	relevant := businessKeywords[businessType]

	// Stable sort so equally scored sentences keep document order.
	sort.SliceStable(kept, func(i, j int) bool {
		return relevanceScore(kept[i], relevant) > relevanceScore(kept[j], relevant)
	})

	if len(kept) > maxSentences {
		kept = kept[:maxSentences]
	}
	return strings.Join(kept, ". ")
}

// Excerpt truncates normalized content to at most limit characters.
func Excerpt(text string, limit int) string {
	if limit <= 0 || len(text) <= limit {
		return text
	}
	return text[:limit]
}

// keepSentence filters out technical, code-like, and trivially short sentences.
func keepSentence(sentence string) bool {
	trimmed := strings.TrimSpace(sentence)
	if len(trimmed) < 20 {
		return false
	}

	lower := strings.ToLower(trimmed)
	if strings.Contains(lower, "{") || strings.Contains(lower, "[") ||
		strings.Contains(lower, "```") || strings.Contains(lower, "function(") {
		return false
	}

	techCount := 0
	for _, term := range technicalTerms {
		if strings.Contains(lower, term) {
			techCount++
			if techCount > 2 {
				return false
			}
		}
	}
	return true
}

// relevanceScore counts business keyword hits in a sentence.
func relevanceScore(sentence string, keywords []string) int {
	lower := strings.ToLower(sentence)
	score := 0
	for _, keyword := range keywords {
		if strings.Contains(lower, keyword) {
			score++
		}
	}
	return score
}
