package keywords

import (
	"regexp"
	"strings"
)

// technicalTerms disqualify a candidate keyword outright: real customers do
// not search for development vocabulary when looking for a business.
var technicalTerms = []string{
	"json", "api", "javascript", "html", "css", "code", "coding", "programming",
	"developer", "development", "framework", "library", "function", "variable",
	"array", "object", "string", "boolean", "null", "undefined", "console",
	"log", "error", "debug", "github", "npm", "node", "react", "vue", "angular",
	"webpack", "babel", "typescript", "php", "python", "java", "sql", "database",
	"server", "localhost", "http", "https", "url", "endpoint", "crud", "rest",
	"graphql", "oauth", "jwt", "cookie", "session", "cache", "cdn", "aws",
	"docker", "kubernetes", "deployment", "pipeline", "repository", "commit",
	"markdown", "syntax", "script", "tag", "element", "attribute", "dom",
	"cli", "terminal", "command", "install", "package", "module", "import",
}

// genericTerms are single words too vague to target.
var genericTerms = []string{"data", "information", "content", "text", "format", "file"}

// codeCharacterPattern spots code-ish punctuation inside a keyword.
var codeCharacterPattern = regexp.MustCompile("[{}\\[\\]<>()=+\\-*/\\\\|&^%$#@!~`]")

// FilterTechnical removes technical, code-like, and generic candidates from
// an LLM-generated keyword list.
func FilterTechnical(candidates []string) []string {
	filtered := make([]string, 0, len(candidates))
	for _, keyword := range candidates {
		if isUsableKeyword(keyword) {
			filtered = append(filtered, keyword)
		}
	}
	return filtered
}

func isUsableKeyword(keyword string) bool {
	if len(keyword) <= 2 {
		return false
	}

	lower := strings.ToLower(strings.TrimSpace(keyword))

	for _, term := range technicalTerms {
		if strings.Contains(lower, term) {
			return false
		}
	}

	if codeCharacterPattern.MatchString(keyword) ||
		strings.Contains(keyword, "```") ||
		strings.HasPrefix(keyword, "function") ||
		strings.HasPrefix(keyword, "var ") ||
		strings.HasPrefix(keyword, "const ") ||
		strings.HasPrefix(keyword, "let ") {
		return false
	}

	for _, term := range genericTerms {
		if lower == term {
			return false
		}
	}

	return true
}
