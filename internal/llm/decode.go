// Package llm - decode.go provides tolerant decoding of list-shaped LLM output.
package llm

import (
	"encoding/json"
	"regexp"
	"strings"
)

// DecodePath identifies which decoding strategy produced a result. Useful for
// observability and for tests that pin fallback behavior.
type DecodePath string

const (
	// DecodePathJSON means the response parsed as a strict JSON array.
	DecodePathJSON DecodePath = "json"
	// DecodePathLines means JSON parsing failed and items were recovered by
	// heuristic line extraction.
	DecodePathLines DecodePath = "lines"
)

// StringListResult is the tagged outcome of a list decode attempt.
type StringListResult struct {
	Items []string
	Path  DecodePath
}

var (
	// listMarkerPattern strips leading numbering, bullets, and quote noise
	// from a line ("1. foo", "- foo", "* \"foo\",").
	listMarkerPattern = regexp.MustCompile(`^[\d\-\*\.\s\[\]"'` + "`" + `]+`)
	// quoteNoisePattern removes stray quotes and brackets anywhere in a line.
	quoteNoisePattern = regexp.MustCompile(`["'\]\[` + "`" + `]`)
)

// DecodeStringList decodes an LLM response that nominally contains a JSON
// array of strings. It first strips code-fence wrappers and attempts strict
// JSON parsing; on failure it falls back to line-based extraction with
// punctuation stripping. The result reports which path succeeded. An empty
// item list is not an error here; callers decide whether that is fatal.
func DecodeStringList(response string) StringListResult {
	text := stripFence(response)

	// Strict path: the whole payload is a JSON array.
	var items []string
	if err := json.Unmarshal([]byte(text), &items); err == nil {
		return StringListResult{Items: trimNonEmpty(items), Path: DecodePathJSON}
	}

	// The array may be embedded in trailing prose. Try the first bracketed
	// region before giving up on JSON entirely.
	if start := strings.Index(text, "["); start >= 0 {
		if end := strings.LastIndex(text, "]"); end > start {
			if err := json.Unmarshal([]byte(text[start:end+1]), &items); err == nil {
				return StringListResult{Items: trimNonEmpty(items), Path: DecodePathJSON}
			}
		}
	}

	return StringListResult{Items: extractLines(text), Path: DecodePathLines}
}

// stripFence unwraps a markdown code fence around the payload. Gemini fences
// keyword and competitor lists as ```json blocks even when the prompt asks
// for a bare array, so this runs before any parse attempt.
func stripFence(text string) string {
	text = strings.TrimSpace(text)
	if !strings.HasPrefix(text, "```") {
		return text
	}

	body := strings.TrimPrefix(text, "```")
	// The opening line may carry a language tag ("json", "text"). Anything
	// with spaces or JSON punctuation is payload, not a tag.
	if nl := strings.IndexByte(body, '\n'); nl >= 0 {
		tag := strings.TrimSpace(body[:nl])
		if tag == "" || (len(tag) < 20 && !strings.ContainsAny(tag, " {[\"")) {
			body = body[nl+1:]
		}
	}
	if end := strings.LastIndex(body, "```"); end >= 0 {
		body = body[:end]
	}
	return strings.TrimSpace(body)
}

// extractLines recovers list items from free text, one per line.
func extractLines(text string) []string {
	var items []string
	for _, line := range strings.Split(text, "\n") {
		item := listMarkerPattern.ReplaceAllString(line, "")
		item = quoteNoisePattern.ReplaceAllString(item, "")
		item = strings.TrimSuffix(strings.TrimSpace(item), ",")
		item = strings.TrimSpace(item)

		if len(item) <= 3 || len(item) >= 100 {
			continue
		}
		if strings.Contains(strings.ToLower(item), "json") {
			continue
		}
		items = append(items, item)
	}
	return items
}

func trimNonEmpty(items []string) []string {
	out := make([]string, 0, len(items))
	for _, item := range items {
		item = strings.TrimSpace(item)
		if item != "" {
			out = append(out, item)
		}
	}
	return out
}
