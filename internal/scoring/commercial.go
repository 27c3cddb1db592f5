package scoring

import (
	"math"
	"strings"
)

// intentMultiplier is an ordered rule: the first matching group of trigger
// phrases decides the multiplier, so "best price to buy" scores as purchase
// intent rather than price research.
type intentMultiplier struct {
	triggers   []string
	multiplier float64
}

var intentMultipliers = []intentMultiplier{
	{triggers: []string{"buy", "purchase", "order"}, multiplier: 2.5},
	{triggers: []string{"best", "top", "review"}, multiplier: 2.0},
	{triggers: []string{"price", "cost", "cheap"}, multiplier: 1.8},
	{triggers: []string{"hire", "service", "company"}, multiplier: 1.6},
	{triggers: []string{"how to", "what is"}, multiplier: 0.8},
}

// IntentMultiplier classifies purchase intent from keyword phrasing. Keywords
// with no intent trigger get a neutral 1.0.
func IntentMultiplier(keyword string) float64 {
	lower := strings.ToLower(keyword)
	for _, rule := range intentMultipliers {
		for _, trigger := range rule.triggers {
			if strings.Contains(lower, trigger) {
				return rule.multiplier
			}
		}
	}
	return 1.0
}

// CommercialScore estimates the monthly revenue opportunity of a keyword:
// volume times effective CPC, amplified by stated intent and advertiser
// competition. Defective metrics are replaced with conservative defaults so
// every keyword gets a usable score. The floor of 10 keeps zero-volume seed
// keywords sortable.
func CommercialScore(keyword string, searchVolume int, cpc float64, competition float64) int {
	volume := float64(searchVolume)
	if volume <= 0 || math.IsNaN(volume) {
		volume = 100
	}
	if math.IsNaN(cpc) {
		cpc = 0.5
	}
	if math.IsNaN(competition) {
		competition = 0.3
	}

	score := volume * math.Max(0.1, cpc) * IntentMultiplier(keyword) * (1 + competition)
	result := int(math.Round(score))
	if result < 10 {
		return 10
	}
	return result
}
