package cluster

import (
	"strings"

	"github.com/jonathan/keyword-scout/internal/types"
)

type themeRule struct {
	triggers []string
	theme    types.Theme
}

// Theme rules are ordered: the first group with a matching trigger names the
// cluster, so a keyword like "best way to buy" reads as purchase intent.
var themeRules = []themeRule{
	{triggers: []string{"buy", "purchase"}, theme: types.ThemePurchaseIntent},
	{triggers: []string{"best", "top", "review"}, theme: types.ThemeResearchComparison},
	{triggers: []string{"how to", "guide"}, theme: types.ThemeEducational},
	{triggers: []string{"price", "cost"}, theme: types.ThemePriceResearch},
}

// ClassifyTheme labels a cluster by the intent signals in its main keyword.
func ClassifyTheme(mainKeyword string) types.Theme {
	lower := strings.ToLower(mainKeyword)
	for _, rule := range themeRules {
		for _, trigger := range rule.triggers {
			if strings.Contains(lower, trigger) {
				return rule.theme
			}
		}
	}
	return types.ThemeGeneral
}
