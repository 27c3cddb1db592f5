package content

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize_DropsTechnicalSentences(t *testing.T) {
	raw := "We craft handmade leather boots for everyday wear. " +
		"Use the json api endpoint with an oauth jwt token to query the database."

	cleaned := Normalize(raw, "E-commerce")

	assert.Contains(t, cleaned, "handmade leather boots")
	assert.NotContains(t, cleaned, "oauth")
}

func TestNormalize_DropsShortSentences(t *testing.T) {
	raw := "Too short. Our store carries a wide range of quality leather goods."

	cleaned := Normalize(raw, "E-commerce")

	assert.NotContains(t, cleaned, "Too short")
	assert.Contains(t, cleaned, "quality leather goods")
}

func TestNormalize_DropsCodeLikeSentences(t *testing.T) {
	raw := "Our products ship worldwide within two days of ordering. " +
		"Configure the widget with { enabled: true } before deploying to production."

	cleaned := Normalize(raw, "E-commerce")

	assert.Contains(t, cleaned, "ship worldwide")
	assert.NotContains(t, cleaned, "enabled: true")
}

func TestNormalize_PrioritizesBusinessRelevantSentences(t *testing.T) {
	raw := "The weather around here changes quickly in the spring months. " +
		"Customers can buy any product from our store and pay by card order."

	cleaned := Normalize(raw, "E-commerce")

	// The sentence dense in e-commerce vocabulary must sort first.
	assert.True(t, strings.Index(cleaned, "Customers can buy") < strings.Index(cleaned, "weather"))
}

func TestNormalize_CapsSentenceCount(t *testing.T) {
	var sb strings.Builder
	for i := 0; i < 30; i++ {
		sb.WriteString("Our shop sells quality products to loyal customers every day. ")
	}

	cleaned := Normalize(sb.String(), "E-commerce")

	assert.Equal(t, maxSentences, strings.Count(cleaned, ". ")+1)
}

func TestNormalize_Empty(t *testing.T) {
	assert.Equal(t, "", Normalize("", "SaaS"))
}

func TestNormalize_UnknownBusinessTypeStillWorks(t *testing.T) {
	raw := "We offer bespoke carpentry for homes and offices across the region."
	cleaned := Normalize(raw, "Carpentry")
	assert.Contains(t, cleaned, "bespoke carpentry")
}

func TestExcerpt(t *testing.T) {
	assert.Equal(t, "abc", Excerpt("abc", 10))
	assert.Equal(t, "abcde", Excerpt("abcdefgh", 5))
	assert.Equal(t, "abcdefgh", Excerpt("abcdefgh", 0))
}
