package research

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/keyword-scout/internal/llm"
	"github.com/jonathan/keyword-scout/internal/types"
)

type stubClient struct {
	responses []string
	err       error
	prompts   []string
	calls     int
}

func (s *stubClient) GenerateContent(_ context.Context, _, prompt string, _ llm.ModelTier) (string, error) {
	s.calls++
	s.prompts = append(s.prompts, prompt)
	if s.err != nil {
		return "", s.err
	}
	if len(s.responses) == 0 {
		return "[]", nil
	}
	response := s.responses[0]
	if len(s.responses) > 1 {
		s.responses = s.responses[1:]
	}
	return response, nil
}

func (s *stubClient) GetModel(tier llm.ModelTier) string { return string(tier) }

func (s *stubClient) Close() error { return nil }

func TestMain(m *testing.M) {
	requestInterval = time.Millisecond
	m.Run()
}

func clusterWith(main string, keywords ...string) types.Cluster {
	c := types.Cluster{MainKeyword: main}
	c.Keywords = append(c.Keywords, types.KeywordRecord{Keyword: main})
	for _, kw := range keywords {
		c.Keywords = append(c.Keywords, types.KeywordRecord{Keyword: kw})
	}
	return c
}

func TestCompetitorsPopulatesTopClusters(t *testing.T) {
	client := &stubClient{responses: []string{`["nike.com", "https://www.adidas.com/us", "REI.com"]`}}
	clusters := []types.Cluster{clusterWith("running shoes", "trail running shoes")}

	result := Competitors(context.Background(), client, clusters, "E-commerce")

	require.Len(t, result, 1)
	assert.Equal(t, []string{"nike.com", "adidas.com", "rei.com"}, result[0].AICompetitors)
}

func TestCompetitorsPromptCarriesTopKeywords(t *testing.T) {
	client := &stubClient{}
	cluster := clusterWith("running shoes", "kw2", "kw3", "kw4", "kw5", "kw6", "kw7")

	Competitors(context.Background(), client, []types.Cluster{cluster}, "E-commerce")

	require.Len(t, client.prompts, 1)
	assert.Contains(t, client.prompts[0], "running shoes, kw2, kw3, kw4, kw5")
	assert.NotContains(t, client.prompts[0], "kw6")
	assert.Contains(t, client.prompts[0], "E-commerce")
}

func TestCompetitorsResearchesAtMostEight(t *testing.T) {
	client := &stubClient{}
	clusters := make([]types.Cluster, 12)
	for i := range clusters {
		clusters[i] = clusterWith(fmt.Sprintf("keyword %d", i))
	}

	result := Competitors(context.Background(), client, clusters, "SaaS")

	assert.Equal(t, 8, client.calls)
	assert.Nil(t, result[8].AICompetitors)
	assert.Nil(t, result[11].AICompetitors)
}

func TestCompetitorsQueryFailureIsNotFatal(t *testing.T) {
	client := &stubClient{err: errors.New("quota exceeded")}
	clusters := []types.Cluster{clusterWith("running shoes")}

	result := Competitors(context.Background(), client, clusters, "SaaS")

	require.Len(t, result, 1)
	assert.Equal(t, []string{}, result[0].AICompetitors)
}

func TestCompetitorsUnparseableResponse(t *testing.T) {
	client := &stubClient{responses: []string{"I could not find any competitors for this market."}}
	clusters := []types.Cluster{clusterWith("running shoes")}

	result := Competitors(context.Background(), client, clusters, "SaaS")

	assert.Empty(t, result[0].AICompetitors)
}

func TestCompetitorsCapsDomainsPerCluster(t *testing.T) {
	response := `["a1.com","a2.com","a3.com","a4.com","a5.com","a6.com","a7.com","a8.com","a9.com","a10.com"]`
	client := &stubClient{responses: []string{response}}
	clusters := []types.Cluster{clusterWith("running shoes")}

	result := Competitors(context.Background(), client, clusters, "SaaS")

	assert.Len(t, result[0].AICompetitors, 8)
}

func TestNormalizeDomain(t *testing.T) {
	assert.Equal(t, "nike.com", NormalizeDomain("https://www.nike.com/us/running"))
	assert.Equal(t, "nike.com", NormalizeDomain("nike.com"))
	assert.Equal(t, "nike.com", NormalizeDomain("  Nike.com  "))
	assert.Equal(t, "shop.nike.com", NormalizeDomain("http://shop.nike.com"))

	assert.Equal(t, "", NormalizeDomain("not a domain"))
	assert.Equal(t, "", NormalizeDomain("nodot"))
	assert.Equal(t, "", NormalizeDomain("a.b"))
	assert.Equal(t, "", NormalizeDomain("Various competitors exist in this market segment today.com.extremely.long.entry"))
	assert.Equal(t, "", NormalizeDomain(""))
}
