package dataforseo

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decodeJSONBody(r *http.Request, out any) error {
	defer func() { _ = r.Body.Close() }()
	return json.NewDecoder(r.Body).Decode(out)
}

var testLocale = Locale{LocationCode: 2840, LanguageCode: "en"}

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	client, err := NewClient("login", "password", server.URL)
	require.NoError(t, err)
	return client
}

func TestNewClient_RequiresCredentials(t *testing.T) {
	_, err := NewClient("", "password", "")
	assert.Error(t, err)

	_, err = NewClient("login", "", "")
	assert.Error(t, err)
}

func TestSearchVolume_DecodesMetrics(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		expected := "Basic " + base64.StdEncoding.EncodeToString([]byte("login:password"))
		assert.Equal(t, expected, r.Header.Get("Authorization"))

		_, _ = w.Write([]byte(`{"tasks": [{"result": [
			{"keyword": "running shoes", "search_volume": 12000, "cpc": 1.5, "competition": 0.8, "competition_level": "HIGH"},
			{"keyword": "trail runners", "search_volume": null, "cpc": null, "competition": null}
		]}]}`))
	})

	metrics, err := client.SearchVolume(context.Background(), []string{"running shoes", "trail runners"}, testLocale)
	require.NoError(t, err)
	require.Len(t, metrics, 2)

	assert.Equal(t, KeywordMetrics{
		Keyword:          "running shoes",
		SearchVolume:     12000,
		CPC:              1.5,
		Competition:      0.8,
		CompetitionLevel: "HIGH",
	}, metrics[0])

	// Null numerics default to zero, record still produced.
	assert.Equal(t, "trail runners", metrics[1].Keyword)
	assert.Zero(t, metrics[1].SearchVolume)
	assert.Zero(t, metrics[1].CPC)
	assert.Empty(t, metrics[1].CompetitionLevel)
}

func TestSearchVolume_MissingResultArrayIsFailure(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"tasks": []}`))
	})

	_, err := client.SearchVolume(context.Background(), []string{"running shoes"}, testLocale)
	require.Error(t, err)

	var apiErr *Error
	require.ErrorAs(t, err, &apiErr)
	assert.Contains(t, apiErr.Message, "no result array")
}

func TestSearchVolume_NonSuccessStatus(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	})

	_, err := client.SearchVolume(context.Background(), []string{"running shoes"}, testLocale)
	require.Error(t, err)

	var apiErr *Error
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusUnauthorized, apiErr.StatusCode)
}

func TestRelatedKeywords_CapsSeedsAndDecodes(t *testing.T) {
	var gotKeywords int
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		var payload []map[string]any
		require.NoError(t, decodeJSONBody(r, &payload))
		gotKeywords = len(payload[0]["keywords"].([]any))
		_, _ = w.Write([]byte(`{"tasks": [{"result": [
			{"keyword": "buy running shoes online", "search_volume": 900, "cpc": 2.1, "competition": 0.4, "competition_level": "MEDIUM"}
		]}]}`))
	})

	seeds := make([]string, 30)
	for i := range seeds {
		seeds[i] = "seed"
	}

	metrics, err := client.RelatedKeywords(context.Background(), seeds, testLocale)
	require.NoError(t, err)

	assert.Equal(t, maxExpansionSeeds, gotKeywords)
	require.Len(t, metrics, 1)
	assert.Equal(t, "buy running shoes online", metrics[0].Keyword)
}

func TestRelatedKeywords_EmptyTasksIsNotFailure(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"tasks": []}`))
	})

	metrics, err := client.RelatedKeywords(context.Background(), []string{"seed"}, testLocale)
	require.NoError(t, err)
	assert.Empty(t, metrics)
}

func TestSERP_FiltersOrganicResults(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"tasks": [
			{
				"data": {"keyword": "running shoes"},
				"result": [{"items": [
					{"type": "organic", "url": "https://shop.example.com/shoes", "title": "Shoes", "rank_group": 1},
					{"type": "paid", "url": "https://ads.example.com", "title": "Ad", "rank_group": 1},
					{"type": "organic", "url": "", "title": "No URL", "rank_group": 2},
					{"type": "organic", "url": "https://other.example.org", "title": "Other", "rank_group": 0, "rank_absolute": 3}
				]}]
			},
			{
				"data": {"keyword": "no results"},
				"result": []
			}
		]}`))
	})

	results, err := client.SERP(context.Background(), []string{"running shoes", "no results"}, testLocale)
	require.NoError(t, err)

	require.Contains(t, results, "running shoes")
	assert.NotContains(t, results, "no results")

	organic := results["running shoes"]
	require.Len(t, organic, 2)
	assert.Equal(t, "https://shop.example.com/shoes", organic[0].URL)
	assert.Equal(t, 1, organic[0].Rank)
	// rank_absolute used when rank_group is zero
	assert.Equal(t, 3, organic[1].Rank)
}

func TestSERP_CapsKeywords(t *testing.T) {
	var gotTasks int
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		var payload []map[string]any
		require.NoError(t, decodeJSONBody(r, &payload))
		gotTasks = len(payload)
		_, _ = w.Write([]byte(`{"tasks": []}`))
	})

	keywords := make([]string, 40)
	for i := range keywords {
		keywords[i] = "kw"
	}

	_, err := client.SERP(context.Background(), keywords, testLocale)
	require.NoError(t, err)
	assert.Equal(t, maxSERPKeywords, gotTasks)
}
