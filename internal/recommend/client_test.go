package recommend_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"voyago/travel-planner/internal/domain"
	"voyago/travel-planner/internal/recommend"
)

func TestHTTPClient_Recommend(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		assert.Equal(t, "Bearer sk-test", r.Header.Get("Authorization"))

		var req struct {
			Interests []string `json:"interests"`
			Location  string   `json:"location"`
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, []string{"hiking", "food"}, req.Interests)
		assert.Equal(t, "Norway", req.Location)

		json.NewEncoder(w).Encode(map[string]any{
			"recommendations": []domain.Recommendation{
				{Name: "Lofoten", Region: "Nordland", WhyItFits: "fjords and fishing villages"},
			},
		})
	}))
	defer server.Close()

	client := recommend.NewHTTPClient(server.URL, "sk-test", 5*time.Second)

	got, err := client.Recommend(context.Background(), []string{"hiking", "food"}, "Norway")

	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "Lofoten", got[0].Name)
}

func TestHTTPClient_NoAuthHeaderWithoutKey(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Empty(t, r.Header.Get("Authorization"))
		json.NewEncoder(w).Encode(map[string]any{"recommendations": []domain.Recommendation{}})
	}))
	defer server.Close()

	client := recommend.NewHTTPClient(server.URL, "", 5*time.Second)

	_, err := client.Recommend(context.Background(), []string{"food"}, "Italy")

	assert.NoError(t, err)
}

func TestHTTPClient_ErrorPayloadMessage(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(map[string]string{"message": "Invalid interests provided"})
	}))
	defer server.Close()

	client := recommend.NewHTTPClient(server.URL, "", 5*time.Second)

	_, err := client.Recommend(context.Background(), []string{"food"}, "Italy")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "Invalid interests provided")
}

func TestHTTPClient_NonJSONErrorFallsBackToStatusCode(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		w.Write([]byte("<html>bad gateway</html>"))
	}))
	defer server.Close()

	client := recommend.NewHTTPClient(server.URL, "", 5*time.Second)

	_, err := client.Recommend(context.Background(), []string{"food"}, "Italy")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "status code 502")
}

func TestStaticGenerator_ThreeSuggestionsNamedAfterLocation(t *testing.T) {
	client := recommend.NewStaticGenerator()

	got, err := client.Recommend(context.Background(), []string{"surfing", "food", "history", "nightlife"}, "Portugal")

	require.NoError(t, err)
	require.Len(t, got, 3)
	assert.Equal(t, "Top Destination in Portugal", got[0].Name)
	assert.Equal(t, "Hidden Gem in Portugal", got[1].Name)
	assert.Equal(t, "Portugal's Best Kept Secret", got[2].Name)
	// Only the leading interests feed the first two blurbs.
	assert.Contains(t, got[0].WhyItFits, "surfing, food, history")
	assert.NotContains(t, got[0].WhyItFits, "nightlife")
	assert.Contains(t, got[1].WhyItFits, "surfing and food")
	for _, rec := range got {
		assert.Len(t, rec.Activities, 3)
	}
}
