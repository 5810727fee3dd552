package adaptor

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"moview-api/internal/dto/response"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type stubRecommendService struct {
	recommendations []response.Recommendation
	err             error
}

func (s *stubRecommendService) Recommend(ctx context.Context, userID string) ([]response.Recommendation, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.recommendations, nil
}

func recommendRequest(t *testing.T, service *stubRecommendService) *httptest.ResponseRecorder {
	t.Helper()

	handler := NewRecommendHandler(service, zap.NewNop())
	router := chi.NewRouter()
	router.Get("/reviews/recommendations/{userId}", handler.GetRecommendations)

	req := httptest.NewRequest(http.MethodGet, "/reviews/recommendations/"+uuid.NewString(), nil)
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)
	return recorder
}

func TestGetRecommendations(t *testing.T) {
	recorder := recommendRequest(t, &stubRecommendService{
		recommendations: []response.Recommendation{
			{MovieID: 680, Title: "Pulp Fiction", VoteAverage: 8.5, Reason: "Matches your taste in Drama movies"},
		},
	})

	assert.Equal(t, http.StatusOK, recorder.Code)

	var body response.RecommendationsResponse
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
	require.Len(t, body.Recommendations, 1)
	assert.Equal(t, int64(680), body.Recommendations[0].MovieID)
}

func TestGetRecommendationsEmptyListIsOK(t *testing.T) {
	recorder := recommendRequest(t, &stubRecommendService{
		recommendations: []response.Recommendation{},
	})

	assert.Equal(t, http.StatusOK, recorder.Code)

	var body response.RecommendationsResponse
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
	assert.Empty(t, body.Recommendations)
}

func TestGetRecommendationsNoReviewsIsBadRequest(t *testing.T) {
	recorder := recommendRequest(t, &stubRecommendService{
		err: errors.New("no reviews yet: rate some movies to get recommendations"),
	})

	assert.Equal(t, http.StatusBadRequest, recorder.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
	assert.Contains(t, body["detail"], "no reviews yet")
}

func TestGetRecommendationsCatalogDownIsBadGateway(t *testing.T) {
	recorder := recommendRequest(t, &stubRecommendService{
		err: errors.New("catalog unavailable: tmdb down"),
	})

	assert.Equal(t, http.StatusBadGateway, recorder.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
	assert.Equal(t, "Movie catalog is unavailable", body["detail"])
}
