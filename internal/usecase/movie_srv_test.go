package usecase

import (
	"context"
	"testing"

	"moview-api/internal/data/catalog"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestGetPopularNormalizesPage(t *testing.T) {
	cat := newFakeCatalog()
	cat.popular[1] = []catalog.Movie{{ID: 550, Title: "Fight Club"}}
	service := NewMovieService(cat, zap.NewNop())

	result, err := service.GetPopular(context.Background(), -3)

	require.NoError(t, err)
	assert.Equal(t, 1, result.Page)
	require.Len(t, result.Results, 1)
}

func TestSearchRejectsBlankQuery(t *testing.T) {
	service := NewMovieService(newFakeCatalog(), zap.NewNop())

	for _, query := range []string{"", "   ", "\t"} {
		_, err := service.Search(context.Background(), query, 1)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid search query")
	}
}

func TestGetByID(t *testing.T) {
	cat := newFakeCatalog()
	cat.details[550] = &catalog.Movie{ID: 550, Title: "Fight Club", VoteAverage: 8.4}
	service := NewMovieService(cat, zap.NewNop())

	movie, err := service.GetByID(context.Background(), 550)

	require.NoError(t, err)
	assert.Equal(t, "Fight Club", movie.Title)
}

func TestGetByIDNotFound(t *testing.T) {
	service := NewMovieService(newFakeCatalog(), zap.NewNop())

	_, err := service.GetByID(context.Background(), 999999)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestGetByIDAdultContentForbidden(t *testing.T) {
	cat := newFakeCatalog()
	cat.details[666] = &catalog.Movie{ID: 666, Title: "Flagged", Adult: true}
	service := NewMovieService(cat, zap.NewNop())

	_, err := service.GetByID(context.Background(), 666)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "forbidden")
}

func TestGetByIDCatalogDown(t *testing.T) {
	cat := newFakeCatalog()
	cat.failDetails = true
	service := NewMovieService(cat, zap.NewNop())

	_, err := service.GetByID(context.Background(), 550)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "catalog unavailable")
}
