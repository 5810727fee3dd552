package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"moview-api/internal/data/catalog"

	"go.uber.org/zap"
)

// MovieCatalog is the upstream catalog contract, implemented by catalog.Client
type MovieCatalog interface {
	Popular(ctx context.Context, page int) (*catalog.Page, error)
	Search(ctx context.Context, query string, page int) (*catalog.Page, error)
	Details(ctx context.Context, movieID int64) (*catalog.Movie, error)
}

type MovieService interface {
	GetPopular(ctx context.Context, page int) (*catalog.Page, error)
	Search(ctx context.Context, query string, page int) (*catalog.Page, error)
	GetByID(ctx context.Context, movieID int64) (*catalog.Movie, error)
}

type movieService struct {
	catalog MovieCatalog
	log     *zap.Logger
}

func NewMovieService(catalog MovieCatalog, log *zap.Logger) MovieService {
	return &movieService{
		catalog: catalog,
		log:     log.With(zap.String("service", "movie")),
	}
}

func (s *movieService) GetPopular(ctx context.Context, page int) (*catalog.Page, error) {
	if page < 1 {
		page = 1
	}

	result, err := s.catalog.Popular(ctx, page)
	if err != nil {
		s.log.Error("Failed to fetch popular movies", zap.Error(err), zap.Int("page", page))
		return nil, fmt.Errorf("catalog unavailable: %w", err)
	}

	return result, nil
}

func (s *movieService) Search(ctx context.Context, query string, page int) (*catalog.Page, error) {
	if strings.TrimSpace(query) == "" {
		return nil, fmt.Errorf("invalid search query: query cannot be empty")
	}
	if page < 1 {
		page = 1
	}

	result, err := s.catalog.Search(ctx, query, page)
	if err != nil {
		s.log.Error("Failed to search movies",
			zap.Error(err),
			zap.String("query", query),
			zap.Int("page", page),
		)
		return nil, fmt.Errorf("catalog unavailable: %w", err)
	}

	return result, nil
}

func (s *movieService) GetByID(ctx context.Context, movieID int64) (*catalog.Movie, error) {
	movie, err := s.catalog.Details(ctx, movieID)
	if err != nil {
		if errors.Is(err, catalog.ErrMovieNotFound) {
			return nil, fmt.Errorf("movie %d not found", movieID)
		}
		s.log.Error("Failed to fetch movie details", zap.Error(err), zap.Int64("movie_id", movieID))
		return nil, fmt.Errorf("catalog unavailable: %w", err)
	}

	if movie.Adult {
		return nil, fmt.Errorf("forbidden: adult content is not allowed")
	}

	return movie, nil
}
