package usecase

import (
	"context"
	"fmt"
	"sort"

	"moview-api/internal/data/catalog"
	"moview-api/internal/data/entity"
	"moview-api/internal/data/repository"
	"moview-api/internal/dto/response"
	"moview-api/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type RecommendService interface {
	Recommend(ctx context.Context, userID string) ([]response.Recommendation, error)
}

type recommendService struct {
	repo    *repository.Repository
	catalog MovieCatalog
	config  utils.RecommendConfig
	log     *zap.Logger
}

func NewRecommendService(repo *repository.Repository, catalog MovieCatalog, config utils.RecommendConfig, log *zap.Logger) RecommendService {
	if config.MaxResults <= 0 {
		config.MaxResults = 4
	}
	if config.CandidatePages <= 0 {
		config.CandidatePages = 2
	}

	return &recommendService{
		repo:    repo,
		catalog: catalog,
		config:  config,
		log:     log.With(zap.String("service", "recommend")),
	}
}

// tasteProfile accumulates per-genre affinity from a user's rated movies
type tasteProfile struct {
	weights map[int64]float64
	names   map[int64]string
	seen    map[int64]bool
}

type scoredCandidate struct {
	movie catalog.Movie
	score float64
}

func (s *recommendService) Recommend(ctx context.Context, userID string) ([]response.Recommendation, error) {
	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return nil, fmt.Errorf("invalid user ID format %s: %w", userID, err)
	}

	reviews, err := s.repo.Review.FindByUserID(ctx, userUUID)
	if err != nil {
		s.log.Error("Failed to load user reviews", zap.Error(err), zap.String("user_id", userID))
		return nil, fmt.Errorf("load user reviews: %w", err)
	}

	// Empty history is an error, distinct from "nothing cleared the threshold"
	if len(reviews) == 0 {
		return nil, fmt.Errorf("no reviews yet: rate some movies to get recommendations")
	}

	profile := s.buildProfile(ctx, reviews)

	candidates, err := s.collectCandidates(ctx, profile)
	if err != nil {
		return nil, err
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		if candidates[i].score != candidates[j].score {
			return candidates[i].score > candidates[j].score
		}
		return candidates[i].movie.Popularity > candidates[j].movie.Popularity
	})

	if len(candidates) > s.config.MaxResults {
		candidates = candidates[:s.config.MaxResults]
	}

	recommendations := make([]response.Recommendation, 0, len(candidates))
	for _, c := range candidates {
		recommendations = append(recommendations, response.Recommendation{
			MovieID:     c.movie.ID,
			Title:       c.movie.Title,
			PosterURL:   c.movie.PosterURL,
			VoteAverage: c.movie.VoteAverage,
			Reason:      s.reason(profile, c.movie),
		})
	}

	s.log.Info("Recommendations computed",
		zap.String("user_id", userID),
		zap.Int("reviews", len(reviews)),
		zap.Int("results", len(recommendations)),
	)

	return recommendations, nil
}

// buildProfile weights genres by how far each rating sits from the midpoint,
// so loved movies pull their genres up and panned ones push them down
func (s *recommendService) buildProfile(ctx context.Context, reviews []*entity.Review) *tasteProfile {
	profile := &tasteProfile{
		weights: make(map[int64]float64),
		names:   make(map[int64]string),
		seen:    make(map[int64]bool),
	}

	for _, review := range reviews {
		profile.seen[review.MovieID] = true

		movie, err := s.catalog.Details(ctx, review.MovieID)
		if err != nil {
			// A single unresolvable movie should not sink the whole request
			s.log.Warn("Skipping reviewed movie in profile",
				zap.Error(err),
				zap.Int64("movie_id", review.MovieID),
			)
			continue
		}

		weight := float64(review.Rating) - 2.5
		for _, genre := range movie.Genres {
			profile.weights[genre.ID] += weight
			profile.names[genre.ID] = genre.Name
		}
	}

	return profile
}

func (s *recommendService) collectCandidates(ctx context.Context, profile *tasteProfile) ([]scoredCandidate, error) {
	var candidates []scoredCandidate

	for page := 1; page <= s.config.CandidatePages; page++ {
		result, err := s.catalog.Popular(ctx, page)
		if err != nil {
			if page == 1 {
				s.log.Error("Failed to fetch candidate movies", zap.Error(err))
				return nil, fmt.Errorf("catalog unavailable: %w", err)
			}
			// Later pages are best-effort
			s.log.Warn("Skipping candidate page", zap.Error(err), zap.Int("page", page))
			break
		}

		for _, movie := range result.Results {
			if movie.Adult || profile.seen[movie.ID] {
				continue
			}

			score := s.score(profile, movie)
			if score < s.config.MinScore {
				continue
			}

			candidates = append(candidates, scoredCandidate{movie: movie, score: score})
		}

		if page >= result.TotalPages {
			break
		}
	}

	return candidates, nil
}

func (s *recommendService) score(profile *tasteProfile, movie catalog.Movie) float64 {
	var genreScore float64
	for _, genreID := range movie.GenreIDs {
		genreScore += profile.weights[genreID]
	}

	// Small popularity nudge keeps well-regarded movies ahead on genre ties
	return genreScore + movie.VoteAverage/10
}

func (s *recommendService) reason(profile *tasteProfile, movie catalog.Movie) string {
	bestGenre := int64(0)
	bestWeight := 0.0
	for _, genreID := range movie.GenreIDs {
		if w := profile.weights[genreID]; w > bestWeight {
			bestWeight = w
			bestGenre = genreID
		}
	}

	if name, ok := profile.names[bestGenre]; ok && bestWeight > 0 {
		return fmt.Sprintf("Matches your taste in %s movies", name)
	}

	return fmt.Sprintf("Highly rated (%.1f) and trending right now", movie.VoteAverage)
}
