package usecase

import (
	"moview-api/internal/data/repository"
	"moview-api/pkg/utils"

	"go.uber.org/zap"
)

type Service struct {
	Auth      AuthService
	Movie     MovieService
	Review    ReviewService
	Sentiment SentimentService
	Recommend RecommendService
}

func NewService(repo *repository.Repository, catalog MovieCatalog, config *utils.Config, log *zap.Logger) *Service {
	sentiment := NewSentimentService(log)

	return &Service{
		Auth:      NewAuthService(repo, config, log),
		Movie:     NewMovieService(catalog, log),
		Review:    NewReviewService(repo, sentiment, log),
		Sentiment: sentiment,
		Recommend: NewRecommendService(repo, catalog, config.Recommend, log),
	}
}
