package adaptor

import (
	"moview-api/internal/usecase"

	"go.uber.org/zap"
)

type Handler struct {
	Auth      *AuthHandler
	Movie     *MovieHandler
	Review    *ReviewHandler
	Sentiment *SentimentHandler
	Recommend *RecommendHandler
}

func NewHandler(service *usecase.Service, log *zap.Logger) *Handler {
	return &Handler{
		Auth:      NewAuthHandler(service.Auth, log),
		Movie:     NewMovieHandler(service.Movie, log),
		Review:    NewReviewHandler(service.Review, log),
		Sentiment: NewSentimentHandler(service.Sentiment, log),
		Recommend: NewRecommendHandler(service.Recommend, log),
	}
}
