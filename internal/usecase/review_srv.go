package usecase

import (
	"context"
	"fmt"
	"time"

	"moview-api/internal/data/entity"
	"moview-api/internal/data/repository"
	"moview-api/internal/dto/request"
	"moview-api/internal/dto/response"
	"moview-api/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type ReviewService interface {
	CreateReview(ctx context.Context, req *request.CreateReviewRequest) (*response.ReviewResponse, error)
	GetMovieReviews(ctx context.Context, movieID int64) ([]response.ReviewResponse, error)
	GetUserReviews(ctx context.Context, userID string) ([]response.ReviewResponse, error)
	GetMovieStats(ctx context.Context, movieID int64) (*response.MovieStatsResponse, error)
}

type reviewService struct {
	repo      *repository.Repository
	sentiment SentimentAnalyzer
	log       *zap.Logger
}

func NewReviewService(repo *repository.Repository, sentiment SentimentAnalyzer, log *zap.Logger) ReviewService {
	return &reviewService{
		repo:      repo,
		sentiment: sentiment,
		log:       log.With(zap.String("service", "review")),
	}
}

func (s *reviewService) CreateReview(ctx context.Context, req *request.CreateReviewRequest) (*response.ReviewResponse, error) {
	// Validate request
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create review validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	userID, err := uuid.Parse(req.UserID)
	if err != nil {
		return nil, fmt.Errorf("invalid user ID format %s: %w", req.UserID, err)
	}

	// Verify user exists
	user, err := s.repo.User.FindByID(ctx, userID)
	if err != nil {
		s.log.Error("Failed to check user", zap.Error(err), zap.String("user_id", req.UserID))
		return nil, fmt.Errorf("check user: %w", err)
	}
	if user == nil {
		return nil, fmt.Errorf("user %s not found", req.UserID)
	}

	// One review per (user, movie)
	existingReview, err := s.repo.Review.FindByUserAndMovie(ctx, userID, req.MovieID)
	if err != nil {
		s.log.Error("Failed to check existing review", zap.Error(err))
		return nil, fmt.Errorf("check existing review: %w", err)
	}
	if existingReview != nil {
		return nil, fmt.Errorf("user has already reviewed this movie")
	}

	// Label sentiment on the write path, degrade to neutral if the labeler
	// fails; the write itself must go through
	sentiment, _, err := s.sentiment.Classify(req.Content)
	if err != nil {
		s.log.Warn("Sentiment labeling failed, defaulting to neutral",
			zap.Error(err),
			zap.Int64("movie_id", req.MovieID),
		)
		sentiment = entity.SentimentNeutral
	}

	review := &entity.Review{
		BaseSimple: entity.BaseSimple{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
		},
		UserID:    userID,
		MovieID:   req.MovieID,
		Rating:    req.Rating,
		Content:   req.Content,
		Sentiment: sentiment,
	}

	if err := s.repo.Review.Create(ctx, review); err != nil {
		s.log.Error("Failed to create review",
			zap.Error(err),
			zap.String("user_id", req.UserID),
			zap.Int64("movie_id", req.MovieID),
		)
		return nil, fmt.Errorf("create review: %w", err)
	}

	s.log.Info("Review created",
		zap.String("review_id", review.ID.String()),
		zap.String("user_id", req.UserID),
		zap.Int64("movie_id", req.MovieID),
		zap.Int("rating", req.Rating),
		zap.String("sentiment", string(sentiment)),
	)

	reviewResp := response.ReviewToResponse(review, user.Username)
	return &reviewResp, nil
}

func (s *reviewService) GetMovieReviews(ctx context.Context, movieID int64) ([]response.ReviewResponse, error) {
	reviews, err := s.repo.Review.FindByMovieID(ctx, movieID)
	if err != nil {
		s.log.Error("Failed to get movie reviews",
			zap.Error(err),
			zap.Int64("movie_id", movieID),
		)
		return nil, fmt.Errorf("get movie reviews: %w", err)
	}

	reviewResponses := make([]response.ReviewResponse, len(reviews))
	for i, review := range reviews {
		user, _ := s.repo.User.FindByID(ctx, review.UserID)
		username := ""
		if user != nil {
			username = user.Username
		}

		reviewResponses[i] = response.ReviewToResponse(review, username)
	}

	return reviewResponses, nil
}

func (s *reviewService) GetUserReviews(ctx context.Context, userID string) ([]response.ReviewResponse, error) {
	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return nil, fmt.Errorf("invalid user ID format %s: %w", userID, err)
	}

	user, err := s.repo.User.FindByID(ctx, userUUID)
	if err != nil {
		s.log.Error("Failed to check user", zap.Error(err), zap.String("user_id", userID))
		return nil, fmt.Errorf("check user: %w", err)
	}
	if user == nil {
		return nil, fmt.Errorf("user %s not found", userID)
	}

	reviews, err := s.repo.Review.FindByUserID(ctx, userUUID)
	if err != nil {
		s.log.Error("Failed to get user reviews",
			zap.Error(err),
			zap.String("user_id", userID),
		)
		return nil, fmt.Errorf("get user reviews: %w", err)
	}

	reviewResponses := make([]response.ReviewResponse, len(reviews))
	for i, review := range reviews {
		reviewResponses[i] = response.ReviewToResponse(review, user.Username)
	}

	return reviewResponses, nil
}

func (s *reviewService) GetMovieStats(ctx context.Context, movieID int64) (*response.MovieStatsResponse, error) {
	avgRating, totalReviews, err := s.repo.Review.GetMovieReviewStats(ctx, movieID)
	if err != nil {
		s.log.Error("Failed to get movie review stats",
			zap.Error(err),
			zap.Int64("movie_id", movieID),
		)
		return nil, fmt.Errorf("get movie review stats: %w", err)
	}

	return &response.MovieStatsResponse{
		MovieID:       movieID,
		AverageRating: utils.RoundToDecimal(avgRating),
		TotalReviews:  totalReviews,
	}, nil
}
