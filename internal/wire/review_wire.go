package wire

import (
	"moview-api/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireReview(r chi.Router, reviewHandler *adaptor.ReviewHandler, recommendHandler *adaptor.RecommendHandler) {
	// POST /reviews/ - submit a review
	r.Post("/reviews/", reviewHandler.CreateReview)

	// GET /reviews/user/{userId} - reviews written by a user
	r.Get("/reviews/user/{userId}", reviewHandler.GetUserReviews)

	// GET /reviews/stats/{movieId} - aggregate rating stats for a movie
	r.Get("/reviews/stats/{movieId}", reviewHandler.GetMovieStats)

	// GET /reviews/recommendations/{userId} - personalized movie picks
	r.Get("/reviews/recommendations/{userId}", recommendHandler.GetRecommendations)

	// GET /reviews/{movieId} - reviews for a movie
	r.Get("/reviews/{movieId}", reviewHandler.GetMovieReviews)
}
