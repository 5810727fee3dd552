package response

import (
	"time"

	"moview-api/internal/data/entity"
)

type ReviewResponse struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	MovieID   int64     `json:"movie_id"`
	Rating    int       `json:"rating"`
	Content   string    `json:"content"`
	Sentiment string    `json:"sentiment"`
	Username  string    `json:"username,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

type MovieStatsResponse struct {
	MovieID       int64   `json:"movie_id"`
	AverageRating float64 `json:"average_rating"`
	TotalReviews  int64   `json:"total_reviews"`
}

// Helper converter
func ReviewToResponse(review *entity.Review, username string) ReviewResponse {
	return ReviewResponse{
		ID:        review.ID.String(),
		UserID:    review.UserID.String(),
		MovieID:   review.MovieID,
		Rating:    review.Rating,
		Content:   review.Content,
		Sentiment: string(review.Sentiment),
		Username:  username,
		CreatedAt: review.CreatedAt,
	}
}
