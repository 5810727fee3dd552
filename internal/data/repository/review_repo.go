package repository

import (
	"context"
	"fmt"

	"moview-api/internal/data/entity"
	"moview-api/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type ReviewRepository interface {
	Create(ctx context.Context, review *entity.Review) error
	FindByMovieID(ctx context.Context, movieID int64) ([]*entity.Review, error)
	FindByUserID(ctx context.Context, userID uuid.UUID) ([]*entity.Review, error)
	FindByUserAndMovie(ctx context.Context, userID uuid.UUID, movieID int64) (*entity.Review, error)

	// Business queries
	GetMovieReviewStats(ctx context.Context, movieID int64) (float64, int64, error) // avg rating, count
}

type reviewRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewReviewRepository(db database.PgxIface, log *zap.Logger) ReviewRepository {
	return &reviewRepository{
		db:  db,
		log: log.With(zap.String("repository", "review")),
	}
}

func (r *reviewRepository) Create(ctx context.Context, review *entity.Review) error {
	query := `
		INSERT INTO reviews (id, user_id, movie_id, rating, content, sentiment, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`

	_, err := r.db.Exec(ctx, query,
		review.ID,
		review.UserID,
		review.MovieID,
		review.Rating,
		review.Content,
		review.Sentiment,
		review.CreatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create review",
			zap.Error(err),
			zap.String("user_id", review.UserID.String()),
			zap.Int64("movie_id", review.MovieID),
		)
		return fmt.Errorf("create review for movie %d by user %s: %w",
			review.MovieID, review.UserID.String(), err)
	}

	return nil
}

func (r *reviewRepository) FindByMovieID(ctx context.Context, movieID int64) ([]*entity.Review, error) {
	query := `
		SELECT id, user_id, movie_id, rating, content, sentiment, created_at
		FROM reviews
		WHERE movie_id = $1
		ORDER BY created_at DESC
	`

	rows, err := r.db.Query(ctx, query, movieID)
	if err != nil {
		r.log.Error("Failed to find reviews by movie ID",
			zap.Error(err),
			zap.Int64("movie_id", movieID),
		)
		return nil, fmt.Errorf("find reviews by movie ID %d: %w", movieID, err)
	}
	defer rows.Close()

	return scanReviews(rows, r.log)
}

func (r *reviewRepository) FindByUserID(ctx context.Context, userID uuid.UUID) ([]*entity.Review, error) {
	query := `
		SELECT id, user_id, movie_id, rating, content, sentiment, created_at
		FROM reviews
		WHERE user_id = $1
		ORDER BY created_at DESC
	`

	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		r.log.Error("Failed to find reviews by user ID",
			zap.Error(err),
			zap.String("user_id", userID.String()),
		)
		return nil, fmt.Errorf("find reviews by user ID %s: %w", userID.String(), err)
	}
	defer rows.Close()

	return scanReviews(rows, r.log)
}

func (r *reviewRepository) FindByUserAndMovie(ctx context.Context, userID uuid.UUID, movieID int64) (*entity.Review, error) {
	query := `
		SELECT id, user_id, movie_id, rating, content, sentiment, created_at
		FROM reviews
		WHERE user_id = $1 AND movie_id = $2
		LIMIT 1
	`

	var review entity.Review
	err := r.db.QueryRow(ctx, query, userID, movieID).Scan(
		&review.ID,
		&review.UserID,
		&review.MovieID,
		&review.Rating,
		&review.Content,
		&review.Sentiment,
		&review.CreatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find review by user and movie",
			zap.Error(err),
			zap.String("user_id", userID.String()),
			zap.Int64("movie_id", movieID),
		)
		return nil, fmt.Errorf("find review by user %s and movie %d: %w",
			userID.String(), movieID, err)
	}

	return &review, nil
}

// GetMovieReviewStats recomputes the rollup from the full review set,
// never from a cached partial
func (r *reviewRepository) GetMovieReviewStats(ctx context.Context, movieID int64) (float64, int64, error) {
	query := `
		SELECT
			COALESCE(AVG(rating), 0) as avg_rating,
			COUNT(*) as review_count
		FROM reviews
		WHERE movie_id = $1
	`

	var avgRating float64
	var reviewCount int64
	err := r.db.QueryRow(ctx, query, movieID).Scan(&avgRating, &reviewCount)
	if err != nil {
		r.log.Error("Failed to get movie review stats",
			zap.Error(err),
			zap.Int64("movie_id", movieID),
		)
		return 0, 0, fmt.Errorf("get movie review stats for %d: %w", movieID, err)
	}

	return avgRating, reviewCount, nil
}

func scanReviews(rows pgx.Rows, log *zap.Logger) ([]*entity.Review, error) {
	var reviews []*entity.Review
	for rows.Next() {
		var review entity.Review
		err := rows.Scan(
			&review.ID,
			&review.UserID,
			&review.MovieID,
			&review.Rating,
			&review.Content,
			&review.Sentiment,
			&review.CreatedAt,
		)
		if err != nil {
			log.Error("Failed to scan review row", zap.Error(err))
			return nil, fmt.Errorf("scan review row: %w", err)
		}
		reviews = append(reviews, &review)
	}

	return reviews, nil
}
