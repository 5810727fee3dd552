package entity

import (
	"github.com/google/uuid"
)

type Sentiment string

const (
	SentimentPositive Sentiment = "positive"
	SentimentNeutral  Sentiment = "neutral"
	SentimentNegative Sentiment = "negative"
)

type Review struct {
	BaseSimple
	UserID    uuid.UUID `db:"user_id"`
	MovieID   int64     `db:"movie_id"` // TMDB movie ID
	Rating    int       `db:"rating"`   // 1-5
	Content   string    `db:"content"`
	Sentiment Sentiment `db:"sentiment"`
}
