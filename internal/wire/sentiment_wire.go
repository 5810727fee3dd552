package wire

import (
	"moview-api/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireSentiment(r chi.Router, sentimentHandler *adaptor.SentimentHandler) {
	r.Post("/sentiment/analyze", sentimentHandler.Analyze)
}
