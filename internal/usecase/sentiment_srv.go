package usecase

import (
	"strings"

	"moview-api/internal/data/entity"
	"moview-api/internal/dto/response"

	"go.uber.org/zap"
)

// SentimentAnalyzer is the labeler contract the review path depends on.
// Implementations may fail; callers must degrade to neutral, not block the write.
type SentimentAnalyzer interface {
	Classify(text string) (entity.Sentiment, float64, error)
}

type SentimentService interface {
	SentimentAnalyzer
	Analyze(text string) (*response.SentimentResponse, error)
}

type sentimentService struct {
	log *zap.Logger
}

func NewSentimentService(log *zap.Logger) SentimentService {
	return &sentimentService{
		log: log.With(zap.String("service", "sentiment")),
	}
}

var positiveWords = []string{
	"good", "great", "excellent", "amazing", "love", "best", "awesome",
	"fantastic", "wonderful", "brilliant", "outstanding", "superb",
	"incredible", "perfect", "beautiful", "stunning", "masterpiece",
	"enjoyable", "entertaining", "impressive", "remarkable", "exceptional",
}

var negativeWords = []string{
	"bad", "terrible", "awful", "hate", "worst", "horrible",
	"disappointing", "boring", "poor", "waste", "pathetic", "garbage",
	"stupid", "ridiculous", "annoying", "frustrating", "dreadful",
	"mediocre", "overrated", "bland", "tedious", "unwatchable",
}

// Classify labels text as positive, neutral or negative. Deterministic for
// identical input.
func (s *sentimentService) Classify(text string) (entity.Sentiment, float64, error) {
	lower := strings.ToLower(text)

	positiveScore := countMatches(lower, positiveWords)
	negativeScore := countMatches(lower, negativeWords)

	sentiment := entity.SentimentNeutral
	switch {
	case positiveScore > negativeScore:
		sentiment = entity.SentimentPositive
	case negativeScore > positiveScore:
		sentiment = entity.SentimentNegative
	}

	confidence := s.confidence(lower, sentiment, positiveScore, negativeScore)

	return sentiment, confidence, nil
}

func (s *sentimentService) Analyze(text string) (*response.SentimentResponse, error) {
	sentiment, confidence, err := s.Classify(text)
	if err != nil {
		return nil, err
	}

	s.log.Debug("Sentiment analyzed",
		zap.String("sentiment", string(sentiment)),
		zap.Float64("confidence", confidence),
	)

	return &response.SentimentResponse{
		Text:       text,
		Sentiment:  string(sentiment),
		Confidence: confidence,
	}, nil
}

// confidence scores by keyword density and text length, clamped to [0.3, 0.9]
func (s *sentimentService) confidence(lower string, sentiment entity.Sentiment, positiveScore, negativeScore int) float64 {
	totalWords := len(strings.Fields(lower))

	var confidence float64
	if sentiment == entity.SentimentNeutral {
		confidence = 0.5
	} else {
		matches := positiveScore
		if sentiment == entity.SentimentNegative {
			matches = negativeScore
		}
		confidence = 0.6 + float64(matches)*0.1
		if confidence > 0.9 {
			confidence = 0.9
		}
	}

	if totalWords < 5 {
		confidence *= 0.8
	} else if totalWords > 50 {
		confidence *= 1.1
	}

	if confidence < 0.3 {
		confidence = 0.3
	}
	if confidence > 0.9 {
		confidence = 0.9
	}

	return confidence
}

func countMatches(lower string, words []string) int {
	count := 0
	for _, word := range words {
		if strings.Contains(lower, word) {
			count++
		}
	}
	return count
}
