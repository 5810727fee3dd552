package adaptor

import (
	"encoding/json"
	"net/http"

	"moview-api/internal/dto/request"
	"moview-api/internal/usecase"
	"moview-api/pkg/utils"

	"go.uber.org/zap"
)

type SentimentHandler struct {
	service usecase.SentimentService
	log     *zap.Logger
}

func NewSentimentHandler(service usecase.SentimentService, log *zap.Logger) *SentimentHandler {
	return &SentimentHandler{
		service: service,
		log:     log.With(zap.String("handler", "sentiment")),
	}
}

// Analyze handles POST /sentiment/analyze (public)
func (h *SentimentHandler) Analyze(w http.ResponseWriter, r *http.Request) {
	var req request.AnalyzeSentimentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body")
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, utils.FormatValidationErrors(validationErrors))
		return
	}

	result, err := h.service.Analyze(req.Text)
	if err != nil {
		h.log.Error("Failed to analyze sentiment", zap.Error(err))
		utils.ResponseInternalError(w, "Internal server error")
		return
	}

	utils.ResponseSuccess(w, result)
}
