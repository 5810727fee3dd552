package request

type AnalyzeSentimentRequest struct {
	Text string `json:"text" validate:"required,min=1,max=1000"`
}
