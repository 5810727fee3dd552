package response

type Recommendation struct {
	MovieID     int64   `json:"movie_id"`
	Title       string  `json:"title"`
	PosterURL   string  `json:"poster_url,omitempty"`
	VoteAverage float64 `json:"vote_average"`
	Reason      string  `json:"reason"`
}

type RecommendationsResponse struct {
	Recommendations []Recommendation `json:"recommendations"`
}
