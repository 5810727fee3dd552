package request

type CreateReviewRequest struct {
	UserID  string `json:"user_id" validate:"required,uuid4"`
	MovieID int64  `json:"movie_id" validate:"required,gt=0"`
	Rating  int    `json:"rating" validate:"required,min=1,max=5"`
	Content string `json:"content" validate:"required,min=10,max=1000"`
}
