package request_models

type CreateRatingRequest struct {
	Score   float64 `json:"rating" validate:"gte=1,lte=5"`
	Comment string  `json:"text" validate:"max=2000"`
	POIID   uint    `json:"poi" validate:"required"`
	UserID  uint    `json:"user" validate:"required"`
}
