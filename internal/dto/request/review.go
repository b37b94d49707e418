package request

// CreateReviewRequest validates the 0-10 rating bound here, before any
// persistence call; the storage layer enforces no bound of its own.
// Rating has no "required" tag so a legitimate 0.0 passes.
type CreateReviewRequest struct {
	Text   string  `json:"text" validate:"required,min=1,max=5000"`
	Rating float64 `json:"rating" validate:"gte=0,lte=10"`
}
