package response

import (
	"movieweb/internal/data/entity"
)

type ReviewResponse struct {
	ID      int64   `json:"id"`
	UserID  int64   `json:"user_id"`
	MovieID int64   `json:"movie_id"`
	Text    string  `json:"text"`
	Rating  float64 `json:"rating"`
}

func ReviewToResponse(review *entity.Review) ReviewResponse {
	return ReviewResponse{
		ID:      review.ID,
		UserID:  review.UserID,
		MovieID: review.MovieID,
		Text:    review.ReviewText,
		Rating:  review.Rating,
	}
}

func ReviewsToResponse(reviews []*entity.Review) []ReviewResponse {
	result := make([]ReviewResponse, len(reviews))
	for i, review := range reviews {
		result[i] = ReviewToResponse(review)
	}
	return result
}
