package response

import (
	"movieweb/internal/data/entity"
)

type MovieResponse struct {
	ID          int64   `json:"id"`
	Title       string  `json:"title"`
	Director    string  `json:"director"`
	Year        int     `json:"year"`
	Rating      float64 `json:"rating"`
	Genre       *string `json:"genre,omitempty"`
	ReleaseDate string  `json:"release_date,omitempty"`
}

func MovieToResponse(movie *entity.Movie) MovieResponse {
	resp := MovieResponse{
		ID:       movie.ID,
		Title:    movie.Title,
		Director: movie.Director,
		Year:     movie.Year,
		Rating:   movie.Rating,
		Genre:    movie.Genre,
	}
	if movie.ReleaseDate != nil {
		resp.ReleaseDate = movie.ReleaseDate.Format("2006-01-02")
	}
	return resp
}

func MoviesToResponse(movies []*entity.Movie) []MovieResponse {
	result := make([]MovieResponse, len(movies))
	for i, movie := range movies {
		result[i] = MovieToResponse(movie)
	}
	return result
}
