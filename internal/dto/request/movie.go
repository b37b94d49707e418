package request

// CreateMovieRequest covers both creation variants: full details, or a bare
// title that triggers a metadata lookup.
type CreateMovieRequest struct {
	Title    string   `json:"title" validate:"required,min=1,max=200"`
	Director *string  `json:"director,omitempty" validate:"omitempty,min=1,max=200"`
	Year     *int     `json:"year,omitempty" validate:"omitempty,gte=1870,lte=2200"`
	Rating   *float64 `json:"rating,omitempty" validate:"omitempty,gte=0,lte=10"`
}

// LookupOnly reports whether the request carries just a title, meaning the
// remaining fields should come from the metadata service.
func (r *CreateMovieRequest) LookupOnly() bool {
	return r.Director == nil && r.Year == nil && r.Rating == nil
}

// Complete reports whether all detail fields were supplied.
func (r *CreateMovieRequest) Complete() bool {
	return r.Director != nil && r.Year != nil && r.Rating != nil
}

type UpdateMovieRequest struct {
	Title    string  `json:"title" validate:"required,min=1,max=200"`
	Director string  `json:"director" validate:"required,min=1,max=200"`
	Year     int     `json:"year" validate:"required,gte=1870,lte=2200"`
	Rating   float64 `json:"rating" validate:"gte=0,lte=10"`
}
