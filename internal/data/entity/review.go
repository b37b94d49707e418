package entity

type Review struct {
	ID         int64   `db:"id"`
	UserID     int64   `db:"user_id"`
	MovieID    int64   `db:"movie_id"`
	ReviewText string  `db:"review_text"`
	Rating     float64 `db:"rating"`
}
