package entity

import (
	"time"
)

// Favorite links a user to a movie. Relational backend only; the flat-file
// backend embeds movies inside the user record instead.
type Favorite struct {
	UserID       int64      `db:"user_id"`
	MovieID      int64      `db:"movie_id"`
	FavoriteDate *time.Time `db:"favorite_date"`
}
