package entity

import (
	"time"
)

type Movie struct {
	ID       int64   `db:"id"`
	Title    string  `db:"title"`
	Director string  `db:"director"`
	Year     int     `db:"year"`
	Rating   float64 `db:"rating"`

	// Only persisted by the relational backend.
	Genre       *string    `db:"genre"`
	ReleaseDate *time.Time `db:"release_date"`
}
