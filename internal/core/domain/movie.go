package domain

import "github.com/shopspring/decimal"

// Genre is the enumerated catalogue genre of a movie.
type Genre string

const (
	GenreAction   Genre = "ACTION"
	GenreComedy   Genre = "COMEDY"
	GenreDrama    Genre = "DRAMA"
	GenreFantasy  Genre = "FANTASY"
	GenreHorror   Genre = "HORROR"
	GenreMystery  Genre = "MYSTERY"
	GenreRomance  Genre = "ROMANCE"
	GenreThriller Genre = "THRILLER"
	GenreWestern  Genre = "WESTERN"
)

// Rating is the enumerated age restriction of a movie.
type Rating string

const (
	RatingGA   Rating = "GA"
	RatingPG   Rating = "PG"
	RatingPG13 Rating = "PG13"
	RatingR    Rating = "R"
	RatingNC17 Rating = "NC17"
)

// IsValid reports whether the genre is one of the supported values.
func (g Genre) IsValid() bool {
	switch g {
	case GenreAction, GenreComedy, GenreDrama, GenreFantasy, GenreHorror,
		GenreMystery, GenreRomance, GenreThriller, GenreWestern:
		return true
	}
	return false
}

// IsValid reports whether the rating is one of the supported values.
func (r Rating) IsValid() bool {
	switch r {
	case RatingGA, RatingPG, RatingPG13, RatingR, RatingNC17:
		return true
	}
	return false
}

// Movie represents a title in the rental catalogue. Available is a plain
// stock flag carried on the record; renting does not consult or change it.
type Movie struct {
	MovieID     string          `json:"movieID"`
	Title       string          `json:"title"`
	ReleaseYear int             `json:"releaseYear"`
	Genre       Genre           `json:"genre"`
	Rating      Rating          `json:"rating"`
	RentalPrice decimal.Decimal `json:"rentalPrice"`
	Available   bool            `json:"available"`
	AuditFields
}
