package dto

import (
	"time"

	"github.com/MihaiS-git/MovieRentalsSystem/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateMovieRequest defines the data needed to add a movie to the catalogue.
type CreateMovieRequest struct {
	Title       string          `json:"title" binding:"required"`
	ReleaseYear int             `json:"releaseYear" binding:"required,gte=1888,lte=2100"`
	Genre       string          `json:"genre" binding:"required,moviegenre"`
	Rating      string          `json:"rating" binding:"required,movierating"`
	RentalPrice decimal.Decimal `json:"rentalPrice" binding:"required"`
	Available   bool            `json:"available"`
}

// UpdateMovieRequest defines the data for a full movie update.
type UpdateMovieRequest struct {
	Title       string          `json:"title" binding:"required"`
	ReleaseYear int             `json:"releaseYear" binding:"required,gte=1888,lte=2100"`
	Genre       string          `json:"genre" binding:"required,moviegenre"`
	Rating      string          `json:"rating" binding:"required,movierating"`
	RentalPrice decimal.Decimal `json:"rentalPrice" binding:"required"`
	Available   bool            `json:"available"`
}

// MovieResponse defines the data returned for a movie.
type MovieResponse struct {
	MovieID     string          `json:"movieID"`
	Title       string          `json:"title"`
	ReleaseYear int             `json:"releaseYear"`
	Genre       string          `json:"genre"`
	Rating      string          `json:"rating"`
	RentalPrice decimal.Decimal `json:"rentalPrice"`
	Available   bool            `json:"available"`
	CreatedAt   time.Time       `json:"createdAt"`
	UpdatedAt   time.Time       `json:"updatedAt"`
}

// ToMovieResponse converts a domain.Movie to a MovieResponse DTO.
func ToMovieResponse(m *domain.Movie) MovieResponse {
	return MovieResponse{
		MovieID:     m.MovieID,
		Title:       m.Title,
		ReleaseYear: m.ReleaseYear,
		Genre:       string(m.Genre),
		Rating:      string(m.Rating),
		RentalPrice: m.RentalPrice,
		Available:   m.Available,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.LastUpdatedAt,
	}
}

// ToListMovieResponse converts a slice of domain.Movie to MovieResponse DTOs.
func ToListMovieResponse(movies []domain.Movie) []MovieResponse {
	res := make([]MovieResponse, len(movies))
	for i, m := range movies {
		res[i] = ToMovieResponse(&m)
	}
	return res
}
