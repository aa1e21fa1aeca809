package domain_test

import (
	"testing"

	"github.com/MihaiS-git/MovieRentalsSystem/internal/core/domain"
	"github.com/stretchr/testify/assert"
)

func TestGenreIsValid(t *testing.T) {
	assert.True(t, domain.GenreAction.IsValid())
	assert.True(t, domain.GenreFantasy.IsValid())
	assert.True(t, domain.GenreMystery.IsValid())
	assert.True(t, domain.GenreWestern.IsValid())
	assert.False(t, domain.Genre("SF").IsValid())
	assert.False(t, domain.Genre("").IsValid())
}

func TestRatingIsValid(t *testing.T) {
	assert.True(t, domain.RatingGA.IsValid())
	assert.True(t, domain.RatingPG13.IsValid())
	assert.True(t, domain.RatingNC17.IsValid())
	assert.False(t, domain.Rating("G").IsValid())
	assert.False(t, domain.Rating("X").IsValid())
	assert.False(t, domain.Rating("").IsValid())
}

func TestClientFullName(t *testing.T) {
	c := domain.Client{FirstName: "Ana", LastName: "Pop"}
	assert.Equal(t, "Ana Pop", c.FullName())
}
