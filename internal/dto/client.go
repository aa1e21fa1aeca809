package dto

import (
	"time"

	"github.com/MihaiS-git/MovieRentalsSystem/internal/core/domain"
)

// CreateClientRequest defines the data needed to register a client.
type CreateClientRequest struct {
	FirstName   string    `json:"firstName" binding:"required"`
	LastName    string    `json:"lastName" binding:"required"`
	Email       string    `json:"email" binding:"required,email"`
	DateOfBirth time.Time `json:"dateOfBirth" binding:"required"`
	Subscribed  bool      `json:"subscribed"`
}

// UpdateClientRequest defines the data for a full client update.
type UpdateClientRequest struct {
	FirstName   string    `json:"firstName" binding:"required"`
	LastName    string    `json:"lastName" binding:"required"`
	Email       string    `json:"email" binding:"required,email"`
	DateOfBirth time.Time `json:"dateOfBirth" binding:"required"`
	Subscribed  bool      `json:"subscribed"`
}

// ClientResponse defines the data returned for a client.
type ClientResponse struct {
	ClientID    string    `json:"clientID"`
	FirstName   string    `json:"firstName"`
	LastName    string    `json:"lastName"`
	Email       string    `json:"email"`
	DateOfBirth time.Time `json:"dateOfBirth"`
	Subscribed  bool      `json:"subscribed"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// ToClientResponse converts a domain.Client to a ClientResponse DTO.
func ToClientResponse(c *domain.Client) ClientResponse {
	return ClientResponse{
		ClientID:    c.ClientID,
		FirstName:   c.FirstName,
		LastName:    c.LastName,
		Email:       c.Email,
		DateOfBirth: c.DateOfBirth,
		Subscribed:  c.Subscribed,
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   c.LastUpdatedAt,
	}
}

// ToListClientResponse converts a slice of domain.Client to ClientResponse DTOs.
func ToListClientResponse(clients []domain.Client) []ClientResponse {
	res := make([]ClientResponse, len(clients))
	for i, c := range clients {
		res[i] = ToClientResponse(&c)
	}
	return res
}
