package repositories

import (
	"context"

	"github.com/MihaiS-git/MovieRentalsSystem/internal/core/domain"
)

// ClientReader defines read operations for the client registry.
type ClientReader interface {
	// FindClientByID retrieves a specific client by its unique identifier.
	// It returns apperrors.ErrNotFound if no client carries the identifier.
	FindClientByID(ctx context.Context, clientID string) (*domain.Client, error)

	// ListClients retrieves all registered clients.
	ListClients(ctx context.Context) ([]domain.Client, error)
}

// ClientWriter defines write operations for the client registry.
type ClientWriter interface {
	// SaveClient persists a new client.
	SaveClient(ctx context.Context, client domain.Client) error

	// UpdateClient replaces the stored client carrying the same identifier.
	UpdateClient(ctx context.Context, client domain.Client) error

	// DeleteClient removes a client and returns the removed record.
	DeleteClient(ctx context.Context, clientID string) (*domain.Client, error)
}

// ClientRepositoryFacade combines all client repository interfaces.
type ClientRepositoryFacade interface {
	ClientReader
	ClientWriter
}
