package services

import (
	"context"

	"github.com/MihaiS-git/MovieRentalsSystem/internal/core/domain"
	"github.com/MihaiS-git/MovieRentalsSystem/internal/dto"
)

// ClientReaderSvc defines the read-side capabilities of the client service.
// The rental and reporting services consume this narrow interface to resolve
// client identifiers mid-aggregation.
type ClientReaderSvc interface {
	// GetClientByID resolves a client identifier. It returns an error wrapping
	// apperrors.ErrNotFound if the identifier is unknown.
	GetClientByID(ctx context.Context, clientID string) (*domain.Client, error)

	// ListClients returns the full registry.
	ListClients(ctx context.Context) ([]domain.Client, error)

	// FilterClientsByLastName returns the clients whose last name contains the keyword.
	FilterClientsByLastName(ctx context.Context, keyword string) ([]domain.Client, error)
}

// ClientWriterSvc defines the write-side capabilities of the client service.
type ClientWriterSvc interface {
	CreateClient(ctx context.Context, req dto.CreateClientRequest, creatorID string) (*domain.Client, error)
	UpdateClient(ctx context.Context, clientID string, req dto.UpdateClientRequest, updaterID string) (*domain.Client, error)
	DeleteClient(ctx context.Context, clientID string) (*domain.Client, error)
}

// ClientSvcFacade combines all client service interfaces.
type ClientSvcFacade interface {
	ClientReaderSvc
	ClientWriterSvc
}
