package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/MihaiS-git/MovieRentalsSystem/internal/core/domain"
	portsrepo "github.com/MihaiS-git/MovieRentalsSystem/internal/core/ports/repositories"
	portssvc "github.com/MihaiS-git/MovieRentalsSystem/internal/core/ports/services"
	"github.com/MihaiS-git/MovieRentalsSystem/internal/dto"
	"github.com/google/uuid"
)

// clientService implements the ClientSvcFacade interface.
type clientService struct {
	BaseService
	clientRepo portsrepo.ClientRepositoryFacade
}

// NewClientService creates a new client service.
func NewClientService(clientRepo portsrepo.ClientRepositoryFacade) portssvc.ClientSvcFacade {
	return &clientService{clientRepo: clientRepo}
}

// Ensure clientService implements the ClientSvcFacade interface
var _ portssvc.ClientSvcFacade = (*clientService)(nil)

// CreateClient registers a new client.
func (s *clientService) CreateClient(ctx context.Context, req dto.CreateClientRequest, creatorID string) (*domain.Client, error) {
	now := time.Now().UTC()

	client := domain.Client{
		ClientID:    uuid.NewString(),
		FirstName:   req.FirstName,
		LastName:    req.LastName,
		Email:       req.Email,
		DateOfBirth: req.DateOfBirth,
		Subscribed:  req.Subscribed,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorID,
		},
	}

	if err := s.clientRepo.SaveClient(ctx, client); err != nil {
		s.LogError(ctx, err, "Failed to save client", slog.String("email", req.Email))
		return nil, fmt.Errorf("failed to create client: %w", err)
	}

	s.LogInfo(ctx, "Client created", slog.String("client_id", client.ClientID))
	return &client, nil
}

// GetClientByID resolves a client identifier.
func (s *clientService) GetClientByID(ctx context.Context, clientID string) (*domain.Client, error) {
	client, err := s.clientRepo.FindClientByID(ctx, clientID)
	if err != nil {
		return nil, fmt.Errorf("failed to get client %s: %w", clientID, err)
	}
	return client, nil
}

// ListClients returns the full registry.
func (s *clientService) ListClients(ctx context.Context) ([]domain.Client, error) {
	clients, err := s.clientRepo.ListClients(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list clients: %w", err)
	}
	if clients == nil {
		return []domain.Client{}, nil
	}
	return clients, nil
}

// FilterClientsByLastName returns the clients whose last name contains the keyword.
func (s *clientService) FilterClientsByLastName(ctx context.Context, keyword string) ([]domain.Client, error) {
	clients, err := s.clientRepo.ListClients(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to filter clients: %w", err)
	}

	filtered := make([]domain.Client, 0)
	for _, c := range clients {
		if strings.Contains(c.LastName, keyword) {
			filtered = append(filtered, c)
		}
	}
	return filtered, nil
}

// UpdateClient fully replaces the stored fields of a client.
func (s *clientService) UpdateClient(ctx context.Context, clientID string, req dto.UpdateClientRequest, updaterID string) (*domain.Client, error) {
	client, err := s.clientRepo.FindClientByID(ctx, clientID)
	if err != nil {
		return nil, fmt.Errorf("failed to find client %s for update: %w", clientID, err)
	}

	client.FirstName = req.FirstName
	client.LastName = req.LastName
	client.Email = req.Email
	client.DateOfBirth = req.DateOfBirth
	client.Subscribed = req.Subscribed
	client.LastUpdatedAt = time.Now().UTC()
	client.LastUpdatedBy = updaterID

	if err := s.clientRepo.UpdateClient(ctx, *client); err != nil {
		s.LogError(ctx, err, "Failed to update client", slog.String("client_id", clientID))
		return nil, fmt.Errorf("failed to update client %s: %w", clientID, err)
	}

	s.LogInfo(ctx, "Client updated", slog.String("client_id", clientID))
	return client, nil
}

// DeleteClient removes a client and returns the removed record.
func (s *clientService) DeleteClient(ctx context.Context, clientID string) (*domain.Client, error) {
	client, err := s.clientRepo.DeleteClient(ctx, clientID)
	if err != nil {
		return nil, fmt.Errorf("failed to delete client %s: %w", clientID, err)
	}

	s.LogInfo(ctx, "Client deleted", slog.String("client_id", clientID))
	return client, nil
}
