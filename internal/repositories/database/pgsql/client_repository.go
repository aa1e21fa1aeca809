package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/MihaiS-git/MovieRentalsSystem/internal/apperrors"
	"github.com/MihaiS-git/MovieRentalsSystem/internal/core/domain"
	portsrepo "github.com/MihaiS-git/MovieRentalsSystem/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type pgxClientRepository struct {
	pool *pgxpool.Pool
}

// newPgxClientRepository creates a new repository for the client registry.
func newPgxClientRepository(pool *pgxpool.Pool) portsrepo.ClientRepositoryFacade {
	return &pgxClientRepository{pool: pool}
}

const clientColumns = `client_id, first_name, last_name, email, date_of_birth, subscribed, created_at, created_by, last_updated_at, last_updated_by`

func scanClient(row pgx.Row) (*domain.Client, error) {
	var c domain.Client
	err := row.Scan(
		&c.ClientID,
		&c.FirstName,
		&c.LastName,
		&c.Email,
		&c.DateOfBirth,
		&c.Subscribed,
		&c.CreatedAt,
		&c.CreatedBy,
		&c.LastUpdatedAt,
		&c.LastUpdatedBy,
	)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// SaveClient inserts a new client. Email addresses are unique.
func (r *pgxClientRepository) SaveClient(ctx context.Context, client domain.Client) error {
	query := `
		INSERT INTO clients (` + clientColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10);
	`
	_, err := r.pool.Exec(ctx, query,
		client.ClientID,
		client.FirstName,
		client.LastName,
		client.Email,
		client.DateOfBirth,
		client.Subscribed,
		client.CreatedAt,
		client.CreatedBy,
		client.LastUpdatedAt,
		client.LastUpdatedBy,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return apperrors.ErrDuplicate
		}
		return fmt.Errorf("failed to save client %s: %w", client.ClientID, err)
	}
	return nil
}

// FindClientByID retrieves a client by its identifier.
func (r *pgxClientRepository) FindClientByID(ctx context.Context, clientID string) (*domain.Client, error) {
	query := `SELECT ` + clientColumns + ` FROM clients WHERE client_id = $1;`

	client, err := scanClient(r.pool.QueryRow(ctx, query, clientID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find client by id %s: %w", clientID, err)
	}
	return client, nil
}

// ListClients retrieves all registered clients.
func (r *pgxClientRepository) ListClients(ctx context.Context) ([]domain.Client, error) {
	query := `SELECT ` + clientColumns + ` FROM clients ORDER BY created_at, client_id;`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list clients: %w", err)
	}
	defer rows.Close()

	clients := make([]domain.Client, 0)
	for rows.Next() {
		client, err := scanClient(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan client row: %w", err)
		}
		clients = append(clients, *client)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed iterating client rows: %w", err)
	}
	return clients, nil
}

// UpdateClient replaces the stored client carrying the same identifier.
func (r *pgxClientRepository) UpdateClient(ctx context.Context, client domain.Client) error {
	query := `
		UPDATE clients
		SET first_name = $2, last_name = $3, email = $4, date_of_birth = $5,
			subscribed = $6, last_updated_at = $7, last_updated_by = $8
		WHERE client_id = $1;
	`
	tag, err := r.pool.Exec(ctx, query,
		client.ClientID,
		client.FirstName,
		client.LastName,
		client.Email,
		client.DateOfBirth,
		client.Subscribed,
		client.LastUpdatedAt,
		client.LastUpdatedBy,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return apperrors.ErrDuplicate
		}
		return fmt.Errorf("failed to update client %s: %w", client.ClientID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// DeleteClient removes a client and returns the removed record.
func (r *pgxClientRepository) DeleteClient(ctx context.Context, clientID string) (*domain.Client, error) {
	query := `DELETE FROM clients WHERE client_id = $1 RETURNING ` + clientColumns + `;`

	client, err := scanClient(r.pool.QueryRow(ctx, query, clientID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to delete client %s: %w", clientID, err)
	}
	return client, nil
}
