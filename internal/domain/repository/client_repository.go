package repository

import (
	"context"
	"errors"

	"stargaze/internal/domain/entity"
)

// ErrClientNotFound is a domain-specific error returned when no client matches the lookup.
var ErrClientNotFound = errors.New("client not found")

// ClientRepository defines the standard operations for client persistence.
type ClientRepository interface {
	// FindByEmail retrieves a single client by email, the login identifier.
	FindByEmail(ctx context.Context, email string) (*entity.Client, error)

	// Create persists a new client record, including the credential, as one insert.
	Create(ctx context.Context, client *entity.Client) error
}
