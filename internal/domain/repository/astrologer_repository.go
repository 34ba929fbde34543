// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"stargaze/internal/domain/entity"
)

// ErrAstrologerNotFound is a domain-specific error returned when no astrologer matches the lookup.
var ErrAstrologerNotFound = errors.New("astrologer not found")

// AstrologerRepository defines the standard operations for astrologer persistence.
// The application layer will depend on this interface, not the concrete implementation.
type AstrologerRepository interface {
	// FindByEmail retrieves a single astrologer by email, the login identifier.
	FindByEmail(ctx context.Context, email string) (*entity.Astrologer, error)

	// Create persists a new astrologer record, including the credential, as one insert.
	Create(ctx context.Context, astrologer *entity.Astrologer) error
}
