// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// RegisterAstrologerInput defines the data required to register a new astrologer.
type RegisterAstrologerInput struct {
	FirstName       string
	LastName        string
	MobileNumber    string
	AadharNumber    string
	DOB             string
	Gender          string
	ExperienceYears string
	LanguagesKnown  string
	Skills          string
	Email           string
	District        string
	PinCode         string
	RatePerMin      string
	Password        string
	ProfilePhoto    []byte // Optional; nil when no photo was uploaded.
}

// RegisterClientInput defines the data required to register a new client.
type RegisterClientInput struct {
	FirstName    string
	LastName     string
	DOB          string
	City         string
	Birthplace   string
	MobileNumber string
	BirthTime    string
	Gender       string
	Email        string
	District     string
	PinCode      string
	Password     string
}

// LoginInput defines the data required to log in, for either role.
type LoginInput struct {
	Email    string
	Password string
}

// --- Output DTOs ---

// RegisterOutput returns the newly created account's identity.
type RegisterOutput struct {
	ID    uuid.UUID
	Email string
}

// LoginOutput returns the issued token after a successful login.
type LoginOutput struct {
	Token string
}

// AuthUsecase defines the interface for registration and login operations.
// This is the contract that the delivery layer (API handlers) will depend on.
type AuthUsecase interface {
	RegisterAstrologer(ctx context.Context, input *RegisterAstrologerInput) (*RegisterOutput, error)
	RegisterClient(ctx context.Context, input *RegisterClientInput) (*RegisterOutput, error)
	LoginAstrologer(ctx context.Context, input *LoginInput) (*LoginOutput, error)
	LoginClient(ctx context.Context, input *LoginInput) (*LoginOutput, error)
}
