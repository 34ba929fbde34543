package service

import (
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Claims defines the custom claims carried by issued tokens.
type Claims struct {
	ID    uuid.UUID `json:"id"`
	Email string    `json:"email"`
	jwt.RegisteredClaims
}

// TokenService defines the interface for issuing and validating bearer tokens.
// This abstracts the details of token creation from the use cases.
type TokenService interface {
	// Issue creates a signed, time-limited token for the given subject.
	Issue(subjectID uuid.UUID, email string) (string, error)

	// Validate checks the signature and expiry of a token string and
	// returns its claims. Any failure (bad signature, malformed structure,
	// expired) yields an error and nil claims.
	Validate(tokenString string) (*Claims, error)
}
