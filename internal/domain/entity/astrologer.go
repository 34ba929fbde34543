// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Astrologer represents a consulting astrologer account.
// Email uniquely identifies at most one astrologer; the astrologer and
// client stores are independent namespaces, so the same email may also
// exist as a client account.
type Astrologer struct {
	ID              uuid.UUID // The unique identifier for the astrologer.
	FirstName       string
	LastName        string
	MobileNumber    string
	AadharNumber    string
	DOB             string // Date of birth as submitted, e.g. "1990-04-21".
	Gender          string
	ExperienceYears string
	LanguagesKnown  string
	Skills          string
	Email           string // Login identifier, exact-match unique per store.
	ProfilePhoto    []byte // Optional raw photo bytes, nil when not uploaded.
	District        string
	Country         string
	PinCode         string
	RatePerMin      string
	PasswordHash    string // Opaque bcrypt digest, never the plaintext.
	CreatedAt       time.Time
	UpdatedAt       time.Time
}
