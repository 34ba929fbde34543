package entity

import (
	"time"

	"github.com/google/uuid"
)

// Client represents a regular client account booking consultations.
// Persisted in the 'users' table; an independent email namespace from
// the astrologer store.
type Client struct {
	ID           uuid.UUID
	FirstName    string
	LastName     string
	DOB          string
	City         string
	Birthplace   string
	MobileNumber string
	BirthTime    string // Birth time for chart preparation, e.g. "06:45".
	Gender       string
	Email        string
	State        string
	Country      string
	District     string
	PinCode      string
	ProfilePhoto []byte
	PasswordHash string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
