package model

import (
	"time"

	"github.com/google/uuid"
)

// ClientModel mirrors the 'users' table, an email namespace independent of astrologers.
type ClientModel struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	FirstName    string    `gorm:"type:varchar(100);not null"`
	LastName     string    `gorm:"type:varchar(100)"`
	DOB          string    `gorm:"column:dob;type:varchar(20)"`
	City         string    `gorm:"type:varchar(100)"`
	Birthplace   string    `gorm:"type:varchar(100)"`
	MobileNumber string    `gorm:"type:varchar(20)"`
	BirthTime    string    `gorm:"type:varchar(20)"`
	Gender       string    `gorm:"type:varchar(20)"`
	Email        string    `gorm:"type:varchar(255);unique;not null"`
	State        string    `gorm:"type:varchar(100);default:'Maharashtra'"`
	Country      string    `gorm:"type:varchar(100);default:'India'"`
	District     string    `gorm:"type:varchar(100)"`
	PinCode      string    `gorm:"type:varchar(10)"`
	ProfilePhoto []byte    `gorm:"type:bytea"`
	PasswordHash string    `gorm:"column:password;type:varchar(255);not null"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// TableName explicitly sets the table name for GORM.
func (ClientModel) TableName() string {
	return "users"
}
