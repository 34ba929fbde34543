package model

import (
	"time"

	"github.com/google/uuid"
)

// AstrologerModel mirrors the 'astrologers' table. PostgreSQL generates UUIDs via gen_random_uuid().
type AstrologerModel struct {
	ID              uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	FirstName       string    `gorm:"type:varchar(100);not null"`
	LastName        string    `gorm:"type:varchar(100)"`
	MobileNumber    string    `gorm:"type:varchar(20)"`
	AadharNumber    string    `gorm:"type:varchar(20)"`
	DOB             string    `gorm:"column:dob;type:varchar(20)"`
	Gender          string    `gorm:"type:varchar(20)"`
	ExperienceYears string    `gorm:"type:varchar(10)"`
	LanguagesKnown  string    `gorm:"type:text"`
	Skills          string    `gorm:"type:text"`
	Email           string    `gorm:"type:varchar(255);unique;not null"`
	ProfilePhoto    []byte    `gorm:"type:bytea"`
	District        string    `gorm:"type:varchar(100)"`
	Country         string    `gorm:"type:varchar(100);default:'India'"`
	PinCode         string    `gorm:"type:varchar(10)"`
	RatePerMin      string    `gorm:"type:varchar(20)"`
	PasswordHash    string    `gorm:"column:password;type:varchar(255);not null"`
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// TableName explicitly sets the table name for GORM.
func (AstrologerModel) TableName() string {
	return "astrologers"
}
