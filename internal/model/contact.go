package model

import (
	"time"

	"github.com/google/uuid"
)

// Contact represents a single address-book entry of the dashboard.
//
// Email is the only required field; everything else mirrors the data-entry
// form and may be empty.
type Contact struct {
	ID               uuid.UUID `json:"id"`
	FirstName        string    `json:"first_name"`
	LastName         string    `json:"last_name"`
	MiddleName       string    `json:"middle_name"`
	FullName         string    `json:"full_name"`
	Phone            string    `json:"phone"`
	Gender           string    `json:"gender"`
	DateOfBirth      *string   `json:"date_of_birth"` // ISO date (YYYY-MM-DD)
	AlternatePhone   string    `json:"alternate_phone"`
	Address          string    `json:"address"`
	City             string    `json:"city"`
	State            string    `json:"state"`
	PostalCode       string    `json:"postal_code"`
	Country          string    `json:"country"`
	ContactType      string    `json:"contact_type"`
	OrganizationName string    `json:"organization_name"`
	JobTitle         string    `json:"job_title"`
	Department       string    `json:"department"`
	Website          string    `json:"website"`
	LinkedIn         string    `json:"linkedin"`
	Twitter          string    `json:"twitter"`
	Facebook         string    `json:"facebook"`
	Instagram        string    `json:"instagram"`
	WhatsApp         string    `json:"whatsapp"`
	Email            string    `json:"email"`
	Relationship     string    `json:"relationship"`
	Notes            string    `json:"notes"`
	IsFavorite       bool      `json:"is_favorite"`
	IsActive         bool      `json:"is_active"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}
