// Package contact implements the address-book side of the dashboard:
// CRUD over contacts plus the bulk JSON import fed by the spreadsheet
// upload in the UI.
package contact

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/ayubkhn/contact-mailer/internal/model"
)

//go:generate mockgen -source=service.go -destination=../../mocks/service/contact/mock.go -package=mocks

// ErrEmailRequired marks a contact rejected for missing its only mandatory field.
var ErrEmailRequired = errors.New("email is required")

type contactRepository interface {
	CreateContact(ctx context.Context, c model.Contact) (uuid.UUID, error)
	GetAllContacts(ctx context.Context) ([]model.Contact, error)
	UpdateContact(ctx context.Context, id uuid.UUID, fields map[string]interface{}) error
	DeleteContact(ctx context.Context, id uuid.UUID) error
}

// Service provides contact management on top of the repository.
type Service struct {
	repo contactRepository
}

// NewService creates a new contact service.
func NewService(repo contactRepository) *Service {
	return &Service{repo: repo}
}

// CreateContact validates and stores one contact, returning its ID.
func (s *Service) CreateContact(ctx context.Context, c model.Contact) (uuid.UUID, error) {
	if strings.TrimSpace(c.Email) == "" {
		return uuid.Nil, ErrEmailRequired
	}

	id, err := s.repo.CreateContact(ctx, c)
	if err != nil {
		return uuid.Nil, fmt.Errorf("create contact: %w", err)
	}

	return id, nil
}

// GetAllContacts returns every contact, newest first.
func (s *Service) GetAllContacts(ctx context.Context) ([]model.Contact, error) {
	contacts, err := s.repo.GetAllContacts(ctx)
	if err != nil {
		return nil, fmt.Errorf("get contacts: %w", err)
	}

	return contacts, nil
}

// UpdateContact applies a partial update to one contact.
func (s *Service) UpdateContact(ctx context.Context, id uuid.UUID, fields map[string]interface{}) error {
	if err := s.repo.UpdateContact(ctx, id, fields); err != nil {
		return fmt.Errorf("update contact: %w", err)
	}

	return nil
}

// DeleteContact removes one contact.
func (s *Service) DeleteContact(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.DeleteContact(ctx, id); err != nil {
		return fmt.Errorf("delete contact: %w", err)
	}

	return nil
}

// ImportContact is one row of a bulk import. The loosely typed fields come
// straight out of client-side spreadsheet parsing: booleans may arrive as
// strings or numbers, dates as ISO strings or Excel serial numbers.
type ImportContact struct {
	FirstName        string      `json:"first_name"`
	LastName         string      `json:"last_name"`
	MiddleName       string      `json:"middle_name"`
	FullName         string      `json:"full_name"`
	Phone            string      `json:"phone"`
	Gender           string      `json:"gender"`
	DateOfBirth      interface{} `json:"date_of_birth"`
	AlternatePhone   string      `json:"alternate_phone"`
	Address          string      `json:"address"`
	City             string      `json:"city"`
	State            string      `json:"state"`
	PostalCode       string      `json:"postal_code"`
	Country          string      `json:"country"`
	ContactType      string      `json:"contact_type"`
	OrganizationName string      `json:"organization_name"`
	JobTitle         string      `json:"job_title"`
	Department       string      `json:"department"`
	Website          string      `json:"website"`
	LinkedIn         string      `json:"linkedin"`
	Twitter          string      `json:"twitter"`
	Facebook         string      `json:"facebook"`
	Instagram        string      `json:"instagram"`
	WhatsApp         string      `json:"whatsapp"`
	Email            string      `json:"email"`
	Relationship     string      `json:"relationship"`
	Notes            string      `json:"notes"`
	IsFavorite       interface{} `json:"is_favorite"`
	IsActive         interface{} `json:"is_active"`
}

// ImportError describes why one import row was rejected.
type ImportError struct {
	Index int    `json:"index"`
	Email string `json:"email,omitempty"`
	Error string `json:"error"`
}

// ImportResult summarizes one bulk import call.
type ImportResult struct {
	Inserted int           `json:"inserted"`
	Failed   int           `json:"failed"`
	Errors   []ImportError `json:"errors"`
}

// Import stores a batch of contacts, collecting per-row errors instead of
// aborting on the first bad row.
func (s *Service) Import(ctx context.Context, rows []ImportContact) ImportResult {
	var result ImportResult

	for i, row := range rows {
		if strings.TrimSpace(row.Email) == "" {
			result.Failed++
			result.Errors = append(result.Errors, ImportError{Index: i, Error: ErrEmailRequired.Error()})
			continue
		}

		c := model.Contact{
			FirstName:        row.FirstName,
			LastName:         row.LastName,
			MiddleName:       row.MiddleName,
			FullName:         row.FullName,
			Phone:            row.Phone,
			Gender:           row.Gender,
			DateOfBirth:      normalizeDate(row.DateOfBirth),
			AlternatePhone:   row.AlternatePhone,
			Address:          row.Address,
			City:             row.City,
			State:            row.State,
			PostalCode:       row.PostalCode,
			Country:          row.Country,
			ContactType:      row.ContactType,
			OrganizationName: row.OrganizationName,
			JobTitle:         row.JobTitle,
			Department:       row.Department,
			Website:          row.Website,
			LinkedIn:         row.LinkedIn,
			Twitter:          row.Twitter,
			Facebook:         row.Facebook,
			Instagram:        row.Instagram,
			WhatsApp:         row.WhatsApp,
			Email:            strings.TrimSpace(row.Email),
			Relationship:     row.Relationship,
			Notes:            row.Notes,
			IsFavorite:       normalizeBool(row.IsFavorite),
			IsActive:         normalizeBool(row.IsActive),
		}

		if _, err := s.repo.CreateContact(ctx, c); err != nil {
			result.Failed++
			result.Errors = append(result.Errors, ImportError{Index: i, Email: c.Email, Error: err.Error()})
			continue
		}

		result.Inserted++
	}

	return result
}

// excelEpochOffset is the number of days between the Excel serial-date epoch
// (1900-01-01, with the off-by-two leap bug) and the Unix epoch.
const excelEpochOffset = 25569

// normalizeDate accepts ISO-ish date strings and Excel serial numbers
// (JSON numbers decode as float64) and returns an ISO date, or nil when the
// value cannot be interpreted.
func normalizeDate(v interface{}) *string {
	switch val := v.(type) {
	case nil:
		return nil
	case float64:
		t := time.Unix(int64((val-excelEpochOffset)*86400), 0).UTC()
		if t.Year() < 1 || t.Year() > 9999 {
			return nil
		}

		iso := t.Format("2006-01-02")
		return &iso
	case string:
		val = strings.TrimSpace(val)
		if val == "" {
			return nil
		}

		for _, layout := range []string{"2006-01-02", time.RFC3339, "2006-01-02 15:04:05", "01/02/2006"} {
			if t, err := time.Parse(layout, val); err == nil {
				iso := t.Format("2006-01-02")
				return &iso
			}
		}

		return nil
	default:
		return nil
	}
}

// normalizeBool accepts booleans, numbers and truthy strings
// ("true", "yes", "y", "1").
func normalizeBool(v interface{}) bool {
	switch val := v.(type) {
	case bool:
		return val
	case float64:
		return val != 0
	case string:
		s := strings.ToLower(strings.TrimSpace(val))
		return s == "true" || s == "yes" || s == "1" || s == "y"
	default:
		return false
	}
}
