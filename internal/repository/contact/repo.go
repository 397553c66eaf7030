package contact

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/wb-go/wbf/dbpg"

	"github.com/ayubkhn/contact-mailer/internal/model"
)

var (
	ErrContactNotFound = errors.New("contact not found")
	ErrNoFields        = errors.New("no fields provided for update")
	ErrInvalidField    = errors.New("unknown contact field")
)

// updatableColumns whitelists the columns a partial update may touch.
var updatableColumns = map[string]struct{}{
	"first_name": {}, "last_name": {}, "middle_name": {}, "full_name": {},
	"phone": {}, "gender": {}, "date_of_birth": {}, "alternate_phone": {},
	"address": {}, "city": {}, "state": {}, "postal_code": {}, "country": {},
	"contact_type": {}, "organization_name": {}, "job_title": {}, "department": {},
	"website": {}, "linkedin": {}, "twitter": {}, "facebook": {}, "instagram": {},
	"whatsapp": {}, "email": {}, "relationship": {}, "notes": {},
	"is_favorite": {}, "is_active": {},
}

// Repository provides access to the contacts table.
type Repository struct {
	db *dbpg.DB
}

// NewRepository creates a new contact repository.
func NewRepository(db *dbpg.DB) *Repository {
	return &Repository{db: db}
}

// CreateContact inserts a new contact and returns its ID.
func (r *Repository) CreateContact(ctx context.Context, c model.Contact) (uuid.UUID, error) {
	query := `
		INSERT INTO contacts (
		    first_name, last_name, middle_name, full_name, phone, gender,
		    date_of_birth, alternate_phone, address, city, state, postal_code,
		    country, contact_type, organization_name, job_title, department,
		    website, linkedin, twitter, facebook, instagram, whatsapp,
		    email, relationship, notes, is_favorite, is_active
		) VALUES (
		    $1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14,
		    $15, $16, $17, $18, $19, $20, $21, $22, $23, $24, $25, $26, $27, $28
		)
		RETURNING id;
    `

	var id uuid.UUID
	err := r.db.QueryRowContext(ctx, query,
		c.FirstName, c.LastName, c.MiddleName, c.FullName, c.Phone, c.Gender,
		c.DateOfBirth, c.AlternatePhone, c.Address, c.City, c.State, c.PostalCode,
		c.Country, c.ContactType, c.OrganizationName, c.JobTitle, c.Department,
		c.Website, c.LinkedIn, c.Twitter, c.Facebook, c.Instagram, c.WhatsApp,
		c.Email, c.Relationship, c.Notes, c.IsFavorite, c.IsActive,
	).Scan(&id)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to create contact: %w", err)
	}

	return id, nil
}

// GetAllContacts retrieves all contacts, newest first.
func (r *Repository) GetAllContacts(ctx context.Context) ([]model.Contact, error) {
	query := `
		SELECT id, first_name, last_name, middle_name, full_name, phone, gender,
		       date_of_birth, alternate_phone, address, city, state, postal_code,
		       country, contact_type, organization_name, job_title, department,
		       website, linkedin, twitter, facebook, instagram, whatsapp,
		       email, relationship, notes, is_favorite, is_active, created_at, updated_at
		FROM contacts
		ORDER BY created_at DESC;
    `

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to get contacts: %w", err)
	}
	defer rows.Close()

	var contacts []model.Contact
	for rows.Next() {
		var c model.Contact
		if err := rows.Scan(
			&c.ID, &c.FirstName, &c.LastName, &c.MiddleName, &c.FullName, &c.Phone, &c.Gender,
			&c.DateOfBirth, &c.AlternatePhone, &c.Address, &c.City, &c.State, &c.PostalCode,
			&c.Country, &c.ContactType, &c.OrganizationName, &c.JobTitle, &c.Department,
			&c.Website, &c.LinkedIn, &c.Twitter, &c.Facebook, &c.Instagram, &c.WhatsApp,
			&c.Email, &c.Relationship, &c.Notes, &c.IsFavorite, &c.IsActive, &c.CreatedAt, &c.UpdatedAt,
		); err != nil {
			return nil, err
		}

		contacts = append(contacts, c)
	}

	return contacts, rows.Err()
}

// UpdateContact applies a partial update built from the whitelisted fields map.
// Unknown columns are rejected, so caller input never reaches the SQL text.
func (r *Repository) UpdateContact(ctx context.Context, id uuid.UUID, fields map[string]interface{}) error {
	if len(fields) == 0 {
		return ErrNoFields
	}

	set := make([]string, 0, len(fields)+1)
	args := make([]interface{}, 0, len(fields)+1)

	for col, val := range fields {
		if _, ok := updatableColumns[col]; !ok {
			return fmt.Errorf("%w: %q", ErrInvalidField, col)
		}

		args = append(args, val)
		set = append(set, fmt.Sprintf("%s = $%d", col, len(args)))
	}

	set = append(set, "updated_at = now()")
	args = append(args, id)

	query := fmt.Sprintf(
		"UPDATE contacts SET %s WHERE id = $%d;",
		strings.Join(set, ", "), len(args),
	)

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to update contact: %w", err)
	}

	if rows, _ := res.RowsAffected(); rows == 0 {
		return ErrContactNotFound
	}

	return nil
}

// DeleteContact removes a contact by its ID.
func (r *Repository) DeleteContact(ctx context.Context, id uuid.UUID) error {
	query := `
		DELETE FROM contacts
		WHERE id = $1;
    `

	res, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to delete contact: %w", err)
	}

	if rows, _ := res.RowsAffected(); rows == 0 {
		return ErrContactNotFound
	}

	return nil
}
