package contact

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/wb-go/wbf/dbpg"

	"github.com/ayubkhn/contact-mailer/internal/model"
)

func setupMockDB(t *testing.T) (*Repository, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to open mock db: %v", err)
	}

	wrappedDB := &dbpg.DB{Master: db}
	repo := NewRepository(wrappedDB)

	return repo, mock
}

func TestCreateContact(t *testing.T) {
	repo, mock := setupMockDB(t)

	contactID := uuid.New()
	c := model.Contact{
		FirstName: "Jane",
		LastName:  "Doe",
		Email:     "jane@example.com",
		IsActive:  true,
	}

	mock.ExpectQuery(regexp.QuoteMeta(`
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
    `)).
		WithArgs(
			c.FirstName, c.LastName, c.MiddleName, c.FullName, c.Phone, c.Gender,
			c.DateOfBirth, c.AlternatePhone, c.Address, c.City, c.State, c.PostalCode,
			c.Country, c.ContactType, c.OrganizationName, c.JobTitle, c.Department,
			c.Website, c.LinkedIn, c.Twitter, c.Facebook, c.Instagram, c.WhatsApp,
			c.Email, c.Relationship, c.Notes, c.IsFavorite, c.IsActive,
		).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(contactID))

	id, err := repo.CreateContact(context.Background(), c)
	assert.NoError(t, err)
	assert.Equal(t, contactID, id)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetAllContacts(t *testing.T) {
	repo, mock := setupMockDB(t)

	now := time.Now()
	columns := []string{
		"id", "first_name", "last_name", "middle_name", "full_name", "phone", "gender",
		"date_of_birth", "alternate_phone", "address", "city", "state", "postal_code",
		"country", "contact_type", "organization_name", "job_title", "department",
		"website", "linkedin", "twitter", "facebook", "instagram", "whatsapp",
		"email", "relationship", "notes", "is_favorite", "is_active", "created_at", "updated_at",
	}

	rows := sqlmock.NewRows(columns).
		AddRow(
			uuid.New(), "Jane", "Doe", "", "Jane Doe", "", "",
			nil, "", "", "", "", "",
			"", "personal", "", "", "",
			"", "", "", "", "", "",
			"jane@example.com", "", "", false, true, now, now,
		)

	mock.ExpectQuery(regexp.QuoteMeta(`
		SELECT id, first_name, last_name, middle_name, full_name, phone, gender,
		       date_of_birth, alternate_phone, address, city, state, postal_code,
		       country, contact_type, organization_name, job_title, department,
		       website, linkedin, twitter, facebook, instagram, whatsapp,
		       email, relationship, notes, is_favorite, is_active, created_at, updated_at
		FROM contacts
		ORDER BY created_at DESC;
    `)).WillReturnRows(rows)

	contacts, err := repo.GetAllContacts(context.Background())
	assert.NoError(t, err)
	assert.Len(t, contacts, 1)
	assert.Equal(t, "jane@example.com", contacts[0].Email)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateContact(t *testing.T) {
	repo, mock := setupMockDB(t)

	id := uuid.New()

	mock.ExpectExec(regexp.QuoteMeta(
		`UPDATE contacts SET city = $1, updated_at = now() WHERE id = $2;`,
	)).
		WithArgs("Berlin", id).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.UpdateContact(context.Background(), id, map[string]interface{}{"city": "Berlin"})
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())

	mock.ExpectExec(regexp.QuoteMeta(
		`UPDATE contacts SET city = $1, updated_at = now() WHERE id = $2;`,
	)).
		WithArgs("Berlin", id).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err = repo.UpdateContact(context.Background(), id, map[string]interface{}{"city": "Berlin"})
	assert.ErrorIs(t, err, ErrContactNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateContact_NoFields(t *testing.T) {
	repo, _ := setupMockDB(t)

	err := repo.UpdateContact(context.Background(), uuid.New(), map[string]interface{}{})
	assert.ErrorIs(t, err, ErrNoFields)
}

func TestUpdateContact_UnknownColumn(t *testing.T) {
	repo, _ := setupMockDB(t)

	err := repo.UpdateContact(context.Background(), uuid.New(), map[string]interface{}{
		"created_at; DROP TABLE contacts": "x",
	})
	assert.ErrorIs(t, err, ErrInvalidField)
}

func TestDeleteContact(t *testing.T) {
	repo, mock := setupMockDB(t)

	id := uuid.New()

	mock.ExpectExec(regexp.QuoteMeta(`
		DELETE FROM contacts
		WHERE id = $1;
    `)).
		WithArgs(id).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.DeleteContact(context.Background(), id)
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())

	mock.ExpectExec(regexp.QuoteMeta(`
		DELETE FROM contacts
		WHERE id = $1;
    `)).
		WithArgs(id).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err = repo.DeleteContact(context.Background(), id)
	assert.ErrorIs(t, err, ErrContactNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}
