package contact

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/google/uuid"
	"github.com/wb-go/wbf/ginext"
	"github.com/wb-go/wbf/zlog"

	"github.com/ayubkhn/contact-mailer/internal/api/respond"
	"github.com/ayubkhn/contact-mailer/internal/model"
	contactrepo "github.com/ayubkhn/contact-mailer/internal/repository/contact"
	contactsvc "github.com/ayubkhn/contact-mailer/internal/service/contact"
)

//go:generate mockgen -source=handler.go -destination=../../../mocks/api/handlers/contact/mock.go -package=mocks

type contactService interface {
	CreateContact(ctx context.Context, c model.Contact) (uuid.UUID, error)
	GetAllContacts(ctx context.Context) ([]model.Contact, error)
	UpdateContact(ctx context.Context, id uuid.UUID, fields map[string]interface{}) error
	DeleteContact(ctx context.Context, id uuid.UUID) error
	Import(ctx context.Context, rows []contactsvc.ImportContact) contactsvc.ImportResult
}

// Handler serves the contact CRUD and bulk-import endpoints.
type Handler struct {
	service contactService
}

// NewHandler creates a new contact handler.
func NewHandler(s contactService) *Handler {
	return &Handler{service: s}
}

// Create stores one new contact.
func (h *Handler) Create(c *ginext.Context) {
	var contact model.Contact

	if err := json.NewDecoder(c.Request.Body).Decode(&contact); err != nil {
		zlog.Logger.Warn().Err(err).Msg("failed to decode contact")
		respond.Fail(c.Writer, http.StatusBadRequest, fmt.Errorf("invalid request body"))
		return
	}

	id, err := h.service.CreateContact(c.Request.Context(), contact)
	if err != nil {
		if errors.Is(err, contactsvc.ErrEmailRequired) {
			respond.Fail(c.Writer, http.StatusBadRequest, err)
			return
		}

		zlog.Logger.Error().Err(err).Msg("failed to create contact")
		respond.Fail(c.Writer, http.StatusInternalServerError, fmt.Errorf("internal server error"))
		return
	}

	respond.Created(c.Writer, id)
}

// GetAll returns every contact, newest first.
func (h *Handler) GetAll(c *ginext.Context) {
	contacts, err := h.service.GetAllContacts(c.Request.Context())
	if err != nil {
		zlog.Logger.Error().Err(err).Msg("failed to get contacts")
		respond.Fail(c.Writer, http.StatusInternalServerError, fmt.Errorf("internal server error"))
		return
	}

	respond.OK(c.Writer, contacts)
}

// Update applies a partial update to one contact. The body is a JSON object
// of column -> value pairs; unknown columns are rejected.
func (h *Handler) Update(c *ginext.Context) {
	id, ok := h.parseID(c)
	if !ok {
		return
	}

	var fields map[string]interface{}
	if err := json.NewDecoder(c.Request.Body).Decode(&fields); err != nil {
		respond.Fail(c.Writer, http.StatusBadRequest, fmt.Errorf("invalid request body"))
		return
	}

	if err := h.service.UpdateContact(c.Request.Context(), id, fields); err != nil {
		switch {
		case errors.Is(err, contactrepo.ErrContactNotFound):
			respond.Fail(c.Writer, http.StatusNotFound, fmt.Errorf("contact not found"))
		case errors.Is(err, contactrepo.ErrNoFields), errors.Is(err, contactrepo.ErrInvalidField):
			respond.Fail(c.Writer, http.StatusBadRequest, err)
		default:
			zlog.Logger.Error().Err(err).Str("id", id.String()).Msg("failed to update contact")
			respond.Fail(c.Writer, http.StatusInternalServerError, fmt.Errorf("internal server error"))
		}
		return
	}

	respond.OK(c.Writer, "contact updated")
}

// Delete removes one contact.
func (h *Handler) Delete(c *ginext.Context) {
	id, ok := h.parseID(c)
	if !ok {
		return
	}

	if err := h.service.DeleteContact(c.Request.Context(), id); err != nil {
		if errors.Is(err, contactrepo.ErrContactNotFound) {
			respond.Fail(c.Writer, http.StatusNotFound, fmt.Errorf("contact not found"))
			return
		}

		zlog.Logger.Error().Err(err).Str("id", id.String()).Msg("failed to delete contact")
		respond.Fail(c.Writer, http.StatusInternalServerError, fmt.Errorf("internal server error"))
		return
	}

	respond.OK(c.Writer, "contact deleted")
}

// importRequest is the bulk import payload: rows parsed client-side from a
// spreadsheet.
type importRequest struct {
	Contacts []contactsvc.ImportContact `json:"contacts"`
}

// Import stores a batch of contacts, reporting per-row errors.
func (h *Handler) Import(c *ginext.Context) {
	var req importRequest
	if err := json.NewDecoder(c.Request.Body).Decode(&req); err != nil {
		respond.Fail(c.Writer, http.StatusBadRequest, fmt.Errorf("invalid request body"))
		return
	}

	if req.Contacts == nil {
		respond.Fail(c.Writer, http.StatusBadRequest, fmt.Errorf("'contacts' must be an array"))
		return
	}

	result := h.service.Import(c.Request.Context(), req.Contacts)

	respond.OK(c.Writer, result)
}

func (h *Handler) parseID(c *ginext.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		zlog.Logger.Warn().Err(err).Str("id", c.Param("id")).Msg("failed to parse id")
		respond.Fail(c.Writer, http.StatusBadRequest, fmt.Errorf("invalid id"))
		return uuid.Nil, false
	}

	return id, true
}
