package mail

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/wb-go/wbf/ginext"
	"github.com/wb-go/wbf/retry"
	"github.com/wb-go/wbf/zlog"

	"github.com/ayubkhn/contact-mailer/internal/api/dto"
	"github.com/ayubkhn/contact-mailer/internal/api/respond"
	"github.com/ayubkhn/contact-mailer/internal/config"
	"github.com/ayubkhn/contact-mailer/internal/model"
	"github.com/ayubkhn/contact-mailer/internal/repository/emaillog"
	"github.com/ayubkhn/contact-mailer/internal/repository/schedule"
	"github.com/ayubkhn/contact-mailer/internal/service/delivery"
)

//go:generate mockgen -source=handler.go -destination=../../../mocks/api/handlers/mail/mock.go -package=mocks

// trackingPixel is the fixed 1x1 transparent GIF served by the tracking endpoint.
var trackingPixel, _ = base64.StdEncoding.DecodeString(
	"R0lGODlhAQABAPAAAAAAAAAAACH5BAEAAAAALAAAAAABAAEAAAICRAEAOw==",
)

type mailService interface {
	Submit(ctx context.Context, strategy retry.Strategy, req delivery.SendRequest) (delivery.SubmitResult, error)
	TrackOpen(ctx context.Context, strategy retry.Strategy, recordID uuid.UUID) error
	Cancel(ctx context.Context, jobID uuid.UUID) error
	OverrideRecordStatus(ctx context.Context, strategy retry.Strategy, recordID uuid.UUID, errMsg string) error
	RecordStatus(ctx context.Context, strategy retry.Strategy, recordID uuid.UUID) (model.DeliveryStatus, error)
	History(ctx context.Context) ([]model.EmailLog, error)
	ScheduledEmails(ctx context.Context) ([]model.ScheduledJob, error)
	DeliveryDetail(ctx context.Context, logID uuid.UUID) ([]model.DeliveryDetail, error)
	DeliveryStats(ctx context.Context) ([]model.StatusCount, error)
	Usage(ctx context.Context) (delivery.DailyUsage, error)
}

// Handler serves the delivery-pipeline endpoints.
type Handler struct {
	service   mailService
	validator *validator.Validate
	cfg       *config.Config
}

// NewHandler creates a new mail handler.
func NewHandler(s mailService, v *validator.Validate, cfg *config.Config) *Handler {
	return &Handler{service: s, validator: v, cfg: cfg}
}

// Send accepts a bulk-send request, either as a plain JSON body or as a
// multipart form with a "data" JSON field plus "attachments" files.
func (h *Handler) Send(c *ginext.Context) {
	req, err := h.parseSendRequest(c)
	if err != nil {
		zlog.Logger.Warn().Err(err).Msg("failed to parse send request")
		respond.Fail(c.Writer, http.StatusBadRequest, err)
		return
	}

	result, err := h.service.Submit(c.Request.Context(), h.cfg.Retry, req)
	if err != nil {
		if errors.Is(err, delivery.ErrValidation) {
			respond.Fail(c.Writer, http.StatusBadRequest, err)
			return
		}

		zlog.Logger.Error().Err(err).Msg("failed to submit send request")
		respond.Fail(c.Writer, http.StatusInternalServerError, fmt.Errorf("internal server error"))
		return
	}

	respond.OK(c.Writer, result)
}

func (h *Handler) parseSendRequest(c *ginext.Context) (delivery.SendRequest, error) {
	var body dto.SendRequest

	contentType := c.Request.Header.Get("Content-Type")

	var attachments []model.Attachment
	if strings.HasPrefix(contentType, "multipart/") {
		form, err := c.MultipartForm()
		if err != nil {
			return delivery.SendRequest{}, fmt.Errorf("invalid multipart form")
		}

		data := form.Value["data"]
		if len(data) == 0 {
			return delivery.SendRequest{}, fmt.Errorf("missing data field")
		}

		if err := json.Unmarshal([]byte(data[0]), &body); err != nil {
			return delivery.SendRequest{}, fmt.Errorf("invalid data field")
		}

		files := form.File["attachments"]
		if len(files) > h.cfg.Mail.MaxAttachments {
			return delivery.SendRequest{}, fmt.Errorf("at most %d attachments allowed", h.cfg.Mail.MaxAttachments)
		}

		for _, fh := range files {
			if fh.Size > h.cfg.Mail.MaxAttachSize {
				return delivery.SendRequest{}, fmt.Errorf("attachment %s exceeds size limit", fh.Filename)
			}

			f, err := fh.Open()
			if err != nil {
				return delivery.SendRequest{}, fmt.Errorf("failed to read attachment %s", fh.Filename)
			}

			content, err := io.ReadAll(f)
			f.Close()
			if err != nil {
				return delivery.SendRequest{}, fmt.Errorf("failed to read attachment %s", fh.Filename)
			}

			attachments = append(attachments, model.Attachment{Filename: fh.Filename, Content: content})
		}
	} else {
		if err := json.NewDecoder(c.Request.Body).Decode(&body); err != nil {
			return delivery.SendRequest{}, fmt.Errorf("invalid request body")
		}
	}

	if err := h.validator.Struct(body); err != nil {
		return delivery.SendRequest{}, fmt.Errorf("validation error: %s", err.Error())
	}

	req := delivery.SendRequest{
		Subject:     body.Subject,
		Body:        body.Body,
		Recipients:  body.Recipients,
		Attachments: attachments,
	}

	if body.ScheduledAt != "" {
		scheduledAt, err := time.Parse(time.RFC3339, body.ScheduledAt)
		if err != nil {
			return delivery.SendRequest{}, fmt.Errorf("invalid scheduled_at, want RFC 3339")
		}

		req.ScheduledAt = &scheduledAt
	}

	return req, nil
}

// History returns all email logs, newest first.
func (h *Handler) History(c *ginext.Context) {
	logs, err := h.service.History(c.Request.Context())
	if err != nil {
		zlog.Logger.Error().Err(err).Msg("failed to get email history")
		respond.Fail(c.Writer, http.StatusInternalServerError, fmt.Errorf("internal server error"))
		return
	}

	respond.OK(c.Writer, logs)
}

// Scheduled returns all jobs still waiting for promotion, soonest first.
func (h *Handler) Scheduled(c *ginext.Context) {
	jobs, err := h.service.ScheduledEmails(c.Request.Context())
	if err != nil {
		zlog.Logger.Error().Err(err).Msg("failed to get scheduled emails")
		respond.Fail(c.Writer, http.StatusInternalServerError, fmt.Errorf("internal server error"))
		return
	}

	respond.OK(c.Writer, jobs)
}

// Cancel marks a scheduled job cancelled.
func (h *Handler) Cancel(c *ginext.Context) {
	id, ok := h.parseID(c)
	if !ok {
		return
	}

	if err := h.service.Cancel(c.Request.Context(), id); err != nil {
		if errors.Is(err, schedule.ErrJobNotFound) {
			respond.Fail(c.Writer, http.StatusNotFound, fmt.Errorf("scheduled email not found"))
			return
		}

		zlog.Logger.Error().Err(err).Str("id", id.String()).Msg("failed to cancel scheduled email")
		respond.Fail(c.Writer, http.StatusInternalServerError, fmt.Errorf("internal server error"))
		return
	}

	respond.OK(c.Writer, "scheduled email cancelled")
}

// DeliveryDetail returns per-recipient records for one email log.
func (h *Handler) DeliveryDetail(c *ginext.Context) {
	id, ok := h.parseID(c)
	if !ok {
		return
	}

	details, err := h.service.DeliveryDetail(c.Request.Context(), id)
	if err != nil {
		zlog.Logger.Error().Err(err).Str("id", id.String()).Msg("failed to get delivery detail")
		respond.Fail(c.Writer, http.StatusInternalServerError, fmt.Errorf("internal server error"))
		return
	}

	respond.OK(c.Writer, details)
}

// DeliveryStats returns delivery record counts grouped by status.
func (h *Handler) DeliveryStats(c *ginext.Context) {
	stats, err := h.service.DeliveryStats(c.Request.Context())
	if err != nil {
		zlog.Logger.Error().Err(err).Msg("failed to get delivery stats")
		respond.Fail(c.Writer, http.StatusInternalServerError, fmt.Errorf("internal server error"))
		return
	}

	respond.OK(c.Writer, stats)
}

// RecordStatus returns the cached status of one delivery record.
func (h *Handler) RecordStatus(c *ginext.Context) {
	id, ok := h.parseID(c)
	if !ok {
		return
	}

	status, err := h.service.RecordStatus(c.Request.Context(), h.cfg.Retry, id)
	if err != nil {
		if errors.Is(err, emaillog.ErrDeliveryRecordNotFound) {
			respond.Fail(c.Writer, http.StatusNotFound, fmt.Errorf("delivery record not found"))
			return
		}

		zlog.Logger.Error().Err(err).Str("id", id.String()).Msg("failed to get record status")
		respond.Fail(c.Writer, http.StatusInternalServerError, fmt.Errorf("internal server error"))
		return
	}

	respond.OK(c.Writer, status)
}

// OverrideStatus manually forces a delivery record to "failed".
func (h *Handler) OverrideStatus(c *ginext.Context) {
	id, ok := h.parseID(c)
	if !ok {
		return
	}

	var req dto.OverrideStatusRequest
	if err := json.NewDecoder(c.Request.Body).Decode(&req); err != nil {
		respond.Fail(c.Writer, http.StatusBadRequest, fmt.Errorf("invalid request body"))
		return
	}

	if err := h.validator.Struct(req); err != nil {
		respond.Fail(c.Writer, http.StatusBadRequest, fmt.Errorf("only forcing status \"failed\" is supported"))
		return
	}

	err := h.service.OverrideRecordStatus(c.Request.Context(), h.cfg.Retry, id, req.ErrorMessage)
	if err != nil {
		if errors.Is(err, emaillog.ErrDeliveryRecordNotFound) {
			respond.Fail(c.Writer, http.StatusNotFound, fmt.Errorf("delivery record not found"))
			return
		}

		zlog.Logger.Error().Err(err).Str("id", id.String()).Msg("failed to override record status")
		respond.Fail(c.Writer, http.StatusInternalServerError, fmt.Errorf("internal server error"))
		return
	}

	respond.OK(c.Writer, "delivery status updated")
}

// Usage returns today's sent count against the daily limit.
func (h *Handler) Usage(c *ginext.Context) {
	usage, err := h.service.Usage(c.Request.Context())
	if err != nil {
		zlog.Logger.Error().Err(err).Msg("failed to get daily usage")
		respond.Fail(c.Writer, http.StatusInternalServerError, fmt.Errorf("internal server error"))
		return
	}

	respond.OK(c.Writer, usage)
}

// Track marks a delivery record opened and always answers with the fixed
// 1x1 transparent GIF, caching disabled. Mail clients fetching the pixel get
// the image no matter what happened to the record.
func (h *Handler) Track(c *ginext.Context) {
	if id, err := uuid.Parse(c.Param("id")); err == nil {
		if err := h.service.TrackOpen(c.Request.Context(), h.cfg.Retry, id); err != nil {
			zlog.Logger.Error().Err(err).Str("id", id.String()).Msg("failed to track open")
		}
	}

	c.Writer.Header().Set("Cache-Control", "no-cache, no-store, must-revalidate")
	c.Writer.Header().Set("Pragma", "no-cache")
	c.Writer.Header().Set("Expires", "0")
	c.Data(http.StatusOK, "image/gif", trackingPixel)
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
