// Package delivery implements the email delivery pipeline: request
// validation, log and per-recipient record bookkeeping, the sequential
// dispatch loop, tracking-pixel opens and promotion of scheduled jobs.
package delivery

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	"github.com/wb-go/wbf/retry"
	"github.com/wb-go/wbf/zlog"

	"github.com/ayubkhn/contact-mailer/internal/model"
	"github.com/ayubkhn/contact-mailer/internal/recipients"
)

//go:generate mockgen -source=service.go -destination=../../mocks/service/delivery/mock.go -package=mocks

// ErrValidation marks a send request rejected before any row was created.
var ErrValidation = errors.New("invalid send request")

type emailLogRepository interface {
	CreateEmailLog(ctx context.Context, log model.EmailLog) (uuid.UUID, error)
	CreateDeliveryRecord(ctx context.Context, logID uuid.UUID, recipient string) (uuid.UUID, error)
	MarkSent(ctx context.Context, id uuid.UUID) error
	MarkFailed(ctx context.Context, id uuid.UUID, errMsg string) error
	MarkDelivered(ctx context.Context, id uuid.UUID) (bool, error)
	OverrideFailed(ctx context.Context, id uuid.UUID, errMsg string) error
	GetRecordStatus(ctx context.Context, id uuid.UUID) (model.DeliveryStatus, error)
	GetAllEmailLogs(ctx context.Context) ([]model.EmailLog, error)
	GetDeliveryDetail(ctx context.Context, logID uuid.UUID) ([]model.DeliveryDetail, error)
	GetDeliveryStats(ctx context.Context) ([]model.StatusCount, error)
	CountSentToday(ctx context.Context) (int, error)
}

type jobRepository interface {
	CreateJob(ctx context.Context, job model.ScheduledJob) (uuid.UUID, error)
	GetScheduledJobs(ctx context.Context) ([]model.ScheduledJob, error)
	GetDueJobs(ctx context.Context, now time.Time) ([]model.ScheduledJob, error)
	ClaimJob(ctx context.Context, id uuid.UUID) (bool, error)
	CancelJob(ctx context.Context, id uuid.UUID) error
}

// Transport delivers one message to one recipient.
type Transport interface {
	Send(to, subject, htmlBody string, attachments []model.Attachment) error
}

type cache interface {
	SetWithRetry(ctx context.Context, strategy retry.Strategy, key string, value interface{}) error
	GetWithRetry(ctx context.Context, strategy retry.Strategy, key string) (string, error)
}

// SendRequest is one bulk-send call as accepted by Submit. It is never
// persisted as such; accepted requests turn into an EmailLog plus
// DeliveryRecords, or into a ScheduledJob.
type SendRequest struct {
	Subject     string
	Body        string // HTML
	Recipients  []string
	Attachments []model.Attachment
	ScheduledAt *time.Time
}

// SubmitResult summarizes one Submit call. Scheduled submissions carry only
// JobID; immediate submissions carry the log id and per-recipient counts.
type SubmitResult struct {
	Scheduled bool      `json:"scheduled"`
	JobID     uuid.UUID `json:"job_id,omitempty"`
	LogID     uuid.UUID `json:"log_id,omitempty"`
	Sent      int       `json:"sent"`
	Failed    int       `json:"failed"`
}

// DailyUsage reports how much of the configured daily send limit is used.
type DailyUsage struct {
	Sent      int `json:"sent"`
	Limit     int `json:"limit"`
	Remaining int `json:"remaining"`
}

// Service is the delivery pipeline. It exclusively owns writes to email
// logs, delivery records and scheduled jobs.
type Service struct {
	logs       emailLogRepository
	jobs       jobRepository
	transport  Transport
	cache      cache
	baseURL    string
	dailyLimit int
}

// NewService creates the delivery pipeline. baseURL is the public address
// tracking-pixel links point back to.
func NewService(
	logs emailLogRepository,
	jobs jobRepository,
	transport Transport,
	cache cache,
	baseURL string,
	dailyLimit int,
) *Service {
	return &Service{
		logs:       logs,
		jobs:       jobs,
		transport:  transport,
		cache:      cache,
		baseURL:    strings.TrimRight(baseURL, "/"),
		dailyLimit: dailyLimit,
	}
}

// Submit validates a send request and either stores it as a scheduled job
// (future ScheduledAt) or dispatches it immediately. Rejected requests
// create no rows at all.
func (s *Service) Submit(ctx context.Context, strategy retry.Strategy, req SendRequest) (SubmitResult, error) {
	req.Recipients = recipients.Normalize(req.Recipients)

	if strings.TrimSpace(req.Subject) == "" {
		return SubmitResult{}, fmt.Errorf("%w: subject is required", ErrValidation)
	}
	if strings.TrimSpace(req.Body) == "" {
		return SubmitResult{}, fmt.Errorf("%w: body is required", ErrValidation)
	}
	if len(req.Recipients) == 0 {
		return SubmitResult{}, fmt.Errorf("%w: at least one recipient is required", ErrValidation)
	}

	if req.ScheduledAt != nil && req.ScheduledAt.After(time.Now()) {
		jobID, err := s.jobs.CreateJob(ctx, model.ScheduledJob{
			Recipients:  req.Recipients,
			Subject:     req.Subject,
			Body:        req.Body,
			ScheduledAt: *req.ScheduledAt,
		})
		if err != nil {
			return SubmitResult{}, fmt.Errorf("create scheduled job: %w", err)
		}

		return SubmitResult{Scheduled: true, JobID: jobID}, nil
	}

	return s.dispatch(ctx, strategy, req)
}

// dispatch creates the email log with one pending delivery record per
// recipient, then walks the records in insertion order sending each message
// through the transport. One recipient's failure never aborts the rest;
// a record that cannot be inserted is dropped from the deliverable set.
func (s *Service) dispatch(ctx context.Context, strategy retry.Strategy, req SendRequest) (SubmitResult, error) {
	logID, err := s.logs.CreateEmailLog(ctx, model.EmailLog{
		Recipients: req.Recipients,
		Subject:    req.Subject,
		Body:       req.Body,
	})
	if err != nil {
		return SubmitResult{}, fmt.Errorf("create email log: %w", err)
	}

	type pendingRecord struct {
		id        uuid.UUID
		recipient string
	}

	records := make([]pendingRecord, 0, len(req.Recipients))
	for _, rcp := range req.Recipients {
		recordID, err := s.logs.CreateDeliveryRecord(ctx, logID, rcp)
		if err != nil {
			zlog.Logger.Error().Err(err).Str("log_id", logID.String()).Str("recipient", rcp).
				Msg("failed to create delivery record, recipient skipped")
			continue
		}

		s.cacheStatus(ctx, strategy, recordID, model.DeliveryPending)
		records = append(records, pendingRecord{id: recordID, recipient: rcp})
	}

	result := SubmitResult{LogID: logID}

	for _, rec := range records {
		body := req.Body + s.pixelTag(rec.id)

		if err := s.transport.Send(rec.recipient, req.Subject, body, req.Attachments); err != nil {
			zlog.Logger.Warn().Err(err).Str("record_id", rec.id.String()).Str("recipient", rec.recipient).
				Msg("transport rejected message")

			if dbErr := s.logs.MarkFailed(ctx, rec.id, err.Error()); dbErr != nil {
				zlog.Logger.Error().Err(dbErr).Str("record_id", rec.id.String()).Msg("failed to mark record failed")
			}

			s.cacheStatus(ctx, strategy, rec.id, model.DeliveryFailed)
			result.Failed++
			continue
		}

		if dbErr := s.logs.MarkSent(ctx, rec.id); dbErr != nil {
			zlog.Logger.Error().Err(dbErr).Str("record_id", rec.id.String()).Msg("failed to mark record sent")
		}

		s.cacheStatus(ctx, strategy, rec.id, model.DeliverySent)
		result.Sent++
	}

	return result, nil
}

// TrackOpen marks a delivery record "delivered" when its tracking pixel is
// fetched. Failed records are never upgraded, and repeated opens after the
// first are no-ops.
func (s *Service) TrackOpen(ctx context.Context, strategy retry.Strategy, recordID uuid.UUID) error {
	updated, err := s.logs.MarkDelivered(ctx, recordID)
	if err != nil {
		return fmt.Errorf("mark delivered: %w", err)
	}

	if updated {
		s.cacheStatus(ctx, strategy, recordID, model.DeliveryDelivered)
	}

	return nil
}

// PromoteDueJobs turns every due scheduled job into an ordinary immediate
// send. Each job is claimed with a conditional update first, so overlapping
// poll ticks never dispatch the same job twice. Jobs are independent: one
// job's failure does not block the others.
func (s *Service) PromoteDueJobs(ctx context.Context, strategy retry.Strategy) error {
	due, err := s.jobs.GetDueJobs(ctx, time.Now())
	if err != nil {
		return fmt.Errorf("get due jobs: %w", err)
	}

	for _, job := range due {
		claimed, err := s.jobs.ClaimJob(ctx, job.ID)
		if err != nil {
			zlog.Logger.Error().Err(err).Str("job_id", job.ID.String()).Msg("failed to claim scheduled job")
			continue
		}
		if !claimed {
			continue
		}

		result, err := s.dispatch(ctx, strategy, SendRequest{
			Subject:    job.Subject,
			Body:       job.Body,
			Recipients: job.Recipients,
		})
		if err != nil {
			zlog.Logger.Error().Err(err).Str("job_id", job.ID.String()).Msg("failed to dispatch scheduled job")
			continue
		}

		zlog.Logger.Info().
			Str("job_id", job.ID.String()).
			Str("log_id", result.LogID.String()).
			Int("sent", result.Sent).
			Int("failed", result.Failed).
			Msg("scheduled job promoted")
	}

	return nil
}

// Cancel marks a scheduled job cancelled. Jobs that do not exist or have
// already been promoted or cancelled report the repository's not-found error.
func (s *Service) Cancel(ctx context.Context, jobID uuid.UUID) error {
	if err := s.jobs.CancelJob(ctx, jobID); err != nil {
		return fmt.Errorf("cancel job: %w", err)
	}

	return nil
}

// OverrideRecordStatus forces a delivery record to "failed" as a manual
// correction. Downgrading a delivered record is allowed but logged as an
// override.
func (s *Service) OverrideRecordStatus(ctx context.Context, strategy retry.Strategy, recordID uuid.UUID, errMsg string) error {
	current, err := s.logs.GetRecordStatus(ctx, recordID)
	if err != nil {
		return fmt.Errorf("get record status: %w", err)
	}

	if current == model.DeliveryDelivered {
		zlog.Logger.Warn().Str("record_id", recordID.String()).
			Msg("manual override downgrades a delivered record to failed")
	}

	if err := s.logs.OverrideFailed(ctx, recordID, errMsg); err != nil {
		return fmt.Errorf("override record status: %w", err)
	}

	s.cacheStatus(ctx, strategy, recordID, model.DeliveryFailed)

	return nil
}

// RecordStatus returns the current status of one delivery record, reading
// through the cache and falling back to the store.
func (s *Service) RecordStatus(ctx context.Context, strategy retry.Strategy, recordID uuid.UUID) (model.DeliveryStatus, error) {
	cached, err := s.cache.GetWithRetry(ctx, strategy, recordID.String())
	if err != nil && !errors.Is(err, redis.Nil) {
		zlog.Logger.Error().Err(err).Str("record_id", recordID.String()).Msg("failed to read record status from cache")
	}
	if err == nil {
		return model.DeliveryStatus(cached), nil
	}

	status, err := s.logs.GetRecordStatus(ctx, recordID)
	if err != nil {
		return "", fmt.Errorf("get record status: %w", err)
	}

	s.cacheStatus(ctx, strategy, recordID, status)

	return status, nil
}

// History returns all email logs, newest first.
func (s *Service) History(ctx context.Context) ([]model.EmailLog, error) {
	logs, err := s.logs.GetAllEmailLogs(ctx)
	if err != nil {
		return nil, fmt.Errorf("get email history: %w", err)
	}

	return logs, nil
}

// ScheduledEmails returns all jobs still waiting for promotion, soonest first.
func (s *Service) ScheduledEmails(ctx context.Context) ([]model.ScheduledJob, error) {
	jobs, err := s.jobs.GetScheduledJobs(ctx)
	if err != nil {
		return nil, fmt.Errorf("get scheduled emails: %w", err)
	}

	return jobs, nil
}

// DeliveryDetail returns the per-recipient records of one email log joined
// with the log's subject and body.
func (s *Service) DeliveryDetail(ctx context.Context, logID uuid.UUID) ([]model.DeliveryDetail, error) {
	details, err := s.logs.GetDeliveryDetail(ctx, logID)
	if err != nil {
		return nil, fmt.Errorf("get delivery detail: %w", err)
	}

	return details, nil
}

// DeliveryStats returns counts of delivery records grouped by status.
func (s *Service) DeliveryStats(ctx context.Context) ([]model.StatusCount, error) {
	stats, err := s.logs.GetDeliveryStats(ctx)
	if err != nil {
		return nil, fmt.Errorf("get delivery stats: %w", err)
	}

	return stats, nil
}

// Usage reports today's sent count against the configured daily limit.
func (s *Service) Usage(ctx context.Context) (DailyUsage, error) {
	sent, err := s.logs.CountSentToday(ctx)
	if err != nil {
		return DailyUsage{}, fmt.Errorf("count sent today: %w", err)
	}

	remaining := s.dailyLimit - sent
	if remaining < 0 {
		remaining = 0
	}

	return DailyUsage{Sent: sent, Limit: s.dailyLimit, Remaining: remaining}, nil
}

// pixelTag builds the hidden 1x1 image referencing one delivery record.
func (s *Service) pixelTag(recordID uuid.UUID) string {
	return fmt.Sprintf(
		`<img src="%s/api/track/%s" width="1" height="1" style="display:none" />`,
		s.baseURL, recordID,
	)
}

func (s *Service) cacheStatus(ctx context.Context, strategy retry.Strategy, id uuid.UUID, status model.DeliveryStatus) {
	if err := s.cache.SetWithRetry(ctx, strategy, id.String(), string(status)); err != nil {
		zlog.Logger.Error().Err(err).Str("record_id", id.String()).Msg("failed to cache record status")
	}
}
