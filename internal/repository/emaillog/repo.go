package emaillog

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/wb-go/wbf/dbpg"

	"github.com/ayubkhn/contact-mailer/internal/model"
	"github.com/ayubkhn/contact-mailer/internal/recipients"
)

var (
	ErrEmailLogNotFound       = errors.New("email log not found")
	ErrDeliveryRecordNotFound = errors.New("delivery record not found")
)

// Repository provides access to the email_logs and delivery_records tables.
type Repository struct {
	db *dbpg.DB
}

// NewRepository creates a new email log repository.
func NewRepository(db *dbpg.DB) *Repository {
	return &Repository{db: db}
}

// CreateEmailLog inserts a new email log and returns its ID.
func (r *Repository) CreateEmailLog(ctx context.Context, log model.EmailLog) (uuid.UUID, error) {
	query := `
		INSERT INTO email_logs (recipients, subject, body)
		VALUES ($1, $2, $3)
		RETURNING id;
    `

	var id uuid.UUID
	err := r.db.QueryRowContext(
		ctx, query, recipients.Encode(log.Recipients), log.Subject, log.Body,
	).Scan(&id)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to create email log: %w", err)
	}

	return id, nil
}

// CreateDeliveryRecord inserts a pending delivery record for one recipient
// of the given email log and returns its ID.
func (r *Repository) CreateDeliveryRecord(ctx context.Context, logID uuid.UUID, recipient string) (uuid.UUID, error) {
	query := `
		INSERT INTO delivery_records (email_log_id, recipient_email, status)
		VALUES ($1, $2, $3)
		RETURNING id;
    `

	var id uuid.UUID
	err := r.db.QueryRowContext(ctx, query, logID, recipient, model.DeliveryPending).Scan(&id)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to create delivery record: %w", err)
	}

	return id, nil
}

// MarkSent transitions a delivery record to "sent" and stamps sent_at.
func (r *Repository) MarkSent(ctx context.Context, id uuid.UUID) error {
	query := `
		UPDATE delivery_records
		SET status = $1, sent_at = now(), updated_at = now()
		WHERE id = $2;
    `

	res, err := r.db.ExecContext(ctx, query, model.DeliverySent, id)
	if err != nil {
		return fmt.Errorf("failed to mark delivery record sent: %w", err)
	}

	if rows, _ := res.RowsAffected(); rows == 0 {
		return ErrDeliveryRecordNotFound
	}

	return nil
}

// MarkFailed transitions a delivery record to "failed", stamping failed_at
// and recording the transport's failure reason.
func (r *Repository) MarkFailed(ctx context.Context, id uuid.UUID, errMsg string) error {
	query := `
		UPDATE delivery_records
		SET status = $1, failed_at = now(), error_message = $2, updated_at = now()
		WHERE id = $3;
    `

	res, err := r.db.ExecContext(ctx, query, model.DeliveryFailed, errMsg, id)
	if err != nil {
		return fmt.Errorf("failed to mark delivery record failed: %w", err)
	}

	if rows, _ := res.RowsAffected(); rows == 0 {
		return ErrDeliveryRecordNotFound
	}

	return nil
}

// MarkDelivered transitions a delivery record to "delivered" and stamps
// delivered_at. Records already failed or already delivered are left
// untouched, which makes the tracking pixel idempotent and keeps a failed
// record from ever being upgraded. It reports whether a row was updated.
func (r *Repository) MarkDelivered(ctx context.Context, id uuid.UUID) (bool, error) {
	query := `
		UPDATE delivery_records
		SET status = $1, delivered_at = now(), updated_at = now()
		WHERE id = $2 AND status NOT IN ($3, $4);
    `

	res, err := r.db.ExecContext(ctx, query, model.DeliveryDelivered, id, model.DeliveryFailed, model.DeliveryDelivered)
	if err != nil {
		return false, fmt.Errorf("failed to mark delivery record delivered: %w", err)
	}

	rows, _ := res.RowsAffected()

	return rows > 0, nil
}

// OverrideFailed forces a delivery record into "failed" regardless of its
// current status, bumping retry_count. Used by the manual correction endpoint.
func (r *Repository) OverrideFailed(ctx context.Context, id uuid.UUID, errMsg string) error {
	query := `
		UPDATE delivery_records
		SET status = $1, failed_at = now(), error_message = $2,
		    retry_count = retry_count + 1, updated_at = now()
		WHERE id = $3;
    `

	res, err := r.db.ExecContext(ctx, query, model.DeliveryFailed, errMsg, id)
	if err != nil {
		return fmt.Errorf("failed to override delivery record status: %w", err)
	}

	if rows, _ := res.RowsAffected(); rows == 0 {
		return ErrDeliveryRecordNotFound
	}

	return nil
}

// GetRecordStatus retrieves the current status of a delivery record by its ID.
func (r *Repository) GetRecordStatus(ctx context.Context, id uuid.UUID) (model.DeliveryStatus, error) {
	query := `
		SELECT status
		FROM delivery_records
		WHERE id = $1;
    `

	var status model.DeliveryStatus
	err := r.db.QueryRowContext(ctx, query, id).Scan(&status)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", ErrDeliveryRecordNotFound
		}

		return "", fmt.Errorf("failed to get delivery record status: %w", err)
	}

	return status, nil
}

// GetAllEmailLogs retrieves all email logs, newest first.
func (r *Repository) GetAllEmailLogs(ctx context.Context) ([]model.EmailLog, error) {
	query := `
		SELECT id, recipients, subject, body, sent_at, created_at
		FROM email_logs
		ORDER BY sent_at DESC;
    `

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to get email logs: %w", err)
	}
	defer rows.Close()

	var logs []model.EmailLog
	for rows.Next() {
		var (
			l   model.EmailLog
			rcp string
		)
		if err := rows.Scan(&l.ID, &rcp, &l.Subject, &l.Body, &l.SentAt, &l.CreatedAt); err != nil {
			return nil, err
		}

		l.Recipients = recipients.Decode(rcp)
		logs = append(logs, l)
	}

	return logs, rows.Err()
}

// GetDeliveryDetail retrieves the delivery records of one email log joined
// with the parent log's subject and body, newest first.
func (r *Repository) GetDeliveryDetail(ctx context.Context, logID uuid.UUID) ([]model.DeliveryDetail, error) {
	query := `
		SELECT dr.id, dr.email_log_id, dr.recipient_email, dr.status,
		       dr.sent_at, dr.delivered_at, dr.failed_at, dr.error_message,
		       dr.retry_count, dr.created_at, dr.updated_at,
		       el.subject, el.body
		FROM delivery_records dr
		JOIN email_logs el ON el.id = dr.email_log_id
		WHERE dr.email_log_id = $1
		ORDER BY dr.created_at DESC;
    `

	rows, err := r.db.QueryContext(ctx, query, logID)
	if err != nil {
		return nil, fmt.Errorf("failed to get delivery detail: %w", err)
	}
	defer rows.Close()

	var details []model.DeliveryDetail
	for rows.Next() {
		var d model.DeliveryDetail
		if err := rows.Scan(
			&d.ID, &d.EmailLogID, &d.RecipientEmail, &d.Status,
			&d.SentAt, &d.DeliveredAt, &d.FailedAt, &d.ErrorMessage,
			&d.RetryCount, &d.CreatedAt, &d.UpdatedAt,
			&d.Subject, &d.Body,
		); err != nil {
			return nil, err
		}

		details = append(details, d)
	}

	return details, rows.Err()
}

// GetDeliveryStats retrieves counts of delivery records grouped by status.
func (r *Repository) GetDeliveryStats(ctx context.Context) ([]model.StatusCount, error) {
	query := `
		SELECT status, COUNT(*)
		FROM delivery_records
		GROUP BY status;
    `

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to get delivery stats: %w", err)
	}
	defer rows.Close()

	var stats []model.StatusCount
	for rows.Next() {
		var s model.StatusCount
		if err := rows.Scan(&s.Status, &s.Count); err != nil {
			return nil, err
		}

		stats = append(stats, s)
	}

	return stats, rows.Err()
}

// CountSentToday counts delivery records handed to the transport since
// midnight, feeding the daily-limit endpoint. Delivered records still count:
// they were sent before the pixel fired.
func (r *Repository) CountSentToday(ctx context.Context) (int, error) {
	query := `
		SELECT COUNT(*)
		FROM delivery_records
		WHERE sent_at >= date_trunc('day', now());
    `

	var count int
	if err := r.db.QueryRowContext(ctx, query).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count sent records: %w", err)
	}

	return count, nil
}
