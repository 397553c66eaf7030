package schedule

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/wb-go/wbf/dbpg"

	"github.com/ayubkhn/contact-mailer/internal/model"
	"github.com/ayubkhn/contact-mailer/internal/recipients"
)

var ErrJobNotFound = errors.New("scheduled job not found")

// Repository provides access to the scheduled_jobs table.
type Repository struct {
	db *dbpg.DB
}

// NewRepository creates a new scheduled job repository.
func NewRepository(db *dbpg.DB) *Repository {
	return &Repository{db: db}
}

// CreateJob inserts a new scheduled job and returns its ID.
func (r *Repository) CreateJob(ctx context.Context, job model.ScheduledJob) (uuid.UUID, error) {
	query := `
		INSERT INTO scheduled_jobs (recipients, subject, body, scheduled_at, status)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id;
    `

	var id uuid.UUID
	err := r.db.QueryRowContext(
		ctx, query, recipients.Encode(job.Recipients), job.Subject, job.Body, job.ScheduledAt, model.JobScheduled,
	).Scan(&id)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to create scheduled job: %w", err)
	}

	return id, nil
}

// GetScheduledJobs retrieves all jobs still waiting for their trigger time,
// soonest first.
func (r *Repository) GetScheduledJobs(ctx context.Context) ([]model.ScheduledJob, error) {
	return r.queryJobs(ctx, `
		SELECT id, recipients, subject, body, scheduled_at, status, created_at, updated_at
		FROM scheduled_jobs
		WHERE status = $1
		ORDER BY scheduled_at ASC;
    `, model.JobScheduled)
}

// GetDueJobs retrieves all jobs whose trigger time has passed and that have
// not been promoted or cancelled yet.
func (r *Repository) GetDueJobs(ctx context.Context, now time.Time) ([]model.ScheduledJob, error) {
	return r.queryJobs(ctx, `
		SELECT id, recipients, subject, body, scheduled_at, status, created_at, updated_at
		FROM scheduled_jobs
		WHERE status = $1 AND scheduled_at <= $2
		ORDER BY scheduled_at ASC;
    `, model.JobScheduled, now)
}

// ClaimJob conditionally transitions a job from "scheduled" to "sent".
// It reports whether this caller won the claim; overlapping poll ticks see
// zero rows affected and skip the job, so a job is never dispatched twice.
func (r *Repository) ClaimJob(ctx context.Context, id uuid.UUID) (bool, error) {
	query := `
		UPDATE scheduled_jobs
		SET status = $1, updated_at = now()
		WHERE id = $2 AND status = $3;
    `

	res, err := r.db.ExecContext(ctx, query, model.JobSent, id, model.JobScheduled)
	if err != nil {
		return false, fmt.Errorf("failed to claim scheduled job: %w", err)
	}

	rows, _ := res.RowsAffected()

	return rows > 0, nil
}

// CancelJob transitions a job from "scheduled" to "cancelled". Jobs that do
// not exist or have already left the "scheduled" state report ErrJobNotFound.
func (r *Repository) CancelJob(ctx context.Context, id uuid.UUID) error {
	query := `
		UPDATE scheduled_jobs
		SET status = $1, updated_at = now()
		WHERE id = $2 AND status = $3;
    `

	res, err := r.db.ExecContext(ctx, query, model.JobCancelled, id, model.JobScheduled)
	if err != nil {
		return fmt.Errorf("failed to cancel scheduled job: %w", err)
	}

	if rows, _ := res.RowsAffected(); rows == 0 {
		return ErrJobNotFound
	}

	return nil
}

func (r *Repository) queryJobs(ctx context.Context, query string, args ...interface{}) ([]model.ScheduledJob, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to get scheduled jobs: %w", err)
	}
	defer rows.Close()

	var jobs []model.ScheduledJob
	for rows.Next() {
		var (
			j   model.ScheduledJob
			rcp string
		)
		if err := rows.Scan(&j.ID, &rcp, &j.Subject, &j.Body, &j.ScheduledAt, &j.Status, &j.CreatedAt, &j.UpdatedAt); err != nil {
			return nil, err
		}

		j.Recipients = recipients.Decode(rcp)
		jobs = append(jobs, j)
	}

	return jobs, rows.Err()
}
