package model

import (
	"time"

	"github.com/google/uuid"
)

// DeliveryStatus is the per-recipient delivery state of a single email.
type DeliveryStatus string

const (
	DeliveryPending   DeliveryStatus = "pending"   // record created, not yet handed to the transport
	DeliverySent      DeliveryStatus = "sent"      // transport accepted the message
	DeliveryDelivered DeliveryStatus = "delivered" // tracking pixel fired, recipient opened the message
	DeliveryFailed    DeliveryStatus = "failed"    // transport rejected the message or manual override
)

// JobStatus is the lifecycle state of a scheduled send.
type JobStatus string

const (
	JobScheduled JobStatus = "scheduled" // waiting for its trigger time
	JobSent      JobStatus = "sent"      // promoted and dispatched
	JobCancelled JobStatus = "cancelled" // cancelled by the user before promotion
)

// EmailLog represents one logical bulk-send operation.
//
// It is immutable once created; per-recipient state lives in the
// DeliveryRecord rows that reference it.
type EmailLog struct {
	ID         uuid.UUID `json:"id"`
	Recipients []string  `json:"recipients"` // ordered recipient list, stored comma-delimited
	Subject    string    `json:"subject"`
	Body       string    `json:"body"` // HTML body as submitted, without the tracking pixel
	SentAt     time.Time `json:"sent_at"`
	CreatedAt  time.Time `json:"created_at"`
}

// DeliveryRecord tracks delivery state for one recipient of one EmailLog.
type DeliveryRecord struct {
	ID             uuid.UUID      `json:"id"`
	EmailLogID     uuid.UUID      `json:"email_log_id"`
	RecipientEmail string         `json:"recipient_email"`
	Status         DeliveryStatus `json:"status"`
	SentAt         *time.Time     `json:"sent_at,omitempty"`      // set once on pending -> sent
	DeliveredAt    *time.Time     `json:"delivered_at,omitempty"` // set once on sent -> delivered
	FailedAt       *time.Time     `json:"failed_at,omitempty"`    // set once on transition to failed
	ErrorMessage   string         `json:"error_message,omitempty"`
	RetryCount     int            `json:"retry_count"` // advisory, bumped on manual resend attempts
	CreatedAt      time.Time      `json:"created_at"`
	UpdatedAt      time.Time      `json:"updated_at"`
}

// DeliveryDetail is a DeliveryRecord joined with its parent log's subject and body.
type DeliveryDetail struct {
	DeliveryRecord
	Subject string `json:"subject"`
	Body    string `json:"body"`
}

// ScheduledJob is a deferred send request awaiting a future trigger time.
//
// No EmailLog or DeliveryRecord exists for a job until the scheduler
// promotes it; cancelled jobs never produce any.
type ScheduledJob struct {
	ID          uuid.UUID `json:"id"`
	Recipients  []string  `json:"recipients"`
	Subject     string    `json:"subject"`
	Body        string    `json:"body"`
	ScheduledAt time.Time `json:"scheduled_at"`
	Status      JobStatus `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// Attachment is a file sent along with every message of a bulk send.
type Attachment struct {
	Filename string
	Content  []byte
}

// StatusCount is one row of the delivery statistics projection.
type StatusCount struct {
	Status DeliveryStatus `json:"status"`
	Count  int            `json:"count"`
}
