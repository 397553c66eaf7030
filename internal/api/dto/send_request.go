package dto

// SendRequest is the JSON part of a bulk-send call. Attachments arrive as
// separate multipart files next to this payload.
type SendRequest struct {
	Subject     string   `json:"subject" validate:"required"`
	Body        string   `json:"body" validate:"required"`
	Recipients  []string `json:"recipients" validate:"required,min=1"`
	ScheduledAt string   `json:"scheduled_at,omitempty"` // RFC 3339; empty means send now
}

// OverrideStatusRequest is the manual delivery-record correction payload.
// Only forcing "failed" is supported.
type OverrideStatusRequest struct {
	Status       string `json:"status" validate:"required,eq=failed"`
	ErrorMessage string `json:"error_message"`
}
