// Package mailer provides the SMTP transport used by the delivery pipeline.
//
// It sends HTML messages with optional binary attachments through a
// configured SMTP relay. The pipeline depends on it only through its Send
// method, so tests substitute a double.
package mailer

import (
	"fmt"
	"io"

	"gopkg.in/mail.v2"

	"github.com/ayubkhn/contact-mailer/internal/model"
)

// Client represents an SMTP client used to deliver messages.
type Client struct {
	smtpHost string
	smtpPort int
	username string
	password string
	from     string
}

// NewClient creates a new SMTP Client instance.
func NewClient(smtpHost string, smtpPort int, username, password, from string) *Client {
	return &Client{
		smtpHost: smtpHost,
		smtpPort: smtpPort,
		username: username,
		password: password,
		from:     from,
	}
}

// Send delivers one HTML message with the given attachments to a single
// recipient. A non-nil error means the transport rejected the message.
func (c *Client) Send(to, subject, htmlBody string, attachments []model.Attachment) error {
	message := mail.NewMessage()

	message.SetHeader("From", c.from)
	message.SetHeader("To", to)
	message.SetHeader("Subject", subject)

	message.SetBody("text/html", htmlBody)

	for _, a := range attachments {
		content := a.Content
		message.Attach(a.Filename, mail.SetCopyFunc(func(w io.Writer) error {
			_, err := w.Write(content)
			return err
		}))
	}

	dialer := mail.NewDialer(c.smtpHost, c.smtpPort, c.username, c.password)

	if err := dialer.DialAndSend(message); err != nil {
		return fmt.Errorf("send mail to %s: %w", to, err)
	}

	return nil
}
