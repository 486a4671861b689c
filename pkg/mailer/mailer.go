package mailer

import (
	"context"
	"fmt"
	"regexp"
)

// Sender delivers one email.
type Sender interface {
	Send(ctx context.Context, params SendParams) error
}

// SendParams represents the parameters for sending an email.
type SendParams struct {
	To       string `json:"to"`            // Email address of the recipient
	Subject  string `json:"subject"`       // Subject of the email
	HTMLBody string `json:"html_body"`     // HTML body of the email
	Tag      string `json:"tag,omitempty"` // Optional
}

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

// Validate checks the parameters before any delivery attempt.
func (p SendParams) Validate() error {
	if p.To == "" {
		return fmt.Errorf("%w: recipient is required", ErrInvalidParams)
	}
	if !emailRegex.MatchString(p.To) {
		return fmt.Errorf("%w: recipient must be a valid email address", ErrInvalidParams)
	}
	if p.Subject == "" {
		return fmt.Errorf("%w: subject is required", ErrInvalidParams)
	}
	if p.HTMLBody == "" {
		return fmt.Errorf("%w: HTML body is required", ErrInvalidParams)
	}
	return nil
}
