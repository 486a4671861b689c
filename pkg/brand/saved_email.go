package brand

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Status tracks a saved email through the client-approval workflow.
type Status string

const (
	StatusDraft    Status = "draft"
	StatusApproved Status = "approved"
	StatusExported Status = "exported"
)

// Valid reports whether s is a known status.
func (s Status) Valid() bool {
	switch s {
	case StatusDraft, StatusApproved, StatusExported:
		return true
	}
	return false
}

// CanTransitionTo reports whether the status change is allowed.
// Drafts are approved, approved emails are exported or sent back to draft,
// and exported is terminal.
func (s Status) CanTransitionTo(next Status) bool {
	switch s {
	case StatusDraft:
		return next == StatusApproved
	case StatusApproved:
		return next == StatusExported || next == StatusDraft
	}
	return false
}

// SavedEmail is a generated email's chosen subject line and variation,
// persisted under a brand by an explicit save action. It is never derived
// automatically from a generation result.
type SavedEmail struct {
	ID          uuid.UUID `json:"id"`
	BrandID     uuid.UUID `json:"brand_id"`
	EmailType   string    `json:"email_type"`
	SubjectLine string    `json:"subject_line"`
	PreviewText string    `json:"preview_text,omitempty"`
	Headline    string    `json:"headline,omitempty"`
	Body        string    `json:"body"`
	CTA         string    `json:"cta,omitempty"`
	Status      Status    `json:"status"`
	Model       string    `json:"model,omitempty"`
	CreatedBy   uuid.UUID `json:"created_by"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// Transition moves the email to the next status, enforcing the workflow rules.
func (e *SavedEmail) Transition(next Status) error {
	if !next.Valid() {
		return fmt.Errorf("%w: %q", ErrInvalidStatus, next)
	}
	if !e.Status.CanTransitionTo(next) {
		return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, e.Status, next)
	}
	e.Status = next
	return nil
}
