package brand

import "errors"

// Domain errors for brand data validation and persistence. Store
// implementations wrap these so callers can branch with errors.Is.
var (
	ErrBrandNotFound     = errors.New("brand not found")
	ErrKitNotFound       = errors.New("brand kit not found")
	ErrEntryNotFound     = errors.New("knowledge entry not found")
	ErrEmailNotFound     = errors.New("saved email not found")
	ErrEmptyTitle        = errors.New("title cannot be empty")
	ErrTitleTooLong      = errors.New("title exceeds maximum length")
	ErrEmptyContent      = errors.New("content cannot be empty")
	ErrContentTooLong    = errors.New("content exceeds maximum length")
	ErrInvalidCategory   = errors.New("invalid knowledge category")
	ErrInvalidStatus     = errors.New("invalid saved email status")
	ErrInvalidTransition = errors.New("status transition not allowed")
)
