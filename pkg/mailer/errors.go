package mailer

import "errors"

var (
	ErrFailedToSend  = errors.New("mailer.errors.failed_to_send")
	ErrInvalidConfig = errors.New("mailer.errors.invalid_config")
	ErrInvalidParams = errors.New("mailer.errors.invalid_params")
)
