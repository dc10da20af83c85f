package apperr

import "errors"

// Sentinel errors shared by the service and transport layers.
// Handlers map them to HTTP status codes with errors.Is.
var (
	ErrValidation = errors.New("validation failed")
	ErrNotFound   = errors.New("not found")
	ErrStore      = errors.New("store error")
	ErrSend       = errors.New("mail send failed")
)
