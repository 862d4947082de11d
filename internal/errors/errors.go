package errdefs

import "errors"

var (
	ErrValidation        = errors.New("validation failed")
	ErrMalformedInput    = errors.New("malformed input")
	ErrNotFound          = errors.New("not found")
	ErrPermissionDenied  = errors.New("permission was denied")
	ErrAuthentication    = errors.New("authentication failed")
	ErrAlreadyExists     = errors.New("already exists")
	ErrInvalidTransition = errors.New("status transition is not allowed")
	ErrDependency        = errors.New("dependency failure")
)
