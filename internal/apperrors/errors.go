package apperrors

import (
	"errors"
	"fmt"
)

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrNoRowsAffected indicates that a commit reported zero changed rows.
var ErrNoRowsAffected = errors.New("no rows affected")

// ErrAuctionNotLive indicates an operation that requires a Live auction was attempted on a finished one.
var ErrAuctionNotLive = errors.New("auction is not live")

// AppError carries an HTTP-ish status code alongside a wrapped cause.
type AppError struct {
	Code    int
	Message string
	Err     error
}

// NewAppError creates a new AppError.
func NewAppError(code int, message string, err error) *AppError {
	return &AppError{Code: code, Message: message, Err: err}
}

func (e *AppError) Error() string {
	if e.Err == nil {
		return e.Message
	}
	return fmt.Sprintf("%s: %v", e.Message, e.Err)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// IsBadRequest reports whether err belongs to the 400 class of the taxonomy.
func IsBadRequest(err error) bool {
	return errors.Is(err, ErrValidation) ||
		errors.Is(err, ErrNoRowsAffected) ||
		errors.Is(err, ErrAuctionNotLive)
}
