package usecase

import (
	"errors"

	"wedding-planner/pkg/utils"
)

// Error kinds. Handlers map them to HTTP status with errors.Is; anything
// that wraps none of them is a store failure.
var (
	ErrValidation    = errors.New("validation failed")
	ErrUnauthorized  = errors.New("unauthorized")
	ErrForbidden     = errors.New("forbidden")
	ErrNotFound      = errors.New("not found")
	ErrAlreadyExists = errors.New("already exists")
	ErrConflict      = errors.New("conflict")
)

// Error is a client-facing failure: Message is safe to return verbatim.
type Error struct {
	Kind    error
	Message string
	Fields  map[string]string
}

func (e *Error) Error() string { return e.Message }
func (e *Error) Unwrap() error { return e.Kind }

func newError(kind error, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

// validate runs the struct's validate tags. When every failure is a missing
// field the error carries requiredMsg, otherwise a field-by-field summary.
func validate(req any, requiredMsg string) error {
	fields := utils.ValidateStruct(req)
	if len(fields) == 0 {
		return nil
	}

	msg := requiredMsg
	for _, reason := range fields {
		if reason != utils.MsgRequired {
			msg = "Invalid input: " + utils.FormatValidationErrors(fields)
			break
		}
	}

	return &Error{Kind: ErrValidation, Message: msg, Fields: fields}
}
