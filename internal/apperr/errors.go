package apperr

import "errors"

// Convert request failures. Handlers surface these messages verbatim in
// the structured failure body, so the wording is part of the contract.
var (
	ErrMalformedBody = errors.New("invalid JSON body")
	ErrInvalidText   = errors.New(`"text" field is required and must be a string`)
	ErrEmptyText     = errors.New("text must not be empty")
)
