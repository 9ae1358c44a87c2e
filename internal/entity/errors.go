package entity

import "errors"

// Domain errors
var (
	// Conversation errors. An owner mismatch is reported as ErrSessionNotFound
	// so a caller cannot discover sessions that belong to someone else.
	ErrSessionNotFound = errors.New("session not found")

	// Profile errors
	ErrProfileNotFound = errors.New("profile not found")

	// Generative provider errors
	ErrGenerationFailed = errors.New("generation failed")
	ErrMalformedOutput  = errors.New("malformed structured output")

	// Document errors
	ErrInvalidFile      = errors.New("invalid file")
	ErrFileTooLarge     = errors.New("file too large")
	ErrInvalidExtension = errors.New("invalid file extension")
	ErrEmptyDocument    = errors.New("no text could be extracted from document")

	// Validation errors
	ErrMissingField     = errors.New("required field is missing")
	ErrInvalidFormat    = errors.New("invalid format")
	ErrInvalidParameter = errors.New("invalid parameter")
)
