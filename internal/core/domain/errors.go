package domain

import "errors"

// Common domain errors
var (
	ErrNotFound       = errors.New("resource not found")
	ErrInvalidInput   = errors.New("invalid input")
	ErrInternalServer = errors.New("internal server error")
	ErrDuplicateEntry = errors.New("duplicate entry")
)

// Accommodation errors
var (
	ErrRecordNotFound        = errors.New("accommodation record not found")
	ErrMissingExistingID     = errors.New("existingRecordId is required when isNew is \"no\"")
	ErrInvalidIsNew          = errors.New("isNew must be \"yes\" or \"no\"")
	ErrMissingAssociateLogin = errors.New("associateLogin is required")
	ErrAttachmentUnavailable = errors.New("attachment storage is not configured")
)
