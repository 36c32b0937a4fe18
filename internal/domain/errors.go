package domain

import "errors"

var (
	ErrNotFound         = errors.New("not found")
	ErrFlagged          = errors.New("participant flagged for failed attention checks")
	ErrPaymentRequired  = errors.New("payment required")
	ErrConsentRequired  = errors.New("consent required")
	ErrValidation       = errors.New("validation failed")
	ErrInvalidSignature = errors.New("invalid signature")
	ErrConflict         = errors.New("conflict")
)
