package errors

import "errors"

var (
	ErrNotFound = errors.New("booking not found")

	ErrInvalidID = errors.New("invalid booking ID format")

	ErrAlreadyRecorded = errors.New("booking already recorded for session")

	ErrTourNotFound = errors.New("tour not found")

	ErrSessionNotFound = errors.New("booking session not found or expired")

	ErrInvalidToken = errors.New("invalid booking session token")
)
