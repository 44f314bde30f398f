package errs

import "errors"

// Domain-specific sentinel errors for CQRS usecase layers
var (
	// Stand errors
	ErrStandNotFound = errors.New("stand not found")

	// Booking errors
	ErrBookingNotFound     = errors.New("booking not found")
	ErrBookingConflict     = errors.New("booking conflict")
	ErrBookingNotAllowed   = errors.New("booking not allowed by club policy")
	ErrInvalidBookingState = errors.New("invalid booking state transition")
	ErrNotBookingOwner     = errors.New("not the booking owner")

	// Store errors
	ErrStoreUnavailable = errors.New("booking store unavailable")
)
