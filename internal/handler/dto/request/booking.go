package request

import (
	"time"

	"github.com/google/uuid"
)

type CreateBookingRequest struct {
	StandID  uuid.UUID `json:"stand_id" binding:"required"`
	StartsAt time.Time `json:"starts_at" binding:"required"`
	EndsAt   time.Time `json:"ends_at" binding:"required"`
	Note     *string   `json:"note,omitempty" binding:"omitempty,max=500"`
}

// ValidateBookingRequest is the dry-run payload. BookingID is set when
// preflighting an edit so the existing booking does not conflict with
// itself.
type ValidateBookingRequest struct {
	StandID   uuid.UUID  `json:"stand_id" binding:"required"`
	StartsAt  time.Time  `json:"starts_at" binding:"required"`
	EndsAt    time.Time  `json:"ends_at" binding:"required"`
	BookingID *uuid.UUID `json:"booking_id,omitempty"`
}
