//go:build unit || e2e

package builder

import (
	"time"

	"huntbook/internal/domain/booking"
	reqdto "huntbook/internal/handler/dto/request"
	"huntbook/internal/usecase/queries"

	"github.com/google/uuid"
)

type BookingBuilder struct {
	StandID  uuid.UUID
	ClubID   uuid.UUID
	MemberID uuid.UUID
	StartsAt time.Time
	EndsAt   time.Time
	Status   booking.Status
	Guest    bool
	Note     string
}

func NewBookingBuilder() *BookingBuilder {
	start := time.Date(2024, 11, 22, 5, 0, 0, 0, time.UTC)
	return &BookingBuilder{
		StandID:  uuid.New(),
		ClubID:   uuid.New(),
		MemberID: uuid.New(),
		StartsAt: start,
		EndsAt:   start.Add(6 * time.Hour),
		Status:   booking.StatusConfirmed,
		Note:     "north tower, east field",
	}
}

func (b *BookingBuilder) With(mutate func(*BookingBuilder)) *BookingBuilder {
	mutate(b)
	return b
}

func (b *BookingBuilder) BuildDomain() (*booking.Booking, error) {
	window, err := booking.NewTimeWindow(b.StartsAt, b.EndsAt)
	if err != nil {
		return nil, err
	}
	return booking.NewBooking(b.StandID, b.ClubID, b.MemberID, window, b.Guest, booking.NewNote(b.Note), b.StartsAt.Add(-48*time.Hour)), nil
}

func (b *BookingBuilder) BuildView() *queries.BookingView {
	note := b.Note
	created := b.StartsAt.Add(-48 * time.Hour)
	window, _ := booking.NewTimeWindow(b.StartsAt, b.EndsAt)
	return &queries.BookingView{
		ID:        uuid.New(),
		StandID:   b.StandID,
		ClubID:    b.ClubID,
		MemberID:  b.MemberID,
		StartsAt:  b.StartsAt,
		EndsAt:    b.EndsAt,
		Status:    b.Status.String(),
		Slot:      booking.ClassifySlot(window).String(),
		IsGuest:   b.Guest,
		Note:      &note,
		CreatedAt: created,
		UpdatedAt: created,
	}
}

func (b *BookingBuilder) BuildListItem() *queries.BookingListItem {
	window, _ := booking.NewTimeWindow(b.StartsAt, b.EndsAt)
	return &queries.BookingListItem{
		ID:        uuid.New(),
		StandID:   b.StandID,
		StartsAt:  b.StartsAt,
		EndsAt:    b.EndsAt,
		Status:    b.Status.String(),
		Slot:      booking.ClassifySlot(window).String(),
		CreatedAt: b.StartsAt.Add(-48 * time.Hour),
	}
}

func (b *BookingBuilder) BuildCreateRequestDTO() reqdto.CreateBookingRequest {
	note := b.Note
	return reqdto.CreateBookingRequest{
		StandID:  b.StandID,
		StartsAt: b.StartsAt,
		EndsAt:   b.EndsAt,
		Note:     &note,
	}
}

func (b *BookingBuilder) BuildValidateRequestDTO() reqdto.ValidateBookingRequest {
	return reqdto.ValidateBookingRequest{
		StandID:  b.StandID,
		StartsAt: b.StartsAt,
		EndsAt:   b.EndsAt,
	}
}
