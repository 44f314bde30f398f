//go:build unit

package booking_test

import (
	"time"

	"huntbook/internal/domain/booking"

	"github.com/google/uuid"
)

// bookingBuilder assembles persisted-looking bookings for snapshots.
type bookingBuilder struct {
	id       uuid.UUID
	standID  uuid.UUID
	clubID   uuid.UUID
	memberID uuid.UUID
	start    time.Time
	end      time.Time
	status   booking.Status
	guest    bool
}

func newBookingBuilder() *bookingBuilder {
	return &bookingBuilder{
		id:       uuid.New(),
		standID:  uuid.New(),
		clubID:   uuid.New(),
		memberID: uuid.New(),
		start:    testNow.Add(24 * time.Hour),
		end:      testNow.Add(30 * time.Hour),
		status:   booking.StatusConfirmed,
	}
}

func (b *bookingBuilder) withID(id uuid.UUID) *bookingBuilder         { b.id = id; return b }
func (b *bookingBuilder) withStand(id uuid.UUID) *bookingBuilder      { b.standID = id; return b }
func (b *bookingBuilder) withClub(id uuid.UUID) *bookingBuilder       { b.clubID = id; return b }
func (b *bookingBuilder) withMember(id uuid.UUID) *bookingBuilder     { b.memberID = id; return b }
func (b *bookingBuilder) withStatus(s booking.Status) *bookingBuilder { b.status = s; return b }
func (b *bookingBuilder) withGuest() *bookingBuilder                  { b.guest = true; return b }

func (b *bookingBuilder) withWindow(start, end time.Time) *bookingBuilder {
	b.start = start
	b.end = end
	return b
}

func (b *bookingBuilder) build() *booking.Booking {
	window, err := booking.NewTimeWindow(b.start, b.end)
	if err != nil {
		panic(err)
	}
	return booking.ReconstructBooking(
		b.id, b.standID, b.clubID, b.memberID,
		window, b.status, booking.ClassifySlot(window),
		b.guest, booking.NewNote(""),
		testNow, testNow,
	)
}
