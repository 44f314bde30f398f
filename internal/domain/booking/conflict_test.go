//go:build unit

package booking_test

import (
	"testing"
	"time"

	"huntbook/internal/domain/booking"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFindConflict(t *testing.T) {
	standID := uuid.New()
	day := time.Date(2024, 11, 20, 0, 0, 0, 0, time.UTC)
	existing := newBookingBuilder().
		withStand(standID).
		withWindow(day.Add(5*time.Hour), day.Add(11*time.Hour)).
		build()

	t.Run("overlapping window conflicts", func(t *testing.T) {
		got := booking.FindConflict(standID, day.Add(10*time.Hour), day.Add(16*time.Hour), []*booking.Booking{existing}, nil)
		require.NotNil(t, got)
		assert.Equal(t, existing.ID(), got.ID())
	})

	t.Run("back-to-back does not conflict", func(t *testing.T) {
		got := booking.FindConflict(standID, day.Add(11*time.Hour), day.Add(17*time.Hour), []*booking.Booking{existing}, nil)
		assert.Nil(t, got)
	})

	t.Run("ending exactly at existing start does not conflict", func(t *testing.T) {
		got := booking.FindConflict(standID, day.Add(2*time.Hour), day.Add(5*time.Hour), []*booking.Booking{existing}, nil)
		assert.Nil(t, got)
	})

	t.Run("contained window conflicts", func(t *testing.T) {
		got := booking.FindConflict(standID, day.Add(6*time.Hour), day.Add(8*time.Hour), []*booking.Booking{existing}, nil)
		require.NotNil(t, got)
	})

	t.Run("other stands never conflict", func(t *testing.T) {
		got := booking.FindConflict(uuid.New(), day.Add(5*time.Hour), day.Add(11*time.Hour), []*booking.Booking{existing}, nil)
		assert.Nil(t, got)
	})

	t.Run("inactive statuses never block", func(t *testing.T) {
		for _, status := range []booking.Status{booking.StatusCompleted, booking.StatusCancelled} {
			inactive := newBookingBuilder().
				withStand(standID).
				withWindow(day.Add(5*time.Hour), day.Add(11*time.Hour)).
				withStatus(status).
				build()
			got := booking.FindConflict(standID, day.Add(6*time.Hour), day.Add(10*time.Hour), []*booking.Booking{inactive}, nil)
			assert.Nil(t, got, "status %s should not block", status)
		}
	})

	t.Run("checked-in bookings block", func(t *testing.T) {
		checkedIn := newBookingBuilder().
			withStand(standID).
			withWindow(day.Add(5*time.Hour), day.Add(11*time.Hour)).
			withStatus(booking.StatusCheckedIn).
			build()
		got := booking.FindConflict(standID, day.Add(6*time.Hour), day.Add(10*time.Hour), []*booking.Booking{checkedIn}, nil)
		require.NotNil(t, got)
	})

	t.Run("excludeID skips the booking being edited", func(t *testing.T) {
		id := existing.ID()
		got := booking.FindConflict(standID, day.Add(5*time.Hour), day.Add(11*time.Hour), []*booking.Booking{existing}, &id)
		assert.Nil(t, got)
	})

	t.Run("earliest-starting conflict wins", func(t *testing.T) {
		later := newBookingBuilder().
			withStand(standID).
			withWindow(day.Add(12*time.Hour), day.Add(18*time.Hour)).
			build()
		earlier := newBookingBuilder().
			withStand(standID).
			withWindow(day.Add(6*time.Hour), day.Add(10*time.Hour)).
			build()

		got := booking.FindConflict(standID, day.Add(7*time.Hour), day.Add(14*time.Hour), []*booking.Booking{later, earlier}, nil)
		require.NotNil(t, got)
		assert.Equal(t, earlier.ID(), got.ID())
	})
}
