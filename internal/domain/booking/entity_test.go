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

func freshBooking(t *testing.T, start, end time.Time) *booking.Booking {
	t.Helper()
	window, err := booking.NewTimeWindow(start, end)
	require.NoError(t, err)
	return booking.NewBooking(
		uuid.New(), uuid.New(), uuid.New(),
		window, false, booking.NewNote(""), testNow,
	)
}

func TestNewBooking(t *testing.T) {
	b := freshBooking(t, testNow.Add(24*time.Hour), testNow.Add(30*time.Hour))

	assert.Equal(t, booking.StatusConfirmed, b.Status())
	assert.True(t, b.IsActive())
	assert.Equal(t, testNow, b.CreatedAt())
	assert.Equal(t, testNow, b.UpdatedAt())
}

func TestBookingCancel(t *testing.T) {
	later := testNow.Add(time.Hour)

	t.Run("confirmed booking cancels", func(t *testing.T) {
		b := freshBooking(t, testNow.Add(24*time.Hour), testNow.Add(30*time.Hour))
		require.NoError(t, b.Cancel(later))
		assert.Equal(t, booking.StatusCancelled, b.Status())
		assert.False(t, b.IsActive())
		assert.Equal(t, later, b.UpdatedAt())
	})

	t.Run("checked-in booking cancels", func(t *testing.T) {
		b := freshBooking(t, testNow.Add(time.Hour), testNow.Add(7*time.Hour))
		require.NoError(t, b.CheckIn(testNow.Add(2*time.Hour)))
		assert.NoError(t, b.Cancel(testNow.Add(3*time.Hour)))
	})

	t.Run("completed booking does not cancel", func(t *testing.T) {
		b := freshBooking(t, testNow.Add(time.Hour), testNow.Add(7*time.Hour))
		require.NoError(t, b.CheckIn(testNow.Add(2*time.Hour)))
		require.NoError(t, b.CheckOut(testNow.Add(6*time.Hour)))
		assert.ErrorIs(t, b.Cancel(later), booking.ErrNotCancellable)
	})

	t.Run("cancelling twice fails", func(t *testing.T) {
		b := freshBooking(t, testNow.Add(24*time.Hour), testNow.Add(30*time.Hour))
		require.NoError(t, b.Cancel(later))
		assert.ErrorIs(t, b.Cancel(later), booking.ErrNotCancellable)
	})
}

func TestBookingCheckIn(t *testing.T) {
	t.Run("confirmed booking inside its window checks in", func(t *testing.T) {
		b := freshBooking(t, testNow.Add(time.Hour), testNow.Add(7*time.Hour))
		at := testNow.Add(90 * time.Minute)
		require.NoError(t, b.CheckIn(at))
		assert.Equal(t, booking.StatusCheckedIn, b.Status())
		assert.Equal(t, at, b.UpdatedAt())
	})

	t.Run("check-in before the window opens fails", func(t *testing.T) {
		b := freshBooking(t, testNow.Add(72*time.Hour), testNow.Add(78*time.Hour))
		assert.ErrorIs(t, b.CheckIn(testNow), booking.ErrWindowNotStarted)
		assert.Equal(t, booking.StatusConfirmed, b.Status())
	})

	t.Run("check-in exactly at window start succeeds", func(t *testing.T) {
		start := testNow.Add(time.Hour)
		b := freshBooking(t, start, start.Add(6*time.Hour))
		assert.NoError(t, b.CheckIn(start))
	})

	t.Run("check-in after the window ended fails", func(t *testing.T) {
		b := freshBooking(t, testNow.Add(time.Hour), testNow.Add(7*time.Hour))
		assert.ErrorIs(t, b.CheckIn(testNow.Add(8*time.Hour)), booking.ErrWindowOver)
	})

	t.Run("check-in exactly at window end fails", func(t *testing.T) {
		b := freshBooking(t, testNow.Add(time.Hour), testNow.Add(7*time.Hour))
		assert.ErrorIs(t, b.CheckIn(testNow.Add(7*time.Hour)), booking.ErrWindowOver)
	})

	t.Run("cancelled booking does not check in", func(t *testing.T) {
		b := freshBooking(t, testNow.Add(time.Hour), testNow.Add(7*time.Hour))
		require.NoError(t, b.Cancel(testNow))
		assert.ErrorIs(t, b.CheckIn(testNow.Add(2*time.Hour)), booking.ErrNotCheckInable)
	})

	t.Run("double check-in fails", func(t *testing.T) {
		b := freshBooking(t, testNow.Add(time.Hour), testNow.Add(7*time.Hour))
		require.NoError(t, b.CheckIn(testNow.Add(2*time.Hour)))
		assert.ErrorIs(t, b.CheckIn(testNow.Add(3*time.Hour)), booking.ErrNotCheckInable)
	})
}

func TestBookingCheckOut(t *testing.T) {
	t.Run("checked-in booking completes", func(t *testing.T) {
		b := freshBooking(t, testNow.Add(time.Hour), testNow.Add(7*time.Hour))
		require.NoError(t, b.CheckIn(testNow.Add(2*time.Hour)))
		require.NoError(t, b.CheckOut(testNow.Add(6*time.Hour)))
		assert.Equal(t, booking.StatusCompleted, b.Status())
		assert.False(t, b.IsActive())
	})

	t.Run("confirmed booking does not check out", func(t *testing.T) {
		b := freshBooking(t, testNow.Add(time.Hour), testNow.Add(7*time.Hour))
		assert.ErrorIs(t, b.CheckOut(testNow.Add(6*time.Hour)), booking.ErrNotCheckOutable)
	})
}

func TestClassifySlot(t *testing.T) {
	day := time.Date(2024, 11, 22, 0, 0, 0, 0, time.UTC)

	window := func(startHour, hours int) booking.TimeWindow {
		start := day.Add(time.Duration(startHour) * time.Hour)
		w, err := booking.NewTimeWindow(start, start.Add(time.Duration(hours)*time.Hour))
		require.NoError(t, err)
		return w
	}

	tests := []struct {
		name string
		w    booking.TimeWindow
		want booking.Slot
	}{
		{"dawn sit is morning", window(5, 6), booking.SlotMorning},
		{"late start before noon is morning", window(11, 1), booking.SlotMorning},
		{"noon start is evening", window(12, 6), booking.SlotEvening},
		{"dusk sit is evening", window(15, 4), booking.SlotEvening},
		{"long sit spanning the day is all-day", window(5, 12), booking.SlotAllDay},
		{"exactly eight hours is not all-day", window(5, 8), booking.SlotMorning},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, booking.ClassifySlot(tt.w))
		})
	}
}

func TestStartDate(t *testing.T) {
	stockholm, err := time.LoadLocation("Europe/Stockholm")
	require.NoError(t, err)

	start := time.Date(2024, 11, 22, 23, 30, 0, 0, time.UTC)
	b := freshBooking(t, start, start.Add(2*time.Hour))

	assert.Equal(t, "2024-11-22", b.StartDate(time.UTC).String())
	assert.Equal(t, "2024-11-23", b.StartDate(stockholm).String())
}
