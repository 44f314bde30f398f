//go:build unit

package booking_test

import (
	"testing"
	"time"

	"huntbook/internal/domain/booking"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDate(t *testing.T) {
	d, err := booking.ParseDate("2024-11-23")
	require.NoError(t, err)
	assert.Equal(t, "2024-11-23", d.String())

	_, err = booking.ParseDate("23/11/2024")
	assert.Error(t, err)

	_, err = booking.ParseDate("")
	assert.Error(t, err)
}

func TestDateOf(t *testing.T) {
	stockholm, err := time.LoadLocation("Europe/Stockholm")
	require.NoError(t, err)

	at := time.Date(2024, 11, 22, 23, 30, 0, 0, time.UTC)

	assert.Equal(t, "2024-11-22", booking.DateOf(at, time.UTC).String())
	assert.Equal(t, "2024-11-23", booking.DateOf(at, stockholm).String())
	// nil location falls back to UTC
	assert.Equal(t, "2024-11-22", booking.DateOf(at, nil).String())
}

func TestDateAddDays(t *testing.T) {
	d, err := booking.ParseDate("2024-11-29")
	require.NoError(t, err)

	assert.Equal(t, "2024-11-30", d.AddDays(1).String())
	assert.Equal(t, "2024-12-01", d.AddDays(2).String())
	assert.Equal(t, "2024-11-28", d.AddDays(-1).String())

	// leap day
	feb, err := booking.ParseDate("2024-02-28")
	require.NoError(t, err)
	assert.Equal(t, "2024-02-29", feb.AddDays(1).String())
}

func TestDateMidnight(t *testing.T) {
	stockholm, err := time.LoadLocation("Europe/Stockholm")
	require.NoError(t, err)

	d, err := booking.ParseDate("2024-11-23")
	require.NoError(t, err)

	got := d.Midnight(stockholm)
	assert.Equal(t, "2024-11-23", booking.DateOf(got, stockholm).String())
	assert.Equal(t, 0, got.Hour())
}
