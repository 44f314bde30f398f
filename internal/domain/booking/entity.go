package booking

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrNotCancellable   = errors.New("booking can no longer be cancelled")
	ErrNotCheckInable   = errors.New("booking cannot be checked in")
	ErrNotCheckOutable  = errors.New("booking cannot be checked out")
	ErrWindowNotStarted = errors.New("booking window has not started yet")
	ErrWindowOver       = errors.New("booking window has already ended")
)

// Booking is one member's claim on a stand for a time window. A fresh
// booking starts out confirmed; check-in and check-out move it through
// the rest of the lifecycle.
type Booking struct {
	id        uuid.UUID
	standID   uuid.UUID
	clubID    uuid.UUID
	memberID  uuid.UUID
	window    TimeWindow
	status    Status
	slot      Slot
	guest     bool
	note      Note
	createdAt time.Time
	updatedAt time.Time
}

func NewBooking(
	standID, clubID, memberID uuid.UUID,
	window TimeWindow,
	guest bool,
	note Note,
	now time.Time,
) *Booking {
	return &Booking{
		id:        uuid.New(),
		standID:   standID,
		clubID:    clubID,
		memberID:  memberID,
		window:    window,
		status:    StatusConfirmed,
		slot:      ClassifySlot(window),
		guest:     guest,
		note:      note,
		createdAt: now,
		updatedAt: now,
	}
}

func ReconstructBooking(
	id, standID, clubID, memberID uuid.UUID,
	window TimeWindow,
	status Status,
	slot Slot,
	guest bool,
	note Note,
	createdAt, updatedAt time.Time,
) *Booking {
	return &Booking{
		id:        id,
		standID:   standID,
		clubID:    clubID,
		memberID:  memberID,
		window:    window,
		status:    status,
		slot:      slot,
		guest:     guest,
		note:      note,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}
}

func (b *Booking) IsActive() bool {
	return b.status.IsActive()
}

// Cancel releases the stand. Completed sits cannot be cancelled.
func (b *Booking) Cancel(now time.Time) error {
	if !b.status.IsActive() {
		return ErrNotCancellable
	}
	b.status = StatusCancelled
	b.updatedAt = now
	return nil
}

// CheckIn marks the member as on the stand. Only a confirmed booking
// can be checked in, and only while the window is open.
func (b *Booking) CheckIn(now time.Time) error {
	if b.status != StatusConfirmed {
		return ErrNotCheckInable
	}
	if !b.window.Contains(now) {
		if now.Before(b.window.Start()) {
			return ErrWindowNotStarted
		}
		return ErrWindowOver
	}
	b.status = StatusCheckedIn
	b.updatedAt = now
	return nil
}

func (b *Booking) CheckOut(now time.Time) error {
	if b.status != StatusCheckedIn {
		return ErrNotCheckOutable
	}
	b.status = StatusCompleted
	b.updatedAt = now
	return nil
}

func (b *Booking) ID() uuid.UUID       { return b.id }
func (b *Booking) StandID() uuid.UUID  { return b.standID }
func (b *Booking) ClubID() uuid.UUID   { return b.clubID }
func (b *Booking) MemberID() uuid.UUID { return b.memberID }
func (b *Booking) Window() TimeWindow  { return b.window }
func (b *Booking) Status() Status      { return b.status }
func (b *Booking) Slot() Slot          { return b.slot }
func (b *Booking) IsGuest() bool       { return b.guest }
func (b *Booking) Note() Note          { return b.note }
func (b *Booking) CreatedAt() time.Time { return b.createdAt }
func (b *Booking) UpdatedAt() time.Time { return b.updatedAt }

// StartDate is the calendar day the booking starts on, in loc.
func (b *Booking) StartDate(loc *time.Location) Date {
	return DateOf(b.window.Start(), loc)
}
