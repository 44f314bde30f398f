package booking

import "time"

// Status is the lifecycle state of a booking. Only confirmed and
// checked-in bookings block a stand; completed and cancelled never do.
type Status string

const (
	StatusConfirmed Status = "confirmed"
	StatusCheckedIn Status = "checked_in"
	StatusCompleted Status = "completed"
	StatusCancelled Status = "cancelled"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusConfirmed, StatusCheckedIn, StatusCompleted, StatusCancelled:
		return true
	default:
		return false
	}
}

// IsActive reports whether a booking in this status occupies the stand.
func (s Status) IsActive() bool {
	return s == StatusConfirmed || s == StatusCheckedIn
}

// Slot is a coarse classification of the booked window. It is derived
// for display and reporting only; the start/end instants stay
// authoritative for all conflict math.
type Slot string

const (
	SlotMorning Slot = "morning"
	SlotEvening Slot = "evening"
	SlotAllDay  Slot = "all_day"
)

func (s Slot) String() string {
	return string(s)
}

// ClassifySlot buckets a window by its local start hour and length.
// Anything longer than eight hours counts as an all-day sit.
func ClassifySlot(w TimeWindow) Slot {
	if w.Duration() > 8*time.Hour {
		return SlotAllDay
	}
	if w.Start().Hour() < 12 {
		return SlotMorning
	}
	return SlotEvening
}
