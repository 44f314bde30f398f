package booking

import "time"

// GuestRestrictions governs bookings made by guest members.
// MaxGuestDays caps the number of distinct calendar days a guest may
// accumulate within the trailing 90-day window; nil means uncapped.
type GuestRestrictions struct {
	AllowGuests      bool
	RequiresApproval bool
	MaxGuestDays     *int
}

// Policy is a club's booking rule set. It is read fresh per validation
// and never mutated by the validator. Zero values disable the
// corresponding rule: MaxDaysInAdvance <= 0 drops the advance-window
// check, MinAdvanceHours <= 0 permits same-moment bookings, and
// MaxConsecutiveDays <= 0 disables the consecutive-day walk.
type Policy struct {
	MaxDaysInAdvance   int
	MinAdvanceHours    int
	MaxConsecutiveDays int
	BlackoutDates      []Date
	Guests             GuestRestrictions
	Location           *time.Location
}

// GuestWindow is how far back the guest-quota rule looks for used days.
const GuestWindow = 90 * 24 * time.Hour

// DefaultPolicy applies when a club has not configured one.
func DefaultPolicy() Policy {
	two := 2
	return Policy{
		MaxDaysInAdvance:   30,
		MinAdvanceHours:    0,
		MaxConsecutiveDays: 3,
		BlackoutDates:      nil,
		Guests: GuestRestrictions{
			AllowGuests:      true,
			RequiresApproval: true,
			MaxGuestDays:     &two,
		},
		Location: time.UTC,
	}
}

func (p Policy) location() *time.Location {
	if p.Location == nil {
		return time.UTC
	}
	return p.Location
}

func (p Policy) isBlackedOut(d Date) bool {
	for _, b := range p.BlackoutDates {
		if b.Equal(d) {
			return true
		}
	}
	return false
}
