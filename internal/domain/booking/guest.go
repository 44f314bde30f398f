package booking

import (
	"fmt"
	"time"
)

// checkGuestRules enforces the club's guest restrictions. The quota
// counts distinct calendar days the guest has used across the whole
// club in the trailing 90 days, comparing days already consumed against
// the cap before the proposed day is added: at the cap a new distinct
// day is refused, but booking again on an already-counted day passes.
func checkGuestRules(p Proposal, policy Policy, history []*Booking, now time.Time) *Violation {
	if !policy.Guests.AllowGuests {
		return &Violation{
			Kind:    KindGuestsNotAllowed,
			Message: "this club does not allow guest bookings",
		}
	}
	if policy.Guests.MaxGuestDays == nil {
		return nil
	}
	limit := *policy.Guests.MaxGuestDays

	loc := policy.location()
	since := now.Add(-GuestWindow)
	used := make(map[Date]bool)
	for _, b := range history {
		switch b.Status() {
		case StatusConfirmed, StatusCheckedIn, StatusCompleted:
		default:
			continue
		}
		if b.Window().Start().Before(since) {
			continue
		}
		used[b.StartDate(loc)] = true
	}

	if used[DateOf(p.Start, loc)] {
		// Not a new distinct day.
		return nil
	}
	if len(used) >= limit {
		return &Violation{
			Kind: KindGuestQuotaExceeded,
			Message: fmt.Sprintf(
				"guest quota reached: %d of %d hunting days used in the last 90 days",
				len(used), limit,
			),
			DaysUsed: len(used),
		}
	}
	return nil
}
