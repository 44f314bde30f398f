package booking

import (
	"fmt"
	"time"
)

// ValidateRules applies the club's policy to the proposal in fixed
// order with early exit: advance window, minimum notice, blackout,
// consecutive days, then the guest rules. Returns nil when every rule
// passes. Guest rules only run for guest proposals.
func ValidateRules(p Proposal, policy Policy, snap Snapshot, now time.Time) *Violation {
	if v := checkAdvanceWindow(p, policy, now); v != nil {
		return v
	}
	if v := checkMinimumNotice(p, policy, now); v != nil {
		return v
	}
	if v := checkBlackout(p, policy); v != nil {
		return v
	}
	if v := checkConsecutiveDays(p, policy, snap.StandBookings); v != nil {
		return v
	}
	if p.Guest {
		if v := checkGuestRules(p, policy, snap.GuestHistory, now); v != nil {
			return v
		}
	}
	return nil
}

func checkAdvanceWindow(p Proposal, policy Policy, now time.Time) *Violation {
	if policy.MaxDaysInAdvance <= 0 {
		return nil
	}
	limit := now.AddDate(0, 0, policy.MaxDaysInAdvance)
	if p.Start.After(limit) {
		return &Violation{
			Kind:    KindTooFarInAdvance,
			Message: fmt.Sprintf("bookings may be made at most %d days in advance", policy.MaxDaysInAdvance),
		}
	}
	return nil
}

func checkMinimumNotice(p Proposal, policy Policy, now time.Time) *Violation {
	if policy.MinAdvanceHours <= 0 {
		return nil
	}
	earliest := now.Add(time.Duration(policy.MinAdvanceHours) * time.Hour)
	if p.Start.Before(earliest) {
		return &Violation{
			Kind:    KindNotEnoughNotice,
			Message: fmt.Sprintf("bookings require at least %d hours notice", policy.MinAdvanceHours),
		}
	}
	return nil
}

// checkBlackout compares calendar dates in the club's zone, not
// instants: a blackout on 2024-11-23 blocks any start that day no
// matter the hour.
func checkBlackout(p Proposal, policy Policy) *Violation {
	if len(policy.BlackoutDates) == 0 {
		return nil
	}
	day := DateOf(p.Start, policy.location())
	if policy.isBlackedOut(day) {
		return &Violation{
			Kind:    KindBlackedOut,
			Message: fmt.Sprintf("no bookings may start on %s", day),
		}
	}
	return nil
}
