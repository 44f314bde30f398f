package booking

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// checkConsecutiveDays caps the run of calendar days in a row on which
// one member holds this stand. The walk goes backward from the proposed
// day counting days where the member already has an active booking
// starting that day, stops at the first gap, then walks forward the
// same way. The run length is daysBefore + the proposed day itself +
// daysAfter. Scoped to one member and one stand: back-to-back days on
// different stands never trip this rule.
func checkConsecutiveDays(p Proposal, policy Policy, standBookings []*Booking) *Violation {
	if policy.MaxConsecutiveDays <= 0 {
		return nil
	}

	loc := policy.location()
	booked := memberStartDates(standBookings, p.MemberID, p.ID, loc)
	day := DateOf(p.Start, loc)

	daysBefore := walkRun(booked, day, -1, policy.MaxConsecutiveDays)
	daysAfter := walkRun(booked, day, +1, policy.MaxConsecutiveDays)

	total := daysBefore + 1 + daysAfter
	if total > policy.MaxConsecutiveDays {
		return &Violation{
			Kind: KindConsecutiveLimit,
			Message: fmt.Sprintf(
				"booking would make %d days in a row on this stand (limit %d): %d already held before, %d after",
				total, policy.MaxConsecutiveDays, daysBefore, daysAfter,
			),
			DaysBefore: daysBefore,
			DaysAfter:  daysAfter,
		}
	}
	return nil
}

// walkRun counts consecutive booked days adjacent to day in the given
// direction, breaking at the first unbooked day. Bounded by maxSteps;
// beyond the cap the total already exceeds it anyway.
func walkRun(booked map[Date]bool, day Date, direction, maxSteps int) int {
	run := 0
	for step := 1; step <= maxSteps; step++ {
		if !booked[day.AddDays(direction*step)] {
			break
		}
		run++
	}
	return run
}

func memberStartDates(bookings []*Booking, memberID uuid.UUID, excludeID *uuid.UUID, loc *time.Location) map[Date]bool {
	dates := make(map[Date]bool)
	for _, b := range bookings {
		if b.MemberID() != memberID || !b.Status().IsActive() {
			continue
		}
		if excludeID != nil && b.ID() == *excludeID {
			continue
		}
		dates[b.StartDate(loc)] = true
	}
	return dates
}
