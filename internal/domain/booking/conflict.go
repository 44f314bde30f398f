package booking

import (
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"
)

// FindConflict scans the stand's bookings for one overlapping the
// proposed [start, end). Overlap is half-open: a booking ending exactly
// when another starts does not conflict. Bookings for other stands, in
// inactive statuses, or matching excludeID (an edit validating against
// a snapshot that still contains itself) are skipped.
//
// When several bookings overlap, the one with the earliest start is
// returned so refusal messages stay stable. Per-stand booking counts
// sit in the tens, so a sorted linear scan is plenty.
func FindConflict(standID uuid.UUID, start, end time.Time, bookings []*Booking, excludeID *uuid.UUID) *Booking {
	candidates := make([]*Booking, 0, len(bookings))
	for _, b := range bookings {
		if b.StandID() != standID {
			continue
		}
		if !b.Status().IsActive() {
			continue
		}
		if excludeID != nil && b.ID() == *excludeID {
			continue
		}
		if b.Window().Overlaps(TimeWindow{start: start, end: end}) {
			candidates = append(candidates, b)
		}
	}
	if len(candidates) == 0 {
		return nil
	}
	sort.Slice(candidates, func(i, j int) bool {
		return candidates[i].Window().Start().Before(candidates[j].Window().Start())
	})
	return candidates[0]
}

func conflictViolation(existing *Booking) *Violation {
	w := existing.Window()
	return &Violation{
		Kind: KindConflict,
		Message: fmt.Sprintf(
			"stand is already booked from %s to %s",
			w.Start().Format(time.RFC3339), w.End().Format(time.RFC3339),
		),
		Conflicting: existing,
	}
}
