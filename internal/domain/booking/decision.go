package booking

import (
	"time"

	"github.com/google/uuid"
)

// Kind is the machine-readable classification of a booking refusal.
type Kind string

const (
	KindInPast             Kind = "in_past"
	KindInvertedOrZero     Kind = "inverted_or_zero"
	KindTooShort           Kind = "too_short"
	KindTooLong            Kind = "too_long"
	KindConflict           Kind = "conflict"
	KindTooFarInAdvance    Kind = "too_far_in_advance"
	KindNotEnoughNotice    Kind = "not_enough_notice"
	KindBlackedOut         Kind = "blacked_out"
	KindConsecutiveLimit   Kind = "consecutive_limit_exceeded"
	KindGuestsNotAllowed   Kind = "guests_not_allowed"
	KindGuestQuotaExceeded Kind = "guest_quota_exceeded"
)

// Violation is a single failed check. Validation stops at the first
// violation; the message is shown to the member verbatim.
type Violation struct {
	Kind    Kind
	Message string

	// Conflicting is set for KindConflict.
	Conflicting *Booking
	// DaysBefore/DaysAfter are set for KindConsecutiveLimit.
	DaysBefore int
	DaysAfter  int
	// DaysUsed is set for KindGuestQuotaExceeded.
	DaysUsed int
}

func (v *Violation) Error() string {
	return v.Message
}

// Decision is the validator's verdict. Violation is nil iff Allowed.
type Decision struct {
	Allowed   bool
	Violation *Violation
}

func allow() Decision {
	return Decision{Allowed: true}
}

func deny(v *Violation) Decision {
	return Decision{Allowed: false, Violation: v}
}

// Proposal is a booking under validation. ID is set only when
// re-validating an edit of an already persisted booking, so the
// conflict scan can exclude the booking itself.
type Proposal struct {
	ID       *uuid.UUID
	StandID  uuid.UUID
	ClubID   uuid.UUID
	MemberID uuid.UUID
	Start    time.Time
	End      time.Time
	Guest    bool
}

// Snapshot is the read-only view of existing bookings the validator
// works against. The caller fetches it; the validator performs no I/O
// and provides no protection against a write racing in after the read.
type Snapshot struct {
	// StandBookings holds the stand's bookings. The store pre-filters
	// to active statuses; inactive rows that slip through are ignored.
	StandBookings []*Booking
	// GuestHistory holds the member's club-wide bookings (any stand)
	// with status confirmed, checked-in or completed, starting within
	// the trailing 90 days. Only consulted for guest proposals.
	GuestHistory []*Booking
}

// Validate composes every check in fixed order: window sanity, then
// stand conflict, then club policy rules. The first failure wins and
// nothing after it runs.
func Validate(p Proposal, snap Snapshot, policy Policy, now time.Time) Decision {
	if v := ValidateWindow(p.Start, p.End, now); v != nil {
		return deny(v)
	}
	if c := FindConflict(p.StandID, p.Start, p.End, snap.StandBookings, p.ID); c != nil {
		return deny(conflictViolation(c))
	}
	if v := ValidateRules(p, policy, snap, now); v != nil {
		return deny(v)
	}
	return allow()
}
