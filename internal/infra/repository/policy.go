package repository

import (
	"context"
	"time"

	"huntbook/internal/domain/booking"
	"huntbook/internal/infra"
	"huntbook/internal/infra/db"
	"huntbook/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

// PolicyRepository reads per-club booking policy. A club with no policy
// row gets booking.DefaultPolicy, so the validator always has a
// complete rule set to work with.
type PolicyRepository struct {
	pool            db.Querier
	defaultLocation *time.Location
}

func NewPolicyRepository(pool db.Querier, defaultLocation *time.Location) *PolicyRepository {
	if defaultLocation == nil {
		defaultLocation = time.UTC
	}
	return &PolicyRepository{pool: pool, defaultLocation: defaultLocation}
}

const selectPolicySQL = `
SELECT max_days_in_advance, min_advance_hours, max_consecutive_days,
       blackout_dates, allow_guests, requires_approval, max_guest_days, timezone
FROM club_policies
WHERE club_id = $1`

func (r *PolicyRepository) FindByClubID(ctx context.Context, clubID uuid.UUID) (booking.Policy, error) {
	var (
		maxDaysInAdvance   int
		minAdvanceHours    int
		maxConsecutiveDays int
		blackoutDates      []time.Time
		allowGuests        bool
		requiresApproval   bool
		maxGuestDays       pgtype.Int4
		timezone           pgtype.Text
	)

	err := r.pool.QueryRow(ctx, selectPolicySQL, clubID).Scan(
		&maxDaysInAdvance, &minAdvanceHours, &maxConsecutiveDays,
		&blackoutDates, &allowGuests, &requiresApproval, &maxGuestDays, &timezone,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			policy := booking.DefaultPolicy()
			policy.Location = r.defaultLocation
			return policy, nil
		}
		return booking.Policy{}, infra.WrapRepoErr("failed to read club policy", err, infra.KindUnavailable)
	}

	loc := r.defaultLocation
	if timezone.Valid && timezone.String != "" {
		if parsed, tzErr := time.LoadLocation(timezone.String); tzErr == nil {
			loc = parsed
		}
	}

	blackouts := make([]booking.Date, 0, len(blackoutDates))
	for _, t := range blackoutDates {
		// date columns come back at midnight UTC; read the civil day as stored
		blackouts = append(blackouts, booking.DateOf(t, time.UTC))
	}

	var guestDays *int
	if v := pgconv.Int32PtrFromPgtype(maxGuestDays); v != nil {
		n := int(*v)
		guestDays = &n
	}

	return booking.Policy{
		MaxDaysInAdvance:   maxDaysInAdvance,
		MinAdvanceHours:    minAdvanceHours,
		MaxConsecutiveDays: maxConsecutiveDays,
		BlackoutDates:      blackouts,
		Guests: booking.GuestRestrictions{
			AllowGuests:      allowGuests,
			RequiresApproval: requiresApproval,
			MaxGuestDays:     guestDays,
		},
		Location: loc,
	}, nil
}
