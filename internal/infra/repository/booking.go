package repository

import (
	"context"
	"time"

	"huntbook/internal/domain/booking"
	"huntbook/internal/infra"
	"huntbook/internal/infra/db"
	"huntbook/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// BookingRepository is the write-side store plus the snapshot reads the
// validator needs. Snapshot reads accept a Querier so the command layer
// can run them inside the same transaction as the eventual insert.
type BookingRepository struct {
	pool db.Querier
}

func NewBookingRepository(pool db.Querier) *BookingRepository {
	return &BookingRepository{pool: pool}
}

const insertBookingSQL = `
INSERT INTO bookings (id, stand_id, club_id, member_id, starts_at, ends_at, status, slot, is_guest, note, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
RETURNING id`

func (r *BookingRepository) Create(ctx context.Context, q db.Querier, b *booking.Booking) (uuid.UUID, error) {
	var note *string
	if !b.Note().IsEmpty() {
		s := b.Note().String()
		note = &s
	}

	var id uuid.UUID
	err := q.QueryRow(ctx, insertBookingSQL,
		b.ID(), b.StandID(), b.ClubID(), b.MemberID(),
		b.Window().Start(), b.Window().End(),
		b.Status().String(), b.Slot().String(), b.IsGuest(),
		pgconv.StringPtrToPgtype(note),
		b.CreatedAt(), b.UpdatedAt(),
	).Scan(&id)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create booking", err, infra.KindUnavailable)
	}
	return id, nil
}

func (r *BookingRepository) UpdateStatus(ctx context.Context, q db.Querier, b *booking.Booking) error {
	tag, err := q.Exec(ctx,
		`UPDATE bookings SET status = $2, updated_at = $3 WHERE id = $1`,
		b.ID(), b.Status().String(), b.UpdatedAt(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to update booking status", err, infra.KindUnavailable)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("booking not found", nil, infra.KindNotFound)
	}
	return nil
}

const selectBookingSQL = `
SELECT id, stand_id, club_id, member_id, starts_at, ends_at, status, slot, is_guest, note, created_at, updated_at
FROM bookings`

func (r *BookingRepository) FindByID(ctx context.Context, id uuid.UUID) (*booking.Booking, error) {
	rows, err := r.pool.Query(ctx, selectBookingSQL+` WHERE id = $1`, id)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find booking", err, infra.KindUnavailable)
	}
	entity, err := pgx.CollectExactlyOneRow(rows, scanBooking)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("booking not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to scan booking", err)
	}
	return entity, nil
}

// ListActiveForStand returns the stand's confirmed and checked-in
// bookings. Status filtering happens here, before the conflict detector
// ever sees the rows, keeping the detector store-agnostic.
func (r *BookingRepository) ListActiveForStand(ctx context.Context, q db.Querier, standID, clubID uuid.UUID) ([]*booking.Booking, error) {
	rows, err := q.Query(ctx, selectBookingSQL+`
WHERE stand_id = $1 AND club_id = $2 AND status = ANY($3)`,
		standID, clubID, activeStatuses(),
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list active bookings for stand", err, infra.KindUnavailable)
	}
	list, err := pgx.CollectRows(rows, scanBooking)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to scan stand bookings", err)
	}
	return list, nil
}

// ListMemberSince returns the member's club-wide bookings in the given
// statuses starting at or after since. The guest-quota rule feeds on
// this.
func (r *BookingRepository) ListMemberSince(ctx context.Context, q db.Querier, memberID, clubID uuid.UUID, statuses []booking.Status, since time.Time) ([]*booking.Booking, error) {
	names := make([]string, len(statuses))
	for i, s := range statuses {
		names[i] = s.String()
	}

	rows, err := q.Query(ctx, selectBookingSQL+`
WHERE member_id = $1 AND club_id = $2 AND status = ANY($3) AND starts_at >= $4`,
		memberID, clubID, names, since,
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list member bookings", err, infra.KindUnavailable)
	}
	list, err := pgx.CollectRows(rows, scanBooking)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to scan member bookings", err)
	}
	return list, nil
}

func activeStatuses() []string {
	return []string{booking.StatusConfirmed.String(), booking.StatusCheckedIn.String()}
}

func scanBooking(row pgx.CollectableRow) (*booking.Booking, error) {
	var (
		id, standID, clubID, memberID uuid.UUID
		startsAt, endsAt              time.Time
		status, slot                  string
		isGuest                       bool
		note                          *string
		createdAt, updatedAt          time.Time
	)
	if err := row.Scan(&id, &standID, &clubID, &memberID, &startsAt, &endsAt, &status, &slot, &isGuest, &note, &createdAt, &updatedAt); err != nil {
		return nil, err
	}

	window, err := booking.NewTimeWindow(startsAt, endsAt)
	if err != nil {
		return nil, err
	}
	noteVal := ""
	if note != nil {
		noteVal = *note
	}
	return booking.ReconstructBooking(
		id, standID, clubID, memberID,
		window,
		booking.Status(status),
		booking.Slot(slot),
		isGuest,
		booking.NewNote(noteVal),
		createdAt, updatedAt,
	), nil
}
