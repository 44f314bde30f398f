package readstore

import (
	"context"
	"time"

	"huntbook/internal/domain/booking"
	"huntbook/internal/infra"
	"huntbook/internal/infra/db"
	"huntbook/internal/pkg/pgconv"
	"huntbook/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type BookingReadStore struct {
	pool db.Querier
}

func NewBookingReadStore(pool db.Querier) *BookingReadStore {
	return &BookingReadStore{pool: pool}
}

const bookingViewSQL = `
SELECT id, stand_id, club_id, member_id, starts_at, ends_at, status, slot, is_guest, note, created_at, updated_at
FROM bookings`

func (r *BookingReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.BookingView, error) {
	rows, err := r.pool.Query(ctx, bookingViewSQL+` WHERE id = $1`, id)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to query booking", err, infra.KindUnavailable)
	}
	view, err := pgx.CollectExactlyOneRow(rows, scanBookingView)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("booking not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to scan booking view", err)
	}
	return view, nil
}

const bookingListSQL = `
SELECT id, stand_id, starts_at, ends_at, status, slot, created_at
FROM bookings`

func (r *BookingReadStore) ListByMemberFirstPage(ctx context.Context, memberID uuid.UUID, limit int32) ([]*queries.BookingListItem, error) {
	rows, err := r.pool.Query(ctx, bookingListSQL+`
WHERE member_id = $1
ORDER BY created_at DESC, id DESC
LIMIT $2`, memberID, limit)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list bookings first page", err, infra.KindUnavailable)
	}
	return collectListItems(rows)
}

func (r *BookingReadStore) ListByMemberKeyset(ctx context.Context, memberID uuid.UUID, lastCreatedAt time.Time, lastID uuid.UUID, limit int32) ([]*queries.BookingListItem, error) {
	rows, err := r.pool.Query(ctx, bookingListSQL+`
WHERE member_id = $1 AND (created_at, id) < ($2, $3)
ORDER BY created_at DESC, id DESC
LIMIT $4`, memberID, lastCreatedAt, lastID, limit)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list bookings keyset", err, infra.KindUnavailable)
	}
	return collectListItems(rows)
}

func (r *BookingReadStore) ListForStandDay(ctx context.Context, standID, clubID uuid.UUID, day booking.Date, loc *time.Location) ([]*queries.BookingListItem, error) {
	from := day.Midnight(loc)
	to := day.AddDays(1).Midnight(loc)

	rows, err := r.pool.Query(ctx, bookingListSQL+`
WHERE stand_id = $1 AND club_id = $2 AND status = ANY($3)
  AND starts_at >= $4 AND starts_at < $5
ORDER BY starts_at`, standID, clubID, activeStatusNames(), from, to)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list bookings for stand day", err, infra.KindUnavailable)
	}
	return collectListItems(rows)
}

func (r *BookingReadStore) HasBookingStartingOn(ctx context.Context, standID, clubID uuid.UUID, day booking.Date, loc *time.Location) (bool, error) {
	from := day.Midnight(loc)
	to := day.AddDays(1).Midnight(loc)

	var exists bool
	err := r.pool.QueryRow(ctx, `
SELECT EXISTS (
  SELECT 1 FROM bookings
  WHERE stand_id = $1 AND club_id = $2 AND status = ANY($3)
    AND starts_at >= $4 AND starts_at < $5
)`, standID, clubID, activeStatusNames(), from, to).Scan(&exists)
	if err != nil {
		return false, infra.WrapRepoErr("failed to check day availability", err, infra.KindUnavailable)
	}
	return exists, nil
}

func (r *BookingReadStore) StandExists(ctx context.Context, standID, clubID uuid.UUID) (bool, error) {
	var exists bool
	err := r.pool.QueryRow(ctx, `
SELECT EXISTS (
  SELECT 1 FROM stands WHERE id = $1 AND club_id = $2
)`, standID, clubID).Scan(&exists)
	if err != nil {
		return false, infra.WrapRepoErr("failed to check stand existence", err, infra.KindUnavailable)
	}
	return exists, nil
}

func activeStatusNames() []string {
	return []string{booking.StatusConfirmed.String(), booking.StatusCheckedIn.String()}
}

func collectListItems(rows pgx.Rows) ([]*queries.BookingListItem, error) {
	items, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (*queries.BookingListItem, error) {
		var item queries.BookingListItem
		err := row.Scan(&item.ID, &item.StandID, &item.StartsAt, &item.EndsAt, &item.Status, &item.Slot, &item.CreatedAt)
		return &item, err
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to scan booking list", err)
	}
	return items, nil
}

func scanBookingView(row pgx.CollectableRow) (*queries.BookingView, error) {
	var view queries.BookingView
	err := row.Scan(
		&view.ID, &view.StandID, &view.ClubID, &view.MemberID,
		&view.StartsAt, &view.EndsAt, &view.Status, &view.Slot,
		&view.IsGuest, &view.Note, &view.CreatedAt, &view.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &view, nil
}
