package queries

import (
	"context"
	"time"

	"huntbook/internal/domain/booking"
	"huntbook/internal/infra"
	"huntbook/internal/pkg/errs"

	"github.com/google/uuid"
)

const (
	DefaultPageSize = 20
	MaxPageSize     = 100

	// nextAvailableScanDays bounds the day-by-day availability scan.
	nextAvailableScanDays = 30
)

// BookingView is the read model returned to API callers.
type BookingView struct {
	ID        uuid.UUID
	StandID   uuid.UUID
	ClubID    uuid.UUID
	MemberID  uuid.UUID
	StartsAt  time.Time
	EndsAt    time.Time
	Status    string
	Slot      string
	IsGuest   bool
	Note      *string
	CreatedAt time.Time
	UpdatedAt time.Time
}

type BookingListItem struct {
	ID        uuid.UUID
	StandID   uuid.UUID
	StartsAt  time.Time
	EndsAt    time.Time
	Status    string
	Slot      string
	CreatedAt time.Time
}

type BookingReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*BookingView, error)
	ListByMemberFirstPage(ctx context.Context, memberID uuid.UUID, limit int32) ([]*BookingListItem, error)
	ListByMemberKeyset(ctx context.Context, memberID uuid.UUID, lastCreatedAt time.Time, lastID uuid.UUID, limit int32) ([]*BookingListItem, error)
	ListForStandDay(ctx context.Context, standID, clubID uuid.UUID, day booking.Date, loc *time.Location) ([]*BookingListItem, error)
	// HasBookingStartingOn reports whether any active booking for the
	// stand starts on the given calendar day.
	HasBookingStartingOn(ctx context.Context, standID, clubID uuid.UUID, day booking.Date, loc *time.Location) (bool, error)
	StandExists(ctx context.Context, standID, clubID uuid.UUID) (bool, error)
}

type PolicyReader interface {
	FindByClubID(ctx context.Context, clubID uuid.UUID) (booking.Policy, error)
}

type BookingQueries interface {
	GetByID(ctx context.Context, id uuid.UUID, requesterID uuid.UUID, isWarden bool) (*BookingView, error)
	ListMineFirstPage(ctx context.Context, memberID uuid.UUID, limit int32) ([]*BookingListItem, error)
	ListMineKeyset(ctx context.Context, memberID uuid.UUID, lastCreatedAt time.Time, lastID uuid.UUID, limit int32) ([]*BookingListItem, error)
	ListForStandDay(ctx context.Context, standID, clubID uuid.UUID, day booking.Date) ([]*BookingListItem, error)
	// NextAvailableDate scans forward from the given day for the first
	// calendar day with no active booking starting on it. The scan is
	// bounded; when every scanned day is taken the last scanned day is
	// suggested rather than an error, since this is advisory.
	NextAvailableDate(ctx context.Context, standID, clubID uuid.UUID, from time.Time) (booking.Date, error)
}

type bookingQueriesImpl struct {
	store    BookingReadStore
	policies PolicyReader
}

func NewBookingQueries(store BookingReadStore, policies PolicyReader) BookingQueries {
	return &bookingQueriesImpl{store: store, policies: policies}
}

func (q *bookingQueriesImpl) GetByID(ctx context.Context, id uuid.UUID, requesterID uuid.UUID, isWarden bool) (*BookingView, error) {
	view, err := q.store.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, errs.ErrBookingNotFound)
		}
		return nil, errs.Mark(err, errs.ErrStoreUnavailable)
	}
	if !isWarden && view.MemberID != requesterID {
		return nil, errs.ErrBookingNotFound
	}
	return view, nil
}

func (q *bookingQueriesImpl) ListMineFirstPage(ctx context.Context, memberID uuid.UUID, limit int32) ([]*BookingListItem, error) {
	items, err := q.store.ListByMemberFirstPage(ctx, memberID, clampLimit(limit))
	if err != nil {
		return nil, errs.Mark(err, errs.ErrStoreUnavailable)
	}
	return items, nil
}

func (q *bookingQueriesImpl) ListMineKeyset(ctx context.Context, memberID uuid.UUID, lastCreatedAt time.Time, lastID uuid.UUID, limit int32) ([]*BookingListItem, error) {
	items, err := q.store.ListByMemberKeyset(ctx, memberID, lastCreatedAt, lastID, clampLimit(limit))
	if err != nil {
		return nil, errs.Mark(err, errs.ErrStoreUnavailable)
	}
	return items, nil
}

func (q *bookingQueriesImpl) ListForStandDay(ctx context.Context, standID, clubID uuid.UUID, day booking.Date) ([]*BookingListItem, error) {
	policy, err := q.policies.FindByClubID(ctx, clubID)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrStoreUnavailable)
	}
	items, err := q.store.ListForStandDay(ctx, standID, clubID, day, policy.Location)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrStoreUnavailable)
	}
	return items, nil
}

func (q *bookingQueriesImpl) NextAvailableDate(ctx context.Context, standID, clubID uuid.UUID, from time.Time) (booking.Date, error) {
	exists, err := q.store.StandExists(ctx, standID, clubID)
	if err != nil {
		return booking.Date{}, errs.Mark(err, errs.ErrStoreUnavailable)
	}
	if !exists {
		return booking.Date{}, errs.ErrStandNotFound
	}

	policy, err := q.policies.FindByClubID(ctx, clubID)
	if err != nil {
		return booking.Date{}, errs.Mark(err, errs.ErrStoreUnavailable)
	}
	start := booking.DateOf(from, policy.Location)

	for i := 0; i < nextAvailableScanDays; i++ {
		day := start.AddDays(i)
		taken, err := q.store.HasBookingStartingOn(ctx, standID, clubID, day, policy.Location)
		if err != nil {
			return booking.Date{}, errs.Mark(err, errs.ErrStoreUnavailable)
		}
		if !taken {
			return day, nil
		}
	}
	// Fully booked within the scan horizon; suggest the last scanned
	// day rather than failing, since the answer is advisory.
	return start.AddDays(nextAvailableScanDays - 1), nil
}

func clampLimit(limit int32) int32 {
	if limit <= 0 {
		return DefaultPageSize
	}
	if limit > MaxPageSize {
		return MaxPageSize
	}
	return limit
}
