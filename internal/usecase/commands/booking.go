package commands

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"huntbook/internal/domain/booking"
	"huntbook/internal/infra"
	"huntbook/internal/infra/db"
	"huntbook/internal/pkg/clock"
	"huntbook/internal/pkg/errs"
	"huntbook/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

var (
	ErrBookingNotFound     = errs.ErrBookingNotFound
	ErrBookingConflict     = errs.ErrBookingConflict
	ErrBookingNotAllowed   = errs.ErrBookingNotAllowed
	ErrInvalidBookingState = errs.ErrInvalidBookingState
	ErrNotBookingOwner     = errs.ErrNotBookingOwner
	ErrStoreUnavailable    = errs.ErrStoreUnavailable
)

type CreateBookingParams struct {
	StandID  uuid.UUID
	ClubID   uuid.UUID
	MemberID uuid.UUID
	StartsAt time.Time
	EndsAt   time.Time
	Guest    bool
	Note     *string
}

// Actor is the authenticated member performing a command. Wardens may
// cancel any booking in their club; everything else is owner-only.
type Actor struct {
	MemberID uuid.UUID
	Warden   bool
}

type BookingRepository interface {
	Create(ctx context.Context, q db.Querier, b *booking.Booking) (uuid.UUID, error)
	UpdateStatus(ctx context.Context, q db.Querier, b *booking.Booking) error
	FindByID(ctx context.Context, id uuid.UUID) (*booking.Booking, error)
	ListActiveForStand(ctx context.Context, q db.Querier, standID, clubID uuid.UUID) ([]*booking.Booking, error)
	ListMemberSince(ctx context.Context, q db.Querier, memberID, clubID uuid.UUID, statuses []booking.Status, since time.Time) ([]*booking.Booking, error)
}

type PolicyRepository interface {
	FindByClubID(ctx context.Context, clubID uuid.UUID) (booking.Policy, error)
}

type BookingCommands interface {
	CreateBooking(ctx context.Context, params CreateBookingParams) (*queries.BookingView, error)
	// ValidateBooking is the dry-run used by clients to preflight a
	// proposal. excludeID supports validating an edit against a
	// snapshot that still contains the booking being edited.
	ValidateBooking(ctx context.Context, params CreateBookingParams, excludeID *uuid.UUID) (booking.Decision, error)
	CancelBooking(ctx context.Context, id uuid.UUID, actor Actor) error
	CheckIn(ctx context.Context, id uuid.UUID, actor Actor) error
	CheckOut(ctx context.Context, id uuid.UUID, actor Actor) error
}

type bookingCommandsImpl struct {
	bookingRepo BookingRepository
	policyRepo  PolicyRepository
	readStore   queries.BookingReadStore
	pool        db.Pool
	clock       clock.Clock
}

func NewBookingCommands(
	bookingRepo BookingRepository,
	policyRepo PolicyRepository,
	readStore queries.BookingReadStore,
	pool db.Pool,
	clock clock.Clock,
) BookingCommands {
	return &bookingCommandsImpl{
		bookingRepo: bookingRepo,
		policyRepo:  policyRepo,
		readStore:   readStore,
		pool:        pool,
		clock:       clock,
	}
}

// guestHistoryStatuses: completed sits still count against the guest
// quota; cancelled ones never do.
var guestHistoryStatuses = []booking.Status{
	booking.StatusConfirmed,
	booking.StatusCheckedIn,
	booking.StatusCompleted,
}

func (c *bookingCommandsImpl) CreateBooking(ctx context.Context, params CreateBookingParams) (*queries.BookingView, error) {
	now := c.clock.Now()

	policy, err := c.policyRepo.FindByClubID(ctx, params.ClubID)
	if err != nil {
		return nil, errs.Mark(err, ErrStoreUnavailable)
	}

	tx, err := c.pool.Begin(ctx)
	if err != nil {
		return nil, errs.Mark(err, ErrStoreUnavailable)
	}
	defer func() {
		if rollbackErr := tx.Rollback(ctx); rollbackErr != nil && !errors.Is(rollbackErr, pgx.ErrTxClosed) {
			slog.Warn("failed to rollback booking transaction", "error", rollbackErr)
		}
	}()

	// Serialize attempts per stand so the second of two racing
	// proposals sees the first's write in its snapshot.
	if _, err := tx.Exec(ctx,
		`SELECT pg_advisory_xact_lock(hashtextextended($1::text, 0))`,
		params.StandID.String(),
	); err != nil {
		return nil, errs.Mark(err, ErrStoreUnavailable)
	}

	snap, err := c.loadSnapshot(ctx, tx, params, now)
	if err != nil {
		return nil, err
	}

	decision := booking.Validate(c.toProposal(params, nil), snap, policy, now)
	if !decision.Allowed {
		return nil, violationError(decision.Violation)
	}

	window, err := booking.NewTimeWindow(params.StartsAt, params.EndsAt)
	if err != nil {
		return nil, errs.Mark(err, ErrBookingNotAllowed)
	}
	note := booking.NewNote("")
	if params.Note != nil {
		note = booking.NewNote(*params.Note)
	}
	entity := booking.NewBooking(params.StandID, params.ClubID, params.MemberID, window, params.Guest, note, now)

	id, err := c.bookingRepo.Create(ctx, tx, entity)
	if err != nil {
		return nil, errs.Mark(err, ErrStoreUnavailable)
	}
	if err := tx.Commit(ctx); err != nil {
		return nil, errs.Mark(err, ErrStoreUnavailable)
	}

	view, err := c.readStore.FindByID(ctx, id)
	if err != nil {
		return nil, errs.Mark(err, ErrStoreUnavailable)
	}
	return view, nil
}

func (c *bookingCommandsImpl) ValidateBooking(ctx context.Context, params CreateBookingParams, excludeID *uuid.UUID) (booking.Decision, error) {
	now := c.clock.Now()

	policy, err := c.policyRepo.FindByClubID(ctx, params.ClubID)
	if err != nil {
		return booking.Decision{}, errs.Mark(err, ErrStoreUnavailable)
	}
	snap, err := c.loadSnapshot(ctx, c.pool, params, now)
	if err != nil {
		return booking.Decision{}, err
	}

	return booking.Validate(c.toProposal(params, excludeID), snap, policy, now), nil
}

func (c *bookingCommandsImpl) CancelBooking(ctx context.Context, id uuid.UUID, actor Actor) error {
	entity, err := c.loadOwned(ctx, id, actor, true)
	if err != nil {
		return err
	}
	if err := entity.Cancel(c.clock.Now()); err != nil {
		return errs.Mark(err, ErrInvalidBookingState)
	}
	if err := c.bookingRepo.UpdateStatus(ctx, c.pool, entity); err != nil {
		return errs.Mark(err, ErrStoreUnavailable)
	}
	return nil
}

func (c *bookingCommandsImpl) CheckIn(ctx context.Context, id uuid.UUID, actor Actor) error {
	entity, err := c.loadOwned(ctx, id, actor, false)
	if err != nil {
		return err
	}
	if err := entity.CheckIn(c.clock.Now()); err != nil {
		return errs.Mark(err, ErrInvalidBookingState)
	}
	if err := c.bookingRepo.UpdateStatus(ctx, c.pool, entity); err != nil {
		return errs.Mark(err, ErrStoreUnavailable)
	}
	return nil
}

func (c *bookingCommandsImpl) CheckOut(ctx context.Context, id uuid.UUID, actor Actor) error {
	entity, err := c.loadOwned(ctx, id, actor, false)
	if err != nil {
		return err
	}
	if err := entity.CheckOut(c.clock.Now()); err != nil {
		return errs.Mark(err, ErrInvalidBookingState)
	}
	if err := c.bookingRepo.UpdateStatus(ctx, c.pool, entity); err != nil {
		return errs.Mark(err, ErrStoreUnavailable)
	}
	return nil
}

// loadOwned fetches the booking and enforces ownership. wardenMayAct
// lets wardens operate on other members' bookings (cancel only).
func (c *bookingCommandsImpl) loadOwned(ctx context.Context, id uuid.UUID, actor Actor, wardenMayAct bool) (*booking.Booking, error) {
	entity, err := c.bookingRepo.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, ErrBookingNotFound)
		}
		return nil, errs.Mark(err, ErrStoreUnavailable)
	}
	if entity.MemberID() != actor.MemberID {
		if !(wardenMayAct && actor.Warden) {
			return nil, ErrNotBookingOwner
		}
	}
	return entity, nil
}

func (c *bookingCommandsImpl) loadSnapshot(ctx context.Context, q db.Querier, params CreateBookingParams, now time.Time) (booking.Snapshot, error) {
	standBookings, err := c.bookingRepo.ListActiveForStand(ctx, q, params.StandID, params.ClubID)
	if err != nil {
		return booking.Snapshot{}, errs.Mark(err, ErrStoreUnavailable)
	}

	var guestHistory []*booking.Booking
	if params.Guest {
		since := now.Add(-booking.GuestWindow)
		guestHistory, err = c.bookingRepo.ListMemberSince(ctx, q, params.MemberID, params.ClubID, guestHistoryStatuses, since)
		if err != nil {
			return booking.Snapshot{}, errs.Mark(err, ErrStoreUnavailable)
		}
	}

	return booking.Snapshot{
		StandBookings: standBookings,
		GuestHistory:  guestHistory,
	}, nil
}

func (c *bookingCommandsImpl) toProposal(params CreateBookingParams, excludeID *uuid.UUID) booking.Proposal {
	return booking.Proposal{
		ID:       excludeID,
		StandID:  params.StandID,
		ClubID:   params.ClubID,
		MemberID: params.MemberID,
		Start:    params.StartsAt,
		End:      params.EndsAt,
		Guest:    params.Guest,
	}
}

// violationError keeps the typed violation reachable through errors.As
// while marking it with the sentinel the handler maps to a status code.
func violationError(v *booking.Violation) error {
	if v.Kind == booking.KindConflict {
		return errs.Mark(v, ErrBookingConflict)
	}
	return errs.Mark(v, ErrBookingNotAllowed)
}
