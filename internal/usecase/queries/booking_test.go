//go:build unit

package queries_test

import (
	"context"
	"testing"
	"time"

	"huntbook/internal/domain/booking"
	"huntbook/internal/infra"
	"huntbook/internal/pkg/errs"
	"huntbook/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeReadStore struct {
	view      *queries.BookingView
	findErr   error
	items     []*queries.BookingListItem
	listErr   error
	gotLimit  int32
	takenDays map[string]bool
	takenErr  error
	scanned   []string

	standMissing bool
	standErr     error
}

func (f *fakeReadStore) FindByID(context.Context, uuid.UUID) (*queries.BookingView, error) {
	return f.view, f.findErr
}

func (f *fakeReadStore) ListByMemberFirstPage(_ context.Context, _ uuid.UUID, limit int32) ([]*queries.BookingListItem, error) {
	f.gotLimit = limit
	return f.items, f.listErr
}

func (f *fakeReadStore) ListByMemberKeyset(_ context.Context, _ uuid.UUID, _ time.Time, _ uuid.UUID, limit int32) ([]*queries.BookingListItem, error) {
	f.gotLimit = limit
	return f.items, f.listErr
}

func (f *fakeReadStore) ListForStandDay(context.Context, uuid.UUID, uuid.UUID, booking.Date, *time.Location) ([]*queries.BookingListItem, error) {
	return f.items, f.listErr
}

func (f *fakeReadStore) HasBookingStartingOn(_ context.Context, _ uuid.UUID, _ uuid.UUID, day booking.Date, _ *time.Location) (bool, error) {
	if f.takenErr != nil {
		return false, f.takenErr
	}
	f.scanned = append(f.scanned, day.String())
	return f.takenDays[day.String()], nil
}

func (f *fakeReadStore) StandExists(context.Context, uuid.UUID, uuid.UUID) (bool, error) {
	if f.standErr != nil {
		return false, f.standErr
	}
	return !f.standMissing, nil
}

type fakePolicyReader struct {
	policy booking.Policy
	err    error
}

func (f *fakePolicyReader) FindByClubID(context.Context, uuid.UUID) (booking.Policy, error) {
	return f.policy, f.err
}

func TestGetByID(t *testing.T) {
	ownerID, strangerID := uuid.New(), uuid.New()
	view := &queries.BookingView{ID: uuid.New(), MemberID: ownerID}

	t.Run("owner sees their booking", func(t *testing.T) {
		q := queries.NewBookingQueries(&fakeReadStore{view: view}, &fakePolicyReader{})
		got, err := q.GetByID(context.Background(), view.ID, ownerID, false)
		require.NoError(t, err)
		assert.Equal(t, view, got)
	})

	t.Run("stranger gets not-found, not forbidden", func(t *testing.T) {
		q := queries.NewBookingQueries(&fakeReadStore{view: view}, &fakePolicyReader{})
		_, err := q.GetByID(context.Background(), view.ID, strangerID, false)
		assert.ErrorIs(t, err, errs.ErrBookingNotFound)
	})

	t.Run("warden sees any booking", func(t *testing.T) {
		q := queries.NewBookingQueries(&fakeReadStore{view: view}, &fakePolicyReader{})
		got, err := q.GetByID(context.Background(), view.ID, strangerID, true)
		require.NoError(t, err)
		assert.Equal(t, view, got)
	})

	t.Run("store not-found maps to booking not found", func(t *testing.T) {
		store := &fakeReadStore{findErr: infra.WrapRepoErr("no row", nil, infra.KindNotFound)}
		q := queries.NewBookingQueries(store, &fakePolicyReader{})
		_, err := q.GetByID(context.Background(), view.ID, ownerID, false)
		assert.True(t, errs.Is(err, errs.ErrBookingNotFound))
	})

	t.Run("store failure maps to unavailable", func(t *testing.T) {
		store := &fakeReadStore{findErr: infra.WrapRepoErr("down", nil, infra.KindUnavailable)}
		q := queries.NewBookingQueries(store, &fakePolicyReader{})
		_, err := q.GetByID(context.Background(), view.ID, ownerID, false)
		assert.True(t, errs.Is(err, errs.ErrStoreUnavailable))
	})
}

func TestListMineClampsLimit(t *testing.T) {
	tests := []struct {
		name  string
		limit int32
		want  int32
	}{
		{"zero defaults", 0, queries.DefaultPageSize},
		{"negative defaults", -5, queries.DefaultPageSize},
		{"in range passes through", 50, 50},
		{"over the cap is clamped", 500, queries.MaxPageSize},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := &fakeReadStore{}
			q := queries.NewBookingQueries(store, &fakePolicyReader{})
			_, err := q.ListMineFirstPage(context.Background(), uuid.New(), tt.limit)
			require.NoError(t, err)
			assert.Equal(t, tt.want, store.gotLimit)
		})
	}
}

func TestNextAvailableDate(t *testing.T) {
	standID, clubID := uuid.New(), uuid.New()
	from := time.Date(2024, 11, 20, 9, 0, 0, 0, time.UTC)
	policies := &fakePolicyReader{policy: booking.DefaultPolicy()}

	t.Run("first free day wins", func(t *testing.T) {
		store := &fakeReadStore{takenDays: map[string]bool{
			"2024-11-20": true,
			"2024-11-21": true,
		}}
		q := queries.NewBookingQueries(store, policies)
		got, err := q.NextAvailableDate(context.Background(), standID, clubID, from)
		require.NoError(t, err)
		assert.Equal(t, "2024-11-22", got.String())
		assert.Equal(t, []string{"2024-11-20", "2024-11-21", "2024-11-22"}, store.scanned)
	})

	t.Run("free starting day is returned as-is", func(t *testing.T) {
		q := queries.NewBookingQueries(&fakeReadStore{}, policies)
		got, err := q.NextAvailableDate(context.Background(), standID, clubID, from)
		require.NoError(t, err)
		assert.Equal(t, "2024-11-20", got.String())
	})

	t.Run("fully booked horizon suggests the last scanned day", func(t *testing.T) {
		taken := make(map[string]bool)
		for i := 0; i < 30; i++ {
			taken[booking.DateOf(from, time.UTC).AddDays(i).String()] = true
		}
		store := &fakeReadStore{takenDays: taken}
		q := queries.NewBookingQueries(store, policies)
		got, err := q.NextAvailableDate(context.Background(), standID, clubID, from)
		require.NoError(t, err)
		assert.Equal(t, "2024-12-19", got.String())
		assert.Equal(t, "2024-12-19", store.scanned[len(store.scanned)-1])
	})

	t.Run("unknown stand maps to stand not found", func(t *testing.T) {
		q := queries.NewBookingQueries(&fakeReadStore{standMissing: true}, policies)
		_, err := q.NextAvailableDate(context.Background(), standID, clubID, from)
		assert.ErrorIs(t, err, errs.ErrStandNotFound)
	})

	t.Run("stand check failure surfaces as unavailable", func(t *testing.T) {
		store := &fakeReadStore{standErr: infra.WrapRepoErr("down", nil, infra.KindUnavailable)}
		q := queries.NewBookingQueries(store, policies)
		_, err := q.NextAvailableDate(context.Background(), standID, clubID, from)
		assert.True(t, errs.Is(err, errs.ErrStoreUnavailable))
	})

	t.Run("store failure surfaces as unavailable", func(t *testing.T) {
		store := &fakeReadStore{takenErr: infra.WrapRepoErr("down", nil, infra.KindUnavailable)}
		q := queries.NewBookingQueries(store, policies)
		_, err := q.NextAvailableDate(context.Background(), standID, clubID, from)
		assert.True(t, errs.Is(err, errs.ErrStoreUnavailable))
	})

	t.Run("policy lookup failure surfaces as unavailable", func(t *testing.T) {
		broken := &fakePolicyReader{err: infra.WrapRepoErr("down", nil, infra.KindUnavailable)}
		q := queries.NewBookingQueries(&fakeReadStore{}, broken)
		_, err := q.NextAvailableDate(context.Background(), standID, clubID, from)
		assert.True(t, errs.Is(err, errs.ErrStoreUnavailable))
	})
}
