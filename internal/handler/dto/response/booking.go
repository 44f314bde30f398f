package response

import (
	"time"

	"huntbook/internal/usecase/queries"

	"github.com/google/uuid"
)

type BookingResponse struct {
	ID        uuid.UUID `json:"id"`
	StandID   uuid.UUID `json:"stand_id"`
	ClubID    uuid.UUID `json:"club_id"`
	MemberID  uuid.UUID `json:"member_id"`
	StartsAt  time.Time `json:"starts_at"`
	EndsAt    time.Time `json:"ends_at"`
	Status    string    `json:"status"`
	Slot      string    `json:"slot"`
	IsGuest   bool      `json:"is_guest"`
	Note      *string   `json:"note,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func FromBookingView(v *queries.BookingView) BookingResponse {
	return BookingResponse{
		ID:        v.ID,
		StandID:   v.StandID,
		ClubID:    v.ClubID,
		MemberID:  v.MemberID,
		StartsAt:  v.StartsAt,
		EndsAt:    v.EndsAt,
		Status:    v.Status,
		Slot:      v.Slot,
		IsGuest:   v.IsGuest,
		Note:      v.Note,
		CreatedAt: v.CreatedAt,
		UpdatedAt: v.UpdatedAt,
	}
}

type BookingListItemResponse struct {
	ID        uuid.UUID `json:"id"`
	StandID   uuid.UUID `json:"stand_id"`
	StartsAt  time.Time `json:"starts_at"`
	EndsAt    time.Time `json:"ends_at"`
	Status    string    `json:"status"`
	Slot      string    `json:"slot"`
	CreatedAt time.Time `json:"created_at"`
}

func FromBookingListItems(items []*queries.BookingListItem) []BookingListItemResponse {
	out := make([]BookingListItemResponse, len(items))
	for i, item := range items {
		out[i] = BookingListItemResponse{
			ID:        item.ID,
			StandID:   item.StandID,
			StartsAt:  item.StartsAt,
			EndsAt:    item.EndsAt,
			Status:    item.Status,
			Slot:      item.Slot,
			CreatedAt: item.CreatedAt,
		}
	}
	return out
}

// ValidationResponse mirrors the validator's decision: valid, or the
// first blocking reason with its machine-readable kind.
type ValidationResponse struct {
	Valid bool   `json:"valid"`
	Error string `json:"error,omitempty"`
	Kind  string `json:"kind,omitempty"`
}

type NextAvailableResponse struct {
	StandID uuid.UUID `json:"stand_id"`
	Date    string    `json:"date"`
}
