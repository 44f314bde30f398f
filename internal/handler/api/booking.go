package api

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	"huntbook/internal/domain/booking"
	reqdto "huntbook/internal/handler/dto/request"
	resdto "huntbook/internal/handler/dto/response"
	"huntbook/internal/handler/middleware"
	"huntbook/internal/pkg/errs"
	"huntbook/internal/usecase/commands"
	"huntbook/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type BookingHandler struct {
	bookingCommands commands.BookingCommands
	bookingQueries  queries.BookingQueries
}

func NewBookingHandler(bookingCommands commands.BookingCommands, bookingQueries queries.BookingQueries) *BookingHandler {
	return &BookingHandler{
		bookingCommands: bookingCommands,
		bookingQueries:  bookingQueries,
	}
}

// @Summary Create booking
// @Description Book a stand for a time window after full validation
// @Tags bookings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateBookingRequest true "Booking request"
// @Success 201 {object} resdto.BookingResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /bookings [post]
func (h *BookingHandler) CreateBooking(c *gin.Context) {
	actor, clubID, ok := requireIdentity(c)
	if !ok {
		return
	}

	var req reqdto.CreateBookingRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	view, err := h.bookingCommands.CreateBooking(c.Request.Context(), h.toParams(c, req.StandID, clubID, actor, req.StartsAt, req.EndsAt, req.Note))
	if err != nil {
		respondBookingError(c, err)
		return
	}

	c.JSON(http.StatusCreated, resdto.FromBookingView(view))
}

// @Summary Validate booking
// @Description Dry-run a proposed booking against conflicts and club policy
// @Tags bookings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.ValidateBookingRequest true "Proposal to validate"
// @Success 200 {object} resdto.ValidationResponse
// @Failure 400 {object} map[string]string
// @Router /bookings/validate [post]
func (h *BookingHandler) ValidateBooking(c *gin.Context) {
	actor, clubID, ok := requireIdentity(c)
	if !ok {
		return
	}

	var req reqdto.ValidateBookingRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	params := h.toParams(c, req.StandID, clubID, actor, req.StartsAt, req.EndsAt, nil)
	decision, err := h.bookingCommands.ValidateBooking(c.Request.Context(), params, req.BookingID)
	if err != nil {
		respondBookingError(c, err)
		return
	}

	resp := resdto.ValidationResponse{Valid: decision.Allowed}
	if decision.Violation != nil {
		resp.Error = decision.Violation.Message
		resp.Kind = string(decision.Violation.Kind)
	}
	c.JSON(http.StatusOK, resp)
}

// @Summary Get booking
// @Description Get booking by ID
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Success 200 {object} resdto.BookingResponse
// @Failure 404 {object} map[string]string
// @Router /bookings/{id} [get]
func (h *BookingHandler) GetBooking(c *gin.Context) {
	actor, _, ok := requireIdentity(c)
	if !ok {
		return
	}
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid booking ID"})
		return
	}

	view, err := h.bookingQueries.GetByID(c.Request.Context(), id, actor.MemberID, actor.Warden)
	if err != nil {
		respondBookingError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromBookingView(view))
}

// @Summary List my bookings
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Param limit query int false "Page size"
// @Param last_created_at query string false "Keyset cursor: created_at of last item (RFC3339)"
// @Param last_id query string false "Keyset cursor: id of last item"
// @Success 200 {array} resdto.BookingListItemResponse
// @Router /bookings [get]
func (h *BookingHandler) ListMyBookings(c *gin.Context) {
	actor, _, ok := requireIdentity(c)
	if !ok {
		return
	}

	limit := parseLimit(c)
	var (
		items   []*queries.BookingListItem
		listErr error
	)
	if lastCreatedAt, lastID, cursorOK := parseKeysetCursor(c); cursorOK {
		items, listErr = h.bookingQueries.ListMineKeyset(c.Request.Context(), actor.MemberID, lastCreatedAt, lastID, limit)
	} else {
		items, listErr = h.bookingQueries.ListMineFirstPage(c.Request.Context(), actor.MemberID, limit)
	}
	if listErr != nil {
		respondBookingError(c, listErr)
		return
	}
	c.JSON(http.StatusOK, resdto.FromBookingListItems(items))
}

// @Summary Cancel booking
// @Tags bookings
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Success 204
// @Router /bookings/{id}/cancel [post]
func (h *BookingHandler) CancelBooking(c *gin.Context) {
	h.transition(c, h.bookingCommands.CancelBooking)
}

// @Summary Check in to a booked stand
// @Tags bookings
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Success 204
// @Router /bookings/{id}/check-in [post]
func (h *BookingHandler) CheckIn(c *gin.Context) {
	h.transition(c, h.bookingCommands.CheckIn)
}

// @Summary Check out of a stand
// @Tags bookings
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Success 204
// @Router /bookings/{id}/check-out [post]
func (h *BookingHandler) CheckOut(c *gin.Context) {
	h.transition(c, h.bookingCommands.CheckOut)
}

func (h *BookingHandler) transition(c *gin.Context, op func(context.Context, uuid.UUID, commands.Actor) error) {
	actor, _, ok := requireIdentity(c)
	if !ok {
		return
	}
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid booking ID"})
		return
	}

	if err := op(c.Request.Context(), id, actor); err != nil {
		respondBookingError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *BookingHandler) toParams(c *gin.Context, standID, clubID uuid.UUID, actor commands.Actor, startsAt, endsAt time.Time, note *string) commands.CreateBookingParams {
	role, _ := middleware.GetRole(c)
	return commands.CreateBookingParams{
		StandID:  standID,
		ClubID:   clubID,
		MemberID: actor.MemberID,
		StartsAt: startsAt,
		EndsAt:   endsAt,
		Guest:    role == middleware.RoleGuest,
		Note:     note,
	}
}

func requireIdentity(c *gin.Context) (commands.Actor, uuid.UUID, bool) {
	memberID, ok := middleware.GetMemberID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return commands.Actor{}, uuid.Nil, false
	}
	clubID, ok := middleware.GetClubID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return commands.Actor{}, uuid.Nil, false
	}
	role, _ := middleware.GetRole(c)
	return commands.Actor{MemberID: memberID, Warden: role == middleware.RoleWarden}, clubID, true
}

func parseLimit(c *gin.Context) int32 {
	raw := c.Query("limit")
	if raw == "" {
		return 0
	}
	n, err := strconv.ParseInt(raw, 10, 32)
	if err != nil || n < 0 {
		return 0
	}
	return int32(n)
}

func parseKeysetCursor(c *gin.Context) (time.Time, uuid.UUID, bool) {
	rawTime := c.Query("last_created_at")
	rawID := c.Query("last_id")
	if rawTime == "" || rawID == "" {
		return time.Time{}, uuid.Nil, false
	}
	createdAt, err := time.Parse(time.RFC3339Nano, rawTime)
	if err != nil {
		return time.Time{}, uuid.Nil, false
	}
	id, err := uuid.Parse(rawID)
	if err != nil {
		return time.Time{}, uuid.Nil, false
	}
	return createdAt, id, true
}

// respondBookingError maps usecase sentinels to statuses. Sentinels
// arrive marked, so matching goes through errs.Is; stdlib errors.Is
// would miss them and everything would collapse to 500.
func respondBookingError(c *gin.Context, err error) {
	var violation *booking.Violation

	switch {
	case errs.Is(err, commands.ErrBookingConflict):
		msg := "Stand is already booked for that window"
		if errors.As(err, &violation) {
			msg = violation.Message
		}
		c.JSON(http.StatusConflict, gin.H{"error": msg})
	case errs.Is(err, commands.ErrBookingNotAllowed):
		msg := "Booking not allowed"
		if errors.As(err, &violation) {
			msg = violation.Message
		}
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": msg})
	case errs.Is(err, commands.ErrBookingNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Booking not found"})
	case errs.Is(err, errs.ErrStandNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Stand not found"})
	case errs.Is(err, commands.ErrNotBookingOwner):
		c.JSON(http.StatusForbidden, gin.H{"error": "Not allowed to modify this booking"})
	case errs.Is(err, commands.ErrInvalidBookingState):
		c.JSON(http.StatusConflict, gin.H{"error": "Booking is not in a state that allows this action"})
	case errs.Is(err, commands.ErrStoreUnavailable):
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Booking store temporarily unavailable"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	}
}
