package api

import (
	"net/http"
	"time"

	"huntbook/internal/domain/booking"
	resdto "huntbook/internal/handler/dto/response"
	"huntbook/internal/pkg/clock"
	"huntbook/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type StandHandler struct {
	bookingQueries queries.BookingQueries
	clock          clock.Clock
}

func NewStandHandler(bookingQueries queries.BookingQueries, clock clock.Clock) *StandHandler {
	return &StandHandler{
		bookingQueries: bookingQueries,
		clock:          clock,
	}
}

// @Summary Next available date for a stand
// @Description First upcoming calendar day with no booking starting on it
// @Tags stands
// @Produce json
// @Security BearerAuth
// @Param id path string true "Stand ID"
// @Param from query string false "Scan start (RFC3339), defaults to now"
// @Success 200 {object} resdto.NextAvailableResponse
// @Failure 400 {object} map[string]string
// @Router /stands/{id}/next-available [get]
func (h *StandHandler) NextAvailable(c *gin.Context) {
	_, clubID, ok := requireIdentity(c)
	if !ok {
		return
	}
	standID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid stand ID"})
		return
	}

	from := h.clock.Now()
	if raw := c.Query("from"); raw != "" {
		parsed, parseErr := time.Parse(time.RFC3339, raw)
		if parseErr != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid from parameter"})
			return
		}
		from = parsed
	}

	date, err := h.bookingQueries.NextAvailableDate(c.Request.Context(), standID, clubID, from)
	if err != nil {
		respondBookingError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.NextAvailableResponse{
		StandID: standID,
		Date:    date.String(),
	})
}

// @Summary List a stand's bookings for one day
// @Tags stands
// @Produce json
// @Security BearerAuth
// @Param id path string true "Stand ID"
// @Param date query string true "Calendar day (YYYY-MM-DD)"
// @Success 200 {array} resdto.BookingListItemResponse
// @Failure 400 {object} map[string]string
// @Router /stands/{id}/bookings [get]
func (h *StandHandler) ListDayBookings(c *gin.Context) {
	_, clubID, ok := requireIdentity(c)
	if !ok {
		return
	}
	standID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid stand ID"})
		return
	}
	day, err := booking.ParseDate(c.Query("date"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid or missing date parameter"})
		return
	}

	items, err := h.bookingQueries.ListForStandDay(c.Request.Context(), standID, clubID, day)
	if err != nil {
		respondBookingError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromBookingListItems(items))
}
