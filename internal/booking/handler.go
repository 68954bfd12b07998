package booking

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/mazelpouch-tech/callanannycare-v2-sub001/internal/logger"
)

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

// CreateBooking godoc
// @Summary      Submit booking request
// @Description  Creates a booking from a client submission. New bookings start as pending.
// @Tags         bookings
// @Accept       json
// @Produce      json
// @Param        booking  body      CreateRequest  true  "Booking details"
// @Success      201      {object}  Booking
// @Failure      400      {object}  gin.H
// @Failure      409      {object}  gin.H
// @Failure      500      {object}  gin.H
// @Router       /bookings [post]
func (h *Handler) CreateBooking(c *gin.Context) {
	var req CreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	b, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, b)
}

// GetBooking godoc
// @Summary      Get booking
// @Tags         bookings
// @Security     BearerAuth
// @Produce      json
// @Param        bookingID  path      int  true  "Booking ID"
// @Success      200        {object}  Booking
// @Failure      404        {object}  gin.H
// @Router       /admin/bookings/{bookingID} [get]
func (h *Handler) GetBooking(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("bookingID"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid booking ID"})
		return
	}

	b, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, b)
}

// ListBookings godoc
// @Summary      List bookings
// @Tags         bookings
// @Security     BearerAuth
// @Produce      json
// @Param        status  query     string  false  "Filter by status"
// @Success      200     {array}   Booking
// @Failure      500     {object}  gin.H
// @Router       /admin/bookings [get]
func (h *Handler) ListBookings(c *gin.Context) {
	status := c.Query("status")
	if status != "" {
		if _, err := ParseStatus(status); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
	}

	bookings, err := h.service.List(c.Request.Context(), status)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch bookings"})
		return
	}

	c.JSON(http.StatusOK, bookings)
}

// UpdateBooking godoc
// @Summary      Update booking
// @Description  Applies a partial edit. Changing schedule fields triggers conflict
// @Description  detection; changing status runs the transition state machine and
// @Description  dispatches the resulting notifications.
// @Tags         bookings
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        bookingID  path      int            true  "Booking ID"
// @Param        patch      body      UpdateRequest  true  "Fields to update"
// @Success      200        {object}  Booking
// @Failure      400        {object}  gin.H
// @Failure      404        {object}  gin.H
// @Failure      409        {object}  gin.H
// @Failure      422        {object}  gin.H
// @Router       /admin/bookings/{bookingID} [put]
func (h *Handler) UpdateBooking(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("bookingID"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid booking ID"})
		return
	}

	var req UpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	b, err := h.service.Update(c.Request.Context(), id, req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, b)
}

// GetBookingByReviewToken godoc
// @Summary      Resolve review token
// @Description  Returns the booking a review token belongs to, for the public review form.
// @Tags         bookings
// @Produce      json
// @Param        token  path      string  true  "Review token"
// @Success      200    {object}  gin.H
// @Failure      404    {object}  gin.H
// @Router       /review/{token} [get]
func (h *Handler) GetBookingByReviewToken(c *gin.Context) {
	token := c.Param("token")

	b, err := h.service.GetByReviewToken(c.Request.Context(), token)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"booking_id":  b.ID,
		"date":        b.Date,
		"client_name": b.ClientName,
		"locale":      b.Locale,
	})
}

func respondError(c *gin.Context, err error) {
	var validationErr *ValidationError
	var conflictErr *ConflictError
	var transitionErr *InvalidTransitionError

	switch {
	case errors.Is(err, ErrBookingNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Booking not found"})
	case errors.As(err, &validationErr):
		c.JSON(http.StatusBadRequest, gin.H{
			"error":  "validation failed",
			"field":  validationErr.Field,
			"detail": validationErr.Message,
		})
	case errors.As(err, &conflictErr):
		c.JSON(http.StatusConflict, gin.H{
			"error":     "nanny is already booked for an overlapping slot",
			"conflicts": conflictErr.Conflicts,
		})
	case errors.As(err, &transitionErr):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": transitionErr.Error()})
	default:
		logger.Errorf("booking request failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	}
}
