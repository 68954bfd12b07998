package ledger

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/mazelpouch-tech/callanannycare-v2-sub001/internal/booking"
	"github.com/mazelpouch-tech/callanannycare-v2-sub001/internal/logger"
)

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

// AddPayment godoc
// @Summary      Record client payment
// @Tags         ledger
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        bookingID  path      int             true  "Booking ID"
// @Param        payment    body      PaymentRequest  true  "Payment details"
// @Success      201        {object}  Payment
// @Failure      400        {object}  gin.H
// @Failure      404        {object}  gin.H
// @Router       /admin/bookings/{bookingID}/payments [post]
func (h *Handler) AddPayment(c *gin.Context) {
	bookingID, ok := pathID(c, "bookingID")
	if !ok {
		return
	}

	var req PaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	p, err := h.service.AddPayment(c.Request.Context(), bookingID, req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, p)
}

// DeletePayment godoc
// @Summary      Delete payment entry
// @Description  Corrections are delete and re-add; entries are never edited in place.
// @Tags         ledger
// @Security     BearerAuth
// @Param        bookingID  path  int  true  "Booking ID"
// @Param        paymentID  path  int  true  "Payment ID"
// @Success      204
// @Failure      404  {object}  gin.H
// @Router       /admin/bookings/{bookingID}/payments/{paymentID} [delete]
func (h *Handler) DeletePayment(c *gin.Context) {
	bookingID, ok := pathID(c, "bookingID")
	if !ok {
		return
	}
	paymentID, ok := pathID(c, "paymentID")
	if !ok {
		return
	}

	if err := h.service.DeletePayment(c.Request.Context(), bookingID, paymentID); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// ListPayments godoc
// @Summary      List payments for a booking
// @Tags         ledger
// @Security     BearerAuth
// @Produce      json
// @Param        bookingID  path      int  true  "Booking ID"
// @Success      200        {array}   Payment
// @Router       /admin/bookings/{bookingID}/payments [get]
func (h *Handler) ListPayments(c *gin.Context) {
	bookingID, ok := pathID(c, "bookingID")
	if !ok {
		return
	}

	payments, err := h.service.ListPayments(c.Request.Context(), bookingID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, payments)
}

// AddPayout godoc
// @Summary      Record nanny payout
// @Tags         ledger
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        bookingID  path      int            true  "Booking ID"
// @Param        payout     body      PayoutRequest  true  "Payout details"
// @Success      201        {object}  Payout
// @Failure      400        {object}  gin.H
// @Failure      404        {object}  gin.H
// @Router       /admin/bookings/{bookingID}/payouts [post]
func (h *Handler) AddPayout(c *gin.Context) {
	bookingID, ok := pathID(c, "bookingID")
	if !ok {
		return
	}

	var req PayoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	p, err := h.service.AddPayout(c.Request.Context(), bookingID, req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, p)
}

// DeletePayout godoc
// @Summary      Delete payout entry
// @Tags         ledger
// @Security     BearerAuth
// @Param        bookingID  path  int  true  "Booking ID"
// @Param        payoutID   path  int  true  "Payout ID"
// @Success      204
// @Failure      404  {object}  gin.H
// @Router       /admin/bookings/{bookingID}/payouts/{payoutID} [delete]
func (h *Handler) DeletePayout(c *gin.Context) {
	bookingID, ok := pathID(c, "bookingID")
	if !ok {
		return
	}
	payoutID, ok := pathID(c, "payoutID")
	if !ok {
		return
	}

	if err := h.service.DeletePayout(c.Request.Context(), bookingID, payoutID); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// ListPayouts godoc
// @Summary      List payouts for a booking
// @Tags         ledger
// @Security     BearerAuth
// @Produce      json
// @Param        bookingID  path      int  true  "Booking ID"
// @Success      200        {array}   Payout
// @Router       /admin/bookings/{bookingID}/payouts [get]
func (h *Handler) ListPayouts(c *gin.Context) {
	bookingID, ok := pathID(c, "bookingID")
	if !ok {
		return
	}

	payouts, err := h.service.ListPayouts(c.Request.Context(), bookingID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, payouts)
}

// GetBalance godoc
// @Summary      Booking balance
// @Description  Outstanding client balance and nanny payout balance, folded from the ledger.
// @Tags         ledger
// @Security     BearerAuth
// @Produce      json
// @Param        bookingID  path      int  true  "Booking ID"
// @Success      200        {object}  Balance
// @Failure      404        {object}  gin.H
// @Router       /admin/bookings/{bookingID}/balance [get]
func (h *Handler) GetBalance(c *gin.Context) {
	bookingID, ok := pathID(c, "bookingID")
	if !ok {
		return
	}

	balance, err := h.service.Balance(c.Request.Context(), bookingID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, balance)
}

func pathID(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid " + name})
		return 0, false
	}
	return id, true
}

func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, booking.ErrBookingNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Booking not found"})
	case errors.Is(err, ErrEntryNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Ledger entry not found"})
	case errors.Is(err, ErrNonPositiveAmount), errors.Is(err, ErrUnknownCurrency):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		logger.Errorf("ledger request failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	}
}
