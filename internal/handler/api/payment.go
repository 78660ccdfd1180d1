package api

import (
	"errors"
	"net/http"

	reqdto "decor-market/internal/handler/dto/request"
	resdto "decor-market/internal/handler/dto/response"
	"decor-market/internal/handler/middleware"
	"decor-market/internal/pkg/errs"
	"decor-market/internal/usecase/commands"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type PaymentHandler struct {
	paymentCommands commands.PaymentCommands
}

func NewPaymentHandler(paymentCommands commands.PaymentCommands) *PaymentHandler {
	return &PaymentHandler{
		paymentCommands: paymentCommands,
	}
}

// @Summary Create checkout session
// @Description Start a hosted-checkout payment for a booking
// @Tags payments
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Success 201 {object} resdto.CheckoutSessionResponse
// @Failure 400 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /bookings/{id}/checkout [post]
func (h *PaymentHandler) CreateCheckoutSession(c *gin.Context) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid booking ID format",
		})
		return
	}

	session, err := h.paymentCommands.CreateCheckoutSession(c.Request.Context(), actor, id)
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrBookingNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Booking not found",
			})
		case errors.Is(err, errs.ErrUnauthorized):
			c.JSON(http.StatusForbidden, gin.H{
				"error": "Not allowed to pay for this booking",
			})
		case errors.Is(err, errs.ErrBookingCancelled):
			c.JSON(http.StatusConflict, gin.H{
				"error": "Booking is cancelled",
			})
		case errors.Is(err, errs.ErrDomainValidation):
			c.JSON(http.StatusConflict, gin.H{
				"error": "Booking is already paid",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusCreated, resdto.FromCheckoutSession(session))
}

// @Summary Reconcile payment
// @Description Confirm a checkout session against the gateway and mark the booking paid
// @Tags payments
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.ReconcilePaymentRequest true "Session to reconcile"
// @Success 200 {object} resdto.BookingResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /payments/reconcile [post]
func (h *PaymentHandler) ReconcilePayment(c *gin.Context) {
	var req reqdto.ReconcilePaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	view, err := h.paymentCommands.Reconcile(c.Request.Context(), req.SessionID)
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrSessionNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Checkout session not found",
			})
		case errors.Is(err, errs.ErrBookingNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Booking not found",
			})
		case errors.Is(err, errs.ErrPaymentNotCaptured):
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error": "Payment has not been captured",
			})
		case errors.Is(err, errs.ErrBookingCancelled):
			c.JSON(http.StatusConflict, gin.H{
				"error": "Booking is cancelled",
			})
		case errors.Is(err, errs.ErrBookingConflict):
			c.JSON(http.StatusConflict, gin.H{
				"error": "Booking was modified concurrently, retry",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromBookingView(view))
}
