package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/axoxia/shipping-quote/internal/currency"
	"github.com/axoxia/shipping-quote/internal/dto"
	"github.com/axoxia/shipping-quote/internal/payment"
	"github.com/axoxia/shipping-quote/internal/service"
)

type CheckoutHandler struct {
	svc *service.CheckoutService
}

func NewCheckoutHandler(svc *service.CheckoutService) *CheckoutHandler {
	return &CheckoutHandler{svc: svc}
}

func (h *CheckoutHandler) Checkout(c *gin.Context) {
	var req dto.CheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	res, err := h.svc.Checkout(c.Request.Context(), req.Shipment.ToModel(), currency.ParseCode(req.Currency))
	switch {
	case err == nil:
		c.JSON(http.StatusCreated, checkoutResponse(res))
	case errors.Is(err, payment.ErrDeclined) && res != nil:
		_ = c.Error(err)
		c.JSON(http.StatusPaymentRequired, checkoutResponse(res))
	default:
		respondError(c, err)
	}
}

func checkoutResponse(res *service.CheckoutResult) dto.CheckoutResponse {
	return dto.CheckoutResponse{
		BookingRef:  res.BookingRef,
		Quote:       dto.NewQuoteResponse(res.Quote.Breakdown, res.Quote.Currency),
		Charge:      res.Charge,
		Payment:     res.Outcome,
		ReceiptSent: res.ReceiptSent,
	}
}
