package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/axoxia/shipping-quote/internal/currency"
	"github.com/axoxia/shipping-quote/internal/dto"
	"github.com/axoxia/shipping-quote/internal/pricing"
	"github.com/axoxia/shipping-quote/internal/service"
)

type QuoteHandler struct {
	svc *service.QuoteService
}

func NewQuoteHandler(svc *service.QuoteService) *QuoteHandler {
	return &QuoteHandler{svc: svc}
}

func (h *QuoteHandler) Quote(c *gin.Context) {
	var req dto.QuoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	q, err := h.svc.Quote(c.Request.Context(), req.Shipment, currency.ParseCode(req.Currency))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewQuoteResponse(q.Breakdown, q.Currency))
}

// Matrix prices one shipment in every supported currency.
func (h *QuoteHandler) Matrix(c *gin.Context) {
	var req dto.MatrixRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	quotes, err := h.svc.QuoteMatrix(c.Request.Context(), pricing.ShipmentRequest{
		WeightKg:           req.WeightKg,
		InsuranceRequested: req.Insurance,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	out := make([]dto.QuoteResponse, len(quotes))
	for i, q := range quotes {
		out[i] = dto.NewQuoteResponse(q.Breakdown, q.Currency)
	}
	c.JSON(http.StatusOK, dto.MatrixResponse{
		WeightKg:  req.WeightKg,
		Insurance: req.Insurance,
		Quotes:    out,
	})
}
