package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/axoxia/shipping-quote/internal/currency"
	"github.com/axoxia/shipping-quote/internal/dto"
	"github.com/axoxia/shipping-quote/internal/service"
)

type CurrencyHandler struct {
	svc *service.QuoteService
}

func NewCurrencyHandler(svc *service.QuoteService) *CurrencyHandler {
	return &CurrencyHandler{svc: svc}
}

func (h *CurrencyHandler) List(c *gin.Context) {
	all := h.svc.Currencies()
	out := make([]dto.CurrencyResponse, len(all))
	for i, cur := range all {
		out[i] = dto.NewCurrencyResponse(cur)
	}
	c.JSON(http.StatusOK, gin.H{"currencies": out})
}

func (h *CurrencyHandler) Convert(c *gin.Context) {
	var req dto.ConvertRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	conv, err := h.svc.Convert(req.Amount, currency.ParseCode(req.From), currency.ParseCode(req.To))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ConvertResponse{
		Amount:    conv.Amount,
		From:      conv.From.Code,
		To:        conv.To.Code,
		Result:    conv.Result,
		Formatted: currency.Format(conv.Result, conv.To),
	})
}
