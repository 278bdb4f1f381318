package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"github.com/axoxia/shipping-quote/internal/currency"
	"github.com/axoxia/shipping-quote/internal/middleware"
	"github.com/axoxia/shipping-quote/internal/notify"
	"github.com/axoxia/shipping-quote/internal/payment"
	"github.com/axoxia/shipping-quote/internal/service"
)

type fakeProcessor struct {
	outcome payment.Outcome
}

func (p fakeProcessor) Capture(_ context.Context, _ payment.Charge) (payment.Outcome, error) {
	return p.outcome, nil
}

type fakeDispatcher struct {
	sent []notify.Receipt
}

func (d *fakeDispatcher) Send(_ context.Context, r notify.Receipt) error {
	d.sent = append(d.sent, r)
	return nil
}

func setupRouter(t *testing.T, processor payment.Processor, dispatcher notify.Dispatcher) *gin.Engine {
	t.Helper()

	quotes := service.NewQuoteService(currency.Default(), nil)
	checkout := service.NewCheckoutService(quotes, processor, dispatcher, payment.NewAccepted(currency.EUR, currency.CNY), nil)

	currencyHandler := NewCurrencyHandler(quotes)
	quoteHandler := NewQuoteHandler(quotes)
	checkoutHandler := NewCheckoutHandler(checkout)

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(middleware.ErrorHandler())
	api := router.Group("/api/v1")
	api.GET("/currencies", currencyHandler.List)
	api.POST("/convert", currencyHandler.Convert)
	api.POST("/quotes", quoteHandler.Quote)
	api.POST("/quotes/matrix", quoteHandler.Matrix)
	api.POST("/checkout", checkoutHandler.Checkout)

	return router
}

func doJSON(t *testing.T, router *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		switch b := body.(type) {
		case string:
			buf.WriteString(b)
		default:
			require.NoError(t, json.NewEncoder(&buf).Encode(b))
		}
	}

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)
	return w
}
