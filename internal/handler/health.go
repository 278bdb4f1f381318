package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/axoxia/shipping-quote/internal/currency"
)

// Pinger is satisfied by *pgxpool.Pool.
type Pinger interface {
	Ping(ctx context.Context) error
}

type HealthHandler struct {
	db      Pinger
	catalog currency.Catalog
}

// NewHealthHandler accepts a nil db when currencies come from the builtin table.
func NewHealthHandler(db Pinger, catalog currency.Catalog) *HealthHandler {
	return &HealthHandler{db: db, catalog: catalog}
}

func (h *HealthHandler) Health(c *gin.Context) {
	currencies := len(h.catalog.All())

	if h.db == nil {
		c.JSON(http.StatusOK, gin.H{
			"status":     "healthy",
			"database":   "disabled",
			"currencies": currencies,
		})
		return
	}

	if err := h.db.Ping(c.Request.Context()); err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"status":     "unhealthy",
			"database":   "disconnected",
			"currencies": currencies,
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":     "healthy",
		"database":   "connected",
		"currencies": currencies,
	})
}
