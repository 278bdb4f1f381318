package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/axoxia/shipping-quote/internal/middleware"
)

func respondError(c *gin.Context, err error) {
	_ = c.Error(err)
	status, resp := middleware.MapError(err)
	c.JSON(status, resp)
}

func respondBindError(c *gin.Context, err error) {
	_ = c.Error(err)
	c.JSON(http.StatusBadRequest, middleware.ErrorResponse{
		Error:   "validation failed",
		Details: err.Error(),
	})
}
