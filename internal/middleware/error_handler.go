package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/rs/zerolog/log"

	"github.com/axoxia/shipping-quote/internal/currency"
	"github.com/axoxia/shipping-quote/internal/payment"
	"github.com/axoxia/shipping-quote/internal/pricing"
)

type ErrorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

// MapError turns a domain or database error into a status and body.
func MapError(err error) (int, ErrorResponse) {
	switch {
	case errors.Is(err, currency.ErrUnknownCurrency):
		return http.StatusBadRequest, ErrorResponse{Error: "unsupported currency", Details: err.Error()}
	case errors.Is(err, pricing.ErrInvalidWeight):
		return http.StatusBadRequest, ErrorResponse{Error: "invalid weight", Details: err.Error()}
	case errors.Is(err, payment.ErrDeclined):
		return http.StatusPaymentRequired, ErrorResponse{Error: "payment declined", Details: err.Error()}
	}
	return mapDBError(err)
}

func mapDBError(err error) (int, ErrorResponse) {
	if errors.Is(err, pgx.ErrNoRows) {
		return http.StatusNotFound, ErrorResponse{Error: "resource not found"}
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case "23505": // unique_violation
			return http.StatusConflict, ErrorResponse{
				Error:   "resource already exists",
				Details: pgErr.Detail,
			}
		case "23514": // check_violation
			return http.StatusBadRequest, ErrorResponse{
				Error:   "constraint violation",
				Details: pgErr.Detail,
			}
		}
	}

	log.Error().Err(err).Msg("unhandled error")
	return http.StatusInternalServerError, ErrorResponse{Error: "internal server error"}
}

// ErrorHandler renders the last error a handler attached with c.Error.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) > 0 && !c.Writer.Written() {
			status, resp := MapError(c.Errors.Last().Err)
			c.JSON(status, resp)
		}
	}
}
