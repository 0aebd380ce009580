package handler

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/nikolayk812/swiftcart/internal/domain"
)

type envelope struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	Data    any    `json:"data,omitempty"`
}

func ok(c *gin.Context, status int, data any) {
	c.JSON(status, envelope{Success: true, Data: data})
}

func okMessage(c *gin.Context, message string) {
	c.JSON(http.StatusOK, envelope{Success: true, Message: message})
}

func fail(c *gin.Context, status int, message string) {
	c.AbortWithStatusJSON(status, envelope{Success: false, Message: message})
}

// statusOf maps an error kind to its HTTP status. Errors without a kind are server faults.
func statusOf(err error) int {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrValidation):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrConflict):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// writeError answers with the error kind's status. Store failures are logged and hidden from the
// client.
func (h *Handler) writeError(c *gin.Context, err error) {
	status := statusOf(err)
	if status == http.StatusInternalServerError {
		h.log.WithError(err).WithField(requestIDKey, c.GetString(requestIDKey)).Error("request failed")
		fail(c, status, "internal error")
		return
	}

	fail(c, status, publicMessage(err))
}

// publicMessage prefers the domain error text over the wrapping call chain.
func publicMessage(err error) string {
	var stockErr *domain.InsufficientStockError
	if errors.As(err, &stockErr) {
		return stockErr.Error()
	}

	for _, known := range []error{
		domain.ErrCartNotFound, domain.ErrCartItemNotFound, domain.ErrProductNotFound,
		domain.ErrOrderNotFound, domain.ErrCustomerNotFound, domain.ErrCartEmpty,
		domain.ErrInvalidQuantity, domain.ErrMixedCurrencies, domain.ErrEmailTaken,
	} {
		if errors.Is(err, known) {
			return known.Error()
		}
	}

	return err.Error()
}

func pathID(c *gin.Context, name string) (int64, error) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("%w: %s must be a positive integer", domain.ErrValidation, name)
	}
	return id, nil
}
