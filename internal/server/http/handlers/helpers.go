package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	domainErrors "github.com/polkiloo/orderdesk/internal/domain/errors"
	"github.com/polkiloo/orderdesk/internal/server/http/dto"
)

// writeError maps a domain error to its HTTP status and JSON body. Anything
// outside the taxonomy is treated as a store fault with the underlying
// message passed through.
func writeError(c *gin.Context, err error) {
	var validation domainErrors.ValidationError
	var insufficient domainErrors.InsufficientStockError
	switch {
	case errors.As(err, &validation):
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: validation.Error()})
	case errors.Is(err, domainErrors.ErrInvalidQty):
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
	case errors.As(err, &insufficient):
		c.JSON(http.StatusConflict, dto.ErrorResponse{
			Error:     insufficient.Error(),
			Stock:     &insufficient.Stock,
			Requested: &insufficient.Requested,
		})
	case errors.Is(err, domainErrors.ErrOrderExists):
		c.JSON(http.StatusConflict, dto.ErrorResponse{Error: err.Error()})
	case errors.Is(err, domainErrors.ErrOrderNotFound), errors.Is(err, domainErrors.ErrNotFound):
		c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "database error", Details: err.Error()})
	}
}
