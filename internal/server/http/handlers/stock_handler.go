package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	domainErrors "github.com/polkiloo/orderdesk/internal/domain/errors"
	"github.com/polkiloo/orderdesk/internal/domain/model"
	"github.com/polkiloo/orderdesk/internal/server/http/dto"
)

// StockHandler manages stock ledger endpoints.
type StockHandler struct {
	facade StockFacade
}

// NewStockHandler constructs StockHandler.
func NewStockHandler(facade StockFacade) *StockHandler {
	return &StockHandler{facade: facade}
}

// Level handles GET /stocks/:item_id.
func (h *StockHandler) Level(c *gin.Context) {
	itemID, err := strconv.ParseInt(c.Param("item_id"), 10, 64)
	if err != nil {
		writeError(c, domainErrors.ValidationError{Field: "item_id"})
		return
	}

	level, err := h.facade.StockLevel(c.Request.Context(), itemID)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.StockLevelsResponse{Data: []dto.StockLevelResponse{toStockLevelResponse(*level)}})
}

// Receive handles POST /stocks.
func (h *StockHandler) Receive(c *gin.Context) {
	var req dto.ReceiveStockRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid request body", Details: err.Error()})
		return
	}

	movement, err := h.facade.ReceiveStock(c.Request.Context(), req.ItemID, float64(req.Qty))
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.StockMovementResponse{
		ID:        movement.ID,
		ItemID:    movement.ItemID,
		QtyIn:     movement.QtyIn,
		QtyOut:    movement.QtyOut,
		UpdatedAt: movement.UpdatedAt,
	})
}

func toStockLevelResponse(level model.StockLevel) dto.StockLevelResponse {
	return dto.StockLevelResponse{
		ItemID: level.ItemID,
		QtyIn:  level.QtyIn,
		QtyOut: level.QtyOut,
		Stock:  level.Available(),
	}
}
