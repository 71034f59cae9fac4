package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	domainErrors "github.com/polkiloo/orderdesk/internal/domain/errors"
	"github.com/polkiloo/orderdesk/internal/domain/model"
	"github.com/polkiloo/orderdesk/internal/server/http/dto"
)

// OrderHandler manages order-related endpoints.
type OrderHandler struct {
	facade OrderFacade
}

// NewOrderHandler constructs OrderHandler.
func NewOrderHandler(facade OrderFacade) *OrderHandler {
	return &OrderHandler{facade: facade}
}

// List handles GET /orders.
func (h *OrderHandler) List(c *gin.Context) {
	orders, err := h.facade.Orders(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}

	response := make([]dto.OrderResponse, 0, len(orders))
	for _, o := range orders {
		response = append(response, toOrderResponse(o))
	}
	c.JSON(http.StatusOK, dto.OrdersResponse{Data: response})
}

// Get handles GET /orders/:order_no.
func (h *OrderHandler) Get(c *gin.Context) {
	orderNo := c.Param("order_no")
	order, err := h.facade.Order(c.Request.Context(), orderNo)
	if err != nil {
		if errors.Is(err, domainErrors.ErrOrderNotFound) {
			c.JSON(http.StatusNotFound, dto.OrderNotFoundResponse{
				Data:  []dto.OrderResponse{},
				Error: err.Error(),
			})
			return
		}
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.OrdersResponse{Data: []dto.OrderResponse{toOrderResponse(*order)}})
}

// Create handles POST /orders.
func (h *OrderHandler) Create(c *gin.Context) {
	var req dto.CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid request body", Details: err.Error()})
		return
	}

	items := make([]model.OrderItem, 0, len(req.Items))
	for _, it := range req.Items {
		items = append(items, model.OrderItem{ItemID: it.ItemID, Qty: float64(it.Qty)})
	}

	order, err := h.facade.PlaceOrder(c.Request.Context(), req.OrderNo, req.CustID, items)
	if err != nil {
		writeError(c, err)
		return
	}

	created := make([]dto.CreatedItemResponse, 0, len(order.Lines))
	for _, line := range order.Lines {
		created = append(created, dto.CreatedItemResponse{
			ItemID:   line.ItemID,
			ItemName: line.ItemName,
			Qty:      line.Qty,
			Price:    line.Price,
			Total:    line.Total,
		})
	}

	c.JSON(http.StatusCreated, dto.CreateOrderResponse{
		OrderNo:    order.OrderNo,
		CustID:     order.CustID,
		GrandTotal: order.GrandTotal,
		Items:      created,
	})
}

func toOrderResponse(order model.Order) dto.OrderResponse {
	details := make([]dto.OrderLineResponse, 0, len(order.Lines))
	for _, l := range order.Lines {
		details = append(details, dto.OrderLineResponse{
			ID:        l.ID,
			OrderNo:   l.OrderNo,
			ItemID:    l.ItemID,
			ItemName:  l.ItemName,
			Qty:       l.Qty,
			Price:     l.Price,
			Total:     l.Total,
			UpdatedAt: l.UpdatedAt,
		})
	}
	return dto.OrderResponse{
		OrderNo:    order.OrderNo,
		CustID:     order.CustID,
		GrandTotal: order.GrandTotal,
		UpdatedAt:  order.UpdatedAt,
		Details:    details,
	}
}
