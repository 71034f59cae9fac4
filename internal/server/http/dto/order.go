package dto

import (
	"encoding/json"
	"fmt"
	"strconv"
	"time"
)

// Quantity accepts both JSON numbers and numeric strings, mirroring the loose
// payloads order clients send.
type Quantity float64

func (q *Quantity) UnmarshalJSON(data []byte) error {
	s := string(data)
	if len(s) > 1 && s[0] == '"' {
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return fmt.Errorf("invalid quantity %q", s)
	}
	*q = Quantity(v)
	return nil
}

// CreateOrderRequest describes the order placement payload.
type CreateOrderRequest struct {
	OrderNo string             `json:"order_no"`
	CustID  string             `json:"cust_id"`
	Items   []OrderItemRequest `json:"items"`
}

// OrderItemRequest is one requested item entry. Price is accepted for
// compatibility but ignored; the catalog price is authoritative.
type OrderItemRequest struct {
	ItemID int64    `json:"item_id"`
	Qty    Quantity `json:"qty"`
	Price  *float64 `json:"price,omitempty"`
}

// OrderResponse represents a stored order with its line items.
type OrderResponse struct {
	OrderNo    string              `json:"order_no"`
	CustID     string              `json:"cust_id"`
	GrandTotal float64             `json:"grand_total"`
	UpdatedAt  time.Time           `json:"updated_at"`
	Details    []OrderLineResponse `json:"details"`
}

// OrderLineResponse represents one stored line item.
type OrderLineResponse struct {
	ID        int64     `json:"id"`
	OrderNo   string    `json:"sales_order"`
	ItemID    int64     `json:"item_id"`
	ItemName  string    `json:"item_name"`
	Qty       float64   `json:"item_qty"`
	Price     float64   `json:"item_price"`
	Total     float64   `json:"row_total"`
	UpdatedAt time.Time `json:"updated_at"`
}

// OrdersResponse is the list envelope for order lookups.
type OrdersResponse struct {
	Data []OrderResponse `json:"data"`
}

// CreateOrderResponse summarizes a freshly placed order.
type CreateOrderResponse struct {
	OrderNo    string                `json:"order_no"`
	CustID     string                `json:"cust_id"`
	GrandTotal float64               `json:"grand_total"`
	Items      []CreatedItemResponse `json:"items"`
}

// CreatedItemResponse is one processed item with its resolved price snapshot.
type CreatedItemResponse struct {
	ItemID   int64   `json:"item_id"`
	ItemName string  `json:"item_name"`
	Qty      float64 `json:"qty"`
	Price    float64 `json:"price"`
	Total    float64 `json:"total"`
}
