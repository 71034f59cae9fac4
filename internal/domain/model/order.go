package model

import "time"

// Order describes a sales order together with its line items.
type Order struct {
	OrderNo    string
	CustID     string
	GrandTotal float64
	UpdatedAt  time.Time
	Lines      []OrderLine
}

// OrderLine is one item-and-quantity entry within an order. Name and price
// are snapshots taken at order time; the row is immutable after creation.
type OrderLine struct {
	ID        int64
	OrderNo   string
	ItemID    int64
	ItemName  string
	Qty       float64
	Price     float64
	Total     float64
	UpdatedAt time.Time
}

// OrderItem is a validated request to include an item in a new order.
type OrderItem struct {
	ItemID int64
	Qty    float64
}
