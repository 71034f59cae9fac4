package dto

import "time"

// ReceiveStockRequest describes a stock intake payload.
type ReceiveStockRequest struct {
	ItemID int64    `json:"item_id"`
	Qty    Quantity `json:"qty"`
}

// StockLevelResponse is the aggregate ledger position of one item.
type StockLevelResponse struct {
	ItemID int64   `json:"item_id"`
	QtyIn  float64 `json:"qty_in"`
	QtyOut float64 `json:"qty_out"`
	Stock  float64 `json:"stock"`
}

// StockLevelsResponse is the list envelope for stock lookups.
type StockLevelsResponse struct {
	Data []StockLevelResponse `json:"data"`
}

// StockMovementResponse represents one appended ledger entry.
type StockMovementResponse struct {
	ID        int64     `json:"id"`
	ItemID    int64     `json:"item_id"`
	QtyIn     float64   `json:"qty_in"`
	QtyOut    float64   `json:"qty_out"`
	UpdatedAt time.Time `json:"updated_at"`
}
