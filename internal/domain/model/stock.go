package model

import "time"

// StockMovement is one append-only entry of the stock ledger.
type StockMovement struct {
	ID        int64
	ItemID    int64
	QtyIn     float64
	QtyOut    float64
	UpdatedAt time.Time
}

// StockLevel is the aggregate position of an item across its ledger history.
type StockLevel struct {
	ItemID int64
	QtyIn  float64
	QtyOut float64
}

// Available returns the current stock derived from the ledger sums.
func (l StockLevel) Available() float64 {
	return l.QtyIn - l.QtyOut
}
