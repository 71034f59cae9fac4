package repository

import (
	"context"

	"github.com/polkiloo/orderdesk/internal/domain/model"
)

// StockRepository describes operations with the append-only stock ledger.
type StockRepository interface {
	// Level aggregates the ledger for one item. Returns NoStockRecordError
	// when the item has no ledger history at all.
	Level(ctx context.Context, itemID int64) (*model.StockLevel, error)
	// Receive appends an incoming ledger entry for the item.
	Receive(ctx context.Context, itemID int64, qty float64) (*model.StockMovement, error)
	// LowLevels returns items whose available stock is at or below threshold.
	LowLevels(ctx context.Context, threshold float64, limit int) ([]model.StockLevel, error)
}
