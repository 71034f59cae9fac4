package usecase

import (
	"context"

	domainErrors "github.com/polkiloo/orderdesk/internal/domain/errors"
	"github.com/polkiloo/orderdesk/internal/domain/model"
	"github.com/polkiloo/orderdesk/internal/domain/repository"
)

// StockUseCase manages operations with the stock ledger.
type StockUseCase struct {
	stocks repository.StockRepository
}

// NewStockUseCase constructs StockUseCase.
func NewStockUseCase(stocks repository.StockRepository) *StockUseCase {
	return &StockUseCase{stocks: stocks}
}

// Level returns the aggregate stock position for one item.
func (u *StockUseCase) Level(ctx context.Context, itemID int64) (*model.StockLevel, error) {
	return u.stocks.Level(ctx, itemID)
}

// Receive appends an incoming ledger entry for the item.
func (u *StockUseCase) Receive(ctx context.Context, itemID int64, qty float64) (*model.StockMovement, error) {
	if qty <= 0 {
		return nil, domainErrors.ErrInvalidQty
	}
	return u.stocks.Receive(ctx, itemID, qty)
}

// LowLevels returns items whose available stock is at or below threshold.
func (u *StockUseCase) LowLevels(ctx context.Context, threshold float64, limit int) ([]model.StockLevel, error) {
	return u.stocks.LowLevels(ctx, threshold, limit)
}
