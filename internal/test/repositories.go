package test

import (
	"context"

	domainErrors "github.com/polkiloo/orderdesk/internal/domain/errors"
	"github.com/polkiloo/orderdesk/internal/domain/model"
)

// OrderRepositoryStub provides controllable order persistence behaviour.
type OrderRepositoryStub struct {
	GetFn   func(context.Context, string) (*model.Order, error)
	ListFn  func(context.Context) ([]model.Order, error)
	PlaceFn func(context.Context, string, string, []model.OrderItem) (*model.Order, error)
}

// GetByNumber delegates to the configured function or reports a miss.
func (s *OrderRepositoryStub) GetByNumber(ctx context.Context, orderNo string) (*model.Order, error) {
	if s.GetFn != nil {
		return s.GetFn(ctx, orderNo)
	}
	return nil, domainErrors.ErrOrderNotFound
}

// List delegates to the configured function or returns an empty list.
func (s *OrderRepositoryStub) List(ctx context.Context) ([]model.Order, error) {
	if s.ListFn != nil {
		return s.ListFn(ctx)
	}
	return []model.Order{}, nil
}

// Place delegates to the configured function or echoes the request back.
func (s *OrderRepositoryStub) Place(ctx context.Context, orderNo, custID string, items []model.OrderItem) (*model.Order, error) {
	if s.PlaceFn != nil {
		return s.PlaceFn(ctx, orderNo, custID, items)
	}
	order := &model.Order{OrderNo: orderNo, CustID: custID, Lines: make([]model.OrderLine, 0, len(items))}
	for _, it := range items {
		order.Lines = append(order.Lines, model.OrderLine{OrderNo: orderNo, ItemID: it.ItemID, Qty: it.Qty})
	}
	return order, nil
}

// ItemRepositoryStub provides controllable catalog behaviour.
type ItemRepositoryStub struct {
	GetFn  func(context.Context, int64) (*model.Item, error)
	ListFn func(context.Context) ([]model.Item, error)
}

// GetByID delegates to the configured function or returns a default item.
func (s *ItemRepositoryStub) GetByID(ctx context.Context, id int64) (*model.Item, error) {
	if s.GetFn != nil {
		return s.GetFn(ctx, id)
	}
	return &model.Item{ID: id, Name: "item"}, nil
}

// List delegates to the configured function or returns an empty catalog.
func (s *ItemRepositoryStub) List(ctx context.Context) ([]model.Item, error) {
	if s.ListFn != nil {
		return s.ListFn(ctx)
	}
	return []model.Item{}, nil
}

// StockRepositoryStub provides controllable ledger behaviour.
type StockRepositoryStub struct {
	LevelFn     func(context.Context, int64) (*model.StockLevel, error)
	ReceiveFn   func(context.Context, int64, float64) (*model.StockMovement, error)
	LowLevelsFn func(context.Context, float64, int) ([]model.StockLevel, error)
}

// Level delegates to the configured function or reports a default position.
func (s *StockRepositoryStub) Level(ctx context.Context, itemID int64) (*model.StockLevel, error) {
	if s.LevelFn != nil {
		return s.LevelFn(ctx, itemID)
	}
	return &model.StockLevel{ItemID: itemID, QtyIn: 10}, nil
}

// Receive delegates to the configured function or records the intake.
func (s *StockRepositoryStub) Receive(ctx context.Context, itemID int64, qty float64) (*model.StockMovement, error) {
	if s.ReceiveFn != nil {
		return s.ReceiveFn(ctx, itemID, qty)
	}
	return &model.StockMovement{ID: 1, ItemID: itemID, QtyIn: qty}, nil
}

// LowLevels delegates to the configured function or returns nothing low.
func (s *StockRepositoryStub) LowLevels(ctx context.Context, threshold float64, limit int) ([]model.StockLevel, error) {
	if s.LowLevelsFn != nil {
		return s.LowLevelsFn(ctx, threshold, limit)
	}
	return nil, nil
}
