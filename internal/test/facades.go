package test

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/polkiloo/orderdesk/internal/domain/model"
)

// OrderFacadeStub provides controllable behaviour for order endpoints.
type OrderFacadeStub struct {
	OrderFn  func(context.Context, string) (*model.Order, error)
	OrdersFn func(context.Context) ([]model.Order, error)
	PlaceFn  func(context.Context, string, string, []model.OrderItem) (*model.Order, error)
}

// Order delegates to provided function or returns a default order.
func (s OrderFacadeStub) Order(ctx context.Context, orderNo string) (*model.Order, error) {
	if s.OrderFn != nil {
		return s.OrderFn(ctx, orderNo)
	}
	return &model.Order{OrderNo: orderNo, CustID: "C-1", Lines: []model.OrderLine{}}, nil
}

// Orders returns predefined orders.
func (s OrderFacadeStub) Orders(ctx context.Context) ([]model.Order, error) {
	if s.OrdersFn != nil {
		return s.OrdersFn(ctx)
	}
	return []model.Order{{OrderNo: "SO-1", CustID: "C-1", Lines: []model.OrderLine{}}}, nil
}

// PlaceOrder delegates to provided function or returns a priced order.
func (s OrderFacadeStub) PlaceOrder(ctx context.Context, orderNo, custID string, items []model.OrderItem) (*model.Order, error) {
	if s.PlaceFn != nil {
		return s.PlaceFn(ctx, orderNo, custID, items)
	}
	order := &model.Order{OrderNo: orderNo, CustID: custID, Lines: make([]model.OrderLine, 0, len(items))}
	for _, it := range items {
		order.Lines = append(order.Lines, model.OrderLine{OrderNo: orderNo, ItemID: it.ItemID, ItemName: "item", Qty: it.Qty})
	}
	return order, nil
}

// CatalogFacadeStub simulates catalog lookups.
type CatalogFacadeStub struct {
	ItemFn  func(context.Context, int64) (*model.Item, error)
	ItemsFn func(context.Context) ([]model.Item, error)
}

// Item returns the configured item or a default one.
func (s CatalogFacadeStub) Item(ctx context.Context, id int64) (*model.Item, error) {
	if s.ItemFn != nil {
		return s.ItemFn(ctx, id)
	}
	return &model.Item{ID: id, Name: "item"}, nil
}

// Items returns the configured catalog or a single default entry.
func (s CatalogFacadeStub) Items(ctx context.Context) ([]model.Item, error) {
	if s.ItemsFn != nil {
		return s.ItemsFn(ctx)
	}
	return []model.Item{{ID: 1, Name: "item"}}, nil
}

// StockFacadeStub simulates ledger operations.
type StockFacadeStub struct {
	LevelFn   func(context.Context, int64) (*model.StockLevel, error)
	ReceiveFn func(context.Context, int64, float64) (*model.StockMovement, error)
}

// StockLevel returns the configured level or a default position.
func (s StockFacadeStub) StockLevel(ctx context.Context, itemID int64) (*model.StockLevel, error) {
	if s.LevelFn != nil {
		return s.LevelFn(ctx, itemID)
	}
	return &model.StockLevel{ItemID: itemID, QtyIn: 5}, nil
}

// ReceiveStock executes the configured intake handler.
func (s StockFacadeStub) ReceiveStock(ctx context.Context, itemID int64, qty float64) (*model.StockMovement, error) {
	if s.ReceiveFn != nil {
		return s.ReceiveFn(ctx, itemID, qty)
	}
	return &model.StockMovement{ID: 1, ItemID: itemID, QtyIn: qty, UpdatedAt: time.Unix(0, 0)}, nil
}

// HealthFacadeStub simulates store health checks.
type HealthFacadeStub struct {
	PingFn func(context.Context) error
}

// Ping delegates to the configured function or reports healthy.
func (s HealthFacadeStub) Ping(ctx context.Context) error {
	if s.PingFn != nil {
		return s.PingFn(ctx)
	}
	return nil
}

// SalesFacadeStub aggregates all facade stubs for router level tests.
type SalesFacadeStub struct {
	OrderFacadeStub
	CatalogFacadeStub
	StockFacadeStub
	HealthFacadeStub
}

// WatcherFacadeStub mimics watcher interactions with the sales facade.
type WatcherFacadeStub struct {
	Levels      [][]model.StockLevel
	LowLevelsFn func(context.Context, float64, int) ([]model.StockLevel, error)

	mu            sync.Mutex
	scanCallCount int32
	ObservedCalls []LowStockCall
}

// LowStockCall records one LowStockLevels invocation.
type LowStockCall struct {
	Threshold float64
	Limit     int
}

// Lock exposes internal mutex for external synchronization.
func (s *WatcherFacadeStub) Lock() { s.mu.Lock() }

// Unlock releases previously acquired lock.
func (s *WatcherFacadeStub) Unlock() { s.mu.Unlock() }

// LowStockLevels returns batches from the configured queue.
func (s *WatcherFacadeStub) LowStockLevels(ctx context.Context, threshold float64, limit int) ([]model.StockLevel, error) {
	s.mu.Lock()
	s.ObservedCalls = append(s.ObservedCalls, LowStockCall{Threshold: threshold, Limit: limit})
	s.mu.Unlock()

	if s.LowLevelsFn != nil {
		return s.LowLevelsFn(ctx, threshold, limit)
	}
	call := atomic.AddInt32(&s.scanCallCount, 1)
	if int(call) <= len(s.Levels) {
		return s.Levels[call-1], nil
	}
	time.Sleep(10 * time.Millisecond)
	return nil, nil
}
