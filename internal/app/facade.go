package app

import (
	"context"

	"github.com/polkiloo/orderdesk/internal/domain/model"
	"github.com/polkiloo/orderdesk/internal/usecase"
)

// HealthChecker verifies that the backing store is reachable.
type HealthChecker interface {
	HealthCheck(ctx context.Context) error
}

// SalesFacade bundles the order, catalog and stock use cases behind one
// surface consumed by HTTP handlers and the stock watcher.
type SalesFacade struct {
	orders  *usecase.OrderUseCase
	catalog *usecase.CatalogUseCase
	stocks  *usecase.StockUseCase
	health  HealthChecker
}

// NewSalesFacade constructs the application facade.
func NewSalesFacade(orders *usecase.OrderUseCase, catalog *usecase.CatalogUseCase, stocks *usecase.StockUseCase, health HealthChecker) *SalesFacade {
	return &SalesFacade{orders: orders, catalog: catalog, stocks: stocks, health: health}
}

func (f *SalesFacade) Order(ctx context.Context, orderNo string) (*model.Order, error) {
	return f.orders.Get(ctx, orderNo)
}

func (f *SalesFacade) Orders(ctx context.Context) ([]model.Order, error) {
	return f.orders.List(ctx)
}

func (f *SalesFacade) PlaceOrder(ctx context.Context, orderNo, custID string, items []model.OrderItem) (*model.Order, error) {
	return f.orders.Place(ctx, orderNo, custID, items)
}

func (f *SalesFacade) Item(ctx context.Context, id int64) (*model.Item, error) {
	return f.catalog.Get(ctx, id)
}

func (f *SalesFacade) Items(ctx context.Context) ([]model.Item, error) {
	return f.catalog.List(ctx)
}

func (f *SalesFacade) StockLevel(ctx context.Context, itemID int64) (*model.StockLevel, error) {
	return f.stocks.Level(ctx, itemID)
}

func (f *SalesFacade) ReceiveStock(ctx context.Context, itemID int64, qty float64) (*model.StockMovement, error) {
	return f.stocks.Receive(ctx, itemID, qty)
}

func (f *SalesFacade) LowStockLevels(ctx context.Context, threshold float64, limit int) ([]model.StockLevel, error) {
	return f.stocks.LowLevels(ctx, threshold, limit)
}

func (f *SalesFacade) Ping(ctx context.Context) error {
	return f.health.HealthCheck(ctx)
}
