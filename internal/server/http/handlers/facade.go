package handlers

import (
	"context"

	"github.com/polkiloo/orderdesk/internal/domain/model"
)

// OrderFacade encapsulates order operations exposed via HTTP.
type OrderFacade interface {
	Order(ctx context.Context, orderNo string) (*model.Order, error)
	Orders(ctx context.Context) ([]model.Order, error)
	PlaceOrder(ctx context.Context, orderNo, custID string, items []model.OrderItem) (*model.Order, error)
}

// CatalogFacade provides read access to the item catalog.
type CatalogFacade interface {
	Item(ctx context.Context, id int64) (*model.Item, error)
	Items(ctx context.Context) ([]model.Item, error)
}

// StockFacade provides stock ledger operations.
type StockFacade interface {
	StockLevel(ctx context.Context, itemID int64) (*model.StockLevel, error)
	ReceiveStock(ctx context.Context, itemID int64, qty float64) (*model.StockMovement, error)
}

// HealthFacade reports backing store availability.
type HealthFacade interface {
	Ping(ctx context.Context) error
}

// SalesFacade aggregates the full set of operations used across handlers.
type SalesFacade interface {
	OrderFacade
	CatalogFacade
	StockFacade
	HealthFacade
}
