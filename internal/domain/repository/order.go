package repository

import (
	"context"

	"github.com/polkiloo/orderdesk/internal/domain/model"
)

// OrderRepository describes persistence operations with sales orders.
type OrderRepository interface {
	// GetByNumber returns the order with its line items attached.
	GetByNumber(ctx context.Context, orderNo string) (*model.Order, error)
	// List returns all orders ordered by order number, each with line items.
	List(ctx context.Context) ([]model.Order, error)
	// Place validates stock and persists the order, its lines and the
	// outgoing ledger entries as one transaction. The returned order carries
	// the computed line and grand totals.
	Place(ctx context.Context, orderNo, custID string, items []model.OrderItem) (*model.Order, error)
}
