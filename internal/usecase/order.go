package usecase

import (
	"context"

	domainErrors "github.com/polkiloo/orderdesk/internal/domain/errors"
	"github.com/polkiloo/orderdesk/internal/domain/model"
	"github.com/polkiloo/orderdesk/internal/domain/repository"
)

// OrderUseCase encapsulates sales order lookup and placement logic.
type OrderUseCase struct {
	orders repository.OrderRepository
}

// NewOrderUseCase constructs OrderUseCase.
func NewOrderUseCase(orders repository.OrderRepository) *OrderUseCase {
	return &OrderUseCase{orders: orders}
}

// Get returns one order with its line items.
func (u *OrderUseCase) Get(ctx context.Context, orderNo string) (*model.Order, error) {
	if orderNo == "" {
		return nil, domainErrors.ValidationError{Field: "order_no"}
	}
	return u.orders.GetByNumber(ctx, orderNo)
}

// List returns all orders sorted by order number.
func (u *OrderUseCase) List(ctx context.Context) ([]model.Order, error) {
	return u.orders.List(ctx)
}

// Place validates the request and delegates the transactional write to the
// repository. Field checks run in request order so the first missing field is
// the one reported.
func (u *OrderUseCase) Place(ctx context.Context, orderNo, custID string, items []model.OrderItem) (*model.Order, error) {
	if orderNo == "" {
		return nil, domainErrors.ValidationError{Field: "order_no"}
	}
	if custID == "" {
		return nil, domainErrors.ValidationError{Field: "cust_id"}
	}
	if len(items) == 0 {
		return nil, domainErrors.ValidationError{Field: "items"}
	}
	return u.orders.Place(ctx, orderNo, custID, items)
}
