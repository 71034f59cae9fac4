package usecase

import (
	"context"

	"github.com/polkiloo/orderdesk/internal/domain/model"
	"github.com/polkiloo/orderdesk/internal/domain/repository"
)

// CatalogUseCase exposes read access to the item catalog.
type CatalogUseCase struct {
	items repository.ItemRepository
}

// NewCatalogUseCase constructs CatalogUseCase.
func NewCatalogUseCase(items repository.ItemRepository) *CatalogUseCase {
	return &CatalogUseCase{items: items}
}

// Get returns one catalog item by identifier.
func (u *CatalogUseCase) Get(ctx context.Context, id int64) (*model.Item, error) {
	return u.items.GetByID(ctx, id)
}

// List returns the full catalog sorted by identifier.
func (u *CatalogUseCase) List(ctx context.Context) ([]model.Item, error) {
	return u.items.List(ctx)
}
