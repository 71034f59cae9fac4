package repository

import (
	"context"

	"github.com/polkiloo/orderdesk/internal/domain/model"
)

// ItemRepository describes read access to the catalog.
type ItemRepository interface {
	GetByID(ctx context.Context, id int64) (*model.Item, error)
	List(ctx context.Context) ([]model.Item, error)
}
