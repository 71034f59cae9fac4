package usecase

import (
	"context"
	"errors"
	"testing"

	domainErrors "github.com/polkiloo/orderdesk/internal/domain/errors"
	"github.com/polkiloo/orderdesk/internal/domain/model"
	"github.com/polkiloo/orderdesk/internal/test"
)

func TestCatalogUseCaseGet(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		price := 1000.0
		uc := NewCatalogUseCase(&test.ItemRepositoryStub{
			GetFn: func(_ context.Context, id int64) (*model.Item, error) {
				return &model.Item{ID: id, Name: "Pen", Price: &price}, nil
			},
		})

		item, err := uc.Get(context.Background(), 1)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if item.ID != 1 || item.UnitPrice() != 1000 {
			t.Fatalf("unexpected item %+v", item)
		}
	})

	t.Run("missing", func(t *testing.T) {
		uc := NewCatalogUseCase(&test.ItemRepositoryStub{
			GetFn: func(_ context.Context, id int64) (*model.Item, error) {
				return nil, domainErrors.ItemNotFoundError{ItemID: id}
			},
		})

		if _, err := uc.Get(context.Background(), 9); !errors.Is(err, domainErrors.ErrNotFound) {
			t.Fatalf("expected not found, got %v", err)
		}
	})
}

func TestCatalogUseCaseList(t *testing.T) {
	uc := NewCatalogUseCase(&test.ItemRepositoryStub{
		ListFn: func(context.Context) ([]model.Item, error) {
			return []model.Item{{ID: 1, Name: "Pen"}, {ID: 2, Name: "Notebook"}}, nil
		},
	})

	items, err := uc.List(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(items) != 2 || items[1].Name != "Notebook" {
		t.Fatalf("unexpected items %+v", items)
	}
}
