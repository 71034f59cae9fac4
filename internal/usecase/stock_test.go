package usecase

import (
	"context"
	"errors"
	"testing"

	domainErrors "github.com/polkiloo/orderdesk/internal/domain/errors"
	"github.com/polkiloo/orderdesk/internal/domain/model"
	"github.com/polkiloo/orderdesk/internal/test"
)

func TestStockUseCaseLevel(t *testing.T) {
	uc := NewStockUseCase(&test.StockRepositoryStub{
		LevelFn: func(_ context.Context, itemID int64) (*model.StockLevel, error) {
			return &model.StockLevel{ItemID: itemID, QtyIn: 10, QtyOut: 4}, nil
		},
	})

	level, err := uc.Level(context.Background(), 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if level.Available() != 6 {
		t.Fatalf("expected available 6, got %v", level.Available())
	}
}

func TestStockUseCaseReceive(t *testing.T) {
	t.Run("rejects non-positive quantity", func(t *testing.T) {
		called := false
		uc := NewStockUseCase(&test.StockRepositoryStub{
			ReceiveFn: func(context.Context, int64, float64) (*model.StockMovement, error) {
				called = true
				return nil, nil
			},
		})

		for _, qty := range []float64{0, -1} {
			if _, err := uc.Receive(context.Background(), 1, qty); !errors.Is(err, domainErrors.ErrInvalidQty) {
				t.Fatalf("expected invalid quantity for %v, got %v", qty, err)
			}
		}
		if called {
			t.Fatal("repository must not be called on invalid quantity")
		}
	})

	t.Run("records intake", func(t *testing.T) {
		uc := NewStockUseCase(&test.StockRepositoryStub{})

		movement, err := uc.Receive(context.Background(), 1, 5)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if movement.ItemID != 1 || movement.QtyIn != 5 {
			t.Fatalf("unexpected movement %+v", movement)
		}
	})

	t.Run("missing item", func(t *testing.T) {
		uc := NewStockUseCase(&test.StockRepositoryStub{
			ReceiveFn: func(_ context.Context, itemID int64, _ float64) (*model.StockMovement, error) {
				return nil, domainErrors.ItemNotFoundError{ItemID: itemID}
			},
		})

		if _, err := uc.Receive(context.Background(), 9, 5); !errors.Is(err, domainErrors.ErrNotFound) {
			t.Fatalf("expected not found, got %v", err)
		}
	})
}

func TestStockUseCaseLowLevels(t *testing.T) {
	var gotThreshold float64
	var gotLimit int
	uc := NewStockUseCase(&test.StockRepositoryStub{
		LowLevelsFn: func(_ context.Context, threshold float64, limit int) ([]model.StockLevel, error) {
			gotThreshold = threshold
			gotLimit = limit
			return []model.StockLevel{{ItemID: 3, QtyIn: 1}}, nil
		},
	})

	levels, err := uc.LowLevels(context.Background(), 2, 16)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if gotThreshold != 2 || gotLimit != 16 {
		t.Fatalf("unexpected arguments %v/%d", gotThreshold, gotLimit)
	}
	if len(levels) != 1 || levels[0].ItemID != 3 {
		t.Fatalf("unexpected levels %+v", levels)
	}
}
