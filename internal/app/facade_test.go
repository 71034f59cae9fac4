package app

import (
	"context"
	"errors"
	"testing"

	domainErrors "github.com/polkiloo/orderdesk/internal/domain/errors"
	"github.com/polkiloo/orderdesk/internal/domain/model"
	testhelpers "github.com/polkiloo/orderdesk/internal/test"
	"github.com/polkiloo/orderdesk/internal/usecase"
)

type healthCheckerStub struct {
	err error
}

func (s healthCheckerStub) HealthCheck(context.Context) error { return s.err }

func newTestFacade(orders *testhelpers.OrderRepositoryStub, items *testhelpers.ItemRepositoryStub, stocks *testhelpers.StockRepositoryStub, health HealthChecker) *SalesFacade {
	if orders == nil {
		orders = &testhelpers.OrderRepositoryStub{}
	}
	if items == nil {
		items = &testhelpers.ItemRepositoryStub{}
	}
	if stocks == nil {
		stocks = &testhelpers.StockRepositoryStub{}
	}
	if health == nil {
		health = healthCheckerStub{}
	}
	return NewSalesFacade(
		usecase.NewOrderUseCase(orders),
		usecase.NewCatalogUseCase(items),
		usecase.NewStockUseCase(stocks),
		health,
	)
}

func TestSalesFacadeOrders(t *testing.T) {
	orders := &testhelpers.OrderRepositoryStub{
		GetFn: func(_ context.Context, orderNo string) (*model.Order, error) {
			return &model.Order{OrderNo: orderNo, CustID: "C-1"}, nil
		},
		ListFn: func(context.Context) ([]model.Order, error) {
			return []model.Order{{OrderNo: "SO-1"}}, nil
		},
	}
	facade := newTestFacade(orders, nil, nil, nil)

	order, err := facade.Order(context.Background(), "SO-1")
	if err != nil || order.OrderNo != "SO-1" {
		t.Fatalf("unexpected lookup result %+v, %v", order, err)
	}

	list, err := facade.Orders(context.Background())
	if err != nil || len(list) != 1 {
		t.Fatalf("unexpected list result %+v, %v", list, err)
	}

	placed, err := facade.PlaceOrder(context.Background(), "SO-2", "C-1", []model.OrderItem{{ItemID: 1, Qty: 2}})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if placed.OrderNo != "SO-2" || len(placed.Lines) != 1 {
		t.Fatalf("unexpected placed order %+v", placed)
	}
}

func TestSalesFacadeValidationPassthrough(t *testing.T) {
	facade := newTestFacade(nil, nil, nil, nil)

	if _, err := facade.Order(context.Background(), ""); err == nil {
		t.Fatal("expected validation error for empty order number")
	}
	if _, err := facade.PlaceOrder(context.Background(), "SO-1", "", nil); err == nil {
		t.Fatal("expected validation error for empty customer")
	}
	if _, err := facade.ReceiveStock(context.Background(), 1, 0); !errors.Is(err, domainErrors.ErrInvalidQty) {
		t.Fatalf("expected invalid quantity, got %v", err)
	}
}

func TestSalesFacadeCatalog(t *testing.T) {
	facade := newTestFacade(nil, &testhelpers.ItemRepositoryStub{
		ListFn: func(context.Context) ([]model.Item, error) {
			return []model.Item{{ID: 1, Name: "Pen"}}, nil
		},
	}, nil, nil)

	item, err := facade.Item(context.Background(), 5)
	if err != nil || item.ID != 5 {
		t.Fatalf("unexpected item %+v, %v", item, err)
	}

	items, err := facade.Items(context.Background())
	if err != nil || len(items) != 1 {
		t.Fatalf("unexpected items %+v, %v", items, err)
	}
}

func TestSalesFacadeStocks(t *testing.T) {
	facade := newTestFacade(nil, nil, &testhelpers.StockRepositoryStub{
		LevelFn: func(_ context.Context, itemID int64) (*model.StockLevel, error) {
			return &model.StockLevel{ItemID: itemID, QtyIn: 3, QtyOut: 1}, nil
		},
		LowLevelsFn: func(_ context.Context, threshold float64, limit int) ([]model.StockLevel, error) {
			return []model.StockLevel{{ItemID: 2, QtyIn: threshold}}, nil
		},
	}, nil)

	level, err := facade.StockLevel(context.Background(), 1)
	if err != nil || level.Available() != 2 {
		t.Fatalf("unexpected level %+v, %v", level, err)
	}

	movement, err := facade.ReceiveStock(context.Background(), 1, 5)
	if err != nil || movement.QtyIn != 5 {
		t.Fatalf("unexpected movement %+v, %v", movement, err)
	}

	low, err := facade.LowStockLevels(context.Background(), 2, 10)
	if err != nil || len(low) != 1 {
		t.Fatalf("unexpected low levels %+v, %v", low, err)
	}
}

func TestSalesFacadePing(t *testing.T) {
	if err := newTestFacade(nil, nil, nil, nil).Ping(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	wantErr := errors.New("down")
	facade := newTestFacade(nil, nil, nil, healthCheckerStub{err: wantErr})
	if err := facade.Ping(context.Background()); !errors.Is(err, wantErr) {
		t.Fatalf("expected %v, got %v", wantErr, err)
	}
}
