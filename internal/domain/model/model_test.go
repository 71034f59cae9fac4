package model

import "testing"

func TestItemUnitPrice(t *testing.T) {
	price := 1000.0
	cases := []struct {
		name string
		item Item
		want float64
	}{
		{"priced", Item{ID: 1, Name: "pen", Price: &price}, 1000},
		{"nil price", Item{ID: 2, Name: "draft"}, 0},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.item.UnitPrice(); got != tc.want {
				t.Fatalf("expected %v, got %v", tc.want, got)
			}
		})
	}
}

func TestStockLevelAvailable(t *testing.T) {
	cases := []struct {
		name  string
		level StockLevel
		want  float64
	}{
		{"positive", StockLevel{QtyIn: 10, QtyOut: 4}, 6},
		{"exhausted", StockLevel{QtyIn: 5, QtyOut: 5}, 0},
		{"oversold", StockLevel{QtyIn: 2, QtyOut: 3}, -1},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.level.Available(); got != tc.want {
				t.Fatalf("expected %v, got %v", tc.want, got)
			}
		})
	}
}
