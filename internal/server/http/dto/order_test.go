package dto

import (
	"encoding/json"
	"testing"
)

func TestQuantityUnmarshalJSON(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    float64
		wantErr bool
	}{
		{name: "integer", input: `2`, want: 2},
		{name: "fraction", input: `2.5`, want: 2.5},
		{name: "quoted integer", input: `"3"`, want: 3},
		{name: "quoted fraction", input: `"0.5"`, want: 0.5},
		{name: "negative", input: `-1`, want: -1},
		{name: "empty string", input: `""`, wantErr: true},
		{name: "non-numeric string", input: `"two"`, wantErr: true},
		{name: "boolean", input: `true`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var q Quantity
			err := json.Unmarshal([]byte(tt.input), &q)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("expected error for %s", tt.input)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if float64(q) != tt.want {
				t.Fatalf("expected %v, got %v", tt.want, float64(q))
			}
		})
	}
}

func TestCreateOrderRequestUnmarshal(t *testing.T) {
	payload := `{"order_no":"SO-1","cust_id":"C-1","items":[{"item_id":1,"qty":"2","price":1500}]}`

	var req CreateOrderRequest
	if err := json.Unmarshal([]byte(payload), &req); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if req.OrderNo != "SO-1" || req.CustID != "C-1" {
		t.Fatalf("unexpected header fields %+v", req)
	}
	if len(req.Items) != 1 || float64(req.Items[0].Qty) != 2 {
		t.Fatalf("unexpected items %+v", req.Items)
	}
	if req.Items[0].Price == nil || *req.Items[0].Price != 1500 {
		t.Fatalf("price field should be carried through, got %+v", req.Items[0].Price)
	}
}
