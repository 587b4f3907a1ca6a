package models

import "testing"

func TestIsLowStock(t *testing.T) {
	low := Material{StockQuantity: 5, MinStockThreshold: 10}
	if !low.IsLowStock() {
		t.Fatalf("stock 5 with threshold 10 must be flagged low")
	}

	ok := Material{StockQuantity: 15, MinStockThreshold: 10}
	if ok.IsLowStock() {
		t.Fatalf("stock 15 with threshold 10 must not be flagged low")
	}

	boundary := Material{StockQuantity: 10, MinStockThreshold: 10}
	if !boundary.IsLowStock() {
		t.Fatalf("stock equal to threshold counts as low")
	}
}
