package service

import (
	"testing"

	"commerce-admin/store"

	"github.com/shopspring/decimal"
)

func TestSalesCountForwardsPaidOrderCount(t *testing.T) {
	fs := &fakeStore{
		CountPaidOrdersFn: func(storeID string) (int, error) { return 3, nil },
	}
	svc := NewService(fs, nil, Config{})

	n, err := svc.SalesCount("store-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if n != 3 {
		t.Fatalf("expected 3, got %d", n)
	}
}

func TestStockCountCountsActiveOnly(t *testing.T) {
	fs := &fakeStore{
		// Store-level query already excludes archived rows; the service
		// must forward the store id untouched.
		CountActiveProductsFn: func(storeID string) (int, error) {
			if storeID != "store-1" {
				t.Fatalf("unexpected store id %q", storeID)
			}
			return 1, nil
		},
	}
	svc := NewService(fs, nil, Config{})

	n, err := svc.StockCount("store-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if n != 1 {
		t.Fatalf("expected 1, got %d", n)
	}
}

func TestTotalRevenueSumsPaidOrderItems(t *testing.T) {
	fs := &fakeStore{
		ListPaidOrdersFn: func(storeID string) ([]store.OrderRow, error) {
			return []store.OrderRow{
				{ID: "ord-1", IsPaid: true, Items: []store.OrderItemRow{
					{ProductID: "p-1", ProductPrice: decimal.RequireFromString("49.99")},
					{ProductID: "p-2", ProductPrice: decimal.RequireFromString("19.50")},
				}},
				{ID: "ord-2", IsPaid: true, Items: []store.OrderItemRow{
					{ProductID: "p-1", ProductPrice: decimal.RequireFromString("49.99")},
				}},
			}, nil
		},
	}
	svc := NewService(fs, nil, Config{})

	total, err := svc.TotalRevenue("store-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !total.Equal(decimal.RequireFromString("119.48")) {
		t.Fatalf("expected 119.48, got %s", total)
	}
}

func TestTotalRevenueEmpty(t *testing.T) {
	fs := &fakeStore{
		ListPaidOrdersFn: func(storeID string) ([]store.OrderRow, error) {
			return []store.OrderRow{}, nil
		},
	}
	svc := NewService(fs, nil, Config{})

	total, err := svc.TotalRevenue("store-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !total.IsZero() {
		t.Fatalf("expected zero revenue, got %s", total)
	}
}
