package service

import "github.com/shopspring/decimal"

// Dashboard aggregations. All three are recomputed in full on every call;
// nothing here is cached or incrementally maintained.

// SalesCount counts the store's paid orders.
func (s *Service) SalesCount(storeID string) (int, error) {
	if storeID == "" {
		return 0, missing("Store id")
	}
	return s.store.CountPaidOrders(storeID)
}

// StockCount counts the store's unarchived products.
func (s *Service) StockCount(storeID string) (int, error) {
	if storeID == "" {
		return 0, missing("Store id")
	}
	return s.store.CountActiveProducts(storeID)
}

// TotalRevenue sums the product price over every item of every paid order.
func (s *Service) TotalRevenue(storeID string) (decimal.Decimal, error) {
	if storeID == "" {
		return decimal.Zero, missing("Store id")
	}
	orders, err := s.store.ListPaidOrders(storeID)
	if err != nil {
		return decimal.Zero, err
	}
	total := decimal.Zero
	for _, o := range orders {
		for _, it := range o.Items {
			total = total.Add(it.ProductPrice)
		}
	}
	return total, nil
}
