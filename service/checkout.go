package service

import (
	"fmt"

	"commerce-admin/payment"
)

// Checkout turns a set of product ids into an unpaid order plus a hosted
// payment session, and returns the session's redirect URL.
//
// Product ids with no matching row are rejected outright instead of silently
// producing uncharged order items. If the provider call fails after the order
// row was created, the order is deleted again so no orphaned unpaid order
// survives the request.
func (s *Service) Checkout(storeID string, productIDs []string) (string, error) {
	if storeID == "" {
		return "", missing("Store id")
	}
	if len(productIDs) == 0 {
		return "", ErrNoProducts
	}

	products, err := s.store.ListProductsByIDs(productIDs)
	if err != nil {
		return "", err
	}
	byID := make(map[string]int, len(products))
	for i, p := range products {
		byID[p.ID] = i
	}
	for _, id := range productIDs {
		if _, ok := byID[id]; !ok {
			return "", fmt.Errorf("%w: %s", ErrUnknownProduct, id)
		}
	}

	// One quantity-1 line per requested id, price verbatim from the row.
	items := make([]payment.LineItem, 0, len(productIDs))
	for _, id := range productIDs {
		p := products[byID[id]]
		items = append(items, payment.LineItem{
			Name:       p.Name,
			Currency:   Currency,
			UnitAmount: MinorUnits(p.Price),
			Quantity:   1,
		})
	}

	order, err := s.store.CreateOrder(storeID, productIDs)
	if err != nil {
		return "", err
	}

	sess, err := s.provider.CreateSession(
		order.ID,
		items,
		s.cfg.FrontendStoreURL+"/cart?success=1",
		s.cfg.FrontendStoreURL+"/cart?canceled=1",
	)
	if err != nil {
		// Compensate: the order row must not outlive a failed session.
		if delErr := s.store.DeleteOrder(order.ID); delErr != nil {
			return "", fmt.Errorf("create session: %v (orphan order %s not cleaned: %v)", err, order.ID, delErr)
		}
		return "", err
	}
	return sess.URL, nil
}

// ConfirmCheckout applies the provider's out-of-band payment confirmation:
// the referenced order becomes paid and its products are archived. This is
// the only path that flips an order's isPaid flag.
func (s *Service) ConfirmCheckout(payload []byte, signature string) error {
	pc, err := s.provider.ParseWebhook(payload, signature)
	if err != nil {
		return err
	}
	if pc == nil {
		// An event type we don't act on.
		return nil
	}
	if _, err := s.store.MarkOrderPaid(pc.OrderID, pc.Address, pc.Phone); err != nil {
		return err
	}
	productIDs, err := s.store.ListOrderProductIDs(pc.OrderID)
	if err != nil {
		return err
	}
	return s.store.ArchiveProducts(productIDs)
}
