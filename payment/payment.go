// Package payment wraps the hosted checkout provider. The service layer only
// sees the Provider interface; Stripe specifics stay behind it.
package payment

// LineItem is one charged line on a hosted checkout session.
// UnitAmount is in minor units (cents).
type LineItem struct {
	Name       string
	Currency   string
	UnitAmount int64
	Quantity   int64
}

// Session is the provider's hosted checkout session.
type Session struct {
	ID  string
	URL string
}

// PaidCheckout is the provider's out-of-band confirmation that a session
// was completed, tied back to our order through the session metadata.
type PaidCheckout struct {
	OrderID string
	Address string
	Phone   string
}

type Provider interface {
	// CreateSession creates a hosted checkout session carrying the order id
	// in its metadata and returns the redirect URL.
	CreateSession(orderID string, items []LineItem, successURL, cancelURL string) (*Session, error)

	// ParseWebhook verifies a webhook payload's signature and extracts the
	// completed checkout, or (nil, nil) for event types we do not act on.
	ParseWebhook(payload []byte, signature string) (*PaidCheckout, error)
}
