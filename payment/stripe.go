package payment

import (
	"encoding/json"
	"strings"

	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/client"
	"github.com/stripe/stripe-go/v76/webhook"
)

// StripeProvider implements Provider on Stripe Checkout.
type StripeProvider struct {
	api           *client.API
	webhookSecret string
}

func NewStripeProvider(apiKey, webhookSecret string) *StripeProvider {
	api := &client.API{}
	api.Init(apiKey, nil)
	return &StripeProvider{api: api, webhookSecret: webhookSecret}
}

func (p *StripeProvider) CreateSession(orderID string, items []LineItem, successURL, cancelURL string) (*Session, error) {
	params := &stripe.CheckoutSessionParams{
		Mode:                     stripe.String(string(stripe.CheckoutSessionModePayment)),
		BillingAddressCollection: stripe.String(string(stripe.CheckoutSessionBillingAddressCollectionRequired)),
		PhoneNumberCollection: &stripe.CheckoutSessionPhoneNumberCollectionParams{
			Enabled: stripe.Bool(true),
		},
		SuccessURL: stripe.String(successURL),
		CancelURL:  stripe.String(cancelURL),
	}
	for _, it := range items {
		params.LineItems = append(params.LineItems, &stripe.CheckoutSessionLineItemParams{
			Quantity: stripe.Int64(it.Quantity),
			PriceData: &stripe.CheckoutSessionLineItemPriceDataParams{
				Currency:   stripe.String(strings.ToLower(it.Currency)),
				UnitAmount: stripe.Int64(it.UnitAmount),
				ProductData: &stripe.CheckoutSessionLineItemPriceDataProductDataParams{
					Name: stripe.String(it.Name),
				},
			},
		})
	}
	params.AddMetadata("order_id", orderID)

	sess, err := p.api.CheckoutSessions.New(params)
	if err != nil {
		return nil, err
	}
	return &Session{ID: sess.ID, URL: sess.URL}, nil
}

func (p *StripeProvider) ParseWebhook(payload []byte, signature string) (*PaidCheckout, error) {
	// Accounts pin their own API version; don't reject events over the mismatch.
	event, err := webhook.ConstructEventWithOptions(payload, signature, p.webhookSecret,
		webhook.ConstructEventOptions{IgnoreAPIVersionMismatch: true})
	if err != nil {
		return nil, err
	}
	if event.Type != "checkout.session.completed" {
		return nil, nil
	}

	var sess stripe.CheckoutSession
	if err := json.Unmarshal(event.Data.Raw, &sess); err != nil {
		return nil, err
	}

	pc := &PaidCheckout{OrderID: sess.Metadata["order_id"]}
	if sess.CustomerDetails != nil {
		pc.Phone = sess.CustomerDetails.Phone
		pc.Address = formatAddress(sess.CustomerDetails.Address)
	}
	return pc, nil
}

func formatAddress(a *stripe.Address) string {
	if a == nil {
		return ""
	}
	parts := []string{}
	for _, c := range []string{a.Line1, a.Line2, a.City, a.State, a.PostalCode, a.Country} {
		if c != "" {
			parts = append(parts, c)
		}
	}
	return strings.Join(parts, ", ")
}
