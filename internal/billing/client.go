// internal/billing/client.go
package billing

import (
	"context"
	"fmt"

	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/client"
	"github.com/stripe/stripe-go/v76/webhook"
)

// DefaultPageSize bounds provider list calls during sync.
const DefaultPageSize = 100

// API is the slice of the payment provider the application depends on.
type API interface {
	CreateCustomer(ctx context.Context, email, name string) (*stripe.Customer, error)
	GetCustomer(ctx context.Context, customerID string) (*stripe.Customer, error)
	UpdateCustomerMetadata(ctx context.Context, customerID string, metadata map[string]string) (*stripe.Customer, error)
	ListPaymentIntents(ctx context.Context, customerID string, limit int64) ([]*stripe.PaymentIntent, error)
	ListCheckoutSessions(ctx context.Context, customerID string, limit int64) ([]*stripe.CheckoutSession, error)
	CreateCheckoutSession(ctx context.Context, params CheckoutParams) (*stripe.CheckoutSession, error)
}

// CheckoutParams describes a one-off checkout session. Metadata is attached
// to both the session and the underlying payment intent so the sync engine
// can attribute the payment either way.
type CheckoutParams struct {
	CustomerID    string
	CustomerEmail string
	Amount        int64
	Currency      string
	ProductName   string
	SuccessURL    string
	CancelURL     string
	Metadata      map[string]string
}

// Client implements API over the Stripe SDK.
type Client struct {
	sc *client.API
}

func NewClient(secretKey string) *Client {
	sc := &client.API{}
	sc.Init(secretKey, nil)
	return &Client{sc: sc}
}

func (c *Client) CreateCustomer(ctx context.Context, email, name string) (*stripe.Customer, error) {
	params := &stripe.CustomerParams{
		Email: stripe.String(email),
		Name:  stripe.String(name),
	}
	params.Context = ctx

	cust, err := c.sc.Customers.New(params)
	if err != nil {
		return nil, fmt.Errorf("creating customer: %w", err)
	}
	return cust, nil
}

func (c *Client) GetCustomer(ctx context.Context, customerID string) (*stripe.Customer, error) {
	params := &stripe.CustomerParams{}
	params.Context = ctx

	cust, err := c.sc.Customers.Get(customerID, params)
	if err != nil {
		return nil, fmt.Errorf("fetching customer %s: %w", customerID, err)
	}
	return cust, nil
}

func (c *Client) UpdateCustomerMetadata(ctx context.Context, customerID string, metadata map[string]string) (*stripe.Customer, error) {
	params := &stripe.CustomerParams{}
	params.Context = ctx
	for k, v := range metadata {
		params.AddMetadata(k, v)
	}

	cust, err := c.sc.Customers.Update(customerID, params)
	if err != nil {
		return nil, fmt.Errorf("updating customer %s metadata: %w", customerID, err)
	}
	return cust, nil
}

func (c *Client) ListPaymentIntents(ctx context.Context, customerID string, limit int64) ([]*stripe.PaymentIntent, error) {
	params := &stripe.PaymentIntentListParams{
		Customer: stripe.String(customerID),
	}
	params.Context = ctx
	params.Limit = stripe.Int64(limit)

	var intents []*stripe.PaymentIntent
	iter := c.sc.PaymentIntents.List(params)
	for iter.Next() {
		intents = append(intents, iter.PaymentIntent())
	}
	if err := iter.Err(); err != nil {
		return nil, fmt.Errorf("listing payment intents for %s: %w", customerID, err)
	}
	return intents, nil
}

func (c *Client) ListCheckoutSessions(ctx context.Context, customerID string, limit int64) ([]*stripe.CheckoutSession, error) {
	params := &stripe.CheckoutSessionListParams{
		Customer: stripe.String(customerID),
	}
	params.Context = ctx
	params.Limit = stripe.Int64(limit)

	var sessions []*stripe.CheckoutSession
	iter := c.sc.CheckoutSessions.List(params)
	for iter.Next() {
		sessions = append(sessions, iter.CheckoutSession())
	}
	if err := iter.Err(); err != nil {
		return nil, fmt.Errorf("listing checkout sessions for %s: %w", customerID, err)
	}
	return sessions, nil
}

func (c *Client) CreateCheckoutSession(ctx context.Context, p CheckoutParams) (*stripe.CheckoutSession, error) {
	currency := p.Currency
	if currency == "" {
		currency = string(stripe.CurrencyUSD)
	}

	params := &stripe.CheckoutSessionParams{
		Mode:       stripe.String(string(stripe.CheckoutSessionModePayment)),
		SuccessURL: stripe.String(p.SuccessURL),
		CancelURL:  stripe.String(p.CancelURL),
		LineItems: []*stripe.CheckoutSessionLineItemParams{
			{
				PriceData: &stripe.CheckoutSessionLineItemPriceDataParams{
					Currency:   stripe.String(currency),
					UnitAmount: stripe.Int64(p.Amount),
					ProductData: &stripe.CheckoutSessionLineItemPriceDataProductDataParams{
						Name: stripe.String(p.ProductName),
					},
				},
				Quantity: stripe.Int64(1),
			},
		},
		PaymentIntentData: &stripe.CheckoutSessionPaymentIntentDataParams{
			Metadata: p.Metadata,
		},
	}
	params.Context = ctx
	if p.CustomerID != "" {
		params.Customer = stripe.String(p.CustomerID)
	} else if p.CustomerEmail != "" {
		params.CustomerEmail = stripe.String(p.CustomerEmail)
	}
	for k, v := range p.Metadata {
		params.AddMetadata(k, v)
	}

	sess, err := c.sc.CheckoutSessions.New(params)
	if err != nil {
		return nil, fmt.Errorf("creating checkout session: %w", err)
	}
	return sess, nil
}

// ConstructEvent verifies a webhook payload against the endpoint secret and
// returns the parsed event. Invalid signatures must be rejected with 400.
func ConstructEvent(payload []byte, sigHeader, secret string) (stripe.Event, error) {
	return webhook.ConstructEvent(payload, sigHeader, secret)
}
