package payment

import (
	"context"
	"fmt"
	"math"

	"github.com/hienle2703/shop-order-service/internal/entities"

	"github.com/stripe/stripe-go/v79"
	"github.com/stripe/stripe-go/v79/client"
)

// StripeGateway wraps the Stripe payment-intent API. Stateless; the client
// completes the charge out-of-band with the returned secret.
type StripeGateway struct {
	api *client.API
}

func NewStripeGateway(secretKey string) *StripeGateway {
	api := &client.API{}
	api.Init(secretKey, nil)
	return &StripeGateway{api: api}
}

// CreateIntent creates a usd payment intent for the given dollar amount and
// returns its client secret. Stripe wants the amount in cents.
func (g *StripeGateway) CreateIntent(ctx context.Context, amount float64) (string, error) {
	params := &stripe.PaymentIntentParams{
		Amount:   stripe.Int64(int64(math.Round(amount * 100))),
		Currency: stripe.String(string(stripe.CurrencyUSD)),
	}
	params.Context = ctx

	intent, err := g.api.PaymentIntents.New(params)
	if err != nil {
		return "", fmt.Errorf("%w: %s", entities.ErrPaymentGateway, err)
	}
	return intent.ClientSecret, nil
}
