package cli

import (
	"context"
	"fmt"

	"github.com/payego/payego-cli/internal/client/form"
	"github.com/payego/payego-cli/internal/client/models"
	"github.com/payego/payego-cli/internal/client/nav"
	"github.com/payego/payego-cli/internal/money"
)

func topUpForm() *form.Form {
	return form.New(
		form.OneOf("provider", models.SupportedProviders, "Pick 'stripe' or 'paypal'"),
		form.OneOf("currency", models.SupportedCurrencies, "That currency isn't supported"),
		form.AmountBetween("amount", 100, 1_000_000, "Amount must be between 1 and 10,000"),
	)
}

// TopUp initiates a wallet top-up with stripe or paypal. Stripe hands back a
// checkout URL to finish in the browser; paypal is captured here once the
// user has approved the order.
func (a *App) TopUp(ctx context.Context) {

	provider, err := GetSimpleText(a.reader, "Pay with 'stripe' or 'paypal'?", a.out)
	if err != nil {
		a.log.Error(ctx, "reading provider", "error", err)
		return
	}

	currency, err := GetSimpleText(a.reader, "Which currency?", a.out)
	if err != nil {
		a.log.Error(ctx, "reading currency", "error", err)
		return
	}

	amount, err := GetSimpleText(a.reader, fmt.Sprintf("Amount in %s", currency), a.out)
	if err != nil {
		a.log.Error(ctx, "reading amount", "error", err)
		return
	}

	f := topUpForm()
	f.Set("provider", provider)
	f.Set("currency", currency)
	f.Set("amount", amount)

	outcome := f.Submit(ctx, func(ctx context.Context, fields form.Fields) (any, error) {
		amountMinor, err := money.ParseMinor(fields["amount"])
		if err != nil {
			return nil, err
		}
		return a.wallet.TopUp(ctx, amountMinor, fields["currency"], fields["provider"])
	})

	if outcome.Status != form.StatusSucceeded {
		a.navigate(ctx, nav.Resolve(outcome, nav.RouteStay, "Top-up failed. Try again!"))
		return
	}

	intent, ok := outcome.Payload.(*models.TopUpIntent)
	if !ok || intent == nil {
		fmt.Fprintln(a.out, "Top-up failed. Try again!")
		return
	}

	switch provider {
	case "stripe":
		fmt.Fprintln(a.out, "Finish your top-up in the browser:")
		fmt.Fprintln(a.out, intent.SessionURL)
	case "paypal":
		a.capturePayPal(ctx, intent)
	}
}

// capturePayPal completes a paypal top-up after the user approves the order.
// Any capture failure lands as an inline message on this screen; only a
// completed capture navigates away.
func (a *App) capturePayPal(ctx context.Context, intent *models.TopUpIntent) {

	fmt.Fprintf(a.out, "Approve PayPal order %s, then come back here.\n", intent.PaymentID)
	orderID, err := GetSimpleText(a.reader, "Enter the approved order id (Enter to cancel)", a.out)
	if err != nil {
		a.log.Error(ctx, "reading order id", "error", err)
		return
	}
	if orderID == "" {
		fmt.Fprintln(a.out, "Top-up left pending. Your wallet is unchanged.")
		return
	}

	f := form.New(
		form.Rule{Field: "order_id", Tag: "required", Message: "The order id is required"},
	)
	f.Set("order_id", orderID)

	outcome := f.Submit(ctx, func(ctx context.Context, fields form.Fields) (any, error) {
		return a.wallet.CapturePayPal(ctx, fields["order_id"], intent.TransactionID)
	})

	if outcome.Status == form.StatusSucceeded {
		res, _ := outcome.Payload.(*models.CaptureResult)
		if res != nil && res.Status != "completed" {
			msg := res.ErrorMessage
			if msg == "" {
				msg = "the provider declined the payment"
			}
			fmt.Fprintf(a.out, "Payment could not be completed: %s\n", msg)
			return
		}
		fmt.Fprintln(a.out, "Top-up complete!")
	}
	a.navigate(ctx, nav.Resolve(outcome, nav.RouteSuccess, "Payment could not be completed. Try again!"))
}
