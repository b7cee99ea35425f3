package cli

import (
	"context"
	"fmt"

	"github.com/payego/payego-cli/internal/client/form"
	"github.com/payego/payego-cli/internal/client/models"
	"github.com/payego/payego-cli/internal/client/nav"
	"github.com/payego/payego-cli/internal/money"
)

// Convert exchanges money between two of the user's wallet currencies.
func (a *App) Convert(ctx context.Context) {

	wallet, ok := a.pickWallet(ctx, "Convert from which currency?")
	if !ok {
		return
	}

	to, err := GetSimpleText(a.reader, "Convert to which currency?", a.out)
	if err != nil {
		a.log.Error(ctx, "reading target currency", "error", err)
		return
	}

	amount, err := GetSimpleText(a.reader, fmt.Sprintf("Amount in %s", wallet.Currency), a.out)
	if err != nil {
		a.log.Error(ctx, "reading amount", "error", err)
		return
	}

	f := form.New(
		form.OneOf("to", models.SupportedCurrencies, "That currency isn't supported"),
		form.Rule{Field: "to", Tag: "nefield", Other: "from", Message: "From and to currencies can't be twins!"},
		form.AmountBetween("amount", 1, 1_000_000, "Amount must be between 0.01 and 10,000"),
		form.WithinBalance("amount", wallet.Balance, wallet.Currency),
	)
	f.Set("from", wallet.Currency)
	f.Set("to", to)
	f.Set("amount", amount)

	outcome := f.Submit(ctx, func(ctx context.Context, fields form.Fields) (any, error) {
		amountMinor, err := money.ParseMinor(fields["amount"])
		if err != nil {
			return nil, err
		}
		return a.wallet.Convert(ctx, amountMinor, fields["from"], fields["to"])
	})

	if outcome.Status == form.StatusSucceeded {
		if conv, ok := outcome.Payload.(*models.Conversion); ok {
			fmt.Fprintf(a.out, "Converted! You received %s %s (transaction %s)\n", conv.ConvertedAmount, to, conv.TransactionID)
		}
	}
	a.navigate(ctx, nav.Resolve(outcome, nav.RouteDashboard, "Conversion failed. Try again!"))
}
