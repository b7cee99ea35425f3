package cli

import (
	"context"
	"fmt"

	"github.com/payego/payego-cli/internal/client/form"
	"github.com/payego/payego-cli/internal/client/models"
	"github.com/payego/payego-cli/internal/client/nav"
	"github.com/payego/payego-cli/internal/money"
)

// pickWallet fetches the user's wallets, shows their balances and asks for a
// currency. The returned wallet carries the balance snapshot money-movement
// screens validate against.
func (a *App) pickWallet(ctx context.Context, prompt string) (models.Wallet, bool) {

	wallets, err := a.wallet.Wallets(ctx)
	if err != nil {
		a.navigate(ctx, nav.Resolve(form.Outcome{Status: form.StatusFailed, Err: err},
			nav.RouteStay, "Couldn't load your wallets. Try again!"))
		return models.Wallet{}, false
	}
	if len(wallets) == 0 {
		fmt.Fprintln(a.out, "No wallets yet. Top up to open your first one.")
		return models.Wallet{}, false
	}

	for _, w := range wallets {
		fmt.Fprintf(a.out, "  %s  %s\n", w.Currency, money.FormatMinor(w.Balance))
	}

	currency, err := GetSimpleText(a.reader, prompt, a.out)
	if err != nil {
		a.log.Error(ctx, "reading currency", "error", err)
		return models.Wallet{}, false
	}

	for _, w := range wallets {
		if w.Currency == currency {
			return w, true
		}
	}
	fmt.Fprintln(a.out, "You don't have a wallet in that currency.")
	return models.Wallet{}, false
}
