package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/payego/payego-cli/internal/client/form"
	"github.com/payego/payego-cli/internal/client/models"
	"github.com/payego/payego-cli/internal/client/nav"
	"github.com/payego/payego-cli/internal/money"
)

// Dashboard shows who is signed in and the balance of every wallet.
func (a *App) Dashboard(ctx context.Context) {

	user, err := a.wallet.CurrentUser(ctx)
	if err != nil {
		a.navigate(ctx, nav.Resolve(form.Outcome{Status: form.StatusFailed, Err: err},
			nav.RouteStay, "Couldn't load your dashboard. Try again!"))
		return
	}

	name := user.Username
	if name == "" {
		name = user.Email
	}
	fmt.Fprintf(a.out, "Hello, %s!\n", name)

	if len(user.Wallets) == 0 {
		fmt.Fprintln(a.out, "No wallets yet. Top up to open your first one.")
		return
	}

	fmt.Fprintln(a.out, "Wallets:")
	for _, w := range user.Wallets {
		fmt.Fprintf(a.out, "  %s  %s\n", w.Currency, money.FormatMinor(w.Balance))
	}

	// recent activity is best effort; the dashboard renders without it
	txs, _, err := a.wallet.Transactions(ctx)
	if err != nil || len(txs) == 0 {
		return
	}
	if len(txs) > 5 {
		txs = txs[:5]
	}
	fmt.Fprintln(a.out, "Recent transactions:")
	for _, tx := range txs {
		printTransaction(a.out, tx)
	}
}

// Wallets prints the balance of every wallet.
func (a *App) Wallets(ctx context.Context) {
	wallets, err := a.wallet.Wallets(ctx)
	if err != nil {
		a.navigate(ctx, nav.Resolve(form.Outcome{Status: form.StatusFailed, Err: err},
			nav.RouteStay, "Couldn't load your wallets. Try again!"))
		return
	}
	if len(wallets) == 0 {
		fmt.Fprintln(a.out, "No wallets yet. Top up to open your first one.")
		return
	}
	for _, w := range wallets {
		fmt.Fprintf(a.out, "  %s  %s\n", w.Currency, money.FormatMinor(w.Balance))
	}
}

// History lists recent transactions, falling back to the snapshot cache when
// the server is unreachable.
func (a *App) History(ctx context.Context) {

	txs, fromCache, err := a.wallet.Transactions(ctx)
	if err != nil {
		a.navigate(ctx, nav.Resolve(form.Outcome{Status: form.StatusFailed, Err: err},
			nav.RouteStay, "Couldn't load your history. Try again!"))
		return
	}

	if fromCache {
		fmt.Fprintln(a.out, "Payego is unreachable; showing your last synced history.")
	}
	if len(txs) == 0 {
		fmt.Fprintln(a.out, "No transactions yet.")
		return
	}

	for _, tx := range txs {
		printTransaction(a.out, tx)
	}
}

func printTransaction(w io.Writer, tx models.Transaction) {
	line := fmt.Sprintf("  %s  %-10s %s %s", tx.ID, tx.Type, money.FormatMinor(tx.Amount), tx.Currency)
	if tx.Status != "" {
		line += "  [" + tx.Status + "]"
	}
	if !tx.CreatedAt.IsZero() {
		line += "  " + tx.CreatedAt.Format("2006-01-02 15:04")
	}
	fmt.Fprintln(w, line)
}
