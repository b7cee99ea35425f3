package cli

import (
	"context"
	"fmt"
	"strconv"

	"github.com/payego/payego-cli/internal/client/form"
	"github.com/payego/payego-cli/internal/client/models"
	"github.com/payego/payego-cli/internal/client/nav"
	"github.com/payego/payego-cli/internal/money"
)

// Withdraw moves money from a wallet to one of the user's linked bank
// accounts. The ceiling depends on the currency.
func (a *App) Withdraw(ctx context.Context) {

	wallet, ok := a.pickWallet(ctx, "Which currency are you withdrawing?")
	if !ok {
		return
	}

	accounts, err := a.wallet.BankAccounts(ctx)
	if err != nil {
		a.navigate(ctx, nav.Resolve(form.Outcome{Status: form.StatusFailed, Err: err},
			nav.RouteStay, "Couldn't load your bank accounts. Try again!"))
		return
	}
	if len(accounts) == 0 {
		fmt.Fprintln(a.out, "Link a bank account first ('addbank').")
		return
	}

	fmt.Fprintln(a.out, "Withdraw to:")
	for i, acc := range accounts {
		fmt.Fprintf(a.out, "  %d. %s %s\n", i+1, acc.BankName, acc.AccountNumber)
	}
	choice, err := GetSimpleText(a.reader, "Pick an account by number", a.out)
	if err != nil {
		a.log.Error(ctx, "reading account choice", "error", err)
		return
	}
	account, ok := pickByNumber(accounts, choice)
	if !ok {
		fmt.Fprintln(a.out, "That's not one of your accounts.")
		return
	}

	amount, err := GetSimpleText(a.reader, fmt.Sprintf("Amount in %s", wallet.Currency), a.out)
	if err != nil {
		a.log.Error(ctx, "reading amount", "error", err)
		return
	}

	ceiling := models.WithdrawCeilingMinor(wallet.Currency)
	f := form.New(
		form.AmountBetween("amount", 100, ceiling,
			fmt.Sprintf("Amount must be between 1 and %s %s", money.FormatMinor(ceiling), wallet.Currency)),
		form.WithinBalance("amount", wallet.Balance, wallet.Currency),
	)
	f.Set("amount", amount)

	outcome := f.Submit(ctx, func(ctx context.Context, fields form.Fields) (any, error) {
		amountMinor, err := money.ParseMinor(fields["amount"])
		if err != nil {
			return nil, err
		}
		return a.wallet.Withdraw(ctx, amountMinor, wallet.Currency, account.ID)
	})

	if outcome.Status == form.StatusSucceeded {
		fmt.Fprintf(a.out, "Withdrawal on its way to %s! Transaction %v\n", account.BankName, outcome.Payload)
	}
	a.navigate(ctx, nav.Resolve(outcome, nav.RouteDashboard, "Withdrawal failed. Try again!"))
}

// pickByNumber resolves a 1-based menu choice.
func pickByNumber[T any](items []T, choice string) (T, bool) {
	var zero T
	n, err := strconv.Atoi(choice)
	if err != nil || n < 1 || n > len(items) {
		return zero, false
	}
	return items[n-1], true
}
