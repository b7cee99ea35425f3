package cli

import (
	"context"
	"fmt"

	"github.com/payego/payego-cli/internal/client/form"
	"github.com/payego/payego-cli/internal/client/nav"
)

// Banks lists the user's linked bank accounts.
func (a *App) Banks(ctx context.Context) {

	accounts, err := a.wallet.BankAccounts(ctx)
	if err != nil {
		a.navigate(ctx, nav.Resolve(form.Outcome{Status: form.StatusFailed, Err: err},
			nav.RouteStay, "Couldn't load your bank accounts. Try again!"))
		return
	}

	if len(accounts) == 0 {
		fmt.Fprintln(a.out, "No bank accounts linked yet. Use 'addbank' to link one.")
		return
	}

	fmt.Fprintln(a.out, "Linked bank accounts:")
	for _, acc := range accounts {
		fmt.Fprintf(a.out, "  %s  %s  %s", acc.ID, acc.BankName, acc.AccountNumber)
		if acc.AccountName != "" {
			fmt.Fprintf(a.out, "  (%s)", acc.AccountName)
		}
		fmt.Fprintln(a.out)
	}
}

// RemoveBank unlinks a bank account by id.
func (a *App) RemoveBank(ctx context.Context) {

	id, err := GetSimpleText(a.reader, "Enter the id of the bank account to remove", a.out)
	if err != nil {
		a.log.Error(ctx, "reading bank account id", "error", err)
		return
	}

	f := form.New(
		form.Rule{Field: "id", Tag: "required", Message: "Pick a bank account to remove"},
	)
	f.Set("id", id)

	outcome := f.Submit(ctx, func(ctx context.Context, fields form.Fields) (any, error) {
		return nil, a.wallet.DeleteBank(ctx, fields["id"])
	})

	if outcome.Status == form.StatusSucceeded {
		fmt.Fprintln(a.out, "Bank account removed.")
	}
	a.navigate(ctx, nav.Resolve(outcome, nav.RouteBanks, "Couldn't remove that bank account. Try again!"))
}
