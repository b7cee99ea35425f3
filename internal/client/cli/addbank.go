package cli

import (
	"context"
	"fmt"

	"github.com/payego/payego-cli/internal/client/form"
	"github.com/payego/payego-cli/internal/client/models"
	"github.com/payego/payego-cli/internal/client/nav"
)

func addBankForm() *form.Form {
	return form.New(
		form.Rule{Field: "bank_code", Tag: "required", Message: "Pick a bank first"},
		form.Rule{Field: "account_number", Tag: "required,len=10,numeric", Message: "Account number needs 10 digits. No funny business!"},
	)
}

// AddBank links a bank account: pick a bank from the public directory, enter
// the account number, and let the server verify it.
func (a *App) AddBank(ctx context.Context) {

	banks, err := a.wallet.Banks(ctx)
	if err != nil {
		a.navigate(ctx, nav.Resolve(form.Outcome{Status: form.StatusFailed, Err: err},
			nav.RouteStay, "Couldn't load the bank list. Try again!"))
		return
	}
	if len(banks) == 0 {
		fmt.Fprintln(a.out, "No banks available right now. Try again later.")
		return
	}

	bank, ok := a.pickBank(ctx, banks)
	if !ok {
		return
	}

	accountNumber, err := GetSimpleText(a.reader, "Enter the 10-digit account number", a.out)
	if err != nil {
		a.log.Error(ctx, "reading account number", "error", err)
		return
	}

	f := addBankForm()
	f.Set("bank_code", bank.Code)
	f.Set("account_number", accountNumber)

	outcome := f.Submit(ctx, func(ctx context.Context, fields form.Fields) (any, error) {
		return nil, a.wallet.AddBank(ctx, fields["account_number"], fields["bank_code"], bank.Name)
	})

	if outcome.Status == form.StatusSucceeded {
		fmt.Fprintf(a.out, "%s account linked.\n", bank.Name)
	}
	a.navigate(ctx, nav.Resolve(outcome, nav.RouteBanks, "Couldn't link that account. Try again!"))
}

// pickBank shows a numbered bank list and returns the chosen entry.
func (a *App) pickBank(ctx context.Context, banks []models.Bank) (models.Bank, bool) {
	for i, b := range banks {
		fmt.Fprintf(a.out, "  %d. %s\n", i+1, b.Name)
	}

	choice, err := GetSimpleText(a.reader, "Pick a bank by number", a.out)
	if err != nil {
		a.log.Error(ctx, "reading bank choice", "error", err)
		return models.Bank{}, false
	}

	bank, ok := pickByNumber(banks, choice)
	if !ok {
		fmt.Fprintln(a.out, "That's not one of the listed banks.")
		return models.Bank{}, false
	}
	return bank, true
}
