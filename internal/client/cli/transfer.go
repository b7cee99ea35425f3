package cli

import (
	"context"
	"fmt"

	"github.com/payego/payego-cli/internal/client/form"
	"github.com/payego/payego-cli/internal/client/nav"
	"github.com/payego/payego-cli/internal/money"
)

// Transfer sends money to another Payego user (internal) or straight to a
// bank account (external).
func (a *App) Transfer(ctx context.Context) {

	kind, err := GetSimpleText(a.reader, "Transfer type: 'internal' (to a Payego user) or 'external' (to a bank account)", a.out)
	if err != nil {
		a.log.Error(ctx, "reading transfer type", "error", err)
		return
	}

	switch kind {
	case "internal":
		a.transferInternal(ctx)
	case "external":
		a.transferExternal(ctx)
	default:
		fmt.Fprintln(a.out, "Pick 'internal' or 'external'.")
	}
}

func (a *App) transferInternal(ctx context.Context) {

	wallet, ok := a.pickWallet(ctx, "Which currency are you sending?")
	if !ok {
		return
	}

	recipient, err := GetSimpleText(a.reader, "Recipient's Payego email", a.out)
	if err != nil {
		a.log.Error(ctx, "reading recipient", "error", err)
		return
	}

	amount, err := GetSimpleText(a.reader, fmt.Sprintf("Amount in %s", wallet.Currency), a.out)
	if err != nil {
		a.log.Error(ctx, "reading amount", "error", err)
		return
	}

	f := form.New(
		form.Rule{Field: "recipient", Tag: "required,email", Message: "Recipient email's wonky. Try a real one!"},
		form.AmountBetween("amount", 100, 1_000_000, "Amount must be between 1 and 10,000"),
		form.WithinBalance("amount", wallet.Balance, wallet.Currency),
	)
	f.Set("recipient", recipient)
	f.Set("amount", amount)

	outcome := f.Submit(ctx, func(ctx context.Context, fields form.Fields) (any, error) {
		amountMinor, err := money.ParseMinor(fields["amount"])
		if err != nil {
			return nil, err
		}
		return a.wallet.TransferInternal(ctx, amountMinor, wallet.Currency, fields["recipient"])
	})

	if outcome.Status == form.StatusSucceeded {
		fmt.Fprintf(a.out, "Transfer sent! Transaction %v\n", outcome.Payload)
	}
	a.navigate(ctx, nav.Resolve(outcome, nav.RouteDashboard, "Transfer failed. Try again!"))
}

func (a *App) transferExternal(ctx context.Context) {

	wallet, ok := a.pickWallet(ctx, "Which currency are you sending?")
	if !ok {
		return
	}

	banks, err := a.wallet.Banks(ctx)
	if err != nil {
		a.navigate(ctx, nav.Resolve(form.Outcome{Status: form.StatusFailed, Err: err},
			nav.RouteStay, "Couldn't load the bank list. Try again!"))
		return
	}
	bank, ok := a.pickBank(ctx, banks)
	if !ok {
		return
	}

	accountNumber, err := GetSimpleText(a.reader, "Recipient's 10-digit account number", a.out)
	if err != nil {
		a.log.Error(ctx, "reading account number", "error", err)
		return
	}

	// resolve the holder's name before any money moves
	accountName, err := a.wallet.ResolveAccount(ctx, bank.Code, accountNumber)
	if err != nil {
		a.navigate(ctx, nav.Resolve(form.Outcome{Status: form.StatusFailed, Err: err},
			nav.RouteStay, "Couldn't verify that account. Check the number and try again."))
		return
	}

	proceed, err := Confirm(a.reader, fmt.Sprintf("Send to %s at %s?", accountName, bank.Name), a.out)
	if err != nil || !proceed {
		return
	}

	amount, err := GetSimpleText(a.reader, fmt.Sprintf("Amount in %s", wallet.Currency), a.out)
	if err != nil {
		a.log.Error(ctx, "reading amount", "error", err)
		return
	}

	f := form.New(
		form.Rule{Field: "account_number", Tag: "required,len=10,numeric", Message: "Account number needs 10 digits. No funny business!"},
		form.AmountBetween("amount", 100, 1_000_000, "Amount must be between 1 and 10,000"),
		form.WithinBalance("amount", wallet.Balance, wallet.Currency),
	)
	f.Set("account_number", accountNumber)
	f.Set("amount", amount)

	outcome := f.Submit(ctx, func(ctx context.Context, fields form.Fields) (any, error) {
		amountMinor, err := money.ParseMinor(fields["amount"])
		if err != nil {
			return nil, err
		}
		return a.wallet.TransferExternal(ctx, amountMinor, wallet.Currency, bank.Code, fields["account_number"], accountName)
	})

	if outcome.Status == form.StatusSucceeded {
		fmt.Fprintf(a.out, "Transfer sent! Transaction %v\n", outcome.Payload)
	}
	a.navigate(ctx, nav.Resolve(outcome, nav.RouteDashboard, "Transfer failed. Try again!"))
}
