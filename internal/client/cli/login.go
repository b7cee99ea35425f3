package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/payego/payego-cli/internal/client/api"
	"github.com/payego/payego-cli/internal/client/form"
	"github.com/payego/payego-cli/internal/client/nav"
)

func loginForm() *form.Form {
	return form.New(
		form.Rule{Field: "email", Tag: "required", Message: "Email/password missing. Don't ghost us!"},
		form.Rule{Field: "password", Tag: "required", Message: "Email/password missing. Don't ghost us!"},
		form.Rule{Field: "email", Tag: "email", Message: "Email's wonky. Try a real one!"},
	)
}

func (a *App) Login(ctx context.Context) {

	email, err := GetSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		a.log.Error(ctx, "reading email", "error", err)
		return
	}

	password, err := GetPassword("Enter password", a.out)
	if err != nil {
		a.log.Error(ctx, "reading password", "error", err)
		return
	}
	defer wipe(password)

	remember, err := Confirm(a.reader, "Stay signed in on this machine?", a.out)
	if err != nil {
		a.log.Error(ctx, "reading remember choice", "error", err)
		return
	}

	f := loginForm()
	f.Set("email", email)
	f.Set("password", string(password))

	outcome := f.Submit(ctx, func(ctx context.Context, fields form.Fields) (any, error) {
		return nil, a.auth.Login(ctx, fields["email"], fields["password"], remember)
	})

	// wrong credentials get the friendlier wording
	var reqErr *api.RequestError
	if errors.As(outcome.Err, &reqErr) && reqErr.Message == "Invalid credentials" {
		fmt.Fprintln(a.out, "Oops, wrong keys to the Payego castle!")
		return
	}

	a.navigate(ctx, nav.Resolve(outcome, nav.RouteDashboard, "Login crashed. Try again!"))
}

func (a *App) Logout(ctx context.Context) {
	if err := a.auth.Logout(ctx); err != nil {
		fmt.Fprintln(a.out, api.Message(err, "Logout hit a snag, but your local session is gone."))
		return
	}
	fmt.Fprintln(a.out, "Logged out. See you soon!")
}
