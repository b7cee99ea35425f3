package cli

import (
	"context"
	"fmt"

	"github.com/payego/payego-cli/internal/client/form"
	"github.com/payego/payego-cli/internal/client/nav"
)

// ForgotPassword requests a reset email. The server answers the same way
// whether or not the address exists, and so do we.
func (a *App) ForgotPassword(ctx context.Context) {

	email, err := GetSimpleText(a.reader, "Enter your account email", a.out)
	if err != nil {
		a.log.Error(ctx, "reading email", "error", err)
		return
	}

	f := form.New(
		form.Rule{Field: "email", Tag: "required,email", Message: "Email's wonky. Try a real one!"},
	)
	f.Set("email", email)

	outcome := f.Submit(ctx, func(ctx context.Context, fields form.Fields) (any, error) {
		return nil, a.auth.RequestPasswordReset(ctx, fields["email"])
	})

	if outcome.Status == form.StatusSucceeded {
		fmt.Fprintln(a.out, "If that address is registered, a reset link is in its inbox.")
		return
	}
	a.navigate(ctx, nav.Resolve(outcome, nav.RouteStay, "Couldn't request a reset. Try again!"))
}

// ResetPassword completes the flow with the token from the reset email.
func (a *App) ResetPassword(ctx context.Context) {

	email, err := GetSimpleText(a.reader, "Enter your account email", a.out)
	if err != nil {
		a.log.Error(ctx, "reading email", "error", err)
		return
	}

	token, err := GetSimpleText(a.reader, "Enter the reset token from the email", a.out)
	if err != nil {
		a.log.Error(ctx, "reading reset token", "error", err)
		return
	}

	password, err := GetPassword("New password", a.out)
	if err != nil {
		a.log.Error(ctx, "reading password", "error", err)
		return
	}
	defer wipe(password)

	confirmPw, err := GetPassword("Repeat new password", a.out)
	if err != nil {
		a.log.Error(ctx, "reading password confirmation", "error", err)
		return
	}
	defer wipe(confirmPw)

	f := form.New(
		form.Rule{Field: "email", Tag: "required,email", Message: "Email's wonky. Try a real one!"},
		form.Rule{Field: "token", Tag: "required", Message: "The reset token is required"},
		form.Rule{Field: "password", Tag: "required,min=8", Message: "Password needs at least 8 characters"},
		form.Rule{Field: "confirm", Tag: "eqfield", Other: "password", Message: "Passwords do not match"},
	)
	f.Set("email", email)
	f.Set("token", token)
	f.Set("password", string(password))
	f.Set("confirm", string(confirmPw))

	outcome := f.Submit(ctx, func(ctx context.Context, fields form.Fields) (any, error) {
		return nil, a.auth.CompletePasswordReset(ctx, fields["email"], fields["token"], fields["password"])
	})

	if outcome.Status == form.StatusSucceeded {
		fmt.Fprintln(a.out, "Password updated. Log in with the new one.")
		return
	}
	a.navigate(ctx, nav.Resolve(outcome, nav.RouteStay, "Reset failed. Try again!"))
}
