package cli

import (
	"context"
	"fmt"

	"github.com/payego/payego-cli/internal/client/api"
	"github.com/payego/payego-cli/internal/client/form"
	"github.com/payego/payego-cli/internal/client/nav"
)

func registerForm() *form.Form {
	return form.New(
		form.Rule{Field: "email", Tag: "required", Message: "Email is required"},
		form.Rule{Field: "email", Tag: "email", Message: "Email's wonky. Try a real one!"},
		form.Rule{Field: "password", Tag: "required,min=8", Message: "Password needs at least 8 characters"},
		form.Rule{Field: "confirm", Tag: "eqfield", Other: "password", Message: "Passwords do not match"},
		form.Rule{Field: "username", Tag: "omitempty,min=3,max=50", Message: "Username must be 3-50 characters"},
	)
}

func (a *App) Register(ctx context.Context) {

	email, err := GetSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		a.log.Error(ctx, "reading email", "error", err)
		return
	}

	username, err := GetSimpleText(a.reader, "Pick a username (optional, Enter to skip)", a.out)
	if err != nil {
		a.log.Error(ctx, "reading username", "error", err)
		return
	}

	password, err := GetPassword("Enter password", a.out)
	if err != nil {
		a.log.Error(ctx, "reading password", "error", err)
		return
	}
	defer wipe(password)

	confirmPw, err := GetPassword("Repeat password", a.out)
	if err != nil {
		a.log.Error(ctx, "reading password confirmation", "error", err)
		return
	}
	defer wipe(confirmPw)

	f := registerForm()
	f.Set("email", email)
	f.Set("username", username)
	f.Set("password", string(password))
	f.Set("confirm", string(confirmPw))

	outcome := f.Submit(ctx, func(ctx context.Context, fields form.Fields) (any, error) {
		return nil, a.auth.Register(ctx, fields["email"], fields["password"], fields["username"])
	})

	if outcome.Status != form.StatusSucceeded {
		a.navigate(ctx, nav.Resolve(outcome, nav.RouteStay, "Registration failed. Try again!"))
		return
	}

	fmt.Fprintln(a.out, "Account created! We've emailed you a verification code.")
	a.verifyEmail(ctx, email)
}

// verifyEmail loops until the account is verified or the user gives up.
// "resend" requests a fresh code, an empty line skips for now.
func (a *App) verifyEmail(ctx context.Context, email string) {
	for {
		code, err := GetSimpleText(a.reader, "Enter verification code ('resend' for a new one, Enter to skip)", a.out)
		if err != nil {
			a.log.Error(ctx, "reading verification code", "error", err)
			return
		}

		switch code {
		case "":
			fmt.Fprintln(a.out, "You can verify later; some features stay locked until you do.")
			return
		case "resend":
			if err := a.auth.ResendVerification(ctx, email); err != nil {
				fmt.Fprintln(a.out, api.Message(err, "Couldn't resend the code. Try again."))
				continue
			}
			fmt.Fprintln(a.out, "A fresh code is on its way.")
			continue
		}

		if err := a.auth.VerifyEmail(ctx, email, code); err != nil {
			fmt.Fprintln(a.out, api.Message(err, "That code didn't work. Try again."))
			continue
		}

		fmt.Fprintln(a.out, "Email verified. Welcome to Payego!")
		a.Dashboard(ctx)
		return
	}
}
