package cli

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"
)

func (a *App) getStatus() string {
	if a.isLoggedIn() {
		return "(signed in)"
	}
	return ""
}

// Root runs the REPL until the user exits or stdin closes.
func (a *App) Root(ctx context.Context) {

	fmt.Fprintln(a.out, "Welcome to Payego CLI (type 'help' for commands)")
	scanner := bufio.NewScanner(os.Stdin)

	for {
		fmt.Fprintf(a.out, "payego %s> ", a.getStatus())
		if !scanner.Scan() {
			break
		}
		line := scanner.Text()
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}

		if parts[0] == "exit" || parts[0] == "quit" {
			fmt.Fprintln(a.out, "Bye!")
			return
		}

		a.dispatch(ctx, parts[0])
	}
}

// dispatch runs one command. The recover guard is the error boundary: a screen
// that panics reports the failure and drops back to the prompt with the
// session intact instead of taking the whole client down.
func (a *App) dispatch(ctx context.Context, cmd string) {
	defer func() {
		if r := recover(); r != nil {
			a.log.Error(ctx, "screen failure", "command", cmd, "panic", r)
			fmt.Fprintln(a.out, "Something went sideways rendering that screen. Your session is intact; try again.")
		}
	}()

	switch cmd {
	case "help":
		if a.isLoggedIn() {
			fmt.Fprintln(a.out, "Available commands: dashboard, wallets, history, banks, addbank, removebank, transfer, withdraw, convert, topup, logout, exit")
		} else {
			fmt.Fprintln(a.out, "Available commands: login, register, forgot, reset, exit")
		}

	case "login":
		a.Login(ctx)
	case "register":
		a.Register(ctx)
	case "forgot":
		a.ForgotPassword(ctx)
	case "reset":
		a.ResetPassword(ctx)
	case "dashboard", "d":
		a.Dashboard(ctx)
	case "wallets", "w":
		a.Wallets(ctx)
	case "history", "h":
		a.History(ctx)
	case "banks":
		a.Banks(ctx)
	case "addbank":
		a.AddBank(ctx)
	case "removebank":
		a.RemoveBank(ctx)
	case "transfer":
		a.Transfer(ctx)
	case "withdraw":
		a.Withdraw(ctx)
	case "convert":
		a.Convert(ctx)
	case "topup":
		a.TopUp(ctx)
	case "logout":
		a.Logout(ctx)
	default:
		fmt.Fprintln(a.out, "Unknown command:", cmd)
	}
}
