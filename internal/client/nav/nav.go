// Package nav decides where the user lands after a form outcome. Screens
// only report outcomes; nothing else in the app picks destinations.
package nav

import (
	"errors"

	"github.com/payego/payego-cli/internal/client/api"
	"github.com/payego/payego-cli/internal/client/form"
)

type Route string

const (
	// RouteStay keeps the user on the current screen (inline message or
	// in-place rendering of fetched data).
	RouteStay Route = "stay"

	RouteLogin     Route = "login"
	RouteDashboard Route = "dashboard"
	RouteBanks     Route = "banks"
	RouteAddBank   Route = "add-bank"
	RouteSuccess   Route = "success"
)

// Destination is the resolved landing spot for an outcome.
type Destination struct {
	Route Route

	// ClearSession is set when the credential must be wiped before
	// redirecting (no session / session expired).
	ClearSession bool

	// Inline is the message to show when staying on the current screen.
	Inline string
}

// Resolve maps an outcome to a destination:
//
//	no session / session expired -> login, session cleared
//	validation failure           -> stay, inline rule message
//	success (mutating action)    -> onSuccess, per action
//	success (read fetch)         -> pass RouteStay as onSuccess
//	request failed / unreachable -> stay, server message or fallback
func Resolve(o form.Outcome, onSuccess Route, fallback string) Destination {
	switch {
	case o.Status == form.StatusSucceeded:
		return Destination{Route: onSuccess}

	case o.Err == nil:
		// local validation failure; never a navigation event
		return Destination{Route: RouteStay, Inline: o.Message}

	case errors.Is(o.Err, api.ErrNoSession), errors.Is(o.Err, api.ErrSessionExpired):
		return Destination{Route: RouteLogin, ClearSession: true}

	case errors.Is(o.Err, api.ErrUnavailable):
		return Destination{Route: RouteStay, Inline: "Can't reach Payego right now. Check your connection and try again."}

	default:
		return Destination{Route: RouteStay, Inline: api.Message(o.Err, fallback)}
	}
}
