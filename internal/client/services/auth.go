// Package services contains application services for the Payego CLI: the
// authentication flows and the wallet operations, glued to the API client,
// the session store and the local snapshot cache.
package services

import (
	"context"

	"github.com/payego/payego-cli/internal/client/api"
	"github.com/payego/payego-cli/internal/client/repositories/snapshots"
	"github.com/payego/payego-cli/internal/client/session"
	"github.com/payego/payego-cli/internal/logging"
)

// AuthService drives session lifecycle for the CLI.
//
// Contract:
//   - Login/SocialLogin: create a session; remember picks the durable tier.
//   - Register: create an account; the fresh token is stored durably, the
//     account still needs email verification before first use.
//   - Logout: best-effort server call, then wipe the session and the local
//     snapshot cache unconditionally.
type AuthService interface {
	Login(ctx context.Context, email, password string, remember bool) error
	SocialLogin(ctx context.Context, provider, idToken string, remember bool) error
	Register(ctx context.Context, email, password, username string) error
	VerifyEmail(ctx context.Context, email, code string) error
	ResendVerification(ctx context.Context, email string) error
	RequestPasswordReset(ctx context.Context, email string) error
	CompletePasswordReset(ctx context.Context, email, resetToken, newPassword string) error
	Logout(ctx context.Context) error
	LoggedIn() bool
}

type authService struct {
	client  api.Client
	session session.Store
	cache   snapshots.Repository
	log     logging.Logger
}

func NewAuthService(client api.Client, store session.Store, cache snapshots.Repository, log logging.Logger) AuthService {
	return &authService{client: client, session: store, cache: cache, log: log}
}

func (a *authService) Login(ctx context.Context, email, password string, remember bool) error {
	token, err := a.client.Login(ctx, email, password)
	if err != nil {
		return err
	}
	return a.session.Set(token, remember)
}

func (a *authService) SocialLogin(ctx context.Context, provider, idToken string, remember bool) error {
	token, err := a.client.SocialLogin(ctx, provider, idToken)
	if err != nil {
		return err
	}
	return a.session.Set(token, remember)
}

func (a *authService) Register(ctx context.Context, email, password, username string) error {
	token, err := a.client.Register(ctx, email, password, username)
	if err != nil {
		return err
	}
	return a.session.Set(token, true)
}

func (a *authService) VerifyEmail(ctx context.Context, email, code string) error {
	return a.client.VerifyEmail(ctx, email, code)
}

func (a *authService) ResendVerification(ctx context.Context, email string) error {
	return a.client.SendVerification(ctx, email)
}

func (a *authService) RequestPasswordReset(ctx context.Context, email string) error {
	return a.client.ForgotPassword(ctx, email)
}

func (a *authService) CompletePasswordReset(ctx context.Context, email, resetToken, newPassword string) error {
	return a.client.ResetPassword(ctx, email, resetToken, newPassword)
}

// Logout tells the server, then wipes local state. The local wipe happens
// even when the server call fails: the user asked to be logged out.
func (a *authService) Logout(ctx context.Context) error {
	if err := a.client.Logout(ctx); err != nil {
		a.log.Warn(ctx, "server logout failed, clearing local session anyway", "error", err)
	}
	if err := a.cache.Clear(ctx); err != nil {
		a.log.Warn(ctx, "clearing snapshot cache", "error", err)
	}
	return a.session.Clear()
}

func (a *authService) LoggedIn() bool {
	return a.session.Token() != ""
}
