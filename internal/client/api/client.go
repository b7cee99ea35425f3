// Package api talks to the Payego wallet API over HTTP/JSON. All schemas are
// owned by the server; this package only attaches the credential, sends JSON
// and sorts failures into the shared error taxonomy.
package api

import (
	"context"

	"github.com/payego/payego-cli/internal/client/models"
)

// Client defines every wallet API operation the app consumes.
//
// Authenticated operations fail with ErrNoSession before any network call
// when no token is stored, and with ErrSessionExpired (after clearing the
// session) when the server answers 401. Monetary amounts are passed in
// integer minor units.
type Client interface {
	// Session creation (unauthenticated).
	Login(ctx context.Context, email, password string) (token string, err error)
	SocialLogin(ctx context.Context, provider, idToken string) (token string, err error)
	Register(ctx context.Context, email, password, username string) (token string, err error)
	VerifyEmail(ctx context.Context, email, code string) error
	SendVerification(ctx context.Context, email string) error
	ForgotPassword(ctx context.Context, email string) error
	ResetPassword(ctx context.Context, email, resetToken, newPassword string) error

	// Account reads.
	CurrentUser(ctx context.Context) (*models.User, error)
	Wallets(ctx context.Context) ([]models.Wallet, error)
	Transactions(ctx context.Context) ([]models.Transaction, error)
	Transaction(ctx context.Context, id string) (*models.Transaction, error)

	// Bank linking. Banks and ResolveAccount are public lookups.
	Banks(ctx context.Context) ([]models.Bank, error)
	ResolveAccount(ctx context.Context, bankCode, accountNumber string) (accountName string, err error)
	BankAccounts(ctx context.Context) ([]models.BankAccount, error)
	AddBank(ctx context.Context, accountNumber, bankCode, bankName string) error
	DeleteBank(ctx context.Context, id string) error

	// Money movement.
	TransferInternal(ctx context.Context, amountMinor int64, currency, recipientEmail string) (txID string, err error)
	TransferExternal(ctx context.Context, amountMinor int64, currency, bankCode, accountNumber, accountName string) (txID string, err error)
	Withdraw(ctx context.Context, amountMinor int64, currency, bankID string) (txID string, err error)
	Convert(ctx context.Context, amountMinor int64, fromCurrency, toCurrency string) (*models.Conversion, error)
	TopUp(ctx context.Context, amountMinor int64, currency, provider string) (*models.TopUpIntent, error)
	CapturePayPal(ctx context.Context, orderID, transactionID string) (*models.CaptureResult, error)

	Logout(ctx context.Context) error
}
