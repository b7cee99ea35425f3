package cli

import (
	"bufio"
	"bytes"
	"context"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/payego/payego-cli/internal/client/models"
	"github.com/payego/payego-cli/internal/client/services"
	"github.com/payego/payego-cli/internal/client/session"
	"github.com/payego/payego-cli/internal/logging"
)

// newTestApp builds an App whose reader is fed from input and whose output
// is captured in the returned buffer.
func newTestApp(t *testing.T, input string, auth services.AuthService, wallet services.WalletService) (*App, *bytes.Buffer) {
	t.Helper()
	out := &bytes.Buffer{}
	return &App{
		auth:    auth,
		wallet:  wallet,
		session: session.NewStore(t.TempDir()),
		reader:  bufio.NewReader(strings.NewReader(input)),
		out:     out,
		log:     logging.NewSlogLogger(slog.New(slog.NewTextHandler(io.Discard, nil))),
	}, out
}

type fakeAuth struct {
	LoginErr    error
	RegisterErr error
	VerifyErr   error
	LogoutErr   error
	loggedIn    bool

	LastLogin struct {
		Email, Password string
		Remember        bool
	}
}

func (f *fakeAuth) Login(ctx context.Context, email, password string, remember bool) error {
	f.LastLogin.Email, f.LastLogin.Password, f.LastLogin.Remember = email, password, remember
	if f.LoginErr == nil {
		f.loggedIn = true
	}
	return f.LoginErr
}

func (f *fakeAuth) SocialLogin(ctx context.Context, provider, idToken string, remember bool) error {
	return nil
}

func (f *fakeAuth) Register(ctx context.Context, email, password, username string) error {
	return f.RegisterErr
}

func (f *fakeAuth) VerifyEmail(ctx context.Context, email, code string) error { return f.VerifyErr }
func (f *fakeAuth) ResendVerification(ctx context.Context, email string) error {
	return nil
}
func (f *fakeAuth) RequestPasswordReset(ctx context.Context, email string) error { return nil }
func (f *fakeAuth) CompletePasswordReset(ctx context.Context, email, resetToken, newPassword string) error {
	return nil
}
func (f *fakeAuth) Logout(ctx context.Context) error {
	f.loggedIn = false
	return f.LogoutErr
}
func (f *fakeAuth) LoggedIn() bool { return f.loggedIn }

type fakeWallet struct {
	UserRet *models.User
	UserErr error

	WalletsRet []models.Wallet
	WalletsErr error

	TxsRet       []models.Transaction
	TxsFromCache bool
	TxsErr       error

	BanksRet    []models.Bank
	AccountsRet []models.BankAccount

	AddBankErr    error
	DeleteBankErr error

	ResolveRet string
	ResolveErr error

	TransferID  string
	TransferErr error
	WithdrawID  string
	ConvertRet  *models.Conversion
	TopUpRet    *models.TopUpIntent
	TopUpErr    error
	CaptureRet  *models.CaptureResult

	Calls []string
}

func (f *fakeWallet) record(name string) { f.Calls = append(f.Calls, name) }

func (f *fakeWallet) CurrentUser(ctx context.Context) (*models.User, error) {
	f.record("current_user")
	return f.UserRet, f.UserErr
}

func (f *fakeWallet) Wallets(ctx context.Context) ([]models.Wallet, error) {
	f.record("wallets")
	return f.WalletsRet, f.WalletsErr
}

func (f *fakeWallet) Transactions(ctx context.Context) ([]models.Transaction, bool, error) {
	f.record("transactions")
	return f.TxsRet, f.TxsFromCache, f.TxsErr
}

func (f *fakeWallet) Transaction(ctx context.Context, id string) (*models.Transaction, error) {
	f.record("transaction")
	return nil, nil
}

func (f *fakeWallet) Banks(ctx context.Context) ([]models.Bank, error) {
	f.record("banks")
	return f.BanksRet, nil
}

func (f *fakeWallet) BankAccounts(ctx context.Context) ([]models.BankAccount, error) {
	f.record("bank_accounts")
	return f.AccountsRet, nil
}

func (f *fakeWallet) AddBank(ctx context.Context, accountNumber, bankCode, bankName string) error {
	f.record("add_bank")
	return f.AddBankErr
}

func (f *fakeWallet) DeleteBank(ctx context.Context, id string) error {
	f.record("delete_bank")
	return f.DeleteBankErr
}

func (f *fakeWallet) ResolveAccount(ctx context.Context, bankCode, accountNumber string) (string, error) {
	f.record("resolve_account")
	return f.ResolveRet, f.ResolveErr
}

func (f *fakeWallet) TransferInternal(ctx context.Context, amountMinor int64, currency, recipientEmail string) (string, error) {
	f.record("transfer_internal")
	return f.TransferID, f.TransferErr
}

func (f *fakeWallet) TransferExternal(ctx context.Context, amountMinor int64, currency, bankCode, accountNumber, accountName string) (string, error) {
	f.record("transfer_external")
	return f.TransferID, f.TransferErr
}

func (f *fakeWallet) Withdraw(ctx context.Context, amountMinor int64, currency, bankID string) (string, error) {
	f.record("withdraw")
	return f.WithdrawID, nil
}

func (f *fakeWallet) Convert(ctx context.Context, amountMinor int64, fromCurrency, toCurrency string) (*models.Conversion, error) {
	f.record("convert")
	return f.ConvertRet, nil
}

func (f *fakeWallet) TopUp(ctx context.Context, amountMinor int64, currency, provider string) (*models.TopUpIntent, error) {
	f.record("top_up")
	return f.TopUpRet, f.TopUpErr
}

func (f *fakeWallet) CapturePayPal(ctx context.Context, orderID, transactionID string) (*models.CaptureResult, error) {
	f.record("capture")
	return f.CaptureRet, nil
}
