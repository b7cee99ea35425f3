package services

import (
	"context"
	"sync"

	"github.com/payego/payego-cli/internal/client/models"
	"github.com/payego/payego-cli/internal/client/repositories/snapshots"
)

// ---- fake API client ----

// fakeClient implements api.Client for service unit tests.
type fakeClient struct {
	LoginToken string
	LoginErr   error
	LastLogin  struct{ Email, Password string }

	RegisterToken string
	RegisterErr   error

	SocialToken string
	SocialErr   error

	VerifyErr error
	SendErr   error
	ForgotErr error
	ResetErr  error
	LogoutErr error

	UserRet *models.User
	UserErr error

	WalletsRet []models.Wallet
	WalletsErr error

	TxsRet []models.Transaction
	TxsErr error

	TxRet *models.Transaction
	TxErr error

	BanksRet []models.Bank
	BanksErr error

	AccountsRet []models.BankAccount
	AccountsErr error

	AddBankErr    error
	DeleteBankErr error

	ResolveRet string
	ResolveErr error

	TransferID  string
	TransferErr error

	WithdrawID  string
	WithdrawErr error

	ConvertRet *models.Conversion
	ConvertErr error

	TopUpRet *models.TopUpIntent
	TopUpErr error

	CaptureRet *models.CaptureResult
	CaptureErr error

	Calls []string
}

func (f *fakeClient) record(name string) { f.Calls = append(f.Calls, name) }

func (f *fakeClient) Login(ctx context.Context, email, password string) (string, error) {
	f.record("login")
	f.LastLogin.Email, f.LastLogin.Password = email, password
	return f.LoginToken, f.LoginErr
}

func (f *fakeClient) SocialLogin(ctx context.Context, provider, idToken string) (string, error) {
	f.record("social_login")
	return f.SocialToken, f.SocialErr
}

func (f *fakeClient) Register(ctx context.Context, email, password, username string) (string, error) {
	f.record("register")
	return f.RegisterToken, f.RegisterErr
}

func (f *fakeClient) VerifyEmail(ctx context.Context, email, code string) error {
	f.record("verify_email")
	return f.VerifyErr
}

func (f *fakeClient) SendVerification(ctx context.Context, email string) error {
	f.record("send_verification")
	return f.SendErr
}

func (f *fakeClient) ForgotPassword(ctx context.Context, email string) error {
	f.record("forgot_password")
	return f.ForgotErr
}

func (f *fakeClient) ResetPassword(ctx context.Context, email, resetToken, newPassword string) error {
	f.record("reset_password")
	return f.ResetErr
}

func (f *fakeClient) CurrentUser(ctx context.Context) (*models.User, error) {
	f.record("current_user")
	return f.UserRet, f.UserErr
}

func (f *fakeClient) Wallets(ctx context.Context) ([]models.Wallet, error) {
	f.record("wallets")
	return f.WalletsRet, f.WalletsErr
}

func (f *fakeClient) Transactions(ctx context.Context) ([]models.Transaction, error) {
	f.record("transactions")
	return f.TxsRet, f.TxsErr
}

func (f *fakeClient) Transaction(ctx context.Context, id string) (*models.Transaction, error) {
	f.record("transaction")
	return f.TxRet, f.TxErr
}

func (f *fakeClient) Banks(ctx context.Context) ([]models.Bank, error) {
	f.record("banks")
	return f.BanksRet, f.BanksErr
}

func (f *fakeClient) ResolveAccount(ctx context.Context, bankCode, accountNumber string) (string, error) {
	f.record("resolve_account")
	return f.ResolveRet, f.ResolveErr
}

func (f *fakeClient) BankAccounts(ctx context.Context) ([]models.BankAccount, error) {
	f.record("bank_accounts")
	return f.AccountsRet, f.AccountsErr
}

func (f *fakeClient) AddBank(ctx context.Context, accountNumber, bankCode, bankName string) error {
	f.record("add_bank")
	return f.AddBankErr
}

func (f *fakeClient) DeleteBank(ctx context.Context, id string) error {
	f.record("delete_bank")
	return f.DeleteBankErr
}

func (f *fakeClient) TransferInternal(ctx context.Context, amountMinor int64, currency, recipientEmail string) (string, error) {
	f.record("transfer_internal")
	return f.TransferID, f.TransferErr
}

func (f *fakeClient) TransferExternal(ctx context.Context, amountMinor int64, currency, bankCode, accountNumber, accountName string) (string, error) {
	f.record("transfer_external")
	return f.TransferID, f.TransferErr
}

func (f *fakeClient) Withdraw(ctx context.Context, amountMinor int64, currency, bankID string) (string, error) {
	f.record("withdraw")
	return f.WithdrawID, f.WithdrawErr
}

func (f *fakeClient) Convert(ctx context.Context, amountMinor int64, fromCurrency, toCurrency string) (*models.Conversion, error) {
	f.record("convert")
	return f.ConvertRet, f.ConvertErr
}

func (f *fakeClient) TopUp(ctx context.Context, amountMinor int64, currency, provider string) (*models.TopUpIntent, error) {
	f.record("top_up")
	return f.TopUpRet, f.TopUpErr
}

func (f *fakeClient) CapturePayPal(ctx context.Context, orderID, transactionID string) (*models.CaptureResult, error) {
	f.record("capture")
	return f.CaptureRet, f.CaptureErr
}

func (f *fakeClient) Logout(ctx context.Context) error {
	f.record("logout")
	return f.LogoutErr
}

// ---- fake snapshot repository ----

type memCache struct {
	mu    sync.Mutex
	items map[snapshots.Kind]*snapshots.Snapshot
}

func newMemCache() *memCache {
	return &memCache{items: map[snapshots.Kind]*snapshots.Snapshot{}}
}

func (m *memCache) Get(ctx context.Context, kind snapshots.Kind) (*snapshots.Snapshot, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.items[kind], nil
}

func (m *memCache) Put(ctx context.Context, kind snapshots.Kind, payload []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.items[kind] = &snapshots.Snapshot{Kind: kind, Payload: payload}
	return nil
}

func (m *memCache) MarkStale(ctx context.Context, kinds ...snapshots.Kind) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, kind := range kinds {
		if s, ok := m.items[kind]; ok {
			s.Stale = true
		}
	}
	return nil
}

func (m *memCache) Clear(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.items = map[snapshots.Kind]*snapshots.Snapshot{}
	return nil
}
