package services

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/payego/payego-cli/internal/client/api"
	"github.com/payego/payego-cli/internal/client/models"
	"github.com/payego/payego-cli/internal/client/repositories/snapshots"
	"github.com/payego/payego-cli/internal/logging"
)

// WalletService exposes the wallet operations screens consume. Reads refresh
// the local snapshot cache; every successful mutation marks the affected
// snapshots stale so no screen keeps trusting a pre-mutation mirror.
type WalletService interface {
	CurrentUser(ctx context.Context) (*models.User, error)
	Wallets(ctx context.Context) ([]models.Wallet, error)

	// Transactions reports fromCache=true when the server was unreachable
	// and the listing was served from the local snapshot instead.
	Transactions(ctx context.Context) (txs []models.Transaction, fromCache bool, err error)
	Transaction(ctx context.Context, id string) (*models.Transaction, error)

	Banks(ctx context.Context) ([]models.Bank, error)
	BankAccounts(ctx context.Context) ([]models.BankAccount, error)
	AddBank(ctx context.Context, accountNumber, bankCode, bankName string) error
	DeleteBank(ctx context.Context, id string) error
	ResolveAccount(ctx context.Context, bankCode, accountNumber string) (string, error)

	TransferInternal(ctx context.Context, amountMinor int64, currency, recipientEmail string) (string, error)
	TransferExternal(ctx context.Context, amountMinor int64, currency, bankCode, accountNumber, accountName string) (string, error)
	Withdraw(ctx context.Context, amountMinor int64, currency, bankID string) (string, error)
	Convert(ctx context.Context, amountMinor int64, fromCurrency, toCurrency string) (*models.Conversion, error)
	TopUp(ctx context.Context, amountMinor int64, currency, provider string) (*models.TopUpIntent, error)
	CapturePayPal(ctx context.Context, orderID, transactionID string) (*models.CaptureResult, error)
}

type walletService struct {
	client api.Client
	cache  snapshots.Repository
	log    logging.Logger
}

func NewWalletService(client api.Client, cache snapshots.Repository, log logging.Logger) WalletService {
	return &walletService{client: client, cache: cache, log: log}
}

// cachePut stores a fresh mirror; cache trouble is logged, never surfaced,
// because the fetched data itself is fine.
func (w *walletService) cachePut(ctx context.Context, kind snapshots.Kind, v any) {
	data, err := json.Marshal(v)
	if err != nil {
		w.log.Warn(ctx, "marshalling snapshot", "kind", kind, "error", err)
		return
	}
	if err := w.cache.Put(ctx, kind, data); err != nil {
		w.log.Warn(ctx, "storing snapshot", "kind", kind, "error", err)
	}
}

// invalidate flags snapshots after a successful mutation.
func (w *walletService) invalidate(ctx context.Context, kinds ...snapshots.Kind) {
	if err := w.cache.MarkStale(ctx, kinds...); err != nil {
		w.log.Warn(ctx, "marking snapshots stale", "error", err)
	}
}

func (w *walletService) CurrentUser(ctx context.Context) (*models.User, error) {
	user, err := w.client.CurrentUser(ctx)
	if err != nil {
		return nil, err
	}
	if len(user.Wallets) > 0 {
		w.cachePut(ctx, snapshots.KindWallets, user.Wallets)
	}
	return user, nil
}

func (w *walletService) Wallets(ctx context.Context) ([]models.Wallet, error) {
	wallets, err := w.client.Wallets(ctx)
	if err != nil {
		return nil, err
	}
	w.cachePut(ctx, snapshots.KindWallets, wallets)
	return wallets, nil
}

func (w *walletService) Transactions(ctx context.Context) ([]models.Transaction, bool, error) {
	txs, err := w.client.Transactions(ctx)
	if err == nil {
		w.cachePut(ctx, snapshots.KindTransactions, txs)
		return txs, false, nil
	}
	if !errors.Is(err, api.ErrUnavailable) {
		return nil, false, err
	}

	// offline: fall back to the last mirror, stale or not
	snap, cacheErr := w.cache.Get(ctx, snapshots.KindTransactions)
	if cacheErr != nil || snap == nil {
		return nil, false, err
	}
	var cached []models.Transaction
	if unmarshalErr := json.Unmarshal(snap.Payload, &cached); unmarshalErr != nil {
		w.log.Warn(ctx, "decoding cached transactions", "error", unmarshalErr)
		return nil, false, err
	}
	return cached, true, nil
}

func (w *walletService) Transaction(ctx context.Context, id string) (*models.Transaction, error) {
	return w.client.Transaction(ctx, id)
}

func (w *walletService) Banks(ctx context.Context) ([]models.Bank, error) {
	return w.client.Banks(ctx)
}

func (w *walletService) BankAccounts(ctx context.Context) ([]models.BankAccount, error) {
	accounts, err := w.client.BankAccounts(ctx)
	if err != nil {
		return nil, err
	}
	w.cachePut(ctx, snapshots.KindBankAccounts, accounts)
	return accounts, nil
}

func (w *walletService) AddBank(ctx context.Context, accountNumber, bankCode, bankName string) error {
	if err := w.client.AddBank(ctx, accountNumber, bankCode, bankName); err != nil {
		return err
	}
	w.invalidate(ctx, snapshots.KindBankAccounts)
	return nil
}

func (w *walletService) DeleteBank(ctx context.Context, id string) error {
	if err := w.client.DeleteBank(ctx, id); err != nil {
		return err
	}
	w.invalidate(ctx, snapshots.KindBankAccounts)
	return nil
}

func (w *walletService) ResolveAccount(ctx context.Context, bankCode, accountNumber string) (string, error) {
	return w.client.ResolveAccount(ctx, bankCode, accountNumber)
}

func (w *walletService) TransferInternal(ctx context.Context, amountMinor int64, currency, recipientEmail string) (string, error) {
	txID, err := w.client.TransferInternal(ctx, amountMinor, currency, recipientEmail)
	if err != nil {
		return "", err
	}
	w.invalidate(ctx, snapshots.KindWallets, snapshots.KindTransactions)
	return txID, nil
}

func (w *walletService) TransferExternal(ctx context.Context, amountMinor int64, currency, bankCode, accountNumber, accountName string) (string, error) {
	txID, err := w.client.TransferExternal(ctx, amountMinor, currency, bankCode, accountNumber, accountName)
	if err != nil {
		return "", err
	}
	w.invalidate(ctx, snapshots.KindWallets, snapshots.KindTransactions)
	return txID, nil
}

func (w *walletService) Withdraw(ctx context.Context, amountMinor int64, currency, bankID string) (string, error) {
	txID, err := w.client.Withdraw(ctx, amountMinor, currency, bankID)
	if err != nil {
		return "", err
	}
	w.invalidate(ctx, snapshots.KindWallets, snapshots.KindTransactions)
	return txID, nil
}

func (w *walletService) Convert(ctx context.Context, amountMinor int64, fromCurrency, toCurrency string) (*models.Conversion, error) {
	conv, err := w.client.Convert(ctx, amountMinor, fromCurrency, toCurrency)
	if err != nil {
		return nil, err
	}
	w.invalidate(ctx, snapshots.KindWallets, snapshots.KindTransactions)
	return conv, nil
}

func (w *walletService) TopUp(ctx context.Context, amountMinor int64, currency, provider string) (*models.TopUpIntent, error) {
	// initiation only; balances change when the provider confirms payment
	return w.client.TopUp(ctx, amountMinor, currency, provider)
}

func (w *walletService) CapturePayPal(ctx context.Context, orderID, transactionID string) (*models.CaptureResult, error) {
	res, err := w.client.CapturePayPal(ctx, orderID, transactionID)
	if err != nil {
		return nil, err
	}
	if res.Status == "completed" {
		w.invalidate(ctx, snapshots.KindWallets, snapshots.KindTransactions)
	}
	return res, nil
}
