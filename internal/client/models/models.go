// Package models holds the wire shapes the Payego API returns. They are
// read-only mirrors of server state; the server remains the source of truth.
package models

import "time"

// Wallet balances are integer minor units (cents, kobo).
type Wallet struct {
	ID       string `json:"id,omitempty"`
	Currency string `json:"currency"`
	Balance  int64  `json:"balance"`
}

type User struct {
	ID       string   `json:"id,omitempty"`
	Email    string   `json:"email"`
	Username string   `json:"username,omitempty"`
	Wallets  []Wallet `json:"wallets,omitempty"`
}

type Transaction struct {
	ID        string    `json:"id"`
	Type      string    `json:"type,omitempty"`
	Amount    int64     `json:"amount"`
	Currency  string    `json:"currency"`
	Status    string    `json:"status,omitempty"`
	Reference string    `json:"reference,omitempty"`
	CreatedAt time.Time `json:"created_at,omitempty"`
}

// Bank is an entry of the public bank directory used for account linking.
type Bank struct {
	Name string `json:"name"`
	Code string `json:"code"`
}

// BankAccount is a bank account the user has linked to their Payego account.
type BankAccount struct {
	ID            string `json:"id"`
	BankName      string `json:"bank_name"`
	BankCode      string `json:"bank_code,omitempty"`
	AccountNumber string `json:"account_number"`
	AccountName   string `json:"account_name,omitempty"`
}

// TopUpIntent is the provider-specific handle returned by top-up initiation:
// a Stripe checkout URL, or a PayPal order id to approve and capture.
type TopUpIntent struct {
	TransactionID string `json:"transaction_id,omitempty"`
	SessionURL    string `json:"session_url,omitempty"`
	PaymentID     string `json:"payment_id,omitempty"`
}

type Conversion struct {
	TransactionID   string `json:"transaction_id"`
	ConvertedAmount string `json:"converted_amount"`
}

// CaptureResult reports the outcome of a PayPal capture call.
type CaptureResult struct {
	Status       string `json:"status"`
	ErrorMessage string `json:"error_message,omitempty"`
}

// SupportedCurrencies is the set of currencies top-ups and conversions accept.
var SupportedCurrencies = []string{
	"AUD", "BRL", "CAD", "CHF", "CNY", "EUR", "GBP", "HKD", "INR", "JPY",
	"KRW", "MXN", "NGN", "NOK", "NZD", "SEK", "SGD", "TRY", "USD", "ZAR",
}

// SupportedProviders lists the payment providers a top-up can be initiated with.
var SupportedProviders = []string{"stripe", "paypal"}

// WithdrawCeilingMinor returns the per-request withdrawal ceiling for a
// currency, in minor units. NGN allows 10,000,000; everything else 10,000.
func WithdrawCeilingMinor(currency string) int64 {
	if currency == "NGN" {
		return 10_000_000 * 100
	}
	return 10_000 * 100
}
