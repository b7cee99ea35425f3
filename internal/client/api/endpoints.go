package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"

	"github.com/payego/payego-cli/internal/client/models"
	"github.com/payego/payego-cli/internal/money"
)

// amount renders minor units as a JSON decimal number in major units, the
// representation the API expects.
func amount(minor int64) json.Number {
	return json.Number(money.FormatMinor(minor))
}

type tokenResponse struct {
	Token string `json:"token"`
}

func (c *HTTPClient) Login(ctx context.Context, email, password string) (string, error) {
	body := struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}{email, password}

	var resp tokenResponse
	if err := c.postPublic(ctx, "/api/login", body, &resp); err != nil {
		return "", err
	}
	return resp.Token, nil
}

func (c *HTTPClient) SocialLogin(ctx context.Context, provider, idToken string) (string, error) {
	body := struct {
		IDToken  string `json:"id_token"`
		Provider string `json:"provider"`
	}{idToken, provider}

	var resp tokenResponse
	if err := c.postPublic(ctx, "/api/social_login", body, &resp); err != nil {
		return "", err
	}
	return resp.Token, nil
}

func (c *HTTPClient) Register(ctx context.Context, email, password, username string) (string, error) {
	body := struct {
		Email    string `json:"email"`
		Password string `json:"password"`
		Username string `json:"username,omitempty"`
	}{email, password, username}

	var resp tokenResponse
	if err := c.postPublic(ctx, "/api/register", body, &resp); err != nil {
		return "", err
	}
	return resp.Token, nil
}

func (c *HTTPClient) VerifyEmail(ctx context.Context, email, code string) error {
	body := struct {
		Email string `json:"email"`
		Code  string `json:"code"`
	}{email, code}
	return c.postPublic(ctx, "/api/verify_email", body, nil)
}

func (c *HTTPClient) SendVerification(ctx context.Context, email string) error {
	body := struct {
		Email string `json:"email"`
	}{email}
	return c.postPublic(ctx, "/api/send_verification", body, nil)
}

func (c *HTTPClient) ForgotPassword(ctx context.Context, email string) error {
	body := struct {
		Email string `json:"email"`
	}{email}
	return c.postPublic(ctx, "/api/forgot_password", body, nil)
}

func (c *HTTPClient) ResetPassword(ctx context.Context, email, resetToken, newPassword string) error {
	body := struct {
		Email       string `json:"email"`
		Token       string `json:"token"`
		NewPassword string `json:"new_password"`
	}{email, resetToken, newPassword}
	return c.postPublic(ctx, "/api/reset_password", body, nil)
}

func (c *HTTPClient) CurrentUser(ctx context.Context) (*models.User, error) {
	var user models.User
	if err := c.get(ctx, "/api/current_user", &user); err != nil {
		return nil, err
	}
	return &user, nil
}

func (c *HTTPClient) Wallets(ctx context.Context) ([]models.Wallet, error) {
	var resp struct {
		Wallets []models.Wallet `json:"wallets"`
	}
	if err := c.get(ctx, "/api/wallets", &resp); err != nil {
		return nil, err
	}
	return resp.Wallets, nil
}

func (c *HTTPClient) Transactions(ctx context.Context) ([]models.Transaction, error) {
	var resp struct {
		Transactions []models.Transaction `json:"transactions"`
	}
	if err := c.get(ctx, "/api/transactions", &resp); err != nil {
		return nil, err
	}
	return resp.Transactions, nil
}

func (c *HTTPClient) Transaction(ctx context.Context, id string) (*models.Transaction, error) {
	var tx models.Transaction
	if err := c.get(ctx, "/api/transactions/"+url.PathEscape(id), &tx); err != nil {
		return nil, err
	}
	return &tx, nil
}

func (c *HTTPClient) Banks(ctx context.Context) ([]models.Bank, error) {
	var resp struct {
		Banks []models.Bank `json:"banks"`
	}
	if err := c.call(ctx, http.MethodGet, "/api/banks", nil, &resp, callOpts{}); err != nil {
		return nil, err
	}
	return resp.Banks, nil
}

func (c *HTTPClient) ResolveAccount(ctx context.Context, bankCode, accountNumber string) (string, error) {
	q := url.Values{}
	q.Set("bank_code", bankCode)
	q.Set("account_number", accountNumber)

	var resp struct {
		AccountName string `json:"account_name"`
	}
	err := c.call(ctx, http.MethodGet, "/api/resolve_account", nil, &resp, callOpts{query: q})
	if err != nil {
		return "", err
	}
	return resp.AccountName, nil
}

func (c *HTTPClient) BankAccounts(ctx context.Context) ([]models.BankAccount, error) {
	var resp struct {
		BankAccounts []models.BankAccount `json:"bank_accounts"`
	}
	if err := c.get(ctx, "/api/bank_accounts", &resp); err != nil {
		return nil, err
	}
	return resp.BankAccounts, nil
}

func (c *HTTPClient) AddBank(ctx context.Context, accountNumber, bankCode, bankName string) error {
	body := struct {
		AccountNumber string `json:"account_number"`
		BankCode      string `json:"bank_code"`
		BankName      string `json:"bank_name"`
	}{accountNumber, bankCode, bankName}
	return c.post(ctx, "/api/add_bank", body, nil)
}

func (c *HTTPClient) DeleteBank(ctx context.Context, id string) error {
	return c.call(ctx, http.MethodDelete, "/api/delete_bank/"+url.PathEscape(id), nil, nil, callOpts{auth: true})
}

type transactionIDResponse struct {
	TransactionID string `json:"transaction_id"`
}

func (c *HTTPClient) TransferInternal(ctx context.Context, amountMinor int64, currency, recipientEmail string) (string, error) {
	body := struct {
		Amount         json.Number `json:"amount"`
		RecipientEmail string      `json:"recipient_email"`
		Currency       string      `json:"currency"`
	}{amount(amountMinor), recipientEmail, currency}

	var resp transactionIDResponse
	if err := c.postMutation(ctx, "/api/transfer/internal", body, &resp); err != nil {
		return "", err
	}
	return resp.TransactionID, nil
}

func (c *HTTPClient) TransferExternal(ctx context.Context, amountMinor int64, currency, bankCode, accountNumber, accountName string) (string, error) {
	body := struct {
		Amount        json.Number `json:"amount"`
		Currency      string      `json:"currency"`
		BankCode      string      `json:"bank_code"`
		AccountNumber string      `json:"account_number"`
		AccountName   string      `json:"account_name"`
	}{amount(amountMinor), currency, bankCode, accountNumber, accountName}

	var resp transactionIDResponse
	if err := c.postMutation(ctx, "/api/transfer/external", body, &resp); err != nil {
		return "", err
	}
	return resp.TransactionID, nil
}

func (c *HTTPClient) Withdraw(ctx context.Context, amountMinor int64, currency, bankID string) (string, error) {
	body := struct {
		Amount   json.Number `json:"amount"`
		Currency string      `json:"currency"`
		BankID   string      `json:"bank_id"`
	}{amount(amountMinor), currency, bankID}

	var resp transactionIDResponse
	if err := c.postMutation(ctx, "/api/withdraw", body, &resp); err != nil {
		return "", err
	}
	return resp.TransactionID, nil
}

func (c *HTTPClient) Convert(ctx context.Context, amountMinor int64, fromCurrency, toCurrency string) (*models.Conversion, error) {
	body := struct {
		Amount       json.Number `json:"amount"`
		FromCurrency string      `json:"from_currency"`
		ToCurrency   string      `json:"to_currency"`
	}{amount(amountMinor), fromCurrency, toCurrency}

	var resp models.Conversion
	if err := c.postMutation(ctx, "/api/convert_currency", body, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *HTTPClient) TopUp(ctx context.Context, amountMinor int64, currency, provider string) (*models.TopUpIntent, error) {
	body := struct {
		Amount   json.Number `json:"amount"`
		Provider string      `json:"provider"`
		Currency string      `json:"currency"`
	}{amount(amountMinor), provider, currency}

	var resp models.TopUpIntent
	if err := c.postMutation(ctx, "/api/top_up", body, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *HTTPClient) CapturePayPal(ctx context.Context, orderID, transactionID string) (*models.CaptureResult, error) {
	body := struct {
		OrderID       string `json:"order_id"`
		TransactionID string `json:"transaction_id"`
	}{orderID, transactionID}

	var resp models.CaptureResult
	if err := c.post(ctx, "/api/paypal/capture", body, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *HTTPClient) Logout(ctx context.Context) error {
	return c.post(ctx, "/api/logout", struct{}{}, nil)
}
