package form

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func checkMsg(t *testing.T, rules []Rule, fields Fields) (string, bool) {
	t.Helper()
	return check(rules, fields)
}

func TestRule_Email(t *testing.T) {
	r := []Rule{{Field: "email", Tag: "email", Message: "bad email"}}

	_, ok := checkMsg(t, r, Fields{"email": "ada@example.com"})
	assert.True(t, ok)

	msg, ok := checkMsg(t, r, Fields{"email": "nope"})
	assert.False(t, ok)
	assert.Equal(t, "bad email", msg)
}

func TestRule_AccountNumberDigits(t *testing.T) {
	r := []Rule{{Field: "account_number", Tag: "len=10,numeric", Message: "Account number needs 10 digits"}}

	_, ok := checkMsg(t, r, Fields{"account_number": "0123456789"})
	assert.True(t, ok)

	// 9 digits fails locally, before any request could be issued
	msg, ok := checkMsg(t, r, Fields{"account_number": "123456789"})
	assert.False(t, ok)
	assert.Equal(t, "Account number needs 10 digits", msg)

	_, ok = checkMsg(t, r, Fields{"account_number": "01234567xy"})
	assert.False(t, ok)
}

func TestRule_PasswordConfirmation(t *testing.T) {
	r := []Rule{{Field: "confirm_password", Tag: "eqfield", Other: "password", Message: "Passwords do not match"}}

	_, ok := checkMsg(t, r, Fields{"password": "secret123", "confirm_password": "secret123"})
	assert.True(t, ok)

	msg, ok := checkMsg(t, r, Fields{"password": "secret123", "confirm_password": "secret124"})
	assert.False(t, ok)
	assert.Equal(t, "Passwords do not match", msg)
}

func TestRule_CurrenciesMustDiffer(t *testing.T) {
	r := []Rule{{Field: "to_currency", Tag: "nefield", Other: "from_currency", Message: "currencies can't be twins"}}

	_, ok := checkMsg(t, r, Fields{"from_currency": "USD", "to_currency": "EUR"})
	assert.True(t, ok)

	_, ok = checkMsg(t, r, Fields{"from_currency": "USD", "to_currency": "USD"})
	assert.False(t, ok)
}

func TestRule_OptionalUsername(t *testing.T) {
	r := []Rule{{Field: "username", Tag: "omitempty,min=3,max=50", Message: "Username must be 3-50 characters if provided"}}

	_, ok := checkMsg(t, r, Fields{"username": ""})
	assert.True(t, ok, "absent optional field passes")

	_, ok = checkMsg(t, r, Fields{"username": "ab"})
	assert.False(t, ok)

	_, ok = checkMsg(t, r, Fields{"username": "ada"})
	assert.True(t, ok)
}

func TestAmountBetween(t *testing.T) {
	r := []Rule{AmountBetween("amount", 100, 1_000_000, "Amount must be between 1 and 10,000")}

	_, ok := checkMsg(t, r, Fields{"amount": "1"})
	assert.True(t, ok)

	_, ok = checkMsg(t, r, Fields{"amount": "10000"})
	assert.True(t, ok)

	_, ok = checkMsg(t, r, Fields{"amount": "0.99"})
	assert.False(t, ok)

	_, ok = checkMsg(t, r, Fields{"amount": "10000.01"})
	assert.False(t, ok)

	_, ok = checkMsg(t, r, Fields{"amount": "lots"})
	assert.False(t, ok)
}

func TestWithinBalance_MinorUnitBoundary(t *testing.T) {
	// wallet balance 400000 minor units = 4000.00 NGN
	r := []Rule{WithinBalance("amount", 400000, "NGN")}

	msg, ok := checkMsg(t, r, Fields{"amount": "5000.00"})
	assert.False(t, ok)
	assert.Equal(t, "Insufficient balance: available 4000.00 NGN", msg)

	_, ok = checkMsg(t, r, Fields{"amount": "4000.00"})
	assert.True(t, ok, "exact balance passes; no float rounding at the boundary")

	_, ok = checkMsg(t, r, Fields{"amount": "4000.01"})
	assert.False(t, ok)
}

func TestOneOf(t *testing.T) {
	r := []Rule{OneOf("provider", []string{"stripe", "paypal"}, "unknown provider")}

	_, ok := checkMsg(t, r, Fields{"provider": "stripe"})
	assert.True(t, ok)

	msg, ok := checkMsg(t, r, Fields{"provider": "cash"})
	assert.False(t, ok)
	assert.Equal(t, "unknown provider", msg)
}
