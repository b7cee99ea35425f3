package form

import (
	"fmt"

	"github.com/go-playground/validator/v10"

	"github.com/payego/payego-cli/internal/money"
)

// validate evaluates single-value and cross-field tags. Rules carry their own
// user-facing message, so no translator is registered.
var validate = validator.New()

// Rule is one declared constraint on a field. Rules are evaluated in the
// order they were declared and the first failure supplies the message shown
// to the user.
//
// Tag is a go-playground/validator tag ("required", "email", "len=10",
// "omitempty,min=3,max=50", ...). Cross-field tags (eqfield, nefield) take
// the other field's name in Other. Check overrides Tag for constraints the
// tag language cannot express, such as balance comparisons.
type Rule struct {
	Field   string
	Tag     string
	Other   string
	Check   func(fields Fields) bool
	Message string
}

func (r Rule) ok(fields Fields) bool {
	if r.Check != nil {
		return r.Check(fields)
	}
	if r.Other != "" {
		return validate.VarWithValue(fields[r.Field], fields[r.Other], r.Tag) == nil
	}
	return validate.Var(fields[r.Field], r.Tag) == nil
}

// check returns the first failing rule's message. All rules run against the
// current values on every call; nothing is cached between submit attempts.
func check(rules []Rule, fields Fields) (string, bool) {
	for _, r := range rules {
		if !r.ok(fields) {
			return r.Message, false
		}
	}
	return "", true
}

// AmountBetween constrains a monetary field to [minMinor, maxMinor],
// compared in integer minor units. Unparseable input fails the rule.
func AmountBetween(field string, minMinor, maxMinor int64, msg string) Rule {
	return Rule{Field: field, Message: msg, Check: func(fields Fields) bool {
		v, err := money.ParseMinor(fields[field])
		return err == nil && v >= minMinor && v <= maxMinor
	}}
}

// WithinBalance rejects amounts whose minor-unit value exceeds the wallet
// balance snapshot. The comparison never touches floating point: the entered
// major-unit amount is parsed straight to minor units.
func WithinBalance(field string, balanceMinor int64, currency string) Rule {
	msg := fmt.Sprintf("Insufficient balance: available %s %s", money.FormatMinor(balanceMinor), currency)
	return Rule{Field: field, Message: msg, Check: func(fields Fields) bool {
		v, err := money.ParseMinor(fields[field])
		return err == nil && v <= balanceMinor
	}}
}

// OneOf constrains a field to an allowed set.
func OneOf(field string, allowed []string, msg string) Rule {
	set := make(map[string]struct{}, len(allowed))
	for _, a := range allowed {
		set[a] = struct{}{}
	}
	return Rule{Field: field, Message: msg, Check: func(fields Fields) bool {
		_, ok := set[fields[field]]
		return ok
	}}
}
