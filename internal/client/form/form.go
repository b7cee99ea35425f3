// Package form is the submission state machine every screen shares:
//
//	Idle -> Validating -> Submitting -> Succeeded | Failed
//
// Failed returns the form to Idle with its fields intact; Succeeded is
// terminal for the instance (the screen navigates away). While Submitting,
// submit is rejected, so a double-fired submit can never produce two
// in-flight requests for the same intent.
package form

import (
	"context"
	"errors"
)

type Status int

const (
	StatusIdle Status = iota
	StatusValidating
	StatusSubmitting
	StatusSucceeded
	StatusFailed
)

func (s Status) String() string {
	switch s {
	case StatusIdle:
		return "idle"
	case StatusValidating:
		return "validating"
	case StatusSubmitting:
		return "submitting"
	case StatusSucceeded:
		return "succeeded"
	case StatusFailed:
		return "failed"
	default:
		return "unknown"
	}
}

var (
	// ErrSubmitInFlight is returned when submit is invoked while a
	// submission is still running.
	ErrSubmitInFlight = errors.New("submission already in flight")

	// ErrFormDone is returned when submit is invoked on a form that has
	// already succeeded.
	ErrFormDone = errors.New("form already succeeded")
)

// Fields maps field names to their current raw string values.
type Fields map[string]string

func (f Fields) clone() Fields {
	out := make(Fields, len(f))
	for k, v := range f {
		out[k] = v
	}
	return out
}

// Action performs the remote side of a submission. The returned payload is
// handed to the navigation policy on success (e.g. a transaction id).
type Action func(ctx context.Context, fields Fields) (payload any, err error)

// Outcome is what a screen reports after a submit attempt. Exactly one of
// Message (local validation) or Err (executor failure) is set on failure.
type Outcome struct {
	Status  Status
	Payload any
	Message string
	Err     error
}

// Form is one screen's submission state. It is not safe for concurrent use;
// the UI loop is single threaded.
type Form struct {
	fields        Fields
	rules         []Rule
	status        Status
	validationMsg string
}

func New(rules ...Rule) *Form {
	return &Form{fields: Fields{}, rules: rules}
}

func (f *Form) Set(name, value string) {
	f.fields[name] = value
}

func (f *Form) Get(name string) string {
	return f.fields[name]
}

// Reset clears all field values. The rule set stays; every rule is
// re-evaluated from scratch on the next submit.
func (f *Form) Reset() {
	f.fields = Fields{}
	f.validationMsg = ""
}

func (f *Form) Status() Status { return f.status }

// ValidationMessage returns the message of the first failing rule from the
// latest submit attempt, or "".
func (f *Form) ValidationMessage() string { return f.validationMsg }

// Submit runs the full state machine once: re-validate every rule in
// declared order, and only when all pass, run the action exactly once.
// Validation failures never reach the network. Executor failures return the
// form to Idle so the user can edit and explicitly resubmit; Submit never
// retries on its own.
func (f *Form) Submit(ctx context.Context, action Action) Outcome {
	switch f.status {
	case StatusSubmitting:
		return Outcome{Status: StatusSubmitting, Err: ErrSubmitInFlight}
	case StatusSucceeded:
		return Outcome{Status: StatusSucceeded, Err: ErrFormDone}
	}

	f.status = StatusValidating
	f.validationMsg = ""
	if msg, ok := check(f.rules, f.fields); !ok {
		f.status = StatusIdle
		f.validationMsg = msg
		return Outcome{Status: StatusFailed, Message: msg}
	}

	f.status = StatusSubmitting
	payload, err := action(ctx, f.fields.clone())
	if err != nil {
		f.status = StatusIdle
		return Outcome{Status: StatusFailed, Err: err}
	}

	f.status = StatusSucceeded
	return Outcome{Status: StatusSucceeded, Payload: payload}
}
