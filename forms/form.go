// Package forms tracks one mutation form through validation and submission.
package forms

import (
	"context"
	"fmt"

	"github.com/princinho/menufront/api"
	"github.com/princinho/menufront/validation"
)

type State int

const (
	Idle State = iota
	Submitting
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Submitting:
		return "submitting"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// Form holds the values of one form and the outcome of its last submission.
// A failed submission keeps Values; a successful one clears them and sets Closed.
type Form[T any] struct {
	Values     T
	State      State
	Validation validation.Result
	Message    string
	Closed     bool
}

func New[T any](values T) *Form[T] {
	return &Form[T]{Values: values}
}

// Submit validates the values and, when they pass, sends them. Validation
// failures never reach send. The returned error is the send error, so callers
// can tell auth failures apart with api.IsAuth.
func (f *Form[T]) Submit(ctx context.Context, check func(T) validation.Result, send func(context.Context, T) error) error {
	if f.State == Submitting {
		return fmt.Errorf("form is already submitting")
	}
	f.Message, f.Closed = "", false

	f.Validation = check(f.Values)
	if !f.Validation.OK() {
		f.Message = "please fix the highlighted fields"
		return nil
	}

	f.State = Submitting
	err := send(ctx, f.Values)
	f.State = Idle
	if err != nil {
		f.Message = api.Message(err)
		return err
	}

	var zero T
	f.Values = zero
	f.Closed = true
	return nil
}

// Succeeded reports whether the last Submit went through.
func (f *Form[T]) Succeeded() bool {
	return f.Closed
}

// Error returns the message of a failed submission or validation, or "".
func (f *Form[T]) Error() string {
	if f.Closed {
		return ""
	}
	return f.Message
}
