package browser

import (
	"errors"
	"fmt"
)

// Protocol errors
var (
	ErrElementNotVisible = errors.New("element not visible")
	ErrAssertionFailed   = errors.New("assertion failed")
	ErrSettleTimeout     = errors.New("page did not settle")
)

// AssertionFailure reports a validation whose expected value did not match the page
type AssertionFailure struct {
	Check    string
	Target   string
	Expected any
	Actual   any
	Err      error
}

func (e *AssertionFailure) Error() string {
	msg := fmt.Sprintf("%s: %s %s: expected %v, got %v", ErrAssertionFailed, e.Check, e.Target, e.Expected, e.Actual)
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

// Is lets errors.Is match ErrAssertionFailed
func (e *AssertionFailure) Is(target error) bool {
	return target == ErrAssertionFailed
}

func (e *AssertionFailure) Unwrap() error {
	return e.Err
}
