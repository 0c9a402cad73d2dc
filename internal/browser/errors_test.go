package browser

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAssertionFailure(t *testing.T) {
	cause := errors.New("expect timed out")
	err := error(&AssertionFailure{
		Check:    "text",
		Target:   `[data-test="login-error"]`,
		Expected: "Invalid email or password",
		Actual:   "",
		Err:      cause,
	})

	assert.True(t, errors.Is(err, ErrAssertionFailed))
	assert.True(t, errors.Is(err, cause))
	assert.False(t, errors.Is(err, ErrElementNotVisible))
	assert.Equal(t,
		`assertion failed: text [data-test="login-error"]: expected Invalid email or password, got : expect timed out`,
		err.Error())

	var failure *AssertionFailure
	require.True(t, errors.As(fmt.Errorf("login: %w", err), &failure))
	assert.Equal(t, "Invalid email or password", failure.Expected)
}

func TestAssertionFailure_WithoutCause(t *testing.T) {
	err := &AssertionFailure{Check: "count", Target: "cards", Expected: 3, Actual: 1}
	assert.Equal(t, "assertion failed: count cards: expected 3, got 1", err.Error())
	assert.Nil(t, errors.Unwrap(err))
}

func TestPoll(t *testing.T) {
	t.Run("succeeds once check passes", func(t *testing.T) {
		calls := 0
		err := poll(time.Second, func() (bool, error) {
			calls++
			return calls == 3, nil
		})
		require.NoError(t, err)
		assert.Equal(t, 3, calls)
	})

	t.Run("times out with last error", func(t *testing.T) {
		last := errors.New("count is 0")
		err := poll(150*time.Millisecond, func() (bool, error) {
			return false, last
		})
		require.Error(t, err)
		assert.ErrorIs(t, err, last)
		assert.Contains(t, err.Error(), "timed out after 150ms")
	})

	t.Run("times out without error", func(t *testing.T) {
		err := poll(10*time.Millisecond, func() (bool, error) {
			return false, nil
		})
		assert.EqualError(t, err, "timed out after 10ms")
	})
}

func TestNormalizeSpace(t *testing.T) {
	assert.Equal(t, "In stock", normalizeSpace("  In \n\t stock "))
	assert.Equal(t, "", normalizeSpace(" \n "))
}
