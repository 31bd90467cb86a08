package retry

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fastConfig keeps retry delays negligible in tests.
var fastConfig = Config{
	MaxAttempts:  3,
	InitialDelay: time.Millisecond,
	MaxDelay:     5 * time.Millisecond,
	Multiplier:   2.0,
}

func TestDo_SuccessOnFirstAttempt(t *testing.T) {
	attempts := 0

	err := Do(context.Background(), func() error {
		attempts++
		return nil
	}, fastConfig)

	assert.NoError(t, err)
	assert.Equal(t, 1, attempts)
}

func TestDo_SuccessAfterRetries(t *testing.T) {
	attempts := 0

	err := Do(context.Background(), func() error {
		attempts++
		if attempts < 3 {
			return errors.New("connection refused")
		}
		return nil
	}, fastConfig)

	assert.NoError(t, err)
	assert.Equal(t, 3, attempts)
}

func TestDo_MaxAttemptsExceeded(t *testing.T) {
	attempts := 0
	expectedErr := errors.New("connection refused")

	err := Do(context.Background(), func() error {
		attempts++
		return expectedErr
	}, fastConfig)

	assert.Equal(t, expectedErr, err)
	assert.Equal(t, 3, attempts)
}

func TestDo_PermanentErrorStopsImmediately(t *testing.T) {
	attempts := 0
	cause := errors.New("password authentication failed")

	err := Do(context.Background(), func() error {
		attempts++
		return NewPermanent(cause)
	}, fastConfig)

	assert.ErrorIs(t, err, cause)
	assert.True(t, IsPermanent(err))
	assert.Equal(t, 1, attempts)
}

func TestDo_CustomRetryIf(t *testing.T) {
	attempts := 0

	err := Do(context.Background(), func() error {
		attempts++
		return errors.New("fatal")
	}, fastConfig.WithMaxAttempts(5).withRetryIf(func(error) bool { return false }))

	assert.Error(t, err)
	assert.Equal(t, 1, attempts)
}

func TestDo_ContextCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	attempts := 0
	err := Do(ctx, func() error {
		attempts++
		return nil
	}, fastConfig)

	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 0, attempts)
}

func TestDo_ZeroAttemptsRunsOnce(t *testing.T) {
	attempts := 0

	err := Do(context.Background(), func() error {
		attempts++
		return errors.New("boom")
	}, Config{})

	assert.Error(t, err)
	assert.Equal(t, 1, attempts)
}

func TestDoWithResult_OnRetry(t *testing.T) {
	var retried []int

	cfg := fastConfig.WithOnRetry(func(attempt int, err error) {
		retried = append(retried, attempt)
	})

	attempts := 0
	value, err := DoWithResult(context.Background(), func() (string, error) {
		attempts++
		if attempts < 3 {
			return "", errors.New("not yet")
		}
		return "connected", nil
	}, cfg)

	require.NoError(t, err)
	assert.Equal(t, "connected", value)
	assert.Equal(t, []int{1, 2}, retried)
}

func TestSleepTime_CappedAtMaxDelay(t *testing.T) {
	assert.Equal(t, 10*time.Millisecond, sleepTime(time.Second, 10*time.Millisecond, 0))
	assert.Equal(t, 5*time.Millisecond, sleepTime(5*time.Millisecond, time.Second, 0))
}

func TestNewPermanent_Nil(t *testing.T) {
	assert.Nil(t, NewPermanent(nil))
	assert.Equal(t, "permanent error", (&Permanent{}).Error())
}

func (c Config) withRetryIf(fn func(error) bool) Config {
	c.RetryIf = fn
	return c
}
