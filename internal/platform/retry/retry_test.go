package retry

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recordWaits evita dormir de verdad y registra los delays pedidos.
func recordWaits[T any](r *Retrier[T]) *[]time.Duration {
	waits := []time.Duration{}
	r.wait = func(ctx context.Context, d time.Duration) error {
		waits = append(waits, d)
		return ctx.Err()
	}
	return &waits
}

func TestDo_FailsTwiceThenSucceeds(t *testing.T) {
	var successCalls, successAttempt int
	var errorAttempts []int

	r := New(Options[string]{
		MaxAttempts: 3,
		OnSuccess: func(result string, attempt int) {
			successCalls++
			successAttempt = attempt
		},
		OnError: func(err error, attempt int) {
			errorAttempts = append(errorAttempts, attempt)
		},
	})
	waits := recordWaits(r)

	calls := 0
	got, err := r.Do(context.Background(), func(ctx context.Context) (string, error) {
		calls++
		if calls < 3 {
			return "", fmt.Errorf("transient %d", calls)
		}
		return "ok", nil
	})

	require.NoError(t, err)
	assert.Equal(t, "ok", got)
	assert.Equal(t, 3, calls)
	assert.Equal(t, 1, successCalls)
	assert.Equal(t, 3, successAttempt)
	assert.Equal(t, []int{1, 2}, errorAttempts)
	assert.Equal(t, []time.Duration{1000 * time.Millisecond, 2000 * time.Millisecond}, *waits)

	// éxito resetea el contador
	assert.Equal(t, 0, r.Attempts())
	assert.False(t, r.Retrying())
}

func TestDo_AlwaysFails_ReturnsLastError(t *testing.T) {
	var errorAttempts []int
	successCalls := 0

	r := New(Options[int]{
		MaxAttempts: 3,
		OnSuccess:   func(int, int) { successCalls++ },
		OnError: func(err error, attempt int) {
			errorAttempts = append(errorAttempts, attempt)
		},
	})
	waits := recordWaits(r)

	calls := 0
	_, err := r.Do(context.Background(), func(ctx context.Context) (int, error) {
		calls++
		return 0, fmt.Errorf("failure %d", calls)
	})

	require.Error(t, err)
	assert.EqualError(t, err, "failure 3")
	assert.Equal(t, []int{1, 2, 3}, errorAttempts)
	assert.Equal(t, 0, successCalls)
	// no se espera después del último intento
	assert.Len(t, *waits, 2)

	// tras agotar, el contador queda en el último intento (no se resetea)
	assert.Equal(t, 3, r.Attempts())

	r.Reset()
	assert.Equal(t, 0, r.Attempts())
	assert.False(t, r.Retrying())
}

func TestDo_FirstAttemptSucceeds_NoWait(t *testing.T) {
	r := New(Options[int]{})
	waits := recordWaits(r)

	got, err := r.Do(context.Background(), func(ctx context.Context) (int, error) {
		return 42, nil
	})

	require.NoError(t, err)
	assert.Equal(t, 42, got)
	assert.Empty(t, *waits)
}

func TestDelay_ExponentialBackoff(t *testing.T) {
	r := New(Options[struct{}]{
		InitialDelay:      100 * time.Millisecond,
		BackoffMultiplier: 3,
	})

	assert.Equal(t, 100*time.Millisecond, r.Delay(1))
	assert.Equal(t, 300*time.Millisecond, r.Delay(2))
	assert.Equal(t, 900*time.Millisecond, r.Delay(3))
	assert.Equal(t, 100*time.Millisecond, r.Delay(0))
}

func TestDelay_SaturatesInsteadOfOverflowing(t *testing.T) {
	r := New(Options[int]{MaxAttempts: 80})

	prev := time.Duration(0)
	for n := 1; n <= 80; n++ {
		d := r.Delay(n)
		require.Greater(t, d, time.Duration(0), "attempt %d", n)
		require.GreaterOrEqual(t, d, prev, "attempt %d", n)
		prev = d
	}
	assert.Equal(t, MaxDelay, r.Delay(35))
	assert.Equal(t, MaxDelay, r.Delay(80))
}

func TestDo_ManyAttemptsNeverWaitsNegative(t *testing.T) {
	r := New(Options[int]{MaxAttempts: 40})
	waits := recordWaits(r)

	_, err := r.Do(context.Background(), func(context.Context) (int, error) {
		return 0, errors.New("down")
	})
	require.Error(t, err)

	require.Len(t, *waits, 39)
	for i, d := range *waits {
		assert.Greater(t, d, time.Duration(0), "wait %d", i+1)
	}
}

func TestNew_Defaults(t *testing.T) {
	r := New(Options[int]{})

	assert.Equal(t, DefaultMaxAttempts, r.opts.MaxAttempts)
	assert.Equal(t, DefaultInitialDelay, r.opts.InitialDelay)
	assert.Equal(t, DefaultBackoffMultiplier, r.opts.BackoffMultiplier)
	assert.Equal(t, 1000*time.Millisecond, r.Delay(1))
	assert.Equal(t, 4000*time.Millisecond, r.Delay(3))
}

func TestDo_CancelledDuringWait(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())

	calls := 0
	r := New(Options[int]{
		MaxAttempts:  5,
		InitialDelay: time.Hour,
		OnError: func(err error, attempt int) {
			cancel()
		},
	})

	_, err := r.Do(ctx, func(ctx context.Context) (int, error) {
		calls++
		return 0, errors.New("down")
	})

	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 1, calls)
	assert.Equal(t, 1, r.Attempts())
}

func TestDo_RetryingFlagDuringOperation(t *testing.T) {
	r := New(Options[bool]{})
	recordWaits(r)

	got, err := r.Do(context.Background(), func(ctx context.Context) (bool, error) {
		return r.Retrying(), nil
	})

	require.NoError(t, err)
	assert.True(t, got)
	assert.False(t, r.Retrying())
}
