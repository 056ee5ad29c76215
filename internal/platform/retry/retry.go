// Package retry ejecuta una operación arbitraria con reintentos y backoff exponencial.
package retry

import (
	"context"
	"math"
	"sync"
	"time"
)

const (
	DefaultMaxAttempts       = 3
	DefaultInitialDelay      = 1000 * time.Millisecond
	DefaultBackoffMultiplier = 2.0

	// MaxDelay es el techo del backoff; más allá el cálculo desborda int64.
	MaxDelay = time.Duration(math.MaxInt64)
)

// Operation es cualquier función sin argumentos (más allá del ctx) que puede fallar.
type Operation[T any] func(ctx context.Context) (T, error)

type Options[T any] struct {
	MaxAttempts       int
	InitialDelay      time.Duration
	BackoffMultiplier float64

	// OnSuccess se llama una vez con el resultado y el número de intento que tuvo éxito.
	OnSuccess func(result T, attempt int)
	// OnError se llama en cada intento fallido (incluido el último).
	OnError func(err error, attempt int)
}

// Retrier serializa los intentos: el intento n+1 nunca arranca antes de que
// el n haya fallado y su delay haya pasado.
//
// El estado observable (Attempts/Retrying) queda en el último valor tras agotar
// los intentos; solo se limpia con un éxito o con Reset.
type Retrier[T any] struct {
	opts Options[T]

	mu       sync.Mutex
	attempts int
	retrying bool

	// wait es reemplazable en tests.
	wait func(ctx context.Context, d time.Duration) error
}

func New[T any](opts Options[T]) *Retrier[T] {
	if opts.MaxAttempts <= 0 {
		opts.MaxAttempts = DefaultMaxAttempts
	}
	if opts.InitialDelay <= 0 {
		opts.InitialDelay = DefaultInitialDelay
	}
	if opts.BackoffMultiplier <= 0 {
		opts.BackoffMultiplier = DefaultBackoffMultiplier
	}
	return &Retrier[T]{
		opts: opts,
		wait: sleep,
	}
}

// Delay devuelve la espera después del intento fallido n (1-based):
// initialDelay * multiplier^(n-1), saturado en MaxDelay.
func (r *Retrier[T]) Delay(attempt int) time.Duration {
	if attempt < 1 {
		attempt = 1
	}
	f := float64(r.opts.InitialDelay) * math.Pow(r.opts.BackoffMultiplier, float64(attempt-1))
	if math.IsNaN(f) || f >= float64(MaxDelay) {
		return MaxDelay
	}
	return time.Duration(f)
}

// Do ejecuta op hasta MaxAttempts veces.
// Si todos los intentos fallan devuelve el último error.
// Cancelar ctx solo interrumpe la espera entre intentos; la operación en curso
// recibe el mismo ctx y decide ella si lo respeta.
func (r *Retrier[T]) Do(ctx context.Context, op Operation[T]) (T, error) {
	var zero T
	var lastErr error

	r.mu.Lock()
	r.retrying = true
	r.mu.Unlock()

	defer func() {
		r.mu.Lock()
		r.retrying = false
		r.mu.Unlock()
	}()

	for attempt := 1; attempt <= r.opts.MaxAttempts; attempt++ {
		r.mu.Lock()
		r.attempts = attempt
		r.mu.Unlock()

		res, err := op(ctx)
		if err == nil {
			if r.opts.OnSuccess != nil {
				r.opts.OnSuccess(res, attempt)
			}
			r.mu.Lock()
			r.attempts = 0
			r.mu.Unlock()
			return res, nil
		}

		lastErr = err
		if r.opts.OnError != nil {
			r.opts.OnError(err, attempt)
		}

		if attempt == r.opts.MaxAttempts {
			break
		}

		if werr := r.wait(ctx, r.Delay(attempt)); werr != nil {
			return zero, werr
		}
	}

	return zero, lastErr
}

// Attempts devuelve el número del intento actual (o el último, si se agotaron).
func (r *Retrier[T]) Attempts() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.attempts
}

func (r *Retrier[T]) Retrying() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.retrying
}

// Reset limpia el estado sin tocar una ejecución en curso.
func (r *Retrier[T]) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.attempts = 0
	r.retrying = false
}

// Do es el atajo para un uso puntual sin conservar el Retrier.
func Do[T any](ctx context.Context, opts Options[T], op Operation[T]) (T, error) {
	return New(opts).Do(ctx, op)
}

func sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(d)
	defer t.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
