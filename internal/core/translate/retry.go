package translate

import (
	"context"
	"io"
	"math"
	"math/rand/v2"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/rs/zerolog/log"
)

// DefaultMaxRetries is the total number of attempts per text.
const DefaultMaxRetries = 3

// Retrier wraps an Engine with exponential backoff. Before retry i
// (0-indexed) it waits 2^i seconds plus a uniform jitter in [0, 1) seconds.
type Retrier struct {
	engine     Engine
	maxRetries int
	jitter     func() float64
	newTimer   func() backoff.Timer
}

type RetryOption func(*Retrier)

// WithMaxRetries sets the total attempt count. Values below 1 mean 1.
func WithMaxRetries(n int) RetryOption {
	return func(r *Retrier) {
		r.maxRetries = max(n, 1)
	}
}

// WithJitter replaces the [0, 1) jitter source.
func WithJitter(f func() float64) RetryOption {
	return func(r *Retrier) {
		r.jitter = f
	}
}

// WithTimer replaces the timer used to wait between attempts. The factory is
// called once per Translate call.
func WithTimer(f func() backoff.Timer) RetryOption {
	return func(r *Retrier) {
		r.newTimer = f
	}
}

func NewRetrier(engine Engine, opts ...RetryOption) *Retrier {
	r := &Retrier{
		engine:     engine,
		maxRetries: DefaultMaxRetries,
		jitter:     rand.Float64,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

func (r *Retrier) GetProviderName() string {
	return r.engine.GetProviderName()
}

func (r *Retrier) MaxRetries() int {
	return r.maxRetries
}

// Close releases the engine's client when it holds one.
func (r *Retrier) Close() error {
	if c, ok := r.engine.(io.Closer); ok {
		return c.Close()
	}
	return nil
}

// Translate sends text to the engine until it succeeds or the attempts run
// out, in which case the error is a *RetryError. An empty source means auto
// detection. Cancelling ctx stops further attempts.
func (r *Retrier) Translate(ctx context.Context, text, target, source string) (string, error) {
	if source == "" {
		source = AutoDetect
	}
	req := Request{Text: text, Source: source, Target: target}

	var (
		result   string
		attempts int
	)
	op := func() error {
		attempts++
		out, err := r.engine.Translate(ctx, req)
		if err != nil {
			return err
		}
		result = out
		return nil
	}

	notify := func(err error, wait time.Duration) {
		log.Warn().Err(err).
			Int("attempt", attempts).
			Dur("wait", wait).
			Str("provider", r.engine.GetProviderName()).
			Msg("⚠️ translation attempt failed, retrying")
	}

	var timer backoff.Timer
	if r.newTimer != nil {
		timer = r.newTimer()
	}

	b := backoff.WithContext(
		backoff.WithMaxRetries(newExponentialJitter(r.jitter), uint64(r.maxRetries-1)),
		ctx,
	)
	if err := backoff.RetryNotifyWithTimer(op, b, notify, timer); err != nil {
		return "", &RetryError{Attempts: attempts, Err: err}
	}
	return result, nil
}

// exponentialJitter yields 2^i s + U[0,1) s for the i-th wait.
type exponentialJitter struct {
	retry  int
	jitter func() float64
}

func newExponentialJitter(jitter func() float64) *exponentialJitter {
	return &exponentialJitter{jitter: jitter}
}

func (b *exponentialJitter) NextBackOff() time.Duration {
	secs := math.Pow(2, float64(b.retry)) + b.jitter()
	b.retry++
	return time.Duration(secs * float64(time.Second))
}

func (b *exponentialJitter) Reset() {
	b.retry = 0
}
