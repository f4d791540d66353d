package jnav

import (
	"context"
	"errors"

	"go.uber.org/atomic"

	"github.com/BrandonKowalski/jnav/pkg/jnav/internal"
)

// Lifecycle stands in for the UI scope that owns a router. Intents consumed
// after Finish are dropped, and only one Collect may run per Lifecycle.
type Lifecycle struct {
	finishing  atomic.Bool
	collecting atomic.Bool
}

// NewLifecycle creates an active lifecycle.
func NewLifecycle() *Lifecycle {
	return &Lifecycle{}
}

// Finish marks the scope as finishing.
func (l *Lifecycle) Finish() {
	l.finishing.Store(true)
}

// IsFinishing reports whether Finish was called.
func (l *Lifecycle) IsFinishing() bool {
	return l.finishing.Load()
}

// IsCollecting reports whether a Collect is running for this lifecycle.
func (l *Lifecycle) IsCollecting() bool {
	return l.collecting.Load()
}

// CollectOption configures Collect.
type CollectOption func(*collectConfig)

type collectConfig struct {
	afterDispatch func(Intent)
}

// AfterDispatch registers fn to run after each intent has been applied.
func AfterDispatch(fn func(Intent)) CollectOption {
	return func(c *collectConfig) {
		c.afterDispatch = fn
	}
}

// Collect subscribes to ch and applies every intent to r until ctx ends.
// It must run on the goroutine that owns r. Router errors are logged, not
// returned. lc may be nil for a scope that never finishes.
//
// Collect returns nil when ctx is cancelled and ErrAlreadyCollecting when
// lc already has an active Collect.
func Collect(ctx context.Context, ch *Channel, r Router, lc *Lifecycle, opts ...CollectOption) error {
	cfg := collectConfig{}
	for _, opt := range opts {
		opt(&cfg)
	}

	if lc != nil {
		if !lc.collecting.CompareAndSwap(false, true) {
			return ErrAlreadyCollecting
		}
		defer lc.collecting.Store(false)
	}

	sub := ch.Subscribe()
	defer sub.Close()

	logger := internal.GetInternalLogger()

	for {
		in, err := sub.Receive(ctx)
		if err != nil {
			if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
				return nil
			}
			return err
		}

		if lc != nil && lc.IsFinishing() {
			logger.Debug("intent dropped, scope finishing", "intent", in.String())
			continue
		}

		if err := Apply(r, in); err != nil {
			logger.Error("navigation failed", "intent", in.String(), "error", err)
		}

		if cfg.afterDispatch != nil {
			cfg.afterDispatch(in)
		}
	}
}
