package jnav

import (
	"context"
	"sync"

	"go.uber.org/atomic"

	"github.com/BrandonKowalski/jnav/pkg/jnav/constants"
	"github.com/BrandonKowalski/jnav/pkg/jnav/internal"
)

// ChannelStats is a snapshot of a Channel's counters.
type ChannelStats struct {
	Sent      int64 // Intents accepted by Send
	Dropped   int64 // Intents discarded because every queue was full
	Delivered int64 // Intents handed to subscribers
}

// ChannelOption configures a Channel.
type ChannelOption func(*Channel)

// WithCapacity bounds every queue of the channel. Non-positive values are ignored.
func WithCapacity(capacity int) ChannelOption {
	return func(c *Channel) {
		if capacity > 0 {
			c.capacity = capacity
		}
	}
}

// Channel is an ordered, non-blocking queue of navigation intents.
//
// Intents sent while nobody is subscribed wait in a backlog that the next
// subscriber inherits. With subscribers present each one gets its own copy of
// every intent sent after it subscribed. A full queue drops the intent being
// sent, never an older one.
type Channel struct {
	mu       sync.Mutex
	capacity int
	backlog  []Intent
	subs     map[*Subscription]struct{}

	sent      atomic.Int64
	dropped   atomic.Int64
	delivered atomic.Int64
}

// NewChannel creates an empty channel. The default capacity is unbounded
// in practice (math.MaxInt).
func NewChannel(opts ...ChannelOption) *Channel {
	c := &Channel{
		capacity: constants.DefaultQueueCapacity,
		subs:     make(map[*Subscription]struct{}),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Send queues an intent without blocking and reports whether it was accepted.
// It is safe to call from any goroutine.
func (c *Channel) Send(in Intent) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	accepted := false
	if len(c.subs) == 0 {
		if len(c.backlog) < c.capacity {
			c.backlog = append(c.backlog, in)
			accepted = true
		}
	} else {
		for s := range c.subs {
			if s.push(in, c.capacity) {
				accepted = true
			}
		}
	}

	if !accepted {
		c.dropped.Inc()
		internal.GetInternalLogger().Debug("intent dropped, queue full", "intent", in.String())
		return false
	}
	c.sent.Inc()
	return true
}

// Subscribe starts a new subscription. The first subscriber takes over the
// backlog of unconsumed intents.
func (c *Channel) Subscribe() *Subscription {
	c.mu.Lock()
	defer c.mu.Unlock()

	s := &Subscription{
		ch:     c,
		signal: make(chan struct{}, 1),
		done:   make(chan struct{}),
	}
	if len(c.subs) == 0 && len(c.backlog) > 0 {
		s.queue = c.backlog
		c.backlog = nil
		s.notify()
	}
	c.subs[s] = struct{}{}
	return s
}

// Len returns the number of intents waiting for a subscriber.
func (c *Channel) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.backlog)
}

// Capacity returns the queue bound.
func (c *Channel) Capacity() int {
	return c.capacity
}

// Stats returns the channel counters.
func (c *Channel) Stats() ChannelStats {
	return ChannelStats{
		Sent:      c.sent.Load(),
		Dropped:   c.dropped.Load(),
		Delivered: c.delivered.Load(),
	}
}

// Subscription receives intents from a Channel in the order they were sent.
type Subscription struct {
	ch     *Channel
	queue  []Intent // guarded by ch.mu
	closed bool     // guarded by ch.mu
	signal chan struct{}
	done   chan struct{}
}

func (s *Subscription) push(in Intent, capacity int) bool {
	if len(s.queue) >= capacity {
		return false
	}
	s.queue = append(s.queue, in)
	s.notify()
	return true
}

func (s *Subscription) notify() {
	select {
	case s.signal <- struct{}{}:
	default:
	}
}

// Receive returns the next intent, waiting until one is sent, ctx ends
// or the subscription is closed. A done ctx wins over queued intents so
// they stay available to the next subscriber.
func (s *Subscription) Receive(ctx context.Context) (Intent, error) {
	for {
		if err := ctx.Err(); err != nil {
			return Intent{}, err
		}

		s.ch.mu.Lock()
		if s.closed {
			s.ch.mu.Unlock()
			return Intent{}, ErrClosed
		}
		if len(s.queue) > 0 {
			in := s.queue[0]
			s.queue[0] = Intent{}
			s.queue = s.queue[1:]
			s.ch.mu.Unlock()
			s.ch.delivered.Inc()
			return in, nil
		}
		s.ch.mu.Unlock()

		select {
		case <-ctx.Done():
			return Intent{}, ctx.Err()
		case <-s.done:
			return Intent{}, ErrClosed
		case <-s.signal:
		}
	}
}

// Close ends the subscription. When it was the last subscriber its
// unconsumed intents go back to the channel backlog, ahead of anything
// sent since.
func (s *Subscription) Close() {
	c := s.ch
	c.mu.Lock()
	defer c.mu.Unlock()

	if s.closed {
		return
	}
	s.closed = true
	close(s.done)
	delete(c.subs, s)

	if len(c.subs) == 0 && len(s.queue) > 0 {
		c.backlog = append(s.queue, c.backlog...)
	}
	s.queue = nil
}
