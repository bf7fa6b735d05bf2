package pipeline

import (
	"log/slog"
	"sync"
)

// Channel is the ingestion point for raw query strings. It is a transient
// broadcast source: a pushed value is delivered to every observer attached at
// push time and is never replayed to observers that attach later.
//
// Push never blocks and never fails. Observers are invoked synchronously in
// attach order, so delivery preserves arrival order.
type Channel struct {
	mu     sync.Mutex
	subs   map[int]func(query string)
	nextID int
	closed bool
}

// NewChannel creates an open query channel with no observers.
func NewChannel() *Channel {
	return &Channel{
		subs: make(map[int]func(string)),
	}
}

// Push broadcasts query to all current observers.
// Pushing to a closed channel is a misuse; it is a silent no-op apart from a
// debug log entry.
func (c *Channel) Push(query string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		slog.Debug("push on closed query channel ignored",
			slog.String("query", query),
		)
		return
	}

	for _, fn := range c.subs {
		fn(query)
	}
}

// Close terminates the channel and detaches all observers.
// Safe to call multiple times.
func (c *Channel) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return
	}

	c.closed = true
	c.subs = nil
}

// subscribe attaches an observer and returns a cancel function that detaches
// it. Subscribing to a closed channel returns a no-op cancel and the observer
// never fires.
func (c *Channel) subscribe(fn func(query string)) func() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return func() {}
	}

	id := c.nextID
	c.nextID++
	c.subs[id] = fn

	return func() {
		c.mu.Lock()
		defer c.mu.Unlock()
		if !c.closed {
			delete(c.subs, id)
		}
	}
}
