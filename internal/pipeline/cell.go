package pipeline

import "sync"

// Cell is a latest-value broadcast cell: it remembers the most recently
// published Result and replays it immediately to every new subscriber, then
// delivers each later published value.
//
// Delivery conflates: a subscriber that lags behind sees the newest value, not
// every intermediate one. Subscriber channels are closed when the owning
// pipeline is disposed.
type Cell struct {
	mu      sync.Mutex
	current Result
	subs    map[int]chan Result
	nextID  int
	closed  bool
}

func newCell(seed Result) *Cell {
	return &Cell{
		current: seed,
		subs:    make(map[int]chan Result),
	}
}

// Current returns the most recently published value.
// Valid at any time, including after close.
func (c *Cell) Current() Result {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.current
}

// Subscribe attaches an observer. The returned channel immediately yields the
// current value, then every subsequently published value (conflated to the
// newest). The cancel function detaches the observer and closes its channel;
// it is safe to call after the cell itself has closed.
func (c *Cell) Subscribe() (<-chan Result, func()) {
	c.mu.Lock()
	defer c.mu.Unlock()

	ch := make(chan Result, 1)
	ch <- c.current

	if c.closed {
		close(ch)
		return ch, func() {}
	}

	id := c.nextID
	c.nextID++
	c.subs[id] = ch

	return ch, func() {
		c.mu.Lock()
		defer c.mu.Unlock()
		if _, ok := c.subs[id]; ok {
			delete(c.subs, id)
			close(ch)
		}
	}
}

// publish stores r as the current value and offers it to every subscriber,
// replacing any undelivered older value.
func (c *Cell) publish(r Result) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return
	}

	c.current = r
	for _, ch := range c.subs {
		select {
		case ch <- r:
		default:
			// Subscriber lagging: drop its stale value, keep the newest.
			select {
			case <-ch:
			default:
			}
			ch <- r
		}
	}
}

// close terminates the cell and closes all subscriber channels. The last
// published value remains readable via Current.
func (c *Cell) close() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return
	}

	c.closed = true
	for id, ch := range c.subs {
		delete(c.subs, id)
		close(ch)
	}
}
