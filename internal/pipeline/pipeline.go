package pipeline

import (
	"context"
	"log/slog"
	"sync"
	"time"

	taerrors "github.com/guicastle/typeahead/internal/errors"
)

// DefaultWindow is the debounce window used when none is configured.
const DefaultWindow = 300 * time.Millisecond

// Searcher performs an asynchronous lookup for a query. Implementations may
// fail and may take arbitrarily long; the pipeline never imposes a timeout of
// its own. The context is cancelled when the lookup is superseded or the
// pipeline is disposed.
type Searcher interface {
	Search(ctx context.Context, query string) ([]string, error)
}

// Pipeline subscribes to a Channel and turns its raw query stream into a
// stream of lookup results. Stages, in order:
//
//  1. Debounce: each arrival resets a timer; only the timer firing propagates,
//     so a burst collapses to its last query.
//  2. Dedupe-adjacent: a query equal to the previously forwarded one is dropped.
//  3. Switch-latest lookup: each forwarded query starts a Searcher call tagged
//     with a generation number; a completion whose generation is no longer the
//     latest is discarded, so the output always reflects the most recently
//     issued lookup regardless of completion order.
//  4. Publish: success and failure alike are written to the output cell. A
//     failed lookup never stops the pipeline.
type Pipeline struct {
	searcher Searcher
	window   time.Duration
	out      *Cell

	mu           sync.Mutex
	timer        *time.Timer
	pending      string
	lastSent     string
	hasSent      bool
	gen          uint64
	cancelLookup context.CancelFunc
	unsubscribe  func()
	disposed     bool
}

// New creates a pipeline subscribed to ch. A window <= 0 selects
// DefaultWindow. The output cell is seeded with an empty result so observers
// have a value before the first lookup settles.
func New(ch *Channel, searcher Searcher, window time.Duration) *Pipeline {
	if window <= 0 {
		window = DefaultWindow
	}

	p := &Pipeline{
		searcher: searcher,
		window:   window,
		out:      newCell(emptyResult()),
	}
	p.unsubscribe = ch.subscribe(p.onQuery)
	return p
}

// Subscribe attaches an observer to the output. The returned channel yields
// the current result immediately, then every later one; it closes on Dispose.
func (p *Pipeline) Subscribe() (<-chan Result, func()) {
	return p.out.Subscribe()
}

// Current returns the most recently published result.
func (p *Pipeline) Current() Result {
	return p.out.Current()
}

// onQuery is the Channel observer: it records the query and resets the
// debounce timer.
func (p *Pipeline) onQuery(query string) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.disposed {
		return
	}

	p.pending = query
	if p.timer != nil {
		p.timer.Stop()
	}
	p.timer = time.AfterFunc(p.window, p.fire)
}

// fire runs when the debounce window elapses with no newer arrival. It applies
// the dedupe-adjacent rule and, if the query survives, issues a lookup that
// supersedes any still in flight.
func (p *Pipeline) fire() {
	p.mu.Lock()

	if p.disposed {
		p.mu.Unlock()
		return
	}

	query := p.pending
	if p.hasSent && query == p.lastSent {
		p.mu.Unlock()
		return
	}
	p.lastSent = query
	p.hasSent = true

	p.gen++
	gen := p.gen
	if p.cancelLookup != nil {
		p.cancelLookup()
	}
	ctx, cancel := context.WithCancel(context.Background())
	p.cancelLookup = cancel
	p.mu.Unlock()

	go p.lookup(ctx, gen, query)
}

// lookup runs the Searcher call for one forwarded query and publishes its
// outcome, unless a newer lookup was issued in the meantime.
func (p *Pipeline) lookup(ctx context.Context, gen uint64, query string) {
	items, err := p.searcher.Search(ctx, query)

	// Publishing under the pipeline lock keeps the generation check and the
	// write to the cell atomic with respect to newer lookups.
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.disposed || gen != p.gen {
		slog.Debug("discarding superseded lookup",
			slog.String("query", query),
			slog.Uint64("generation", gen),
		)
		return
	}

	if err != nil {
		slog.Warn("lookup failed",
			slog.String("query", query),
			slog.String("error", err.Error()),
		)
		p.out.publish(Result{
			Err: taerrors.LookupError("lookup failed", err).WithDetail("query", query),
		})
		return
	}

	p.out.publish(Result{Items: items})
}

// Dispose tears the pipeline down: the pending debounce timer is cancelled,
// any in-flight lookup is cancelled and its eventual completion discarded, the
// channel subscription is released, and the output cell is closed. Dispose is
// meant to be called exactly once; further calls are no-ops.
func (p *Pipeline) Dispose() {
	p.mu.Lock()

	if p.disposed {
		p.mu.Unlock()
		return
	}

	p.disposed = true
	if p.timer != nil {
		p.timer.Stop()
	}
	if p.cancelLookup != nil {
		p.cancelLookup()
	}
	unsubscribe := p.unsubscribe
	p.mu.Unlock()

	// Outside the pipeline lock: the channel invokes onQuery under its own
	// lock, so unsubscribing while holding p.mu could deadlock.
	if unsubscribe != nil {
		unsubscribe()
	}
	p.out.close()
}
