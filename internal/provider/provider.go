// Package provider implements search providers for the typeahead pipeline.
//
// The pipeline only requires the Provider interface; everything else here is
// one concrete implementation (an in-memory substring matcher) plus a caching
// decorator.
package provider

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"time"

	taerrors "github.com/guicastle/typeahead/internal/errors"
)

// Provider performs query lookups. All methods must be safe for concurrent
// use. Search returns an empty slice (not nil) when nothing matches.
type Provider interface {
	// Search returns all items matching query. An empty query matches
	// everything. The lookup may fail; it honors ctx cancellation.
	Search(ctx context.Context, query string) ([]string, error)

	// Close releases provider resources. Safe to call multiple times; Search
	// fails after Close.
	Close() error
}

// Static is an in-memory provider backed by a fixed item list. Matching is a
// case-insensitive substring test; an empty query returns the full list in
// original order.
type Static struct {
	items []string
	delay time.Duration

	mu     sync.Mutex
	closed bool
}

// NewStatic creates a provider over items. The slice is not copied; callers
// must not mutate it afterwards.
func NewStatic(items []string) *Static {
	return &Static{items: items}
}

// WithDelay makes every lookup sleep for d before answering, to simulate a
// remote provider in demos. Returns the provider for chaining.
func (s *Static) WithDelay(d time.Duration) *Static {
	s.delay = d
	return s
}

// Search implements Provider.
func (s *Static) Search(ctx context.Context, query string) ([]string, error) {
	s.mu.Lock()
	closed := s.closed
	s.mu.Unlock()
	if closed {
		return nil, taerrors.New(taerrors.ErrCodeProviderClosed, "provider is closed", nil)
	}

	if s.delay > 0 {
		timer := time.NewTimer(s.delay)
		defer timer.Stop()
		select {
		case <-timer.C:
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	} else if err := ctx.Err(); err != nil {
		return nil, err
	}

	needle := strings.ToLower(query)
	matches := make([]string, 0, len(s.items))
	for _, item := range s.items {
		if strings.Contains(strings.ToLower(item), needle) {
			matches = append(matches, item)
		}
	}
	return matches, nil
}

// Close implements Provider.
func (s *Static) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.closed = true
	return nil
}

// ItemsFromReader reads one item per line, skipping blank lines and comment
// lines starting with '#'.
func ItemsFromReader(r io.Reader) ([]string, error) {
	var items []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		items = append(items, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read dataset: %w", err)
	}
	return items, nil
}

// LoadItems reads a dataset file with ItemsFromReader semantics.
func LoadItems(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open dataset: %w", err)
	}
	defer f.Close()
	return ItemsFromReader(f)
}
