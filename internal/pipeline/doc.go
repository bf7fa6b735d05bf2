// Package pipeline implements the reactive query pipeline at the heart of
// typeahead: raw query strings pushed by the caller are debounced, deduplicated,
// and turned into at most one live asynchronous lookup, whose outcome is
// published to a latest-value cell that any number of observers can watch.
//
// The flow is fixed:
//
//	Channel.Push -> debounce (timer reset) -> dedupe-adjacent -> switch-latest
//	lookup -> Cell
//
// A burst of keystrokes collapses to a single lookup for the final query, and a
// lookup that is superseded by a newer one never writes to the output, no
// matter when it completes. Lookup failures are published as failed results and
// do not stop the pipeline.
package pipeline
