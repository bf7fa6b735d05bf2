package pipeline

// Result is a single published pipeline output: either the item list from the
// last settled lookup, or the error that lookup failed with. A failed lookup
// replaces any previously published items; observers see the failure, not a
// blend of old data and new error.
type Result struct {
	// Items holds the provider's matches in provider order.
	// Nil when Err is set.
	Items []string

	// Err is the lookup failure, if any.
	Err error
}

// Failed reports whether this result carries a lookup failure.
func (r Result) Failed() bool {
	return r.Err != nil
}

// emptyResult is the seed value published before any lookup settles, so
// observers always have a current value to render.
func emptyResult() Result {
	return Result{Items: []string{}}
}
