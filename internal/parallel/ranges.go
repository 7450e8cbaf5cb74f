// Package parallel splits row-oriented work into disjoint ranges and runs
// them concurrently.
//
// Every range is owned by exactly one goroutine, so callers that only touch
// rows inside their own range need no further synchronization.
package parallel

import "golang.org/x/sync/errgroup"

// Range is a half-open interval of rows [Start, End).
type Range struct {
	Start, End int
}

// Len returns the number of rows in r.
func (r Range) Len() int {
	return r.End - r.Start
}

// Split partitions [0, n) into at most parts contiguous, non-overlapping
// ranges of near-equal size. Earlier ranges receive the remainder rows.
// Empty ranges are never returned.
func Split(n, parts int) []Range {
	if n <= 0 {
		return nil
	}
	if parts < 1 {
		parts = 1
	}
	if parts > n {
		parts = n
	}

	ranges := make([]Range, parts)
	size, rem := n/parts, n%parts
	start := 0
	for i := range ranges {
		end := start + size
		if i < rem {
			end++
		}
		ranges[i] = Range{Start: start, End: end}
		start = end
	}
	return ranges
}

// Rows runs fn once per range of Split(n, parts), each in its own
// goroutine, and waits for all of them. It returns the first error.
// With a single range fn runs on the calling goroutine.
func Rows(n, parts int, fn func(r Range) error) error {
	ranges := Split(n, parts)
	switch len(ranges) {
	case 0:
		return nil
	case 1:
		return fn(ranges[0])
	}

	var g errgroup.Group
	for _, r := range ranges {
		g.Go(func() error {
			return fn(r)
		})
	}
	return g.Wait()
}
