package bitmap

// MirrorOption configures a Mirror call.
//
// Example:
//
//	// Single-threaded flip
//	err := bitmap.Mirror(v, true, false, bitmap.WithMultithreading(false))
type MirrorOption func(*mirrorOptions)

// mirrorOptions holds optional configuration for Mirror.
type mirrorOptions struct {
	multithreading    bool
	parallelThreshold int
}

// defaultParallelThreshold is the smallest height, in rows, for which a
// horizontal flip is split across workers.
const defaultParallelThreshold = 64

// mirrorWorkers is the number of row ranges a parallel flip is split into.
const mirrorWorkers = 4

// defaultMirrorOptions returns the default mirror options.
func defaultMirrorOptions() mirrorOptions {
	return mirrorOptions{
		multithreading:    true,
		parallelThreshold: defaultParallelThreshold,
	}
}

// WithMultithreading enables or disables the partitioned horizontal flip.
// It is enabled by default.
func WithMultithreading(enabled bool) MirrorOption {
	return func(o *mirrorOptions) {
		o.multithreading = enabled
	}
}

// WithParallelThreshold sets the minimum height, in rows, at which a
// horizontal flip runs on several goroutines. Values below 1 are treated
// as 1.
func WithParallelThreshold(rows int) MirrorOption {
	return func(o *mirrorOptions) {
		o.parallelThreshold = max(rows, 1)
	}
}
