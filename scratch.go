package bitmap

import "github.com/gogpu/bitmap/internal/scratch"

// borrowRow takes a zeroed row of n pixels of type T from the scratch pool.
// T must be plain data. Call the returned function to give the row back;
// the row must not be used afterwards.
func borrowRow[T any](n int) ([]T, func()) {
	buf := scratch.Get(n * SizeOf[T]())
	return castSlice[T](buf), func() { scratch.Put(buf) }
}
