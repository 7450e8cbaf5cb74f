package bitmap

import "errors"

// Common errors for bitmap operations.
var (
	// ErrInvalidDimensions is returned when width or height is non-positive.
	ErrInvalidDimensions = errors.New("bitmap: invalid dimensions")

	// ErrInvalidPixelSize is returned when the pixel size is non-positive.
	ErrInvalidPixelSize = errors.New("bitmap: invalid pixel size")

	// ErrInvalidStride is returned when stride is less than width * pixel size.
	ErrInvalidStride = errors.New("bitmap: stride too small for width")

	// ErrDataTooSmall is returned when the provided memory cannot hold the view.
	ErrDataTooSmall = errors.New("bitmap: data buffer too small")

	// ErrOutOfBounds is returned when a sub-rectangle lies outside the view.
	ErrOutOfBounds = errors.New("bitmap: rectangle out of bounds")

	// ErrDimensionMismatch is returned when two views must have the same
	// width and height and do not.
	ErrDimensionMismatch = errors.New("bitmap: dimension mismatch")

	// ErrPixelSizeMismatch is returned when a pixel type does not match the
	// pixel size of the view it is used with.
	ErrPixelSizeMismatch = errors.New("bitmap: pixel size mismatch")

	// ErrInvalidPixelType is returned for pixel types that contain pointers
	// and so cannot be reinterpreted from raw memory.
	ErrInvalidPixelType = errors.New("bitmap: pixel type is not plain data")

	// ErrUnsupportedPixelSize is returned by Mirror for pixel sizes other
	// than 1, 2, 3, 4, 8, 12 and 16 bytes.
	ErrUnsupportedPixelSize = errors.New("bitmap: unsupported pixel size")

	// ErrNoConverter is returned when no conversion is known between two
	// pixel types.
	ErrNoConverter = errors.New("bitmap: no pixel converter")

	// ErrNoComposition is returned by ComposePixels when neither the source
	// type composes onto the destination type nor the destination type can
	// blend a converted source.
	ErrNoComposition = errors.New("bitmap: no composition for pixel types")

	// ErrSingularTransform is returned when a transform cannot be inverted.
	ErrSingularTransform = errors.New("bitmap: transform is not invertible")

	// ErrDimensionTooLarge is returned when a view is too large for the
	// fixed-point resampler.
	ErrDimensionTooLarge = errors.New("bitmap: dimension exceeds fixed-point range")
)
