package algodht

import "errors"

// Sentinel errors returned by DHT construction and transform calls.
var (
	// ErrInvalidMode is returned when the azimuthal mode is not one of
	// p-1, p or p+1 for transform order p, or when p or m is negative.
	ErrInvalidMode = errors.New("algodht: azimuthal mode must be p-1, p or p+1")

	// ErrInvalidGrid is returned for non-positive grid dimensions or a
	// non-positive domain radius.
	ErrInvalidGrid = errors.New("algodht: invalid grid dimensions")

	// ErrShapeMismatch is returned when a caller-supplied array does not
	// match the (Nz, Nr) shape chosen at construction.
	ErrShapeMismatch = errors.New("algodht: array shape mismatch")

	// ErrNilArray is returned when a nil array is passed to a transform method.
	ErrNilArray = errors.New("algodht: nil array")

	// ErrSingularMatrix is returned when the inverse transform matrix cannot
	// be inverted or factorized.
	ErrSingularMatrix = errors.New("algodht: transform matrix is singular")

	// ErrClosed is returned by transform calls after Close.
	ErrClosed = errors.New("algodht: transform is closed")
)
