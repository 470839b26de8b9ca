package gpu

import "errors"

var (
	// ErrNoBackend is returned when no GPU backend is registered.
	ErrNoBackend = errors.New("algodht/gpu: no backend registered")

	// ErrBackendUnavailable is returned when the backend is registered but not
	// available on the current system (e.g., no device, driver missing).
	ErrBackendUnavailable = errors.New("algodht/gpu: backend unavailable")

	// ErrInvalidLength is returned for invalid buffer sizes.
	ErrInvalidLength = errors.New("algodht/gpu: invalid length")

	// ErrLengthMismatch is returned when host or device lengths are not as required.
	ErrLengthMismatch = errors.New("algodht/gpu: length mismatch")

	// ErrTypeMismatch is returned when a buffer from a different backend is
	// passed to a device operation.
	ErrTypeMismatch = errors.New("algodht/gpu: buffer type mismatch")
)
