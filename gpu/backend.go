package gpu

import "sync"

// Backend is implemented by GPU backends (CUDA, ROCm, Metal, Vulkan, etc.).
// It is responsible for device discovery, buffer allocation, and execution.
type Backend interface {
	Info() BackendInfo
	Available() bool
	Devices() ([]DeviceInfo, error)
	NewContext(deviceIndex int) (Context, error)
}

// Context represents a backend-specific GPU context tied to a device.
type Context interface {
	Device() DeviceInfo
	// NewBuffer allocates a zeroed device buffer of elemCount complex128
	// elements.
	NewBuffer(elemCount int) (Buffer, error)
	// NewStream creates an execution stream/queue.
	NewStream() (Stream, error)
	// NewMatmul creates the backend's batched matrix-multiply primitive.
	NewMatmul() (Matmul, error)
	Close() error
}

// Buffer is a device buffer of complex128 elements.
type Buffer interface {
	Len() int
	// Upload copies from host to device.
	Upload(src []complex128) error
	// Download copies from device to host.
	Download(dst []complex128) error
	Close() error
}

// Stream represents an execution queue/stream.
type Stream interface {
	Synchronize() error
	Close() error
}

// Matmul executes general dense complex matrix products on column-major
// device buffers: dst = a*b with a of shape (m, k), b of shape (k, n) and
// dst of shape (m, n), alpha = 1 and beta = 0.
type Matmul interface {
	Gemm(dst, a, b Buffer, m, k, n int) error
	Close() error
}

var (
	backendMu sync.RWMutex
	backend   Backend
)

// RegisterBackend registers a GPU backend. Passing nil clears the backend.
func RegisterBackend(b Backend) {
	backendMu.Lock()
	backend = b
	backendMu.Unlock()
}

// Registered returns the currently registered backend, or nil.
func Registered() Backend {
	backendMu.RLock()
	b := backend
	backendMu.RUnlock()
	return b
}

// Resolve returns the backend to execute on: the override if non-nil,
// otherwise the registered backend. It returns ErrNoBackend when neither is
// set and ErrBackendUnavailable when the backend reports no usable device.
func Resolve(override Backend) (Backend, error) {
	b := override
	if b == nil {
		b = Registered()
	}
	if b == nil {
		return nil, ErrNoBackend
	}
	if !b.Available() {
		return nil, ErrBackendUnavailable
	}
	return b, nil
}

// CurrentBackendInfo reports the currently registered backend, if any.
func CurrentBackendInfo() (BackendInfo, bool) {
	b := Registered()
	if b == nil {
		return BackendInfo{}, false
	}
	return b.Info(), true
}
