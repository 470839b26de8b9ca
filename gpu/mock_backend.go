package gpu

import "fmt"

// MockBackend is a CPU-backed GPU backend for development and tests.
// It satisfies the GPU backend interfaces but executes on the CPU, over the
// same column-major buffer layout a real device backend would use.
type MockBackend struct {
	device DeviceInfo
}

// NewMockBackend returns a mock backend with a single fake device.
func NewMockBackend() *MockBackend {
	return &MockBackend{
		device: DeviceInfo{
			Name:       "MockGPU",
			Vendor:     "algodht",
			Driver:     "mock",
			MemoryMB:   0,
			ComputeCap: "cpu",
		},
	}
}

func (b *MockBackend) Info() BackendInfo {
	return BackendInfo{
		Name:        "mock",
		Version:     "0.1",
		Description: "CPU-backed mock GPU backend",
	}
}

func (b *MockBackend) Available() bool {
	return true
}

func (b *MockBackend) Devices() ([]DeviceInfo, error) {
	return []DeviceInfo{b.device}, nil
}

func (b *MockBackend) NewContext(deviceIndex int) (Context, error) {
	if deviceIndex != 0 {
		return nil, fmt.Errorf("mock backend: device index %d out of range", deviceIndex)
	}
	return &mockContext{device: b.device}, nil
}

// RegisterMockBackend registers the mock backend as the active backend.
func RegisterMockBackend() {
	RegisterBackend(NewMockBackend())
}

type mockContext struct {
	device DeviceInfo
}

func (c *mockContext) Device() DeviceInfo {
	return c.device
}

func (c *mockContext) NewBuffer(elemCount int) (Buffer, error) {
	if elemCount < 0 {
		return nil, ErrInvalidLength
	}
	return &mockBuffer{data: make([]complex128, elemCount)}, nil
}

func (c *mockContext) NewStream() (Stream, error) {
	return &mockStream{}, nil
}

func (c *mockContext) NewMatmul() (Matmul, error) {
	return &mockMatmul{}, nil
}

func (c *mockContext) Close() error {
	return nil
}

type mockBuffer struct {
	data []complex128
}

func (b *mockBuffer) Len() int {
	return len(b.data)
}

func (b *mockBuffer) Upload(src []complex128) error {
	if len(src) != len(b.data) {
		return ErrLengthMismatch
	}
	copy(b.data, src)
	return nil
}

func (b *mockBuffer) Download(dst []complex128) error {
	if len(dst) != len(b.data) {
		return ErrLengthMismatch
	}
	copy(dst, b.data)
	return nil
}

func (b *mockBuffer) Close() error {
	b.data = nil
	return nil
}

type mockStream struct{}

func (s *mockStream) Synchronize() error { return nil }
func (s *mockStream) Close() error       { return nil }

// mockMatmul computes dst = a*b over column-major complex buffers.
type mockMatmul struct{}

func (mm *mockMatmul) Gemm(dst, a, b Buffer, m, k, n int) error {
	if m < 1 || k < 1 || n < 1 {
		return ErrInvalidLength
	}
	out, ok := dst.(*mockBuffer)
	if !ok {
		return ErrTypeMismatch
	}
	in, ok := a.(*mockBuffer)
	if !ok {
		return ErrTypeMismatch
	}
	mat, ok := b.(*mockBuffer)
	if !ok {
		return ErrTypeMismatch
	}
	if len(out.data) < m*n || len(in.data) < m*k || len(mat.data) < k*n {
		return ErrLengthMismatch
	}
	for j := 0; j < n; j++ {
		for i := 0; i < m; i++ {
			var acc complex128
			for l := 0; l < k; l++ {
				acc += in.data[i+l*m] * mat.data[l+j*k]
			}
			out.data[i+j*m] = acc
		}
	}
	return nil
}

func (mm *mockMatmul) Close() error { return nil }
