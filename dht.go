package algodht

import (
	"go.uber.org/zap"
	"gonum.org/v1/gonum/blas"
	"gonum.org/v1/gonum/blas/cblas128"

	"github.com/cwbudde/algo-dht/gpu"
)

// Options controls DHT construction.
type Options struct {
	// UseGPU requests the accelerated execution path. If no backend is
	// available the instance falls back to CPU execution for its whole
	// lifetime; the downgrade is logged as a warning, not an error.
	UseGPU bool

	// DeviceIndex selects which device to use (0 = default).
	DeviceIndex int

	// Backend overrides the process-wide registered backend. Mainly useful
	// for tests and for callers managing backend lifetime themselves.
	Backend gpu.Backend

	// Logger receives construction diagnostics and the GPU-fallback warning.
	// Nil means no logging.
	Logger *zap.Logger
}

// DHT performs the Discrete Hankel Transform of a fixed order and azimuthal
// mode on a fixed (Nz, Nr) grid. All derived state is computed at
// construction and read-only afterwards; Transform and InverseTransform only
// write the caller-supplied output array.
//
// CPU instances may be used concurrently as long as concurrent calls use
// distinct output arrays. GPU instances share two device scratch buffers
// across calls, so concurrent calls on one instance are a data race: either
// serialize calls per instance or build one instance per consumer.
type DHT struct {
	p, m   int
	nz, nr int
	rmax   float64

	r  []float64
	nu []float64

	// Complex row-major copies of the forward and inverse matrices.
	mData, invData []complex128

	dev    *deviceState
	closed bool
}

// New builds the transform for order p and azimuthal mode m on an Nr-point
// radial grid batched over Nz longitudinal points, with the radial domain
// ending at rmax (the function is assumed zero beyond that radius).
//
// m must be one of p-1, p or p+1, and both must be non-negative; otherwise
// New fails with ErrInvalidMode.
func New(p, m, nr, nz int, rmax float64, opts Options) (*DHT, error) {
	if p < 0 || m < 0 || (m != p-1 && m != p && m != p+1) {
		return nil, ErrInvalidMode
	}
	if nr < 1 || nz < 1 || rmax <= 0 {
		return nil, ErrInvalidGrid
	}
	log := orNop(opts.Logger)

	roots := besselRoots(m, nr)
	d := &DHT{
		p:    p,
		m:    m,
		nz:   nz,
		nr:   nr,
		rmax: rmax,
		r:    radialGrid(nr, rmax),
		nu:   spectralGrid(roots, rmax),
	}

	fwd, inv, err := buildMatrices(p, m, nr, d.r, d.nu, roots, rmax, log)
	if err != nil {
		return nil, err
	}
	d.mData = toComplex(fwd)
	d.invData = toComplex(inv)

	if opts.UseGPU {
		backend, berr := gpu.Resolve(opts.Backend)
		if berr != nil {
			log.Warn("gpu backend unavailable, performing the Hankel transform on the cpu",
				zap.Error(berr), zap.Int("p", p), zap.Int("m", m))
		} else {
			dev, derr := newDeviceState(backend, opts.DeviceIndex, nz, nr, d.mData, d.invData)
			if derr != nil {
				return nil, derr
			}
			d.dev = dev
			log.Debug("gpu execution enabled",
				zap.String("backend", backend.Info().Name),
				zap.Int("p", p), zap.Int("m", m))
		}
	}
	return d, nil
}

// Transform computes the forward DHT of f, writing g = f * M. Both arrays
// must have the configured (Nz, Nr) shape and must not share backing storage.
func (d *DHT) Transform(f, g *Array2D) error {
	if err := d.check(f, g); err != nil {
		return err
	}
	if d.dev != nil {
		return d.dev.apply(d.dev.dM, f, g)
	}
	d.mul(f, g, d.mData)
	return nil
}

// InverseTransform computes the inverse DHT of g, writing f = g * invM.
// Both arrays must have the configured (Nz, Nr) shape and must not share
// backing storage.
func (d *DHT) InverseTransform(g, f *Array2D) error {
	if err := d.check(g, f); err != nil {
		return err
	}
	if d.dev != nil {
		return d.dev.apply(d.dev.dInvM, g, f)
	}
	d.mul(g, f, d.invData)
	return nil
}

func (d *DHT) check(in, out *Array2D) error {
	if d.closed {
		return ErrClosed
	}
	if in == nil || out == nil {
		return ErrNilArray
	}
	if in.rows != d.nz || in.cols != d.nr || out.rows != d.nz || out.cols != d.nr {
		return ErrShapeMismatch
	}
	return nil
}

// mul writes out = in * matrix as a single zgemm over the row-major backing
// slices (alpha = 1, beta = 0), the same product the device path performs on
// column-major buffers.
func (d *DHT) mul(in, out *Array2D, matrix []complex128) {
	a := cblas128.General{Rows: d.nz, Cols: d.nr, Stride: d.nr, Data: in.data}
	b := cblas128.General{Rows: d.nr, Cols: d.nr, Stride: d.nr, Data: matrix}
	c := cblas128.General{Rows: d.nz, Cols: d.nr, Stride: d.nr, Data: out.data}
	cblas128.Gemm(blas.NoTrans, blas.NoTrans, 1, a, b, 0, c)
}

// R returns the radial grid computed at construction. The slice is owned by
// the DHT and must not be modified.
func (d *DHT) R() []float64 {
	return d.r
}

// Nu returns the spectral frequency grid computed at construction. The slice
// is owned by the DHT and must not be modified.
func (d *DHT) Nu() []float64 {
	return d.nu
}

// Order returns the transform order p.
func (d *DHT) Order() int {
	return d.p
}

// Mode returns the azimuthal mode m.
func (d *DHT) Mode() int {
	return d.m
}

// Shape returns the configured (Nz, Nr) array shape.
func (d *DHT) Shape() (nz, nr int) {
	return d.nz, d.nr
}

// Accelerated reports whether this instance executes on a GPU backend.
func (d *DHT) Accelerated() bool {
	return d.dev != nil
}

// Close releases device resources. It is a no-op for CPU instances apart
// from marking the transform closed.
func (d *DHT) Close() error {
	if d.closed {
		return nil
	}
	d.closed = true
	if d.dev == nil {
		return nil
	}
	err := d.dev.close()
	d.dev = nil
	return err
}
