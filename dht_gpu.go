package algodht

import (
	"github.com/cwbudde/algo-dht/gpu"
)

// deviceState owns the device-resident half of a GPU-mode DHT: the two
// (Nz, Nr) scratch buffers, the uploaded transform matrices, and a host
// staging slice for layout marshalling. Everything is allocated once at
// construction and reused by every transform call.
//
// The scratch buffers are a single-slot resource; see the concurrency note
// on DHT.
type deviceState struct {
	ctx    gpu.Context
	stream gpu.Stream
	mm     gpu.Matmul

	dIn, dOut gpu.Buffer // (nz, nr) column-major scratch
	dM, dInvM gpu.Buffer // (nr, nr) column-major matrices

	nz, nr int
	stage  []complex128 // host staging, nz*nr
}

// newDeviceState opens a context on the backend, allocates the scratch
// buffers and uploads column-major complex copies of the transform matrices.
// On any failure it releases whatever was already acquired.
func newDeviceState(backend gpu.Backend, deviceIndex, nz, nr int, mRM, invRM []complex128) (*deviceState, error) {
	ctx, err := backend.NewContext(deviceIndex)
	if err != nil {
		return nil, err
	}
	d := &deviceState{ctx: ctx, nz: nz, nr: nr, stage: make([]complex128, nz*nr)}

	fail := func(err error) (*deviceState, error) {
		_ = d.close()
		return nil, err
	}

	if d.stream, err = ctx.NewStream(); err != nil {
		return fail(err)
	}
	if d.mm, err = ctx.NewMatmul(); err != nil {
		return fail(err)
	}
	if d.dIn, err = ctx.NewBuffer(nz * nr); err != nil {
		return fail(err)
	}
	if d.dOut, err = ctx.NewBuffer(nz * nr); err != nil {
		return fail(err)
	}
	if d.dM, err = d.uploadMatrix(mRM); err != nil {
		return fail(err)
	}
	if d.dInvM, err = d.uploadMatrix(invRM); err != nil {
		return fail(err)
	}
	return d, nil
}

// uploadMatrix allocates an (nr, nr) device buffer and fills it with the
// column-major conversion of the row-major matrix data.
func (d *deviceState) uploadMatrix(rowMajor []complex128) (gpu.Buffer, error) {
	buf, err := d.ctx.NewBuffer(d.nr * d.nr)
	if err != nil {
		return nil, err
	}
	cm := make([]complex128, d.nr*d.nr)
	rowToCol(cm, rowMajor, d.nr, d.nr)
	if err := buf.Upload(cm); err != nil {
		_ = buf.Close()
		return nil, err
	}
	return buf, nil
}

// apply runs one transform: marshal the row-major input into the
// column-major input scratch, multiply against the device matrix into the
// output scratch (alpha=1, beta=0), and marshal the result back into the
// row-major output array.
func (d *deviceState) apply(matrix gpu.Buffer, in, out *Array2D) error {
	rowToCol(d.stage, in.data, d.nz, d.nr)
	if err := d.dIn.Upload(d.stage); err != nil {
		return err
	}
	if err := d.mm.Gemm(d.dOut, d.dIn, matrix, d.nz, d.nr, d.nr); err != nil {
		return err
	}
	if err := d.stream.Synchronize(); err != nil {
		return err
	}
	if err := d.dOut.Download(d.stage); err != nil {
		return err
	}
	colToRow(out.data, d.stage, d.nz, d.nr)
	return nil
}

func (d *deviceState) close() error {
	var firstErr error
	closeAll := func(cs ...interface{ Close() error }) {
		for _, c := range cs {
			if c == nil {
				continue
			}
			if err := c.Close(); err != nil && firstErr == nil {
				firstErr = err
			}
		}
	}
	closeAll(d.dIn, d.dOut, d.dM, d.dInvM)
	d.dIn, d.dOut, d.dM, d.dInvM = nil, nil, nil, nil
	closeAll(d.mm, d.stream)
	d.mm, d.stream = nil, nil
	closeAll(d.ctx)
	d.ctx = nil
	return firstErr
}
