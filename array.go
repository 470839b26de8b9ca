package algodht

// Array2D is a dense row-major array of complex field samples with shape
// (rows, cols) = (Nz, Nr): row index walks the longitudinal axis, column
// index the radial axis. The zero value is not usable; create instances
// with NewArray2D or WrapArray2D.
type Array2D struct {
	rows, cols int
	data       []complex128
}

// NewArray2D allocates a zeroed (rows, cols) array.
func NewArray2D(rows, cols int) *Array2D {
	if rows < 1 || cols < 1 {
		panic("algodht: non-positive Array2D dimensions")
	}
	return &Array2D{rows: rows, cols: cols, data: make([]complex128, rows*cols)}
}

// WrapArray2D wraps an existing row-major backing slice without copying.
// len(data) must equal rows*cols.
func WrapArray2D(rows, cols int, data []complex128) *Array2D {
	if rows < 1 || cols < 1 || len(data) != rows*cols {
		panic("algodht: Array2D backing slice does not match dimensions")
	}
	return &Array2D{rows: rows, cols: cols, data: data}
}

// Dims returns the (rows, cols) shape.
func (a *Array2D) Dims() (rows, cols int) {
	return a.rows, a.cols
}

// At returns the element at row i, column j.
func (a *Array2D) At(i, j int) complex128 {
	return a.data[i*a.cols+j]
}

// Set assigns the element at row i, column j.
func (a *Array2D) Set(i, j int, v complex128) {
	a.data[i*a.cols+j] = v
}

// Data returns the row-major backing slice. Mutating it mutates the array.
func (a *Array2D) Data() []complex128 {
	return a.data
}
