package algodht

// Layout marshalling between the row-major host arrays and the column-major
// buffers required by the device GEMM primitive. Both directions preserve
// the logical element-to-position mapping: element (i, j) of the (rows, cols)
// matrix moves between src[i*cols+j] and dst[i+j*rows].

// rowToCol copies the row-major (rows, cols) matrix src into dst in
// column-major order. Slices must not alias.
func rowToCol(dst, src []complex128, rows, cols int) {
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			dst[i+j*rows] = src[i*cols+j]
		}
	}
}

// colToRow copies the column-major (rows, cols) matrix src into dst in
// row-major order. Slices must not alias.
func colToRow(dst, src []complex128, rows, cols int) {
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			dst[i*cols+j] = src[i+j*rows]
		}
	}
}
