// Package gpu provides the accelerated execution backend for algodht.
//
// This package defines the device contract the DHT needs: persistent complex
// device buffers and a batched dense matrix-multiply primitive operating on
// column-major data. A backend must be registered at runtime (or injected at
// DHT construction); the CPU-backed mock backend serves tests and
// environments without a device.
package gpu
