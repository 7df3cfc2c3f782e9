// Package kernel implements the per-sample conversion kernels.
//
// Every kernel has the signature of Func: it reads samples records from src,
// writes samples records to dst and reports how many it converted, which is
// always samples. Records are packed and interleaved; multi-byte elements
// are stored in host byte order. Kernels do not validate their arguments:
// callers hand them slices already sized to samples*stride (see
// buffer.NewView), and Go's bounds checks turn any violation into a panic
// instead of an out-of-range access.
//
// Kernels are pure functions over caller-owned memory. They may run
// concurrently on disjoint buffers.
package kernel

import (
	"encoding/binary"
	"math"
)

// Func converts samples records from src to dst and returns the number of
// records converted.
type Func func(src, dst []byte, samples int) int

// AlphaThreshold is the alpha value below which a pixel is treated as fully
// transparent: gamma encoding of its color is skipped and unpremultiplying
// it yields zero color instead of dividing.
const AlphaThreshold = 0.000000152590219

// Element sizes in bytes.
const (
	SizeU8     = 1
	SizeU16    = 2
	SizeHalf   = 2
	SizeFloat  = 4
	SizeDouble = 8
)

var ne = binary.NativeEndian

func loadF32(b []byte, off int) float32 {
	return math.Float32frombits(ne.Uint32(b[off:]))
}

func storeF32(b []byte, off int, f float32) {
	ne.PutUint32(b[off:], math.Float32bits(f))
}

func loadF64(b []byte, off int) float64 {
	return math.Float64frombits(ne.Uint64(b[off:]))
}

func storeF64(b []byte, off int, f float64) {
	ne.PutUint64(b[off:], math.Float64bits(f))
}
