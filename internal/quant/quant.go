// Package quant provides the lookup tables that map 8-bit and 16-bit
// integer samples to normalized float32 values and back.
//
// Integer → float lookups are exact (i / maxcode). Float → integer lookups
// index a 65536-entry table by the upper 16 bits of the IEEE-754 bit
// pattern (sign, exponent and the top 7 mantissa bits), trading precision
// below the eighth significant bit for a single load per sample.
//
// The tables are built once, on first use, and are read-only afterwards.
// Ensure is safe for concurrent use.
package quant

import (
	"math"
	"sync"
)

// Tables holds the four quantization tables.
type Tables struct {
	// U8ToF32 maps an 8-bit code to code/255.
	U8ToF32 [1 << 8]float32

	// U16ToF32 maps a 16-bit code to code/65535.
	U16ToF32 [1 << 16]float32

	// F32ToU8 maps Index(f) to the 8-bit code nearest to f.
	F32ToU8 [1 << 16]uint8

	// F32ToU16 maps Index(f) to the 16-bit code nearest to f.
	F32ToU16 [1 << 16]uint16
}

// midpoint fills the discarded low half of the float bit pattern so that the
// reconstructed value sits in the middle of its index bucket.
const midpoint = 0x8000

var tables = sync.OnceValue(build)

// Ensure returns the process-wide tables, building them on the first call.
// Concurrent first callers block until construction has finished.
func Ensure() *Tables {
	return tables()
}

// Index returns the table index for f: the upper 16 bits of its
// single-precision bit pattern.
func Index(f float32) uint16 {
	return uint16(math.Float32bits(f) >> 16)
}

func build() *Tables {
	t := new(Tables)

	for i := range t.U8ToF32 {
		t.U8ToF32[i] = float32(float64(i) / 255.0)
	}
	for i := range t.U16ToF32 {
		t.U16ToF32[i] = float32(float64(i) / 65535.0)
	}

	for i := range 1 << 16 {
		f := math.Float32frombits(uint32(i)<<16 | midpoint)

		var c uint8
		var s uint16
		switch {
		case !(f > 0): // negatives, zero and NaN
			c, s = 0, 0
		case f >= 1:
			c, s = math.MaxUint8, math.MaxUint16
		default:
			c = uint8(math.RoundToEven(float64(f) * 255.0))
			s = uint16(math.RoundToEven(float64(f) * 65535.0))
		}
		t.F32ToU8[i] = c
		t.F32ToU16[i] = s
	}

	return t
}

// FloatToU8 quantizes f to an 8-bit code using the reverse table.
func (t *Tables) FloatToU8(f float32) uint8 {
	return t.F32ToU8[Index(f)]
}

// FloatToU16 quantizes f to a 16-bit code using the reverse table.
func (t *Tables) FloatToU16(f float32) uint16 {
	return t.F32ToU16[Index(f)]
}

// U8ToFloat returns c/255.
func (t *Tables) U8ToFloat(c uint8) float32 {
	return t.U8ToF32[c]
}

// U16ToFloat returns c/65535.
func (t *Tables) U16ToFloat(c uint16) float32 {
	return t.U16ToF32[c]
}

// RoundU8 is the exact counterpart of FloatToU8: it clamps f to [0,1] and
// rounds f*255 half to even. Used by kernels that scale before quantizing.
func RoundU8(f float64) uint8 {
	switch {
	case !(f > 0):
		return 0
	case f >= 1:
		return math.MaxUint8
	}
	return uint8(math.RoundToEven(f * 255.0))
}

// RoundU16 clamps f to [0,1] and rounds f*65535 half to even.
func RoundU16(f float64) uint16 {
	switch {
	case !(f > 0):
		return 0
	case f >= 1:
		return math.MaxUint16
	}
	return uint16(math.RoundToEven(f * 65535.0))
}
