package color

import (
	"math"
	"sync"
)

// forwardSize is the number of forward table entries; the input is scaled
// by forwardSize-1 and truncated to find its slot.
const forwardSize = 1 << 16

// TwoTable is the correctly rounded linear → sRGB u8 encoder.
type TwoTable struct {
	// forward maps a truncated 16-bit linear index to a candidate code.
	forward [forwardSize]uint8

	// minimums[c] is the smallest linear value that encodes to code c.
	// minimums[0] is 0 and minimums[256] is +Inf, so the correction step
	// can always look one code up or down.
	minimums [257]float32
}

var twoTable = sync.OnceValue(buildTwoTable)

// Encoder returns the shared encoder, building its tables on first use.
// Safe for concurrent use.
func Encoder() *TwoTable {
	return twoTable()
}

func buildTwoTable() *TwoTable {
	t := new(TwoTable)

	t.minimums[0] = 0
	for c := 1; c < 256; c++ {
		t.minimums[c] = float32(SRGBToLinear((float64(c) - 0.5) / 255.0))
	}
	t.minimums[256] = float32(math.Inf(1))

	for i := range forwardSize {
		s := LinearToSRGB(float64(i)/(forwardSize-1))*255.0 + 0.5
		if s > 255 {
			s = 255
		}
		t.forward[i] = uint8(s)
	}

	return t
}

// EncodeU8 converts a linear-light value to an sRGB byte.
//
// Inputs at or below zero (and NaN) encode to 0, inputs at or above one
// encode to 255. The result is the code c with minimums[c] <= l < minimums[c+1].
func (t *TwoTable) EncodeU8(l float32) uint8 {
	if !(l > 0) {
		return 0
	}
	if l >= 1 {
		return 255
	}

	c := t.forward[uint16(l*(forwardSize-1))]
	if l < t.minimums[c] {
		c--
	} else if l >= t.minimums[int(c)+1] {
		c++
	}
	return c
}

// Minimum returns the smallest linear value that encodes to code c.
func (t *TwoTable) Minimum(c uint8) float32 {
	return t.minimums[c]
}

// Minimums returns a copy of the boundary table, including the +Inf
// sentinel at index 256.
func (t *TwoTable) Minimums() [257]float32 {
	return t.minimums
}

// EncodeU8 encodes l with the shared encoder.
func EncodeU8(l float32) uint8 {
	return twoTable().EncodeU8(l)
}
