package color

import "sync"

// decodeLUT provides O(1) sRGB to Linear conversion.
// Pre-computed 256 entries, 1KB memory cost.
// Converts sRGB byte [0-255] → Linear float32 [0.0-1.0].
var decodeLUT = sync.OnceValue(func() *[256]float32 {
	t := new([256]float32)
	for i := range t {
		t[i] = float32(SRGBToLinear(float64(i) / 255.0))
	}
	return t
})

// DecodeU8 converts an sRGB byte to linear float32 using the lookup table.
//
// Example:
//
//	r := DecodeU8(128) // ~0.2159 (not 0.5!)
func DecodeU8(s uint8) float32 {
	return decodeLUT()[s]
}

// DecodeTable returns the 256-entry decode table, building it on first use.
// Kernels hoist it out of their loops.
func DecodeTable() *[256]float32 {
	return decodeLUT()
}
