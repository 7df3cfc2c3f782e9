package kernel

import "math"

// f32s packs float32 values into a native-endian byte slice.
func f32s(vals ...float32) []byte {
	b := make([]byte, len(vals)*SizeFloat)
	for i, v := range vals {
		storeF32(b, i*SizeFloat, v)
	}
	return b
}

// readF32s unpacks a native-endian float32 byte slice.
func readF32s(b []byte) []float32 {
	out := make([]float32, len(b)/SizeFloat)
	for i := range out {
		out[i] = loadF32(b, i*SizeFloat)
	}
	return out
}

// u16s packs uint16 values into a native-endian byte slice.
func u16s(vals ...uint16) []byte {
	b := make([]byte, len(vals)*SizeU16)
	for i, v := range vals {
		ne.PutUint16(b[i*SizeU16:], v)
	}
	return b
}

// readU16s unpacks a native-endian uint16 byte slice.
func readU16s(b []byte) []uint16 {
	out := make([]uint16, len(b)/SizeU16)
	for i := range out {
		out[i] = ne.Uint16(b[i*SizeU16:])
	}
	return out
}

func near(a, b, tol float32) bool {
	return math.Abs(float64(a-b)) <= float64(tol)
}
