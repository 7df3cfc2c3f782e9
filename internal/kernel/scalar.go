package kernel

import (
	"github.com/x448/float16"

	"github.com/gogpu/pixconv/internal/quant"
)

// F32ToU8 quantizes float samples to 8-bit codes through the reverse table.
// Precision below the eighth significant bit of the input is discarded.
func F32ToU8(src, dst []byte, samples int) int {
	t := quant.Ensure()
	src = src[:samples*SizeFloat]
	dst = dst[:samples]
	for i := range dst {
		dst[i] = t.FloatToU8(loadF32(src, i*SizeFloat))
	}
	return samples
}

// F32ToU16 quantizes float samples to 16-bit codes through the reverse table.
func F32ToU16(src, dst []byte, samples int) int {
	t := quant.Ensure()
	src = src[:samples*SizeFloat]
	dst = dst[:samples*SizeU16]
	for i := range samples {
		ne.PutUint16(dst[i*SizeU16:], t.FloatToU16(loadF32(src, i*SizeFloat)))
	}
	return samples
}

// U8ToF32 expands 8-bit codes to floats in [0,1]. Exact.
func U8ToF32(src, dst []byte, samples int) int {
	t := quant.Ensure()
	src = src[:samples]
	dst = dst[:samples*SizeFloat]
	for i, c := range src {
		storeF32(dst, i*SizeFloat, t.U8ToF32[c])
	}
	return samples
}

// U16ToF32 expands 16-bit codes to floats in [0,1]. Exact.
func U16ToF32(src, dst []byte, samples int) int {
	t := quant.Ensure()
	src = src[:samples*SizeU16]
	dst = dst[:samples*SizeFloat]
	for i := range samples {
		storeF32(dst, i*SizeFloat, t.U16ToF32[ne.Uint16(src[i*SizeU16:])])
	}
	return samples
}

// F32ToF64 widens float samples to double.
func F32ToF64(src, dst []byte, samples int) int {
	src = src[:samples*SizeFloat]
	dst = dst[:samples*SizeDouble]
	for i := range samples {
		storeF64(dst, i*SizeDouble, float64(loadF32(src, i*SizeFloat)))
	}
	return samples
}

// F64ToF32 narrows double samples to float.
func F64ToF32(src, dst []byte, samples int) int {
	src = src[:samples*SizeDouble]
	dst = dst[:samples*SizeFloat]
	for i := range samples {
		storeF32(dst, i*SizeFloat, float32(loadF64(src, i*SizeDouble)))
	}
	return samples
}

// div257 computes round(v/257) for v in [0, 65535] without dividing.
func div257(v uint32) uint8 {
	v += 128
	return uint8((v - v>>8) >> 8)
}

// U16ToU8 reduces 16-bit codes to 8-bit, rounding to nearest.
func U16ToU8(src, dst []byte, samples int) int {
	src = src[:samples*SizeU16]
	dst = dst[:samples]
	for i := range dst {
		dst[i] = div257(uint32(ne.Uint16(src[i*SizeU16:])))
	}
	return samples
}

// U8ToU16 widens 8-bit codes by replicating the byte, so 0 → 0 and
// 255 → 65535.
func U8ToU16(src, dst []byte, samples int) int {
	src = src[:samples]
	dst = dst[:samples*SizeU16]
	for i, c := range src {
		ne.PutUint16(dst[i*SizeU16:], uint16(c)<<8|uint16(c))
	}
	return samples
}

// F32ToF16 narrows float samples to IEEE half precision, rounding to
// nearest even.
func F32ToF16(src, dst []byte, samples int) int {
	src = src[:samples*SizeFloat]
	dst = dst[:samples*SizeHalf]
	for i := range samples {
		ne.PutUint16(dst[i*SizeHalf:], float16.Fromfloat32(loadF32(src, i*SizeFloat)).Bits())
	}
	return samples
}

// F16ToF32 widens half-precision samples to float. Exact.
func F16ToF32(src, dst []byte, samples int) int {
	src = src[:samples*SizeHalf]
	dst = dst[:samples*SizeFloat]
	for i := range samples {
		storeF32(dst, i*SizeFloat, float16.Frombits(ne.Uint16(src[i*SizeHalf:])).Float32())
	}
	return samples
}
