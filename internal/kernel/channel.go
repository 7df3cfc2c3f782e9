package kernel

import "github.com/gogpu/pixconv/internal/quant"

// Opaque alpha bit patterns, one per storage type.
var (
	OpaqueU8    = []byte{0xFF}
	OpaqueU16   = []byte{0xFF, 0xFF}
	OpaqueFloat = func() []byte {
		b := make([]byte, SizeFloat)
		storeF32(b, 0, 1)
		return b
	}()
)

// DropAlpha returns a kernel that copies the colors leading elements of
// each record and discards the trailing alpha element. size is the element
// byte width. The copy is a bit copy; no normalization takes place.
func DropAlpha(size, colors int) Func {
	srcStride := (colors + 1) * size
	dstStride := colors * size
	return func(src, dst []byte, samples int) int {
		src = src[:samples*srcStride]
		dst = dst[:samples*dstStride]
		for i := range samples {
			copy(dst[i*dstStride:(i+1)*dstStride], src[i*srcStride:])
		}
		return samples
	}
}

// AddAlpha returns a kernel that copies colors elements and appends an
// opaque alpha element. The element size is len(opaque).
func AddAlpha(colors int, opaque []byte) Func {
	size := len(opaque)
	srcStride := colors * size
	dstStride := (colors + 1) * size
	return func(src, dst []byte, samples int) int {
		src = src[:samples*srcStride]
		dst = dst[:samples*dstStride]
		for i := range samples {
			d := dst[i*dstStride : (i+1)*dstStride]
			copy(d, src[i*srcStride:(i+1)*srcStride])
			copy(d[srcStride:], opaque)
		}
		return samples
	}
}

// Broadcast returns a kernel that expands gray records into RGB records by
// copying the gray element's bytes into all three color elements. With
// alpha set, records carry a trailing alpha element that is copied as is.
// The copy is bitwise: gray and RGB share one numeric domain.
func Broadcast(size int, alpha bool) Func {
	srcStride, dstStride := size, 3*size
	if alpha {
		srcStride += size
		dstStride += size
	}
	return func(src, dst []byte, samples int) int {
		src = src[:samples*srcStride]
		dst = dst[:samples*dstStride]
		for i := range samples {
			s := src[i*srcStride : (i+1)*srcStride]
			d := dst[i*dstStride : (i+1)*dstStride]
			copy(d[0:size], s[:size])
			copy(d[size:2*size], s[:size])
			copy(d[2*size:3*size], s[:size])
			if alpha {
				copy(d[3*size:], s[size:])
			}
		}
		return samples
	}
}

// SwapRB8 exchanges the first and third bytes of every 4-byte record,
// converting RGBA u8 to BGRA u8 and back.
func SwapRB8(src, dst []byte, samples int) int {
	src = src[:samples*4]
	dst = dst[:samples*4]
	for off := 0; off < len(src); off += 4 {
		s := src[off : off+4 : off+4]
		d := dst[off : off+4 : off+4]
		d[0], d[1], d[2], d[3] = s[2], s[1], s[0], s[3]
	}
	return samples
}

// RGBAF32ToRGBU8 drops alpha from RGBA float and quantizes the color
// channels to u8 with exact clamping and rounding.
func RGBAF32ToRGBU8(src, dst []byte, samples int) int {
	const stride = 4 * SizeFloat
	src = src[:samples*stride]
	dst = dst[:samples*3]
	for i := range samples {
		for c := range 3 {
			dst[i*3+c] = quant.RoundU8(float64(loadF32(src, i*stride+c*SizeFloat)))
		}
	}
	return samples
}

// RGBAF32ToRGBU16 drops alpha from RGBA float and quantizes the color
// channels to u16 with exact clamping and rounding.
func RGBAF32ToRGBU16(src, dst []byte, samples int) int {
	const stride = 4 * SizeFloat
	src = src[:samples*stride]
	dst = dst[:samples*3*SizeU16]
	for i := range samples {
		for c := range 3 {
			v := quant.RoundU16(float64(loadF32(src, i*stride+c*SizeFloat)))
			ne.PutUint16(dst[(i*3+c)*SizeU16:], v)
		}
	}
	return samples
}
