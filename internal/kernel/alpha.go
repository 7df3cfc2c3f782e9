package kernel

import "github.com/gogpu/pixconv/internal/quant"

// PremultiplyF32 returns a kernel that scales the colors float channels of
// each record by the trailing alpha channel. Alpha is copied.
func PremultiplyF32(colors int) Func {
	stride := (colors + 1) * SizeFloat
	alphaOff := colors * SizeFloat
	return func(src, dst []byte, samples int) int {
		src = src[:samples*stride]
		dst = dst[:samples*stride]
		for off := 0; off < len(src); off += stride {
			alpha := loadF32(src, off+alphaOff)
			for c := 0; c < alphaOff; c += SizeFloat {
				storeF32(dst, off+c, loadF32(src, off+c)*alpha)
			}
			storeF32(dst, off+alphaOff, alpha)
		}
		return samples
	}
}

// UnpremultiplyF32 returns the inverse of PremultiplyF32. Records whose
// alpha is below AlphaThreshold get zero color instead of a division.
func UnpremultiplyF32(colors int) Func {
	stride := (colors + 1) * SizeFloat
	alphaOff := colors * SizeFloat
	return func(src, dst []byte, samples int) int {
		src = src[:samples*stride]
		dst = dst[:samples*stride]
		for off := 0; off < len(src); off += stride {
			alpha := loadF32(src, off+alphaOff)
			if alpha < AlphaThreshold {
				for c := 0; c < alphaOff; c += SizeFloat {
					storeF32(dst, off+c, 0)
				}
			} else {
				recip := 1 / alpha
				for c := 0; c < alphaOff; c += SizeFloat {
					storeF32(dst, off+c, loadF32(src, off+c)*recip)
				}
			}
			storeF32(dst, off+alphaOff, alpha)
		}
		return samples
	}
}

// div255 computes round(v/255) for v in [0, 255*255] without dividing.
func div255(v uint32) uint8 {
	v += 128
	return uint8((v + v>>8) >> 8)
}

// PremultiplyU8 converts straight RGBA u8 to premultiplied RGBA u8.
// Opaque pixels are copied and fully transparent pixels become all zero.
func PremultiplyU8(src, dst []byte, samples int) int {
	src = src[:samples*4]
	dst = dst[:samples*4]
	for off := 0; off < len(src); off += 4 {
		s := src[off : off+4 : off+4]
		d := dst[off : off+4 : off+4]
		switch a := s[3]; a {
		case 255:
			copy(d, s)
		case 0:
			clear(d)
		default:
			d[0] = div255(uint32(s[0]) * uint32(a))
			d[1] = div255(uint32(s[1]) * uint32(a))
			d[2] = div255(uint32(s[2]) * uint32(a))
			d[3] = a
		}
	}
	return samples
}

// UnpremultiplyU8 converts premultiplied RGBA u8 to straight RGBA u8.
// Opaque pixels are copied; pixels with alpha 0 become all zero rather than
// dividing. Color values that exceed alpha saturate at 255.
func UnpremultiplyU8(src, dst []byte, samples int) int {
	src = src[:samples*4]
	dst = dst[:samples*4]
	for off := 0; off < len(src); off += 4 {
		s := src[off : off+4 : off+4]
		d := dst[off : off+4 : off+4]
		switch a := s[3]; a {
		case 255:
			copy(d, s)
		case 0:
			clear(d)
		default:
			d[0] = unpremul8(s[0], a)
			d[1] = unpremul8(s[1], a)
			d[2] = unpremul8(s[2], a)
			d[3] = a
		}
	}
	return samples
}

// unpremul8 returns round(c*255/a), halves rounded up, saturated at 255.
func unpremul8(c, a uint8) uint8 {
	return sat8((uint32(c)*510 + uint32(a)) / (2 * uint32(a)))
}

func sat8(v uint32) uint8 {
	if v > 255 {
		return 255
	}
	return uint8(v)
}

// F32ToPremultipliedU8 converts straight RGBA float to premultiplied
// RGBA u8 in one pass, rounding each product to nearest even.
func F32ToPremultipliedU8(src, dst []byte, samples int) int {
	const stride = 4 * SizeFloat
	src = src[:samples*stride]
	dst = dst[:samples*4]
	for i := range samples {
		off := i * stride
		alpha := float64(loadF32(src, off+3*SizeFloat))
		for c := range 3 {
			dst[i*4+c] = quant.RoundU8(float64(loadF32(src, off+c*SizeFloat)) * alpha)
		}
		dst[i*4+3] = quant.RoundU8(alpha)
	}
	return samples
}
