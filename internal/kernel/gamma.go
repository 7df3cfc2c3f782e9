package kernel

import (
	"github.com/gogpu/pixconv/internal/color"
	"github.com/gogpu/pixconv/internal/quant"
)

// GammaRGBF32ToU8 encodes linear RGB float to sRGB RGB u8.
func GammaRGBF32ToU8(src, dst []byte, samples int) int {
	const stride = 3 * SizeFloat
	enc := color.Encoder()
	src = src[:samples*stride]
	dst = dst[:samples*3]
	for i := range samples {
		s, d := i*stride, i*3
		dst[d+0] = enc.EncodeU8(loadF32(src, s))
		dst[d+1] = enc.EncodeU8(loadF32(src, s+4))
		dst[d+2] = enc.EncodeU8(loadF32(src, s+8))
	}
	return samples
}

// GammaRGBAF32ToRGBU8 encodes linear RGBA float to sRGB RGB u8, dropping
// alpha. Pixels with alpha below AlphaThreshold come out black.
func GammaRGBAF32ToRGBU8(src, dst []byte, samples int) int {
	const stride = 4 * SizeFloat
	enc := color.Encoder()
	src = src[:samples*stride]
	dst = dst[:samples*3]
	for i := range samples {
		s, d := i*stride, i*3
		if loadF32(src, s+12) < AlphaThreshold {
			dst[d+0], dst[d+1], dst[d+2] = 0, 0, 0
			continue
		}
		dst[d+0] = enc.EncodeU8(loadF32(src, s))
		dst[d+1] = enc.EncodeU8(loadF32(src, s+4))
		dst[d+2] = enc.EncodeU8(loadF32(src, s+8))
	}
	return samples
}

// GammaRGBAF32ToRGBAU8 encodes linear RGBA float to sRGB RGBA u8. Alpha
// stays linear and is rounded to nearest even; color is zeroed below
// AlphaThreshold.
func GammaRGBAF32ToRGBAU8(src, dst []byte, samples int) int {
	const stride = 4 * SizeFloat
	enc := color.Encoder()
	src = src[:samples*stride]
	dst = dst[:samples*4]
	for i := range samples {
		s, d := i*stride, i*4
		alpha := loadF32(src, s+12)
		dst[d+3] = quant.RoundU8(float64(alpha))
		if alpha < AlphaThreshold {
			dst[d+0], dst[d+1], dst[d+2] = 0, 0, 0
			continue
		}
		dst[d+0] = enc.EncodeU8(loadF32(src, s))
		dst[d+1] = enc.EncodeU8(loadF32(src, s+4))
		dst[d+2] = enc.EncodeU8(loadF32(src, s+8))
	}
	return samples
}

// GammaYF32ToU8 encodes linear gray float to sRGB gray u8.
func GammaYF32ToU8(src, dst []byte, samples int) int {
	enc := color.Encoder()
	src = src[:samples*SizeFloat]
	dst = dst[:samples]
	for i := range dst {
		dst[i] = enc.EncodeU8(loadF32(src, i*SizeFloat))
	}
	return samples
}

// GammaYAF32ToU8 encodes linear gray+alpha float to sRGB gray + linear
// alpha u8.
func GammaYAF32ToU8(src, dst []byte, samples int) int {
	const stride = 2 * SizeFloat
	enc := color.Encoder()
	src = src[:samples*stride]
	dst = dst[:samples*2]
	for i := range samples {
		dst[i*2] = enc.EncodeU8(loadF32(src, i*stride))
		dst[i*2+1] = quant.RoundU8(float64(loadF32(src, i*stride+4)))
	}
	return samples
}

// PackRGBF32 returns a kernel encoding linear RGB float into packed 32-bit
// sRGB xRGB words laid out as p. The pad byte is written as zero.
func PackRGBF32(p Packed32) Func {
	return func(src, dst []byte, samples int) int {
		const stride = 3 * SizeFloat
		enc := color.Encoder()
		src = src[:samples*stride]
		dst = dst[:samples*4]
		for i := range samples {
			s := i * stride
			d := dst[i*4 : i*4+4 : i*4+4]
			d[p.R] = enc.EncodeU8(loadF32(src, s))
			d[p.G] = enc.EncodeU8(loadF32(src, s+4))
			d[p.B] = enc.EncodeU8(loadF32(src, s+8))
			d[p.Pad] = 0
		}
		return samples
	}
}

// PackRGBAF32 returns a kernel encoding linear RGBA float into packed
// 32-bit sRGB xRGB words laid out as p. Alpha is not stored; pixels with
// alpha below AlphaThreshold become an all-zero word.
func PackRGBAF32(p Packed32) Func {
	return func(src, dst []byte, samples int) int {
		const stride = 4 * SizeFloat
		enc := color.Encoder()
		src = src[:samples*stride]
		dst = dst[:samples*4]
		for i := range samples {
			s := i * stride
			d := dst[i*4 : i*4+4 : i*4+4]
			if loadF32(src, s+12) < AlphaThreshold {
				clear(d)
				continue
			}
			d[p.R] = enc.EncodeU8(loadF32(src, s))
			d[p.G] = enc.EncodeU8(loadF32(src, s+4))
			d[p.B] = enc.EncodeU8(loadF32(src, s+8))
			d[p.Pad] = 0
		}
		return samples
	}
}

// DecodeGammaU8 returns a kernel decoding sRGB u8 records of colors gamma
// channels, optionally followed by a linear alpha channel, to linear float.
func DecodeGammaU8(colors int, alpha bool) Func {
	channels := colors
	if alpha {
		channels++
	}
	return func(src, dst []byte, samples int) int {
		dec := color.DecodeTable()
		t := quant.Ensure()
		src = src[:samples*channels]
		dst = dst[:samples*channels*SizeFloat]
		for i := range samples {
			s := src[i*channels : (i+1)*channels]
			for c := range colors {
				storeF32(dst, (i*channels+c)*SizeFloat, dec[s[c]])
			}
			if alpha {
				storeF32(dst, (i*channels+colors)*SizeFloat, t.U8ToF32[s[colors]])
			}
		}
		return samples
	}
}
