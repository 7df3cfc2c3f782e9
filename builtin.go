package pixconv

import (
	"fmt"

	"github.com/gogpu/pixconv/internal/kernel"
)

// entry is one built-in primitive conversion.
type entry struct {
	src, dst Format
	fn       kernel.Func
}

// alias reuses the kernel of (baseSrc, baseDst) for (src, dst). Premultiplied
// and straight formats share a layout, so a numeric-domain kernel serves
// both unchanged.
type alias struct {
	src, dst         Format
	baseSrc, baseDst Format
}

// Linear-domain conversions between float, double and integer storage,
// plus alpha and channel adaptation.
func ggglSet() []entry {
	return []entry{
		{RGBAFloat, RGBADouble, kernel.Scale(kernel.F32ToF64, 4)},
		{RGBADouble, RGBAFloat, kernel.Scale(kernel.F64ToF32, 4)},

		{RGBAFloat, RGBAU8, kernel.Scale(kernel.F32ToU8, 4)},
		{RGBAU8, RGBAFloat, kernel.Scale(kernel.U8ToF32, 4)},
		{RGBAFloat, RGBAU16, kernel.Scale(kernel.F32ToU16, 4)},
		{RGBAU16, RGBAFloat, kernel.Scale(kernel.U16ToF32, 4)},
		{RGBFloat, RGBU8, kernel.Scale(kernel.F32ToU8, 3)},
		{RGBU8, RGBFloat, kernel.Scale(kernel.U8ToF32, 3)},
		{RGBFloat, RGBU16, kernel.Scale(kernel.F32ToU16, 3)},
		{RGBU16, RGBFloat, kernel.Scale(kernel.U16ToF32, 3)},
		{YAFloat, YAU8, kernel.Scale(kernel.F32ToU8, 2)},
		{YAU8, YAFloat, kernel.Scale(kernel.U8ToF32, 2)},
		{YAFloat, YAU16, kernel.Scale(kernel.F32ToU16, 2)},
		{YAU16, YAFloat, kernel.Scale(kernel.U16ToF32, 2)},
		{YFloat, YU8, kernel.F32ToU8},
		{YU8, YFloat, kernel.U8ToF32},
		{YFloat, YU16, kernel.F32ToU16},
		{YU16, YFloat, kernel.U16ToF32},

		{RGBAU8, RGBAU16, kernel.Scale(kernel.U8ToU16, 4)},
		{RGBAU16, RGBAU8, kernel.Scale(kernel.U16ToU8, 4)},
		{RGBU8, RGBU16, kernel.Scale(kernel.U8ToU16, 3)},
		{RGBU16, RGBU8, kernel.Scale(kernel.U16ToU8, 3)},
		{YAU8, YAU16, kernel.Scale(kernel.U8ToU16, 2)},
		{YAU16, YAU8, kernel.Scale(kernel.U16ToU8, 2)},
		{YU8, YU16, kernel.U8ToU16},
		{YU16, YU8, kernel.U16ToU8},

		{YAFloat, YaAFloat, kernel.PremultiplyF32(1)},
		{YaAFloat, YAFloat, kernel.UnpremultiplyF32(1)},
		{RGBAFloat, RaGaBaAFloat, kernel.PremultiplyF32(3)},
		{RaGaBaAFloat, RGBAFloat, kernel.UnpremultiplyF32(3)},
		{RGBAU8, RaGaBaAU8, kernel.PremultiplyU8},
		{RaGaBaAU8, RGBAU8, kernel.UnpremultiplyU8},
		{RGBAFloat, RaGaBaAU8, kernel.F32ToPremultipliedU8},

		{RGBAFloat, RGBFloat, kernel.DropAlpha(kernel.SizeFloat, 3)},
		{YAFloat, YFloat, kernel.DropAlpha(kernel.SizeFloat, 1)},
		{RGBAU8, RGBU8, kernel.DropAlpha(kernel.SizeU8, 3)},
		{RGBFloat, RGBAFloat, kernel.AddAlpha(3, kernel.OpaqueFloat)},
		{YFloat, YAFloat, kernel.AddAlpha(1, kernel.OpaqueFloat)},
		{RGBU8, RGBAU8, kernel.AddAlpha(3, kernel.OpaqueU8)},

		{YFloat, RGBFloat, kernel.Broadcast(kernel.SizeFloat, false)},
		{YAFloat, RGBAFloat, kernel.Broadcast(kernel.SizeFloat, true)},

		{RGBAFloat, RGBU8, kernel.RGBAF32ToRGBU8},
		{RGBAFloat, RGBU16, kernel.RGBAF32ToRGBU16},
	}
}

// ggglAliases are the premultiplied and opaque variants that reuse a
// primitive kernel byte for byte.
var ggglAliases = []alias{
	// Scaling does not care whether color is premultiplied.
	{RaGaBaAFloat, RaGaBaAU8, RGBAFloat, RGBAU8},
	{RaGaBaAU8, RaGaBaAFloat, RGBAU8, RGBAFloat},
	{RaGaBaAFloat, RaGaBaAU16, RGBAFloat, RGBAU16},
	{RaGaBaAU16, RaGaBaAFloat, RGBAU16, RGBAFloat},
	{RaGaBaAU8, RaGaBaAU16, RGBAU8, RGBAU16},
	{RaGaBaAU16, RaGaBaAU8, RGBAU16, RGBAU8},
	{YaAFloat, YaAU8, YAFloat, YAU8},
	{YaAU8, YaAFloat, YAU8, YAFloat},
	{YaAFloat, YaAU16, YAFloat, YAU16},
	{YaAU16, YaAFloat, YAU16, YAFloat},
	{YaAU8, YaAU16, YAU8, YAU16},

	// Opaque alpha makes premultiplied and straight color identical.
	{RGBFloat, RaGaBaAFloat, RGBFloat, RGBAFloat},
	{YFloat, YaAFloat, YFloat, YAFloat},
	{RGBU8, RaGaBaAU8, RGBU8, RGBAU8},

	// Broadcasting copies premultiplied gray into premultiplied RGB.
	{YaAFloat, RaGaBaAFloat, YAFloat, RGBAFloat},
}

// Correctly rounded gamma encoding from linear float.
func twoTableSet() []entry {
	return []entry{
		{RGBFloat, CairoRGB24, kernel.PackRGBF32(kernel.HostPacked32)},
		{RGBAFloat, CairoRGB24, kernel.PackRGBAF32(kernel.HostPacked32)},
		{RGBAFloat, RGBU8Gamma, kernel.GammaRGBAF32ToRGBU8},
		{RGBFloat, RGBU8Gamma, kernel.GammaRGBF32ToU8},
		{YFloat, YU8Gamma, kernel.GammaYF32ToU8},
		{YAFloat, YAU8Gamma, kernel.GammaYAF32ToU8},
	}
}

// Gamma decoding, gamma encoding with alpha, half floats and BGRA.
func extraSet() []entry {
	return []entry{
		{RGBAFloat, RGBAU8Gamma, kernel.GammaRGBAF32ToRGBAU8},
		{RGBAU8Gamma, RGBAFloat, kernel.DecodeGammaU8(3, true)},
		{RGBU8Gamma, RGBFloat, kernel.DecodeGammaU8(3, false)},
		{YAU8Gamma, YAFloat, kernel.DecodeGammaU8(1, true)},
		{YU8Gamma, YFloat, kernel.DecodeGammaU8(1, false)},

		{RGBAFloat, RGBAHalf, kernel.Scale(kernel.F32ToF16, 4)},
		{RGBAHalf, RGBAFloat, kernel.Scale(kernel.F16ToF32, 4)},

		{RGBAU8Gamma, BGRAU8Gamma, kernel.SwapRB8},
		{BGRAU8Gamma, RGBAU8Gamma, kernel.SwapRB8},
	}
}

// registerBuiltins registers every primitive, then the aliases, which look
// their base kernels up in r.
func registerBuiltins(r *Registry) error {
	for _, set := range [][]entry{ggglSet(), twoTableSet(), extraSet()} {
		for _, e := range set {
			if err := r.Register(e.src, e.dst, CostLinear, e.fn); err != nil {
				return err
			}
		}
	}
	for _, a := range ggglAliases {
		if err := r.RegisterAlias(a.src, a.dst, a.baseSrc, a.baseDst); err != nil {
			return fmt.Errorf("built-in alias: %w", err)
		}
	}
	return nil
}
