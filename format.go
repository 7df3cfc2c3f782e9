package pixconv

import (
	"fmt"
	"strings"
	"sync"

	"golang.org/x/text/cases"

	"github.com/gogpu/pixconv/internal/kernel"
)

// Type is the storage type of one sample element.
type Type uint8

const (
	// TypeU8 is an 8-bit unsigned integer mapping [0,255] to [0,1].
	TypeU8 Type = iota

	// TypeU16 is a 16-bit unsigned integer mapping [0,65535] to [0,1].
	TypeU16

	// TypeHalf is an IEEE 754 binary16 float.
	TypeHalf

	// TypeFloat is an IEEE 754 binary32 float.
	TypeFloat

	// TypeDouble is an IEEE 754 binary64 float.
	TypeDouble
)

// Size returns the element size in bytes.
func (t Type) Size() int {
	switch t {
	case TypeU8:
		return kernel.SizeU8
	case TypeU16:
		return kernel.SizeU16
	case TypeHalf:
		return kernel.SizeHalf
	case TypeFloat:
		return kernel.SizeFloat
	case TypeDouble:
		return kernel.SizeDouble
	default:
		return 0
	}
}

// String returns the babl type name.
func (t Type) String() string {
	switch t {
	case TypeU8:
		return "u8"
	case TypeU16:
		return "u16"
	case TypeHalf:
		return "half"
	case TypeFloat:
		return "float"
	case TypeDouble:
		return "double"
	default:
		return "unknown"
	}
}

// Format identifies a pixel sample format: a color model, a storage type,
// and a component order. Names follow babl conventions: a prime marks a
// gamma-encoded (sRGB) component, and a lowercase "a" suffix marks a
// color component premultiplied by alpha.
type Format uint8

const (
	// FormatInvalid is the zero Format.
	FormatInvalid Format = iota

	// Linear float formats.
	RGBAFloat    // "RGBA float"
	RaGaBaAFloat // "RaGaBaA float"
	RGBFloat     // "RGB float"
	YAFloat      // "YA float"
	YaAFloat     // "YaA float"
	YFloat       // "Y float"

	// Linear 16-bit formats.
	RGBAU16    // "RGBA u16"
	RaGaBaAU16 // "RaGaBaA u16"
	RGBU16     // "RGB u16"
	YAU16      // "YA u16"
	YaAU16     // "YaA u16"
	YU16       // "Y u16"

	// Linear 8-bit formats.
	RGBAU8    // "RGBA u8"
	RaGaBaAU8 // "RaGaBaA u8"
	RGBU8     // "RGB u8"
	YAU8      // "YA u8"
	YaAU8     // "YaA u8"
	YU8       // "Y u8"

	// Other storage types.
	RGBADouble // "RGBA double"
	RGBAHalf   // "RGBA half"

	// Gamma-encoded 8-bit formats. Alpha stays linear.
	RGBAU8Gamma // "R'G'B'A u8"
	RGBU8Gamma  // "R'G'B' u8"
	YAU8Gamma   // "Y'A u8"
	YU8Gamma    // "Y' u8"
	BGRAU8Gamma // "B'G'R'A u8"

	// CairoRGB24 is a gamma-encoded 32-bit word 0x00RRGGBB in host byte
	// order. Its component order in memory depends on the host.
	CairoRGB24 // "cairo-RGB24"

	// formatCount is the number of formats (for internal use).
	formatCount
)

// FormatInfo contains metadata about a pixel format.
type FormatInfo struct {
	// Name is the babl format name.
	Name string

	// Model is the babl color model name.
	Model string

	// Type is the storage type of every element.
	Type Type

	// Components is the number of elements per sample, including padding.
	Components int

	// Layout names the components in memory order, e.g. "B'G'R'A".
	// Padding elements are named PAD.
	Layout string

	// BytesPerPixel is the byte stride of one sample.
	BytesPerPixel int

	// HasAlpha indicates if the format has an alpha channel.
	HasAlpha bool

	// IsPremultiplied indicates if color is premultiplied by alpha.
	IsPremultiplied bool

	// IsGamma indicates if color components are sRGB-encoded.
	IsGamma bool

	// IsGrayscale indicates if this is a grayscale format.
	IsGrayscale bool
}

// describe derives a FormatInfo from a babl model name.
func describe(name, model string, t Type, components int) FormatInfo {
	return FormatInfo{
		Name:            name,
		Model:           model,
		Type:            t,
		Components:      components,
		Layout:          model,
		BytesPerPixel:   components * t.Size(),
		HasAlpha:        strings.HasSuffix(model, "A"),
		IsPremultiplied: strings.Contains(model, "aA"),
		IsGamma:         strings.Contains(model, "'"),
		IsGrayscale:     strings.HasPrefix(model, "Y"),
	}
}

// withLayout overrides the memory order of a format whose components are
// not stored in model order.
func (fi FormatInfo) withLayout(layout string) FormatInfo {
	fi.Layout = layout
	return fi
}

// packedLayout names the bytes of a packed gamma xRGB word in memory order.
func packedLayout(p kernel.Packed32) string {
	var names [4]string
	names[p.R] = "R'"
	names[p.G] = "G'"
	names[p.B] = "B'"
	names[p.Pad] = "PAD"
	return strings.Join(names[:], "")
}

// formatInfoTable contains metadata for each format.
var formatInfoTable = [formatCount]FormatInfo{
	RGBAFloat:    describe("RGBA float", "RGBA", TypeFloat, 4),
	RaGaBaAFloat: describe("RaGaBaA float", "RaGaBaA", TypeFloat, 4),
	RGBFloat:     describe("RGB float", "RGB", TypeFloat, 3),
	YAFloat:      describe("YA float", "YA", TypeFloat, 2),
	YaAFloat:     describe("YaA float", "YaA", TypeFloat, 2),
	YFloat:       describe("Y float", "Y", TypeFloat, 1),

	RGBAU16:    describe("RGBA u16", "RGBA", TypeU16, 4),
	RaGaBaAU16: describe("RaGaBaA u16", "RaGaBaA", TypeU16, 4),
	RGBU16:     describe("RGB u16", "RGB", TypeU16, 3),
	YAU16:      describe("YA u16", "YA", TypeU16, 2),
	YaAU16:     describe("YaA u16", "YaA", TypeU16, 2),
	YU16:       describe("Y u16", "Y", TypeU16, 1),

	RGBAU8:    describe("RGBA u8", "RGBA", TypeU8, 4),
	RaGaBaAU8: describe("RaGaBaA u8", "RaGaBaA", TypeU8, 4),
	RGBU8:     describe("RGB u8", "RGB", TypeU8, 3),
	YAU8:      describe("YA u8", "YA", TypeU8, 2),
	YaAU8:     describe("YaA u8", "YaA", TypeU8, 2),
	YU8:       describe("Y u8", "Y", TypeU8, 1),

	RGBADouble: describe("RGBA double", "RGBA", TypeDouble, 4),
	RGBAHalf:   describe("RGBA half", "RGBA", TypeHalf, 4),

	RGBAU8Gamma: describe("R'G'B'A u8", "R'G'B'A", TypeU8, 4),
	RGBU8Gamma:  describe("R'G'B' u8", "R'G'B'", TypeU8, 3),
	YAU8Gamma:   describe("Y'A u8", "Y'A", TypeU8, 2),
	YU8Gamma:    describe("Y' u8", "Y'", TypeU8, 1),
	BGRAU8Gamma: describe("B'G'R'A u8", "R'G'B'A", TypeU8, 4).withLayout("B'G'R'A"),
	CairoRGB24:  describe("cairo-RGB24", "R'G'B'", TypeU8, 4).withLayout(packedLayout(kernel.HostPacked32)),
}

// Info returns the FormatInfo for this format.
func (f Format) Info() FormatInfo {
	if !f.IsValid() {
		return FormatInfo{}
	}
	return formatInfoTable[f]
}

// IsValid returns true if the format is a valid known format.
func (f Format) IsValid() bool {
	return f > FormatInvalid && f < formatCount
}

// BytesPerPixel returns the number of bytes per sample for this format.
func (f Format) BytesPerPixel() int {
	return f.Info().BytesPerPixel
}

// Components returns the number of elements per sample.
func (f Format) Components() int {
	return f.Info().Components
}

// Type returns the storage type of the format's elements.
func (f Format) Type() Type {
	return f.Info().Type
}

// HasAlpha returns true if this format has an alpha channel.
func (f Format) HasAlpha() bool {
	return f.Info().HasAlpha
}

// IsPremultiplied returns true if color is premultiplied by alpha.
func (f Format) IsPremultiplied() bool {
	return f.Info().IsPremultiplied
}

// IsGamma returns true if color components are sRGB-encoded.
func (f Format) IsGamma() bool {
	return f.Info().IsGamma
}

// IsGrayscale returns true if this is a grayscale format.
func (f Format) IsGrayscale() bool {
	return f.Info().IsGrayscale
}

// String returns the babl name of the format.
func (f Format) String() string {
	if !f.IsValid() {
		return "Invalid"
	}
	return formatInfoTable[f].Name
}

// RowBytes calculates the number of bytes needed for a row of the given width.
func (f Format) RowBytes(width int) int {
	return width * f.BytesPerPixel()
}

// ImageBytes calculates the total number of bytes needed for an image.
func (f Format) ImageBytes(width, height int) int {
	return f.RowBytes(width) * height
}

// PremultipliedVersion returns the premultiplied counterpart of this format.
// Returns the same format if it is already premultiplied or has no such
// counterpart.
func (f Format) PremultipliedVersion() Format {
	switch f {
	case RGBAFloat:
		return RaGaBaAFloat
	case YAFloat:
		return YaAFloat
	case RGBAU16:
		return RaGaBaAU16
	case YAU16:
		return YaAU16
	case RGBAU8:
		return RaGaBaAU8
	case YAU8:
		return YaAU8
	default:
		return f
	}
}

// UnpremultipliedVersion returns the straight-alpha counterpart of this
// format. Returns the same format if it is not premultiplied.
func (f Format) UnpremultipliedVersion() Format {
	switch f {
	case RaGaBaAFloat:
		return RGBAFloat
	case YaAFloat:
		return YAFloat
	case RaGaBaAU16:
		return RGBAU16
	case YaAU16:
		return YAU16
	case RaGaBaAU8:
		return RGBAU8
	case YaAU8:
		return YAU8
	default:
		return f
	}
}

// sameLayout reports whether a and b store the same components in the same
// order with the same type, so one kernel serves both. Premultiplied and
// straight color count as the same component.
func sameLayout(a, b Format) bool {
	return a.IsValid() && b.IsValid() &&
		a.Type() == b.Type() && a.Components() == b.Components() &&
		layoutKey(a) == layoutKey(b)
}

// layoutKey is the format's layout with premultiplication marks removed.
func layoutKey(f Format) string {
	return strings.ReplaceAll(f.Info().Layout, "a", "")
}

// Formats returns every known format in declaration order.
func Formats() []Format {
	out := make([]Format, 0, formatCount-1)
	for f := FormatInvalid + 1; f < formatCount; f++ {
		out = append(out, f)
	}
	return out
}

// formatsByName maps case-folded names to formats.
var formatsByName = sync.OnceValue(func() map[string]Format {
	fold := cases.Fold()
	m := make(map[string]Format, formatCount)
	for _, f := range Formats() {
		m[fold.String(f.String())] = f
	}
	return m
})

// ParseFormat resolves a babl format name such as "RGBA float" or
// "r'g'b'a u8". Matching ignores case and surrounding whitespace.
func ParseFormat(name string) (Format, error) {
	key := cases.Fold().String(strings.TrimSpace(name))
	if f, ok := formatsByName()[key]; ok {
		return f, nil
	}
	return FormatInvalid, fmt.Errorf("%w: %q", ErrUnknownFormat, name)
}
