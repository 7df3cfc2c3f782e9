package pixconv

import "github.com/gogpu/gputypes"

// 8-bit unorm textures hold bytes as uploaded. Image data is uploaded
// sRGB-encoded, so these map to the gamma formats.
var textureFormats = []struct {
	tex    gputypes.TextureFormat
	format Format
}{
	{gputypes.TextureFormatRGBA8Unorm, RGBAU8Gamma},
	{gputypes.TextureFormatBGRA8Unorm, BGRAU8Gamma},
	{gputypes.TextureFormatR8Unorm, YU8Gamma},
}

// FormatForTexture returns the sample format matching a GPU texture format.
func FormatForTexture(tf gputypes.TextureFormat) (Format, bool) {
	for _, m := range textureFormats {
		if m.tex == tf {
			return m.format, true
		}
	}
	return FormatInvalid, false
}

// TextureFormat returns the GPU texture format that stores f, or
// gputypes.TextureFormatUndefined if there is none.
func (f Format) TextureFormat() gputypes.TextureFormat {
	for _, m := range textureFormats {
		if m.format == f {
			return m.tex
		}
	}
	return gputypes.TextureFormatUndefined
}
