// Package pixconv converts pixel buffers between sample formats.
//
// # Overview
//
// pixconv is a Pure Go set of pixel-format conversion kernels: float and
// integer quantization, correctly rounded sRGB gamma encoding, alpha
// premultiplication, and channel-count adaptation. Kernels are exposed
// through a typed registry keyed by (source, destination) format pairs.
//
// # Quick Start
//
//	import "github.com/gogpu/pixconv"
//
//	c, err := pixconv.Default().Lookup(pixconv.RGBAFloat, pixconv.RGBAU8Gamma)
//	if err != nil {
//	    return err
//	}
//	n, err := c.Convert(src, dst, pixels)
//
// # Sample Layout
//
// Buffers are packed, interleaved records of one format. Multi-byte
// elements are stored in host byte order, the layout a []float32 or
// []uint16 has in memory. A Conversion checks that both buffers hold the
// requested number of records before any kernel runs.
//
// # Numeric Policy
//
// Conversions never fail on numeric input. Out-of-range floats clamp to
// the integer range, NaN maps to zero, and pixels whose alpha is below
// [AlphaThreshold] are treated as fully transparent.
//
// # Architecture
//
// The library is organized into:
//   - Public API: Format, Registry, Conversion, Buffer
//   - Internal: quant (tables), color (sRGB codec), kernel (per-sample
//     loops), buffer (views and scratch pool), parallel (worker pool)
package pixconv

// Version information
const (
	// Version is the current version of the library
	Version = "0.1.0"

	// VersionMajor is the major version
	VersionMajor = 0

	// VersionMinor is the minor version
	VersionMinor = 1

	// VersionPatch is the patch version
	VersionPatch = 0
)
