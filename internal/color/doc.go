// Package color provides the sRGB transfer curve and the lookup tables
// that move 8-bit gamma-encoded samples to linear light and back.
//
// Decoding (gamma u8 → linear float32) is a 256-entry table. Encoding
// (linear float32 → gamma u8) uses the two-table method: a 65536-entry
// forward table indexed by the truncated input gives a candidate code, and a
// boundary table holding the smallest linear value of every code corrects
// the candidate by at most one step. The result is the code whose decision
// interval contains the input.
//
// References:
//   - sRGB specification: https://www.w3.org/Graphics/Color/sRGB
//   - GPU Gems 3, Chapter 24: https://developer.nvidia.com/gpugems/gpugems3/part-iv-image-effects/chapter-24-importance-being-linear
package color
