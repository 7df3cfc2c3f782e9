package kernel

import "golang.org/x/sys/cpu"

// Packed32 gives the byte offsets of the red, green, blue and padding
// bytes of a packed 32-bit xRGB word (0x00RRGGBB) as it lies in host
// memory. Resolved once at package initialization.
type Packed32 struct {
	R, G, B, Pad int
}

// HostPacked32 is the channel layout of a native-endian 0x00RRGGBB word:
// B, G, R, pad on little-endian hosts and pad, R, G, B on big-endian ones.
var HostPacked32 = packed32For(cpu.IsBigEndian)

func packed32For(bigEndian bool) Packed32 {
	if bigEndian {
		return Packed32{R: 1, G: 2, B: 3, Pad: 0}
	}
	return Packed32{R: 2, G: 1, B: 0, Pad: 3}
}
