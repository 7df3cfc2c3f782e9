package kernel

// Scale turns a single-component kernel into a kernel over records of
// components interleaved elements by calling f once with samples*components.
//
// Precondition: f must treat every element the same regardless of which
// channel it belongs to, and both layouts must be fully interleaved with no
// padding. This holds for pure numeric-domain conversions (float → u8,
// u16 → float, ...). It does not hold for channel-aware kernels such as
// premultiplication, gamma encoding that passes alpha through linearly, or
// channel reordering; those are written per layout.
func Scale(f Func, components int) Func {
	if components == 1 {
		return f
	}
	return func(src, dst []byte, samples int) int {
		f(src, dst, samples*components)
		return samples
	}
}
