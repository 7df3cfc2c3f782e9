package pixconv

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func mustLookup(t testing.TB, src, dst Format) *Conversion {
	t.Helper()
	c, err := Default().Lookup(src, dst)
	if err != nil {
		t.Fatalf("Lookup(%s, %s) = %v", src, dst, err)
	}
	return c
}

func TestAlphaThreshold(t *testing.T) {
	if AlphaThreshold != 0.000000152590219 {
		t.Errorf("AlphaThreshold = %g", AlphaThreshold)
	}

	// Below the threshold unpremultiplying yields zero color, not a huge one.
	c := mustLookup(t, RaGaBaAFloat, RGBAFloat)
	a := float32(AlphaThreshold / 2)
	dst := make([]byte, 16)
	if _, err := c.Convert(f32bytes(0.5, 0.5, 0.5, a), dst, 1); err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([]float32{0, 0, 0, a}, bytesF32(dst)); diff != "" {
		t.Errorf("unpremultiply below threshold (-want +got):\n%s", diff)
	}
}

func TestConversion_Name(t *testing.T) {
	c := mustLookup(t, RGBAFloat, RGBAU8Gamma)
	if got, want := c.Name(), `"RGBA float" to "R'G'B'A u8"`; got != want {
		t.Errorf("Name() = %s, want %s", got, want)
	}
	if c.String() != c.Name() {
		t.Errorf("String() = %s, want Name()", c.String())
	}
}

func TestConversion_ConvertValidation(t *testing.T) {
	c := mustLookup(t, RGBAFloat, RGBAU8)

	tests := []struct {
		name     string
		src, dst []byte
		samples  int
		want     error
	}{
		{"negative count", make([]byte, 16), make([]byte, 4), -1, ErrNegativeCount},
		{"short source", make([]byte, 31), make([]byte, 8), 2, ErrBufferTooSmall},
		{"short destination", make([]byte, 32), make([]byte, 7), 2, ErrBufferTooSmall},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dst := append([]byte(nil), tt.dst...)
			for i := range dst {
				dst[i] = 0xEE
			}
			n, err := c.Convert(tt.src, dst, tt.samples)
			if !errors.Is(err, tt.want) {
				t.Errorf("Convert() error = %v, want %v", err, tt.want)
			}
			if n != 0 {
				t.Errorf("Convert() = %d on error, want 0", n)
			}
			for i, b := range dst {
				if b != 0xEE {
					t.Fatalf("dst[%d] written despite error", i)
				}
			}
		})
	}
}

func TestConversion_ConvertZero(t *testing.T) {
	c := mustLookup(t, RGBAFloat, RGBAU8)
	n, err := c.Convert(nil, nil, 0)
	if n != 0 || err != nil {
		t.Errorf("Convert(nil, nil, 0) = %d, %v; want 0, nil", n, err)
	}
}

// TestConversion_ConvertLeavesTail checks that bytes past the requested
// samples are not written.
func TestConversion_ConvertLeavesTail(t *testing.T) {
	c := mustLookup(t, RGBAFloat, RGBAU8)
	src := f32bytes(1, 1, 1, 1, 1, 1, 1, 1)
	dst := []byte{0, 0, 0, 0, 9, 9, 9, 9}
	n, err := c.Convert(src, dst, 1)
	if err != nil || n != 1 {
		t.Fatalf("Convert() = %d, %v", n, err)
	}
	if diff := cmp.Diff([]byte{255, 255, 255, 255, 9, 9, 9, 9}, dst); diff != "" {
		t.Errorf("Convert mismatch (-want +got):\n%s", diff)
	}
}

// =============================================================================
// Chain
// =============================================================================

func TestChain(t *testing.T) {
	toFloat := mustLookup(t, YU8, YFloat)
	toRGB := mustLookup(t, YFloat, RGBFloat)

	c, err := Chain(toFloat, toRGB)
	if err != nil {
		t.Fatalf("Chain() = %v", err)
	}
	if c.Source() != YU8 || c.Destination() != RGBFloat {
		t.Errorf("Chain() = %s", c)
	}
	if c.Cost() != "linear+linear" {
		t.Errorf("Cost() = %q", c.Cost())
	}

	dst := make([]byte, 2*12)
	if _, err := c.Convert([]byte{0, 255}, dst, 2); err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([]float32{0, 0, 0, 1, 1, 1}, bytesF32(dst)); diff != "" {
		t.Errorf("chained conversion mismatch (-want +got):\n%s", diff)
	}
}

func TestChain_Errors(t *testing.T) {
	a := mustLookup(t, YU8, YFloat)
	b := mustLookup(t, RGBFloat, RGBU8)
	if _, err := Chain(a, b); !errors.Is(err, ErrChainMismatch) {
		t.Errorf("Chain(mismatch) error = %v, want ErrChainMismatch", err)
	}
	if _, err := Chain(nil, b); !errors.Is(err, ErrNilKernel) {
		t.Errorf("Chain(nil) error = %v, want ErrNilKernel", err)
	}
}

func TestChain_Zero(t *testing.T) {
	c, err := Chain(mustLookup(t, YU8, YFloat), mustLookup(t, YFloat, YU8Gamma))
	if err != nil {
		t.Fatal(err)
	}
	if n, err := c.Convert(nil, nil, 0); n != 0 || err != nil {
		t.Errorf("Convert(nil, nil, 0) = %d, %v", n, err)
	}
}

func BenchmarkConvert_RGBAFloatToGamma(b *testing.B) {
	const n = 1 << 14
	c := mustLookup(b, RGBAFloat, RGBAU8Gamma)
	vals := make([]float32, 4*n)
	for i := range vals {
		vals[i] = float32(i%1024) / 1023
	}
	src := f32bytes(vals...)
	dst := make([]byte, 4*n)
	b.SetBytes(int64(len(src)))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = c.Convert(src, dst, n)
	}
}
