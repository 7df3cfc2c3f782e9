package pixconv

import (
	"context"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func rampF32(n int) []byte {
	vals := make([]float32, n)
	for i := range vals {
		vals[i] = float32(i%997) / 996
	}
	return f32bytes(vals...)
}

// TestConvertParallel_MatchesSerial checks that chunked conversion writes
// the same bytes as a single Convert call.
func TestConvertParallel_MatchesSerial(t *testing.T) {
	r := NewRegistry(WithWorkers(4), WithChunkSize(100))
	defer r.Close()

	c, err := r.Lookup(RGBAFloat, RGBAU8Gamma)
	if err != nil {
		t.Fatal(err)
	}
	const n = 1037 // not a multiple of the chunk size
	src := rampF32(4 * n)

	serial := make([]byte, 4*n)
	if _, err := c.Convert(src, serial, n); err != nil {
		t.Fatal(err)
	}
	par := make([]byte, 4*n)
	got, err := r.ConvertParallel(context.Background(), c, src, par, n)
	if err != nil || got != n {
		t.Fatalf("ConvertParallel() = %d, %v; want %d, nil", got, err, n)
	}
	if diff := cmp.Diff(serial, par); diff != "" {
		t.Errorf("parallel output differs from serial (-serial +parallel):\n%s", diff)
	}
}

func TestConvertParallel_SmallRunsInline(t *testing.T) {
	r := NewRegistry(WithChunkSize(1000))
	defer r.Close()

	c, _ := r.Lookup(YFloat, YU8)
	dst := make([]byte, 3)
	n, err := r.ConvertParallel(context.Background(), c, f32bytes(0, 0.5, 1), dst, 3)
	if err != nil || n != 3 {
		t.Fatalf("ConvertParallel() = %d, %v", n, err)
	}
	if diff := cmp.Diff([]byte{0, 128, 255}, dst); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
}

func TestConvertParallel_Validation(t *testing.T) {
	r := NewRegistry(WithChunkSize(4))
	defer r.Close()

	c, _ := r.Lookup(YFloat, YU8)
	if _, err := r.ConvertParallel(context.Background(), c, make([]byte, 8), make([]byte, 8), 8); !errors.Is(err, ErrBufferTooSmall) {
		t.Errorf("short source: %v, want ErrBufferTooSmall", err)
	}
	if _, err := r.ConvertParallel(context.Background(), c, nil, nil, -3); !errors.Is(err, ErrNegativeCount) {
		t.Errorf("negative count: %v, want ErrNegativeCount", err)
	}
}

func TestConvertParallel_Cancelled(t *testing.T) {
	r := NewRegistry(WithChunkSize(8))
	defer r.Close()

	c, _ := r.Lookup(YFloat, YU8)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	dst := make([]byte, 64)
	n, err := r.ConvertParallel(ctx, c, rampF32(64), dst, 64)
	if !errors.Is(err, context.Canceled) {
		t.Errorf("err = %v, want context.Canceled", err)
	}
	if n != 0 {
		t.Errorf("converted %d samples after cancellation, want 0", n)
	}
}

func TestConvertParallel_AfterClose(t *testing.T) {
	r := NewRegistry(WithChunkSize(8))
	c, _ := r.Lookup(YFloat, YU8)
	r.Close()

	dst := make([]byte, 64)
	n, err := r.ConvertParallel(context.Background(), c, rampF32(64), dst, 64)
	if err != nil || n != 64 {
		t.Errorf("ConvertParallel() after Close = %d, %v; want 64, nil", n, err)
	}
}

func TestConvertParallel_Default(t *testing.T) {
	c := mustLookup(t, RGBAFloat, RGBAU16)
	const n = 2 * DefaultChunkSize
	src := rampF32(4 * n)
	dst := make([]byte, 8*n)
	got, err := ConvertParallel(context.Background(), c, src, dst, n)
	if err != nil || got != n {
		t.Fatalf("ConvertParallel() = %d, %v", got, err)
	}
}

func BenchmarkConvertParallel(b *testing.B) {
	r := NewRegistry()
	defer r.Close()

	const n = 1 << 18
	c, _ := r.Lookup(RGBAFloat, RGBAU8Gamma)
	src := rampF32(4 * n)
	dst := make([]byte, 4*n)
	ctx := context.Background()
	b.SetBytes(int64(len(src)))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = r.ConvertParallel(ctx, c, src, dst, n)
	}
}
