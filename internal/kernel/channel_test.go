package kernel

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestDropAlphaF32(t *testing.T) {
	src := f32s(0.1, 0.2, 0.3, 0.4, 0.5, 0.6, 0.7, 0.8)
	dst := make([]byte, 6*SizeFloat)
	if n := DropAlpha(SizeFloat, 3)(src, dst, 2); n != 2 {
		t.Fatalf("DropAlpha returned %d, want 2", n)
	}
	want := []float32{0.1, 0.2, 0.3, 0.5, 0.6, 0.7}
	if diff := cmp.Diff(want, readF32s(dst)); diff != "" {
		t.Errorf("DropAlpha mismatch (-want +got):\n%s", diff)
	}
}

func TestDropAlphaU8(t *testing.T) {
	dst := make([]byte, 6)
	DropAlpha(SizeU8, 3)([]byte{1, 2, 3, 4, 5, 6, 7, 8}, dst, 2)
	if diff := cmp.Diff([]byte{1, 2, 3, 5, 6, 7}, dst); diff != "" {
		t.Errorf("DropAlpha mismatch (-want +got):\n%s", diff)
	}
}

func TestAddAlpha(t *testing.T) {
	t.Run("float gray", func(t *testing.T) {
		dst := make([]byte, 4*SizeFloat)
		AddAlpha(1, OpaqueFloat)(f32s(0.25, 0.75), dst, 2)
		want := []float32{0.25, 1, 0.75, 1}
		if diff := cmp.Diff(want, readF32s(dst)); diff != "" {
			t.Errorf("AddAlpha mismatch (-want +got):\n%s", diff)
		}
	})
	t.Run("u8 rgb", func(t *testing.T) {
		dst := make([]byte, 8)
		AddAlpha(3, OpaqueU8)([]byte{1, 2, 3, 4, 5, 6}, dst, 2)
		if diff := cmp.Diff([]byte{1, 2, 3, 255, 4, 5, 6, 255}, dst); diff != "" {
			t.Errorf("AddAlpha mismatch (-want +got):\n%s", diff)
		}
	})
	t.Run("u16 rgb", func(t *testing.T) {
		dst := make([]byte, 4*SizeU16)
		AddAlpha(3, OpaqueU16)(u16s(1, 2, 3), dst, 1)
		if diff := cmp.Diff([]uint16{1, 2, 3, 0xFFFF}, readU16s(dst)); diff != "" {
			t.Errorf("AddAlpha mismatch (-want +got):\n%s", diff)
		}
	})
}

func TestBroadcast(t *testing.T) {
	t.Run("gray", func(t *testing.T) {
		dst := make([]byte, 6*SizeFloat)
		Broadcast(SizeFloat, false)(f32s(0.25, 0.5), dst, 2)
		want := []float32{0.25, 0.25, 0.25, 0.5, 0.5, 0.5}
		if diff := cmp.Diff(want, readF32s(dst)); diff != "" {
			t.Errorf("Broadcast mismatch (-want +got):\n%s", diff)
		}
	})
	t.Run("gray alpha", func(t *testing.T) {
		dst := make([]byte, 4*SizeFloat)
		Broadcast(SizeFloat, true)(f32s(0.25, 0.5), dst, 1)
		want := []float32{0.25, 0.25, 0.25, 0.5}
		if diff := cmp.Diff(want, readF32s(dst)); diff != "" {
			t.Errorf("Broadcast mismatch (-want +got):\n%s", diff)
		}
	})
	t.Run("bit pattern preserved", func(t *testing.T) {
		// A NaN payload survives because the copy is not numeric.
		src := []byte{0x01, 0x00, 0xC0, 0x7F}
		dst := make([]byte, 12)
		Broadcast(SizeFloat, false)(src, dst, 1)
		want := append(append(append([]byte{}, src...), src...), src...)
		if diff := cmp.Diff(want, dst); diff != "" {
			t.Errorf("Broadcast mismatch (-want +got):\n%s", diff)
		}
	})
}

// TestGrayBroadcastComposition checks that gray → RGB followed by RGB
// float → RGB u8 equals gray float → gray u8 with each byte tripled.
func TestGrayBroadcastComposition(t *testing.T) {
	gray := f32s(0.0, 0.5, 1.0)

	rgb := make([]byte, 9*SizeFloat)
	viaRGB := make([]byte, 9)
	Broadcast(SizeFloat, false)(gray, rgb, 3)
	Scale(F32ToU8, 3)(rgb, viaRGB, 3)

	direct := make([]byte, 3)
	F32ToU8(gray, direct, 3)
	var want []byte
	for _, b := range direct {
		want = append(want, b, b, b)
	}

	if diff := cmp.Diff(want, viaRGB); diff != "" {
		t.Errorf("composition mismatch (-direct +viaRGB):\n%s", diff)
	}
}

func TestSwapRB8(t *testing.T) {
	src := []byte{1, 2, 3, 4, 5, 6, 7, 8}
	dst := make([]byte, 8)
	SwapRB8(src, dst, 2)
	if diff := cmp.Diff([]byte{3, 2, 1, 4, 7, 6, 5, 8}, dst); diff != "" {
		t.Errorf("SwapRB8 mismatch (-want +got):\n%s", diff)
	}

	// Swapping twice restores the input, including in place.
	SwapRB8(dst, dst, 2)
	if diff := cmp.Diff(src, dst); diff != "" {
		t.Errorf("SwapRB8 twice mismatch (-want +got):\n%s", diff)
	}
}

func TestRGBAF32ToRGB(t *testing.T) {
	src := f32s(1, 0.5, -1, 0.3, 2, 0, 0, 1)

	dst8 := make([]byte, 6)
	RGBAF32ToRGBU8(src, dst8, 2)
	if diff := cmp.Diff([]byte{255, 128, 0, 255, 0, 0}, dst8); diff != "" {
		t.Errorf("RGBAF32ToRGBU8 mismatch (-want +got):\n%s", diff)
	}

	dst16 := make([]byte, 6*SizeU16)
	RGBAF32ToRGBU16(src, dst16, 2)
	if diff := cmp.Diff([]uint16{65535, 32768, 0, 65535, 0, 0}, readU16s(dst16)); diff != "" {
		t.Errorf("RGBAF32ToRGBU16 mismatch (-want +got):\n%s", diff)
	}
}

func TestScale(t *testing.T) {
	src := f32s(0, 0.5, 1, 1, 0.5, 0)
	dst := make([]byte, 6)
	if n := Scale(F32ToU8, 3)(src, dst, 2); n != 2 {
		t.Fatalf("Scale(F32ToU8, 3) returned %d, want 2", n)
	}
	if diff := cmp.Diff([]byte{0, 128, 255, 255, 128, 0}, dst); diff != "" {
		t.Errorf("Scale mismatch (-want +got):\n%s", diff)
	}
}
