package pixconv

import (
	"fmt"
	"image"

	"golang.org/x/image/draw"
)

// Buffer is a packed image in one Format: Height rows of Width samples,
// each row Format.RowBytes(Width) bytes, with no padding between rows.
type Buffer struct {
	Format Format
	Width  int
	Height int
	Pix    []byte
}

// NewBuffer allocates a zeroed buffer.
func NewBuffer(f Format, width, height int) (*Buffer, error) {
	if !f.IsValid() {
		return nil, ErrInvalidFormat
	}
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrEmptyImage, width, height)
	}
	return &Buffer{
		Format: f,
		Width:  width,
		Height: height,
		Pix:    make([]byte, f.ImageBytes(width, height)),
	}, nil
}

// Samples returns the number of samples in the buffer.
func (b *Buffer) Samples() int {
	return b.Width * b.Height
}

// FromImage copies img into a new R'G'B'A u8 buffer with straight alpha.
// Any image.Image is accepted; the copy goes through x/image/draw, which
// un-premultiplies color models that store premultiplied alpha.
func FromImage(img image.Image) (*Buffer, error) {
	bounds := img.Bounds()
	if bounds.Empty() {
		return nil, ErrEmptyImage
	}
	w, h := bounds.Dx(), bounds.Dy()

	// Fast path: a tightly packed NRGBA already has the target layout.
	if n, ok := img.(*image.NRGBA); ok && n.Stride == 4*w {
		pix := make([]byte, 4*w*h)
		copy(pix, n.Pix[n.PixOffset(bounds.Min.X, bounds.Min.Y):])
		return &Buffer{Format: RGBAU8Gamma, Width: w, Height: h, Pix: pix}, nil
	}

	dst := image.NewNRGBA(image.Rect(0, 0, w, h))
	draw.Copy(dst, image.Point{}, img, bounds, draw.Src, nil)
	return &Buffer{Format: RGBAU8Gamma, Width: w, Height: h, Pix: dst.Pix}, nil
}

// ToImage returns an *image.NRGBA sharing the buffer's pixels. The buffer
// must be a non-empty R'G'B'A u8 image with at least Width*Height samples.
func (b *Buffer) ToImage() (*image.NRGBA, error) {
	if b.Format != RGBAU8Gamma {
		return nil, fmt.Errorf("%w: %q, want %q", ErrFormatMismatch, b.Format.String(), RGBAU8Gamma.String())
	}
	if b.Width <= 0 || b.Height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrEmptyImage, b.Width, b.Height)
	}
	if need := b.Format.ImageBytes(b.Width, b.Height); len(b.Pix) < need {
		return nil, fmt.Errorf("%w: %d bytes, want %d", ErrBufferTooSmall, len(b.Pix), need)
	}
	return &image.NRGBA{
		Pix:    b.Pix,
		Stride: 4 * b.Width,
		Rect:   image.Rect(0, 0, b.Width, b.Height),
	}, nil
}

// ConvertBuffer converts every sample of b into a new buffer of c's
// destination format.
func (c *Conversion) ConvertBuffer(b *Buffer) (*Buffer, error) {
	if b.Format != c.src {
		return nil, fmt.Errorf("%w: %q, want %q", ErrFormatMismatch, b.Format.String(), c.src.String())
	}
	out, err := NewBuffer(c.dst, b.Width, b.Height)
	if err != nil {
		return nil, err
	}
	if _, err := c.Convert(b.Pix, out.Pix, b.Samples()); err != nil {
		return nil, err
	}
	return out, nil
}
