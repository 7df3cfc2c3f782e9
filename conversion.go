package pixconv

import (
	"errors"
	"fmt"

	"github.com/gogpu/pixconv/internal/buffer"
	"github.com/gogpu/pixconv/internal/kernel"
)

// Cost is an opaque label attached to a conversion for path planners that
// rank candidate conversions. The registry stores it but never reads it.
type Cost string

// CostLinear is the label of every built-in conversion.
const CostLinear Cost = "linear"

// AlphaThreshold is the alpha below which a pixel counts as fully
// transparent: gamma encoding skips its color and unpremultiplying it
// yields zero color.
const AlphaThreshold = kernel.AlphaThreshold

// Func is the kernel contract: convert samples records from src to dst and
// return the number converted. Buffers are sized by the caller.
type Func = kernel.Func

// Conversion is a kernel bound to a (source, destination) format pair.
//
// Conversion is immutable and safe for concurrent use on disjoint buffers.
type Conversion struct {
	src, dst Format
	cost     Cost
	fn       kernel.Func
}

// Source returns the format the conversion reads.
func (c *Conversion) Source() Format { return c.src }

// Destination returns the format the conversion writes.
func (c *Conversion) Destination() Format { return c.dst }

// Cost returns the conversion's cost label.
func (c *Conversion) Cost() Cost { return c.cost }

// Name returns a readable name such as `"RGBA float" to "R'G'B'A u8"`.
func (c *Conversion) Name() string {
	return fmt.Sprintf("%q to %q", c.src.String(), c.dst.String())
}

func (c *Conversion) String() string { return c.Name() }

// Convert converts samples records from src to dst and returns the number
// converted. It fails before touching dst if either buffer is shorter than
// samples records. Extra bytes past the last record are left alone.
func (c *Conversion) Convert(src, dst []byte, samples int) (int, error) {
	sv, dv, err := c.views(src, dst, samples)
	if err != nil {
		return 0, err
	}
	return c.fn(sv.Bytes(), dv.Bytes(), samples), nil
}

// views validates both buffers for samples records.
func (c *Conversion) views(src, dst []byte, samples int) (buffer.View, buffer.View, error) {
	sv, err := buffer.NewView(src, samples, c.src.BytesPerPixel())
	if err != nil {
		return buffer.View{}, buffer.View{}, c.viewError("source", err)
	}
	dv, err := buffer.NewView(dst, samples, c.dst.BytesPerPixel())
	if err != nil {
		return buffer.View{}, buffer.View{}, c.viewError("destination", err)
	}
	return sv, dv, nil
}

func (c *Conversion) viewError(which string, err error) error {
	switch {
	case errors.Is(err, buffer.ErrNegativeCount):
		return fmt.Errorf("%s: %w", c.Name(), ErrNegativeCount)
	case errors.Is(err, buffer.ErrDataTooSmall):
		return fmt.Errorf("%s: %s: %w", c.Name(), which, ErrBufferTooSmall)
	default:
		return fmt.Errorf("%s: %s: %w", c.Name(), which, err)
	}
}

// Chain composes a and b into one conversion from a's source to b's
// destination. Each call converts into a scratch buffer of the
// intermediate format taken from a shared pool. The result is not
// registered anywhere.
func Chain(a, b *Conversion) (*Conversion, error) {
	if a == nil || b == nil {
		return nil, ErrNilKernel
	}
	if a.dst != b.src {
		return nil, fmt.Errorf("%w: %s then %s", ErrChainMismatch, a.Name(), b.Name())
	}
	stride := a.dst.BytesPerPixel()
	fa, fb := a.fn, b.fn
	fn := func(src, dst []byte, samples int) int {
		if samples == 0 {
			return 0
		}
		scratch := buffer.GetFromDefault(samples * stride)
		defer buffer.PutToDefault(scratch)
		fa(src, scratch, samples)
		return fb(scratch, dst, samples)
	}
	return &Conversion{src: a.src, dst: b.dst, cost: a.cost + "+" + b.cost, fn: fn}, nil
}
