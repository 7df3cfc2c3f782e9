package pixconv

import (
	"context"
	"fmt"
)

// ConvertParallel converts samples records like c.Convert, splitting the
// work into chunks that run on the registry's worker pool. ctx is checked
// before each chunk starts. On cancellation it returns the number of
// samples in chunks that completed together with ctx.Err(); those chunks
// are fully converted and the rest of dst is untouched.
func (r *Registry) ConvertParallel(ctx context.Context, c *Conversion, src, dst []byte, samples int) (int, error) {
	sv, dv, err := c.views(src, dst, samples)
	if err != nil {
		return 0, err
	}
	if err := ctx.Err(); err != nil {
		return 0, err
	}

	chunk := r.opts.chunkSize
	pool := r.workers()
	if pool == nil || samples <= chunk {
		return c.fn(sv.Bytes(), dv.Bytes(), samples), nil
	}

	r.logger().Debug("pixconv: parallel conversion",
		"conversion", c.Name(), "samples", samples, "chunk", chunk, "workers", pool.Workers())

	n, err := pool.ForEachChunk(ctx, samples, chunk, func(from, to int) {
		s := sv.Slice(from, to)
		d := dv.Slice(from, to)
		c.fn(s.Bytes(), d.Bytes(), to-from)
	})
	if err != nil {
		return n, fmt.Errorf("%s: %w", c.Name(), err)
	}
	return n, nil
}

// ConvertParallel runs c.Convert on the Default registry's worker pool.
func ConvertParallel(ctx context.Context, c *Conversion, src, dst []byte, samples int) (int, error) {
	return Default().ConvertParallel(ctx, c, src, dst, samples)
}
