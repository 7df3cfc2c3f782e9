package pixconv

import (
	"cmp"
	"fmt"
	"log/slog"
	"slices"
	"sync"

	"github.com/gogpu/pixconv/internal/parallel"
)

// pair keys the registry.
type pair struct {
	src, dst Format
}

// Registry maps (source, destination) format pairs to conversions.
//
// A Registry does not search for paths: Lookup answers only for pairs that
// were registered directly. Use Chain to compose two conversions.
//
// Thread safety: All methods are safe for concurrent use.
type Registry struct {
	mu    sync.RWMutex
	convs map[pair]*Conversion
	opts  options

	poolOnce sync.Once
	pool     *parallel.WorkerPool
}

// NewRegistry creates a registry. Unless WithoutBuiltins is given it is
// populated with the built-in conversions.
func NewRegistry(opts ...Option) *Registry {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	r := &Registry{
		convs: make(map[pair]*Conversion),
		opts:  o,
	}
	if o.builtins {
		// The built-in table is fixed; a failure here is a bug in it.
		if err := registerBuiltins(r); err != nil {
			panic(fmt.Sprintf("pixconv: built-in conversions: %v", err))
		}
	}
	return r
}

var defaultRegistry = sync.OnceValue(func() *Registry {
	return NewRegistry()
})

// Default returns the shared registry holding the built-in conversions.
// It is created on first use.
func Default() *Registry {
	return defaultRegistry()
}

func (r *Registry) logger() *slog.Logger {
	if r.opts.logger != nil {
		return r.opts.logger
	}
	return Logger()
}

// Register adds a conversion for (src, dst). cost is stored as given.
// It fails for invalid formats, a nil kernel, or an already registered pair.
func (r *Registry) Register(src, dst Format, cost Cost, fn Func) error {
	if !src.IsValid() || !dst.IsValid() {
		return fmt.Errorf("%w: %d to %d", ErrInvalidFormat, src, dst)
	}
	if fn == nil {
		return fmt.Errorf("%w: %q to %q", ErrNilKernel, src.String(), dst.String())
	}
	c := &Conversion{src: src, dst: dst, cost: cost, fn: fn}

	r.mu.Lock()
	defer r.mu.Unlock()

	key := pair{src, dst}
	if _, ok := r.convs[key]; ok {
		r.logger().Warn("pixconv: duplicate conversion rejected", "conversion", c.Name())
		return fmt.Errorf("%w: %s", ErrDuplicate, c.Name())
	}
	r.convs[key] = c
	r.logger().Debug("pixconv: registered conversion", "conversion", c.Name(), "cost", string(cost))
	return nil
}

// RegisterAlias registers (src, dst) with the kernel already registered for
// (baseSrc, baseDst). The alias formats must share the byte layout of the
// base formats pairwise.
func (r *Registry) RegisterAlias(src, dst, baseSrc, baseDst Format) error {
	if !sameLayout(src, baseSrc) || !sameLayout(dst, baseDst) {
		return fmt.Errorf("%w: %q to %q as %q to %q", ErrLayoutMismatch,
			src.String(), dst.String(), baseSrc.String(), baseDst.String())
	}
	base, err := r.Lookup(baseSrc, baseDst)
	if err != nil {
		return fmt.Errorf("alias %q to %q: %w", src.String(), dst.String(), err)
	}
	return r.Register(src, dst, base.cost, base.fn)
}

// Lookup returns the conversion registered for (src, dst).
func (r *Registry) Lookup(src, dst Format) (*Conversion, error) {
	r.mu.RLock()
	c, ok := r.convs[pair{src, dst}]
	r.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("%w: %q to %q", ErrNoConversion, src.String(), dst.String())
	}
	return c, nil
}

// Conversions returns all registered conversions sorted by name.
func (r *Registry) Conversions() []*Conversion {
	r.mu.RLock()
	out := make([]*Conversion, 0, len(r.convs))
	for _, c := range r.convs {
		out = append(out, c)
	}
	r.mu.RUnlock()

	slices.SortFunc(out, func(a, b *Conversion) int {
		return cmp.Compare(a.Name(), b.Name())
	})
	return out
}

// Len returns the number of registered conversions.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.convs)
}

// workers returns the registry's worker pool, starting it on first use.
func (r *Registry) workers() *parallel.WorkerPool {
	r.poolOnce.Do(func() {
		r.pool = parallel.NewWorkerPool(r.opts.workers)
		r.logger().Debug("pixconv: worker pool started", "workers", r.pool.Workers())
	})
	return r.pool
}

// Close stops the registry's worker pool if one was started. Conversions
// stay usable; ConvertParallel on a closed registry runs on the caller.
func (r *Registry) Close() {
	r.poolOnce.Do(func() {}) // no pool will start after Close
	if r.pool != nil {
		r.pool.Close()
	}
}
