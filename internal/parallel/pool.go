// Package parallel runs sample conversions on a pool of worker goroutines.
//
// A conversion over n samples is split into contiguous chunks. Chunks cover
// disjoint byte ranges of the source and destination, so kernels run on
// them concurrently without synchronization.
package parallel

import (
	"context"
	"runtime"
	"sync"
	"sync/atomic"
)

// WorkerPool is a pool of goroutines for chunked conversions.
//
// Each worker owns a queue. An idle worker steals from the other queues
// before blocking, which evens out chunks that finish at different speeds.
//
// Thread safety: WorkerPool is safe for concurrent use.
type WorkerPool struct {
	workers int
	queues  []chan func()
	done    chan struct{}
	wg      sync.WaitGroup
	running atomic.Bool

	// mu is held shared while enqueueing and exclusively by Close, so
	// nothing is queued after the workers drain.
	mu sync.RWMutex
}

// NewWorkerPool starts a pool with the given number of workers.
// If workers is 0 or negative, GOMAXPROCS is used.
func NewWorkerPool(workers int) *WorkerPool {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	queueSize := max(workers*4, 8)

	p := &WorkerPool{
		workers: workers,
		queues:  make([]chan func(), workers),
		done:    make(chan struct{}),
	}
	for i := range workers {
		p.queues[i] = make(chan func(), queueSize)
	}
	p.running.Store(true)

	p.wg.Add(workers)
	for i := range workers {
		go p.worker(i)
	}
	return p
}

func (p *WorkerPool) worker(id int) {
	defer p.wg.Done()

	own := p.queues[id]
	for {
		select {
		case <-p.done:
			p.drain(own)
			return
		case fn := <-own:
			fn()
		default:
			if fn := p.steal(id); fn != nil {
				fn()
				continue
			}
			select {
			case <-p.done:
				p.drain(own)
				return
			case fn := <-own:
				fn()
			}
		}
	}
}

func (p *WorkerPool) drain(q chan func()) {
	for {
		select {
		case fn := <-q:
			fn()
		default:
			return
		}
	}
}

func (p *WorkerPool) steal(id int) func() {
	for i := range p.workers {
		if i == id {
			continue
		}
		select {
		case fn := <-p.queues[i]:
			return fn
		default:
		}
	}
	return nil
}

// ExecuteAll distributes work round-robin and waits for all of it.
// On a closed pool everything runs on the calling goroutine.
func (p *WorkerPool) ExecuteAll(work []func()) {
	if len(work) == 0 {
		return
	}
	p.mu.RLock()
	if !p.running.Load() {
		p.mu.RUnlock()
		for _, fn := range work {
			fn()
		}
		return
	}

	var wg sync.WaitGroup
	wg.Add(len(work))
	for i, fn := range work {
		p.queues[i%p.workers] <- func() {
			defer wg.Done()
			fn()
		}
	}
	p.mu.RUnlock()
	wg.Wait()
}

// ForEachChunk calls fn(from, to) for consecutive ranges of at most chunk
// items covering [0, total), in parallel. ctx is checked before each chunk
// starts; chunks that have not started when ctx is cancelled are skipped.
// It returns the number of items whose chunk ran and ctx.Err() if any
// chunk was skipped.
func (p *WorkerPool) ForEachChunk(ctx context.Context, total, chunk int, fn func(from, to int)) (int, error) {
	if total <= 0 {
		return 0, ctx.Err()
	}
	if chunk <= 0 || chunk > total {
		chunk = total
	}

	var (
		done    atomic.Int64
		skipped atomic.Bool
	)
	work := make([]func(), 0, (total+chunk-1)/chunk)
	for from := 0; from < total; from += chunk {
		to := min(from+chunk, total)
		work = append(work, func() {
			if ctx.Err() != nil {
				skipped.Store(true)
				return
			}
			fn(from, to)
			done.Add(int64(to - from))
		})
	}
	p.ExecuteAll(work)

	if skipped.Load() {
		return int(done.Load()), ctx.Err()
	}
	return int(done.Load()), nil
}

// Close stops accepting work, runs what is queued, and stops the workers.
// Close is safe to call multiple times.
func (p *WorkerPool) Close() {
	p.mu.Lock()
	if !p.running.CompareAndSwap(true, false) {
		p.mu.Unlock()
		return
	}
	close(p.done)
	p.mu.Unlock()
	p.wg.Wait()
}

// Workers returns the number of workers in the pool.
func (p *WorkerPool) Workers() int {
	return p.workers
}

// IsRunning reports whether the pool accepts work.
func (p *WorkerPool) IsRunning() bool {
	return p.running.Load()
}
