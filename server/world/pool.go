package world

import (
	"errors"
	"fmt"
	"log/slog"
	"runtime"
	"slices"
	"sync"
	"sync/atomic"
	"time"

	"github.com/alitto/pond/v2"
	"github.com/terrastream/terra/server/world/chunk"
	"golang.org/x/time/rate"
)

// ErrPoolClosed is the cause of the panic raised when a task is dispatched to a Pool that was closed.
var ErrPoolClosed = errors.New("worker pool closed")

// backlogWarnThreshold is the amount of tasks that may remain queued after a Drain before a warning is
// logged.
const backlogWarnThreshold = 256

// Pool generates chunks on a fixed set of background workers. Positions are queued with Submit and handed to
// the workers in batches with Drain. A position is generated at most once at a time: it is marked pending in
// the Store when submitted and the mark is cleared when the generated chunk is committed.
//
// Submit, Retain, Sort, Drain and Close must be called from a single goroutine. Wait and InFlight may be
// called from any goroutine.
type Pool struct {
	log     *slog.Logger
	gen     Generator
	store   *Store
	metrics *Metrics

	workers pond.Pool
	size    int

	queue    []ChunkPos
	inFlight atomic.Int64
	running  sync.WaitGroup
	closed   atomic.Bool

	backlog rate.Sometimes
}

// NewPool creates a Pool that generates chunks into the Store passed using workers goroutines. A worker count
// of 0 or less uses one worker less than the amount of CPUs, with a minimum of one.
func NewPool(store *Store, gen Generator, workers int, log *slog.Logger, metrics *Metrics) *Pool {
	if workers <= 0 {
		workers = max(runtime.NumCPU()-1, 1)
	}
	if log == nil {
		log = slog.Default()
	}
	if gen == nil {
		gen = NopGenerator{}
	}
	return &Pool{
		log:     log,
		gen:     gen,
		store:   store,
		metrics: metrics,
		workers: pond.NewPool(workers),
		size:    workers,
		backlog: rate.Sometimes{First: 1, Interval: time.Minute},
	}
}

// Submit queues the position for generation. It returns false without doing anything if the position is
// already resident or pending.
func (p *Pool) Submit(pos ChunkPos) bool {
	if !p.store.markPending(pos) {
		return false
	}
	p.queue = append(p.queue, pos)
	return true
}

// Retain drops every queued task for which keep returns false and clears its pending mark. Tasks already
// handed to a worker are unaffected.
func (p *Pool) Retain(keep func(pos ChunkPos) bool) {
	p.queue = slices.DeleteFunc(p.queue, func(pos ChunkPos) bool {
		if keep(pos) {
			return false
		}
		p.store.clearPending(pos)
		return true
	})
}

// Sort reorders the queued tasks using the comparison function passed. Tasks that compare equal keep their
// relative order.
func (p *Pool) Sort(cmp func(a, b ChunkPos) int) {
	slices.SortStableFunc(p.queue, cmp)
}

// Drain hands up to n queued tasks to the workers, in queue order, and returns the amount dispatched. An n of
// 0 or less dispatches every queued task. Drain panics with an error wrapping ErrPoolClosed if the Pool was
// closed.
func (p *Pool) Drain(n int) int {
	if n <= 0 || n > len(p.queue) {
		n = len(p.queue)
	}
	for _, pos := range p.queue[:n] {
		p.dispatch(pos)
	}
	p.queue = slices.Delete(p.queue, 0, n)
	p.metrics.SetQueued(len(p.queue))

	if len(p.queue) > backlogWarnThreshold {
		p.backlog.Do(func() {
			p.log.Warn(
				"chunk generation backlog detected.",
				"queued_tasks", len(p.queue),
				"in_flight", p.inFlight.Load(),
				"workers", p.size,
			)
		})
	}
	return n
}

// dispatch hands a single task to the workers.
func (p *Pool) dispatch(pos ChunkPos) {
	if p.closed.Load() || p.workers.Stopped() {
		panic(fmt.Errorf("dispatch chunk %v: %w", pos, ErrPoolClosed))
	}
	p.inFlight.Add(1)
	p.running.Add(1)
	p.workers.Submit(func() {
		p.run(pos)
	})
}

// run generates the chunk at pos and commits it to the store. A panicking generator leaves nothing behind but
// a log entry: the pending mark is cleared so that the position is submitted again by a later update.
func (p *Pool) run(pos ChunkPos) {
	defer p.running.Done()
	defer p.inFlight.Add(-1)

	c := chunk.New(pos.Origin())
	if !p.generate(pos, c) {
		p.store.clearPending(pos)
		return
	}
	p.store.commit(pos, c)
	p.metrics.IncGenerated()
}

// generate calls the generator and recovers from any panic it raises.
func (p *Pool) generate(pos ChunkPos, c *chunk.Chunk) (ok bool) {
	defer func() {
		if r := recover(); r != nil {
			p.log.Error(
				"generate chunk: panic",
				"error", fmt.Sprint(r),
				"X", pos[0],
				"Y", pos[1],
				"Z", pos[2],
			)
			p.metrics.IncGenerationPanics()
			ok = false
		}
	}()
	p.gen.GenerateChunk(pos, c)
	return true
}

// Queued returns the amount of tasks not yet handed to a worker.
func (p *Pool) Queued() int {
	return len(p.queue)
}

// InFlight returns the amount of tasks handed to a worker that have not yet finished.
func (p *Pool) InFlight() int {
	return int(p.inFlight.Load())
}

// Workers returns the amount of worker goroutines.
func (p *Pool) Workers() int {
	return p.size
}

// Wait blocks until every task handed to a worker has finished.
func (p *Pool) Wait() {
	p.running.Wait()
}

// Close waits for running tasks to finish and stops the workers. Queued tasks are dropped and their pending
// marks cleared. Calling Close more than once is a no-op.
func (p *Pool) Close() {
	if !p.closed.CompareAndSwap(false, true) {
		return
	}
	p.running.Wait()
	p.workers.StopAndWait()
	for _, pos := range p.queue {
		p.store.clearPending(pos)
	}
	p.queue = nil
}
