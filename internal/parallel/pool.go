// Package parallel runs independent units of work on a fixed set of
// goroutines.
package parallel

import (
	"runtime"
	"sync"
	"sync/atomic"
)

// WorkerPool executes batches of independent units, such as the frames of
// an animation, on a fixed number of goroutines.
//
// Each worker owns a queue and falls back to taking units from the other
// queues when its own runs dry, so one slow unit does not hold back the
// units queued behind it.
//
// WorkerPool is safe for concurrent use.
type WorkerPool struct {
	workers int
	queues  []chan func()
	done    chan struct{}
	wg      sync.WaitGroup
	open    atomic.Bool
}

// NewWorkerPool starts a pool of n workers. If n <= 0, GOMAXPROCS is used.
func NewWorkerPool(n int) *WorkerPool {
	if n <= 0 {
		n = runtime.GOMAXPROCS(0)
	}

	depth := max(n*4, 8)
	p := &WorkerPool{
		workers: n,
		queues:  make([]chan func(), n),
		done:    make(chan struct{}),
	}
	for i := range n {
		p.queues[i] = make(chan func(), depth)
	}
	p.open.Store(true)

	p.wg.Add(n)
	for i := range n {
		go p.work(i)
	}
	return p
}

func (p *WorkerPool) work(id int) {
	defer p.wg.Done()

	own := p.queues[id]
	for {
		select {
		case <-p.done:
			p.drain(own)
			return
		case unit := <-own:
			unit()
			continue
		default:
		}

		if unit := p.steal(id); unit != nil {
			unit()
			continue
		}

		select {
		case <-p.done:
			p.drain(own)
			return
		case unit := <-own:
			unit()
		}
	}
}

// drain runs whatever is left in q.
func (p *WorkerPool) drain(q chan func()) {
	for {
		select {
		case unit := <-q:
			unit()
		default:
			return
		}
	}
}

// steal takes one unit from another worker's queue, or returns nil.
func (p *WorkerPool) steal(id int) func() {
	for i := range p.workers {
		if i == id {
			continue
		}
		select {
		case unit := <-p.queues[i]:
			return unit
		default:
		}
	}
	return nil
}

// Run executes every unit and returns once all of them have finished.
// Units are dealt round-robin across the workers. On a closed pool the units
// run one after another on the calling goroutine.
func (p *WorkerPool) Run(units []func()) {
	if len(units) == 0 {
		return
	}
	if !p.open.Load() {
		for _, u := range units {
			u()
		}
		return
	}

	var pending sync.WaitGroup
	pending.Add(len(units))
	for i, u := range units {
		wrapped := func() {
			defer pending.Done()
			u()
		}
		select {
		case p.queues[i%p.workers] <- wrapped:
		case <-p.done:
			wrapped()
		}
	}
	pending.Wait()
}

// Close stops the workers after the queued units have run. It is safe to
// call more than once.
func (p *WorkerPool) Close() {
	if !p.open.CompareAndSwap(true, false) {
		return
	}
	close(p.done)
	p.wg.Wait()
}

// Workers returns the number of worker goroutines.
func (p *WorkerPool) Workers() int {
	return p.workers
}
