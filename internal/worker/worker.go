package worker

import (
	"errors"
	"log/slog"
	"sync"
)

var (
	// ErrStopped is returned by Submit once Stop has been called.
	ErrStopped = errors.New("worker pool stopped")
	// ErrPoolFull is returned by Submit when the queue is at capacity.
	// Submit never blocks the caller.
	ErrPoolFull = errors.New("worker pool is full")
)

// Task represents a unit of work executed by the pool.
type Task func()

// Pool defines a simple worker pool.
type Pool interface {
	Submit(Task) error
	Stop()
}

// queuePerWorker bounds how many tasks may wait per worker before Submit rejects.
const queuePerWorker = 64

// NewPool creates a pool with n workers. n<=0 defaults to 1.
// A panicking task is logged and does not take its worker down.
func NewPool(n int, logger *slog.Logger) Pool {
	if n <= 0 {
		n = 1
	}
	if logger == nil {
		logger = slog.Default()
	}
	p := &pool{jobs: make(chan Task, n*queuePerWorker), logger: logger}
	p.wg.Add(n)
	for i := 0; i < n; i++ {
		go func(id int) {
			defer p.wg.Done()
			for job := range p.jobs {
				p.run(id, job)
			}
		}(i)
	}
	return p
}

type pool struct {
	jobs   chan Task
	wg     sync.WaitGroup
	logger *slog.Logger

	mu      sync.RWMutex
	stopped bool
}

func (p *pool) run(id int, job Task) {
	if job == nil {
		return
	}
	defer func() {
		if r := recover(); r != nil {
			p.logger.Error("worker task panicked", "worker", id, "panic", r)
		}
	}()
	job()
}

func (p *pool) Submit(t Task) error {
	p.mu.RLock()
	defer p.mu.RUnlock()
	if p.stopped {
		return ErrStopped
	}
	select {
	case p.jobs <- t:
		return nil
	default:
		return ErrPoolFull
	}
}

// Stop rejects new tasks and waits for queued ones to finish.
func (p *pool) Stop() {
	p.mu.Lock()
	if p.stopped {
		p.mu.Unlock()
		return
	}
	p.stopped = true
	close(p.jobs)
	p.mu.Unlock()
	p.wg.Wait()
}
