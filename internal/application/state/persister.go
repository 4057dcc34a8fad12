package state

import (
	"context"
	"sync"

	"kanban/internal/domain/entity"
)

// Saver writes a board snapshot, reporting success. Failures are the saver's
// to log; the persister never retries.
type Saver interface {
	Save(ctx context.Context, board entity.Board) bool
}

// Persister mirrors committed board snapshots to storage on a single
// background goroutine.
//
// Enqueue never blocks. Only the newest unsaved snapshot is kept, so a slow
// store skips intermediate states but can never write an older snapshot
// after a newer one.
type Persister struct {
	saver Saver

	mu       sync.Mutex
	pending  *entity.Board
	enqueued uint64
	written  uint64
	closed   bool
	idle     *sync.Cond

	signal chan struct{} // buffered, size 1
	done   chan struct{}
}

// NewPersister starts the background writer
func NewPersister(saver Saver) *Persister {
	p := &Persister{
		saver:  saver,
		signal: make(chan struct{}, 1),
		done:   make(chan struct{}),
	}
	p.idle = sync.NewCond(&p.mu)

	go p.run()
	return p
}

// Enqueue schedules board to be written, replacing any snapshot not yet picked up.
// Returns false once the persister is closed.
func (p *Persister) Enqueue(board entity.Board) bool {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.closed {
		return false
	}

	p.pending = &board
	p.enqueued++

	select {
	case p.signal <- struct{}{}:
	default:
	}

	return true
}

// Flush blocks until every snapshot enqueued so far has been written or superseded
func (p *Persister) Flush() {
	p.mu.Lock()
	defer p.mu.Unlock()

	for p.written < p.enqueued {
		p.idle.Wait()
	}
}

// Pending reports whether a snapshot is waiting to be written
func (p *Persister) Pending() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.written < p.enqueued
}

// Close stops accepting snapshots, writes the last one and waits for the writer to exit
func (p *Persister) Close() {
	p.mu.Lock()
	if p.closed {
		p.mu.Unlock()
		<-p.done
		return
	}
	p.closed = true
	close(p.signal)
	p.mu.Unlock()

	<-p.done
}

func (p *Persister) run() {
	defer close(p.done)

	for range p.signal {
		p.drain()
	}
	p.drain()
}

// drain writes snapshots until none is pending
func (p *Persister) drain() {
	for {
		p.mu.Lock()
		if p.pending == nil {
			p.mu.Unlock()
			return
		}
		board := *p.pending
		seq := p.enqueued
		p.pending = nil
		p.mu.Unlock()

		// Saves are never cancelled
		p.saver.Save(context.Background(), board)

		p.mu.Lock()
		p.written = seq
		p.idle.Broadcast()
		p.mu.Unlock()
	}
}
