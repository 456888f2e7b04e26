package command

import (
	"context"
	"sync"
)

// Queue serializes command execution for one terminal session: at most
// one command is in flight, later submissions wait in FIFO order, and
// results reach the sink in submission order. This is what keeps a slow
// search from interleaving its output with the next command.
type Queue struct {
	dispatcher *Dispatcher
	session    Session
	sink       func(Parsed, Result)

	jobs chan Parsed
	wg   sync.WaitGroup

	closeOnce sync.Once
}

// NewQueue starts the worker goroutine. The sink is invoked from that
// goroutine, once per submitted line, in submission order.
func NewQueue(ctx context.Context, d *Dispatcher, session Session, sink func(Parsed, Result)) *Queue {
	q := &Queue{
		dispatcher: d,
		session:    session,
		sink:       sink,
		jobs:       make(chan Parsed, 64),
	}

	q.wg.Add(1)
	go func() {
		defer q.wg.Done()
		for parsed := range q.jobs {
			q.sink(parsed, d.Execute(ctx, parsed, session))
		}
	}()

	return q
}

// Submit parses the line and enqueues it. Returns false when the queue
// is saturated; the caller should tell the user to slow down rather
// than block the input loop. Must not be called after Close.
func (q *Queue) Submit(line string) bool {
	select {
	case q.jobs <- Parse(line):
		return true
	default:
		return false
	}
}

// Close stops accepting work and waits for in-flight commands to
// finish.
func (q *Queue) Close() {
	q.closeOnce.Do(func() {
		close(q.jobs)
	})
	q.wg.Wait()
}
