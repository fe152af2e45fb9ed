// Package coord provides the worker-pool and bounded-queue plumbing
// shared by every engine mode: a buffered channel in place of the
// reference implementation's mutex-and-two-condvars queue, and a
// small set of atomic counters for status reporting.
package coord

// Queue is a bounded FIFO of jobs of type T, backed by a buffered
// channel. Put blocks once the queue is full, matching the reference
// queue's backpressure behavior; Done closes the channel so that
// draining Get calls return ok=false once the backlog is exhausted.
type Queue[T any] struct {
	ch chan T
}

// NewQueue creates a queue that can hold up to capacity pending jobs
// before Put blocks.
func NewQueue[T any](capacity int) *Queue[T] {
	return &Queue[T]{ch: make(chan T, capacity)}
}

// Put enqueues a job, blocking if the queue is full.
func (q *Queue[T]) Put(job T) {
	q.ch <- job
}

// Get dequeues the next job. ok is false once Done has been called and
// the queue has been fully drained.
func (q *Queue[T]) Get() (job T, ok bool) {
	job, ok = <-q.ch
	return job, ok
}

// Done signals that no further jobs will be put; safe to call once.
func (q *Queue[T]) Done() {
	close(q.ch)
}
