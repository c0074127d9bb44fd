// ABOUTME: Queue is the unbounded single-producer/single-consumer FIFO between capture and render
// ABOUTME: Send never blocks and TryRecv never blocks; Close marks the consumer as gone

package input

import (
	"errors"
	"sync"
)

// ErrClosed is returned by Send after the consumer closed the queue.
var ErrClosed = errors.New("input queue closed")

// Queue holds captured characters in arrival order. There is no
// capacity limit: a slow consumer makes the queue grow.
type Queue struct {
	mu     sync.Mutex
	items  []rune
	head   int
	closed bool
}

// NewQueue returns an empty Queue.
func NewQueue() *Queue {
	return &Queue{items: make([]rune, 0, 64)}
}

// Send appends r. It fails only when the queue is closed.
func (q *Queue) Send(r rune) error {
	q.mu.Lock()
	defer q.mu.Unlock()

	if q.closed {
		return ErrClosed
	}
	q.items = append(q.items, r)
	return nil
}

// TryRecv removes and returns the oldest character, or reports false
// immediately when the queue is empty.
func (q *Queue) TryRecv() (rune, bool) {
	q.mu.Lock()
	defer q.mu.Unlock()

	if q.head == len(q.items) {
		return 0, false
	}
	r := q.items[q.head]
	q.head++
	if q.head == len(q.items) {
		// Fully drained: reuse the backing array.
		q.items = q.items[:0]
		q.head = 0
	}
	return r, true
}

// Len returns the number of characters waiting.
func (q *Queue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()

	return len(q.items) - q.head
}

// Close drops the consumer end. Pending characters stay readable.
func (q *Queue) Close() {
	q.mu.Lock()
	defer q.mu.Unlock()

	q.closed = true
}
