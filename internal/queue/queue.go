package queue

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/nahid-013/alkoteka-scraper/internal/models"
)

var ErrQueueClosed = errors.New("queue is closed")

// Task is one product page waiting to be fetched and extracted.
type Task struct {
	ID        string
	Target    models.CrawlTarget
	Retries   int
	CreatedAt time.Time
}

func NewTask(target models.CrawlTarget) *Task {
	return &Task{
		ID:        uuid.NewString(),
		Target:    target,
		CreatedAt: time.Now(),
	}
}

type Queue interface {
	Push(task *Task) error
	Pop(ctx context.Context) (*Task, error)
	Size() int
	Close() error
}

// InMemoryQueue is a FIFO queue of crawl tasks. Pop blocks until a task is
// available, the queue is closed and drained, or the context is done.
//
// Waiters block on a wake channel that Push and Close close to signal a state
// change; the mutex is never held across the wait, so a cancelled context
// unblocks Pop without touching queue state.
type InMemoryQueue struct {
	tasks  []*Task
	mu     sync.Mutex
	wake   chan struct{}
	closed bool
}

func NewInMemoryQueue() *InMemoryQueue {
	return &InMemoryQueue{
		tasks: make([]*Task, 0),
		wake:  make(chan struct{}),
	}
}

func (q *InMemoryQueue) Push(task *Task) error {
	q.mu.Lock()
	defer q.mu.Unlock()

	if q.closed {
		return ErrQueueClosed
	}

	q.tasks = append(q.tasks, task)
	close(q.wake)
	q.wake = make(chan struct{})

	return nil
}

func (q *InMemoryQueue) Pop(ctx context.Context) (*Task, error) {
	q.mu.Lock()

	for len(q.tasks) == 0 && !q.closed {
		wake := q.wake
		q.mu.Unlock()

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-wake:
		}

		q.mu.Lock()
	}

	if len(q.tasks) == 0 {
		q.mu.Unlock()
		return nil, ErrQueueClosed
	}

	task := q.tasks[0]
	q.tasks = q.tasks[1:]
	q.mu.Unlock()

	return task, nil
}

func (q *InMemoryQueue) Size() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.tasks)
}

func (q *InMemoryQueue) Close() error {
	q.mu.Lock()
	defer q.mu.Unlock()

	if !q.closed {
		q.closed = true
		close(q.wake)
	}

	return nil
}
