package notifier

import (
	"context"

	"go.uber.org/zap"
)

type WorkerPoolI interface {
	AddTask(ctx context.Context, task Task) error
	TryAddTask(task Task) bool
	Close()
}

type Task func() error

// WorkerPool runs publish tasks off the request path so a slow or
// unreachable broker never delays a transfer.
type WorkerPool struct {
	pool chan Task
}

func NewWorkerPool(size int) *WorkerPool {
	pool := make(chan Task, size)
	wp := &WorkerPool{pool: pool}

	for i := 0; i < size; i++ {
		go wp.worker()
	}
	return wp
}

func (wp *WorkerPool) worker() {
	for task := range wp.pool {
		if err := task(); err != nil {
			zap.L().Error("Task execution failed", zap.Error(err))
		}
	}
}

func (wp *WorkerPool) AddTask(ctx context.Context, task Task) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	case wp.pool <- task:
		return nil
	}
}

// TryAddTask enqueues without blocking and reports whether the task was
// accepted. A full queue rejects the task instead of parking the caller.
func (wp *WorkerPool) TryAddTask(task Task) bool {
	select {
	case wp.pool <- task:
		return true
	default:
		return false
	}
}

// Close stops accepting tasks; workers drain what is already queued.
func (wp *WorkerPool) Close() {
	close(wp.pool)
}
