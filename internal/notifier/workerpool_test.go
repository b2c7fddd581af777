package notifier

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWorkerPool(t *testing.T) {
	tests := []struct {
		name           string
		numTasks       int
		numWorkers     int
		expectedErrors int
	}{
		{
			name:           "Tasks run to completion",
			numTasks:       5,
			numWorkers:     2,
			expectedErrors: 0,
		},
		{
			name:           "Failing task does not stop the pool",
			numTasks:       3,
			numWorkers:     2,
			expectedErrors: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			wp := NewWorkerPool(tt.numWorkers)
			defer wp.Close()

			var mu sync.Mutex
			var taskExecutionCount int
			var errorCount int
			var wg sync.WaitGroup

			for i := 0; i < tt.numTasks; i++ {
				wg.Add(1)
				task := func(i int) Task {
					return func() error {
						defer wg.Done()
						if i == tt.numTasks-1 && tt.expectedErrors > 0 {
							mu.Lock()
							errorCount++
							mu.Unlock()
							return assert.AnError
						}
						time.Sleep(50 * time.Millisecond)
						mu.Lock()
						taskExecutionCount++
						mu.Unlock()
						return nil
					}
				}(i)

				err := wp.AddTask(context.Background(), task)
				require.NoError(t, err, "failed to add task to pool")
			}

			wg.Wait()

			assert.Equal(t, tt.numTasks-tt.expectedErrors, taskExecutionCount, "number of executed tasks does not match")
			assert.Equal(t, tt.expectedErrors, errorCount, "number of errors does not match")
		})
	}
}

func TestWorkerPool_TryAddTask(t *testing.T) {
	wp := &WorkerPool{pool: make(chan Task, 1)}

	assert.True(t, wp.TryAddTask(func() error { return nil }))
	// queue is full and no workers are draining it
	assert.False(t, wp.TryAddTask(func() error { return nil }))
}

func TestWorkerPool_CloseDrainsQueuedTasks(t *testing.T) {
	wp := &WorkerPool{pool: make(chan Task, 1)}

	done := make(chan struct{})
	require.True(t, wp.TryAddTask(func() error {
		close(done)
		return nil
	}))

	go wp.worker()
	wp.Close()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("queued task was not executed after Close")
	}
}

func TestWorkerPool_CanceledContext(t *testing.T) {
	wp := &WorkerPool{pool: make(chan Task)}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := wp.AddTask(ctx, func() error { return nil })
	assert.ErrorIs(t, err, context.Canceled)
}
