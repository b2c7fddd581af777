package notifier

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/IBM/sarama"
	"github.com/IBM/sarama/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// syncPool runs every task inline so tests see the publish result
// without waiting on worker goroutines.
type syncPool struct{}

func (syncPool) AddTask(ctx context.Context, task Task) error { return task() }
func (syncPool) TryAddTask(task Task) bool                    { task(); return true }
func (syncPool) Close()                                       {}

func newTestService(t *testing.T) (*Service, *mocks.SyncProducer) {
	config := mocks.NewTestConfig()
	config.Producer.Return.Successes = true
	producer := mocks.NewSyncProducer(t, config)

	service := &Service{
		producer: producer,
		topic:    "wallet.balance",
		pool:     syncPool{},
	}
	return service, producer
}

func TestPublishBalance(t *testing.T) {
	service, producer := newTestService(t)

	producer.ExpectSendMessageWithMessageCheckerFunctionAndSucceed(func(msg *sarama.ProducerMessage) error {
		assert.Equal(t, "wallet.balance", msg.Topic)

		key, err := msg.Key.Encode()
		require.NoError(t, err)
		assert.Equal(t, "1", string(key))

		value, err := msg.Value.Encode()
		require.NoError(t, err)
		var event balanceEvent
		require.NoError(t, json.Unmarshal(value, &event))
		assert.Equal(t, 1, event.WalletID)
		assert.Equal(t, 800.00, event.Balance)
		return nil
	})

	service.PublishBalance(1, 800.00)

	assert.NoError(t, producer.Close())
}

// A saturated queue must never park the caller: transfers fire events on
// the request path and have to return regardless of broker health.
func TestPublishBalance_QueueSaturated(t *testing.T) {
	wp := &WorkerPool{pool: make(chan Task, 1)}
	go wp.worker()

	block := make(chan struct{})
	started := make(chan struct{})
	require.True(t, wp.TryAddTask(func() error {
		close(started)
		<-block
		return nil
	}))
	<-started
	require.True(t, wp.TryAddTask(func() error {
		<-block
		return nil
	}))

	service := &Service{topic: "wallet.balance", pool: wp}

	done := make(chan struct{})
	go func() {
		service.PublishBalance(1, 100.00)
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(500 * time.Millisecond):
		t.Fatal("PublishBalance blocked on a full queue")
	}

	close(block)
	wp.Close()
}

func TestPublishBalance_BrokerError(t *testing.T) {
	service, producer := newTestService(t)

	producer.ExpectSendMessageAndFail(sarama.ErrOutOfBrokers)

	// delivery failure must not panic or propagate
	assert.NotPanics(t, func() {
		service.PublishBalance(2, 700.00)
	})

	assert.NoError(t, producer.Close())
}
