package notifier

import (
	"encoding/json"
	"strconv"

	"github.com/IBM/sarama"
	"go.uber.org/zap"
)

const poolSize = 10

type balanceEvent struct {
	WalletID int     `json:"wallet_id"`
	Balance  float64 `json:"balance"`
}

// Service publishes balance change events to Kafka. Publishing is
// fire-and-forget: a delivery failure is logged, never surfaced to the
// operation that changed the balance.
type Service struct {
	producer sarama.SyncProducer
	topic    string
	pool     WorkerPoolI
}

func NewProducer(brokers []string) (sarama.SyncProducer, error) {
	config := sarama.NewConfig()
	config.Producer.RequiredAcks = sarama.WaitForAll
	config.Producer.Retry.Max = 3
	config.Producer.Return.Successes = true

	return sarama.NewSyncProducer(brokers, config)
}

func New(producer sarama.SyncProducer, topic string) *Service {
	return &Service{
		producer: producer,
		topic:    topic,
		pool:     NewWorkerPool(poolSize),
	}
}

// PublishBalance enqueues an event with the wallet's new balance. The
// enqueue never blocks: when the queue is saturated the event is dropped
// and logged, so a broker outage cannot stall the transfer path.
func (s *Service) PublishBalance(walletID int, balance float64) {
	task := func() error {
		return s.publish(walletID, balance)
	}
	if !s.pool.TryAddTask(task) {
		zap.L().Error("Balance event dropped, publish queue is full",
			zap.Int("walletID", walletID),
		)
	}
}

func (s *Service) publish(walletID int, balance float64) error {
	payload, err := json.Marshal(balanceEvent{WalletID: walletID, Balance: balance})
	if err != nil {
		return err
	}

	// keyed by wallet id so events for one wallet stay ordered
	msg := &sarama.ProducerMessage{
		Topic: s.topic,
		Key:   sarama.StringEncoder(strconv.Itoa(walletID)),
		Value: sarama.ByteEncoder(payload),
	}
	partition, offset, err := s.producer.SendMessage(msg)
	if err != nil {
		return err
	}

	zap.L().Debug("Published balance event",
		zap.Int("walletID", walletID),
		zap.Int32("partition", partition),
		zap.Int64("offset", offset),
	)
	return nil
}

func (s *Service) Close() error {
	s.pool.Close()
	return s.producer.Close()
}
