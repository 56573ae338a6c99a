package kafka

import (
	"context"
	"fmt"

	"github.com/IBM/sarama"
	"matching/internal/pkg/config"
	"matching/pkg/logger"
)

const producerMaxRetries = 3

// Producer синхронный продьюсер, сообщение считается отправленным после подтверждения всех реплик.
type Producer struct {
	log      logger.Logger
	producer sarama.SyncProducer
}

func NewProducerSaramaConfig(versionStr string) (*sarama.Config, error) {
	cfg := sarama.NewConfig()

	version, err := sarama.ParseKafkaVersion(versionStr)
	if err != nil {
		return nil, fmt.Errorf("parse kafka version %q: %w", versionStr, err)
	}
	cfg.Version = version

	// ключ сообщения - id груза, все уведомления по грузу в одной партиции
	cfg.Producer.Partitioner = sarama.NewHashPartitioner
	cfg.Producer.RequiredAcks = sarama.WaitForAll
	cfg.Producer.Retry.Max = producerMaxRetries
	cfg.Producer.Return.Successes = true
	cfg.Producer.Return.Errors = true

	return cfg, nil
}

func NewProducer(ctx context.Context, log logger.Logger, cfg *config.Kafka) (*Producer, error) {
	brokers := Brokers(cfg)

	saramaConfig, err := NewProducerSaramaConfig(cfg.Sarama.Version)
	if err != nil {
		return nil, fmt.Errorf("build saramaConfig: %w", err)
	}

	kafkaLog := log.With(
		logger.NewField("brokers", brokers),
		logger.NewField("topic", cfg.NotificationTopic),
	)

	err = pingKafka(ctx, kafkaLog, brokers, saramaConfig)
	if err != nil {
		return nil, fmt.Errorf("kafka connection: %w", err)
	}

	producer, err := sarama.NewSyncProducer(brokers, saramaConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create sync producer: %w", err)
	}

	return &Producer{
		log:      kafkaLog,
		producer: producer,
	}, nil
}

// SendMessages при частичной неудаче возвращает sarama.ProducerErrors только по неотправленным сообщениям.
func (p *Producer) SendMessages(msgs []*sarama.ProducerMessage) error {
	return p.producer.SendMessages(msgs)
}

func (p *Producer) Close() error {
	p.log.Info("Kafka producer closing")
	return p.producer.Close()
}
