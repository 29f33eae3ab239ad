package kafka

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/IBM/sarama"

	"github.com/jhoicas/Estoque-Residencial-api/internal/application/inventory"
	"github.com/jhoicas/Estoque-Residencial-api/pkg/logger"
)

// EventTypeTreatmentCompleted valor do header event_type.
const EventTypeTreatmentCompleted = "prescription.treatment_completed"

var _ inventory.Notifier = (*Publisher)(nil)

// Publisher publica avisos de fim de tratamento num tópico Kafka.
type Publisher struct {
	producer sarama.SyncProducer
	topic    string
	log      *logger.Logger
}

// NewProducerConfig configuração do produtor síncrono (acks de todas as réplicas).
func NewProducerConfig() *sarama.Config {
	config := sarama.NewConfig()
	config.Producer.Return.Successes = true
	config.Producer.Retry.Max = 3
	config.Producer.RequiredAcks = sarama.WaitForAll
	config.Producer.Compression = sarama.CompressionSnappy
	return config
}

// NewPublisher conecta aos brokers.
func NewPublisher(brokers []string, topic string, log *logger.Logger) (*Publisher, error) {
	producer, err := sarama.NewSyncProducer(brokers, NewProducerConfig())
	if err != nil {
		return nil, fmt.Errorf("criar produtor kafka: %w", err)
	}
	log.Info().Strs("brokers", brokers).Str("topic", topic).Msg("publisher kafka iniciado")
	return NewPublisherWithProducer(producer, topic, log), nil
}

// NewPublisherWithProducer usa um produtor existente (ex.: mocks do sarama).
func NewPublisherWithProducer(producer sarama.SyncProducer, topic string, log *logger.Logger) *Publisher {
	if log == nil {
		log = logger.Nop()
	}
	return &Publisher{producer: producer, topic: topic, log: log}
}

// TreatmentCompleted publica o evento; a chave é o residente para manter a ordem por residente.
func (p *Publisher) TreatmentCompleted(ctx context.Context, event inventory.TreatmentCompletedEvent) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("serializar evento: %w", err)
	}

	msg := &sarama.ProducerMessage{
		Topic: p.topic,
		Key:   sarama.StringEncoder(event.ResidentID),
		Value: sarama.ByteEncoder(payload),
		Headers: []sarama.RecordHeader{
			{Key: []byte("event_type"), Value: []byte(EventTypeTreatmentCompleted)},
			{Key: []byte("event_id"), Value: []byte(event.EventID)},
		},
	}

	partition, offset, err := p.producer.SendMessage(msg)
	if err != nil {
		p.log.Error().
			Err(err).
			Str("topic", p.topic).
			Str("prescription_id", event.PrescriptionID).
			Msg("falha ao publicar evento")
		return fmt.Errorf("enviar mensagem kafka: %w", err)
	}

	p.log.Info().
		Str("event_id", event.EventID).
		Str("topic", p.topic).
		Int32("partition", partition).
		Int64("offset", offset).
		Str("prescription_id", event.PrescriptionID).
		Str("resident_id", event.ResidentID).
		Msg("fim de tratamento publicado")
	return nil
}

// Close fecha o produtor.
func (p *Publisher) Close() error {
	if p.producer != nil {
		return p.producer.Close()
	}
	return nil
}
