package kafka_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/IBM/sarama"
	"github.com/IBM/sarama/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Estoque-Residencial-api/internal/application/inventory"
	"github.com/jhoicas/Estoque-Residencial-api/internal/infrastructure/kafka"
)

func event() inventory.TreatmentCompletedEvent {
	return inventory.TreatmentCompletedEvent{
		EventID:        "evt-1",
		PrescriptionID: "rx1",
		ResidentID:     "r1",
		ProductID:      "p1",
		MovementID:     "m1",
		Date:           "2024-03-15",
		OccurredAt:     time.Date(2024, 3, 15, 10, 0, 0, 0, time.UTC),
	}
}

func TestTreatmentCompleted_Publica(t *testing.T) {
	producer := mocks.NewSyncProducer(t, sarama.NewConfig())
	producer.ExpectSendMessageWithCheckerFunctionAndSucceed(func(val []byte) error {
		var got inventory.TreatmentCompletedEvent
		if err := json.Unmarshal(val, &got); err != nil {
			return err
		}
		if got.PrescriptionID != "rx1" || got.Date != "2024-03-15" {
			return errors.New("payload inesperado")
		}
		return nil
	})

	pub := kafka.NewPublisherWithProducer(producer, "tratamentos", nil)
	require.NoError(t, pub.TreatmentCompleted(context.Background(), event()))
	require.NoError(t, pub.Close())
}

func TestTreatmentCompleted_ErroDoBroker(t *testing.T) {
	producer := mocks.NewSyncProducer(t, sarama.NewConfig())
	producer.ExpectSendMessageAndFail(sarama.ErrOutOfBrokers)

	pub := kafka.NewPublisherWithProducer(producer, "tratamentos", nil)
	err := pub.TreatmentCompleted(context.Background(), event())
	assert.ErrorIs(t, err, sarama.ErrOutOfBrokers)
	require.NoError(t, pub.Close())
}

func TestTreatmentCompleted_ContextoCancelado(t *testing.T) {
	producer := mocks.NewSyncProducer(t, sarama.NewConfig())
	pub := kafka.NewPublisherWithProducer(producer, "tratamentos", nil)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.ErrorIs(t, pub.TreatmentCompleted(ctx, event()), context.Canceled)
	require.NoError(t, pub.Close())
}
