package mq

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/twmb/franz-go/pkg/kgo"

	"github.com/tuanvumaihuynh/korpstock/pkg/correlationid"
	"github.com/tuanvumaihuynh/korpstock/pkg/ptr"
)

func TestBuildProduceRecord(t *testing.T) {
	rec := buildProduceRecord(ProduceMsg{
		Topic:        "product.created",
		Headers:      map[string]string{correlationid.Header: "corr-1"},
		Payload:      []byte(`{"sku":"A1"}`),
		PartitionKey: ptr.New("0192f0e4-0000-7000-8000-000000000000"),
	})

	assert.Equal(t, "product.created", rec.Topic)
	assert.Equal(t, []byte(`{"sku":"A1"}`), rec.Value)
	assert.Equal(t, []byte("0192f0e4-0000-7000-8000-000000000000"), rec.Key)
	assert.Equal(t, []kgo.RecordHeader{{Key: correlationid.Header, Value: []byte("corr-1")}}, rec.Headers)

	t.Run("Should leave key empty without partition key", func(t *testing.T) {
		rec := buildProduceRecord(ProduceMsg{Topic: "product.deleted"})
		assert.Nil(t, rec.Key)
		assert.Empty(t, rec.Headers)
	})
}

func newTestConsumer(buf *bytes.Buffer) *KafkaConsumer {
	return &KafkaConsumer{
		handlers: map[string]HandlerFunc{},
		log:      slog.New(slog.NewJSONHandler(buf, nil)),
	}
}

func TestHandleRecord(t *testing.T) {
	t.Run("Should pass correlation id from headers", func(t *testing.T) {
		var buf bytes.Buffer
		c := newTestConsumer(&buf)

		var (
			gotCorrelationID string
			gotPayload       []byte
		)
		c.handlers["product.created"] = func(ctx context.Context, _ string, payload []byte) error {
			gotCorrelationID, _ = correlationid.FromContext(ctx)
			gotPayload = payload
			return nil
		}

		c.handleRecord(context.Background(), &kgo.Record{
			Topic:   "product.created",
			Value:   []byte("{}"),
			Headers: []kgo.RecordHeader{{Key: correlationid.Header, Value: []byte("corr-9")}},
		})

		assert.Equal(t, "corr-9", gotCorrelationID)
		assert.Equal(t, []byte("{}"), gotPayload)
		assert.Empty(t, buf.String())
	})

	t.Run("Should log handler errors", func(t *testing.T) {
		var buf bytes.Buffer
		c := newTestConsumer(&buf)
		c.handlers["product.updated"] = func(context.Context, string, []byte) error {
			return errors.New("boom")
		}

		c.handleRecord(context.Background(), &kgo.Record{Topic: "product.updated"})

		assert.Contains(t, buf.String(), "error handling message")
		assert.Contains(t, buf.String(), "boom")
	})

	t.Run("Should recover handler panics", func(t *testing.T) {
		var buf bytes.Buffer
		c := newTestConsumer(&buf)
		c.handlers["product.deleted"] = func(context.Context, string, []byte) error {
			panic("bad record")
		}

		require.NotPanics(t, func() {
			c.handleRecord(context.Background(), &kgo.Record{Topic: "product.deleted"})
		})
		assert.Contains(t, buf.String(), "panic in message handler")
	})

	t.Run("Should warn on unknown topic", func(t *testing.T) {
		var buf bytes.Buffer
		c := newTestConsumer(&buf)

		c.handleRecord(context.Background(), &kgo.Record{Topic: "other"})

		assert.Contains(t, buf.String(), "no handler registered for topic")
	})
}
