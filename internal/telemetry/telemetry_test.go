package telemetry

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	semconv "go.opentelemetry.io/otel/semconv/v1.9.0"

	"github.com/tuanvumaihuynh/korpstock/internal/config"
)

func TestInitTracerWithoutCollector(t *testing.T) {
	cleanup, err := InitTracer(context.Background(), config.Otel{})
	require.NoError(t, err)
	require.NoError(t, cleanup(context.Background()))

	fields := otel.GetTextMapPropagator().Fields()
	assert.Contains(t, fields, "traceparent")
	assert.Contains(t, fields, "baggage")
}

func TestResourceAttributes(t *testing.T) {
	t.Run("Should default the service name", func(t *testing.T) {
		attrs := resourceAttributes(config.Otel{})
		require.Len(t, attrs, 1)
		assert.Equal(t, semconv.ServiceNameKey.String(defaultServiceName), attrs[0])
	})

	t.Run("Should add kubernetes attributes", func(t *testing.T) {
		attrs := resourceAttributes(config.Otel{
			ServiceName:  "ks-api",
			K8sPodName:   "ks-api-0",
			K8sNamespace: "inventory",
		})
		assert.Equal(t, []attribute.KeyValue{
			semconv.ServiceNameKey.String("ks-api"),
			semconv.K8SPodNameKey.String("ks-api-0"),
			semconv.K8SNamespaceNameKey.String("inventory"),
		}, attrs)
	})
}

func TestClientOptions(t *testing.T) {
	assert.Len(t, clientOptions(config.Otel{CollectorURL: "otel:4317", Insecure: true}), 2)
	assert.Len(t, clientOptions(config.Otel{CollectorURL: "otel:4317", CollectorAuth: "Bearer x"}), 3)
}
