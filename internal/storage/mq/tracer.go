package mq

import (
	"github.com/twmb/franz-go/pkg/kgo"
	"github.com/twmb/franz-go/plugin/kotel"
	"go.opentelemetry.io/otel"
)

var tracer = otel.Tracer("internal/storage/mq")

// kafkaHooks instruments a kgo client with OpenTelemetry spans for produce and
// fetch calls. Each client gets its own hooks.
func kafkaHooks() []kgo.Hook {
	k := kotel.NewKotel(
		kotel.WithTracer(kotel.NewTracer()),
	)
	return k.Hooks()
}
