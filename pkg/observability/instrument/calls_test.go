package instrument

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	metricnoop "go.opentelemetry.io/otel/metric/noop"
	tracenoop "go.opentelemetry.io/otel/trace/noop"
)

func newTestInstrumenter(t *testing.T) *CallInstrumenter {
	t.Helper()
	inst, err := NewCallInstrumenter(tracenoop.NewTracerProvider().Tracer("test"), metricnoop.NewMeterProvider().Meter("test"), "furniture")
	require.NoError(t, err)
	return inst
}

func TestInstrumentCallPassesThroughResult(t *testing.T) {
	inst := newTestInstrumenter(t)

	called := false
	err := inst.InstrumentCall(context.Background(), "chat", "model-a", func(ctx context.Context) error {
		called = true
		require.NotNil(t, ctx)
		return nil
	})
	require.NoError(t, err)
	assert.True(t, called)
}

func TestInstrumentCallReturnsError(t *testing.T) {
	inst := newTestInstrumenter(t)
	boom := errors.New("boom")

	err := inst.InstrumentCall(context.Background(), "chat", "model-a", func(context.Context) error {
		return boom
	})
	assert.ErrorIs(t, err, boom)

	assert.NotPanics(t, func() {
		inst.RecordTokens(context.Background(), "chat", 12, 34)
	})
}
