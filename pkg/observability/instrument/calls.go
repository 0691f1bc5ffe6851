package instrument

import (
	"context"
	"fmt"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"

	"github.com/janhq/furniture-api/pkg/observability"
)

// CallInstrumenter instruments outbound model-provider calls.
type CallInstrumenter struct {
	tracer       trace.Tracer
	callsActive  metric.Int64UpDownCounter
	callDuration metric.Float64Histogram
	callsTotal   metric.Int64Counter
	tokensTotal  metric.Int64Counter
}

// NewCallInstrumenter creates the OTel instruments under the service prefix.
func NewCallInstrumenter(tracer trace.Tracer, meter metric.Meter, serviceName string) (*CallInstrumenter, error) {
	callsActive, err := meter.Int64UpDownCounter(
		fmt.Sprintf("%s_provider_calls_active", serviceName),
		metric.WithDescription("Number of in-flight provider calls"),
	)
	if err != nil {
		return nil, err
	}

	callDuration, err := meter.Float64Histogram(
		fmt.Sprintf("%s_provider_call_duration_seconds", serviceName),
		metric.WithDescription("Provider call duration"),
		metric.WithUnit("s"),
	)
	if err != nil {
		return nil, err
	}

	callsTotal, err := meter.Int64Counter(
		fmt.Sprintf("%s_provider_calls_total", serviceName),
		metric.WithDescription("Total provider calls"),
	)
	if err != nil {
		return nil, err
	}

	tokensTotal, err := meter.Int64Counter(
		fmt.Sprintf("%s_provider_tokens_total", serviceName),
		metric.WithDescription("Tokens reported by the provider"),
	)
	if err != nil {
		return nil, err
	}

	return &CallInstrumenter{
		tracer:       tracer,
		callsActive:  callsActive,
		callDuration: callDuration,
		callsTotal:   callsTotal,
		tokensTotal:  tokensTotal,
	}, nil
}

// InstrumentCall wraps fn in a client span and records duration and outcome.
func (c *CallInstrumenter) InstrumentCall(ctx context.Context, operation, model string, fn func(context.Context) error) error {
	c.callsActive.Add(ctx, 1)
	defer c.callsActive.Add(ctx, -1)

	ctx, span := c.tracer.Start(ctx, fmt.Sprintf("provider.%s", operation),
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(observability.WithCallAttrs(operation, model)...),
	)
	defer span.End()

	start := time.Now()
	err := fn(ctx)
	duration := time.Since(start).Seconds()

	status := "success"
	if err != nil {
		status = "error"
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}

	attrs := metric.WithAttributes(
		attribute.String(observability.AttrOperation, operation),
		attribute.String("status", status),
	)
	c.callDuration.Record(ctx, duration, attrs)
	c.callsTotal.Add(ctx, 1, attrs)

	return err
}

// RecordTokens adds prompt and completion token counts.
func (c *CallInstrumenter) RecordTokens(ctx context.Context, operation string, prompt, completion int) {
	c.tokensTotal.Add(ctx, int64(prompt), metric.WithAttributes(
		attribute.String(observability.AttrOperation, operation),
		attribute.String("kind", "prompt"),
	))
	c.tokensTotal.Add(ctx, int64(completion), metric.WithAttributes(
		attribute.String(observability.AttrOperation, operation),
		attribute.String("kind", "completion"),
	))
}
