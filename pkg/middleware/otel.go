package middleware

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/vango-dev/pardna/pkg/pardna"
)

const (
	defaultTracerName = "pardna"
	spanName          = "pardna.create"
)

// OTelConfig configures the OpenTelemetry decorator.
type OTelConfig struct {
	// TracerName is the name of the tracer (default: "pardna").
	TracerName string

	// TracerProvider overrides the global provider.
	TracerProvider trace.TracerProvider

	// IncludeName adds the pardna name to spans.
	// May contain personal information - disabled by default.
	IncludeName bool

	// AttributeExtractor adds custom attributes per payload.
	AttributeExtractor func(p pardna.Payload) []attribute.KeyValue
}

// OTelOption configures the OpenTelemetry decorator.
type OTelOption func(*OTelConfig)

// WithTracerName sets the tracer name.
func WithTracerName(name string) OTelOption {
	return func(c *OTelConfig) {
		c.TracerName = name
	}
}

// WithTracerProvider sets the tracer provider.
func WithTracerProvider(tp trace.TracerProvider) OTelOption {
	return func(c *OTelConfig) {
		c.TracerProvider = tp
	}
}

// WithIncludeName enables including the pardna name in spans.
func WithIncludeName(include bool) OTelOption {
	return func(c *OTelConfig) {
		c.IncludeName = include
	}
}

// WithAttributeExtractor sets a custom attribute extractor.
func WithAttributeExtractor(extractor func(p pardna.Payload) []attribute.KeyValue) OTelOption {
	return func(c *OTelConfig) {
		c.AttributeExtractor = extractor
	}
}

// OpenTelemetry returns a decorator that traces every create call in a
// client span named "pardna.create".
func OpenTelemetry(opts ...OTelOption) Decorator {
	config := OTelConfig{TracerName: defaultTracerName}
	for _, opt := range opts {
		opt(&config)
	}

	var tracer trace.Tracer
	if config.TracerProvider != nil {
		tracer = config.TracerProvider.Tracer(config.TracerName)
	} else {
		tracer = otel.Tracer(config.TracerName)
	}

	return func(next pardna.Creator) pardna.Creator {
		return pardna.CreatorFunc(func(ctx context.Context, p pardna.Payload) (string, error) {
			attrs := []attribute.KeyValue{
				attribute.String("pardna.payment_frequency", string(p.PaymentFrequency)),
				attribute.Int("pardna.duration", p.Duration),
				attribute.Int64("pardna.contribution_minor", p.ContributionAmount),
				attribute.String("pardna.banker_fee", p.BankerFee.String()),
				attribute.Int("pardna.participants", len(p.Participants)),
			}
			if config.IncludeName {
				attrs = append(attrs, attribute.String("pardna.name", p.Name))
			}
			if config.AttributeExtractor != nil {
				attrs = append(attrs, config.AttributeExtractor(p)...)
			}

			spanCtx, span := tracer.Start(ctx, spanName,
				trace.WithSpanKind(trace.SpanKindClient),
				trace.WithAttributes(attrs...),
			)
			defer span.End()

			id, err := next.CreatePardna(spanCtx, p)
			if err != nil {
				span.RecordError(err)
				span.SetStatus(codes.Error, err.Error())
				return id, err
			}
			span.SetAttributes(attribute.String("pardna.id", id))
			span.SetStatus(codes.Ok, "")
			return id, nil
		})
	}
}
