package instrument

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/wen911119/preact/pkg/vdom"
)

// EventName is the span event added for every built node.
const EventName = "vnode.created"

// TracingConfig configures the OpenTelemetry hook.
type TracingConfig struct {
	// Filter determines which nodes are recorded.
	// If nil, all nodes are recorded.
	Filter func(node *vdom.VNode) bool

	// AttributeExtractor adds custom attributes to each event.
	AttributeExtractor func(node *vdom.VNode) []attribute.KeyValue
}

// TracingOption configures the OpenTelemetry hook.
type TracingOption func(*TracingConfig)

// WithNodeFilter sets a filter function for nodes.
func WithNodeFilter(filter func(node *vdom.VNode) bool) TracingOption {
	return func(c *TracingConfig) {
		c.Filter = filter
	}
}

// WithAttributeExtractor sets a custom attribute extractor.
func WithAttributeExtractor(extractor func(node *vdom.VNode) []attribute.KeyValue) TracingOption {
	return func(c *TracingConfig) {
		c.AttributeExtractor = extractor
	}
}

// Tracing creates a hook that adds a "vnode.created" event to span for
// every built node. Events carry the node name, kind, children count and,
// when set, the key. Nothing is recorded while the span is not recording.
func Tracing(span trace.Span, opts ...TracingOption) vdom.Hook {
	var config TracingConfig
	for _, opt := range opts {
		opt(&config)
	}

	return vdom.HookFunc(func(node *vdom.VNode) {
		if !span.IsRecording() {
			return
		}
		if config.Filter != nil && !config.Filter(node) {
			return
		}
		span.AddEvent(EventName, trace.WithAttributes(nodeAttributes(node, config)...))
	})
}

func nodeAttributes(node *vdom.VNode, config TracingConfig) []attribute.KeyValue {
	attrs := []attribute.KeyValue{
		attribute.String("vnode.name", node.Name()),
		attribute.String("vnode.kind", node.Kind().String()),
		attribute.Int("vnode.children", node.Children.Len()),
	}
	if node.Key != nil {
		attrs = append(attrs, attribute.String("vnode.key", fmt.Sprint(node.Key)))
	}
	if config.AttributeExtractor != nil {
		attrs = append(attrs, config.AttributeExtractor(node)...)
	}
	return attrs
}

// StartSpan starts a span from the global tracer provider. It is a thin
// wrapper so callers do not need to resolve a tracer themselves.
func StartSpan(ctx context.Context, tracerName, spanName string, attrs ...attribute.KeyValue) (context.Context, trace.Span) {
	return otel.Tracer(tracerName).Start(ctx, spanName, trace.WithAttributes(attrs...))
}
