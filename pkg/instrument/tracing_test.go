package instrument

import (
	"context"
	"sync"
	"testing"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/wen911119/preact/pkg/vdom"
)

type recordedEvent struct {
	name  string
	attrs []attribute.KeyValue
}

// recordingSpan wraps the no-op span and keeps the events added to it.
type recordingSpan struct {
	trace.Span

	mu        sync.Mutex
	recording bool
	events    []recordedEvent
}

func newRecordingSpan() *recordingSpan {
	return &recordingSpan{
		Span:      trace.SpanFromContext(context.Background()),
		recording: true,
	}
}

func (s *recordingSpan) IsRecording() bool { return s.recording }

func (s *recordingSpan) AddEvent(name string, opts ...trace.EventOption) {
	cfg := trace.NewEventConfig(opts...)
	s.mu.Lock()
	defer s.mu.Unlock()
	s.events = append(s.events, recordedEvent{name: name, attrs: cfg.Attributes()})
}

func attrValue(attrs []attribute.KeyValue, key string) (attribute.Value, bool) {
	for _, kv := range attrs {
		if string(kv.Key) == key {
			return kv.Value, true
		}
	}
	return attribute.Value{}, false
}

func TestTracing_AddsEvents(t *testing.T) {
	span := newRecordingSpan()
	b := newBuilder(Tracing(span))

	b.H("ul", nil,
		b.H("li", vdom.Attributes{"key": 7}, "a"),
	)

	if len(span.events) != 2 {
		t.Fatalf("events = %d, want 2", len(span.events))
	}

	li := span.events[0]
	if li.name != EventName {
		t.Errorf("event name = %q, want %q", li.name, EventName)
	}
	if v, _ := attrValue(li.attrs, "vnode.name"); v.AsString() != "li" {
		t.Errorf("vnode.name = %q, want li", v.AsString())
	}
	if v, _ := attrValue(li.attrs, "vnode.kind"); v.AsString() != "element" {
		t.Errorf("vnode.kind = %q, want element", v.AsString())
	}
	if v, _ := attrValue(li.attrs, "vnode.children"); v.AsInt64() != 1 {
		t.Errorf("vnode.children = %d, want 1", v.AsInt64())
	}
	if v, ok := attrValue(li.attrs, "vnode.key"); !ok || v.AsString() != "7" {
		t.Errorf("vnode.key = %q (present %v), want 7", v.AsString(), ok)
	}

	ul := span.events[1]
	if _, ok := attrValue(ul.attrs, "vnode.key"); ok {
		t.Error("vnode.key should be absent for unkeyed nodes")
	}
	if v, _ := attrValue(ul.attrs, "vnode.children"); v.AsInt64() != 1 {
		t.Errorf("ul vnode.children = %d, want 1", v.AsInt64())
	}
}

func TestTracing_Options(t *testing.T) {
	span := newRecordingSpan()
	b := newBuilder(Tracing(span,
		WithNodeFilter(func(n *vdom.VNode) bool { return n.Kind() == vdom.KindComponent }),
		WithAttributeExtractor(func(n *vdom.VNode) []attribute.KeyValue {
			return []attribute.KeyValue{attribute.Bool("test.attr", true)}
		}),
	))

	b.H("div", nil)
	b.H(card, nil, "x")

	if len(span.events) != 1 {
		t.Fatalf("events = %d, want 1", len(span.events))
	}
	if v, _ := attrValue(span.events[0].attrs, "vnode.kind"); v.AsString() != "component" {
		t.Errorf("vnode.kind = %q, want component", v.AsString())
	}
	if v, ok := attrValue(span.events[0].attrs, "test.attr"); !ok || !v.AsBool() {
		t.Error("custom attribute missing")
	}
}

func TestTracing_NotRecording(t *testing.T) {
	span := newRecordingSpan()
	span.recording = false

	newBuilder(Tracing(span)).H("div", nil)

	if len(span.events) != 0 {
		t.Errorf("events = %d, want 0 for a non-recording span", len(span.events))
	}
}

func TestStartSpan(t *testing.T) {
	ctx, span := StartSpan(context.Background(), "test", "build", attribute.String("input", "page.json"))
	defer span.End()

	if span == nil {
		t.Fatal("StartSpan returned nil span")
	}
	if !trace.SpanFromContext(ctx).SpanContext().Equal(span.SpanContext()) {
		t.Error("returned context should carry the new span")
	}
}
