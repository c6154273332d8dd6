package vtest

import (
	"fmt"
	"reflect"
	"strings"
	"testing"

	"github.com/wen911119/preact/pkg/vdom"
)

// Dump returns an indented, one node per line description of node.
// Text children are quoted; other leaves are printed with %v.
func Dump(node *vdom.VNode) string {
	var b strings.Builder
	dump(&b, node, 0)
	return b.String()
}

func dump(b *strings.Builder, v any, depth int) {
	b.WriteString(strings.Repeat("  ", depth))
	switch x := v.(type) {
	case *vdom.VNode:
		b.WriteString(x.String())
		b.WriteByte('\n')
		if x == nil {
			return
		}
		for _, child := range x.Children.All() {
			dump(b, child, depth+1)
		}
	case string:
		fmt.Fprintf(b, "%q\n", x)
	default:
		fmt.Fprintf(b, "%v\n", x)
	}
}

// Find returns the first node named name in a depth-first walk of node,
// including node itself, or nil.
func Find(node *vdom.VNode, name string) *vdom.VNode {
	if node == nil {
		return nil
	}
	if node.Name() == name {
		return node
	}
	for _, child := range node.Children.Nodes() {
		if found := Find(child, name); found != nil {
			return found
		}
	}
	return nil
}

// TextContent concatenates the string children of node and its
// descendants in document order.
func TextContent(node *vdom.VNode) string {
	var b strings.Builder
	text(&b, node)
	return b.String()
}

func text(b *strings.Builder, node *vdom.VNode) {
	if node == nil {
		return
	}
	for _, child := range node.Children.All() {
		switch c := child.(type) {
		case string:
			b.WriteString(c)
		case *vdom.VNode:
			text(b, c)
		}
	}
}

// ExpectContains asserts that the text content of node contains expected.
//
// Example:
//
//	vtest.ExpectContains(t, Greeting("Admin"), "Welcome Admin")
func ExpectContains(tb testing.TB, node *vdom.VNode, expected string) {
	tb.Helper()
	if !strings.Contains(TextContent(node), expected) {
		tb.Errorf("expected text to contain %q, got:\n%s", expected, truncate(Dump(node), 500))
	}
}

// ExpectNotContains asserts that the text content of node does not contain
// unexpected.
func ExpectNotContains(tb testing.TB, node *vdom.VNode, unexpected string) {
	tb.Helper()
	if strings.Contains(TextContent(node), unexpected) {
		tb.Errorf("expected text to NOT contain %q, got:\n%s", unexpected, truncate(Dump(node), 500))
	}
}

// ExpectElement asserts that node or one of its descendants is named name.
//
// Example:
//
//	vtest.ExpectElement(t, Form(), "button")
func ExpectElement(tb testing.TB, node *vdom.VNode, name string) {
	tb.Helper()
	if Find(node, name) == nil {
		tb.Errorf("expected a <%s> node, got:\n%s", name, truncate(Dump(node), 500))
	}
}

// ExpectAttribute asserts that node has attribute attr equal to value.
//
// Example:
//
//	vtest.ExpectAttribute(t, Button(), "class", "btn-primary")
func ExpectAttribute(tb testing.TB, node *vdom.VNode, attr string, value any) {
	tb.Helper()
	if node == nil {
		tb.Errorf("expected attribute %s=%v on a nil node", attr, value)
		return
	}
	got, ok := node.Attributes.Get(attr)
	if !ok {
		tb.Errorf("expected attribute %s=%v, attribute not set on %s", attr, value, node)
		return
	}
	if !reflect.DeepEqual(got, value) {
		tb.Errorf("attribute %s = %#v, want %#v", attr, got, value)
	}
}

// ExpectChildren asserts that the normalized children of node equal want.
func ExpectChildren(tb testing.TB, node *vdom.VNode, want ...any) {
	tb.Helper()
	if node == nil {
		tb.Errorf("expected children %#v on a nil node", want)
		return
	}
	got := node.Children.Slice()
	if len(got) == 0 && len(want) == 0 {
		return
	}
	if !reflect.DeepEqual(got, want) {
		tb.Errorf("children = %#v, want %#v", got, want)
	}
}

// truncate truncates a string to max length with ellipsis.
func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max] + "..."
}
