package vdom

import (
	"fmt"
	"reflect"
	"runtime"
	"strings"
)

// VKind is the node type discriminator.
type VKind uint8

const (
	KindElement   VKind = iota // <div>, <button>, etc.
	KindComponent              // Component reference
)

// String returns the string representation of the VKind.
func (k VKind) String() string {
	switch k {
	case KindElement:
		return "element"
	case KindComponent:
		return "component"
	default:
		return "unknown"
	}
}

// VNode is the virtual DOM node.
//
// Nodes are built by H and are not modified by this package afterwards.
type VNode struct {
	NodeName   any        // Tag identifier or component reference
	Children   Children   // Flattened, normalized children
	Attributes Attributes // nil when no attributes were given
	Key        any        // Attributes["key"], nil when no attributes were given
}

// Kind reports whether the node is an element or a component.
func (v *VNode) Kind() VKind {
	if v != nil && IsComponent(v.NodeName) {
		return KindComponent
	}
	return KindElement
}

// Name returns a printable name for the node: the tag for elements and the
// type or function name for components.
func (v *VNode) Name() string {
	if v == nil {
		return ""
	}
	return nodeNameString(v.NodeName)
}

// String returns a short debug representation such as <div key=a children=2>.
func (v *VNode) String() string {
	if v == nil {
		return "<nil>"
	}
	var b strings.Builder
	b.WriteByte('<')
	b.WriteString(v.Name())
	if v.Key != nil {
		fmt.Fprintf(&b, " key=%v", v.Key)
	}
	fmt.Fprintf(&b, " children=%d>", v.Children.Len())
	return b.String()
}

// Attributes holds the attribute (props) mapping of a node.
type Attributes map[string]any

// Get returns the value stored under key.
func (a Attributes) Get(key string) (any, bool) {
	v, ok := a[key]
	return v, ok
}

// Clone returns a shallow copy of the attributes. A nil map clones to nil.
func (a Attributes) Clone() Attributes {
	if a == nil {
		return nil
	}
	out := make(Attributes, len(a))
	for k, v := range a {
		out[k] = v
	}
	return out
}

// Tag is a named tag identifier. Plain strings work as well.
type Tag string

// String returns the tag name.
func (t Tag) String() string { return string(t) }

// Component is anything that renders attributes and children to a VNode.
type Component interface {
	Render(attrs Attributes, children Children) *VNode
}

// ComponentFunc wraps a render function.
type ComponentFunc func(attrs Attributes, children Children) *VNode

// Render implements Component.
func (f ComponentFunc) Render(attrs Attributes, children Children) *VNode {
	return f(attrs, children)
}

// IsComponent reports whether nodeName is a component reference rather than
// a tag identifier. Component implementations and func values are components.
func IsComponent(nodeName any) bool {
	switch nodeName.(type) {
	case nil, string, Tag:
		return false
	case Component:
		return true
	}
	return reflect.TypeOf(nodeName).Kind() == reflect.Func
}

func nodeNameString(nodeName any) string {
	switch n := nodeName.(type) {
	case nil:
		return ""
	case string:
		return n
	case Tag:
		return string(n)
	case ComponentFunc:
		return funcName(n)
	case fmt.Stringer:
		return n.String()
	}
	rv := reflect.ValueOf(nodeName)
	if rv.Kind() == reflect.Func {
		return funcName(nodeName)
	}
	return fmt.Sprintf("%T", nodeName)
}

func funcName(fn any) string {
	rv := reflect.ValueOf(fn)
	if rv.Kind() != reflect.Func || rv.IsNil() {
		return fmt.Sprintf("%T", fn)
	}
	if f := runtime.FuncForPC(rv.Pointer()); f != nil {
		name := f.Name()
		if i := strings.LastIndex(name, "/"); i >= 0 {
			name = name[i+1:]
		}
		return name
	}
	return fmt.Sprintf("%T", fn)
}
