package vdom

import "iter"

// Children is the read-only, flattened child list of a VNode.
//
// Each element is a string (merged text), a *VNode, or, for component nodes,
// the raw value that was passed in. Children has no mutating methods; Slice
// returns a fresh copy that callers are free to modify.
type Children struct {
	items []any
}

// EmptyChildren is the shared child list of every node built without
// children. It holds no storage, so it cannot be written through.
var EmptyChildren = Children{}

// ChildrenOf returns a Children holding a copy of items.
func ChildrenOf(items ...any) Children {
	if len(items) == 0 {
		return EmptyChildren
	}
	return Children{items: append([]any(nil), items...)}
}

// Len returns the number of children.
func (c Children) Len() int { return len(c.items) }

// IsEmpty reports whether there are no children.
func (c Children) IsEmpty() bool { return len(c.items) == 0 }

// At returns the child at index i. It panics if i is out of range.
func (c Children) At(i int) any { return c.items[i] }

// All iterates over the children in order.
func (c Children) All() iter.Seq2[int, any] {
	return func(yield func(int, any) bool) {
		for i, child := range c.items {
			if !yield(i, child) {
				return
			}
		}
	}
}

// Slice returns a copy of the children. The copy is never shared with the
// node, so appending to or overwriting it has no effect on any VNode.
func (c Children) Slice() []any {
	if len(c.items) == 0 {
		return nil
	}
	return append([]any(nil), c.items...)
}

// Texts returns the string children in order, skipping everything else.
func (c Children) Texts() []string {
	var out []string
	for _, child := range c.items {
		if s, ok := child.(string); ok {
			out = append(out, s)
		}
	}
	return out
}

// Nodes returns the *VNode children in order, skipping everything else.
func (c Children) Nodes() []*VNode {
	var out []*VNode
	for _, child := range c.items {
		if n, ok := child.(*VNode); ok && n != nil {
			out = append(out, n)
		}
	}
	return out
}

// childList accumulates normalized children during a build.
//
// Its zero value has no backing array; the first push allocates one that the
// list owns. Until then, children() hands out EmptyChildren.
type childList struct {
	items []any
}

func (l *childList) push(child any) {
	l.items = append(l.items, child)
}

// appendText concatenates s onto the last slot, which must hold a string.
func (l *childList) appendText(s string) {
	last := len(l.items) - 1
	l.items[last] = l.items[last].(string) + s
}

func (l *childList) children() Children {
	if len(l.items) == 0 {
		return EmptyChildren
	}
	return Children{items: l.items}
}
