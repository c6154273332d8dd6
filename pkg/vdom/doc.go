// Package vdom builds virtual DOM nodes from hyperscript-style calls.
//
// A VNode is an immutable description of one element: its node name, its
// attributes, an optional reconciliation key and a flat, render-ready list of
// children. The builder does all child normalization up front so that a
// downstream reconciler never has to re-flatten or re-coerce input.
//
// # Building Nodes
//
// H (also exported as CreateElement) takes a node name, an optional attribute
// map and any number of child values:
//
//	H("div", Attributes{"id": "main"},
//	    "Count: ", 42,
//	    []any{H("span", nil, "a"), H("span", nil, "b")},
//	)
//
// Children may be nested slices of any depth. They are flattened depth-first,
// left to right. For tag nodes, booleans and nil values render as nothing,
// numbers become decimal text, and adjacent text is merged into a single
// string child. Component nodes receive their children untouched.
//
// # Components
//
// A node name is a component reference when it implements Component or is a
// Go func value. Every other node name is treated as a tag identifier.
//
// # Hooks
//
// A Hook observes every node right after it is built. Hooks are either
// injected into a Builder or installed process-wide with InstallHook. The
// package-level H uses the process-wide hook.
package vdom
