package vdom

// childrenAttr is the attribute consulted as a fallback child list.
const childrenAttr = "children"

// defaultBuilder backs the package-level H and consults the process-wide hook.
var defaultBuilder = &Builder{}

// H creates a VNode with the given node name, attributes and children.
//
// Children may be leaves or arbitrarily nested slices of leaves. They are
// flattened depth-first, left to right. When nodeName is a tag:
//   - booleans and nil render as nothing (an empty string),
//   - numbers become their decimal text,
//   - adjacent text is merged into one string child,
//   - any other value (a *VNode, a component) is kept as its own child.
//
// When nodeName is a component, every leaf is kept as given; booleans are
// replaced by nil but nothing is coerced or merged.
//
// If attrs carries a "children" entry it is used as the child list, but only
// when no explicit children are passed. The entry is removed from attrs
// either way. Key is taken from attrs["key"].
//
// The process-wide hook, if installed, sees the node before H returns.
func H(nodeName any, attrs Attributes, children ...any) *VNode {
	return defaultBuilder.build(nodeName, attrs, children)
}

// CreateElement is an alias for H.
func CreateElement(nodeName any, attrs Attributes, children ...any) *VNode {
	return defaultBuilder.build(nodeName, attrs, children)
}

// Builder creates VNodes and reports them to a hook.
//
// The zero value uses the process-wide hook. A Builder holds no per-call
// state and is safe for concurrent use.
type Builder struct {
	hook     Hook
	noGlobal bool
}

// BuilderOption configures a Builder.
type BuilderOption func(*Builder)

// WithHook injects a hook. A builder with an injected hook never consults
// the process-wide hook.
func WithHook(h Hook) BuilderOption {
	return func(b *Builder) {
		b.hook = h
	}
}

// WithGlobalHook enables or disables falling back to the process-wide hook
// when no hook is injected. Enabled by default.
func WithGlobalHook(enabled bool) BuilderOption {
	return func(b *Builder) {
		b.noGlobal = !enabled
	}
}

// NewBuilder creates a Builder with the given options.
func NewBuilder(opts ...BuilderOption) *Builder {
	b := &Builder{}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// H creates a VNode. See the package-level H for the normalization rules.
func (b *Builder) H(nodeName any, attrs Attributes, children ...any) *VNode {
	return b.build(nodeName, attrs, children)
}

// CreateElement is an alias for H.
func (b *Builder) CreateElement(nodeName any, attrs Attributes, children ...any) *VNode {
	return b.build(nodeName, attrs, children)
}

func (b *Builder) activeHook() Hook {
	if b.hook != nil {
		return b.hook
	}
	if b.noGlobal {
		return nil
	}
	return CurrentHook()
}

func (b *Builder) build(nodeName any, attrs Attributes, args []any) *VNode {
	// The work list is local to this call so hooks may call H reentrantly.
	// Items are popped from the end, so they are pushed in reverse.
	stack := make([]any, 0, len(args))
	for i := len(args) - 1; i >= 0; i-- {
		stack = append(stack, args[i])
	}

	if attrs != nil {
		if fallback, ok := attrs[childrenAttr]; ok {
			if fallback != nil && len(stack) == 0 {
				stack = append(stack, fallback)
			}
			delete(attrs, childrenAttr)
		}
	}

	component := IsComponent(nodeName)

	var (
		out        childList
		lastSimple bool
	)
	for len(stack) > 0 {
		child := stack[len(stack)-1]
		stack[len(stack)-1] = nil
		stack = stack[:len(stack)-1]

		var nested bool
		if stack, nested = pushSequence(stack, child); nested {
			continue
		}

		if isBool(child) {
			child = nil
		}

		simple := false
		if !component {
			var text string
			if text, simple = simpleText(child); simple {
				child = text
			}
		}

		if simple && lastSimple {
			out.appendText(child.(string))
		} else {
			out.push(child)
		}
		lastSimple = simple
	}

	node := &VNode{
		NodeName: nodeName,
		Children: out.children(),
	}
	if attrs != nil {
		node.Attributes = attrs
		node.Key = attrs["key"]
	}

	if hook := b.activeHook(); hook != nil {
		hook.VNodeCreated(node)
	}

	return node
}
