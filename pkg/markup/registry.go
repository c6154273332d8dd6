package markup

import (
	"fmt"
	"sort"
	"sync"

	"github.com/wen911119/preact/pkg/vdom"
)

// Component is a registered component. It renders through the wrapped
// implementation and prints as its registered name.
type Component struct {
	name   string
	render vdom.Component
}

// Render implements vdom.Component.
func (c *Component) Render(attrs vdom.Attributes, children vdom.Children) *vdom.VNode {
	return c.render.Render(attrs, children)
}

// String returns the registered name.
func (c *Component) String() string { return c.name }

// Registry maps component names used in documents to implementations.
// It is safe for concurrent use.
type Registry struct {
	mu         sync.RWMutex
	components map[string]*Component
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{components: make(map[string]*Component)}
}

// Register adds a component under name, replacing any previous entry.
func (r *Registry) Register(name string, component vdom.Component) error {
	if name == "" {
		return fmt.Errorf("component name is empty")
	}
	if component == nil {
		return fmt.Errorf("component %q is nil", name)
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.components[name] = &Component{name: name, render: component}
	return nil
}

// RegisterFunc adds a function component under name.
func (r *Registry) RegisterFunc(name string, fn func(vdom.Attributes, vdom.Children) *vdom.VNode) error {
	if fn == nil {
		return fmt.Errorf("component %q is nil", name)
	}
	return r.Register(name, vdom.ComponentFunc(fn))
}

// Lookup returns the component registered under name.
func (r *Registry) Lookup(name string) (*Component, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	c, ok := r.components[name]
	return c, ok
}

// Names returns the registered names in sorted order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.components))
	for name := range r.components {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
