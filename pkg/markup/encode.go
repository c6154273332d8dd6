package markup

import (
	"io"
	"strings"

	"github.com/goccy/go-json"
	"gopkg.in/yaml.v3"

	"github.com/wen911119/preact/internal/errors"
	"github.com/wen911119/preact/pkg/vdom"
)

// Element is the document form of a node.
type Element struct {
	Tag       string         `json:"tag,omitempty" yaml:"tag,omitempty"`
	Component string         `json:"component,omitempty" yaml:"component,omitempty"`
	Key       any            `json:"key,omitempty" yaml:"key,omitempty"`
	Attrs     map[string]any `json:"attrs,omitempty" yaml:"attrs,omitempty"`
	Children  []any          `json:"children,omitempty" yaml:"children,omitempty"`
}

// ToElement converts node and its descendants to document form.
// The key is moved out of the attributes into its own field.
func ToElement(node *vdom.VNode) *Element {
	if node == nil {
		return nil
	}

	el := &Element{Key: node.Key}
	if node.Kind() == vdom.KindComponent {
		el.Component = node.Name()
	} else {
		el.Tag = node.Name()
	}

	for k, v := range node.Attributes {
		if k == fieldKey {
			continue
		}
		if el.Attrs == nil {
			el.Attrs = make(map[string]any, len(node.Attributes))
		}
		el.Attrs[k] = documentValue(v)
	}

	if !node.Children.IsEmpty() {
		el.Children = make([]any, 0, node.Children.Len())
		for _, child := range node.Children.All() {
			el.Children = append(el.Children, documentValue(child))
		}
	}
	return el
}

func documentValue(v any) any {
	switch x := v.(type) {
	case *vdom.VNode:
		if x == nil {
			return nil
		}
		return ToElement(x)
	case vdom.Children:
		return documentValue(x.Slice())
	case []*vdom.VNode:
		out := make([]any, len(x))
		for i, n := range x {
			out[i] = documentValue(n)
		}
		return out
	case []any:
		out := make([]any, len(x))
		for i, item := range x {
			out[i] = documentValue(item)
		}
		return out
	}
	return v
}

// Encode writes node as JSON followed by a newline. An indent of zero
// writes compact JSON.
func Encode(w io.Writer, node *vdom.VNode, indent int) error {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	if indent > 0 {
		enc.SetIndent("", strings.Repeat(" ", indent))
	}
	if err := enc.Encode(ToElement(node)); err != nil {
		return errors.New("E302").Wrap(err)
	}
	return nil
}

// EncodeYAML writes node as a YAML document.
func EncodeYAML(w io.Writer, node *vdom.VNode, indent int) error {
	enc := yaml.NewEncoder(w)
	if indent > 0 {
		enc.SetIndent(indent)
	}
	if err := enc.Encode(ToElement(node)); err != nil {
		return errors.New("E302").Wrap(err)
	}
	if err := enc.Close(); err != nil {
		return errors.New("E302").Wrap(err)
	}
	return nil
}
