package markup

import (
	"bytes"
	stderrors "errors"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/goccy/go-json"
	"gopkg.in/yaml.v3"

	"github.com/wen911119/preact/internal/errors"
	"github.com/wen911119/preact/pkg/vdom"
)

// DefaultMaxDepth is the deepest element or list nesting a Decoder accepts.
const DefaultMaxDepth = 256

// Element object fields.
const (
	fieldTag       = "tag"
	fieldComponent = "component"
	fieldAttrs     = "attrs"
	fieldKey       = "key"
	fieldChildren  = "children"
)

var knownFields = map[string]bool{
	fieldTag:       true,
	fieldComponent: true,
	fieldAttrs:     true,
	fieldKey:       true,
	fieldChildren:  true,
}

// Decoder turns documents into nodes.
type Decoder struct {
	registry *Registry
	builder  *vdom.Builder
	maxDepth int
	source   string
}

// Option configures a Decoder.
type Option func(*Decoder)

// WithRegistry sets the registry used to resolve "component" names.
func WithRegistry(r *Registry) Option {
	return func(d *Decoder) {
		d.registry = r
	}
}

// WithBuilder sets the builder used to create nodes. The default builder
// uses the process-wide hook.
func WithBuilder(b *vdom.Builder) Option {
	return func(d *Decoder) {
		d.builder = b
	}
}

// WithMaxDepth sets the maximum nesting depth.
func WithMaxDepth(n int) Option {
	return func(d *Decoder) {
		d.maxDepth = n
	}
}

// WithSourceName sets the file name reported in syntax errors.
func WithSourceName(name string) Option {
	return func(d *Decoder) {
		d.source = name
	}
}

// NewDecoder creates a Decoder with an empty registry.
func NewDecoder(opts ...Option) *Decoder {
	d := &Decoder{
		registry: NewRegistry(),
		builder:  vdom.NewBuilder(),
		maxDepth: DefaultMaxDepth,
		source:   "<input>",
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// DecodeJSON reads one JSON document from r and builds its root node.
// Numbers are kept as json.Number so that leaves are printed exactly like
// Go numbers of the same value.
func (d *Decoder) DecodeJSON(r io.Reader) (*vdom.VNode, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, errors.New("E300").Wrap(err)
	}

	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var doc any
	if err := dec.Decode(&doc); err != nil {
		return nil, d.syntaxError(data, err)
	}
	var extra any
	if err := dec.Decode(&extra); err != io.EOF {
		return nil, errors.New("E200").
			WithDetail("Unexpected data after the document root").
			WithSuggestion("A document holds a single root element")
	}

	return d.Decode(doc)
}

func (d *Decoder) syntaxError(data []byte, err error) error {
	if err == io.EOF {
		return errors.New("E200").WithDetail("The document is empty")
	}
	e := errors.New("E200").Wrap(err)
	var se *json.SyntaxError
	if stderrors.As(err, &se) {
		e = e.WithSourceOffset(d.source, data, se.Offset)
	}
	return e
}

// DecodeYAML reads one YAML document from r and builds its root node.
func (d *Decoder) DecodeYAML(r io.Reader) (*vdom.VNode, error) {
	var doc any
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		if err == io.EOF {
			return nil, errors.New("E200").WithDetail("The document is empty")
		}
		return nil, errors.New("E200").Wrap(err)
	}
	return d.Decode(doc)
}

// Decode builds a node from an already parsed document, such as the result
// of unmarshaling JSON or YAML into an any.
func (d *Decoder) Decode(doc any) (*vdom.VNode, error) {
	obj, ok := asObject(doc)
	if !ok {
		return nil, errors.New("E205").
			WithDetail("The root is " + describe(doc)).
			WithExample(`{"tag": "div", "children": ["Hello"]}`)
	}
	return d.element(obj, "$", 1)
}

func (d *Decoder) element(obj map[string]any, path string, depth int) (*vdom.VNode, error) {
	if depth > d.maxDepth {
		return nil, errors.New("E206").
			WithDetail(fmt.Sprintf("%s is nested deeper than %d levels", path, d.maxDepth))
	}
	if unknown := unknownFields(obj); len(unknown) > 0 {
		return nil, errors.New("E207").
			WithDetail(fmt.Sprintf("%s has field %q", path, unknown[0])).
			WithSuggestion(`Element fields are "tag", "component", "attrs", "key" and "children"`)
	}

	nodeName, err := d.nodeName(obj, path)
	if err != nil {
		return nil, err
	}
	attrs, err := d.attributes(obj, path, depth)
	if err != nil {
		return nil, err
	}

	var children []any
	if raw, ok := obj[fieldChildren]; ok && raw != nil {
		path := path + "." + fieldChildren
		if list, ok := raw.([]any); ok {
			children, err = d.list(list, path, depth+1)
		} else {
			var child any
			child, err = d.child(raw, path, depth+1)
			children = []any{child}
		}
		if err != nil {
			return nil, err
		}
	}

	return d.builder.H(nodeName, attrs, children...), nil
}

func (d *Decoder) nodeName(obj map[string]any, path string) (any, error) {
	tagValue, hasTag := obj[fieldTag]
	compValue, hasComp := obj[fieldComponent]

	switch {
	case hasTag && hasComp:
		return nil, errors.New("E202").WithDetail(path + ` sets both "tag" and "component"`)
	case hasTag:
		tag, ok := tagValue.(string)
		if !ok || tag == "" {
			return nil, errors.New("E201").WithDetail(path + ` has a "tag" that is not a non-empty string`)
		}
		return tag, nil
	case hasComp:
		name, ok := compValue.(string)
		if !ok || name == "" {
			return nil, errors.New("E201").WithDetail(path + ` has a "component" that is not a non-empty string`)
		}
		c, ok := d.registry.Lookup(name)
		if !ok {
			e := errors.New("E203").WithDetail(fmt.Sprintf("%s uses component %q", path, name))
			if names := d.registry.Names(); len(names) > 0 {
				e = e.WithSuggestion("Registered components: " + strings.Join(names, ", "))
			}
			return nil, e
		}
		return c, nil
	default:
		return nil, errors.New("E201").
			WithDetail(path + ` has neither "tag" nor "component"`).
			WithExample(`{"tag": "div"}`)
	}
}

// attributes returns nil when the element has neither "attrs" nor "key".
// An element level "key" overrides attrs.key.
func (d *Decoder) attributes(obj map[string]any, path string, depth int) (vdom.Attributes, error) {
	var attrs vdom.Attributes

	if raw, ok := obj[fieldAttrs]; ok && raw != nil {
		m, ok := asObject(raw)
		if !ok {
			return nil, errors.New("E204").
				WithDetail(fmt.Sprintf("%s.%s is %s, not an object", path, fieldAttrs, describe(raw)))
		}
		attrs = make(vdom.Attributes, len(m))
		for k, v := range m {
			if k == fieldChildren {
				child, err := d.child(v, path+"."+fieldAttrs+"."+fieldChildren, depth+1)
				if err != nil {
					return nil, err
				}
				attrs[k] = child
				continue
			}
			attrs[k] = plainValue(v)
		}
	}

	if key, ok := obj[fieldKey]; ok {
		if attrs == nil {
			attrs = vdom.Attributes{}
		}
		attrs[fieldKey] = plainValue(key)
	}
	return attrs, nil
}

func (d *Decoder) child(v any, path string, depth int) (any, error) {
	if list, ok := v.([]any); ok {
		if depth > d.maxDepth {
			return nil, errors.New("E206").
				WithDetail(fmt.Sprintf("%s is nested deeper than %d levels", path, d.maxDepth))
		}
		return d.list(list, path, depth+1)
	}
	if obj, ok := asObject(v); ok {
		return d.element(obj, path, depth)
	}
	return v, nil
}

func (d *Decoder) list(items []any, path string, depth int) ([]any, error) {
	out := make([]any, len(items))
	for i, item := range items {
		child, err := d.child(item, fmt.Sprintf("%s[%d]", path, i), depth)
		if err != nil {
			return nil, err
		}
		out[i] = child
	}
	return out, nil
}

func unknownFields(obj map[string]any) []string {
	var unknown []string
	for k := range obj {
		if !knownFields[k] {
			unknown = append(unknown, k)
		}
	}
	sort.Strings(unknown)
	return unknown
}

// asObject accepts JSON objects and YAML mappings, whose keys yaml.v3 may
// decode as any.
func asObject(v any) (map[string]any, bool) {
	switch m := v.(type) {
	case map[string]any:
		return m, true
	case map[any]any:
		out := make(map[string]any, len(m))
		for k, v := range m {
			out[fmt.Sprint(k)] = v
		}
		return out, true
	}
	return nil, false
}

// plainValue converts decoded attribute values to plain Go values:
// json.Number becomes int64 or float64 and mappings get string keys.
func plainValue(v any) any {
	switch x := v.(type) {
	case json.Number:
		if i, err := x.Int64(); err == nil {
			return i
		}
		if f, err := x.Float64(); err == nil {
			return f
		}
		return x.String()
	case []any:
		out := make([]any, len(x))
		for i, item := range x {
			out[i] = plainValue(item)
		}
		return out
	case map[string]any, map[any]any:
		m, _ := asObject(x)
		out := make(map[string]any, len(m))
		for k, item := range m {
			out[k] = plainValue(item)
		}
		return out
	}
	return v
}

func describe(v any) string {
	switch v.(type) {
	case nil:
		return "null"
	case string:
		return "a string"
	case bool:
		return "a boolean"
	case json.Number, int, int64, uint64, float64:
		return "a number"
	case []any:
		return "an array"
	}
	return fmt.Sprintf("a %T", v)
}
