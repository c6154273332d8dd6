package vdom

import (
	"strings"
	"testing"
)

func TestVKindString(t *testing.T) {
	tests := []struct {
		kind VKind
		want string
	}{
		{KindElement, "element"},
		{KindComponent, "component"},
		{VKind(255), "unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := tt.kind.String(); got != tt.want {
				t.Errorf("VKind.String() = %v, want %v", got, tt.want)
			}
		})
	}
}

type card struct{}

func (card) Render(attrs Attributes, children Children) *VNode {
	return Div(attrs, children)
}

func renderBadge(attrs Attributes, children Children) *VNode {
	return Span(attrs, children)
}

func TestIsComponent(t *testing.T) {
	tests := []struct {
		name     string
		nodeName any
		want     bool
	}{
		{"nil", nil, false},
		{"string tag", "div", false},
		{"named tag", Tag("svg"), false},
		{"component value", card{}, true},
		{"component func", ComponentFunc(renderBadge), true},
		{"plain func", renderBadge, true},
		{"int", 5, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsComponent(tt.nodeName); got != tt.want {
				t.Errorf("IsComponent(%#v) = %v, want %v", tt.nodeName, got, tt.want)
			}
		})
	}
}

func TestVNodeName(t *testing.T) {
	tests := []struct {
		name string
		node *VNode
		want string
	}{
		{"nil node", nil, ""},
		{"tag", &VNode{NodeName: "div"}, "div"},
		{"named tag", &VNode{NodeName: Tag("svg")}, "svg"},
		{"component value", &VNode{NodeName: card{}}, "vdom.card"},
		{"func", &VNode{NodeName: renderBadge}, "vdom.renderBadge"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.node.Name(); got != tt.want {
				t.Errorf("Name() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestVNodeString(t *testing.T) {
	node := H("li", Attributes{"key": "a"}, "x", H("b", nil))
	if got := node.String(); got != "<li key=a children=2>" {
		t.Errorf("String() = %q", got)
	}

	var nilNode *VNode
	if got := nilNode.String(); got != "<nil>" {
		t.Errorf("nil String() = %q", got)
	}
}

func TestComponentRender(t *testing.T) {
	node := H(card{}, Attributes{"id": "c"}, "title", 1)
	out := node.NodeName.(Component).Render(node.Attributes, node.Children)

	if out.NodeName != "div" {
		t.Fatalf("NodeName = %v, want div", out.NodeName)
	}
	if got := strings.Join(out.Children.Texts(), "|"); got != "title1" {
		t.Errorf("rendered text = %q, want title1", got)
	}
	if out.Attributes["id"] != "c" {
		t.Errorf("id = %v, want c", out.Attributes["id"])
	}
}

func TestAttributesClone(t *testing.T) {
	var nilAttrs Attributes
	if nilAttrs.Clone() != nil {
		t.Error("Clone of nil should be nil")
	}

	a := Attributes{"id": "x"}
	b := a.Clone()
	b["id"] = "y"
	if a["id"] != "x" {
		t.Errorf("original mutated: %v", a)
	}
	if v, ok := b.Get("id"); !ok || v != "y" {
		t.Errorf("Get(id) = %v, %v", v, ok)
	}
}
