package vtest_test

import (
	"fmt"
	"strings"
	"testing"

	"github.com/wen911119/preact/pkg/vdom"
	"github.com/wen911119/preact/pkg/vtest"
)

// recordingTB captures failures instead of failing the running test.
type recordingTB struct {
	testing.TB
	errors []string
}

func (r *recordingTB) Helper() {}

func (r *recordingTB) Errorf(format string, args ...any) {
	r.errors = append(r.errors, fmt.Sprintf(format, args...))
}

func menu() *vdom.VNode {
	return vdom.Ul(vdom.Attrs(vdom.Key("nav"), vdom.Class("menu")),
		vdom.Li(nil, "Home"),
		vdom.Li(nil, vdom.A(vdom.Attrs(vdom.Href("/about")), "About"), " us"),
	)
}

func TestDump(t *testing.T) {
	got := vtest.Dump(menu())
	want := `<ul key=nav children=2>
  <li children=1>
    "Home"
  <li children=2>
    <a children=1>
      "About"
    " us"
`
	if got != want {
		t.Errorf("Dump() =\n%s\nwant\n%s", got, want)
	}

	if got := vtest.Dump(nil); got != "<nil>\n" {
		t.Errorf("Dump(nil) = %q", got)
	}
}

func TestFind(t *testing.T) {
	node := menu()

	if a := vtest.Find(node, "a"); a == nil || a.Attributes["href"] != "/about" {
		t.Errorf("Find(a) = %v", a)
	}
	if vtest.Find(node, "ul") != node {
		t.Error("Find should match the root")
	}
	if vtest.Find(node, "table") != nil {
		t.Error("Find(table) should be nil")
	}
	if vtest.Find(nil, "ul") != nil {
		t.Error("Find(nil) should be nil")
	}
}

func TestTextContent(t *testing.T) {
	if got := vtest.TextContent(menu()); got != "HomeAbout us" {
		t.Errorf("TextContent() = %q, want %q", got, "HomeAbout us")
	}
}

func TestExpectations_Pass(t *testing.T) {
	node := menu()

	vtest.ExpectContains(t, node, "About us")
	vtest.ExpectNotContains(t, node, "Contact")
	vtest.ExpectElement(t, node, "a")
	vtest.ExpectAttribute(t, node, "class", "menu")
	vtest.ExpectChildren(t, vdom.P(nil, "a", 1, true), "a1")
	vtest.ExpectChildren(t, vdom.Br(nil))
}

func TestExpectations_Fail(t *testing.T) {
	node := menu()

	tests := []struct {
		name string
		run  func(tb testing.TB)
		want string
	}{
		{"contains", func(tb testing.TB) { vtest.ExpectContains(tb, node, "Contact") }, `expected text to contain "Contact"`},
		{"not contains", func(tb testing.TB) { vtest.ExpectNotContains(tb, node, "Home") }, `expected text to NOT contain "Home"`},
		{"element", func(tb testing.TB) { vtest.ExpectElement(tb, node, "table") }, "expected a <table> node"},
		{"attribute missing", func(tb testing.TB) { vtest.ExpectAttribute(tb, node, "id", "x") }, "attribute not set"},
		{"attribute value", func(tb testing.TB) { vtest.ExpectAttribute(tb, node, "class", "nav") }, `attribute class = "menu"`},
		{"children", func(tb testing.TB) { vtest.ExpectChildren(tb, vdom.P(nil, "a"), "b") }, "children ="},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := &recordingTB{}
			tt.run(rec)
			if len(rec.errors) != 1 {
				t.Fatalf("errors = %v, want exactly one", rec.errors)
			}
			if !strings.Contains(rec.errors[0], tt.want) {
				t.Errorf("error = %q, want it to contain %q", rec.errors[0], tt.want)
			}
		})
	}
}
