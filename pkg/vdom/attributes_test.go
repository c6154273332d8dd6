package vdom

import "testing"

func TestGlobalAttributes(t *testing.T) {
	tests := []struct {
		name  string
		attr  Attr
		key   string
		value any
	}{
		{"Key", Key("k1"), "key", "k1"},
		{"ID", ID("main"), "id", "main"},
		{"Class single", Class("card"), "class", "card"},
		{"Class multiple", Class("card", "active"), "class", "card active"},
		{"StyleAttr", StyleAttr("color: red"), "style", "color: red"},
		{"Data", Data("id", "123"), "data-id", "123"},
		{"Role", Role("button"), "role", "button"},
		{"AriaLabel", AriaLabel("Close"), "aria-label", "Close"},
		{"AriaHidden true", AriaHidden(true), "aria-hidden", true},
		{"TabIndex", TabIndex(0), "tabindex", 0},
		{"TabIndex negative", TabIndex(-1), "tabindex", -1},
		{"Hidden", Hidden(), "hidden", true},
		{"TitleAttr", TitleAttr("Tooltip"), "title", "Tooltip"},
		{"Href", Href("/page"), "href", "/page"},
		{"Target", Target("_blank"), "target", "_blank"},
		{"Rel", Rel("noopener"), "rel", "noopener"},
		{"Name", Name("email"), "name", "email"},
		{"Value", Value("v"), "value", "v"},
		{"Type", Type("text"), "type", "text"},
		{"Placeholder", Placeholder("Search"), "placeholder", "Search"},
		{"Disabled", Disabled(), "disabled", true},
		{"Checked", Checked(), "checked", true},
		{"For", For("email"), "for", "email"},
		{"Src", Src("/a.png"), "src", "/a.png"},
		{"Alt", Alt("logo"), "alt", "logo"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.attr.Key != tt.key {
				t.Errorf("Key = %v, want %v", tt.attr.Key, tt.key)
			}
			if tt.attr.Value != tt.value {
				t.Errorf("Value = %v, want %v", tt.attr.Value, tt.value)
			}
		})
	}
}

func TestAttrs(t *testing.T) {
	t.Run("skips empty and joins classes", func(t *testing.T) {
		a := Attrs(
			Class("card"),
			ClassIf(false, "hidden"),
			ClassIf(true, "active"),
			AttrIf(false, ID("x")),
			ID("main"),
		)

		if a["class"] != "card active" {
			t.Errorf("class = %v, want 'card active'", a["class"])
		}
		if a["id"] != "main" {
			t.Errorf("id = %v, want main", a["id"])
		}
		if len(a) != 2 {
			t.Errorf("len = %d, want 2", len(a))
		}
	})

	t.Run("later values win", func(t *testing.T) {
		a := Attrs(ID("a"), ID("b"))
		if a["id"] != "b" {
			t.Errorf("id = %v, want b", a["id"])
		}
	})

	t.Run("never nil", func(t *testing.T) {
		if Attrs() == nil {
			t.Error("Attrs() returned nil")
		}
	})
}

func TestClasses(t *testing.T) {
	a := Classes("a", "", []string{"b", ""}, map[string]bool{"c": true, "d": false})
	if a.Value != "a b c" {
		t.Errorf("Value = %v, want 'a b c'", a.Value)
	}
}

func TestAttrIsEmpty(t *testing.T) {
	tests := []struct {
		name string
		attr Attr
		want bool
	}{
		{"empty attr", Attr{}, true},
		{"attr with key", Attr{Key: "class", Value: "test"}, false},
		{"attr with empty value", Attr{Key: "disabled", Value: ""}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.attr.IsEmpty(); got != tt.want {
				t.Errorf("Attr.IsEmpty() = %v, want %v", got, tt.want)
			}
		})
	}
}
