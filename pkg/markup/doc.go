// Package markup decodes JSON and YAML documents into virtual nodes.
//
// A document is a tree of element objects:
//
//	{
//	  "tag": "ul",
//	  "attrs": {"class": "list"},
//	  "children": [
//	    {"tag": "li", "key": "a", "children": ["Item ", 1]},
//	    {"component": "Card", "attrs": {"title": "Hi"}}
//	  ]
//	}
//
// An element names either a tag or a component registered in the decoder's
// Registry. Every other value is a child leaf, and arrays are nested child
// lists. Lists are passed to the builder as they are, so documents are
// normalized exactly like Go calls to vdom.H.
//
// Encode writes a built node back in the same form.
package markup
