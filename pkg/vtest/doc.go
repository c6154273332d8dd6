// Package vtest provides testing helpers for virtual node trees.
//
// The helpers walk built trees instead of rendering them, so tests can
// assert on structure and text without a renderer.
//
// # Quick Start
//
//	func TestMenu(t *testing.T) {
//	    node := Menu([]string{"Home", "About"})
//	    vtest.ExpectElement(t, node, "li")
//	    vtest.ExpectContains(t, node, "About")
//	}
//
// # Inspecting Trees
//
// Find returns the first descendant with a given node name and
// TextContent concatenates all text below a node. Dump prints a tree in an
// indented form that is handy in failure messages:
//
//	<ul key=nav children=2>
//	  <li children=1>
//	    "Home"
//	  <li children=1>
//	    "About"
package vtest
