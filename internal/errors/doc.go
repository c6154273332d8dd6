// Package errors provides structured, actionable error messages for the
// preact tooling (configuration loading, markup decoding and the CLI).
//
// The builder in pkg/vdom never returns errors; everything that reads files
// or documents reports failures through this package.
//
// # Error Categories
//
//   - config: preact.json / preact.yaml problems
//   - markup: JSON or YAML documents that cannot be turned into nodes
//   - cli: command-line usage and I/O errors
//
// # Error Codes
//
// Each error has a unique code (e.g., "E201") that maps to a short message
// and a detailed explanation.
//
// # Usage
//
//	err := errors.New("E201").
//	    WithLocation("page.json", 3, 12).
//	    WithSuggestion(`Use "tag" or "component" to name the element`)
//
//	fmt.Println(err.Format())
//	// Output:
//	// ERROR E201: Element has no tag or component
//	//
//	//   page.json:3:12
//	//
//	//        2 │   "children": [
//	//   →    3 │     {"attrs": {"id": "x"}},
//	//          │            ^
//	//        4 │   ]
//	//
//	//   Hint: Use "tag" or "component" to name the element
package errors
