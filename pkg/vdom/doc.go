// Package vdom provides the virtual node tree that vangoui widgets render to.
//
// # Core Types
//
// VNode represents elements, text, fragments, components and raw HTML.
// Props holds attributes and event handlers. Attr and EventHandler are used
// to build Props.
//
// # Element API
//
// Elements are created using variadic factory functions:
//
//	Div(Class("card"), ID("main"),
//	    Span(Text("Title")),
//	    OnClick(func(e Event) { ... }),
//	)
//
// # Events
//
// Handlers are stored in Props under "on"+event keys. The renderer collects
// them by hydration ID and Call invokes them with an Event built from the
// client frame.
package vdom
