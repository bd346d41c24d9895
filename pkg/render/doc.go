// Package render converts vdom trees into HTML.
//
// The renderer escapes text and attribute values, handles void and boolean
// attributes, and assigns hydration IDs to interactive elements. Handlers
// found on those elements are collected into a registry keyed
// "hid_onevent" (for example "h3_onclick") so a transport can route client
// events back to the widget that rendered them.
//
// # Basic Usage
//
//	r := render.NewRenderer(render.RendererConfig{})
//	html, err := r.RenderToString(node)
//	handlers := r.GetHandlers()
//
// # Full Page Rendering
//
//	err := r.RenderPage(w, render.PageData{Title: "Gallery", Body: node})
package render
