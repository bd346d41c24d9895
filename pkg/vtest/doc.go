// Package vtest provides testing helpers for vangoui widgets.
//
// The vtest package reduces boilerplate when testing widgets by providing
// render assertions, tree queries and event dispatch.
//
// # Render Assertions
//
// Assert on rendered HTML output:
//
//	vtest.ExpectContains(t, btn.Render(), "Continue")
//	vtest.ExpectNotContains(t, btn.Render(), "bg-gray-300")
//
// # Queries
//
// Find nodes in the virtual tree by predicate:
//
//	button := vtest.MustFind(t, btn.Render(), vtest.ByPart("button"))
//	if !button.HasClass("bg-black") {
//	    t.Error("expected default colour")
//	}
//
// # Events
//
// Fire calls the handler a node registered for an event, the same way the
// preview transport does:
//
//	vtest.Click(t, vtest.MustFind(t, btn.Render(), vtest.ByPart("checkbox")))
//
// A Screen keeps the latest render and routes events by hydration ID:
//
//	screen := vtest.NewScreen(input.Render)
//	screen.Fire(t, "h1", "input", vdom.Event{Value: "hello"})
package vtest
