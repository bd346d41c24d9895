// Package ui provides the vangoui widgets: a checkbox-gated button, a
// managed text/password/file input and a positional tabs container.
//
// Widgets are stateful instances. Their flags live in reactive signals,
// change only through the instance's own handlers, and are discarded with
// Dispose. Render produces a vdom tree whose handlers call back into the
// instance, so a transport that routes client events by hydration ID
// drives the same methods a test calls directly.
//
//	btn := ui.NewCheckButton(ui.ButtonLabel("Continue"))
//	btn.ToggleCheck(vdom.Event{})
//	btn.Interactive() // true
//
// Configuration follows the functional options pattern. Passthrough
// attributes are merged under the computed ones, with caller classes
// appended after computed classes so they can override them.
package ui
