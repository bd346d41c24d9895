// Package preview serves a live gallery of the vangoui widgets.
//
// Every websocket connection gets its own Session holding a fresh set of
// widget instances. The browser sends one JSON frame per DOM event,
// addressed by the hydration ID the renderer assigned; the session runs
// the matching handler, re-renders and answers with the new HTML.
//
// Events and timer callbacks of a session are serialised through
// Session.Dispatch, so widget state is only ever touched by one goroutine
// at a time.
//
// # Routes
//
//	GET /         gallery page with the client script
//	GET /ws       event channel
//	GET /metrics  Prometheus metrics
//	GET /healthz  liveness probe
package preview
