package vtest

import (
	"fmt"
	"strings"
	"testing"

	"github.com/vango-dev/vangoui/pkg/render"
	"github.com/vango-dev/vangoui/pkg/vdom"
)

// Screen renders a view and dispatches events by hydration ID, the way a
// browser client addresses the server.
type Screen struct {
	view     func() *vdom.VNode
	renderer *render.Renderer
	root     *vdom.VNode
	html     string
}

// NewScreen creates a Screen and performs the first render.
func NewScreen(view func() *vdom.VNode) *Screen {
	s := &Screen{
		view:     view,
		renderer: render.NewRenderer(render.RendererConfig{}),
	}
	s.Render()
	return s
}

// Render re-renders the view and returns the HTML.
func (s *Screen) Render() string {
	s.renderer.Reset()
	s.root = s.view()
	html, err := s.renderer.RenderToString(s.root)
	if err != nil {
		html = ""
	}
	s.html = html
	return html
}

// HTML returns the output of the latest render.
func (s *Screen) HTML() string { return s.html }

// Root returns the tree of the latest render.
func (s *Screen) Root() *vdom.VNode { return s.root }

// Dispatch calls the handler registered for hid and event, then re-renders.
func (s *Screen) Dispatch(hid, event string, ev vdom.Event) error {
	if !strings.HasPrefix(event, "on") {
		event = "on" + event
	}
	h, ok := s.renderer.GetHandlers()[hid+"_"+event]
	if !ok {
		return fmt.Errorf("vtest: no %s handler for %s", event, hid)
	}
	if ev.Type == "" {
		ev.Type = strings.TrimPrefix(event, "on")
	}
	ev.Target = hid
	vdom.Call(h, ev)
	s.Render()
	return nil
}

// Fire is like Dispatch but fails the test on error.
func (s *Screen) Fire(t *testing.T, hid, event string, ev vdom.Event) {
	t.Helper()
	if err := s.Dispatch(hid, event, ev); err != nil {
		t.Fatal(err)
	}
}

// HID returns the hydration ID of the first element matching pred in the
// latest render, or "".
func (s *Screen) HID(pred Predicate) string {
	if n := Find(s.root, pred); n != nil {
		return n.HID
	}
	return ""
}
