package preview

import (
	"context"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/vango-dev/vangoui/internal/errors"
	"github.com/vango-dev/vangoui/pkg/reactive"
	"github.com/vango-dev/vangoui/pkg/ui"
	"github.com/vango-dev/vangoui/pkg/vtest"
)

func newTestSession(t *testing.T, sched reactive.Scheduler, updates *[]string) *Session {
	t.Helper()
	s := NewSession(SessionConfig{
		ID:        "test",
		Scheduler: sched,
		Metrics:   NewMetrics(prometheus.NewRegistry()),
		OnUpdate: func(html string) {
			if updates != nil {
				*updates = append(*updates, html)
			}
		},
	})
	t.Cleanup(s.Close)
	if _, err := s.Render(); err != nil {
		t.Fatal(err)
	}
	return s
}

func hidOf(t *testing.T, s *Session, pred vtest.Predicate) string {
	t.Helper()
	node := vtest.MustFind(t, s.Root(), pred)
	if node.HID == "" {
		t.Fatal("matched element has no hydration ID")
	}
	return node.HID
}

func TestSessionUnknownHandler(t *testing.T) {
	s := newTestSession(t, reactive.NewManualScheduler(), nil)

	_, err := s.HandleEvent(context.Background(), ClientEvent{HID: "h9999", Event: "click"})
	if !errors.HasCode(err, "E160") {
		t.Fatalf("expected E160, got %v", err)
	}

	// A known element without a handler for the event is rejected too.
	hid := hidOf(t, s, vtest.ByData("index", "1"))
	if _, err := s.HandleEvent(context.Background(), ClientEvent{HID: hid, Event: "input"}); !errors.HasCode(err, "E160") {
		t.Fatalf("expected E160, got %v", err)
	}
}

func TestSessionEventRerenders(t *testing.T) {
	s := newTestSession(t, reactive.NewManualScheduler(), nil)

	hid := hidOf(t, s, vtest.ByPart("checkbox"))
	html, err := s.HandleEvent(context.Background(), ClientEvent{HID: hid, Event: "click"})
	if err != nil {
		t.Fatal(err)
	}
	if !s.Gallery().Buttons()[0].Checked() {
		t.Fatal("expected the first button to be checked")
	}
	if !strings.Contains(html, `data-icon="checkbox"`) {
		t.Error("expected the checked glyph in the new markup")
	}
	if !strings.Contains(html, "checkbox toggled") {
		t.Error("expected the last action in the new markup")
	}
}

func TestSessionTimerPushesUpdate(t *testing.T) {
	sched := reactive.NewManualScheduler()
	var updates []string
	s := newTestSession(t, sched, &updates)
	ctx := context.Background()

	if _, err := s.HandleEvent(ctx, ClientEvent{HID: hidOf(t, s, vtest.ByPart("checkbox")), Event: "click"}); err != nil {
		t.Fatal(err)
	}
	if _, err := s.HandleEvent(ctx, ClientEvent{HID: hidOf(t, s, vtest.ByPart("button")), Event: "click"}); err != nil {
		t.Fatal(err)
	}
	button := s.Gallery().Buttons()[0]
	if !button.Pressed() {
		t.Fatal("expected pressed")
	}
	if got := vtest.MustFind(t, s.Root(), vtest.ByPart("button")).Props["data-state"]; got != "pressed" {
		t.Errorf("expected the pressed button, got %v", got)
	}
	if sched.Pending() != 1 {
		t.Fatalf("expected one pending timer, got %d", sched.Pending())
	}

	sched.Advance(ui.PressDuration)
	if button.Pressed() {
		t.Error("expected press cleared")
	}
	if len(updates) != 1 {
		t.Fatalf("expected one pushed update, got %d", len(updates))
	}
	if !strings.Contains(updates[0], "checkbox toggled") {
		t.Error("expected a full gallery render")
	}
	if got := vtest.MustFind(t, s.Root(), vtest.ByPart("button")).Props["data-state"]; got != "default" {
		t.Errorf("expected the released button, got %v", got)
	}
}

func TestSessionCloseCancelsTimers(t *testing.T) {
	sched := reactive.NewManualScheduler()
	var updates []string
	s := newTestSession(t, sched, &updates)
	ctx := context.Background()

	s.HandleEvent(ctx, ClientEvent{HID: hidOf(t, s, vtest.ByPart("checkbox")), Event: "click"})
	s.HandleEvent(ctx, ClientEvent{HID: hidOf(t, s, vtest.ByPart("button")), Event: "click"})
	s.Close()

	sched.Advance(ui.PressDuration)
	if len(updates) != 0 {
		t.Errorf("expected no updates after close, got %d", len(updates))
	}
	if _, err := s.HandleEvent(ctx, ClientEvent{HID: "h1", Event: "click"}); err == nil {
		t.Error("expected closed session to reject events")
	}
}
