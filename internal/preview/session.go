package preview

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"go.opentelemetry.io/otel/trace"

	"github.com/vango-dev/vangoui/internal/errors"
	"github.com/vango-dev/vangoui/pkg/reactive"
	"github.com/vango-dev/vangoui/pkg/render"
	"github.com/vango-dev/vangoui/pkg/vdom"
)

// SessionConfig configures a Session.
type SessionConfig struct {
	// ID identifies the session in logs and spans.
	ID string

	// Title is passed to the gallery.
	Title string

	// Scheduler is the clock behind widget timers. Callbacks it fires are
	// run through Dispatch. Defaults to reactive.SystemScheduler.
	Scheduler reactive.Scheduler

	// OnUpdate receives the markup rendered after a timer callback.
	OnUpdate func(html string)

	// Pretty enables indented HTML output.
	Pretty bool

	Logger  *slog.Logger
	Metrics *Metrics
	Tracer  trace.Tracer
}

// Session is the server side of one gallery connection.
type Session struct {
	id       string
	mu       sync.Mutex
	owner    *reactive.Owner
	gallery  *Gallery
	renderer *render.Renderer
	handlers map[string]any
	root     *vdom.VNode
	onUpdate func(string)
	logger   *slog.Logger
	metrics  *Metrics
	tracer   trace.Tracer
}

// NewSession creates a session with its own gallery.
func NewSession(cfg SessionConfig) *Session {
	if cfg.Scheduler == nil {
		cfg.Scheduler = reactive.SystemScheduler{}
	}
	if cfg.Logger == nil {
		cfg.Logger = slog.Default()
	}
	if cfg.Tracer == nil {
		cfg.Tracer = defaultTracer()
	}

	s := &Session{
		id:       cfg.ID,
		owner:    reactive.NewOwner(nil),
		renderer: render.NewRenderer(render.RendererConfig{Pretty: cfg.Pretty}),
		onUpdate: cfg.OnUpdate,
		logger:   cfg.Logger.With("session_id", cfg.ID),
		metrics:  cfg.Metrics,
		tracer:   cfg.Tracer,
	}
	s.gallery = NewGallery(GalleryOptions{
		Title:     cfg.Title,
		Scheduler: s.wrapScheduler(cfg.Scheduler),
		Owner:     s.owner,
		Logger:    s.logger,
	})
	return s
}

// ID returns the session identifier.
func (s *Session) ID() string { return s.id }

// Gallery returns the widgets of the session.
func (s *Session) Gallery() *Gallery { return s.gallery }

// wrapScheduler routes timer callbacks through Dispatch and pushes the
// resulting markup.
func (s *Session) wrapScheduler(base reactive.Scheduler) reactive.Scheduler {
	return reactive.SchedulerFunc(func(d time.Duration, fn func()) {
		base.AfterFunc(d, func() {
			var html string
			var err error
			s.Dispatch(func() {
				if s.owner.IsDisposed() {
					return
				}
				fn()
				html, err = s.renderLocked()
			})
			if err != nil {
				s.logger.Error("render after timer failed", "error", err)
				return
			}
			if html != "" && s.onUpdate != nil {
				s.onUpdate(html)
			}
		})
	})
}

// Dispatch runs fn with exclusive access to the session's widgets.
func (s *Session) Dispatch(fn func()) {
	s.mu.Lock()
	defer s.mu.Unlock()
	fn()
}

// Render renders the gallery body and refreshes the handler table.
func (s *Session) Render() (string, error) {
	var html string
	var err error
	s.Dispatch(func() { html, err = s.renderLocked() })
	return html, err
}

func (s *Session) renderLocked() (string, error) {
	node, err := s.gallery.Render()
	if err != nil {
		return "", err
	}
	s.renderer.Reset()
	html, err := s.renderer.RenderToString(node)
	if err != nil {
		return "", err
	}
	s.handlers = s.renderer.GetHandlers()
	s.root = node
	s.metrics.recordRender()
	return html, nil
}

// Root returns the tree of the latest render. Its hydration IDs address
// HandleEvent.
func (s *Session) Root() *vdom.VNode {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.root
}

// HandleEvent runs the handler addressed by ev and returns the new markup.
// Unknown targets yield E160 and leave the widgets untouched.
func (s *Session) HandleEvent(ctx context.Context, ev ClientEvent) (string, error) {
	start := time.Now()
	_, span := startEventSpan(ctx, s.tracer, s.id, ev)

	var html string
	var err error
	s.Dispatch(func() {
		if s.owner.IsDisposed() {
			err = errors.Newf(errors.CategoryProtocol, "session closed")
			return
		}
		handler, ok := s.handlers[ev.HID+"_on"+ev.Event]
		if !ok {
			err = errors.New("E160").WithDetail("No " + ev.Event + " handler on " + ev.HID + ".")
			return
		}
		vdom.Call(handler, ev.vdomEvent())
		html, err = s.renderLocked()
	})

	endEventSpan(span, err)
	s.metrics.recordEvent(ev.Event, time.Since(start).Seconds(), err)
	if err != nil {
		s.logger.Warn("event rejected", "hid", ev.HID, "event", ev.Event, "error", err)
		return "", err
	}
	s.logger.Debug("event handled", "hid", ev.HID, "event", ev.Event, "duration", time.Since(start))
	return html, nil
}

// Close disposes the gallery. Pending timers become no-ops.
func (s *Session) Close() {
	s.Dispatch(s.owner.Dispose)
}
