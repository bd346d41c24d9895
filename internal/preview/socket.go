package preview

import (
	"context"
	"net/http"
	"sync"

	"github.com/gorilla/websocket"

	"github.com/vango-dev/vangoui/internal/errors"
)

// socket serves one websocket connection. Writes come from the read loop
// and from timer callbacks, so they share a lock.
type socket struct {
	conn    *websocket.Conn
	writeMu sync.Mutex
	closed  bool
}

func (c *socket) send(frame ServerFrame) error {
	c.writeMu.Lock()
	defer c.writeMu.Unlock()
	if c.closed {
		return nil
	}
	return c.conn.WriteJSON(frame)
}

func (c *socket) close() {
	c.writeMu.Lock()
	defer c.writeMu.Unlock()
	if !c.closed {
		c.closed = true
		c.conn.Close()
	}
}

func newUpgrader() websocket.Upgrader {
	return websocket.Upgrader{
		ReadBufferSize:  1024,
		WriteBufferSize: 4096,
		CheckOrigin: func(r *http.Request) bool {
			return true // local preview only
		},
	}
}

// handleSocket upgrades the request and runs the event loop until the
// client disconnects.
func (s *Server) handleSocket(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.logger.Warn("websocket upgrade failed", "error", err)
		return
	}
	sock := &socket{conn: conn}
	defer sock.close()

	id := requestID(r)
	session := NewSession(SessionConfig{
		ID:        id,
		Title:     s.config.Title,
		Scheduler: s.scheduler,
		Pretty:    s.config.Preview.Pretty,
		Logger:    s.logger,
		Metrics:   s.metrics,
		Tracer:    s.tracer,
		OnUpdate: func(html string) {
			if err := sock.send(htmlFrame(html)); err != nil {
				s.logger.Debug("push failed", "session_id", id, "error", err)
			}
		},
	})
	defer session.Close()

	s.metrics.sessionOpened()
	defer s.metrics.sessionClosed()
	s.logger.Info("session opened", "session_id", id, "remote", r.RemoteAddr)
	defer s.logger.Info("session closed", "session_id", id)

	html, err := session.Render()
	if err != nil {
		sock.send(errorFrame(err))
		return
	}
	if err := sock.send(htmlFrame(html)); err != nil {
		return
	}

	s.readLoop(r.Context(), sock, session)
}

func (s *Server) readLoop(ctx context.Context, sock *socket, session *Session) {
	for {
		_, data, err := sock.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				s.logger.Debug("websocket read failed", "session_id", session.ID(), "error", err)
			}
			return
		}

		ev, err := DecodeClientEvent(data)
		if err != nil {
			s.metrics.recordProtocolError("E161")
			if sendErr := sock.send(errorFrame(err)); sendErr != nil {
				return
			}
			continue
		}

		html, err := session.HandleEvent(ctx, ev)
		if err != nil {
			if ue := errors.FromError(err, ""); ue != nil && ue.Code != "" {
				s.metrics.recordProtocolError(ue.Code)
			}
			if sendErr := sock.send(errorFrame(err)); sendErr != nil {
				return
			}
			continue
		}
		if err := sock.send(htmlFrame(html)); err != nil {
			return
		}
	}
}
