package preview

import (
	"encoding/json"
	"strings"

	"github.com/vango-dev/vangoui/internal/errors"
	"github.com/vango-dev/vangoui/pkg/vdom"
)

// ClientEvent is a DOM event sent by the browser.
type ClientEvent struct {
	HID   string          `json:"hid"`
	Event string          `json:"event"`
	Value string          `json:"value,omitempty"`
	Files []vdom.FileInfo `json:"files,omitempty"`
}

// Frame types sent to the browser.
const (
	FrameHTML  = "html"
	FrameError = "error"
)

// ServerFrame is a message sent to the browser.
type ServerFrame struct {
	Type  string `json:"type"`
	HTML  string `json:"html,omitempty"`
	Code  string `json:"code,omitempty"`
	Error string `json:"error,omitempty"`
}

// DecodeClientEvent parses a client frame. The event name may carry an
// "on" prefix.
func DecodeClientEvent(data []byte) (ClientEvent, error) {
	var ev ClientEvent
	if err := json.Unmarshal(data, &ev); err != nil {
		return ClientEvent{}, errors.New("E161").Wrap(err)
	}
	ev.Event = strings.TrimPrefix(strings.ToLower(ev.Event), "on")
	if ev.HID == "" || ev.Event == "" {
		return ClientEvent{}, errors.New("E161").WithDetail("Frames need both hid and event.")
	}
	return ev, nil
}

// htmlFrame wraps rendered markup.
func htmlFrame(html string) ServerFrame {
	return ServerFrame{Type: FrameHTML, HTML: html}
}

// errorFrame reports err to the browser.
func errorFrame(err error) ServerFrame {
	ue := errors.FromError(err, "")
	return ServerFrame{Type: FrameError, Code: ue.Code, Error: ue.FormatCompact()}
}

// vdomEvent converts a client frame into the handler payload.
func (ev ClientEvent) vdomEvent() vdom.Event {
	return vdom.Event{
		Type:   ev.Event,
		Target: ev.HID,
		Value:  ev.Value,
		Files:  ev.Files,
	}
}
