package vdom

// FileInfo describes a file chosen in a file input.
type FileInfo struct {
	Name string `json:"name"`
	Size int64  `json:"size,omitempty"`
	Type string `json:"type,omitempty"`
}

// Event is the payload passed to handlers.
type Event struct {
	// Type is the event name without the "on" prefix ("click", "change").
	Type string

	// Target is the hydration ID of the element that fired the event.
	Target string

	// Value is the element value for input and change events.
	Value string

	// Files holds the selected files for file inputs. Nil otherwise.
	Files []FileInfo
}

// event creates an EventHandler with the given name and handler.
// The name is prefixed with "on" (e.g., "click" becomes "onclick").
func event(name string, handler any) EventHandler {
	return EventHandler{Event: "on" + name, Handler: handler}
}

// OnClick handles click events.
func OnClick(handler any) EventHandler { return event("click", handler) }

// OnMouseEnter handles mouseenter events.
func OnMouseEnter(handler any) EventHandler { return event("mouseenter", handler) }

// OnMouseLeave handles mouseleave events.
func OnMouseLeave(handler any) EventHandler { return event("mouseleave", handler) }

// OnInput handles input events (fired when value changes).
func OnInput(handler any) EventHandler { return event("input", handler) }

// OnChange handles change events (fired when value is committed).
func OnChange(handler any) EventHandler { return event("change", handler) }

// OnFocus handles focus events.
func OnFocus(handler any) EventHandler { return event("focus", handler) }

// OnBlur handles blur events.
func OnBlur(handler any) EventHandler { return event("blur", handler) }

// IsHandler reports whether value has a handler signature Call accepts.
func IsHandler(value any) bool {
	switch value.(type) {
	case func(), func(Event), func(string):
		return true
	default:
		return false
	}
}

// Call invokes handler with ev. It returns false if handler has an
// unsupported signature.
func Call(handler any, ev Event) bool {
	switch h := handler.(type) {
	case func():
		h()
	case func(Event):
		h(ev)
	case func(string):
		h(ev.Value)
	default:
		return false
	}
	return true
}
