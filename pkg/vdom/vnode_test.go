package vdom

import "testing"

func TestVKindString(t *testing.T) {
	tests := []struct {
		kind VKind
		want string
	}{
		{KindElement, "Element"},
		{KindText, "Text"},
		{KindFragment, "Fragment"},
		{KindComponent, "Component"},
		{KindRaw, "Raw"},
		{VKind(99), "Unknown"},
	}
	for _, tt := range tests {
		if got := tt.kind.String(); got != tt.want {
			t.Errorf("VKind(%d).String() = %q, want %q", tt.kind, got, tt.want)
		}
	}
}

func TestIsInteractive(t *testing.T) {
	if Div().IsInteractive() {
		t.Error("plain div should not be interactive")
	}
	if !Button(OnClick(func() {})).IsInteractive() {
		t.Error("button with onclick should be interactive")
	}
	if Text("x").IsInteractive() {
		t.Error("text node should not be interactive")
	}
	var nilNode *VNode
	if nilNode.IsInteractive() {
		t.Error("nil node should not be interactive")
	}
}

func TestHandler(t *testing.T) {
	fn := func(Event) {}
	node := Button(OnClick(fn))
	if node.Handler("click") == nil {
		t.Error("Handler(click) = nil")
	}
	if node.Handler("onclick") == nil {
		t.Error("Handler(onclick) = nil")
	}
	if node.Handler("blur") != nil {
		t.Error("Handler(blur) should be nil")
	}
}

func TestHasClass(t *testing.T) {
	node := Div(Class("bg-black text-white"))
	if !node.HasClass("bg-black") {
		t.Error("HasClass(bg-black) = false")
	}
	if node.HasClass("bg") {
		t.Error("HasClass must match whole tokens")
	}
}

func TestTextContent(t *testing.T) {
	node := Div(Span("Hello"), " ", Func(func() *VNode { return Text("world") }))
	if got := node.TextContent(); got != "Hello world" {
		t.Errorf("TextContent() = %q, want %q", got, "Hello world")
	}
}

func TestWalkSkipsChildren(t *testing.T) {
	node := Div(Span(Text("inner")), P(Text("para")))
	var tags []string
	Walk(node, func(n *VNode) bool {
		if n.Kind == KindElement {
			tags = append(tags, n.Tag)
		}
		return n.Tag != "span"
	})
	want := []string{"div", "span", "p"}
	if len(tags) != len(want) {
		t.Fatalf("tags = %v, want %v", tags, want)
	}
	for i := range want {
		if tags[i] != want[i] {
			t.Errorf("tags[%d] = %q, want %q", i, tags[i], want[i])
		}
	}
}
