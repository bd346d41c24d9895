package vdom

import "testing"

func TestCreateElement(t *testing.T) {
	t.Run("basic element", func(t *testing.T) {
		node := Div()
		if node.Kind != KindElement {
			t.Errorf("Kind = %v, want KindElement", node.Kind)
		}
		if node.Tag != "div" {
			t.Errorf("Tag = %v, want div", node.Tag)
		}
	})

	t.Run("with attributes", func(t *testing.T) {
		node := Div(Class("card"), ID("main"))
		if node.Props["class"] != "card" {
			t.Errorf("class = %v, want card", node.Props["class"])
		}
		if node.Props["id"] != "main" {
			t.Errorf("id = %v, want main", node.Props["id"])
		}
	})

	t.Run("with string shorthand", func(t *testing.T) {
		node := Div("Hello")
		if len(node.Children) != 1 || node.Children[0].Kind != KindText {
			t.Fatalf("Children = %+v", node.Children)
		}
		if node.Children[0].Text != "Hello" {
			t.Errorf("Child text = %v, want Hello", node.Children[0].Text)
		}
	})

	t.Run("nil arguments are ignored", func(t *testing.T) {
		var missing *VNode
		node := Div(nil, missing, If(false, Span()))
		if len(node.Children) != 0 {
			t.Errorf("Children len = %d, want 0", len(node.Children))
		}
	})

	t.Run("nested any slices are flattened", func(t *testing.T) {
		node := Div([]any{Class("x"), Span(), []any{P()}})
		if node.Props["class"] != "x" {
			t.Errorf("class = %v", node.Props["class"])
		}
		if len(node.Children) != 2 {
			t.Errorf("Children len = %d, want 2", len(node.Children))
		}
	})

	t.Run("attr slices and handlers", func(t *testing.T) {
		node := Button([]Attr{Type("button"), Key("k1")}, OnClick(func() {}), EventHandler{Event: "onblur"})
		if node.Props["type"] != "button" {
			t.Errorf("type = %v", node.Props["type"])
		}
		if node.Key != "k1" {
			t.Errorf("Key = %q, want k1", node.Key)
		}
		if _, ok := node.Props["onblur"]; ok {
			t.Error("nil handler should not be stored")
		}
	})

	t.Run("component child", func(t *testing.T) {
		node := Div(Func(func() *VNode { return Span() }))
		if node.Children[0].Kind != KindComponent {
			t.Errorf("child kind = %v, want Component", node.Children[0].Kind)
		}
	})
}

func TestIsVoidElement(t *testing.T) {
	if !IsVoidElement("input") {
		t.Error("input should be void")
	}
	if IsVoidElement("div") {
		t.Error("div should not be void")
	}
}

func TestElementTags(t *testing.T) {
	tests := []struct {
		node *VNode
		tag  string
	}{
		{Span(), "span"},
		{Button(), "button"},
		{Input(), "input"},
		{Label(), "label"},
		{Svg(), "svg"},
		{Path(), "path"},
		{El("custom-el"), "custom-el"},
	}
	for _, tt := range tests {
		if tt.node.Tag != tt.tag {
			t.Errorf("Tag = %q, want %q", tt.node.Tag, tt.tag)
		}
	}
}
