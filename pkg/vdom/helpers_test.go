package vdom

import (
	"strconv"
	"testing"
)

func TestCN(t *testing.T) {
	tests := []struct {
		in   []string
		want string
	}{
		{[]string{"a", "b"}, "a b"},
		{[]string{"a", "", "  ", "b"}, "a b"},
		{[]string{" a "}, "a"},
		{nil, ""},
	}
	for _, tt := range tests {
		if got := CN(tt.in...); got != tt.want {
			t.Errorf("CN(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestSpread(t *testing.T) {
	local := []Attr{Class("base state"), DisabledIf(true), Type("button")}
	caller := []Attr{Class("mine"), Type("submit"), Data("test", "x"), {}}

	node := Button(Spread(local, caller))

	if node.Props["class"] != "base state mine" {
		t.Errorf("class = %q, want local before caller", node.Props["class"])
	}
	if node.Props["type"] != "button" {
		t.Errorf("type = %v, local should win", node.Props["type"])
	}
	if node.Props["data-test"] != "x" {
		t.Errorf("data-test = %v, caller attrs should pass through", node.Props["data-test"])
	}
	if node.Props["disabled"] != true {
		t.Error("disabled missing")
	}
}

func TestSpreadNoClass(t *testing.T) {
	out := Spread([]Attr{ID("x")}, nil)
	for _, a := range out {
		if a.Key == "class" {
			t.Errorf("unexpected class attr %v", a)
		}
	}
}

func TestConditionals(t *testing.T) {
	a, b := Span(), P()
	if If(true, a) != a || If(false, a) != nil {
		t.Error("If misbehaves")
	}
	if IfElse(true, a, b) != a || IfElse(false, a, b) != b {
		t.Error("IfElse misbehaves")
	}
	called := false
	When(false, func() *VNode { called = true; return a })
	if called {
		t.Error("When evaluated a false branch")
	}
}

func TestRange(t *testing.T) {
	nodes := Range([]string{"a", "", "c"}, func(s string, i int) *VNode {
		if s == "" {
			return nil
		}
		return Text(strconv.Itoa(i) + ":" + s)
	})
	if len(nodes) != 2 || nodes[1].Text != "2:c" {
		t.Errorf("Range = %+v", nodes)
	}
}

func TestCall(t *testing.T) {
	var got []string
	ev := Event{Type: "change", Value: "v"}

	if !Call(func() { got = append(got, "plain") }, ev) {
		t.Error("Call(func()) = false")
	}
	if !Call(func(e Event) { got = append(got, "event:"+e.Value) }, ev) {
		t.Error("Call(func(Event)) = false")
	}
	if !Call(func(s string) { got = append(got, "string:"+s) }, ev) {
		t.Error("Call(func(string)) = false")
	}
	if Call(42, ev) {
		t.Error("Call(42) should report unsupported")
	}

	want := []string{"plain", "event:v", "string:v"}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("got[%d] = %q, want %q", i, got[i], want[i])
		}
	}
	if !IsHandler(func(Event) {}) || IsHandler("x") {
		t.Error("IsHandler misclassifies")
	}
}
