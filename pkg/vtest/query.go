package vtest

import (
	"fmt"
	"strings"
	"testing"

	"github.com/vango-dev/vangoui/pkg/vdom"
)

// Predicate matches element nodes.
type Predicate func(*vdom.VNode) bool

// ByTag matches elements with the given tag.
func ByTag(tag string) Predicate {
	return func(n *vdom.VNode) bool { return n.Tag == tag }
}

// ByAttr matches elements whose attribute renders as value.
func ByAttr(key, value string) Predicate {
	return func(n *vdom.VNode) bool {
		v, ok := n.Props[key]
		return ok && fmt.Sprint(v) == value
	}
}

// ByData matches elements with data-key="value".
func ByData(key, value string) Predicate {
	return ByAttr("data-"+key, value)
}

// ByPart matches elements with data-part="name".
func ByPart(name string) Predicate {
	return ByData("part", name)
}

// ByRole matches elements with the given ARIA role.
func ByRole(role string) Predicate {
	return ByAttr("role", role)
}

// ByText matches elements whose text content contains text.
func ByText(text string) Predicate {
	return func(n *vdom.VNode) bool { return strings.Contains(n.TextContent(), text) }
}

// ByClass matches elements carrying the class.
func ByClass(class string) Predicate {
	return func(n *vdom.VNode) bool { return n.HasClass(class) }
}

// FindAll returns every element under root matching pred, in document order.
func FindAll(root *vdom.VNode, pred Predicate) []*vdom.VNode {
	var found []*vdom.VNode
	vdom.Walk(root, func(n *vdom.VNode) bool {
		if n.Kind == vdom.KindElement && pred(n) {
			found = append(found, n)
		}
		return true
	})
	return found
}

// Find returns the first element under root matching pred, or nil.
func Find(root *vdom.VNode, pred Predicate) *vdom.VNode {
	if all := FindAll(root, pred); len(all) > 0 {
		return all[0]
	}
	return nil
}

// MustFind is like Find but fails the test when nothing matches.
func MustFind(t *testing.T, root *vdom.VNode, pred Predicate) *vdom.VNode {
	t.Helper()
	n := Find(root, pred)
	if n == nil {
		t.Fatalf("no matching element in:\n%s", snippet(RenderToString(root)))
	}
	return n
}

// Fire invokes the handler node registered for event.
func Fire(t *testing.T, node *vdom.VNode, event string, ev vdom.Event) {
	t.Helper()
	h := node.Handler(event)
	if h == nil {
		t.Fatalf("<%s> has no %s handler", node.Tag, event)
	}
	if ev.Type == "" {
		ev.Type = strings.TrimPrefix(event, "on")
	}
	if !vdom.Call(h, ev) {
		t.Fatalf("<%s> %s handler has unsupported type %T", node.Tag, event, h)
	}
}

// Click fires a click on node.
func Click(t *testing.T, node *vdom.VNode) {
	t.Helper()
	Fire(t, node, "click", vdom.Event{})
}
