package vtest

import (
	"strings"
	"testing"

	"github.com/vango-dev/vangoui/pkg/render"
	"github.com/vango-dev/vangoui/pkg/vdom"
)

// snippetLen bounds the markup quoted in failure messages.
const snippetLen = 500

// RenderToString renders node with a fresh renderer. Render errors yield "".
//
//	html := vtest.RenderToString(button.Render())
func RenderToString(node *vdom.VNode) string {
	html, err := render.NewRenderer(render.RendererConfig{}).RenderToString(node)
	if err != nil {
		return ""
	}
	return html
}

// ExpectContains fails the test unless the markup of node contains want.
// Text is compared after HTML escaping.
func ExpectContains(t *testing.T, node *vdom.VNode, want string) {
	t.Helper()
	if html := RenderToString(node); !strings.Contains(html, want) {
		t.Errorf("markup does not contain %q:\n%s", want, snippet(html))
	}
}

// ExpectNotContains is the negation of ExpectContains.
func ExpectNotContains(t *testing.T, node *vdom.VNode, unwanted string) {
	t.Helper()
	if html := RenderToString(node); strings.Contains(html, unwanted) {
		t.Errorf("markup unexpectedly contains %q:\n%s", unwanted, snippet(html))
	}
}

// ExpectElement fails the test unless the markup has an element with tag.
func ExpectElement(t *testing.T, node *vdom.VNode, tag string) {
	t.Helper()
	if Find(node, ByTag(tag)) == nil {
		t.Errorf("no <%s> element in:\n%s", tag, snippet(RenderToString(node)))
	}
}

// ExpectAttribute fails the test unless some element renders attr="value".
func ExpectAttribute(t *testing.T, node *vdom.VNode, attr, value string) {
	t.Helper()
	html := RenderToString(node)
	if !strings.Contains(html, attr+`="`+value+`"`) {
		t.Errorf("no %s=%q in:\n%s", attr, value, snippet(html))
	}
}

func snippet(s string) string {
	if len(s) <= snippetLen {
		return s
	}
	return s[:snippetLen] + "..."
}
