package vdom

import (
	"fmt"
	"strings"
)

// Text creates a text node.
func Text(content string) *VNode {
	return &VNode{
		Kind: KindText,
		Text: content,
	}
}

// Raw creates an unescaped HTML node.
// Use with caution - can lead to XSS if content is user-provided.
func Raw(html string) *VNode {
	return &VNode{
		Kind: KindRaw,
		Text: html,
	}
}

// Fragment groups children without a wrapper element.
func Fragment(children ...any) *VNode {
	node := &VNode{
		Kind:     KindFragment,
		Props:    make(Props),
		Children: make([]*VNode, 0),
	}
	node.apply(children)
	return node
}

// If returns the node if condition is true, nil otherwise.
func If(condition bool, node *VNode) *VNode {
	if condition {
		return node
	}
	return nil
}

// IfElse returns the first node if condition is true, the second otherwise.
func IfElse(condition bool, ifTrue, ifFalse *VNode) *VNode {
	if condition {
		return ifTrue
	}
	return ifFalse
}

// When is like If but with lazy evaluation.
func When(condition bool, fn func() *VNode) *VNode {
	if condition {
		return fn()
	}
	return nil
}

// Range maps a slice to VNodes.
func Range[T any](items []T, fn func(item T, index int) *VNode) []*VNode {
	result := make([]*VNode, 0, len(items))
	for i, item := range items {
		node := fn(item, i)
		if node != nil {
			result = append(result, node)
		}
	}
	return result
}

// Key creates a key attribute for reconciliation.
func Key(key any) Attr {
	return attr("key", fmt.Sprintf("%v", key))
}

// CN joins class names, filtering empty strings. Later classes come later in
// the output so they take precedence in utility-first stylesheets.
func CN(classes ...string) string {
	var result []string
	for _, c := range classes {
		if c = strings.TrimSpace(c); c != "" {
			result = append(result, c)
		}
	}
	return strings.Join(result, " ")
}

// Spread applies caller-supplied attributes under locally computed ones.
// Keys set by local win, except "class", which is concatenated local first
// and caller second.
func Spread(local []Attr, caller []Attr) []Attr {
	out := make([]Attr, 0, len(local)+len(caller))
	owned := make(map[string]bool, len(local))
	var localClass string
	for _, a := range local {
		if a.Key == "class" {
			localClass, _ = a.Value.(string)
			continue
		}
		owned[a.Key] = true
	}

	var callerClass []string
	for _, a := range caller {
		if a.IsEmpty() {
			continue
		}
		if a.Key == "class" {
			if s, ok := a.Value.(string); ok {
				callerClass = append(callerClass, s)
			}
			continue
		}
		if !owned[a.Key] {
			out = append(out, a)
		}
	}
	for _, a := range local {
		if a.Key != "class" && !a.IsEmpty() {
			out = append(out, a)
		}
	}

	if class := CN(append([]string{localClass}, callerClass...)...); class != "" {
		out = append(out, Class(class))
	}
	return out
}
