package render

import "testing"

func TestEscapeHTML(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"plain", "plain"},
		{"a & b", "a &amp; b"},
		{`"q"`, "&quot;q&quot;"},
		{"it's", "it&#39;s"},
		{"<x>", "&lt;x&gt;"},
	}
	for _, tt := range tests {
		if got := escapeHTML(tt.in); got != tt.want {
			t.Errorf("escapeHTML(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestEscapeAttr(t *testing.T) {
	if got := escapeAttr("a\nb\tc\r"); got != "a&#10;b&#9;c&#13;" {
		t.Errorf("escapeAttr whitespace = %q", got)
	}
}
