package errors

import (
	"bytes"
	"fmt"
	"strings"
	"testing"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name    string
		code    string
		wantMsg string
		wantCat Category
	}{
		{
			name:    "tab list usage",
			code:    "E101",
			wantMsg: "TabList must be inside Tabs",
			wantCat: CategoryUsage,
		},
		{
			name:    "config parse",
			code:    "E120",
			wantMsg: "Invalid configuration file",
			wantCat: CategoryConfig,
		},
		{
			name:    "protocol handler",
			code:    "E160",
			wantMsg: "Handler not found",
			wantCat: CategoryProtocol,
		},
		{
			name:    "unknown error code",
			code:    "E999",
			wantMsg: "Unknown error",
			wantCat: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := New(tt.code)
			if err.Message != tt.wantMsg {
				t.Errorf("Message = %q, want %q", err.Message, tt.wantMsg)
			}
			if err.Category != tt.wantCat {
				t.Errorf("Category = %q, want %q", err.Category, tt.wantCat)
			}
			if err.Code != tt.code {
				t.Errorf("Code = %q, want %q", err.Code, tt.code)
			}
		})
	}
}

func TestNewf(t *testing.T) {
	err := Newf(CategoryCLI, "flag %q is required", "bucket")
	if err.Message != `flag "bucket" is required` {
		t.Errorf("Message = %q", err.Message)
	}
	if err.Category != CategoryCLI {
		t.Errorf("Category = %q, want %q", err.Category, CategoryCLI)
	}
	if err.Error() != err.Message {
		t.Errorf("Error() without code = %q, want message only", err.Error())
	}
}

func TestUIError_Error(t *testing.T) {
	got := New("E102").Error()
	want := "E102: Tab must be inside Tabs"
	if got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
}

func TestUIError_Builders(t *testing.T) {
	err := New("E101").
		WithDetail("custom").
		WithSuggestion("wrap it").
		WithExample("tabs.Render(list)")

	if err.Detail != "custom" {
		t.Errorf("Detail = %q", err.Detail)
	}
	if err.Suggestion != "wrap it" {
		t.Errorf("Suggestion = %q", err.Suggestion)
	}
	if err.Example != "tabs.Render(list)" {
		t.Errorf("Example = %q", err.Example)
	}
}

func TestUIError_Wrap(t *testing.T) {
	inner := fmt.Errorf("disk full")
	outer := New("E170").Wrap(inner)

	if outer.Unwrap() != inner {
		t.Error("Unwrap() should return wrapped error")
	}
	if !strings.Contains(outer.FormatCompact(), "disk full") {
		t.Errorf("FormatCompact() = %q, want cause", outer.FormatCompact())
	}
}

func TestFromError(t *testing.T) {
	if FromError(nil, "E120") != nil {
		t.Error("FromError(nil, ...) should return nil")
	}

	ue := New("E101")
	if FromError(ue, "E120") != ue {
		t.Error("FromError should return UIError as-is")
	}

	wrapped := fmt.Errorf("outer: %w", ue)
	if FromError(wrapped, "E120") != ue {
		t.Error("FromError should unwrap to the inner UIError")
	}

	std := fmt.Errorf("boom")
	got := FromError(std, "E120")
	if got.Wrapped != std || got.Code != "E120" {
		t.Errorf("FromError(std) = %+v", got)
	}
}

func TestHasCode(t *testing.T) {
	err := fmt.Errorf("render: %w", New("E103"))
	if !HasCode(err, "E103") {
		t.Error("HasCode should find wrapped code")
	}
	if HasCode(err, "E104") {
		t.Error("HasCode matched the wrong code")
	}
	if HasCode(nil, "E103") {
		t.Error("HasCode(nil) should be false")
	}
}

func TestFormat(t *testing.T) {
	SetColor(false)
	defer SetColor(true)

	out := New("E101").WithSuggestion("Pass the list to Tabs.Render").Format()

	for _, want := range []string{
		"ERROR E101: TabList must be inside Tabs",
		"Hint: Pass the list to Tabs.Render",
		"Learn more: https://vango.dev/docs/ui/errors/E101",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("Format() missing %q:\n%s", want, out)
		}
	}
	if strings.Contains(out, "\033[") {
		t.Error("Format() emitted ANSI codes with colors disabled")
	}
}

func TestFprint(t *testing.T) {
	SetColor(false)
	defer SetColor(true)

	var buf bytes.Buffer
	Fprint(&buf, New("E141"))
	if !strings.Contains(buf.String(), "E141") {
		t.Errorf("Fprint(UIError) = %q", buf.String())
	}

	buf.Reset()
	Fprint(&buf, fmt.Errorf("plain"))
	if !strings.Contains(buf.String(), "ERROR: plain") {
		t.Errorf("Fprint(error) = %q", buf.String())
	}
}

func TestWrapText(t *testing.T) {
	lines := wrapText("one two three four five six", 9)
	for _, l := range lines {
		if len(l) > 9 {
			t.Errorf("line %q longer than width", l)
		}
	}
	if strings.Join(lines, " ") != "one two three four five six" {
		t.Errorf("wrapText lost words: %v", lines)
	}
	if wrapText("", 10) != nil {
		t.Error("wrapText(\"\") should be nil")
	}
}

func TestRegistryCategories(t *testing.T) {
	for code := range registry {
		tmpl, ok := Lookup(code)
		if !ok {
			t.Fatalf("Lookup(%s) failed", code)
		}
		if tmpl.Message == "" || tmpl.Category == "" {
			t.Errorf("%s has empty message or category", code)
		}
		if !strings.HasSuffix(tmpl.DocURL, code) {
			t.Errorf("%s DocURL = %q", code, tmpl.DocURL)
		}
	}
}
