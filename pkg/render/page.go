package render

import (
	"io"

	"github.com/vango-dev/vangoui/pkg/vdom"
)

// PageData contains all data needed to render a complete HTML page.
type PageData struct {
	// Body is the root VNode for the page content.
	Body *vdom.VNode

	// Title is the page title.
	Title string

	// StyleSheets contains URLs of external stylesheets.
	StyleSheets []string

	// Scripts contains URLs of external scripts, loaded with defer.
	Scripts []string

	// InlineScript is emitted verbatim at the end of the body.
	InlineScript string

	// Lang is the language attribute for the html element.
	// Defaults to "en" if not specified.
	Lang string
}

// RenderPage writes a complete HTML document. The body is wrapped in a
// <div id="vangoui-root"> so a client can swap it wholesale.
func (r *Renderer) RenderPage(w io.Writer, page PageData) error {
	lang := page.Lang
	if lang == "" {
		lang = "en"
	}

	head := []any{
		vdom.Meta(vdom.Charset("utf-8")),
		vdom.Meta(vdom.Name("viewport"), vdom.Content("width=device-width, initial-scale=1")),
	}
	if page.Title != "" {
		head = append(head, vdom.Title(page.Title))
	}
	for _, href := range page.StyleSheets {
		head = append(head, vdom.Link(vdom.A("rel", "stylesheet"), vdom.Href(href)))
	}
	for _, src := range page.Scripts {
		head = append(head, vdom.Script(vdom.A("defer", true), vdom.Src(src)))
	}

	var inline *vdom.VNode
	if page.InlineScript != "" {
		inline = vdom.Script(vdom.Raw(page.InlineScript))
	}

	doc := vdom.Html(
		vdom.A("lang", lang),
		vdom.Head(head),
		vdom.Body(
			vdom.Div(vdom.ID("vangoui-root"), page.Body),
			inline,
		),
	)

	if _, err := io.WriteString(w, "<!DOCTYPE html>\n"); err != nil {
		return err
	}
	return r.RenderToWriter(w, doc)
}
