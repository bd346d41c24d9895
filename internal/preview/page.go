package preview

import (
	"io"

	"github.com/vango-dev/vangoui/internal/config"
	"github.com/vango-dev/vangoui/pkg/reactive"
	"github.com/vango-dev/vangoui/pkg/render"
)

// WritePage renders a complete gallery document with freshly created
// widgets. A live page carries the client script; a static one does not.
func WritePage(w io.Writer, cfg *config.Config, live bool) error {
	owner := reactive.NewOwner(nil)
	defer owner.Dispose()

	gallery := NewGallery(GalleryOptions{Title: cfg.Title, Owner: owner})
	body, err := gallery.Render()
	if err != nil {
		return err
	}

	page := render.PageData{
		Body:        body,
		Title:       cfg.Title,
		StyleSheets: cfg.Preview.Stylesheets,
	}
	if live {
		page.InlineScript = clientScript
	}
	r := render.NewRenderer(render.RendererConfig{Pretty: cfg.Preview.Pretty})
	return r.RenderPage(w, page)
}
