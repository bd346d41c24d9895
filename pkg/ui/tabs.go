package ui

import (
	"strconv"
	"sync/atomic"

	"github.com/vango-dev/vangoui/internal/errors"
	"github.com/vango-dev/vangoui/pkg/reactive"
	"github.com/vango-dev/vangoui/pkg/vdom"
)

const (
	tabBaseClass     = "px-4 py-2 text-sm font-medium transition-all duration-200 focus:outline-none"
	tabActiveClass   = "text-black border-b-2 border-black"
	tabInactiveClass = "text-gray-800 hover:text-white hover:border-b-2 hover:border-white"
)

var tabVariantClasses = map[TabVariant]string{
	TabBasic:  "rounded-sm",
	TabMedium: "rounded-md",
	TabTop:    "rounded-t-md",
}

// TabsContext is the selection state shared by the parts of one Tabs.
type TabsContext struct {
	active *reactive.Signal[int]
	closed atomic.Bool
}

// NewTabsContext creates a context with the first tab selected.
func NewTabsContext() *TabsContext {
	return &TabsContext{active: reactive.NewSignal(0)}
}

// ActiveIndex returns the selected position.
func (c *TabsContext) ActiveIndex() int { return c.active.Get() }

// Select makes the tab at position i active. Selecting the active tab is a
// no-op, as is any selection once the owning Tabs has been disposed.
func (c *TabsContext) Select(i int) {
	if c.closed.Load() {
		return
	}
	c.active.Set(i)
}

func (c *TabsContext) close() { c.closed.Store(true) }

// Subscribe calls fn after every selection change.
func (c *TabsContext) Subscribe(fn func(int)) func() { return c.active.Subscribe(fn) }

// TabsPart is a component of a Tabs tree that needs the shared context.
type TabsPart interface {
	Render(ctx *TabsContext) (*vdom.VNode, error)
}

// TabsOption configures a Tabs container.
type TabsOption func(*Tabs)

// TabsClass appends classes to the container.
func TabsClass(classes ...string) TabsOption {
	return func(t *Tabs) { t.className = vdom.CN(append([]string{t.className}, classes...)...) }
}

// TabsAttrs passes attributes through to the container.
func TabsAttrs(attrs ...vdom.Attr) TabsOption {
	return func(t *Tabs) { t.attrs = append(t.attrs, attrs...) }
}

// TabsOwner parents the container's lifetime to owner.
func TabsOwner(owner *reactive.Owner) TabsOption {
	return func(t *Tabs) { t.parent = owner }
}

// TabsOnSelect is called after the selection changes.
func TabsOnSelect(fn func(int)) TabsOption {
	return func(t *Tabs) { t.onSelect = fn }
}

// Tabs is a container whose tab buttons and panels are matched by position.
type Tabs struct {
	ctx       *TabsContext
	owner     *reactive.Owner
	parent    *reactive.Owner
	className string
	attrs     []vdom.Attr
	onSelect  func(int)
}

// NewTabs creates a Tabs container with its own context.
func NewTabs(opts ...TabsOption) *Tabs {
	t := &Tabs{ctx: NewTabsContext()}
	for _, opt := range opts {
		opt(t)
	}
	t.owner = reactive.NewOwner(t.parent)
	t.owner.OnCleanup(t.ctx.close)
	if t.onSelect != nil {
		t.owner.OnCleanup(t.ctx.Subscribe(t.onSelect))
	}
	return t
}

// Context returns the shared selection state.
func (t *Tabs) Context() *TabsContext { return t.ctx }

// ActiveIndex returns the selected position.
func (t *Tabs) ActiveIndex() int { return t.ctx.ActiveIndex() }

// Select makes the tab at position i active.
func (t *Tabs) Select(i int) {
	if t.owner.IsDisposed() {
		return
	}
	t.ctx.Select(i)
}

// Dispose releases the container.
func (t *Tabs) Dispose() { t.owner.Dispose() }

// Render builds the container. children may be TabsParts, which are
// rendered with the container's context, or anything vdom.Div accepts,
// which is passed through unchanged.
func (t *Tabs) Render(children ...any) (*vdom.VNode, error) {
	nodes, err := renderParts(t.ctx, children)
	if err != nil {
		return nil, err
	}
	local := []vdom.Attr{
		vdom.Class(vdom.CN("w-full", t.className)),
		vdom.Data("widget", "tabs"),
	}
	return vdom.Div(vdom.Spread(local, t.attrs), nodes), nil
}

// MustRender is like Render but panics on error.
func (t *Tabs) MustRender(children ...any) *vdom.VNode {
	node, err := t.Render(children...)
	if err != nil {
		panic(err)
	}
	return node
}

func renderParts(ctx *TabsContext, children []any) ([]any, error) {
	out := make([]any, 0, len(children))
	for _, child := range children {
		part, ok := child.(TabsPart)
		if !ok {
			out = append(out, child)
			continue
		}
		node, err := part.Render(ctx)
		if err != nil {
			return nil, err
		}
		out = append(out, node)
	}
	return out, nil
}

// splitArgs separates attributes and event handlers from content.
func splitArgs(args []any) (attrs []vdom.Attr, handlers []vdom.EventHandler, content []any) {
	for _, arg := range args {
		switch v := arg.(type) {
		case vdom.Attr:
			attrs = append(attrs, v)
		case []vdom.Attr:
			attrs = append(attrs, v...)
		case vdom.EventHandler:
			handlers = append(handlers, v)
		case []vdom.EventHandler:
			handlers = append(handlers, v...)
		case nil:
		default:
			content = append(content, v)
		}
	}
	return attrs, handlers, content
}

// isElementChild reports whether a child occupies a position. Text and
// empty values do not.
func isElementChild(child any) bool {
	switch v := child.(type) {
	case TabsPart:
		return true
	case *vdom.VNode:
		return v != nil && v.Kind != vdom.KindText
	case vdom.Component:
		return true
	default:
		return false
	}
}

// TabListPart is the row of tab buttons.
type TabListPart struct {
	attrs    []vdom.Attr
	children []any
}

// TabList creates the button row. Each element child is assigned its
// position in declaration order.
func TabList(args ...any) *TabListPart {
	attrs, _, children := splitArgs(args)
	return &TabListPart{attrs: attrs, children: children}
}

// Render builds the row.
func (l *TabListPart) Render(ctx *TabsContext) (*vdom.VNode, error) {
	if ctx == nil {
		return nil, errors.New("E101").
			WithSuggestion("Pass the TabList to Tabs.Render.").
			WithExample("tabs.Render(ui.TabList(ui.Tab(\"One\")), ui.TabPanels(ui.TabPanel(\"1\")))")
	}
	out := make([]any, 0, len(l.children))
	pos := 0
	for _, child := range l.children {
		if !isElementChild(child) {
			out = append(out, child)
			continue
		}
		if tab, ok := child.(*TabPart); ok {
			tab = tab.at(pos)
			child = tab
		}
		pos++
		if part, ok := child.(TabsPart); ok {
			node, err := part.Render(ctx)
			if err != nil {
				return nil, err
			}
			child = node
		}
		out = append(out, child)
	}

	local := []vdom.Attr{
		vdom.Class("flex items-center gap-4 border-b border-gray-600 bg-gray-400 p-1 rounded-t-md"),
		vdom.Role("tablist"),
		vdom.Data("part", "tablist"),
	}
	return vdom.Div(vdom.Spread(local, l.attrs), out), nil
}

// TabPart is a single tab button.
type TabPart struct {
	variant  TabVariant
	attrs    []vdom.Attr
	handlers []vdom.EventHandler
	content  []any
	index    int
	placed   bool
}

// Tab creates a tab button. A TabVariant argument selects the corner
// rounding; other arguments follow the vdom element convention.
func Tab(args ...any) *TabPart {
	t := &TabPart{variant: TabBasic}
	var rest []any
	for _, arg := range args {
		if v, ok := arg.(TabVariant); ok {
			t.variant = v
			continue
		}
		rest = append(rest, arg)
	}
	t.attrs, t.handlers, t.content = splitArgs(rest)
	return t
}

// at returns a copy of the tab placed at position i.
func (t *TabPart) at(i int) *TabPart {
	c := *t
	c.index = i
	c.placed = true
	return &c
}

// Index returns the assigned position, or -1 outside a TabList.
func (t *TabPart) Index() int {
	if !t.placed {
		return -1
	}
	return t.index
}

// Render builds the button. A tab outside a TabList is never active and
// its click selects nothing.
func (t *TabPart) Render(ctx *TabsContext) (*vdom.VNode, error) {
	if ctx == nil {
		return nil, errors.New("E102").
			WithSuggestion("Place the Tab in a TabList passed to Tabs.Render.").
			WithExample("tabs.Render(ui.TabList(ui.Tab(\"One\"), ui.Tab(\"Two\")))")
	}
	active := t.placed && ctx.ActiveIndex() == t.index
	stateClass, state := tabInactiveClass, "inactive"
	if active {
		stateClass, state = tabActiveClass, "active"
	}
	variant, ok := tabVariantClasses[t.variant]
	if !ok {
		variant = tabVariantClasses[TabBasic]
	}

	local := []vdom.Attr{
		vdom.Type("button"),
		vdom.Class(vdom.CN(tabBaseClass, variant, stateClass)),
		vdom.Role("tab"),
		vdom.AriaSelected(active),
		vdom.Data("state", state),
	}
	if t.placed {
		local = append(local, vdom.Data("index", strconv.Itoa(t.index)))
	}

	// Caller click handlers run after selection.
	var callerClicks []any
	var handlers []vdom.EventHandler
	for _, h := range t.handlers {
		if h.Event == "onclick" {
			callerClicks = append(callerClicks, h.Handler)
			continue
		}
		handlers = append(handlers, h)
	}
	index, placed := t.index, t.placed
	click := func(ev vdom.Event) {
		if placed {
			ctx.Select(index)
		}
		for _, h := range callerClicks {
			vdom.Call(h, ev)
		}
	}

	return vdom.Button(
		vdom.Spread(local, t.attrs),
		handlers,
		vdom.OnClick(click),
		t.content,
	), nil
}

// TabPanelsPart holds the panels and renders the active one.
type TabPanelsPart struct {
	attrs    []vdom.Attr
	children []any
}

// TabPanels creates the panel group.
func TabPanels(args ...any) *TabPanelsPart {
	attrs, _, children := splitArgs(args)
	return &TabPanelsPart{attrs: attrs, children: children}
}

// Render builds the group with only the panel at the active position. An
// out-of-range position renders an empty group.
func (p *TabPanelsPart) Render(ctx *TabsContext) (*vdom.VNode, error) {
	if ctx == nil {
		return nil, errors.New("E103").
			WithSuggestion("Pass the TabPanels to Tabs.Render.").
			WithExample("tabs.Render(ui.TabList(...), ui.TabPanels(ui.TabPanel(\"1\")))")
	}
	active := ctx.ActiveIndex()
	var selected any
	pos := 0
	for _, child := range p.children {
		if !isElementChild(child) {
			continue
		}
		if pos == active {
			selected = child
			break
		}
		pos++
	}
	if part, ok := selected.(TabsPart); ok {
		node, err := part.Render(ctx)
		if err != nil {
			return nil, err
		}
		selected = node
	}

	local := []vdom.Attr{
		vdom.Class("mt-6"),
		vdom.Data("part", "tabpanels"),
	}
	return vdom.Div(vdom.Spread(local, p.attrs), selected), nil
}

// TabPanelPart is the content of one tab.
type TabPanelPart struct {
	attrs   []vdom.Attr
	content []any
}

// TabPanel creates a panel.
func TabPanel(args ...any) *TabPanelPart {
	attrs, _, content := splitArgs(args)
	return &TabPanelPart{attrs: attrs, content: content}
}

// Render builds the panel.
func (p *TabPanelPart) Render(ctx *TabsContext) (*vdom.VNode, error) {
	if ctx == nil {
		return nil, errors.New("E104").
			WithSuggestion("Place the TabPanel in a TabPanels passed to Tabs.Render.").
			WithExample("tabs.Render(ui.TabPanels(ui.TabPanel(\"1\"), ui.TabPanel(\"2\")))")
	}
	local := []vdom.Attr{
		vdom.Class("p-4 bg-gray-50 text-black rounded-md"),
		vdom.Role("tabpanel"),
		vdom.Data("part", "tabpanel"),
	}
	content, err := renderParts(ctx, p.content)
	if err != nil {
		return nil, err
	}
	return vdom.Div(vdom.Spread(local, p.attrs), content), nil
}
