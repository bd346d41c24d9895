package preview

import (
	"fmt"
	"log/slog"

	"github.com/vango-dev/vangoui/pkg/reactive"
	"github.com/vango-dev/vangoui/pkg/ui"
	"github.com/vango-dev/vangoui/pkg/vdom"
)

// GalleryOptions configures a Gallery.
type GalleryOptions struct {
	// Title is shown as the page heading.
	Title string

	// Scheduler drives the button press timers.
	Scheduler reactive.Scheduler

	// Owner parents every widget. A new root owner is used when nil.
	Owner *reactive.Owner

	// Logger receives one record per widget callback.
	Logger *slog.Logger
}

// Gallery is a showcase of every widget in its main configurations.
type Gallery struct {
	title  string
	owner  *reactive.Owner
	logger *slog.Logger
	last   *reactive.Signal[string]

	buttons []*ui.CheckButton
	inputs  []*ui.Input
	tabs    *ui.Tabs

	// Widgets placed inside the tab panels.
	tabButton *ui.CheckButton
	tabInput  *ui.Input
}

// NewGallery creates the showcase widgets.
func NewGallery(opts GalleryOptions) *Gallery {
	if opts.Scheduler == nil {
		opts.Scheduler = reactive.SystemScheduler{}
	}
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}
	if opts.Title == "" {
		opts.Title = "vangoui gallery"
	}

	g := &Gallery{
		title:  opts.Title,
		owner:  reactive.NewOwner(opts.Owner),
		logger: opts.Logger,
		last:   reactive.NewSignal(""),
	}

	button := func(name string, extra ...ui.CheckButtonOption) *ui.CheckButton {
		base := []ui.CheckButtonOption{
			ui.ButtonOwner(g.owner),
			ui.ButtonScheduler(opts.Scheduler),
			ui.ButtonOnClick(func(vdom.Event) { g.record("button %q pressed", name) }),
			ui.CheckboxOnClick(func(vdom.Event) { g.record("button %q checkbox toggled", name) }),
		}
		return ui.NewCheckButton(append(base, extra...)...)
	}
	input := func(name string, extra ...ui.InputOption) *ui.Input {
		var in *ui.Input
		base := []ui.InputOption{
			ui.InputOwner(g.owner),
			ui.InputID(name),
			ui.InputOnChange(func(vdom.Event) {
				if in.IsPassword() {
					g.record("input %q changed (%d characters)", name, len(in.Value()))
					return
				}
				g.record("input %q changed to %q", name, describeInput(in))
			}),
		}
		in = ui.NewInput(append(base, extra...)...)
		return in
	}

	g.buttons = []*ui.CheckButton{
		button("default"),
		button("left icon", ui.ButtonIcon(ui.IconLeft), ui.ButtonLabel("Continue"), ui.ButtonSize(ui.SizeLarge)),
		button("loading", ui.WithButtonState(ui.ButtonLoading)),
		button("disabled", ui.ButtonDisabledIf(true), ui.ButtonSize(ui.SizeSmall)),
		button("custom", ui.ButtonBackground("#2563eb"), ui.ButtonLabel("Custom colour"), ui.ButtonSize(ui.SizeFit)),
	}
	g.inputs = []*ui.Input{
		input("name", ui.InputLabel("Name"), ui.InputHint("As it appears on your card"), ui.InputClearable(true)),
		input("password", ui.InputType("password"), ui.InputLabel("Password"), ui.InputSize(ui.SizeMedium)),
		input("upload", ui.InputType("file"), ui.InputLabel("Attachment"), ui.InputClearable(true)),
		input("correct", ui.WithInputState(ui.InputCorrect), ui.InputValue("valid@example.com"), ui.InputCurved(true)),
		input("incorrect", ui.WithInputState(ui.InputIncorrect), ui.InputValue("not-an-email"), ui.InputHint("Enter a valid email")),
		input("loading", ui.WithInputState(ui.InputLoading), ui.InputPlaceholder("Checking...")),
		input("disabled", ui.WithInputState(ui.InputDisabled), ui.InputValue("Locked")),
		input("view-only", ui.WithInputState(ui.InputViewOnly), ui.InputValue("Read only")),
	}
	g.tabs = ui.NewTabs(
		ui.TabsOwner(g.owner),
		ui.TabsOnSelect(func(i int) { g.record("tab %d selected", i) }),
	)
	g.tabButton = button("tab button", ui.ButtonLabel("Save account"))
	g.tabInput = input("tab-email", ui.InputLabel("Email"), ui.InputType("email"))

	return g
}

func describeInput(in *ui.Input) string {
	if in.IsFile() {
		return in.FileName()
	}
	return in.Value()
}

// record stores a description of the latest widget callback and logs it.
func (g *Gallery) record(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	g.last.Set(msg)
	g.logger.Debug("widget callback", "action", msg)
}

// LastAction describes the latest widget callback.
func (g *Gallery) LastAction() string { return g.last.Get() }

// Buttons returns the showcased buttons.
func (g *Gallery) Buttons() []*ui.CheckButton { return g.buttons }

// Inputs returns the showcased inputs.
func (g *Gallery) Inputs() []*ui.Input { return g.inputs }

// Tabs returns the showcased tabs container.
func (g *Gallery) Tabs() *ui.Tabs { return g.tabs }

// Dispose releases every widget.
func (g *Gallery) Dispose() { g.owner.Dispose() }

// Render builds the gallery body.
func (g *Gallery) Render() (*vdom.VNode, error) {
	tabs, err := g.tabs.Render(
		ui.TabList(
			ui.Tab("Account"),
			ui.Tab(ui.TabMedium, "Contact"),
			ui.Tab(ui.TabTop, "About"),
		),
		ui.TabPanels(
			ui.TabPanel(g.tabButton.Render()),
			ui.TabPanel(g.tabInput.Render()),
			ui.TabPanel(vdom.P("Tabs are matched to panels by position.")),
		),
	)
	if err != nil {
		return nil, err
	}

	last := g.last.Get()
	if last == "" {
		last = "Nothing yet"
	}

	return vdom.Main(
		vdom.Class("mx-auto max-w-5xl p-8 flex flex-col gap-10"),
		vdom.H1(vdom.Class("text-2xl font-bold"), g.title),
		vdom.P(
			vdom.Class("text-sm text-gray-600"),
			vdom.Data("part", "last-action"),
			vdom.A("aria-live", "polite"),
			"Last action: ", last,
		),
		section("Checkable button",
			vdom.Div(vdom.Class("grid grid-cols-2 gap-4"), vdom.Range(g.buttons, func(b *ui.CheckButton, _ int) *vdom.VNode {
				return b.Render()
			})),
		),
		section("Input",
			vdom.Div(vdom.Class("grid grid-cols-2 gap-6"), vdom.Range(g.inputs, func(in *ui.Input, _ int) *vdom.VNode {
				return in.Render()
			})),
		),
		section("Tabs", tabs),
	), nil
}

func section(title string, body ...any) *vdom.VNode {
	return vdom.Section(
		vdom.Class("flex flex-col gap-4"),
		vdom.H2(vdom.Class("text-xl font-semibold border-b pb-2"), title),
		body,
	)
}
