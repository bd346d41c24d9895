package ui_test

import (
	"testing"

	"github.com/vango-dev/vangoui/internal/errors"
	"github.com/vango-dev/vangoui/pkg/ui"
	"github.com/vango-dev/vangoui/pkg/vdom"
	"github.com/vango-dev/vangoui/pkg/vtest"
)

func renderAccountTabs(t *testing.T, tabs *ui.Tabs) *vdom.VNode {
	t.Helper()
	node, err := tabs.Render(
		ui.TabList(
			ui.Tab("Account"),
			ui.Tab(ui.TabMedium, "Password"),
			ui.Tab(ui.TabTop, "Billing"),
		),
		ui.TabPanels(
			ui.TabPanel("Account settings"),
			ui.TabPanel("Change password"),
			ui.TabPanel("Invoices"),
		),
	)
	if err != nil {
		t.Fatalf("render failed: %v", err)
	}
	return node
}

func TestTabsInitialSelection(t *testing.T) {
	tabs := ui.NewTabs()
	defer tabs.Dispose()

	node := renderAccountTabs(t, tabs)
	buttons := vtest.FindAll(node, vtest.ByRole("tab"))
	if len(buttons) != 3 {
		t.Fatalf("expected 3 tabs, got %d", len(buttons))
	}

	first := buttons[0]
	if first.Props["aria-selected"] != true || first.Props["data-state"] != "active" || first.Props["data-index"] != "0" {
		t.Errorf("unexpected first tab %v", first.Props)
	}
	for _, cls := range []string{"px-4", "rounded-sm", "text-black", "border-b-2", "border-black"} {
		if !first.HasClass(cls) {
			t.Errorf("active tab missing %q in %q", cls, first.ClassName())
		}
	}
	if !buttons[1].HasClass("text-gray-800") || !buttons[1].HasClass("hover:text-white") {
		t.Errorf("unexpected inactive classes %q", buttons[1].ClassName())
	}

	panels := vtest.FindAll(node, vtest.ByRole("tabpanel"))
	if len(panels) != 1 || panels[0].TextContent() != "Account settings" {
		t.Fatalf("expected only the first panel, got %d", len(panels))
	}
	vtest.MustFind(t, node, vtest.ByRole("tablist"))
}

func TestTabsClickSelects(t *testing.T) {
	tabs := ui.NewTabs()
	defer tabs.Dispose()

	node := renderAccountTabs(t, tabs)
	vtest.Click(t, vtest.FindAll(node, vtest.ByRole("tab"))[2])
	if tabs.ActiveIndex() != 2 {
		t.Fatalf("expected index 2, got %d", tabs.ActiveIndex())
	}

	node = renderAccountTabs(t, tabs)
	panels := vtest.FindAll(node, vtest.ByRole("tabpanel"))
	if len(panels) != 1 || panels[0].TextContent() != "Invoices" {
		t.Fatal("expected the third panel")
	}
	buttons := vtest.FindAll(node, vtest.ByRole("tab"))
	if buttons[0].Props["aria-selected"] != false || buttons[2].Props["aria-selected"] != true {
		t.Error("selection not reflected on the buttons")
	}
}

func TestTabsSelectIdempotent(t *testing.T) {
	var changes []int
	tabs := ui.NewTabs(ui.TabsOnSelect(func(i int) { changes = append(changes, i) }))
	defer tabs.Dispose()

	tabs.Select(1)
	tabs.Select(1)
	tabs.Select(0)

	if len(changes) != 2 || changes[0] != 1 || changes[1] != 0 {
		t.Errorf("unexpected notifications %v", changes)
	}
}

func TestTabsOutOfRangeRendersEmptyGroup(t *testing.T) {
	tabs := ui.NewTabs()
	defer tabs.Dispose()
	tabs.Select(7)

	node := renderAccountTabs(t, tabs)
	group := vtest.MustFind(t, node, vtest.ByPart("tabpanels"))
	if len(group.Children) != 0 {
		t.Errorf("expected empty group, got %d children", len(group.Children))
	}
	for _, b := range vtest.FindAll(node, vtest.ByRole("tab")) {
		if b.Props["data-state"] != "inactive" {
			t.Error("no tab should be active")
		}
	}
}

func TestTabsPartsRequireContext(t *testing.T) {
	tests := []struct {
		name string
		part ui.TabsPart
		code string
	}{
		{"TabList", ui.TabList(ui.Tab("A")), "E101"},
		{"Tab", ui.Tab("A"), "E102"},
		{"TabPanels", ui.TabPanels(ui.TabPanel("A")), "E103"},
		{"TabPanel", ui.TabPanel("A"), "E104"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			node, err := tt.part.Render(nil)
			if node != nil {
				t.Error("expected no output")
			}
			if !errors.HasCode(err, tt.code) {
				t.Errorf("expected %s, got %v", tt.code, err)
			}
			if ue := errors.FromError(err, ""); ue.Example == "" || ue.Suggestion == "" {
				t.Errorf("expected suggestion and example on %s", tt.code)
			}
		})
	}
}

func TestTabsPassThroughPlainNodes(t *testing.T) {
	tabs := ui.NewTabs(ui.TabsClass("max-w-xl"), ui.TabsAttrs(vdom.ID("settings")))
	defer tabs.Dispose()

	node, err := tabs.Render(
		vdom.H2("Settings"),
		ui.TabList(
			"Sections:",
			ui.Tab("One"),
			vdom.Span(vdom.Class("divider")),
			ui.Tab("Two"),
		),
		ui.TabPanels(
			ui.TabPanel("first"),
			vdom.Div("plain second"),
			ui.TabPanel("third"),
		),
	)
	if err != nil {
		t.Fatal(err)
	}

	if node.Props["id"] != "settings" || !node.HasClass("w-full") || !node.HasClass("max-w-xl") {
		t.Errorf("unexpected container %v", node.Props)
	}
	if node.Children[0].Tag != "h2" {
		t.Errorf("expected heading passed through, got %s", node.Children[0].Tag)
	}

	// The divider occupies position 1, so the second tab sits at 2.
	buttons := vtest.FindAll(node, vtest.ByRole("tab"))
	if buttons[1].Props["data-index"] != "2" {
		t.Errorf("expected position 2, got %v", buttons[1].Props["data-index"])
	}

	vtest.Click(t, buttons[1])
	node = tabs.MustRender(ui.TabPanels(ui.TabPanel("first"), vdom.Div("plain second"), ui.TabPanel("third")))
	if got := vtest.MustFind(t, node, vtest.ByPart("tabpanels")).TextContent(); got != "third" {
		t.Errorf("expected third panel, got %q", got)
	}

	tabs.Select(1)
	node = tabs.MustRender(ui.TabPanels(ui.TabPanel("first"), vdom.Div("plain second"), ui.TabPanel("third")))
	if got := vtest.MustFind(t, node, vtest.ByPart("tabpanels")).TextContent(); got != "plain second" {
		t.Errorf("expected plain node at position 1, got %q", got)
	}
}

func TestTabOutsideListIsInert(t *testing.T) {
	tabs := ui.NewTabs()
	defer tabs.Dispose()
	tabs.Select(1)

	tab := ui.Tab("Loose")
	if tab.Index() != -1 {
		t.Errorf("expected -1, got %d", tab.Index())
	}
	node := tabs.MustRender(tab)
	button := vtest.MustFind(t, node, vtest.ByRole("tab"))
	if button.Props["data-state"] != "inactive" {
		t.Error("loose tab must not be active")
	}
	vtest.Click(t, button)
	if tabs.ActiveIndex() != 1 {
		t.Errorf("loose tab changed selection to %d", tabs.ActiveIndex())
	}
}

func TestTabCallerClickRunsAfterSelect(t *testing.T) {
	tabs := ui.NewTabs()
	defer tabs.Dispose()

	seen := -1
	node := tabs.MustRender(ui.TabList(
		ui.Tab("A"),
		ui.Tab("B", vdom.Class("font-bold"), vdom.OnClick(func() { seen = tabs.ActiveIndex() })),
	))
	b := vtest.FindAll(node, vtest.ByRole("tab"))[1]
	if !b.HasClass("font-bold") {
		t.Errorf("caller class lost: %q", b.ClassName())
	}
	vtest.Click(t, b)
	if seen != 1 {
		t.Errorf("caller handler saw index %d", seen)
	}
}

func TestTabVariants(t *testing.T) {
	tests := []struct {
		variant ui.TabVariant
		want    string
	}{
		{ui.TabBasic, "rounded-sm"},
		{ui.TabMedium, "rounded-md"},
		{ui.TabTop, "rounded-t-md"},
		{ui.TabVariant("odd"), "rounded-sm"},
	}
	ctx := ui.NewTabsContext()
	for _, tt := range tests {
		node, err := ui.Tab(tt.variant, "x").Render(ctx)
		if err != nil {
			t.Fatal(err)
		}
		if !node.HasClass(tt.want) {
			t.Errorf("%s: missing %q in %q", tt.variant, tt.want, node.ClassName())
		}
	}
}

func TestTabsThroughScreen(t *testing.T) {
	tabs := ui.NewTabs()
	defer tabs.Dispose()
	screen := vtest.NewScreen(func() *vdom.VNode { return renderAccountTabs(t, tabs) })

	screen.Fire(t, screen.HID(vtest.ByData("index", "1")), "click", vdom.Event{})
	vtest.ExpectContains(t, screen.Root(), "Change password")
	vtest.ExpectNotContains(t, screen.Root(), "Account settings")
}

func TestTabsDisposeStopsNotifications(t *testing.T) {
	calls := 0
	tabs := ui.NewTabs(ui.TabsOnSelect(func(int) { calls++ }))
	ctx := tabs.Context()
	tabs.Dispose()

	ctx.Select(2)
	tabs.Select(3)
	if calls != 0 {
		t.Errorf("expected no notifications after dispose, got %d", calls)
	}
	if tabs.ActiveIndex() != 0 {
		t.Errorf("expected selection frozen after dispose, got %d", tabs.ActiveIndex())
	}
}

func TestTabCallerClicksAllRunInOrder(t *testing.T) {
	tabs := ui.NewTabs()
	defer tabs.Dispose()

	var order []string
	node := tabs.MustRender(ui.TabList(
		ui.Tab("A"),
		ui.Tab("B",
			vdom.OnClick(func() { order = append(order, "first") }),
			vdom.OnClick(func() { order = append(order, "second") }),
		),
	))
	vtest.Click(t, vtest.FindAll(node, vtest.ByRole("tab"))[1])
	if tabs.ActiveIndex() != 1 {
		t.Fatalf("expected index 1, got %d", tabs.ActiveIndex())
	}
	if len(order) != 2 || order[0] != "first" || order[1] != "second" {
		t.Errorf("expected both handlers in order, got %v", order)
	}
}

func TestTabClickAfterDisposeIsIgnored(t *testing.T) {
	calls := 0
	tabs := ui.NewTabs(ui.TabsOnSelect(func(int) { calls++ }))
	node := renderAccountTabs(t, tabs)
	stale := vtest.FindAll(node, vtest.ByRole("tab"))[2]

	tabs.Dispose()
	vtest.Click(t, stale)
	if tabs.ActiveIndex() != 0 {
		t.Errorf("stale click changed the selection to %d", tabs.ActiveIndex())
	}
	if calls != 0 {
		t.Errorf("expected no notifications, got %d", calls)
	}
}
