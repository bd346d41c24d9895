package ui

import (
	"time"

	"github.com/vango-dev/vangoui/pkg/reactive"
	"github.com/vango-dev/vangoui/pkg/vdom"
)

// PressDuration is how long the pressed flag stays set after a press.
const PressDuration = 100 * time.Millisecond

const (
	defaultButtonLabel = "Button"
	defaultCheckLabel  = "I agree to the terms and conditions."
)

var buttonSizeClasses = map[Size]string{
	SizeFit:    "w-fit h-fit p-[10px]",
	SizeSmall:  "w-3/4 min-w-[80px] p-[10px]",
	SizeMedium: "w-full min-w-[120px] p-[10px]",
	SizeLarge:  "w-full min-w-[160px] p-[15px]",
	SizeFull:   "w-full h-full p-[10px]",
}

var buttonStateClasses = map[ButtonState]string{
	ButtonDefault:  "bg-black",
	ButtonPressed:  "bg-gray-800",
	ButtonHover:    "bg-gray-900",
	ButtonDisabled: "bg-gray-300",
	ButtonLoading:  "bg-black",
}

type checkButtonConfig struct {
	icon            IconPosition
	label           string
	checkLabel      string
	size            Size
	state           ButtonState
	disabled        bool
	background      string
	className       string
	scheduler       reactive.Scheduler
	owner           *reactive.Owner
	checkboxAttrs   []vdom.Attr
	buttonAttrs     []vdom.Attr
	onCheckboxClick func(vdom.Event)
	onButtonClick   func(vdom.Event)
}

// CheckButtonOption configures a CheckButton.
type CheckButtonOption func(*checkButtonConfig)

// ButtonIcon places the checkbox glyph. Default IconRight.
func ButtonIcon(p IconPosition) CheckButtonOption {
	return func(c *checkButtonConfig) { c.icon = p }
}

// ButtonLabel sets the button caption.
func ButtonLabel(label string) CheckButtonOption {
	return func(c *checkButtonConfig) { c.label = label }
}

// CheckLabel sets the checkbox caption.
func CheckLabel(label string) CheckButtonOption {
	return func(c *checkButtonConfig) { c.checkLabel = label }
}

// ButtonSize sets the size preset. Default SizeMedium.
func ButtonSize(s Size) CheckButtonOption {
	return func(c *checkButtonConfig) { c.size = s }
}

// WithButtonState sets the initial interaction state.
func WithButtonState(s ButtonState) CheckButtonOption {
	return func(c *checkButtonConfig) { c.state = s }
}

// ButtonDisabledIf sets the initial disabled flag.
func ButtonDisabledIf(disabled bool) CheckButtonOption {
	return func(c *checkButtonConfig) { c.disabled = disabled }
}

// ButtonBackground overrides the body colour with an inline CSS colour.
// State colour classes are not applied while it is set.
func ButtonBackground(color string) CheckButtonOption {
	return func(c *checkButtonConfig) { c.background = color }
}

// ButtonClass appends classes to the button element.
func ButtonClass(classes ...string) CheckButtonOption {
	return func(c *checkButtonConfig) { c.className = vdom.CN(append([]string{c.className}, classes...)...) }
}

// ButtonScheduler sets the timer used to clear the pressed flag.
// Defaults to reactive.SystemScheduler.
func ButtonScheduler(s reactive.Scheduler) CheckButtonOption {
	return func(c *checkButtonConfig) { c.scheduler = s }
}

// ButtonOwner parents the button's lifetime to owner.
func ButtonOwner(owner *reactive.Owner) CheckButtonOption {
	return func(c *checkButtonConfig) { c.owner = owner }
}

// CheckboxAttrs passes attributes through to the checkbox row.
func CheckboxAttrs(attrs ...vdom.Attr) CheckButtonOption {
	return func(c *checkButtonConfig) { c.checkboxAttrs = append(c.checkboxAttrs, attrs...) }
}

// CheckboxOnClick is called after every checkbox toggle.
func CheckboxOnClick(fn func(vdom.Event)) CheckButtonOption {
	return func(c *checkButtonConfig) { c.onCheckboxClick = fn }
}

// ButtonAttrs passes attributes through to the button element.
func ButtonAttrs(attrs ...vdom.Attr) CheckButtonOption {
	return func(c *checkButtonConfig) { c.buttonAttrs = append(c.buttonAttrs, attrs...) }
}

// ButtonOnClick is called after an accepted press. Presses on a
// non-interactive button never reach it.
func ButtonOnClick(fn func(vdom.Event)) CheckButtonOption {
	return func(c *checkButtonConfig) { c.onButtonClick = fn }
}

// CheckButton is a button gated behind an acceptance checkbox.
type CheckButton struct {
	cfg       checkButtonConfig
	owner     *reactive.Owner
	scheduler reactive.Scheduler

	state    *reactive.Signal[ButtonState]
	disabled *reactive.Signal[bool]
	checked  *reactive.Signal[bool]
	hovered  *reactive.Signal[bool]
	pressed  *reactive.Signal[bool]
}

// NewCheckButton creates a CheckButton. Loading and pressed states start
// with the checkbox already checked.
func NewCheckButton(opts ...CheckButtonOption) *CheckButton {
	cfg := checkButtonConfig{
		icon:       IconRight,
		label:      defaultButtonLabel,
		checkLabel: defaultCheckLabel,
		size:       SizeMedium,
		state:      ButtonDefault,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.scheduler == nil {
		cfg.scheduler = reactive.SystemScheduler{}
	}
	if _, ok := buttonSizeClasses[cfg.size]; !ok {
		cfg.size = SizeMedium
	}
	if _, ok := buttonStateClasses[cfg.state]; !ok {
		cfg.state = ButtonDefault
	}

	b := &CheckButton{
		cfg:       cfg,
		owner:     reactive.NewOwner(cfg.owner),
		scheduler: cfg.scheduler,
		state:     reactive.NewSignal(cfg.state),
		disabled:  reactive.NewSignal(cfg.disabled),
		checked:   reactive.NewSignal(cfg.state.forcesCheck()),
		hovered:   reactive.NewSignal(false),
		pressed:   reactive.NewSignal(false),
	}
	b.owner.OnCleanup(b.state.Subscribe(func(s ButtonState) {
		if s.forcesCheck() {
			b.checked.Set(true)
		}
	}))
	return b
}

// Owner returns the lifetime scope of the button.
func (b *CheckButton) Owner() *reactive.Owner { return b.owner }

// Dispose releases the button. Pending press timers become no-ops.
func (b *CheckButton) Dispose() { b.owner.Dispose() }

// State returns the current interaction state.
func (b *CheckButton) State() ButtonState { return b.state.Get() }

// SetState replaces the interaction state. Loading and pressed force the
// checkbox checked.
func (b *CheckButton) SetState(s ButtonState) {
	if _, ok := buttonStateClasses[s]; !ok {
		return
	}
	b.state.Set(s)
}

// Disabled reports the disabled flag.
func (b *CheckButton) Disabled() bool { return b.disabled.Get() }

// SetDisabled replaces the disabled flag.
func (b *CheckButton) SetDisabled(disabled bool) { b.disabled.Set(disabled) }

// Checked reports whether the checkbox is checked.
func (b *CheckButton) Checked() bool { return b.checked.Get() }

// Hovered reports whether the pointer is over the button.
func (b *CheckButton) Hovered() bool { return b.hovered.Get() }

// Pressed reports whether a press is still within PressDuration.
func (b *CheckButton) Pressed() bool { return b.pressed.Get() }

// Interactive reports whether the button accepts presses: the checkbox is
// checked and the button is not disabled.
func (b *CheckButton) Interactive() bool {
	return b.checked.Get() && !b.disabled.Get()
}

// HoverEnabled reports whether hover styling may apply.
func (b *CheckButton) HoverEnabled() bool {
	s := b.state.Get()
	return b.Interactive() && s != ButtonDisabled && s != ButtonLoading
}

// ToggleCheck flips the checkbox and then calls the checkbox handler.
func (b *CheckButton) ToggleCheck(ev vdom.Event) {
	if b.owner.IsDisposed() {
		return
	}
	b.checked.Update(func(c bool) bool { return !c })
	if b.cfg.onCheckboxClick != nil {
		b.cfg.onCheckboxClick(ev)
	}
}

// Press sets the pressed flag for PressDuration and calls the button
// handler. It does nothing when the button is not interactive.
func (b *CheckButton) Press(ev vdom.Event) {
	if b.owner.IsDisposed() || !b.Interactive() {
		return
	}
	b.pressed.Set(true)
	b.scheduler.AfterFunc(PressDuration, b.owner.Guard(func() {
		b.pressed.Set(false)
	}))
	if b.cfg.onButtonClick != nil {
		b.cfg.onButtonClick(ev)
	}
}

// MouseEnter sets the hovered flag while hover is enabled.
func (b *CheckButton) MouseEnter(vdom.Event) {
	if b.owner.IsDisposed() || !b.HoverEnabled() {
		return
	}
	b.hovered.Set(true)
}

// MouseLeave clears the hovered flag while hover is enabled.
func (b *CheckButton) MouseLeave(vdom.Event) {
	if b.owner.IsDisposed() || !b.HoverEnabled() {
		return
	}
	b.hovered.Set(false)
}

// BodyClass returns the colour class of the button body. It is empty when
// a background override is set.
func (b *CheckButton) BodyClass() string {
	switch {
	case b.cfg.background != "":
		return ""
	case !b.Interactive():
		return buttonStateClasses[ButtonDisabled]
	case b.pressed.Get():
		return buttonStateClasses[ButtonPressed]
	case b.hovered.Get() && b.HoverEnabled():
		return buttonStateClasses[ButtonHover]
	default:
		return buttonStateClasses[b.state.Get()]
	}
}

// VisualState names the state the body is currently drawn in.
func (b *CheckButton) VisualState() string {
	switch {
	case b.cfg.background != "":
		return "custom"
	case !b.Interactive():
		return string(ButtonDisabled)
	case b.pressed.Get():
		return string(ButtonPressed)
	case b.hovered.Get() && b.HoverEnabled():
		return string(ButtonHover)
	default:
		return string(b.state.Get())
	}
}

// LabelClass returns the text colour class of the caption. The caption is
// greyed whenever the button cannot be pressed.
func (b *CheckButton) LabelClass() string {
	if !b.Interactive() {
		return "text-[#868686]"
	}
	return "text-white"
}

// Render builds the checkbox row and the button.
func (b *CheckButton) Render() *vdom.VNode {
	return vdom.Div(
		vdom.Class("flex flex-col justify-center items-center w-[350px] p-5"),
		vdom.Data("widget", "check-button"),
		b.renderCheckbox(),
		b.renderButton(),
	)
}

func (b *CheckButton) renderCheckbox() *vdom.VNode {
	checked := b.checked.Get()
	icon := vdom.IfElse(checked, CheckboxIcon("20px"), SquareOutlineIcon("gray", "20px"))

	var row []any
	if b.cfg.icon == IconLeft {
		row = []any{vdom.Span(vdom.Class("mr-2.5 text-black"), b.cfg.checkLabel), icon}
	} else {
		row = []any{icon, vdom.Span(vdom.Class("ml-2.5 text-black"), b.cfg.checkLabel)}
	}

	local := []vdom.Attr{
		vdom.Class("flex flex-row items-center mb-5 cursor-pointer select-none"),
		vdom.Role("checkbox"),
		vdom.AriaChecked(checked),
		vdom.TabIndex(0),
		vdom.Data("part", "checkbox"),
	}
	return vdom.Div(
		vdom.Spread(local, b.cfg.checkboxAttrs),
		vdom.OnClick(b.ToggleCheck),
		row,
	)
}

func (b *CheckButton) renderButton() *vdom.VNode {
	interactive := b.Interactive()
	local := []vdom.Attr{
		vdom.Type("button"),
		vdom.Class(vdom.CN(
			"flex items-center justify-center rounded text-center transition duration-200",
			buttonSizeClasses[b.cfg.size],
			b.BodyClass(),
			b.cfg.className,
		)),
		vdom.DisabledIf(!interactive),
		vdom.AriaDisabled(!interactive),
		vdom.AriaBusy(b.state.Get() == ButtonLoading),
		vdom.AriaPressed(b.pressed.Get()),
		vdom.Data("part", "button"),
		vdom.Data("state", b.VisualState()),
	}
	if b.cfg.background != "" {
		local = append(local, vdom.StyleAttr("background-color: "+b.cfg.background))
	}

	var content *vdom.VNode
	if b.state.Get() == ButtonLoading {
		content = vdom.Div(
			vdom.Class("flex items-center justify-center"),
			Spinner("w-4 h-4 border-2 border-white border-t-transparent rounded-full animate-spin"),
		)
	} else {
		content = vdom.Span(vdom.Class(b.LabelClass()), b.cfg.label)
	}

	return vdom.Button(
		vdom.Spread(local, b.cfg.buttonAttrs),
		vdom.OnMouseEnter(b.MouseEnter),
		vdom.OnMouseLeave(b.MouseLeave),
		vdom.OnClick(b.Press),
		content,
	)
}
