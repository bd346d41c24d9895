package ui

import (
	"github.com/vango-dev/vangoui/pkg/reactive"
	"github.com/vango-dev/vangoui/pkg/vdom"
)

const (
	defaultInputID          = "file-input"
	defaultInputPlaceholder = "Placeholder"
)

var inputSizeClasses = map[Size]string{
	SizeSmall:  "w-[375px] h-[36px]",
	SizeMedium: "w-[375px] h-[48px]",
	SizeLarge:  "w-[375px] h-[56px]",
	SizeFit:    "w-fit h-fit",
	SizeFull:   "w-full h-full",
}

type inputConfig struct {
	size        Size
	label       string
	hint        string
	placeholder string
	state       InputState
	value       string
	curved      bool
	id          string
	clearable   bool
	inputType   string
	className   string
	owner       *reactive.Owner
	attrs       []vdom.Attr
	onChange    func(vdom.Event)
	onFocus     func(vdom.Event)
	onBlur      func(vdom.Event)
}

// InputOption configures an Input.
type InputOption func(*inputConfig)

// InputSize sets the size preset. Default SizeSmall.
func InputSize(s Size) InputOption {
	return func(c *inputConfig) { c.size = s }
}

// InputLabel sets the caption rendered above the field.
func InputLabel(label string) InputOption {
	return func(c *inputConfig) { c.label = label }
}

// InputHint sets the helper text rendered below the field.
func InputHint(hint string) InputOption {
	return func(c *inputConfig) { c.hint = hint }
}

// InputPlaceholder sets the placeholder text.
func InputPlaceholder(text string) InputOption {
	return func(c *inputConfig) { c.placeholder = text }
}

// WithInputState sets the initial validation state.
func WithInputState(s InputState) InputOption {
	return func(c *inputConfig) { c.state = s }
}

// InputValue sets the initial value.
func InputValue(value string) InputOption {
	return func(c *inputConfig) { c.value = value }
}

// InputCurved rounds the field corners.
func InputCurved(curved bool) InputOption {
	return func(c *inputConfig) { c.curved = curved }
}

// InputID sets the element id the label and file trigger point at.
func InputID(id string) InputOption {
	return func(c *inputConfig) { c.id = id }
}

// InputClearable shows a button that empties the field.
func InputClearable(clearable bool) InputOption {
	return func(c *inputConfig) { c.clearable = clearable }
}

// InputType sets the native input type ("text", "password", "file", ...).
func InputType(t string) InputOption {
	return func(c *inputConfig) { c.inputType = t }
}

// InputClass appends classes to the native input.
func InputClass(classes ...string) InputOption {
	return func(c *inputConfig) { c.className = vdom.CN(append([]string{c.className}, classes...)...) }
}

// InputOwner parents the input's lifetime to owner.
func InputOwner(owner *reactive.Owner) InputOption {
	return func(c *inputConfig) { c.owner = owner }
}

// InputAttrs passes attributes through to the native input.
func InputAttrs(attrs ...vdom.Attr) InputOption {
	return func(c *inputConfig) { c.attrs = append(c.attrs, attrs...) }
}

// InputOnChange is called after every value change.
func InputOnChange(fn func(vdom.Event)) InputOption {
	return func(c *inputConfig) { c.onChange = fn }
}

// InputOnFocus is called after the field gains focus.
func InputOnFocus(fn func(vdom.Event)) InputOption {
	return func(c *inputConfig) { c.onFocus = fn }
}

// InputOnBlur is called after the field loses focus.
func InputOnBlur(fn func(vdom.Event)) InputOption {
	return func(c *inputConfig) { c.onBlur = fn }
}

// Input is a managed text, password or file field with validation styling.
type Input struct {
	cfg   inputConfig
	owner *reactive.Owner

	state           *reactive.Signal[InputState]
	value           *reactive.Signal[string]
	fileName        *reactive.Signal[string]
	focused         *reactive.Signal[bool]
	passwordVisible *reactive.Signal[bool]
}

// NewInput creates an Input.
func NewInput(opts ...InputOption) *Input {
	cfg := inputConfig{
		size:        SizeSmall,
		placeholder: defaultInputPlaceholder,
		id:          defaultInputID,
		inputType:   "text",
		state:       InputDefault,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	if _, ok := inputSizeClasses[cfg.size]; !ok {
		cfg.size = SizeSmall
	}
	if cfg.inputType == "" {
		cfg.inputType = "text"
	}

	return &Input{
		cfg:             cfg,
		owner:           reactive.NewOwner(cfg.owner),
		state:           reactive.NewSignal(cfg.state),
		value:           reactive.NewSignal(cfg.value),
		fileName:        reactive.NewSignal(""),
		focused:         reactive.NewSignal(false),
		passwordVisible: reactive.NewSignal(false),
	}
}

// Owner returns the lifetime scope of the input.
func (i *Input) Owner() *reactive.Owner { return i.owner }

// Dispose releases the input.
func (i *Input) Dispose() { i.owner.Dispose() }

// ID returns the element id.
func (i *Input) ID() string { return i.cfg.id }

// Type returns the configured input type.
func (i *Input) Type() string { return i.cfg.inputType }

// State returns the validation state.
func (i *Input) State() InputState { return i.state.Get() }

// SetState replaces the validation state.
func (i *Input) SetState(s InputState) { i.state.Set(s) }

// Value returns the current value.
func (i *Input) Value() string { return i.value.Get() }

// FileName returns the name of the selected file, or "".
func (i *Input) FileName() string { return i.fileName.Get() }

// Focused reports whether the field has focus.
func (i *Input) Focused() bool { return i.focused.Get() }

// PasswordVisible reports whether a password is shown in clear text.
func (i *Input) PasswordVisible() bool { return i.passwordVisible.Get() }

// Interactive reports whether the native control is enabled.
func (i *Input) Interactive() bool {
	s := i.state.Get()
	return s != InputDisabled && s != InputViewOnly
}

// EffectiveType is the type attribute actually rendered.
func (i *Input) EffectiveType() string {
	if i.cfg.inputType == "password" && i.passwordVisible.Get() {
		return "text"
	}
	return i.cfg.inputType
}

// IsFile reports whether the input picks files.
func (i *Input) IsFile() bool { return i.cfg.inputType == "file" }

// IsPassword reports whether the input is a password field.
func (i *Input) IsPassword() bool { return i.cfg.inputType == "password" }

// BorderClass returns the border colour class for the current state.
func (i *Input) BorderClass() string {
	switch i.state.Get() {
	case InputIncorrect:
		return "border-borderNegative"
	case InputCorrect:
		return "border-borderPositive"
	case InputActive:
		return "border-black"
	case InputDefault:
		if i.focused.Get() {
			return "border-black"
		}
		return "border-transparent"
	default:
		return "border-transparent"
	}
}

// StatusIcon returns the glyph shown for the current state.
func (i *Input) StatusIcon() StatusIcon {
	switch i.state.Get() {
	case InputCorrect:
		return StatusSuccess
	case InputIncorrect:
		return StatusAlert
	case InputLoading:
		return StatusSpinner
	default:
		return StatusNone
	}
}

// Change records the new value and the first selected file, then calls the
// change handler. An empty file list clears the file name.
func (i *Input) Change(ev vdom.Event) {
	if i.owner.IsDisposed() {
		return
	}
	i.value.Set(ev.Value)
	name := ""
	if len(ev.Files) > 0 {
		name = ev.Files[0].Name
	}
	i.fileName.Set(name)
	if i.cfg.onChange != nil {
		i.cfg.onChange(ev)
	}
}

// Focus sets the focus flag and calls the focus handler.
func (i *Input) Focus(ev vdom.Event) {
	if i.owner.IsDisposed() {
		return
	}
	i.focused.Set(true)
	if i.cfg.onFocus != nil {
		i.cfg.onFocus(ev)
	}
}

// Blur clears the focus flag and calls the blur handler.
func (i *Input) Blur(ev vdom.Event) {
	if i.owner.IsDisposed() {
		return
	}
	i.focused.Set(false)
	if i.cfg.onBlur != nil {
		i.cfg.onBlur(ev)
	}
}

// TogglePassword flips password visibility.
func (i *Input) TogglePassword() {
	if i.owner.IsDisposed() {
		return
	}
	i.passwordVisible.Update(func(v bool) bool { return !v })
}

// Clear empties the value and the file name.
func (i *Input) Clear() {
	if i.owner.IsDisposed() {
		return
	}
	i.value.Set("")
	i.fileName.Set("")
}

// Render builds the label, the field with its trailing controls, and the hint.
func (i *Input) Render() *vdom.VNode {
	return vdom.Div(
		vdom.Class("flex flex-col gap-2"),
		vdom.Data("widget", "input"),
		vdom.If(i.cfg.label != "", vdom.Div(
			vdom.Class("text-sm text-gray-800"),
			vdom.Label(vdom.For(i.cfg.id), vdom.Data("part", "label"), i.cfg.label),
		)),
		vdom.Div(
			vdom.Class(vdom.CN("relative", inputSizeClasses[i.cfg.size])),
			i.renderField(),
			vdom.When(i.IsFile(), i.renderFileTrigger),
			i.renderControls(),
		),
		vdom.If(i.cfg.hint != "", vdom.Div(
			vdom.Class("text-sm text-inputHint text-gray-800"),
			vdom.Data("part", "hint"),
			vdom.Span(i.cfg.hint),
		)),
	)
}

func (i *Input) fieldClass(extra ...string) string {
	classes := []string{
		"bg-gray-50 p-[8px] placeholder:text-gray-400 outline-none pr-[40px] border-[3px]",
		inputSizeClasses[i.cfg.size],
		i.BorderClass(),
	}
	if i.cfg.curved {
		classes = append(classes, "rounded-md")
	}
	return vdom.CN(append(classes, extra...)...)
}

func (i *Input) renderField() *vdom.VNode {
	state := i.state.Get()
	var extra []string
	if state == InputDisabled {
		extra = append(extra, "cursor-not-allowed text-gray-300")
	}
	if i.IsFile() {
		extra = append(extra, "hidden")
	}
	extra = append(extra, i.cfg.className)

	local := []vdom.Attr{
		vdom.ID(i.cfg.id),
		vdom.Type(i.EffectiveType()),
		vdom.Placeholder(i.cfg.placeholder),
		vdom.Class(i.fieldClass(extra...)),
		vdom.DisabledIf(!i.Interactive()),
		vdom.ReadonlyIf(state == InputViewOnly),
		vdom.AriaInvalid(state == InputIncorrect),
		vdom.AriaBusy(state == InputLoading),
		vdom.Data("part", "field"),
		vdom.Data("state", state.String()),
	}
	// Browsers refuse a programmatic value on file inputs.
	if !i.IsFile() {
		local = append(local, vdom.Value(i.value.Get()))
	}

	change := vdom.OnInput(i.Change)
	if i.IsFile() {
		change = vdom.OnChange(i.Change)
	}
	return vdom.Input(
		vdom.Spread(local, i.cfg.attrs),
		change,
		vdom.OnFocus(i.Focus),
		vdom.OnBlur(i.Blur),
	)
}

func (i *Input) renderFileTrigger() *vdom.VNode {
	name := i.fileName.Get()
	return vdom.Label(
		vdom.For(i.cfg.id),
		vdom.Class(i.fieldClass("font-semibold flex items-center text-nowrap text-ellipsis max-w-sm cursor-pointer")),
		vdom.Data("part", "file-trigger"),
		vdom.Span(vdom.Class("min-h-4 min-w-4 mr-2 flex justify-center items-center"), AttachIcon()),
		vdom.Text("Choose a file"),
		vdom.If(name != "", vdom.Span(
			vdom.Class("truncate !text-gray-300 text-sm text-nowrap ml-2"),
			vdom.TitleAttr(name),
			vdom.Data("part", "file-name"),
			name,
		)),
	)
}

func (i *Input) renderControls() *vdom.VNode {
	var status *vdom.VNode
	switch i.StatusIcon() {
	case StatusSuccess:
		status = CheckmarkCircleIcon("20px", "#22c55e")
	case StatusAlert:
		status = AlertCircleIcon("20px", "#ef4444")
	case StatusSpinner:
		status = Spinner("w-4 h-4 border-2 border-blue-500 border-t-transparent rounded-full animate-spin")
	}

	return vdom.Div(
		vdom.Class("absolute left-full top-1/2 -translate-x-full -translate-y-1/2 pr-4 flex gap-2 justify-center"),
		vdom.If(status != nil, vdom.Div(vdom.Class("relative"), vdom.Data("part", "status"), status)),
		vdom.When(i.IsPassword(), func() *vdom.VNode {
			label, icon := "Show password", EyeIcon()
			if i.passwordVisible.Get() {
				label, icon = "Hide password", EyeOffIcon()
			}
			return vdom.Button(
				vdom.Type("button"),
				vdom.Class("relative"),
				vdom.AriaLabel(label),
				vdom.Data("part", "password-toggle"),
				vdom.OnClick(i.TogglePassword),
				icon,
			)
		}),
		vdom.When(i.cfg.clearable, func() *vdom.VNode {
			return vdom.Button(
				vdom.Type("button"),
				vdom.Class("flex items-center"),
				vdom.AriaLabel("Clear"),
				vdom.Data("part", "clear"),
				vdom.OnClick(i.Clear),
				CloseCircleIcon("20px"),
			)
		}),
	)
}
