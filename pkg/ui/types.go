package ui

// Size selects a dimension and padding preset.
type Size string

const (
	SizeFit    Size = "fit"
	SizeSmall  Size = "small"
	SizeMedium Size = "medium"
	SizeLarge  Size = "large"
	SizeFull   Size = "full"
)

// IconPosition places the checkbox glyph relative to its label.
type IconPosition string

const (
	// IconLeft puts the label first and the glyph after it.
	IconLeft IconPosition = "left"
	// IconRight puts the glyph first and the label after it.
	IconRight IconPosition = "right"
)

// ButtonState is the externally supplied interaction state of a CheckButton.
type ButtonState string

const (
	ButtonDefault  ButtonState = "default"
	ButtonPressed  ButtonState = "pressed"
	ButtonHover    ButtonState = "hover"
	ButtonDisabled ButtonState = "disabled"
	ButtonLoading  ButtonState = "loading"
)

// forcesCheck reports whether the state implies the checkbox was accepted.
func (s ButtonState) forcesCheck() bool {
	return s == ButtonLoading || s == ButtonPressed
}

// InputState is the validation state of an Input.
type InputState int

const (
	InputDefault InputState = iota
	InputActive
	InputCorrect
	InputIncorrect
	InputLoading
	InputDisabled
	InputViewOnly
)

// String returns the state name.
func (s InputState) String() string {
	switch s {
	case InputDefault:
		return "Default"
	case InputActive:
		return "Active"
	case InputCorrect:
		return "Correct"
	case InputIncorrect:
		return "Incorrect"
	case InputLoading:
		return "Loading"
	case InputDisabled:
		return "Disabled"
	case InputViewOnly:
		return "ViewOnly"
	default:
		return "Unknown"
	}
}

// ParseInputState maps a state name back to its value.
func ParseInputState(name string) (InputState, bool) {
	for s := InputDefault; s <= InputViewOnly; s++ {
		if s.String() == name {
			return s, true
		}
	}
	return InputDefault, false
}

// StatusIcon identifies the glyph shown for an input's validation state.
type StatusIcon int

const (
	StatusNone StatusIcon = iota
	StatusSuccess
	StatusAlert
	StatusSpinner
)

// TabVariant selects the corner rounding of a tab button.
type TabVariant string

const (
	TabBasic  TabVariant = "basic"
	TabMedium TabVariant = "medium"
	TabTop    TabVariant = "top"
)
