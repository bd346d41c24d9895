package ui

import (
	"github.com/vango-dev/vangoui/pkg/vdom"
)

// glyph builds a 24x24 outline icon. The data-icon attribute names the glyph.
func glyph(name, size, color string, children ...any) *vdom.VNode {
	if color == "" {
		color = "currentColor"
	}
	args := []any{
		vdom.Data("icon", name),
		vdom.A("xmlns", "http://www.w3.org/2000/svg"),
		vdom.ViewBox("0 0 24 24"),
		vdom.Width(size),
		vdom.Height(size),
		vdom.Fill("none"),
		vdom.Stroke(color),
		vdom.A("stroke-width", "2"),
		vdom.AriaHidden(true),
	}
	return vdom.Svg(append(args, children...)...)
}

// CheckboxIcon is the filled, ticked square shown for a checked checkbox.
func CheckboxIcon(size string) *vdom.VNode {
	return glyph("checkbox", size, "",
		vdom.Rect(vdom.A("x", "3"), vdom.A("y", "3"), vdom.Width("18"), vdom.Height("18"), vdom.A("rx", "3"), vdom.Fill("currentColor")),
		vdom.Path(vdom.D("M7 12.5l3 3 7-7"), vdom.Stroke("white")),
	)
}

// SquareOutlineIcon is the empty square shown for an unchecked checkbox.
func SquareOutlineIcon(color, size string) *vdom.VNode {
	return glyph("square-outline", size, color,
		vdom.Rect(vdom.A("x", "3"), vdom.A("y", "3"), vdom.Width("18"), vdom.Height("18"), vdom.A("rx", "3")),
	)
}

// CheckmarkCircleIcon is the success glyph.
func CheckmarkCircleIcon(size, color string) *vdom.VNode {
	return glyph("checkmark-circle", size, color,
		vdom.Circle(vdom.A("cx", "12"), vdom.A("cy", "12"), vdom.A("r", "10")),
		vdom.Path(vdom.D("M8 12.5l2.5 2.5 5.5-6")),
	)
}

// AlertCircleIcon is the error glyph.
func AlertCircleIcon(size, color string) *vdom.VNode {
	return glyph("alert-circle", size, color,
		vdom.Circle(vdom.A("cx", "12"), vdom.A("cy", "12"), vdom.A("r", "10")),
		vdom.Path(vdom.D("M12 7v6M12 16.5v.5")),
	)
}

// CloseCircleIcon is the clear glyph.
func CloseCircleIcon(size string) *vdom.VNode {
	return glyph("close-circle", size, "",
		vdom.Circle(vdom.A("cx", "12"), vdom.A("cy", "12"), vdom.A("r", "10")),
		vdom.Path(vdom.D("M15 9l-6 6M9 9l6 6")),
	)
}

// EyeIcon signals that the password is hidden and can be revealed.
func EyeIcon() *vdom.VNode {
	return glyph("eye", "20px", "",
		vdom.Path(vdom.D("M2 12s3.5-7 10-7 10 7 10 7-3.5 7-10 7S2 12 2 12z")),
		vdom.Circle(vdom.A("cx", "12"), vdom.A("cy", "12"), vdom.A("r", "3")),
	)
}

// EyeOffIcon signals that the password is visible and can be hidden.
func EyeOffIcon() *vdom.VNode {
	return glyph("eye-off", "20px", "",
		vdom.Path(vdom.D("M2 12s3.5-7 10-7 10 7 10 7-3.5 7-10 7S2 12 2 12z")),
		vdom.Path(vdom.D("M3 3l18 18")),
	)
}

// AttachIcon is the paperclip shown on the file trigger.
func AttachIcon() *vdom.VNode {
	return glyph("attach", "20px", "",
		vdom.Path(vdom.D("M21 11.5l-8.5 8.5a5 5 0 01-7-7L14 4.5a3.5 3.5 0 015 5L10.5 18a2 2 0 01-3-3L15 7.5")),
	)
}

// Spinner is a CSS-animated ring. classes set its size and colours.
func Spinner(classes string) *vdom.VNode {
	return vdom.Div(
		vdom.Data("icon", "spinner"),
		vdom.Role("status"),
		vdom.AriaLabel("Loading"),
		vdom.Class(classes),
	)
}
