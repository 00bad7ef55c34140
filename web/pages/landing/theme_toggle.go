package landing

import (
	"gosearch/models"

	"github.com/rohanthewiz/element"
)

// ThemeToggle posts the flipped theme to /theme.
// In dark mode it shows a sun labelled "Light Mode", in light mode a moon
// labelled "Dark Mode".
type ThemeToggle struct {
	Theme models.Theme
}

// Render implements element.Component
func (tt ThemeToggle) Render(b *element.Builder) (x any) {
	icon, label := svgMoon, "Dark Mode"
	if tt.Theme.IsDark() {
		icon, label = svgSun, "Light Mode"
	}

	b.DivClass("flex justify-center mt-5").R(
		b.Form("method", "post", "action", "/theme", "id", "theme-form").R(
			b.Input("type", "hidden", "name", "theme", "value", tt.Theme.Toggle().String()),
			b.Button("type", "submit", "id", "theme-toggle",
				"class", classes("flex items-center justify-center border", chipClass(tt.Theme), "rounded-full w-12 h-12 m-2 focus:outline-none"),
			).R(
				b.T(icon),
				b.SpanClass("sr-only").T(label),
			),
		),
	)
	return
}
