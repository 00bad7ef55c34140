package landing

import (
	"strings"

	"gosearch/models"
)

// Animation classes, defined in /static/css/landing.css
const (
	fadeIn      = "fade-in"       // opacity 0 -> 1, 0.5s delay, 1.5s duration
	hoverGrow   = "hover-grow"    // scale 1.1 over 0.2s
	hoverGrowLg = "hover-grow-lg" // scale 1.2 over 0.2s
)

// classes joins the non-empty class fragments with single spaces
func classes(parts ...string) string {
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return strings.Join(out, " ")
}

// Themed variants shared by several components

func borderClass(t models.Theme) string {
	return t.Pick("border-gray-300", "border-gray-600")
}

func fieldClass(t models.Theme) string {
	return t.Pick("bg-white", "bg-gray-800 text-white")
}

func chipClass(t models.Theme) string {
	return t.Pick("border-gray-300 bg-white text-gray-700", "border-gray-600 bg-gray-800 text-white")
}

func textClass(t models.Theme) string {
	return t.Pick("", "text-white")
}
