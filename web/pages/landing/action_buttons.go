package landing

import (
	"gosearch/models"

	"github.com/rohanthewiz/element"
)

// ActionButtons is the row under the social links.
//
// "Me siento con suerte" has no action. "Buscar con Google" sits outside the
// search form and always submits an empty query, ignoring the typed text.
type ActionButtons struct {
	Theme models.Theme
}

// Render implements element.Component
func (a ActionButtons) Render(b *element.Builder) (x any) {
	b.DivClass("flex justify-center mt-5").R(
		b.Button("type", "button", "id", "lucky-button",
			"class", classes("text-gray-700 font-medium mr-5", textClass(a.Theme), hoverGrow),
		).T("Me siento con suerte"),

		b.Form("method", "post", "action", "/search", "id", "secondary-search-form").R(
			b.Input("type", "hidden", "name", "q", "value", ""),
			b.Input("type", "hidden", "name", "source", "value", string(models.SourceSecondary)),
			b.Input("type", "hidden", "name", "theme", "value", a.Theme.String()),
			b.Button("type", "submit", "id", "secondary-search",
				"class", classes("text-gray-700 font-medium", textClass(a.Theme), hoverGrow),
			).T("Buscar con Google"),
		),
	)
	return
}
