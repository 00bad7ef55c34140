package landing

import (
	"html"

	"gosearch/models"

	"github.com/rohanthewiz/element"
)

const searchPlaceholder = "Buscar en Google o escribir una URL"

// SearchBar is the search form under the headings.
//
// Submitting posts the typed text to /search, which hands it to the Searcher
// exactly once and renders the page again with Value set to the same text.
// The input therefore behaves as a controlled field that is never cleared.
type SearchBar struct {
	Theme models.Theme
	Value string // current input text, echoed back after a submission
}

// Render implements element.Component
func (s SearchBar) Render(b *element.Builder) (x any) {
	b.DivClass("flex justify-center mt-10").R(
		b.Form("method", "post", "action", "/search", "id", "search-form").R(
			b.Input("type", "hidden", "name", "source", "value", string(models.SourceForm)),
			b.Input("type", "hidden", "name", "theme", "value", s.Theme.String()),
			b.Input("type", "text", "name", "q", "id", "search-input",
				"class", classes("border", borderClass(s.Theme), "rounded-full px-5 py-3 w-96 focus:outline-none", fieldClass(s.Theme)),
				"placeholder", searchPlaceholder,
				"aria-label", searchPlaceholder,
				"value", html.EscapeString(s.Value),
				"autocomplete", "off"),
			b.Button("type", "submit", "id", "search-submit",
				"class", classes("border", borderClass(s.Theme), "rounded-full px-5 py-3 ml-2", fieldClass(s.Theme), hoverGrow),
			).T("Buscar con Google"),
		),
	)
	return
}
