package landing

import (
	"gosearch/models"

	"github.com/rohanthewiz/element"
)

const (
	defaultTitle = "Google"
	heading      = "Bienvenido a Google"
	subheading   = "Busca en la web o explora tus sitios favoritos"
)

// Page is the root view of the landing screen.
// It owns the theme for the request and passes it, read-only, to every child.
type Page struct {
	Title string
	Theme models.Theme
	Query string // text to show in the search input
	Links []models.SocialLink
}

// NewPage creates the landing page for a theme and input text
func NewPage(theme models.Theme, query string) Page {
	return Page{
		Title: defaultTitle,
		Theme: theme,
		Query: query,
		Links: models.DefaultSocialLinks(),
	}
}

// Render generates the complete HTML document
func (p Page) Render() string {
	b := element.NewBuilder()

	b.Html("lang", "es").R(
		p.renderHead(b),
		p.renderBody(b),
	)

	return b.String()
}

func (p Page) renderHead(b *element.Builder) any {
	return b.Head().R(
		b.Meta("charset", "UTF-8"),
		b.Meta("name", "viewport", "content", "width=device-width, initial-scale=1.0"),
		b.Title().T(p.Title),
		b.Link("rel", "stylesheet", "href", "/static/css/landing.css?v=1"),
	)
}

func (p Page) renderBody(b *element.Builder) any {
	t := p.Theme

	return b.Body("data-theme", t.String()).R(
		b.Div("id", "landing",
			"class", classes("flex justify-center items-center h-screen",
				t.Pick("bg-gradient-to-r from-blue-400 to-purple-500", "bg-gray-900"), fadeIn),
		).R(
			b.DivClass("flex flex-col items-center").R(
				b.Div("id", "logo",
					"class", classes("text-blue-600 text-9xl mb-10", t.Pick("text-gray-700", "text-white"), hoverGrow),
				).R(b.T(svgGoogle)),

				b.H1("class", classes("font-bold text-gray-700 text-5xl mb-5", textClass(t), hoverGrow)).T(heading),
				b.P("class", classes("font-medium text-gray-700 text-lg", textClass(t), hoverGrow)).T(subheading),

				element.RenderComponents(b,
					SearchBar{Theme: t, Value: p.Query},
					SocialRow{Links: p.Links, Theme: t},
					ActionButtons{Theme: t},
					ThemeToggle{Theme: t},
				),
			),
		),
	)
}
