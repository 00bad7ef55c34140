package landing

import (
	"gosearch/models"

	"github.com/rohanthewiz/element"
)

// SocialButton renders one external profile link with a visually hidden name
type SocialButton struct {
	Link  models.SocialLink
	Theme models.Theme
}

// Render implements element.Component
func (s SocialButton) Render(b *element.Builder) (x any) {
	b.A("href", s.Link.URL, "target", "_blank", "rel", "noopener noreferrer",
		"class", classes("flex items-center justify-center border", chipClass(s.Theme), "rounded-full w-12 h-12 m-2", hoverGrowLg),
	).R(
		b.T(iconSVG(s.Link.Icon)),
		b.SpanClass("sr-only").T(s.Link.Name),
	)
	return
}

// SocialRow lays out the social buttons side by side
type SocialRow struct {
	Links []models.SocialLink
	Theme models.Theme
}

func (s SocialRow) Render(b *element.Builder) (x any) {
	b.DivClass("flex justify-center mt-5").R(
		b.Wrap(func() {
			for _, link := range s.Links {
				element.RenderComponents(b, SocialButton{Link: link, Theme: s.Theme})
			}
		}),
	)
	return
}
