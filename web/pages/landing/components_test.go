package landing

import (
	"strings"
	"testing"

	"gosearch/models"

	"github.com/rohanthewiz/element"
)

func render(c element.Component) string {
	b := element.NewBuilder()
	c.Render(b)
	return b.String()
}

func TestSearchBarEchoesValue(t *testing.T) {
	html := render(SearchBar{Theme: models.ThemeLight, Value: "cats"})

	if !strings.Contains(html, `value="cats"`) {
		t.Error("input should show the submitted text")
	}
	if !strings.Contains(html, `name="q"`) {
		t.Error("input should submit as q")
	}
	if !strings.Contains(html, `action="/search"`) || !strings.Contains(html, `method="post"`) {
		t.Error("form should post to /search")
	}
	if !strings.Contains(html, `value="form"`) {
		t.Error("form should mark its source")
	}
}

func TestSearchBarEscapesValue(t *testing.T) {
	html := render(SearchBar{Value: `"><script>alert(1)</script>`})

	if strings.Contains(html, "<script>") {
		t.Error("input value must be HTML-escaped")
	}
}

func TestSearchBarThemes(t *testing.T) {
	light := render(SearchBar{Theme: models.ThemeLight})
	dark := render(SearchBar{Theme: models.ThemeDark})

	if !strings.Contains(light, "border-gray-300") || !strings.Contains(light, "bg-white") {
		t.Error("light search bar should use light border and background")
	}
	if !strings.Contains(dark, "border-gray-600") || !strings.Contains(dark, "bg-gray-800 text-white") {
		t.Error("dark search bar should use dark border and background")
	}
	if !strings.Contains(dark, `value="dark"`) {
		t.Error("search form should carry the current theme")
	}
}

func TestSocialButtons(t *testing.T) {
	for _, link := range models.DefaultSocialLinks() {
		html := render(SocialButton{Link: link, Theme: models.ThemeLight})

		if !strings.Contains(html, `href="`+link.URL+`"`) {
			t.Errorf("%s button should link to %s", link.Name, link.URL)
		}
		if !strings.Contains(html, `target="_blank"`) {
			t.Errorf("%s button should open a new browsing context", link.Name)
		}
		if !strings.Contains(html, `rel="noopener noreferrer"`) {
			t.Errorf("%s button should set rel noopener noreferrer", link.Name)
		}
		if !strings.Contains(html, `<span class="sr-only">`+link.Name+`</span>`) {
			t.Errorf("%s button should carry a hidden accessible name", link.Name)
		}
		if !strings.Contains(html, "<svg") {
			t.Errorf("%s button should draw an icon", link.Name)
		}
	}
}

func TestSocialRowOrder(t *testing.T) {
	html := render(SocialRow{Links: models.DefaultSocialLinks(), Theme: models.ThemeDark})

	tw := strings.Index(html, "https://twitter.com/")
	ig := strings.Index(html, "https://www.instagram.com/deivid_gm25/")
	fb := strings.Index(html, "https://www.facebook.com/davicho.miranda.182/")
	if tw < 0 || ig < 0 || fb < 0 {
		t.Fatal("row should contain all three links")
	}
	if !(tw < ig && ig < fb) {
		t.Error("links should render Twitter, Instagram, Facebook in order")
	}
	if strings.Count(html, "border-gray-600 bg-gray-800 text-white") != 3 {
		t.Error("every dark social button should use the dark variant")
	}
}

// TestSecondarySearchIgnoresInput verifies the action row button never
// carries the text typed in the search bar
func TestSecondarySearchIgnoresInput(t *testing.T) {
	html := NewPage(models.ThemeLight, "cats").Render()

	start := strings.Index(html, `id="secondary-search-form"`)
	if start < 0 {
		t.Fatal("secondary search form missing")
	}
	end := strings.Index(html[start:], "</form>")
	if end < 0 {
		t.Fatal("secondary search form not closed")
	}
	form := html[start : start+end]

	if strings.Contains(form, "cats") {
		t.Error("secondary search should not submit the input text")
	}
	if !strings.Contains(form, `value="secondary"`) {
		t.Error("secondary search should mark its source")
	}

	// The search bar itself still shows the typed text
	if !strings.Contains(html, `value="cats"`) {
		t.Error("search input should keep the typed text")
	}
}

func TestThemeToggleCarriesFlippedTheme(t *testing.T) {
	light := render(ThemeToggle{Theme: models.ThemeLight})
	if !strings.Contains(light, `value="dark"`) || !strings.Contains(light, "Dark Mode") {
		t.Error("light toggle should submit dark")
	}

	dark := render(ThemeToggle{Theme: models.ThemeDark})
	if !strings.Contains(dark, `value="light"`) || !strings.Contains(dark, "Light Mode") {
		t.Error("dark toggle should submit light")
	}
}

func TestActionButtonsThemes(t *testing.T) {
	if strings.Contains(render(ActionButtons{Theme: models.ThemeLight}), "text-white") {
		t.Error("light action buttons should not be white")
	}
	if strings.Count(render(ActionButtons{Theme: models.ThemeDark}), "text-white") != 2 {
		t.Error("both dark action buttons should be white")
	}
}

func TestClasses(t *testing.T) {
	if got := classes("a", "", "  ", "b c"); got != "a b c" {
		t.Errorf("classes() = %q", got)
	}
}
