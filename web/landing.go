package web

import (
	"context"
	"net/http"
	"net/url"
	"time"

	"gosearch/models"
	"gosearch/web/pages/landing"

	"github.com/rohanthewiz/logger"
	"github.com/rohanthewiz/rweb"
	"github.com/rohanthewiz/serr"
)

const searchTimeout = 5 * time.Second

// landingHandlers serves the landing screen and its two form posts
type landingHandlers struct {
	searcher models.Searcher
}

// Show handles GET /
func (h landingHandlers) Show(ctx rweb.Context) error {
	theme := models.ParseTheme(ctx.Request().QueryParam("theme"))
	return writePage(ctx, landing.NewPage(theme, ""))
}

// Search handles POST /search.
// The submitted text is handed to the searcher exactly once, then the page is
// rendered again with the same text in the input. The searcher is
// fire-and-forget here, so its errors are logged and the page still renders.
func (h landingHandlers) Search(ctx rweb.Context) error {
	form, err := parseForm(ctx)
	if err != nil {
		logger.LogErr(err, "invalid search form")
		ctx.SetStatus(http.StatusBadRequest)
		return ctx.WriteHTML("invalid form")
	}

	theme := models.ParseTheme(form.Get("theme"))
	source := models.ParseSearchSource(form.Get("source"))
	text := form.Get("q")
	if source == models.SourceSecondary {
		// The action row button never submits the typed text
		text = ""
	}

	q := models.NewSearchQuery(text, source, theme)

	sctx, cancel := context.WithTimeout(context.Background(), searchTimeout)
	defer cancel()

	if _, err := h.searcher.Search(sctx, q); err != nil {
		logger.LogErr(err, "search failed", "query_id", q.ID)
	}

	// The secondary button leaves whatever the user typed out of the round
	// trip, so the input comes back empty in that case.
	return writePage(ctx, landing.NewPage(theme, text))
}

// Toggle handles POST /theme.
// The form already carries the flipped theme; redirect so a reload does not
// resubmit the toggle.
func (h landingHandlers) Toggle(ctx rweb.Context) error {
	form, err := parseForm(ctx)
	if err != nil {
		logger.LogErr(err, "invalid theme form")
		ctx.SetStatus(http.StatusBadRequest)
		return ctx.WriteHTML("invalid form")
	}

	theme := models.ParseTheme(form.Get("theme"))
	logger.Debug("Theme toggled", "theme", theme.String())

	ctx.Response().SetHeader("Location", "/?theme="+url.QueryEscape(theme.String()))
	ctx.SetStatus(http.StatusSeeOther)
	return nil
}

func writePage(ctx rweb.Context, p landing.Page) error {
	ctx.Response().SetHeader("Content-Type", "text/html; charset=utf-8")
	ctx.Response().SetHeader("Cache-Control", "no-store")
	return ctx.WriteHTML(p.Render())
}

// parseForm decodes an application/x-www-form-urlencoded body
func parseForm(ctx rweb.Context) (url.Values, error) {
	values, err := url.ParseQuery(string(ctx.Request().Body()))
	if err != nil {
		return nil, serr.Wrap(err, "failed to parse form body")
	}
	return values, nil
}
