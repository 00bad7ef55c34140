package api

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"gosearch/models"

	"github.com/rohanthewiz/logger"
	"github.com/rohanthewiz/rweb"
	"github.com/rohanthewiz/serr"
)

const searchTimeout = 5 * time.Second

// SearchInput is the JSON body of POST /api/v1/search
type SearchInput struct {
	Q      string `json:"q"`
	Source string `json:"source,omitempty"`
	Theme  string `json:"theme,omitempty"`
}

// Handlers groups the API endpoints that need the search collaborator
type Handlers struct {
	recorder *models.RecordingSearcher
}

// NewHandlers creates API handlers backed by recorder
func NewHandlers(recorder *models.RecordingSearcher) *Handlers {
	return &Handlers{recorder: recorder}
}

// Search handles POST /api/v1/search
// Runs one query through the searcher and returns its outcome.
//
// Headers:
//   - X-Body-Encoding: msgpack - return the outcome as Base64 msgpack in
//     data.outcome_encoded instead of plain JSON fields
//
// A secondary source always searches for the empty string, matching the
// action row button on the landing screen.
func (h *Handlers) Search(ctx rweb.Context) error {
	var input SearchInput

	if err := json.Unmarshal(ctx.Request().Body(), &input); err != nil {
		logger.LogErr(serr.Wrap(err, "failed to decode request body"), "invalid JSON")
		return writeError(ctx, http.StatusBadRequest, "invalid JSON body")
	}

	source := models.ParseSearchSource(input.Source)
	if source == models.SourceSecondary {
		input.Q = ""
	}
	q := models.NewSearchQuery(input.Q, source, models.ParseTheme(input.Theme))

	sctx, cancel := context.WithTimeout(context.Background(), searchTimeout)
	defer cancel()

	outcome, err := h.recorder.Search(sctx, q)
	if err != nil {
		logger.LogErr(serr.Wrap(err, "search failed"), "searcher error")
		return writeError(ctx, http.StatusBadGateway, "search failed")
	}

	if strings.EqualFold(ctx.Request().Header("X-Body-Encoding"), "msgpack") {
		resp, err := outcome.ToMsgPackResponse()
		if err != nil {
			logger.LogErr(err, "failed to encode outcome")
			return writeError(ctx, http.StatusInternalServerError, "failed to encode outcome")
		}
		return writeSuccess(ctx, http.StatusOK, resp)
	}

	return writeSuccess(ctx, http.StatusOK, outcome)
}

// RecentSearches handles GET /api/v1/searches
// Lists the queries this process has seen, oldest first.
func (h *Handlers) RecentSearches(ctx rweb.Context) error {
	recent := h.recorder.Recent()

	logger.Debug("Recent searches listed", "count", len(recent))
	return writeSuccess(ctx, http.StatusOK, recent)
}

// HealthCheck handles GET /health
func HealthCheck(ctx rweb.Context) error {
	return writeSuccess(ctx, http.StatusOK, map[string]string{"status": "ok"})
}
