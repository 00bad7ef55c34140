package models

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rohanthewiz/logger"
)

// SearchSource tells which control fired a search
type SearchSource string

const (
	// SourceForm is the search bar form: the typed text is submitted
	SourceForm SearchSource = "form"
	// SourceSecondary is the "Buscar con Google" button in the action row.
	// It always submits an empty query, whatever the input shows.
	SourceSecondary SearchSource = "secondary"
)

// ParseSearchSource maps a form value to a source, defaulting to the form
func ParseSearchSource(s string) SearchSource {
	if SearchSource(s) == SourceSecondary {
		return SourceSecondary
	}
	return SourceForm
}

// SearchQuery is a single submission handed to a Searcher.
// Text is kept exactly as typed: no trimming, validation or length limit.
type SearchQuery struct {
	ID     string       `json:"id" msgpack:"id"`
	Text   string       `json:"text" msgpack:"text"`
	Source SearchSource `json:"source" msgpack:"source"`
	Theme  string       `json:"theme" msgpack:"theme"`
	At     time.Time    `json:"at" msgpack:"at"`
}

// NewSearchQuery stamps a query with a fresh id and the current time
func NewSearchQuery(text string, source SearchSource, theme Theme) SearchQuery {
	return SearchQuery{
		ID:     uuid.New().String(),
		Text:   text,
		Source: source,
		Theme:  theme.String(),
		At:     time.Now().UTC(),
	}
}

// SearchOutcome is what a Searcher reports back for a query
type SearchOutcome struct {
	QueryID string `json:"query_id" msgpack:"query_id"`
	Query   string `json:"query" msgpack:"query"`
	Message string `json:"message" msgpack:"message"`
}

// Searcher executes a query. The landing screen treats it as fire-and-forget;
// the outcome is only surfaced by the JSON API.
type Searcher interface {
	Search(ctx context.Context, q SearchQuery) (SearchOutcome, error)
}

// SearcherFunc adapts a plain function to the Searcher interface
type SearcherFunc func(ctx context.Context, q SearchQuery) (SearchOutcome, error)

func (f SearcherFunc) Search(ctx context.Context, q SearchQuery) (SearchOutcome, error) {
	return f(ctx, q)
}

// LogSearcher is the stub collaborator: it logs the query and does nothing else.
// Swap in a real Searcher to make the screen functional.
type LogSearcher struct{}

func (LogSearcher) Search(_ context.Context, q SearchQuery) (SearchOutcome, error) {
	msg := SearchMessage(q.Text)
	logger.Info(msg, "query_id", q.ID, "source", string(q.Source), "theme", q.Theme)
	return SearchOutcome{QueryID: q.ID, Query: q.Text, Message: msg}, nil
}

// SearchMessage is the diagnostic line the stub emits for a query
func SearchMessage(text string) string {
	return fmt.Sprintf("Buscando por %s", text)
}
