package models

import (
	"context"
	"errors"
	"fmt"
	"testing"
)

func TestNewSearchQueryKeepsTextVerbatim(t *testing.T) {
	for _, text := range []string{"cats", "", "  spaced  ", "<b>bold</b>"} {
		q := NewSearchQuery(text, SourceForm, ThemeDark)
		if q.Text != text {
			t.Errorf("text %q was altered to %q", text, q.Text)
		}
		if q.ID == "" {
			t.Error("query should carry an id")
		}
		if q.Theme != "dark" {
			t.Errorf("expected theme dark, got %q", q.Theme)
		}
		if q.At.IsZero() {
			t.Error("query should carry a timestamp")
		}
	}

	a := NewSearchQuery("x", SourceForm, ThemeLight)
	b := NewSearchQuery("x", SourceForm, ThemeLight)
	if a.ID == b.ID {
		t.Error("each query should get a distinct id")
	}
}

func TestParseSearchSource(t *testing.T) {
	if ParseSearchSource("secondary") != SourceSecondary {
		t.Error("secondary should parse as SourceSecondary")
	}
	for _, s := range []string{"", "form", "other"} {
		if ParseSearchSource(s) != SourceForm {
			t.Errorf("%q should default to SourceForm", s)
		}
	}
}

func TestLogSearcher(t *testing.T) {
	q := NewSearchQuery("cats", SourceForm, ThemeLight)

	outcome, err := LogSearcher{}.Search(context.Background(), q)
	if err != nil {
		t.Fatalf("LogSearcher should never fail: %v", err)
	}
	if outcome.Message != "Buscando por cats" {
		t.Errorf("unexpected message %q", outcome.Message)
	}
	if outcome.QueryID != q.ID || outcome.Query != "cats" {
		t.Errorf("outcome does not describe the query: %+v", outcome)
	}
}

func TestRecordingSearcherCountsEachCall(t *testing.T) {
	calls := 0
	next := SearcherFunc(func(_ context.Context, q SearchQuery) (SearchOutcome, error) {
		calls++
		return SearchOutcome{QueryID: q.ID, Query: q.Text, Message: "ok"}, nil
	})
	rec := NewRecordingSearcher(next, 0)

	if _, err := rec.Search(context.Background(), NewSearchQuery("cats", SourceForm, ThemeLight)); err != nil {
		t.Fatal(err)
	}
	if _, err := rec.Search(context.Background(), NewSearchQuery("", SourceSecondary, ThemeLight)); err != nil {
		t.Fatal(err)
	}

	if calls != 2 {
		t.Errorf("expected 2 delegated calls, got %d", calls)
	}
	recent := rec.Recent()
	if len(recent) != 2 {
		t.Fatalf("expected 2 recorded queries, got %d", len(recent))
	}
	if recent[0].Text != "cats" || recent[1].Text != "" {
		t.Errorf("unexpected recorded texts %q, %q", recent[0].Text, recent[1].Text)
	}
	if recent[1].Source != SourceSecondary {
		t.Errorf("expected secondary source, got %q", recent[1].Source)
	}
}

func TestRecordingSearcherBoundsHistory(t *testing.T) {
	rec := NewRecordingSearcher(nil, 3)
	for i := 0; i < 5; i++ {
		rec.Search(context.Background(), NewSearchQuery(fmt.Sprint(i), SourceForm, ThemeLight))
	}

	if rec.Count() != 3 {
		t.Fatalf("expected 3 retained, got %d", rec.Count())
	}
	recent := rec.Recent()
	if recent[0].Text != "2" || recent[2].Text != "4" {
		t.Errorf("expected the last three queries, got %q..%q", recent[0].Text, recent[2].Text)
	}
}

func TestRecordingSearcherPassesErrors(t *testing.T) {
	boom := errors.New("backend down")
	rec := NewRecordingSearcher(SearcherFunc(func(context.Context, SearchQuery) (SearchOutcome, error) {
		return SearchOutcome{}, boom
	}), 10)

	_, err := rec.Search(context.Background(), NewSearchQuery("cats", SourceForm, ThemeLight))
	if !errors.Is(err, boom) {
		t.Errorf("expected delegated error, got %v", err)
	}
	if rec.Count() != 1 {
		t.Error("failed queries should still be recorded")
	}
}
