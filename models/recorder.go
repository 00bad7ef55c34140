package models

import (
	"context"
	"sync"
)

// DefaultRecentLimit bounds how many queries a RecordingSearcher keeps
const DefaultRecentLimit = 50

// RecordingSearcher remembers the most recent queries before delegating.
// It backs the diagnostic listing of the API and gives tests a way to
// assert how many times, and with what text, the callback fired.
type RecordingSearcher struct {
	next  Searcher
	limit int

	mu      sync.Mutex
	queries []SearchQuery
}

// NewRecordingSearcher wraps next. A nil next records without logging; a limit <= 0
// falls back to DefaultRecentLimit.
func NewRecordingSearcher(next Searcher, limit int) *RecordingSearcher {
	if limit <= 0 {
		limit = DefaultRecentLimit
	}
	return &RecordingSearcher{next: next, limit: limit}
}

func (r *RecordingSearcher) Search(ctx context.Context, q SearchQuery) (SearchOutcome, error) {
	r.mu.Lock()
	r.queries = append(r.queries, q)
	if over := len(r.queries) - r.limit; over > 0 {
		r.queries = append(r.queries[:0:0], r.queries[over:]...)
	}
	r.mu.Unlock()

	if r.next == nil {
		return SearchOutcome{QueryID: q.ID, Query: q.Text, Message: SearchMessage(q.Text)}, nil
	}
	return r.next.Search(ctx, q)
}

// Recent returns a copy of the recorded queries, oldest first
func (r *RecordingSearcher) Recent() []SearchQuery {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]SearchQuery, len(r.queries))
	copy(out, r.queries)
	return out
}

// Count is the number of queries currently retained
func (r *RecordingSearcher) Count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.queries)
}
