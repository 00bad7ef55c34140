package web

import (
	"gosearch/models"
	"gosearch/web/api"

	"github.com/rohanthewiz/rweb"
)

// setupRoutes configures all application routes
func setupRoutes(s *rweb.Server, recorder *models.RecordingSearcher) {
	lh := landingHandlers{searcher: recorder}

	// Page routes - HTML responses
	s.Get("/", lh.Show)          // Landing screen, ?theme=dark for the dark variant
	s.Post("/search", lh.Search) // Search bar and secondary button submissions
	s.Post("/theme", lh.Toggle)  // Theme toggle

	// API v1 routes - JSON responses
	ah := api.NewHandlers(recorder)
	s.Post("/api/v1/search", ah.Search)          // Run a query, outcome in JSON or msgpack
	s.Get("/api/v1/searches", ah.RecentSearches) // Queries seen by this process

	// Health check endpoint
	s.Get("/health", api.HealthCheck)
}
