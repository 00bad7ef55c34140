package web

import (
	"gosearch/models"

	"github.com/rohanthewiz/logger"
	"github.com/rohanthewiz/rweb"
)

// NewServer creates and configures the RWeb server.
// Every search goes through searcher; a recorder in front of it keeps the
// recent queries for /api/v1/searches.
func NewServer(cfg *models.Config, searcher models.Searcher) *rweb.Server {
	if cfg == nil {
		cfg = models.DefaultConfig()
	}
	if searcher == nil {
		searcher = models.LogSearcher{}
	}

	s := rweb.NewServer(rweb.ServerOptions{
		Address: cfg.Address,
		Verbose: cfg.Verbose,
	})

	// Apply middleware
	s.Use(rweb.RequestInfo)                   // Logs request info
	s.Use(CorsMiddleware)                     // Custom CORS middleware
	s.Use(SessionMiddleware)                  // Anonymous session ids
	s.Use(SecurityHeadersMiddleware)          // Security headers
	s.Use(RateLimitMiddleware(cfg.RateLimit)) // Per-client throttling
	s.Use(LoggingMiddleware)                  // Request logging

	recorder := models.NewRecordingSearcher(searcher, cfg.RecentLimit)
	setupRoutes(s, recorder)

	// Serve static files using embedded FS
	SetupStaticFiles(s)

	return s
}

// Run starts the server
func Run(s *rweb.Server, cfg *models.Config) error {
	logger.Info("GoSearch Web Server starting on", "address", cfg.Address)
	return s.Run()
}
