package server

import (
	"github.com/nfrund/goby-forms/internal/handlers"
	"github.com/nfrund/goby-forms/internal/storage"
)

// RegisterRoutes sets up the routes that do not belong to a page module.
func (s *Server) RegisterRoutes() {
	s.E.GET("/health", handlers.HealthGet)
	s.E.GET("/stats", handlers.StatsGet(s.Recorder))

	// Serve static files from the configured directory or the embedded assets.
	s.E.StaticFS("/static", storage.AsIOFS(s.staticFS))
}
