package server

import (
	"context"
	"errors"
	"fmt"
)

// Shutdown stops accepting requests, lets in-flight ones finish, shuts the
// modules down in reverse order and closes the bus.
func (s *Server) Shutdown(ctx context.Context) error {
	s.Logger.Info("Shutting down server")

	var errs []error
	if err := s.E.Shutdown(ctx); err != nil {
		errs = append(errs, fmt.Errorf("http server: %w", err))
	}
	for idx := len(s.modules) - 1; idx >= 0; idx-- {
		m := s.modules[idx]
		if err := m.Shutdown(ctx); err != nil {
			errs = append(errs, fmt.Errorf("module %s: %w", m.Name(), err))
		}
	}
	if err := s.Bus.Close(); err != nil {
		errs = append(errs, fmt.Errorf("bus: %w", err))
	}
	return errors.Join(errs...)
}
