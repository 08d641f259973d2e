package server

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/sessions"
	"github.com/labstack/echo-contrib/session"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/samber/do/v2"
	"github.com/spf13/afero"

	"github.com/nfrund/goby-forms/internal/audit"
	"github.com/nfrund/goby-forms/internal/config"
	appmiddleware "github.com/nfrund/goby-forms/internal/middleware"
	"github.com/nfrund/goby-forms/internal/module"
	"github.com/nfrund/goby-forms/internal/pubsub"
	"github.com/nfrund/goby-forms/internal/rendering"
)

// Server holds the dependencies for the HTTP server.
type Server struct {
	E        *echo.Echo
	Cfg      config.Provider
	Logger   *slog.Logger
	Bus      *pubsub.WatermillBridge
	Recorder *audit.Recorder

	injector do.Injector
	modules  []module.Module
	staticFS afero.Fs
}

// New resolves the server's dependencies from the injector and configures
// Echo with the middleware chain shared by every page.
func New(i do.Injector, modules []module.Module) (*Server, error) {
	cfg, err := do.Invoke[config.Provider](i)
	if err != nil {
		return nil, fmt.Errorf("resolve config: %w", err)
	}
	logger, err := do.Invoke[*slog.Logger](i)
	if err != nil {
		return nil, fmt.Errorf("resolve logger: %w", err)
	}
	bus, err := do.Invoke[*pubsub.WatermillBridge](i)
	if err != nil {
		return nil, fmt.Errorf("resolve bus: %w", err)
	}
	recorder, err := do.Invoke[*audit.Recorder](i)
	if err != nil {
		return nil, fmt.Errorf("resolve audit recorder: %w", err)
	}
	renderer, err := do.Invoke[*rendering.UniversalRenderer](i)
	if err != nil {
		return nil, fmt.Errorf("resolve renderer: %w", err)
	}
	staticFS, err := do.Invoke[afero.Fs](i)
	if err != nil {
		return nil, fmt.Errorf("resolve static assets: %w", err)
	}

	e := echo.New()
	e.HideBanner = true
	e.Renderer = renderer

	e.Use(middleware.RequestIDWithConfig(middleware.RequestIDConfig{
		Generator: uuid.NewString,
	}))
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	// Must run after RequestID so the id is on the response header.
	e.Use(appmiddleware.Logger(logger))

	// Configure and use session middleware for flash messages.
	store := sessions.NewCookieStore([]byte(cfg.GetSessionSecret()))
	store.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   86400 * 7, // 7 days
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}
	e.Use(session.Middleware(store))

	// Needs the session middleware above for its deny flash.
	e.Use(appmiddleware.RateLimiter(cfg.GetPostRateLimit()))

	return &Server{
		E:        e,
		Cfg:      cfg,
		Logger:   logger,
		Bus:      bus,
		Recorder: recorder,
		injector: i,
		modules:  modules,
		staticFS: staticFS,
	}, nil
}

// InitModules runs the register phase for every module, then boots each one
// on the root route group.
func (s *Server) InitModules(ctx context.Context) error {
	for _, m := range s.modules {
		if err := m.Register(s.injector); err != nil {
			return fmt.Errorf("register module %s: %w", m.Name(), err)
		}
	}

	group := s.E.Group("")
	for _, m := range s.modules {
		if err := m.Boot(ctx, group, s.injector); err != nil {
			return fmt.Errorf("boot module %s: %w", m.Name(), err)
		}
		s.Logger.Debug("Module booted", "module", m.Name())
	}
	return nil
}
