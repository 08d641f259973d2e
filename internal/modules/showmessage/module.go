package showmessage

import (
	"context"

	"github.com/labstack/echo/v4"
	"github.com/samber/do/v2"

	"github.com/nfrund/goby-forms/internal/config"
	"github.com/nfrund/goby-forms/internal/forms"
	"github.com/nfrund/goby-forms/internal/module"
	"github.com/nfrund/goby-forms/internal/pubsub"
)

// Module mounts the show-message page at / and /index.
type Module struct {
	module.BaseModule
}

// New creates the module.
func New() *Module {
	return &Module{}
}

func (m *Module) Name() string {
	return "showmessage"
}

// Register provides the page handler, built from the shared controller,
// publisher, and config.
func (m *Module) Register(i do.Injector) error {
	do.Provide(i, func(i do.Injector) (*Handler, error) {
		controller, err := do.Invoke[*forms.Controller](i)
		if err != nil {
			return nil, err
		}
		publisher, err := do.Invoke[pubsub.Publisher](i)
		if err != nil {
			return nil, err
		}
		cfg, err := do.Invoke[config.Provider](i)
		if err != nil {
			return nil, err
		}
		return NewHandler(controller, publisher, cfg.GetAppName()), nil
	})
	return nil
}

func (m *Module) Boot(ctx context.Context, group *echo.Group, i do.Injector) error {
	h, err := do.Invoke[*Handler](i)
	if err != nil {
		return err
	}
	group.GET("/", h.Get)
	group.GET("/index", h.Get)
	group.POST("/index", h.Post)
	return nil
}
