package password

import (
	"context"

	"github.com/labstack/echo/v4"
	"github.com/samber/do/v2"

	"github.com/nfrund/goby-forms/internal/config"
	"github.com/nfrund/goby-forms/internal/forms"
	"github.com/nfrund/goby-forms/internal/module"
	"github.com/nfrund/goby-forms/internal/pubsub"
)

// Module mounts the password page at /password.
type Module struct {
	module.BaseModule
}

// New creates the module.
func New() *Module {
	return &Module{}
}

func (m *Module) Name() string {
	return "password"
}

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
	group.GET("/password", h.Get)
	group.POST("/password", h.Post)
	return nil
}
