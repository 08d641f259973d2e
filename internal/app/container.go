package app

import (
	"log/slog"

	"github.com/samber/do/v2"
	"github.com/spf13/afero"

	"github.com/nfrund/goby-forms/internal/audit"
	"github.com/nfrund/goby-forms/internal/config"
	"github.com/nfrund/goby-forms/internal/forms"
	"github.com/nfrund/goby-forms/internal/pubsub"
	"github.com/nfrund/goby-forms/internal/rendering"
	"github.com/nfrund/goby-forms/internal/storage"
	"github.com/nfrund/goby-forms/web"
)

// NewInjector wires the core services shared by the server and the modules.
// Services are built lazily on first Invoke.
func NewInjector(cfg config.Provider, logger *slog.Logger) do.Injector {
	i := do.New()

	do.ProvideValue(i, cfg)
	do.ProvideValue(i, logger)

	do.Provide(i, func(i do.Injector) (*forms.Controller, error) {
		logger, err := do.Invoke[*slog.Logger](i)
		if err != nil {
			return nil, err
		}
		return forms.NewController(logger), nil
	})

	// One in-memory bus serves as both publisher and subscriber.
	do.Provide(i, func(do.Injector) (*pubsub.WatermillBridge, error) {
		return pubsub.NewWatermillBridge(), nil
	})
	do.Provide(i, func(i do.Injector) (pubsub.Publisher, error) {
		bus, err := do.Invoke[*pubsub.WatermillBridge](i)
		if err != nil {
			return nil, err
		}
		return bus, nil
	})
	do.Provide(i, func(i do.Injector) (pubsub.Subscriber, error) {
		bus, err := do.Invoke[*pubsub.WatermillBridge](i)
		if err != nil {
			return nil, err
		}
		return bus, nil
	})

	do.Provide(i, func(i do.Injector) (*audit.Recorder, error) {
		logger, err := do.Invoke[*slog.Logger](i)
		if err != nil {
			return nil, err
		}
		return audit.NewRecorder(logger), nil
	})

	do.Provide(i, func(do.Injector) (*rendering.UniversalRenderer, error) {
		return rendering.NewUniversalRenderer(), nil
	})

	do.Provide(i, func(i do.Injector) (afero.Fs, error) {
		cfg, err := do.Invoke[config.Provider](i)
		if err != nil {
			return nil, err
		}
		return storage.StaticFS(afero.NewOsFs(), cfg.GetStaticDir(), web.FS)
	})

	return i
}
