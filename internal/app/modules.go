package app

import (
	"github.com/nfrund/goby-forms/internal/module"
	"github.com/nfrund/goby-forms/internal/modules/password"
	"github.com/nfrund/goby-forms/internal/modules/showmessage"
)

// NewModules creates and returns the list of all active modules for the application.
// This is the single source of truth for which pages are enabled.
func NewModules() []module.Module {
	return []module.Module{
		showmessage.New(),
		password.New(),
	}
}
