// Package modules contains the application's page features.
//
// Each subdirectory is a module that implements `module.Module`. Modules are
// listed in `internal/app/modules.go` and booted by the server at startup.
package modules
