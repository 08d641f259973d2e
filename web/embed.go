package web

import "embed"

// FS holds the static assets served under /static when no
// APP_STATIC_DIR override is configured.
//
//go:embed static/*
var FS embed.FS
