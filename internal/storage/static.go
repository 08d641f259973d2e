package storage

import (
	"fmt"
	"io/fs"

	"github.com/spf13/afero"
)

// StaticFS returns the read-only filesystem static assets are served from.
// A non-empty dir serves from disk; otherwise the "static" subtree of
// embedded is used.
func StaticFS(osFs afero.Fs, dir string, embedded fs.FS) (afero.Fs, error) {
	if dir != "" {
		info, err := osFs.Stat(dir)
		if err != nil {
			return nil, fmt.Errorf("static dir %q: %w", dir, err)
		}
		if !info.IsDir() {
			return nil, fmt.Errorf("static dir %q is not a directory", dir)
		}
		return afero.NewReadOnlyFs(afero.NewBasePathFs(osFs, dir)), nil
	}

	sub, err := fs.Sub(embedded, "static")
	if err != nil {
		return nil, fmt.Errorf("embedded static assets: %w", err)
	}
	return afero.FromIOFS{FS: sub}, nil
}

// AsIOFS exposes an afero filesystem as an io/fs.FS for http serving.
func AsIOFS(fsys afero.Fs) fs.FS {
	return afero.NewIOFS(fsys)
}
