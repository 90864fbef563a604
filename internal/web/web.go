// Package web holds the public directory shipped with the binary.
package web

import (
	"embed"
	"io/fs"
	"os"
)

//go:embed public/*
var publicFS embed.FS

// Embedded returns the built-in copy of the public directory.
func Embedded() fs.FS {
	sub, err := fs.Sub(publicFS, "public")
	if err != nil {
		return publicFS
	}
	return sub
}

// Public returns dir as a file system when it exists, falling back to the
// embedded copy. The bool reports whether the fallback was used.
func Public(dir string) (fs.FS, bool) {
	if dir != "" {
		if info, err := os.Stat(dir); err == nil && info.IsDir() {
			return os.DirFS(dir), false
		}
	}
	return Embedded(), true
}
