package handler

import (
	"io/fs"
	"net/http"
	"path"
	"strings"
)

const (
	ViewerPage   = "index.html"
	UploaderPage = "upload.html"
)

// PageHandler serves one named file of the public directory.
func PageHandler(public fs.FS, name string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !isFile(public, name) {
			NotFoundHandler(w, r)
			return
		}
		http.ServeFileFS(w, r, public, name)
	}
}

// StaticHandler serves files of the public directory by request path.
// Directories resolve to their index.html and are never listed.
func StaticHandler(public fs.FS) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		name := strings.TrimPrefix(path.Clean("/"+r.URL.Path), "/")
		if name == "" {
			name = "."
		}

		info, err := fs.Stat(public, name)
		if err != nil {
			NotFoundHandler(w, r)
			return
		}
		if info.IsDir() {
			name = path.Join(name, "index.html")
			if !isFile(public, name) {
				NotFoundHandler(w, r)
				return
			}
		}

		http.ServeFileFS(w, r, public, name)
	}
}

func NotFoundHandler(w http.ResponseWriter, r *http.Request) {
	http.Error(w, "Page not found", http.StatusNotFound)
}

func isFile(fsys fs.FS, name string) bool {
	info, err := fs.Stat(fsys, name)
	return err == nil && !info.IsDir()
}
