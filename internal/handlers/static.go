package handlers

import (
	"fmt"
	"net/http"
	"path"
)

// NewStaticHandler serves regular files from folder, "/" being index.html.
// Directories and missing files fail like any other request, with the
// 400 error envelope.
func NewStaticHandler(folder string) http.HandlerFunc {
	root := http.Dir(folder)

	return func(w http.ResponseWriter, r *http.Request) {
		name := path.Clean("/" + r.URL.Path)
		if name == "/" {
			name = "/index.html"
		}

		f, err := root.Open(name)
		if err != nil {
			writeError(w, r, fmt.Errorf("static %s: %w", name, err))
			return
		}
		defer f.Close()

		info, err := f.Stat()
		if err != nil {
			writeError(w, r, fmt.Errorf("static %s: %w", name, err))
			return
		}
		if info.IsDir() {
			writeError(w, r, fmt.Errorf("static %s: is a directory", name))
			return
		}

		http.ServeContent(w, r, info.Name(), info.ModTime(), f)
	}
}
