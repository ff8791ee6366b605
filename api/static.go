package api

import (
	"net/http"
	"os"
	"path"
	"path/filepath"
	"strings"
)

// serveFile hands out a file from the web root. The requested path is
// canonicalized and checked against the root before any read, so neither
// ../ sequences nor symlinks can reach outside it.
func (s *Server) serveFile(w http.ResponseWriter, rel string) {
	clean := path.Clean("/" + rel)
	candidate := filepath.Join(s.webRoot, filepath.FromSlash(clean))

	resolved, err := filepath.EvalSymlinks(candidate)
	if err != nil {
		if os.IsNotExist(err) {
			http.Error(w, "Not Found", http.StatusNotFound)
		} else {
			http.Error(w, "Forbidden", http.StatusForbidden)
		}
		return
	}
	if resolved != s.webRoot && !strings.HasPrefix(resolved, s.webRoot+string(filepath.Separator)) {
		http.Error(w, "Forbidden", http.StatusForbidden)
		return
	}

	info, err := os.Stat(resolved)
	if err != nil || info.IsDir() {
		http.Error(w, "Not Found", http.StatusNotFound)
		return
	}

	body, err := os.ReadFile(resolved)
	if err != nil {
		http.Error(w, "Not Found", http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", contentTypeFor(resolved))
	w.WriteHeader(http.StatusOK)
	w.Write(body)
}

func contentTypeFor(name string) string {
	switch filepath.Ext(name) {
	case ".html":
		return "text/html; charset=utf-8"
	case ".css":
		return "text/css; charset=utf-8"
	case ".js":
		return "application/javascript; charset=utf-8"
	default:
		return "text/plain; charset=utf-8"
	}
}
