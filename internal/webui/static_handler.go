package webui

import (
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"strings"
)

// staticHandler serves the built map frontend from the configured web
// directory. Requests for paths without a file extension fall back to
// index.html so the frontend router can take over.
func (webUI *WebUI) staticHandler(w http.ResponseWriter, r *http.Request) {
	webDir := webUI.Config.WebDir
	if webDir == "" {
		http.NotFound(w, r)
		return
	}

	fileName := strings.TrimPrefix(filepath.Clean(r.URL.Path), "/")
	if fileName == "" || fileName == "." {
		fileName = "index.html"
	}

	ext := strings.ToLower(filepath.Ext(fileName))
	allowedExtensions := map[string]bool{
		".html": true, ".css": true, ".js": true, ".map": true,
		".json": true, ".png": true, ".jpg": true, ".jpeg": true,
		".svg": true, ".webp": true, ".ico": true, ".woff2": true,
	}
	if ext == "" {
		fileName = "index.html"
	} else if !allowedExtensions[ext] {
		http.Error(w, "File not found", http.StatusNotFound)
		return
	}

	filePath := filepath.Join(webDir, fileName)

	// Verify the resolved path is still within the web directory.
	absPath, err := filepath.Abs(filePath)
	if err != nil {
		http.Error(w, "Internal error", http.StatusInternalServerError)
		return
	}
	absWebDir, err := filepath.Abs(webDir)
	if err != nil {
		http.Error(w, "Internal configuration error", http.StatusInternalServerError)
		return
	}
	rel, err := filepath.Rel(absWebDir, absPath)
	if err != nil || strings.HasPrefix(rel, "..") {
		slog.Warn("potential path traversal attempt blocked", "path", absPath)
		http.Error(w, "File not found", http.StatusNotFound)
		return
	}

	stat, err := os.Stat(absPath)
	if err != nil || stat.IsDir() {
		http.Error(w, "File not found", http.StatusNotFound)
		return
	}

	http.ServeFile(w, r, absPath)
}
