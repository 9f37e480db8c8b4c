package handlers

import (
	"net/http"
	"os"
	"path/filepath"

	"github.com/vysogota0399/bank_ledger/internal/config"
)

type RootHandler struct {
	staticDir string
}

func NewRootHandler(cfg *config.Config) *RootHandler {
	return &RootHandler{staticDir: cfg.StaticDir}
}

// ServeHTTP serves the dashboard page when the static dir carries one,
// otherwise a placeholder.
func (h *RootHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	index := filepath.Join(h.staticDir, "index.html")
	if _, err := os.Stat(index); err == nil {
		http.ServeFile(w, r, index)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("<h1>Dashboard not found. Please ensure static files are present.</h1>"))
}
