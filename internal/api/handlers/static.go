package handlers

import (
	"net/http"
	"os"
	"path/filepath"

	"github.com/baharkarakas/freelancer-backend/internal/api/httpx"
)

// StaticHandler serves the bundled front-end pages.
type StaticHandler struct {
	Dir string
}

func (h *StaticHandler) page(name string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		path := filepath.Join(h.Dir, name)
		if _, err := os.Stat(path); err != nil {
			httpx.WriteMessage(w, http.StatusNotFound, "Page not found.")
			return
		}
		http.ServeFile(w, r, path)
	}
}

func (h *StaticHandler) Index() http.HandlerFunc         { return h.page("Usersetup.html") }
func (h *StaticHandler) RoleSelection() http.HandlerFunc { return h.page("role-selection.html") }

func (h *StaticHandler) Files() http.Handler {
	return http.FileServer(http.Dir(h.Dir))
}

func Ping(w http.ResponseWriter, r *http.Request) {
	httpx.WriteMessage(w, http.StatusOK, "API is running!")
}

func DisplayData(w http.ResponseWriter, r *http.Request) {
	httpx.WriteMessage(w, http.StatusOK, "Hello from displaydata.js!")
}
