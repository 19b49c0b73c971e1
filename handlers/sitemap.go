package handlers

import (
	"net/http"
	"sort"

	"github.com/go-chi/chi/v5"
)

type routeEntry struct {
	Method string `json:"method"`
	Path   string `json:"path"`
}

// Sitemap returns a handler that lists every registered route as JSON, a
// development aid at GET /.
func Sitemap(router chi.Router) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var routes []routeEntry
		walker := func(method, route string, handler http.Handler, middlewares ...func(http.Handler) http.Handler) error {
			routes = append(routes, routeEntry{Method: method, Path: route})
			return nil
		}
		if err := chi.Walk(router, walker); err != nil {
			writeAPIError(w, http.StatusInternalServerError, "failed to walk routes")
			return
		}
		sort.Slice(routes, func(i, j int) bool {
			if routes[i].Path != routes[j].Path {
				return routes[i].Path < routes[j].Path
			}
			return routes[i].Method < routes[j].Method
		})
		writeJSON(w, http.StatusOK, routes)
	}
}
