/*
server.go - HTTP router and middleware configuration

ROUTER: chi

MIDDLEWARE STACK:
  1. RequestID:  Unique ID per request, also attached to error logs
  2. Logger:     Request logging
  3. Recoverer:  Panic recovery (500 instead of crash)
  4. CORS:       Cross-origin requests from the web client

ROUTE GROUPS:
  /api/resignations/*     Resignation records
  /api/vacation-start-date
  /api/overview
  /api/holidays
  /healthz
  /*                      Static files (frontend)

STATIC FILE SERVING:
  Serves the built web client from web/dist/ when present and falls back to
  index.html for client-side routing.

SEE ALSO:
  - handlers.go: Handler implementations
  - cmd/server/main.go: Server startup
*/
package api

import (
	"net/http"
	"os"
	"path"
	"path/filepath"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

// NewRouter creates a new router with all routes configured.
func NewRouter(h *Handler, allowedOrigins []string) *chi.Mux {
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: allowedOrigins,
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
	}))

	r.Get("/healthz", h.Health)

	// API routes
	r.Route("/api", func(r chi.Router) {
		r.Route("/resignations", func(r chi.Router) {
			r.Post("/", h.CreateResignation)
			r.Get("/latest", h.GetLatestResignation)
		})

		r.Get("/vacation-start-date", h.GetVacationStartDate)
		r.Get("/overview", h.GetOverview)
		r.Get("/holidays", h.ListHolidays)
	})

	mountStatic(r, "./web/dist")

	return r
}

func mountStatic(r chi.Router, staticDir string) {
	if _, err := os.Stat(staticDir); os.IsNotExist(err) {
		// Try relative to executable
		exe, _ := os.Executable()
		staticDir = filepath.Join(filepath.Dir(exe), "web", "dist")
	}

	if _, err := os.Stat(staticDir); err != nil {
		r.Get("/", func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "text/html")
			w.Write([]byte(`<!DOCTYPE html>
<html>
<head><title>Leave Planner</title></head>
<body style="font-family: system-ui; max-width: 800px; margin: 50px auto; padding: 20px;">
<h1>Leave Planner API</h1>
<p>The web client is not built.</p>
<ul>
<li><a href="/api/overview">/api/overview</a> - Latest resignation and vacation start date</li>
<li><a href="/api/resignations/latest">/api/resignations/latest</a> - Latest resignation</li>
<li><a href="/api/holidays">/api/holidays</a> - Holiday calendar</li>
</ul>
</body>
</html>`))
		})
		return
	}

	fileServer := http.FileServer(http.Dir(staticDir))
	r.Get("/*", func(w http.ResponseWriter, r *http.Request) {
		fullPath := filepath.Join(staticDir, filepath.FromSlash(path.Clean("/"+r.URL.Path)))
		if _, err := os.Stat(fullPath); os.IsNotExist(err) {
			// SPA routing: serve index.html
			http.ServeFile(w, r, filepath.Join(staticDir, "index.html"))
			return
		}
		fileServer.ServeHTTP(w, r)
	})
}
