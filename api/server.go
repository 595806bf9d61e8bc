/*
server.go - HTTP router and middleware configuration

PURPOSE:
  Configures the HTTP router (chi), middleware stack, and route
  definitions. This is the wiring layer that connects URLs to handlers.

MIDDLEWARE STACK:
  1. Logger:     Request logging
  2. Recoverer:  Panic recovery (500 instead of crash)
  3. RequestID:  Unique ID per request for tracing
  4. CORS:       Cross-origin requests for the console frontend

ROUTE GROUPS:
  /api/departments/*       Department CRUD + cascading positions
  /api/positions/*         Position CRUD
  /api/levels/*            Level CRUD
  /api/employment-types/*  Employment type CRUD
  /api/schedules/*         Schedule CRUD + weekly summary
  /api/identifiers/*       Identifier preview
  /api/employees/*         Profile CRUD
  /api/seed, /api/reset    Demo data (dev only)

SECURITY NOTE:
  No authentication middleware currently. All endpoints are public;
  the console runs on an internal network behind its own auth proxy.

SEE ALSO:
  - handlers.go: Handler implementations
  - cmd/server/main.go: Server startup
*/
package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

// NewRouter creates a new router with all routes configured.
func NewRouter(h *Handler) *chi.Mux {
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.RequestID)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"http://localhost:5173", "http://localhost:8080"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: true,
	}))

	// API routes
	r.Route("/api", func(r chi.Router) {
		r.Route("/departments", func(r chi.Router) {
			r.Get("/", h.ListDepartments)
			r.Post("/", h.CreateDepartment)
			r.Get("/{id}", h.GetDepartment)
			r.Delete("/{id}", h.DeleteDepartment)
			r.Get("/{id}/positions", h.ListDepartmentPositions)
		})

		r.Route("/positions", func(r chi.Router) {
			r.Get("/", h.ListPositions)
			r.Post("/", h.CreatePosition)
			r.Get("/{id}", h.GetPosition)
			r.Delete("/{id}", h.DeletePosition)
		})

		r.Route("/levels", func(r chi.Router) {
			r.Get("/", h.ListLevels)
			r.Post("/", h.CreateLevel)
			r.Delete("/{id}", h.DeleteLevel)
		})

		r.Route("/employment-types", func(r chi.Router) {
			r.Get("/", h.ListEmploymentTypes)
			r.Post("/", h.CreateEmploymentType)
			r.Delete("/{id}", h.DeleteEmploymentType)
		})

		r.Route("/schedules", func(r chi.Router) {
			r.Get("/", h.ListWorkSchedules)
			r.Post("/", h.CreateWorkSchedule)
			r.Get("/{id}", h.GetWorkSchedule)
			r.Delete("/{id}", h.DeleteWorkSchedule)
			r.Get("/{id}/summary", h.GetScheduleSummary)
		})

		r.Route("/identifiers", func(r chi.Router) {
			r.Post("/preview", h.PreviewIdentifiers)
		})

		r.Route("/employees", func(r chi.Router) {
			r.Get("/", h.ListEmployees)
			r.Post("/", h.CreateEmployee)
			r.Get("/{id}", h.GetEmployee)
			r.Delete("/{id}", h.DeleteEmployee)
		})

		r.Post("/seed", h.LoadSeed)
		r.Post("/reset", h.ResetDatabase)
	})

	// The console frontend is deployed separately; the root just points
	// humans at the API.
	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		w.Write([]byte(`<!DOCTYPE html>
<html>
<head><title>Adidaya Directory Engine</title></head>
<body style="font-family: system-ui; max-width: 800px; margin: 50px auto; padding: 20px;">
<h1>Adidaya Directory Engine API</h1>
<ul>
<li><a href="/api/departments">/api/departments</a> - List departments</li>
<li><a href="/api/schedules">/api/schedules</a> - List work schedules</li>
<li><a href="/api/employees">/api/employees</a> - List employees</li>
</ul>
<p>POST /api/seed loads the demo directory.</p>
</body>
</html>`))
	})

	return r
}
