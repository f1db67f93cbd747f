// Package v1 wires the HTTP surface of the employees service.
// It keeps handlers thin, delegating business rules to the service layer.
package v1

import (
    "log/slog"
    "net/http"

    chi "github.com/go-chi/chi/v5"

    "github.com/tinoosan/employees/internal/service/employee"
)

// Server wires handlers and middleware using Chi.
// It composes read (repo) and write (writer) dependencies through the service.
type Server struct {
    svc   employee.Service
    ready ReadyChecker
    log   *slog.Logger
    rt    *chi.Mux
}

// New constructs the HTTP server with routes and middleware.
// The logger is used by request logging, panic recovery and 500 diagnostics.
func New(repo employee.Repo, writer employee.Writer, logger *slog.Logger) *Server {
    r := chi.NewRouter()
    r.Use(requestID)
    r.Use(requestLogger(logger))
    r.Use(recoverer(logger))
    r.Use(metricsMiddleware)

    s := &Server{
        svc: employee.New(repo, writer),
        rt:  r,
        log: logger,
    }
    if rc, ok := any(repo).(ReadyChecker); ok {
        s.ready = rc
    }
    s.routes()
    return s
}

// Handler exposes the configured http.Handler.
func (s *Server) Handler() http.Handler { return s.rt }

// routes declares the public HTTP API endpoints and attaches any per-route middleware.
func (s *Server) routes() {
    s.rt.Get("/", s.root)

    s.rt.Route("/v1/employees", func(r chi.Router) {
        r.Get("/", s.listEmployees)
        r.With(s.validatePostEmployee()).Post("/", s.postEmployee)
        r.Route("/{id}", func(r chi.Router) {
            r.Use(s.withEmployeeID)
            r.Get("/", s.getEmployee)
            r.With(s.validatePatchEmployee()).Put("/", s.updateEmployee)
            r.With(s.validatePatchEmployee()).Patch("/", s.updateEmployee)
            r.With(s.validatePatchEmployee()).Put("/{field}", s.updateEmployeeField)
            r.Delete("/", s.deleteEmployee)
        })
    })

    // Unversioned aliases kept for older clients
    s.rt.Get("/get-employees", s.listEmployees)
    s.rt.With(s.withEmployeeID).Get("/get-employee/{id}", s.getEmployee)
    s.rt.Get("/get-by-position", s.listByPosition)
    s.rt.With(s.validatePostEmployee()).Post("/create-employee", s.postEmployee)
    s.rt.With(s.withEmployeeID, s.validatePatchEmployee()).Put("/update-employee/{field}/{id}", s.updateEmployeeField)
    s.rt.With(s.withEmployeeID).Delete("/delete-employee/{id}", s.deleteEmployee)

    // Health + metrics (unversioned)
    s.rt.Get("/healthz", s.healthz)
    s.rt.Get("/readyz", s.readyz)
    s.rt.Handle("/metrics", metricsHandler())
}
