package v1

import (
    "context"
    "errors"
    "net/http"
    "strconv"

    chi "github.com/go-chi/chi/v5"

    "github.com/tinoosan/employees/internal/errs"
    "github.com/tinoosan/employees/internal/hr"
    base "github.com/tinoosan/employees/internal/httpapi"
)

type ctxKey string

const (
    ctxKeyEmployeeID    ctxKey = "employeeID"
    ctxKeyPostEmployee  ctxKey = "validatedPostEmployee"
    ctxKeyPatchEmployee ctxKey = "validatedPatchEmployee"
)

// withEmployeeID parses the {id} route parameter and stores it in the request context.
func (s *Server) withEmployeeID(next http.Handler) http.Handler {
    return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
        id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
        if err != nil || id <= 0 {
            base.BadRequest(w, "invalid employee id")
            return
        }
        ctx := context.WithValue(r.Context(), ctxKeyEmployeeID, id)
        next.ServeHTTP(w, r.WithContext(ctx))
    })
}

func employeeIDFrom(ctx context.Context) int64 {
    id, _ := ctx.Value(ctxKeyEmployeeID).(int64)
    return id
}

// validatePostEmployee decodes and validates the POST /employees body and
// stores the resulting hr.Employee in the request context for the handler to use.
func (s *Server) validatePostEmployee() func(http.Handler) http.Handler {
    return func(next http.Handler) http.Handler {
        return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
            if !requireJSON(w, r) { return }
            var req createEmployeeRequest
            if err := base.DecodeJSON(w, r, &req); err != nil {
                base.BadRequest(w, "invalid JSON: "+err.Error())
                return
            }
            if fields := fieldErrors(req); fields != nil {
                base.Unprocessable(w, "validation failed", fields)
                return
            }
            e := req.domain()
            if err := s.svc.ValidateCreate(e); err != nil {
                writeServiceError(w, err)
                return
            }
            ctx := context.WithValue(r.Context(), ctxKeyPostEmployee, e)
            next.ServeHTTP(w, r.WithContext(ctx))
        })
    }
}

// validatePatchEmployee decodes and validates a partial update body and stores the hr.Patch.
func (s *Server) validatePatchEmployee() func(http.Handler) http.Handler {
    return func(next http.Handler) http.Handler {
        return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
            if !requireJSON(w, r) { return }
            var req updateEmployeeRequest
            if err := base.DecodeJSON(w, r, &req); err != nil {
                base.BadRequest(w, "invalid JSON: "+err.Error())
                return
            }
            if fields := fieldErrors(req); fields != nil {
                base.Unprocessable(w, "validation failed", fields)
                return
            }
            p := req.patch()
            if err := s.svc.ValidatePatch(p); err != nil {
                writeServiceError(w, err)
                return
            }
            ctx := context.WithValue(r.Context(), ctxKeyPatchEmployee, p)
            next.ServeHTTP(w, r.WithContext(ctx))
        })
    }
}

// writeServiceError maps the service sentinels that carry their own message.
// Callers handle ErrNotFound and unexpected errors themselves.
func writeServiceError(w http.ResponseWriter, err error) {
    if errors.Is(err, errs.ErrInvalid) {
        base.Unprocessable(w, err.Error(), nil)
        return
    }
    base.Internal(w, "internal error")
}

func patchFrom(ctx context.Context) hr.Patch {
    p, _ := ctx.Value(ctxKeyPatchEmployee).(hr.Patch)
    return p
}
