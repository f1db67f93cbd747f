package v1

import (
    "errors"
    "net/http"

    chi "github.com/go-chi/chi/v5"

    "github.com/tinoosan/employees/internal/errs"
    "github.com/tinoosan/employees/internal/hr"
    base "github.com/tinoosan/employees/internal/httpapi"
)

// updateEmployee handles PUT/PATCH /employees/{id}.
// Only the fields present in the body change; everything else is kept.
func (s *Server) updateEmployee(w http.ResponseWriter, r *http.Request) {
    id := employeeIDFrom(r.Context())
    e, err := s.svc.Update(r.Context(), id, patchFrom(r.Context()))
    s.writeUpdate(w, r, id, e, err)
}

// updateEmployeeField handles PUT /employees/{id}/{field}, e.g. /employees/3/salary-grade.
func (s *Server) updateEmployeeField(w http.ResponseWriter, r *http.Request) {
    f, ok := hr.ParseField(chi.URLParam(r, "field"))
    if !ok {
        base.BadRequest(w, "unknown field; expected one of name, position, language, salary-grade, regular")
        return
    }
    id := employeeIDFrom(r.Context())
    e, err := s.svc.UpdateField(r.Context(), id, f, patchFrom(r.Context()))
    s.writeUpdate(w, r, id, e, err)
}

func (s *Server) writeUpdate(w http.ResponseWriter, r *http.Request, id int64, e hr.Employee, err error) {
    observeOp("update", err)
    if err != nil {
        switch {
        case errors.Is(err, errs.ErrNotFound):
            employeeNotFound(w, id)
        case errors.Is(err, errs.ErrInvalid):
            writeServiceError(w, err)
        default:
            s.fail(w, r, "update", err, "unable to update employee")
        }
        return
    }
    base.JSON(w, http.StatusOK, dataResponse{Data: toEmployeeResponse(e)})
}
