package v1

import (
    "errors"
    "fmt"
    "net/http"

    "github.com/tinoosan/employees/internal/errs"
    "github.com/tinoosan/employees/internal/hr"
    base "github.com/tinoosan/employees/internal/httpapi"
)

func employeeNotFound(w http.ResponseWriter, id int64) {
    base.NotFound(w, fmt.Sprintf("Employee with employee ID %d was not found", id))
}

// fail logs an unexpected store error and answers with a generic message.
func (s *Server) fail(w http.ResponseWriter, r *http.Request, op string, err error, msg string) {
    s.log.Error("employee operation failed", "req_id", requestIDFrom(r.Context()), "op", op, "err", err)
    base.Internal(w, msg)
}

// listEmployees handles GET /employees. A position query parameter narrows the result.
func (s *Server) listEmployees(w http.ResponseWriter, r *http.Request) {
    if r.URL.Query().Has("position") {
        s.listByPosition(w, r)
        return
    }
    list, err := s.svc.List(r.Context())
    observeOp("list", err)
    if err != nil {
        s.fail(w, r, "list", err, "unable to list employees")
        return
    }
    base.JSON(w, http.StatusOK, dataResponse{Data: toEmployeeResponses(list)})
}

// listByPosition answers 404 when no employee holds the position.
func (s *Server) listByPosition(w http.ResponseWriter, r *http.Request) {
    position := r.URL.Query().Get("position")
    list, err := s.svc.ListByPosition(r.Context(), position)
    observeOp("list_by_position", err)
    if err != nil {
        s.fail(w, r, "list_by_position", err, "unable to list employees")
        return
    }
    if len(list) == 0 {
        base.NotFound(w, fmt.Sprintf("Employees with position %s was not found", position))
        return
    }
    base.JSON(w, http.StatusOK, dataResponse{Data: toEmployeeResponses(list)})
}

// getEmployee handles GET /employees/{id}.
func (s *Server) getEmployee(w http.ResponseWriter, r *http.Request) {
    id := employeeIDFrom(r.Context())
    e, err := s.svc.Get(r.Context(), id)
    observeOp("get", err)
    if err != nil {
        if errors.Is(err, errs.ErrNotFound) { employeeNotFound(w, id); return }
        s.fail(w, r, "get", err, "unable to load employee")
        return
    }
    base.JSON(w, http.StatusOK, dataResponse{Data: toEmployeeResponse(e)})
}

// postEmployee handles POST /employees using the body validated by validatePostEmployee.
func (s *Server) postEmployee(w http.ResponseWriter, r *http.Request) {
    in, _ := r.Context().Value(ctxKeyPostEmployee).(hr.Employee)
    created, err := s.svc.Create(r.Context(), in)
    observeOp("create", err)
    if err != nil {
        if errors.Is(err, errs.ErrInvalid) { writeServiceError(w, err); return }
        s.fail(w, r, "create", err, "unable to create employee")
        return
    }
    w.Header().Set("Location", fmt.Sprintf("/v1/employees/%d", created.ID))
    base.JSON(w, http.StatusCreated, dataResponse{Data: toEmployeeResponse(created)})
}

// deleteEmployee handles DELETE /employees/{id}.
func (s *Server) deleteEmployee(w http.ResponseWriter, r *http.Request) {
    id := employeeIDFrom(r.Context())
    err := s.svc.Delete(r.Context(), id)
    observeOp("delete", err)
    if err != nil {
        if errors.Is(err, errs.ErrNotFound) { employeeNotFound(w, id); return }
        s.fail(w, r, "delete", err, "unable to delete employee")
        return
    }
    w.WriteHeader(http.StatusNoContent)
}
