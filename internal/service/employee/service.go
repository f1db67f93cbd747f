// Package employee implements the employee service rules: server-assigned
// identifiers, required descriptive fields on create, and partial updates
// that never touch fields the caller did not send.
package employee

import (
    "context"
    "fmt"
    "strings"

    "github.com/tinoosan/employees/internal/errs"
    "github.com/tinoosan/employees/internal/hr"
)

type Repo interface {
    ListEmployees(ctx context.Context) ([]hr.Employee, error)
    ListEmployeesByPosition(ctx context.Context, position string) ([]hr.Employee, error)
    GetEmployee(ctx context.Context, id int64) (hr.Employee, error)
}

type Writer interface {
    CreateEmployee(ctx context.Context, e hr.Employee) (hr.Employee, error)
    // UpdateEmployee applies p to the stored row in a single step and returns the result.
    UpdateEmployee(ctx context.Context, id int64, p hr.Patch) (hr.Employee, error)
    DeleteEmployee(ctx context.Context, id int64) error
}

type Service interface {
    ValidateCreate(e hr.Employee) error
    ValidatePatch(p hr.Patch) error
    Create(ctx context.Context, e hr.Employee) (hr.Employee, error)
    Get(ctx context.Context, id int64) (hr.Employee, error)
    List(ctx context.Context) ([]hr.Employee, error)
    ListByPosition(ctx context.Context, position string) ([]hr.Employee, error)
    Update(ctx context.Context, id int64, p hr.Patch) (hr.Employee, error)
    UpdateField(ctx context.Context, id int64, f hr.Field, p hr.Patch) (hr.Employee, error)
    Delete(ctx context.Context, id int64) error
}

type service struct {
    repo   Repo
    writer Writer
}

func New(repo Repo, writer Writer) Service { return &service{repo: repo, writer: writer} }

func invalid(format string, args ...any) error {
    return fmt.Errorf("%w: %s", errs.ErrInvalid, fmt.Sprintf(format, args...))
}

func (s *service) ValidateCreate(e hr.Employee) error {
    if e.ID != 0 {
        return invalid("employee_id is assigned by the server")
    }
    if strings.TrimSpace(e.FullName) == "" { return invalid("full_name is required") }
    if strings.TrimSpace(e.Position) == "" { return invalid("position is required") }
    if strings.TrimSpace(e.Language) == "" { return invalid("language is required") }
    if e.SalaryGrade < 0 { return invalid("salary_grade must be >= 0") }
    return nil
}

func (s *service) ValidatePatch(p hr.Patch) error {
    if p.FullName != nil && strings.TrimSpace(*p.FullName) == "" { return invalid("full_name must not be blank") }
    if p.Position != nil && strings.TrimSpace(*p.Position) == "" { return invalid("position must not be blank") }
    if p.Language != nil && strings.TrimSpace(*p.Language) == "" { return invalid("language must not be blank") }
    if p.SalaryGrade != nil && *p.SalaryGrade < 0 { return invalid("salary_grade must be >= 0") }
    return nil
}

// Create validates and persists a new employee; the store assigns the ID.
func (s *service) Create(ctx context.Context, e hr.Employee) (hr.Employee, error) {
    e.FullName = strings.TrimSpace(e.FullName)
    e.Position = strings.TrimSpace(e.Position)
    e.Language = strings.TrimSpace(e.Language)
    if err := s.ValidateCreate(e); err != nil {
        return hr.Employee{}, err
    }
    return s.writer.CreateEmployee(ctx, e)
}

func (s *service) Get(ctx context.Context, id int64) (hr.Employee, error) {
    if id <= 0 { return hr.Employee{}, errs.ErrNotFound }
    return s.repo.GetEmployee(ctx, id)
}

func (s *service) List(ctx context.Context) ([]hr.Employee, error) {
    return s.repo.ListEmployees(ctx)
}

func (s *service) ListByPosition(ctx context.Context, position string) ([]hr.Employee, error) {
    return s.repo.ListEmployeesByPosition(ctx, strings.TrimSpace(position))
}

// Update applies the present patch fields. An empty patch returns the current row.
func (s *service) Update(ctx context.Context, id int64, p hr.Patch) (hr.Employee, error) {
    if id <= 0 { return hr.Employee{}, errs.ErrNotFound }
    if err := s.ValidatePatch(p); err != nil {
        return hr.Employee{}, err
    }
    if p.Empty() {
        return s.repo.GetEmployee(ctx, id)
    }
    return s.writer.UpdateEmployee(ctx, id, trimPatch(p))
}

// UpdateField updates exactly one field; other fields present in p are ignored.
func (s *service) UpdateField(ctx context.Context, id int64, f hr.Field, p hr.Patch) (hr.Employee, error) {
    only := p.Only(f)
    if only.Empty() {
        return hr.Employee{}, invalid("%s is required", f.Column())
    }
    return s.Update(ctx, id, only)
}

func (s *service) Delete(ctx context.Context, id int64) error {
    if id <= 0 { return errs.ErrNotFound }
    return s.writer.DeleteEmployee(ctx, id)
}

func trimPatch(p hr.Patch) hr.Patch {
    trim := func(v *string) *string {
        if v == nil { return nil }
        t := strings.TrimSpace(*v)
        return &t
    }
    p.FullName = trim(p.FullName)
    p.Position = trim(p.Position)
    p.Language = trim(p.Language)
    return p
}
