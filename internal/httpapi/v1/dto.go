package v1

import (
    "time"

    "github.com/tinoosan/employees/internal/hr"
)

// createEmployeeRequest is the body of POST /employees. Pointers distinguish
// an explicit zero/false from a missing field.
type createEmployeeRequest struct {
    FullName          string `json:"full_name" validate:"required,max=200"`
    Position          string `json:"position" validate:"required,max=100"`
    Language          string `json:"language" validate:"required,max=100"`
    SalaryGrade       *int   `json:"salary_grade" validate:"required,gte=0"`
    IsRegularEmployee *bool  `json:"is_regular_employee" validate:"required"`
}

// updateEmployeeRequest is the body of PUT/PATCH /employees/{id}; every field is optional.
type updateEmployeeRequest struct {
    FullName          *string `json:"full_name" validate:"omitempty,min=1,max=200"`
    Position          *string `json:"position" validate:"omitempty,min=1,max=100"`
    Language          *string `json:"language" validate:"omitempty,min=1,max=100"`
    SalaryGrade       *int    `json:"salary_grade" validate:"omitempty,gte=0"`
    IsRegularEmployee *bool   `json:"is_regular_employee"`
}

type employeeResponse struct {
    ID                int64     `json:"employee_id"`
    FullName          string    `json:"full_name"`
    Position          string    `json:"position"`
    Language          string    `json:"language"`
    SalaryGrade       int       `json:"salary_grade"`
    IsRegularEmployee bool      `json:"is_regular_employee"`
    CreatedAt         time.Time `json:"created_at"`
}

// dataResponse wraps successful payloads as {"data": ...}.
type dataResponse struct {
    Data any `json:"data"`
}

type messageResponse struct {
    Message string `json:"message"`
}

func (req createEmployeeRequest) domain() hr.Employee {
    return hr.Employee{
        FullName:          req.FullName,
        Position:          req.Position,
        Language:          req.Language,
        SalaryGrade:       *req.SalaryGrade,
        IsRegularEmployee: *req.IsRegularEmployee,
    }
}

func (req updateEmployeeRequest) patch() hr.Patch {
    return hr.Patch{
        FullName:          req.FullName,
        Position:          req.Position,
        Language:          req.Language,
        SalaryGrade:       req.SalaryGrade,
        IsRegularEmployee: req.IsRegularEmployee,
    }
}

func toEmployeeResponse(e hr.Employee) employeeResponse {
    return employeeResponse{
        ID:                e.ID,
        FullName:          e.FullName,
        Position:          e.Position,
        Language:          e.Language,
        SalaryGrade:       e.SalaryGrade,
        IsRegularEmployee: e.IsRegularEmployee,
        CreatedAt:         e.CreatedAt,
    }
}

func toEmployeeResponses(in []hr.Employee) []employeeResponse {
    out := make([]employeeResponse, 0, len(in))
    for _, e := range in {
        out = append(out, toEmployeeResponse(e))
    }
    return out
}
