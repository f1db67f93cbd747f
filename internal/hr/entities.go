// Package hr holds the employee record and the partial-update type shared by
// every store and the HTTP layer.
package hr

import (
    "strings"
    "time"
)

// Employee is the single persisted record type.
type Employee struct {
    // ID is assigned by the store on create and never changes.
    ID                int64
    FullName          string
    Position          string
    Language          string
    SalaryGrade       int
    IsRegularEmployee bool
    CreatedAt         time.Time
}

// Patch describes a partial update. Nil fields are left untouched.
type Patch struct {
    FullName          *string
    Position          *string
    Language          *string
    SalaryGrade       *int
    IsRegularEmployee *bool
}

// Empty reports whether the patch carries no field at all.
func (p Patch) Empty() bool {
    return p.FullName == nil && p.Position == nil && p.Language == nil && p.SalaryGrade == nil && p.IsRegularEmployee == nil
}

// Apply returns e with the present patch fields copied over it.
func (p Patch) Apply(e Employee) Employee {
    if p.FullName != nil { e.FullName = *p.FullName }
    if p.Position != nil { e.Position = *p.Position }
    if p.Language != nil { e.Language = *p.Language }
    if p.SalaryGrade != nil { e.SalaryGrade = *p.SalaryGrade }
    if p.IsRegularEmployee != nil { e.IsRegularEmployee = *p.IsRegularEmployee }
    return e
}

// Only narrows the patch down to a single field.
func (p Patch) Only(f Field) Patch {
    var out Patch
    switch f {
    case FieldName:
        out.FullName = p.FullName
    case FieldPosition:
        out.Position = p.Position
    case FieldLanguage:
        out.Language = p.Language
    case FieldSalaryGrade:
        out.SalaryGrade = p.SalaryGrade
    case FieldRegular:
        out.IsRegularEmployee = p.IsRegularEmployee
    }
    return out
}

// Field names an individually updatable attribute, as used in
// /employees/{id}/{field} routes.
type Field string

const (
    FieldName        Field = "name"
    FieldPosition    Field = "position"
    FieldLanguage    Field = "language"
    FieldSalaryGrade Field = "salary-grade"
    FieldRegular     Field = "regular"
)

// Fields lists every updatable field in route order.
var Fields = []Field{FieldName, FieldPosition, FieldLanguage, FieldSalaryGrade, FieldRegular}

// ParseField resolves a route segment to a Field (case-insensitive).
func ParseField(s string) (Field, bool) {
    s = strings.ToLower(strings.TrimSpace(s))
    for _, f := range Fields {
        if string(f) == s {
            return f, true
        }
    }
    return "", false
}

// Column returns the JSON/SQL column backing the field.
func (f Field) Column() string {
    switch f {
    case FieldName:
        return "full_name"
    case FieldPosition:
        return "position"
    case FieldLanguage:
        return "language"
    case FieldSalaryGrade:
        return "salary_grade"
    case FieldRegular:
        return "is_regular_employee"
    }
    return ""
}
