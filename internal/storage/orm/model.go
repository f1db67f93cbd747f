package orm

import (
	"time"

	"github.com/tinoosan/employees/internal/hr"
)

// employeeModel maps the employees table. No gorm default on is_regular_employee:
// gorm skips zero values for defaulted columns, which would turn false into true.
type employeeModel struct {
	EmployeeID        int64     `gorm:"column:employee_id;primaryKey;autoIncrement"`
	FullName          string    `gorm:"column:full_name;not null"`
	Position          string    `gorm:"column:position;not null;index:employees_position_idx"`
	Language          string    `gorm:"column:language;not null"`
	SalaryGrade       int       `gorm:"column:salary_grade;not null"`
	IsRegularEmployee bool      `gorm:"column:is_regular_employee;not null"`
	CreatedAt         time.Time `gorm:"column:created_at;not null"`
}

func (employeeModel) TableName() string { return "employees" }

func toModel(e hr.Employee) employeeModel {
	return employeeModel{
		EmployeeID:        e.ID,
		FullName:          e.FullName,
		Position:          e.Position,
		Language:          e.Language,
		SalaryGrade:       e.SalaryGrade,
		IsRegularEmployee: e.IsRegularEmployee,
		CreatedAt:         e.CreatedAt,
	}
}

func (m employeeModel) domain() hr.Employee {
	return hr.Employee{
		ID:                m.EmployeeID,
		FullName:          m.FullName,
		Position:          m.Position,
		Language:          m.Language,
		SalaryGrade:       m.SalaryGrade,
		IsRegularEmployee: m.IsRegularEmployee,
		CreatedAt:         m.CreatedAt.UTC(),
	}
}

// patchColumns turns a patch into a column->value map so that only the
// present fields appear in the UPDATE statement.
func patchColumns(p hr.Patch) map[string]any {
	cols := make(map[string]any, len(hr.Fields))
	if p.FullName != nil {
		cols[hr.FieldName.Column()] = *p.FullName
	}
	if p.Position != nil {
		cols[hr.FieldPosition.Column()] = *p.Position
	}
	if p.Language != nil {
		cols[hr.FieldLanguage.Column()] = *p.Language
	}
	if p.SalaryGrade != nil {
		cols[hr.FieldSalaryGrade.Column()] = *p.SalaryGrade
	}
	if p.IsRegularEmployee != nil {
		cols[hr.FieldRegular.Column()] = *p.IsRegularEmployee
	}
	return cols
}
