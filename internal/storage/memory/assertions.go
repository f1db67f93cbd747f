package memory

import "github.com/tinoosan/employees/internal/service/employee"

// Compile-time interface assertions documenting which interfaces Store satisfies.
var (
	_ employee.Repo   = (*Store)(nil)
	_ employee.Writer = (*Store)(nil)
)
