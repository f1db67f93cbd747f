package v1

import (
    "context"

    "github.com/tinoosan/employees/internal/service/employee"
)

// ReadyChecker is optionally implemented by stores to indicate readiness.
type ReadyChecker interface {
    Ready(ctx context.Context) error
}

// Store is a convenience union satisfied by every storage backend.
type Store interface {
    employee.Repo
    employee.Writer
    ReadyChecker
}
