package v1

import "github.com/tinoosan/employees/internal/storage/memory"

// Compile-time interface assertion for the in-memory store against the HTTP API interfaces.
var _ Store = (*memory.Store)(nil)
