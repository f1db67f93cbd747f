// Package memory provides a map-backed employee store used for development and tests.
package memory

import (
    "context"
    "sort"
    "sync"
    "time"

    "github.com/tinoosan/employees/internal/errs"
    "github.com/tinoosan/employees/internal/hr"
)

// Store is an in-memory implementation of the employee repo+writer.
// It is guarded by an RWMutex for concurrent reads/writes.
type Store struct {
    mu        sync.RWMutex
    employees map[int64]hr.Employee
    lastID    int64
    now       func() time.Time
}

// New constructs an empty in-memory store.
func New() *Store {
    return &Store{
        employees: make(map[int64]hr.Employee),
        now:       func() time.Time { return time.Now().UTC() },
    }
}

// Seed inserts employees as if created through the API and returns them with IDs.
func (s *Store) Seed(in ...hr.Employee) []hr.Employee {
    s.mu.Lock(); defer s.mu.Unlock()
    out := make([]hr.Employee, 0, len(in))
    for _, e := range in {
        out = append(out, s.insertLocked(e))
    }
    return out
}

// Reset drops every employee and restarts ID assignment.
func (s *Store) Reset() {
    s.mu.Lock()
    s.employees = map[int64]hr.Employee{}
    s.lastID = 0
    s.mu.Unlock()
}

// Ready always succeeds; the store has no external dependency.
func (s *Store) Ready(context.Context) error { return nil }

// ListEmployees returns all employees ordered by ID.
func (s *Store) ListEmployees(_ context.Context) ([]hr.Employee, error) {
    s.mu.RLock(); defer s.mu.RUnlock()
    return s.sortedLocked(func(hr.Employee) bool { return true }), nil
}

// ListEmployeesByPosition returns employees whose position matches exactly.
func (s *Store) ListEmployeesByPosition(_ context.Context, position string) ([]hr.Employee, error) {
    s.mu.RLock(); defer s.mu.RUnlock()
    return s.sortedLocked(func(e hr.Employee) bool { return e.Position == position }), nil
}

// GetEmployee returns a single employee by ID.
func (s *Store) GetEmployee(_ context.Context, id int64) (hr.Employee, error) {
    s.mu.RLock(); defer s.mu.RUnlock()
    e, ok := s.employees[id]
    if !ok { return hr.Employee{}, errs.ErrNotFound }
    return e, nil
}

// CreateEmployee assigns the next ID and stores a copy of e.
func (s *Store) CreateEmployee(_ context.Context, e hr.Employee) (hr.Employee, error) {
    s.mu.Lock(); defer s.mu.Unlock()
    return s.insertLocked(e), nil
}

// UpdateEmployee applies p under the write lock.
func (s *Store) UpdateEmployee(_ context.Context, id int64, p hr.Patch) (hr.Employee, error) {
    s.mu.Lock(); defer s.mu.Unlock()
    cur, ok := s.employees[id]
    if !ok { return hr.Employee{}, errs.ErrNotFound }
    cur = p.Apply(cur)
    s.employees[id] = cur
    return cur, nil
}

// DeleteEmployee removes an employee by ID.
func (s *Store) DeleteEmployee(_ context.Context, id int64) error {
    s.mu.Lock(); defer s.mu.Unlock()
    if _, ok := s.employees[id]; !ok { return errs.ErrNotFound }
    delete(s.employees, id)
    return nil
}

// insertLocked assigns an ID and stores e. Caller must hold s.mu (write lock).
func (s *Store) insertLocked(e hr.Employee) hr.Employee {
    s.lastID++
    e.ID = s.lastID
    if e.CreatedAt.IsZero() { e.CreatedAt = s.now() }
    s.employees[e.ID] = e
    return e
}

// sortedLocked returns matching employees asc by ID. Caller must hold s.mu.
func (s *Store) sortedLocked(keep func(hr.Employee) bool) []hr.Employee {
    out := make([]hr.Employee, 0, len(s.employees))
    for _, e := range s.employees {
        if keep(e) { out = append(out, e) }
    }
    sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
    return out
}
