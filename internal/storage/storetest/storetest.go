// Package storetest holds the behavioural checks every employee store must pass.
// Store packages call Run from their own tests with a factory returning an empty store.
package storetest

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/tinoosan/employees/internal/errs"
	"github.com/tinoosan/employees/internal/hr"
	"github.com/tinoosan/employees/internal/service/employee"
)

// Store is the union of read and write operations exercised by the suite.
type Store interface {
	employee.Repo
	employee.Writer
}

// Run executes every check against a fresh store from newStore.
func Run(t *testing.T, newStore func(t *testing.T) Store) {
	t.Helper()
	t.Run("CreateThenGet", func(t *testing.T) { testCreateThenGet(t, newStore(t)) })
	t.Run("DeleteThenGet", func(t *testing.T) { testDeleteThenGet(t, newStore(t)) })
	t.Run("UpdateSingleField", func(t *testing.T) { testUpdateSingleField(t, newStore(t)) })
	t.Run("UpdateMissing", func(t *testing.T) { testUpdateMissing(t, newStore(t)) })
	t.Run("ListOrderAndPosition", func(t *testing.T) { testListOrderAndPosition(t, newStore(t)) })
}

func ctx(t *testing.T) context.Context {
	t.Helper()
	c, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	t.Cleanup(cancel)
	return c
}

// Same reports whether a and b carry identical field values, ignoring CreatedAt
// whose precision differs between backends.
func Same(a, b hr.Employee) bool {
	return a.ID == b.ID &&
		a.FullName == b.FullName &&
		a.Position == b.Position &&
		a.Language == b.Language &&
		a.SalaryGrade == b.SalaryGrade &&
		a.IsRegularEmployee == b.IsRegularEmployee
}

func mustCreate(t *testing.T, s Store, e hr.Employee) hr.Employee {
	t.Helper()
	created, err := s.CreateEmployee(ctx(t), e)
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if created.ID <= 0 {
		t.Fatalf("expected server-assigned id, got %d", created.ID)
	}
	return created
}

func testCreateThenGet(t *testing.T, s Store) {
	in := hr.Employee{FullName: "Ada Lovelace", Position: "dev", Language: "Go", SalaryGrade: 4, IsRegularEmployee: true}
	created := mustCreate(t, s, in)
	in.ID = created.ID
	if !Same(created, in) {
		t.Fatalf("create returned %+v, want %+v", created, in)
	}
	if created.CreatedAt.IsZero() {
		t.Fatalf("expected created_at to be set")
	}
	got, err := s.GetEmployee(ctx(t), created.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if !Same(got, created) {
		t.Fatalf("get returned %+v, want %+v", got, created)
	}
	second := mustCreate(t, s, hr.Employee{FullName: "Grace Hopper", Position: "dev", Language: "COBOL", SalaryGrade: 5})
	if second.ID <= created.ID {
		t.Fatalf("expected increasing ids, got %d after %d", second.ID, created.ID)
	}
	if second.IsRegularEmployee {
		t.Fatalf("expected false is_regular_employee to survive")
	}
}

func testDeleteThenGet(t *testing.T, s Store) {
	created := mustCreate(t, s, hr.Employee{FullName: "Temp", Position: "qa", Language: "Java", SalaryGrade: 1})
	if err := s.DeleteEmployee(ctx(t), created.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := s.GetEmployee(ctx(t), created.ID); !errors.Is(err, errs.ErrNotFound) {
		t.Fatalf("get after delete: expected ErrNotFound, got %v", err)
	}
	if err := s.DeleteEmployee(ctx(t), created.ID); !errors.Is(err, errs.ErrNotFound) {
		t.Fatalf("second delete: expected ErrNotFound, got %v", err)
	}
}

func testUpdateSingleField(t *testing.T, s Store) {
	created := mustCreate(t, s, hr.Employee{FullName: "Jacob", Position: "dev", Language: "Python", SalaryGrade: 2, IsRegularEmployee: true})
	lang := "Go"
	updated, err := s.UpdateEmployee(ctx(t), created.ID, hr.Patch{Language: &lang})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	want := created
	want.Language = "Go"
	if !Same(updated, want) {
		t.Fatalf("update returned %+v, want %+v", updated, want)
	}
	got, err := s.GetEmployee(ctx(t), created.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if !Same(got, want) {
		t.Fatalf("stored %+v, want %+v", got, want)
	}

	no := false
	updated, err = s.UpdateEmployee(ctx(t), created.ID, hr.Patch{IsRegularEmployee: &no})
	if err != nil {
		t.Fatalf("update regular: %v", err)
	}
	want.IsRegularEmployee = false
	if !Same(updated, want) {
		t.Fatalf("update regular returned %+v, want %+v", updated, want)
	}
}

func testUpdateMissing(t *testing.T, s Store) {
	name := "nobody"
	if _, err := s.UpdateEmployee(ctx(t), 987654, hr.Patch{FullName: &name}); !errors.Is(err, errs.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func testListOrderAndPosition(t *testing.T, s Store) {
	var ids []int64
	for _, e := range hr.SampleEmployees() {
		ids = append(ids, mustCreate(t, s, e).ID)
	}
	all, err := s.ListEmployees(ctx(t))
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(all) != len(ids) {
		t.Fatalf("expected %d employees, got %d", len(ids), len(all))
	}
	for i := range all {
		if all[i].ID != ids[i] {
			t.Fatalf("list not ordered by id: %+v", all)
		}
	}
	sm, err := s.ListEmployeesByPosition(ctx(t), "sm")
	if err != nil {
		t.Fatalf("list by position: %v", err)
	}
	if len(sm) != 2 {
		t.Fatalf("expected 2 scrum masters, got %d", len(sm))
	}
	for _, e := range sm {
		if e.Position != "sm" {
			t.Fatalf("unexpected position %q", e.Position)
		}
	}
	none, err := s.ListEmployeesByPosition(ctx(t), "ceo")
	if err != nil {
		t.Fatalf("list by position: %v", err)
	}
	if len(none) != 0 {
		t.Fatalf("expected no match, got %+v", none)
	}
}
