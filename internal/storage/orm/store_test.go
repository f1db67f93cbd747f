package orm

import (
	"context"
	"io"
	"log/slog"
	"os"
	"testing"
	"time"

	"github.com/tinoosan/employees/internal/hr"
	"github.com/tinoosan/employees/internal/service/employee"
	"github.com/tinoosan/employees/internal/storage/storetest"
)

var (
	_ employee.Repo                             = (*Store)(nil)
	_ employee.Writer                           = (*Store)(nil)
	_ interface{ Ready(context.Context) error } = (*Store)(nil)
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

func openSQLite(t *testing.T) *Store {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	s, err := Open(ctx, DialectSQLite, ":memory:", testLogger())
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	t.Cleanup(s.Close)
	return s
}

func TestStore_SQLiteBehaviour(t *testing.T) {
	storetest.Run(t, func(t *testing.T) storetest.Store { return openSQLite(t) })
}

func TestStore_PostgresBehaviour(t *testing.T) {
	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL not set; skipping gorm Postgres tests")
	}
	storetest.Run(t, func(t *testing.T) storetest.Store {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		s, err := Open(ctx, DialectPostgres, dsn, testLogger())
		if err != nil {
			t.Fatalf("open postgres: %v", err)
		}
		t.Cleanup(s.Close)
		if err := s.db.Exec(`truncate table employees restart identity`).Error; err != nil {
			t.Fatalf("truncate: %v", err)
		}
		return s
	})
}

func TestOpen_UnknownDialect(t *testing.T) {
	if _, err := Open(context.Background(), "oracle", "x", nil); err == nil {
		t.Fatalf("expected error for unknown dialect")
	}
}

func TestStore_SeedDevAndReady(t *testing.T) {
	s := openSQLite(t)
	ctx := context.Background()
	if err := s.Ready(ctx); err != nil {
		t.Fatalf("ready: %v", err)
	}
	seeded, err := s.SeedDev(ctx)
	if err != nil {
		t.Fatalf("seed: %v", err)
	}
	if len(seeded) != len(hr.SampleEmployees()) {
		t.Fatalf("unexpected seed size %d", len(seeded))
	}
	for _, e := range seeded {
		if e.ID <= 0 {
			t.Fatalf("seeded row without id: %+v", e)
		}
	}
	jacob, err := s.GetEmployee(ctx, seeded[2].ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if jacob.IsRegularEmployee {
		t.Fatalf("expected jacob to stay non-regular")
	}

	again, err := s.SeedDev(ctx)
	if err != nil || len(again) != 0 {
		t.Fatalf("second seed: expected no rows, got %d (%v)", len(again), err)
	}
	all, _ := s.ListEmployees(ctx)
	if len(all) != len(hr.SampleEmployees()) {
		t.Fatalf("expected %d rows after reseed, got %d", len(hr.SampleEmployees()), len(all))
	}
}

func TestPatchColumns_OnlyPresentFields(t *testing.T) {
	grade := 0
	cols := patchColumns(hr.Patch{SalaryGrade: &grade})
	if len(cols) != 1 || cols["salary_grade"] != 0 {
		t.Fatalf("unexpected columns: %+v", cols)
	}
	if len(patchColumns(hr.Patch{})) != 0 {
		t.Fatalf("expected no columns for empty patch")
	}
}
