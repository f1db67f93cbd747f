package postgres

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

var _ storetest.Store = (*Store)(nil)

var (
	_ employee.Repo                             = (*Store)(nil)
	_ employee.Writer                           = (*Store)(nil)
	_ interface{ Ready(context.Context) error } = (*Store)(nil)
)

func getTestDSN(t *testing.T) string {
	t.Helper()
	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL not set; skipping Postgres store tests")
	}
	return dsn
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

// openClean migrates the schema, empties the table and returns a store closed on cleanup.
func openClean(t *testing.T, dsn string) *Store {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := Migrate(ctx, dsn, testLogger()); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	s, err := Open(ctx, dsn, testLogger())
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	t.Cleanup(s.Close)
	if _, err := s.pool.Exec(ctx, `truncate table employees restart identity`); err != nil {
		t.Fatalf("truncate: %v", err)
	}
	return s
}

func TestStore_Behaviour(t *testing.T) {
	dsn := getTestDSN(t)
	storetest.Run(t, func(t *testing.T) storetest.Store { return openClean(t, dsn) })
}

func TestStore_SeedAndReady(t *testing.T) {
	dsn := getTestDSN(t)
	s := openClean(t, dsn)
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := s.Ready(ctx); err != nil {
		t.Fatalf("ready: %v", err)
	}
	seeded, err := s.SeedDev(ctx)
	if err != nil {
		t.Fatalf("seed: %v", err)
	}
	if len(seeded) != len(hr.SampleEmployees()) {
		t.Fatalf("expected %d seeded rows, got %d", len(hr.SampleEmployees()), len(seeded))
	}
	devs, err := s.ListEmployeesByPosition(ctx, "dev")
	if err != nil {
		t.Fatalf("list by position: %v", err)
	}
	if len(devs) != 1 || devs[0].FullName != "Jacob" {
		t.Fatalf("unexpected devs: %+v", devs)
	}
	if again, err := s.SeedDev(ctx); err != nil || len(again) != 0 {
		t.Fatalf("second seed: expected no rows, got %d (%v)", len(again), err)
	}
	// Migrating twice is a no-op.
	if err := Migrate(ctx, dsn, testLogger()); err != nil {
		t.Fatalf("second migrate: %v", err)
	}
}
