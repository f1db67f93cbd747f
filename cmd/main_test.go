package main

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"path/filepath"
	"testing"

	"github.com/jaswdr/faker"

	"github.com/tinoosan/employees/internal/config"
	"github.com/tinoosan/employees/internal/service/employee"
	"github.com/tinoosan/employees/internal/storage/memory"
)

func TestParseLogLevel(t *testing.T) {
	cases := map[string]slog.Level{
		"debug":   slog.LevelDebug,
		" WARN ":  slog.LevelWarn,
		"error":   slog.LevelError,
		"":        slog.LevelInfo,
		"verbose": slog.LevelInfo,
	}
	for in, want := range cases {
		if got := parseLogLevel(in).Level(); got != want {
			t.Errorf("parseLogLevel(%q) = %v, want %v", in, got, want)
		}
	}
}

func TestSeedFake_CreatesValidEmployees(t *testing.T) {
	store := memory.New()
	created, err := seedFake(context.Background(), employee.New(store, store), faker.New(), 5)
	if err != nil {
		t.Fatalf("seed: %v", err)
	}
	if len(created) != 5 {
		t.Fatalf("expected 5 employees, got %d", len(created))
	}
	for i, e := range created {
		if e.ID != int64(i+1) || e.FullName == "" || e.Position == "" || e.Language == "" {
			t.Fatalf("unexpected employee %d: %+v", i, e)
		}
	}
	all, _ := store.ListEmployees(context.Background())
	if len(all) != 5 {
		t.Fatalf("expected 5 stored, got %d", len(all))
	}
}

func TestOpenBackend_MemorySeedsSamples(t *testing.T) {
	cfg := config.Default()
	b, err := openBackend(context.Background(), &cfg, slog.Default())
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer b.close()
	seeded, err := b.seedDev(context.Background())
	if err != nil || len(seeded) != 3 {
		t.Fatalf("seedDev: %v %d", err, len(seeded))
	}
}

func TestRootCmd_FlagsOverrideConfig(t *testing.T) {
	root := newRootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs([]string{"seed", "--count", "2", "--store", "memory", "--log-level", "error"})
	if err := root.ExecuteContext(context.Background()); err != nil {
		t.Fatalf("execute: %v (%s)", err, out.String())
	}
	if !bytes.Contains(out.Bytes(), []byte("seeded 2 employees")) {
		t.Fatalf("unexpected output: %s", out.String())
	}
}

func TestOpenBackend_FileDSNSeedsOnce(t *testing.T) {
	cfg := config.Default()
	cfg.Store = config.StoreORM
	cfg.ORMDSN = "file:" + filepath.Join(t.TempDir(), "employees.db")
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	for restart := 1; restart <= 2; restart++ {
		b, err := openBackend(context.Background(), &cfg, logger)
		if err != nil {
			t.Fatalf("restart %d: open: %v", restart, err)
		}
		if _, err := b.seedDev(context.Background()); err != nil {
			t.Fatalf("restart %d: seed: %v", restart, err)
		}
		all, err := b.store.ListEmployees(context.Background())
		b.close()
		if err != nil {
			t.Fatalf("restart %d: list: %v", restart, err)
		}
		if len(all) != 3 {
			t.Fatalf("restart %d: expected 3 rows, got %d", restart, len(all))
		}
	}
}

func TestRootCmd_NormalizesFlagValues(t *testing.T) {
	root := newRootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs([]string{"seed", "--count", "1", "--store", "MEMORY", "--log-level", "error"})
	if err := root.ExecuteContext(context.Background()); err != nil {
		t.Fatalf("execute: %v (%s)", err, out.String())
	}
}

func TestRootCmd_RejectsInvalidStore(t *testing.T) {
	root := newRootCmd()
	root.SetOut(&bytes.Buffer{})
	root.SetErr(&bytes.Buffer{})
	root.SetArgs([]string{"seed", "--store", "redis"})
	if err := root.ExecuteContext(context.Background()); err == nil {
		t.Fatalf("expected validation error")
	}
}
