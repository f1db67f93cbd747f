package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/tinoosan/employees/internal/config"
	"github.com/tinoosan/employees/internal/hr"
	httpapi "github.com/tinoosan/employees/internal/httpapi/v1"
	"github.com/tinoosan/employees/internal/storage/memory"
	"github.com/tinoosan/employees/internal/storage/orm"
	pgstore "github.com/tinoosan/employees/internal/storage/postgres"
)

// backend is an opened store plus the lifecycle hooks the commands need.
type backend struct {
	name    string
	store   httpapi.Store
	seedDev func(ctx context.Context) ([]hr.Employee, error)
	close   func()
}

func openBackend(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*backend, error) {
	switch cfg.Store {
	case config.StorePostgres:
		if cfg.MigrateOnStart {
			if err := pgstore.Migrate(ctx, cfg.DatabaseURL, logger); err != nil {
				return nil, err
			}
		}
		pg, err := pgstore.Open(ctx, cfg.DatabaseURL, logger)
		if err != nil {
			return nil, fmt.Errorf("connect to postgres: %w", err)
		}
		return &backend{name: "postgres", store: pg, seedDev: pg.SeedDev, close: pg.Close}, nil
	case config.StoreORM:
		db, err := orm.Open(ctx, cfg.ORMDialect, cfg.ORMDSN, logger)
		if err != nil {
			return nil, err
		}
		return &backend{name: "orm/" + cfg.ORMDialect, store: db, seedDev: db.SeedDev, close: db.Close}, nil
	default:
		store := memory.New()
		return &backend{
			name:  "memory",
			store: store,
			seedDev: func(context.Context) ([]hr.Employee, error) {
				return store.Seed(hr.SampleEmployees()...), nil
			},
			close: func() {},
		}, nil
	}
}

// logDevSeed logs the ids of freshly seeded rows.
func logDevSeed(l *slog.Logger, backend string, seeded []hr.Employee) {
	if len(seeded) == 0 {
		l.Info("DEV seed ("+backend+") skipped: store already has employees")
		return
	}
	ids := make([]int64, 0, len(seeded))
	for _, e := range seeded {
		ids = append(ids, e.ID)
	}
	l.Info("DEV seed ("+backend+")", "employee_ids", ids)
}
