// Package orm provides a gorm-backed employee store. The same model runs on
// Postgres (pgx underneath) or on a pure-Go SQLite build.
package orm

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/glebarez/sqlite"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/tinoosan/employees/internal/errs"
	"github.com/tinoosan/employees/internal/hr"
)

// Supported dialects.
const (
	DialectPostgres = "postgres"
	DialectSQLite   = "sqlite"
)

// Store wraps a gorm session. All methods are safe for concurrent use.
type Store struct {
	db *gorm.DB
}

// Open connects with the given dialect and migrates the employees table.
func Open(ctx context.Context, dialect, dsn string, log *slog.Logger) (*Store, error) {
	var d gorm.Dialector
	switch dialect {
	case DialectPostgres:
		d = postgres.Open(dsn)
	case DialectSQLite:
		d = sqlite.Open(dsn)
	default:
		return nil, fmt.Errorf("orm: unsupported dialect %q", dialect)
	}
	cfg := &gorm.Config{Logger: logger.Discard}
	if log != nil {
		cfg.Logger = logger.New(slogWriter{log}, logger.Config{
			SlowThreshold:             200 * time.Millisecond,
			LogLevel:                  logger.Warn,
			IgnoreRecordNotFoundError: true,
		})
	}
	db, err := gorm.Open(d, cfg)
	if err != nil {
		return nil, fmt.Errorf("orm: open %s: %w", dialect, err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	if dialect == DialectSQLite {
		// SQLite serializes writers; a single connection also keeps :memory: databases alive.
		sqlDB.SetMaxOpenConns(1)
	}
	if err := sqlDB.PingContext(ctx); err != nil {
		_ = sqlDB.Close()
		return nil, err
	}
	if err := db.WithContext(ctx).AutoMigrate(&employeeModel{}); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("orm: migrate: %w", err)
	}
	return &Store{db: db}, nil
}

// slogWriter adapts slog to gorm's Printf-style logger.
type slogWriter struct{ l *slog.Logger }

func (w slogWriter) Printf(format string, args ...any) {
	w.l.Warn("gorm: " + fmt.Sprintf(format, args...))
}

// Close releases the underlying connection pool.
func (s *Store) Close() {
	if sqlDB, err := s.db.DB(); err == nil {
		_ = sqlDB.Close()
	}
}

// Ready pings the database.
func (s *Store) Ready(ctx context.Context) error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}

// SeedDev inserts the sample employees in one batch. A table that already
// holds rows is left alone.
func (s *Store) SeedDev(ctx context.Context) ([]hr.Employee, error) {
	var n int64
	if err := s.db.WithContext(ctx).Model(&employeeModel{}).Count(&n).Error; err != nil {
		return nil, err
	}
	if n > 0 {
		return nil, nil
	}
	samples := hr.SampleEmployees()
	rows := make([]employeeModel, 0, len(samples))
	for _, e := range samples {
		rows = append(rows, toModel(e))
	}
	if err := s.db.WithContext(ctx).Create(&rows).Error; err != nil {
		return nil, err
	}
	return domainAll(rows), nil
}

func domainAll(rows []employeeModel) []hr.Employee {
	out := make([]hr.Employee, 0, len(rows))
	for _, m := range rows {
		out = append(out, m.domain())
	}
	return out
}

func notFound(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return errs.ErrNotFound
	}
	return err
}

// ListEmployees returns all employees ordered by id.
func (s *Store) ListEmployees(ctx context.Context) ([]hr.Employee, error) {
	var rows []employeeModel
	if err := s.db.WithContext(ctx).Order("employee_id asc").Find(&rows).Error; err != nil {
		return nil, err
	}
	return domainAll(rows), nil
}

// ListEmployeesByPosition returns employees with the given position.
func (s *Store) ListEmployeesByPosition(ctx context.Context, position string) ([]hr.Employee, error) {
	var rows []employeeModel
	err := s.db.WithContext(ctx).
		Where("position = ?", position).
		Order("employee_id asc").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return domainAll(rows), nil
}

// GetEmployee loads one employee by primary key.
func (s *Store) GetEmployee(ctx context.Context, id int64) (hr.Employee, error) {
	var m employeeModel
	if err := s.db.WithContext(ctx).First(&m, id).Error; err != nil {
		return hr.Employee{}, notFound(err)
	}
	return m.domain(), nil
}

// CreateEmployee inserts a row; the database assigns the id.
func (s *Store) CreateEmployee(ctx context.Context, e hr.Employee) (hr.Employee, error) {
	m := toModel(e)
	m.EmployeeID = 0
	if err := s.db.WithContext(ctx).Create(&m).Error; err != nil {
		return hr.Employee{}, err
	}
	return m.domain(), nil
}

// UpdateEmployee writes only the patch columns and re-reads the row, inside one transaction.
func (s *Store) UpdateEmployee(ctx context.Context, id int64, p hr.Patch) (hr.Employee, error) {
	var m employeeModel
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&m, id).Error; err != nil {
			return err
		}
		if cols := patchColumns(p); len(cols) > 0 {
			if err := tx.Model(&employeeModel{}).Where("employee_id = ?", id).Updates(cols).Error; err != nil {
				return err
			}
		}
		m = employeeModel{}
		return tx.First(&m, id).Error
	})
	if err != nil {
		return hr.Employee{}, notFound(err)
	}
	return m.domain(), nil
}

// DeleteEmployee removes a row by primary key.
func (s *Store) DeleteEmployee(ctx context.Context, id int64) error {
	res := s.db.WithContext(ctx).Delete(&employeeModel{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return errs.ErrNotFound
	}
	return nil
}
