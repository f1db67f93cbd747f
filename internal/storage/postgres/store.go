// Package postgres provides a pgx-backed employee store that talks SQL to the
// driver directly, without an ORM in between.
//
// Every operation is a single statement. The schema lives in migrations/ and
// is applied by Migrate.
package postgres

import (
    "context"
    "errors"
    "log/slog"

    "github.com/jackc/pgx/v5"
    "github.com/jackc/pgx/v5/pgxpool"
    "github.com/jackc/pgx/v5/tracelog"

    "github.com/tinoosan/employees/internal/errs"
    "github.com/tinoosan/employees/internal/hr"
)

const employeeColumns = `employee_id, full_name, position, language, salary_grade, is_regular_employee, created_at`

// Store holds a pgx connection pool and implements the employee repo and writer.
// All methods are safe for concurrent use.
type Store struct {
    pool *pgxpool.Pool
}

// Open establishes a pgx pool using the provided connection string. When logger
// is non-nil, statements are traced at debug level.
func Open(ctx context.Context, dsn string, logger *slog.Logger) (*Store, error) {
    cfg, err := pgxpool.ParseConfig(dsn)
    if err != nil { return nil, err }
    if logger != nil {
        cfg.ConnConfig.Tracer = &tracelog.TraceLog{
            Logger:   slogTracer(logger),
            LogLevel: tracelog.LogLevelDebug,
        }
    }
    pool, err := pgxpool.NewWithConfig(ctx, cfg)
    if err != nil { return nil, err }
    // Verify connection
    if err := pool.Ping(ctx); err != nil { pool.Close(); return nil, err }
    return &Store{pool: pool}, nil
}

// slogTracer forwards pgx trace events to slog.
func slogTracer(l *slog.Logger) tracelog.Logger {
    return tracelog.LoggerFunc(func(ctx context.Context, level tracelog.LogLevel, msg string, data map[string]any) {
        attrs := make([]any, 0, len(data)*2)
        for k, v := range data {
            attrs = append(attrs, k, v)
        }
        lvl := slog.LevelDebug
        switch level {
        case tracelog.LogLevelError:
            lvl = slog.LevelError
        case tracelog.LogLevelWarn:
            lvl = slog.LevelWarn
        case tracelog.LogLevelInfo:
            lvl = slog.LevelInfo
        }
        l.Log(ctx, lvl, "pgx: "+msg, attrs...)
    })
}

// Close releases the underlying pool.
func (s *Store) Close() { if s.pool != nil { s.pool.Close() } }

// Ready pings the pool to verify connectivity.
func (s *Store) Ready(ctx context.Context) error { return s.pool.Ping(ctx) }

// SeedDev inserts the sample employees in one transaction. It does nothing
// when the table already holds rows, so restarts do not duplicate the samples.
func (s *Store) SeedDev(ctx context.Context) ([]hr.Employee, error) {
    tx, err := s.pool.Begin(ctx)
    if err != nil { return nil, err }
    defer func() { _ = tx.Rollback(ctx) }()
    var populated bool
    if err := tx.QueryRow(ctx, `select exists (select 1 from employees)`).Scan(&populated); err != nil {
        return nil, err
    }
    if populated { return nil, nil }
    out := make([]hr.Employee, 0, 3)
    for _, e := range hr.SampleEmployees() {
        created, err := insertEmployee(ctx, tx, e)
        if err != nil { return nil, err }
        out = append(out, created)
    }
    if err := tx.Commit(ctx); err != nil { return nil, err }
    return out, nil
}

type rowScanner interface {
    Scan(dest ...any) error
}

func scanEmployee(row rowScanner) (hr.Employee, error) {
    var e hr.Employee
    err := row.Scan(&e.ID, &e.FullName, &e.Position, &e.Language, &e.SalaryGrade, &e.IsRegularEmployee, &e.CreatedAt)
    if errors.Is(err, pgx.ErrNoRows) { return hr.Employee{}, errs.ErrNotFound }
    return e, err
}

func collectEmployees(rows pgx.Rows) ([]hr.Employee, error) {
    defer rows.Close()
    out := make([]hr.Employee, 0)
    for rows.Next() {
        e, err := scanEmployee(rows)
        if err != nil { return nil, err }
        out = append(out, e)
    }
    return out, rows.Err()
}

// --- Reads ---

// ListEmployees returns all employees ordered by id.
func (s *Store) ListEmployees(ctx context.Context) ([]hr.Employee, error) {
    rows, err := s.pool.Query(ctx, `select `+employeeColumns+` from employees order by employee_id asc`)
    if err != nil { return nil, err }
    return collectEmployees(rows)
}

// ListEmployeesByPosition returns employees with the given position.
func (s *Store) ListEmployeesByPosition(ctx context.Context, position string) ([]hr.Employee, error) {
    rows, err := s.pool.Query(ctx, `
        select `+employeeColumns+`
        from employees
        where position = $1
        order by employee_id asc
    `, position)
    if err != nil { return nil, err }
    return collectEmployees(rows)
}

// GetEmployee fetches a single employee by id.
func (s *Store) GetEmployee(ctx context.Context, id int64) (hr.Employee, error) {
    return scanEmployee(s.pool.QueryRow(ctx, `select `+employeeColumns+` from employees where employee_id = $1`, id))
}

// --- Writes ---

type querier interface {
    QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

func insertEmployee(ctx context.Context, q querier, e hr.Employee) (hr.Employee, error) {
    return scanEmployee(q.QueryRow(ctx, `
        insert into employees (full_name, position, language, salary_grade, is_regular_employee)
        values ($1,$2,$3,$4,$5)
        returning `+employeeColumns,
        e.FullName, e.Position, e.Language, e.SalaryGrade, e.IsRegularEmployee))
}

// CreateEmployee inserts a row and returns it with the database-assigned id.
func (s *Store) CreateEmployee(ctx context.Context, e hr.Employee) (hr.Employee, error) {
    return insertEmployee(ctx, s.pool, e)
}

// UpdateEmployee sets only the patch fields that are present; NULL parameters
// fall back to the current column value.
func (s *Store) UpdateEmployee(ctx context.Context, id int64, p hr.Patch) (hr.Employee, error) {
    return scanEmployee(s.pool.QueryRow(ctx, `
        update employees
        set full_name           = coalesce($1, full_name),
            position            = coalesce($2, position),
            language            = coalesce($3, language),
            salary_grade        = coalesce($4, salary_grade),
            is_regular_employee = coalesce($5, is_regular_employee)
        where employee_id = $6
        returning `+employeeColumns,
        p.FullName, p.Position, p.Language, p.SalaryGrade, p.IsRegularEmployee, id))
}

// DeleteEmployee removes a row by id.
func (s *Store) DeleteEmployee(ctx context.Context, id int64) error {
    ct, err := s.pool.Exec(ctx, `delete from employees where employee_id = $1`, id)
    if err != nil { return err }
    if ct.RowsAffected() == 0 { return errs.ErrNotFound }
    return nil
}
