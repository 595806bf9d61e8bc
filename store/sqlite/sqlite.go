/*
Package sqlite provides SQLite-backed persistence for the directory.

PURPOSE:
  Stores the organizational reference data (departments, positions,
  levels, employment types, work schedules) and the employee profiles
  that reference them. The derivation engines never touch this package:
  identifiers and schedule summaries are recomputed from snapshots and
  only the values the operator explicitly saved land in the employees
  table, verbatim.

KEY TABLES:
  departments:       cluster codes + hyphenated display codes
  positions:         belong to exactly one department
  levels:            numeric rank + roman form
  employment_types:  inclusive [min, max] level bands
  work_schedules:    type, default times, days config as a JSON column
  employees:         profiles with persisted id_number / id_code

SNAPSHOTS:
  Snapshot(ctx) loads the whole directory into a directory.Snapshot -
  the immutable lookup tables the engines consume. Handlers build one
  per request; nothing is cached between requests.

CONCURRENCY:
  Uses sync.RWMutex for thread-safety. In production with PostgreSQL,
  database-level concurrency control handles this instead.

WAL MODE:
  SQLite is opened with WAL (Write-Ahead Logging) for better concurrency.

USAGE:
  store, err := sqlite.New("./data/directory.db")   // or ":memory:"
  if err != nil {
      log.Fatal(err)
  }
  defer store.Close()

  snap, err := store.Snapshot(ctx)

MIGRATION:
  Schema is auto-migrated on New(). For production, use a proper
  migration tool (golang-migrate, goose) with versioned migrations.

SEE ALSO:
  - directory/snapshot.go: The lookup tables built from here
  - api/handlers.go: The HTTP layer over this store
*/
package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/adidayastudio/directory-engine/directory"
	"github.com/adidayastudio/directory-engine/identity"
	"github.com/adidayastudio/directory-engine/schedule"
)

// Store persists the directory and employee profiles.
type Store struct {
	db *sql.DB
	mu sync.RWMutex
}

// New creates a store backed by the given database path. Use ":memory:"
// for an in-memory database.
func New(dbPath string) (*Store, error) {
	db, err := sql.Open("sqlite3", dbPath+"?_foreign_keys=on&_journal_mode=WAL")
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	store := &Store{db: db}
	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	return store, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// migrate creates the database schema.
func (s *Store) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS departments (
		id TEXT PRIMARY KEY,
		name TEXT NOT NULL,
		code TEXT NOT NULL,
		cluster_code TEXT NOT NULL,
		created_at TEXT NOT NULL
	);

	CREATE TABLE IF NOT EXISTS positions (
		id TEXT PRIMARY KEY,
		department_id TEXT NOT NULL,
		name TEXT NOT NULL,
		code TEXT NOT NULL,
		category_code TEXT NOT NULL,
		created_at TEXT NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_positions_department
		ON positions(department_id);

	CREATE TABLE IF NOT EXISTS levels (
		id TEXT PRIMARY KEY,
		name TEXT NOT NULL,
		level_code INTEGER NOT NULL,
		roman_code TEXT NOT NULL,
		created_at TEXT NOT NULL
	);

	CREATE TABLE IF NOT EXISTS employment_types (
		id TEXT PRIMARY KEY,
		name TEXT NOT NULL,
		min_level_code INTEGER NOT NULL,
		max_level_code INTEGER NOT NULL,
		created_at TEXT NOT NULL
	);

	CREATE TABLE IF NOT EXISTS work_schedules (
		id TEXT PRIMARY KEY,
		name TEXT NOT NULL,
		type TEXT NOT NULL,
		start_time TEXT,
		end_time TEXT,
		break_minutes INTEGER,
		days_json TEXT,
		created_at TEXT NOT NULL
	);

	CREATE TABLE IF NOT EXISTS employees (
		id TEXT PRIMARY KEY,
		name TEXT NOT NULL,
		email TEXT NOT NULL,
		department_id TEXT,
		position_id TEXT,
		level_id TEXT,
		employment_type_id TEXT,
		work_schedule_id TEXT,
		join_date TEXT,
		sequence TEXT NOT NULL,
		id_number TEXT NOT NULL,
		id_code TEXT NOT NULL,
		active INTEGER NOT NULL DEFAULT 1,
		created_at TEXT NOT NULL
	);

	-- Sequence uniqueness holds across ACTIVE employees only; a freed
	-- sequence may be reissued after deactivation.
	CREATE UNIQUE INDEX IF NOT EXISTS idx_employees_active_sequence
		ON employees(sequence) WHERE active = 1;

	CREATE INDEX IF NOT EXISTS idx_employees_department
		ON employees(department_id);
	`

	_, err := s.db.Exec(schema)
	return err
}

// =============================================================================
// DEPARTMENTS
// =============================================================================

func (s *Store) SaveDepartment(ctx context.Context, d identity.Department) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	query := `
		INSERT INTO departments (id, name, code, cluster_code, created_at)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			name = excluded.name,
			code = excluded.code,
			cluster_code = excluded.cluster_code
	`
	_, err := s.db.ExecContext(ctx, query,
		d.ID, d.Name, d.Code, d.ClusterCode, now())
	return err
}

func (s *Store) GetDepartment(ctx context.Context, id string) (*identity.Department, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var d identity.Department
	err := s.db.QueryRowContext(ctx,
		"SELECT id, name, code, cluster_code FROM departments WHERE id = ?", id,
	).Scan(&d.ID, &d.Name, &d.Code, &d.ClusterCode)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &d, nil
}

func (s *Store) ListDepartments(ctx context.Context) ([]identity.Department, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.listDepartmentsLocked(ctx)
}

func (s *Store) listDepartmentsLocked(ctx context.Context) ([]identity.Department, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT id, name, code, cluster_code FROM departments ORDER BY name")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []identity.Department
	for rows.Next() {
		var d identity.Department
		if err := rows.Scan(&d.ID, &d.Name, &d.Code, &d.ClusterCode); err != nil {
			return nil, err
		}
		out = append(out, d)
	}
	return out, rows.Err()
}

func (s *Store) DeleteDepartment(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, err := s.db.ExecContext(ctx, "DELETE FROM departments WHERE id = ?", id)
	return err
}

// =============================================================================
// POSITIONS
// =============================================================================

func (s *Store) SavePosition(ctx context.Context, p identity.Position) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	query := `
		INSERT INTO positions (id, department_id, name, code, category_code, created_at)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			department_id = excluded.department_id,
			name = excluded.name,
			code = excluded.code,
			category_code = excluded.category_code
	`
	_, err := s.db.ExecContext(ctx, query,
		p.ID, p.DepartmentID, p.Name, p.Code, p.CategoryCode, now())
	return err
}

func (s *Store) GetPosition(ctx context.Context, id string) (*identity.Position, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var p identity.Position
	err := s.db.QueryRowContext(ctx,
		"SELECT id, department_id, name, code, category_code FROM positions WHERE id = ?", id,
	).Scan(&p.ID, &p.DepartmentID, &p.Name, &p.Code, &p.CategoryCode)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (s *Store) ListPositions(ctx context.Context) ([]identity.Position, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.queryPositions(ctx,
		"SELECT id, department_id, name, code, category_code FROM positions ORDER BY name")
}

func (s *Store) ListPositionsByDepartment(ctx context.Context, departmentID string) ([]identity.Position, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.queryPositions(ctx,
		"SELECT id, department_id, name, code, category_code FROM positions WHERE department_id = ? ORDER BY name",
		departmentID)
}

func (s *Store) queryPositions(ctx context.Context, query string, args ...any) ([]identity.Position, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []identity.Position
	for rows.Next() {
		var p identity.Position
		if err := rows.Scan(&p.ID, &p.DepartmentID, &p.Name, &p.Code, &p.CategoryCode); err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

func (s *Store) DeletePosition(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, err := s.db.ExecContext(ctx, "DELETE FROM positions WHERE id = ?", id)
	return err
}

// =============================================================================
// LEVELS
// =============================================================================

func (s *Store) SaveLevel(ctx context.Context, l identity.Level) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	query := `
		INSERT INTO levels (id, name, level_code, roman_code, created_at)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			name = excluded.name,
			level_code = excluded.level_code,
			roman_code = excluded.roman_code
	`
	_, err := s.db.ExecContext(ctx, query,
		l.ID, l.Name, l.LevelCode, l.RomanCode, now())
	return err
}

func (s *Store) GetLevel(ctx context.Context, id string) (*identity.Level, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var l identity.Level
	err := s.db.QueryRowContext(ctx,
		"SELECT id, name, level_code, roman_code FROM levels WHERE id = ?", id,
	).Scan(&l.ID, &l.Name, &l.LevelCode, &l.RomanCode)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &l, nil
}

func (s *Store) ListLevels(ctx context.Context) ([]identity.Level, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.listLevelsLocked(ctx)
}

func (s *Store) listLevelsLocked(ctx context.Context) ([]identity.Level, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT id, name, level_code, roman_code FROM levels ORDER BY level_code")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []identity.Level
	for rows.Next() {
		var l identity.Level
		if err := rows.Scan(&l.ID, &l.Name, &l.LevelCode, &l.RomanCode); err != nil {
			return nil, err
		}
		out = append(out, l)
	}
	return out, rows.Err()
}

func (s *Store) DeleteLevel(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, err := s.db.ExecContext(ctx, "DELETE FROM levels WHERE id = ?", id)
	return err
}

// =============================================================================
// EMPLOYMENT TYPES
// =============================================================================

func (s *Store) SaveEmploymentType(ctx context.Context, et directory.EmploymentType) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	query := `
		INSERT INTO employment_types (id, name, min_level_code, max_level_code, created_at)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			name = excluded.name,
			min_level_code = excluded.min_level_code,
			max_level_code = excluded.max_level_code
	`
	_, err := s.db.ExecContext(ctx, query,
		et.ID, et.Name, et.MinLevelCode, et.MaxLevelCode, now())
	return err
}

func (s *Store) GetEmploymentType(ctx context.Context, id string) (*directory.EmploymentType, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var et directory.EmploymentType
	err := s.db.QueryRowContext(ctx,
		"SELECT id, name, min_level_code, max_level_code FROM employment_types WHERE id = ?", id,
	).Scan(&et.ID, &et.Name, &et.MinLevelCode, &et.MaxLevelCode)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &et, nil
}

func (s *Store) ListEmploymentTypes(ctx context.Context) ([]directory.EmploymentType, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.listEmploymentTypesLocked(ctx)
}

func (s *Store) listEmploymentTypesLocked(ctx context.Context) ([]directory.EmploymentType, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT id, name, min_level_code, max_level_code FROM employment_types ORDER BY name")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []directory.EmploymentType
	for rows.Next() {
		var et directory.EmploymentType
		if err := rows.Scan(&et.ID, &et.Name, &et.MinLevelCode, &et.MaxLevelCode); err != nil {
			return nil, err
		}
		out = append(out, et)
	}
	return out, rows.Err()
}

func (s *Store) DeleteEmploymentType(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, err := s.db.ExecContext(ctx, "DELETE FROM employment_types WHERE id = ?", id)
	return err
}

// =============================================================================
// WORK SCHEDULES
// =============================================================================

func (s *Store) SaveWorkSchedule(ctx context.Context, ws schedule.WorkSchedule) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	daysJSON, err := json.Marshal(ws.Days)
	if err != nil {
		return fmt.Errorf("failed to encode days config: %w", err)
	}

	var breakMinutes any
	if ws.BreakMinutes != nil {
		breakMinutes = *ws.BreakMinutes
	}

	query := `
		INSERT INTO work_schedules (id, name, type, start_time, end_time, break_minutes, days_json, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			name = excluded.name,
			type = excluded.type,
			start_time = excluded.start_time,
			end_time = excluded.end_time,
			break_minutes = excluded.break_minutes,
			days_json = excluded.days_json
	`
	_, err = s.db.ExecContext(ctx, query,
		ws.ID, ws.Name, string(ws.Type), ws.StartTime, ws.EndTime,
		breakMinutes, string(daysJSON), now())
	return err
}

func (s *Store) GetWorkSchedule(ctx context.Context, id string) (*schedule.WorkSchedule, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	row := s.db.QueryRowContext(ctx,
		"SELECT id, name, type, start_time, end_time, break_minutes, days_json FROM work_schedules WHERE id = ?",
		id)
	ws, err := scanWorkSchedule(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return ws, nil
}

func (s *Store) ListWorkSchedules(ctx context.Context) ([]schedule.WorkSchedule, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.listWorkSchedulesLocked(ctx)
}

func (s *Store) listWorkSchedulesLocked(ctx context.Context) ([]schedule.WorkSchedule, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT id, name, type, start_time, end_time, break_minutes, days_json FROM work_schedules ORDER BY name")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []schedule.WorkSchedule
	for rows.Next() {
		ws, err := scanWorkSchedule(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *ws)
	}
	return out, rows.Err()
}

func (s *Store) DeleteWorkSchedule(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, err := s.db.ExecContext(ctx, "DELETE FROM work_schedules WHERE id = ?", id)
	return err
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanWorkSchedule(row rowScanner) (*schedule.WorkSchedule, error) {
	var ws schedule.WorkSchedule
	var schedType string
	var startTime, endTime, daysJSON sql.NullString
	var breakMinutes sql.NullInt64

	if err := row.Scan(&ws.ID, &ws.Name, &schedType, &startTime, &endTime, &breakMinutes, &daysJSON); err != nil {
		return nil, err
	}

	ws.Type = schedule.Type(schedType)
	ws.StartTime = startTime.String
	ws.EndTime = endTime.String
	if breakMinutes.Valid {
		v := int(breakMinutes.Int64)
		ws.BreakMinutes = &v
	}
	if daysJSON.Valid && daysJSON.String != "" {
		if err := json.Unmarshal([]byte(daysJSON.String), &ws.Days); err != nil {
			return nil, fmt.Errorf("failed to decode days config for %s: %w", ws.ID, err)
		}
	}
	return &ws, nil
}

// =============================================================================
// EMPLOYEES
// =============================================================================

// Employee is a stored profile. IDNumber/IDCode hold whatever the
// operator saw at save time; they are never re-derived on read.
type Employee struct {
	ID               string
	Name             string
	Email            string
	DepartmentID     string
	PositionID       string
	LevelID          string
	EmploymentTypeID string
	WorkScheduleID   string
	JoinDate         time.Time
	Sequence         string
	IDNumber         string
	IDCode           string
	Active           bool
	CreatedAt        time.Time
}

func (s *Store) SaveEmployee(ctx context.Context, emp Employee) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	var joinDate any
	if !emp.JoinDate.IsZero() {
		joinDate = emp.JoinDate.Format("2006-01-02")
	}

	query := `
		INSERT INTO employees (
			id, name, email, department_id, position_id, level_id,
			employment_type_id, work_schedule_id, join_date, sequence,
			id_number, id_code, active, created_at
		)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			name = excluded.name,
			email = excluded.email,
			department_id = excluded.department_id,
			position_id = excluded.position_id,
			level_id = excluded.level_id,
			employment_type_id = excluded.employment_type_id,
			work_schedule_id = excluded.work_schedule_id,
			join_date = excluded.join_date,
			sequence = excluded.sequence,
			id_number = excluded.id_number,
			id_code = excluded.id_code,
			active = excluded.active
	`
	_, err := s.db.ExecContext(ctx, query,
		emp.ID, emp.Name, emp.Email,
		emp.DepartmentID, emp.PositionID, emp.LevelID,
		emp.EmploymentTypeID, emp.WorkScheduleID,
		joinDate, emp.Sequence, emp.IDNumber, emp.IDCode,
		emp.Active, now())
	return err
}

func (s *Store) GetEmployee(ctx context.Context, id string) (*Employee, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	row := s.db.QueryRowContext(ctx, selectEmployee+" WHERE id = ?", id)
	emp, err := scanEmployee(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return emp, nil
}

func (s *Store) ListEmployees(ctx context.Context) ([]Employee, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows, err := s.db.QueryContext(ctx, selectEmployee+" ORDER BY name")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Employee
	for rows.Next() {
		emp, err := scanEmployee(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *emp)
	}
	return out, rows.Err()
}

func (s *Store) DeleteEmployee(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, err := s.db.ExecContext(ctx, "DELETE FROM employees WHERE id = ?", id)
	return err
}

// TakenSequences returns the sequences held by active employees, for
// seeding a directory.SequenceRegistry.
func (s *Store) TakenSequences(ctx context.Context) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows, err := s.db.QueryContext(ctx,
		"SELECT sequence FROM employees WHERE active = 1")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []string
	for rows.Next() {
		var seq string
		if err := rows.Scan(&seq); err != nil {
			return nil, err
		}
		out = append(out, seq)
	}
	return out, rows.Err()
}

const selectEmployee = `
	SELECT id, name, email, department_id, position_id, level_id,
	       employment_type_id, work_schedule_id, join_date, sequence,
	       id_number, id_code, active, created_at
	FROM employees`

func scanEmployee(row rowScanner) (*Employee, error) {
	var emp Employee
	var deptID, posID, lvlID, etID, wsID, joinDate sql.NullString
	var createdAt string

	if err := row.Scan(&emp.ID, &emp.Name, &emp.Email,
		&deptID, &posID, &lvlID, &etID, &wsID, &joinDate,
		&emp.Sequence, &emp.IDNumber, &emp.IDCode, &emp.Active, &createdAt); err != nil {
		return nil, err
	}

	emp.DepartmentID = deptID.String
	emp.PositionID = posID.String
	emp.LevelID = lvlID.String
	emp.EmploymentTypeID = etID.String
	emp.WorkScheduleID = wsID.String
	if joinDate.Valid && joinDate.String != "" {
		emp.JoinDate, _ = time.Parse("2006-01-02", joinDate.String)
	}
	emp.CreatedAt, _ = time.Parse(time.RFC3339, createdAt)
	return &emp, nil
}

// =============================================================================
// SNAPSHOT / MAINTENANCE
// =============================================================================

// Snapshot loads the full directory into immutable lookup tables. One
// read lock covers all five listings, so the snapshot is internally
// consistent.
func (s *Store) Snapshot(ctx context.Context) (*directory.Snapshot, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	departments, err := s.listDepartmentsLocked(ctx)
	if err != nil {
		return nil, err
	}
	positions, err := s.queryPositions(ctx,
		"SELECT id, department_id, name, code, category_code FROM positions ORDER BY name")
	if err != nil {
		return nil, err
	}
	levels, err := s.listLevelsLocked(ctx)
	if err != nil {
		return nil, err
	}
	employmentTypes, err := s.listEmploymentTypesLocked(ctx)
	if err != nil {
		return nil, err
	}
	schedules, err := s.listWorkSchedulesLocked(ctx)
	if err != nil {
		return nil, err
	}

	return directory.NewSnapshot(departments, positions, levels, employmentTypes, schedules), nil
}

// Reset clears all data. Dev/demo only.
func (s *Store) Reset(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	tables := []string{
		"employees", "work_schedules", "employment_types",
		"levels", "positions", "departments",
	}
	for _, table := range tables {
		if _, err := s.db.ExecContext(ctx, "DELETE FROM "+table); err != nil {
			return fmt.Errorf("failed to clear %s: %w", table, err)
		}
	}
	return nil
}

func now() string {
	return time.Now().UTC().Format(time.RFC3339)
}
