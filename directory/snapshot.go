/*
Package directory holds the caller-side lookup tables and validations
around the derivation engines.

PURPOSE:
  The identity and schedule packages are pure: they consume records and
  return derived values, and deliberately know nothing about where those
  records come from or whether a selection is valid. This package is the
  explicit home for everything they refuse to do:
  - Snapshot: immutable lookup tables resolving ids to records
  - SequenceRegistry: the set of sequences already in use
  - LevelWithinType: the employment-type bounds rule

KEY CONCEPTS IN THIS FILE (snapshot.go):
  - Snapshot: a frozen copy of the directory at one point in time.
    Resolution returns nil for unknown ids; the engines degrade to
    their fallback tokens from there. Callers build a fresh snapshot
    per request (store/sqlite does this) - nothing is invalidated or
    refreshed in place.

DESIGN PRINCIPLES:
  1. Explicit dependency: lookups are injected values, never ambient
     package state, so every derivation is reproducible in tests
  2. Immutability: constructors copy their inputs; mutating the source
     slices afterwards does not change what the snapshot resolves

SEE ALSO:
  - sequence.go: Sequence uniqueness registry
  - errors.go: Sentinel errors surfaced by callers
  - store/sqlite: Builds snapshots from persisted records
*/
package directory

import (
	"github.com/adidayastudio/directory-engine/identity"
	"github.com/adidayastudio/directory-engine/schedule"
)

// EmploymentType bounds which seniority levels an employee on it may
// hold. The bounds are inclusive.
type EmploymentType struct {
	ID           string
	Name         string
	MinLevelCode int
	MaxLevelCode int
}

// =============================================================================
// SNAPSHOT - Immutable lookup tables
// =============================================================================

// Snapshot is a read-only view of the directory. All resolution methods
// return nil (not an error) when the id is unknown or empty.
type Snapshot struct {
	departments     map[string]identity.Department
	positions       map[string]identity.Position
	levels          map[string]identity.Level
	employmentTypes map[string]EmploymentType
	schedules       map[string]schedule.WorkSchedule

	// Preserves listing order for the UI.
	positionOrder []string
}

func NewSnapshot(
	departments []identity.Department,
	positions []identity.Position,
	levels []identity.Level,
	employmentTypes []EmploymentType,
	schedules []schedule.WorkSchedule,
) *Snapshot {
	s := &Snapshot{
		departments:     make(map[string]identity.Department, len(departments)),
		positions:       make(map[string]identity.Position, len(positions)),
		levels:          make(map[string]identity.Level, len(levels)),
		employmentTypes: make(map[string]EmploymentType, len(employmentTypes)),
		schedules:       make(map[string]schedule.WorkSchedule, len(schedules)),
	}
	for _, d := range departments {
		s.departments[d.ID] = d
	}
	for _, p := range positions {
		s.positions[p.ID] = p
		s.positionOrder = append(s.positionOrder, p.ID)
	}
	for _, l := range levels {
		s.levels[l.ID] = l
	}
	for _, et := range employmentTypes {
		s.employmentTypes[et.ID] = et
	}
	for _, ws := range schedules {
		s.schedules[ws.ID] = ws
	}
	return s
}

// Department resolves a department id. Nil when unresolved.
func (s *Snapshot) Department(id string) *identity.Department {
	if d, ok := s.departments[id]; ok {
		return &d
	}
	return nil
}

// Position resolves a position id. Nil when unresolved.
func (s *Snapshot) Position(id string) *identity.Position {
	if p, ok := s.positions[id]; ok {
		return &p
	}
	return nil
}

// Level resolves a level id. Nil when unresolved.
func (s *Snapshot) Level(id string) *identity.Level {
	if l, ok := s.levels[id]; ok {
		return &l
	}
	return nil
}

// EmploymentType resolves an employment-type id. Nil when unresolved.
func (s *Snapshot) EmploymentType(id string) *EmploymentType {
	if et, ok := s.employmentTypes[id]; ok {
		return &et
	}
	return nil
}

// WorkSchedule resolves a schedule id. Nil when unresolved.
func (s *Snapshot) WorkSchedule(id string) *schedule.WorkSchedule {
	if ws, ok := s.schedules[id]; ok {
		return &ws
	}
	return nil
}

// PositionsFor lists the positions belonging to one department, in the
// order they were supplied to the snapshot.
func (s *Snapshot) PositionsFor(departmentID string) []identity.Position {
	var out []identity.Position
	for _, id := range s.positionOrder {
		if p := s.positions[id]; p.DepartmentID == departmentID {
			out = append(out, p)
		}
	}
	return out
}

// =============================================================================
// EMPLOYMENT-TYPE BOUNDS
// =============================================================================

// LevelWithinType reports whether a level falls inside the employment
// type's inclusive [min, max] band. Violations invalidate the level
// assignment; the caller clears it and surfaces a validation error -
// the derivation engines are never involved.
func LevelWithinType(level identity.Level, et EmploymentType) bool {
	return level.LevelCode >= et.MinLevelCode && level.LevelCode <= et.MaxLevelCode
}
