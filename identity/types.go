/*
Package identity derives canonical employee identifiers from
organizational attributes.

PURPOSE:
  Given an employee's department, position, seniority level, join date,
  and an operator-chosen sequence number, this package produces the two
  canonical strings every profile carries:
  - idNumber: a compact numeric identifier
  - idCode:   a human-readable code ("ADY-III-DSNSR-2024042")

KEY CONCEPTS IN THIS FILE (types.go):
  - Department/Position/Level: read-only organizational records supplied
    by the directory (the generator never fetches them itself)
  - Input: one derivation request (selected records + join date + sequence)
  - Identifiers: the derived pair

DESIGN PRINCIPLES:
  1. Purity: derivation is a pure function of its input; identical
     inputs always yield byte-identical output
  2. Degradation over failure: unresolved references fall back to
     documented default tokens ("0", "STAFF") instead of erroring -
     the surrounding form stays usable while the user is still choosing
  3. No validation: sequence uniqueness and level/employment-type bounds
     are the caller's job (see the directory package)

USAGE:
  ids := identity.Generate(identity.Input{
      Department: dept,
      Position:   pos,
      Level:      lvl,
      JoinDate:   joinDate,
      Sequence:   "42",
  })
  // ids.IDNumber, ids.IDCode

SEE ALSO:
  - generator.go: The derivation algorithm
  - directory/snapshot.go: Lookup tables that resolve ids to these records
*/
package identity

import "time"

// =============================================================================
// ORGANIZATIONAL RECORDS - Read-only inputs
// =============================================================================

// Department is an organizational unit. Code carries the full
// hyphenated form ("ADY-DSN-STUDIO"); ClusterCode is the short numeric
// cluster digit-group used inside the numeric identifier.
type Department struct {
	ID          string
	Name        string
	Code        string
	ClusterCode string
}

// Position belongs to exactly one Department. Code is the short
// abbreviation shown in the readable identifier ("SR"); CategoryCode is
// the numeric job-category digit-group.
type Position struct {
	ID           string
	DepartmentID string
	Name         string
	Code         string
	CategoryCode string
}

// Level is a seniority level. LevelCode is the numeric rank (uncapped -
// see generator.go); RomanCode is its Roman-numeral display form.
type Level struct {
	ID        string
	Name      string
	LevelCode int
	RomanCode string
}

// =============================================================================
// DERIVATION INPUT / OUTPUT
// =============================================================================

// Input is a single derivation request. Any of the record pointers may
// be nil (the user has not selected one yet); a zero JoinDate falls
// back to the current date.
type Input struct {
	Department *Department
	Position   *Position
	Level      *Level
	JoinDate   time.Time
	Sequence   string
}

// Identifiers is the derived pair. Neither value is persisted by this
// package; callers persist them verbatim on explicit save.
type Identifiers struct {
	IDNumber string
	IDCode   string
}
