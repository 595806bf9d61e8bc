package identity_test

import (
	"strconv"
	"testing"
	"time"

	"github.com/adidayastudio/directory-engine/identity"
)

// =============================================================================
// TEST FIXTURES
// =============================================================================

func designDept() *identity.Department {
	return &identity.Department{
		ID:          "dept-dsn",
		Name:        "Design Studio",
		Code:        "ADY-DSN-STUDIO",
		ClusterCode: "2",
	}
}

func seniorPosition() *identity.Position {
	return &identity.Position{
		ID:           "pos-sr",
		DepartmentID: "dept-dsn",
		Name:         "Senior Designer",
		Code:         "SR",
		CategoryCode: "7",
	}
}

func levelThree() *identity.Level {
	return &identity.Level{ID: "lvl-3", Name: "Level 3", LevelCode: 3, RomanCode: "III"}
}

func fixedClock(year int, month time.Month, day int) func() time.Time {
	return func() time.Time {
		return time.Date(year, month, day, 12, 0, 0, 0, time.UTC)
	}
}

// =============================================================================
// FULL DERIVATION
// =============================================================================

func TestGenerate_FullyResolvedInput(t *testing.T) {
	// GIVEN: level 3 (III), cluster "2", category "7", joined 2024-03-10, seq "042"
	// WHEN: deriving identifiers
	// THEN: idNumber concatenates level+cluster+category+yy+seq,
	//       idCode reads ADY-<roman>-<dept><pos>-<year><seq>

	ids := identity.Generate(identity.Input{
		Department: designDept(),
		Position:   seniorPosition(),
		Level:      levelThree(),
		JoinDate:   time.Date(2024, time.March, 10, 0, 0, 0, 0, time.UTC),
		Sequence:   "042",
	})

	if ids.IDNumber != "32724042" {
		t.Errorf("idNumber = %q, want %q", ids.IDNumber, "32724042")
	}
	if ids.IDCode != "ADY-III-DSNSR-2024042" {
		t.Errorf("idCode = %q, want %q", ids.IDCode, "ADY-III-DSNSR-2024042")
	}
}

func TestGenerate_IDNumberLengthTracksResolvedCodes(t *testing.T) {
	// GIVEN: resolved codes of varying width
	// WHEN: deriving idNumber
	// THEN: its length is len(level)+len(cluster)+len(category)+2+3 -
	//       there is no fixed overall width

	cases := []struct {
		name    string
		level   int
		cluster string
		cat     string
	}{
		{"single digits", 3, "2", "7"},
		{"two-digit level", 12, "2", "7"},
		{"two-digit cluster", 5, "10", "7"},
		{"everything wide", 42, "10", "11"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			dept := designDept()
			dept.ClusterCode = tc.cluster
			pos := seniorPosition()
			pos.CategoryCode = tc.cat
			lvl := &identity.Level{ID: "lvl", LevelCode: tc.level, RomanCode: "V"}

			ids := identity.Generate(identity.Input{
				Department: dept,
				Position:   pos,
				Level:      lvl,
				JoinDate:   time.Date(2025, time.June, 1, 0, 0, 0, 0, time.UTC),
				Sequence:   "7",
			})

			want := len(identity.PadSequence("7")) + 2 +
				len(tc.cluster) + len(tc.cat) + len(strconv.Itoa(tc.level))
			if len(ids.IDNumber) != want {
				t.Errorf("len(idNumber) = %d, want %d (%q)", len(ids.IDNumber), want, ids.IDNumber)
			}
		})
	}
}

// =============================================================================
// FALLBACK TOKENS
// =============================================================================

func TestGenerate_UnresolvedDepartment_FallsBackToStaff(t *testing.T) {
	// GIVEN: no department selected yet
	// WHEN: deriving identifiers
	// THEN: cluster digit degrades to "0" and the readable code carries "STAFF"

	ids := identity.Generate(identity.Input{
		Position: seniorPosition(),
		Level:    levelThree(),
		JoinDate: time.Date(2024, time.March, 10, 0, 0, 0, 0, time.UTC),
		Sequence: "042",
	})

	if ids.IDNumber != "30724042" {
		t.Errorf("idNumber = %q, want %q", ids.IDNumber, "30724042")
	}
	if ids.IDCode != "ADY-III-STAFF-2024042" {
		t.Errorf("idCode = %q, want %q", ids.IDCode, "ADY-III-STAFF-2024042")
	}
}

func TestGenerate_UnresolvedPosition_FallsBackToStaff(t *testing.T) {
	ids := identity.Generate(identity.Input{
		Department: designDept(),
		Level:      levelThree(),
		JoinDate:   time.Date(2024, time.March, 10, 0, 0, 0, 0, time.UTC),
		Sequence:   "042",
	})

	if ids.IDCode != "ADY-III-STAFF-2024042" {
		t.Errorf("idCode = %q, want %q", ids.IDCode, "ADY-III-STAFF-2024042")
	}
}

func TestGenerate_NothingResolved_AllDefaults(t *testing.T) {
	// GIVEN: an empty form (no selections, no join date)
	// WHEN: deriving with a pinned clock
	// THEN: every code degrades to "0"/"STAFF"; the call still succeeds

	gen := identity.NewGenerator()
	gen.Now = fixedClock(2026, time.September, 1)

	ids := gen.Generate(identity.Input{Sequence: "1"})

	if ids.IDNumber != "00026001" {
		t.Errorf("idNumber = %q, want %q", ids.IDNumber, "00026001")
	}
	if ids.IDCode != "ADY-0-STAFF-2026001" {
		t.Errorf("idCode = %q, want %q", ids.IDCode, "ADY-0-STAFF-2026001")
	}
}

func TestGenerate_MissingRomanCode_UsesNumeralTable(t *testing.T) {
	// GIVEN: levels with no roman form configured
	// WHEN: deriving the readable code
	// THEN: single-digit levels map through the static table,
	//       anything outside it degrades to "0"

	cases := []struct {
		level int
		want  string
	}{
		{1, "I"},
		{4, "IV"},
		{9, "IX"},
		{0, "0"},
		{10, "0"},
		{27, "0"},
	}

	for _, tc := range cases {
		lvl := &identity.Level{ID: "lvl", LevelCode: tc.level}
		ids := identity.Generate(identity.Input{
			Department: designDept(),
			Position:   seniorPosition(),
			Level:      lvl,
			JoinDate:   time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC),
			Sequence:   "001",
		})
		wantPrefix := "ADY-" + tc.want + "-"
		if len(ids.IDCode) < len(wantPrefix) || ids.IDCode[:len(wantPrefix)] != wantPrefix {
			t.Errorf("level %d: idCode = %q, want prefix %q", tc.level, ids.IDCode, wantPrefix)
		}
	}
}

func TestGenerate_DepartmentCodeWithoutSecondSegment_IsStaff(t *testing.T) {
	// A department code with no hyphenated abbrev segment yields no
	// usable abbreviation, so the pair collapses to STAFF.
	dept := designDept()
	dept.Code = "DSN"

	ids := identity.Generate(identity.Input{
		Department: dept,
		Position:   seniorPosition(),
		Level:      levelThree(),
		JoinDate:   time.Date(2024, time.March, 10, 0, 0, 0, 0, time.UTC),
		Sequence:   "042",
	})

	if ids.IDCode != "ADY-III-STAFF-2024042" {
		t.Errorf("idCode = %q, want %q", ids.IDCode, "ADY-III-STAFF-2024042")
	}
}

// =============================================================================
// SEQUENCE PADDING
// =============================================================================

func TestPadSequence(t *testing.T) {
	cases := map[string]string{
		"1":    "001",
		"42":   "042",
		"042":  "042",
		"999":  "999",
		"":     "000",
		"1234": "1234", // over-long input passes through; range is the caller's problem
	}
	for in, want := range cases {
		if got := identity.PadSequence(in); got != want {
			t.Errorf("PadSequence(%q) = %q, want %q", in, got, want)
		}
	}
}

// =============================================================================
// PURITY PROPERTIES
// =============================================================================

func TestGenerate_IsDeterministic(t *testing.T) {
	// GIVEN: the same snapshot of records and field selections
	// WHEN: deriving twice (as the form re-derives on every keystroke)
	// THEN: the outputs are byte-identical - no hidden state

	in := identity.Input{
		Department: designDept(),
		Position:   seniorPosition(),
		Level:      levelThree(),
		JoinDate:   time.Date(2024, time.March, 10, 0, 0, 0, 0, time.UTC),
		Sequence:   "042",
	}

	first := identity.Generate(in)
	second := identity.Generate(in)

	if first != second {
		t.Errorf("re-derivation differs: %+v vs %+v", first, second)
	}
}

func TestGenerate_DoesNotMutateInput(t *testing.T) {
	dept := designDept()
	pos := seniorPosition()
	lvl := levelThree()
	wantDept, wantPos, wantLvl := *dept, *pos, *lvl

	identity.Generate(identity.Input{
		Department: dept,
		Position:   pos,
		Level:      lvl,
		JoinDate:   time.Date(2024, time.March, 10, 0, 0, 0, 0, time.UTC),
		Sequence:   "042",
	})

	if *dept != wantDept || *pos != wantPos || *lvl != wantLvl {
		t.Error("input records were mutated during derivation")
	}
}

func TestGenerate_ZeroJoinDate_UsesInjectedClock(t *testing.T) {
	// GIVEN: no join date on the form yet
	// WHEN: deriving with two different pinned clocks
	// THEN: the year digits track the clock (and nothing else does)

	in := identity.Input{
		Department: designDept(),
		Position:   seniorPosition(),
		Level:      levelThree(),
		Sequence:   "042",
	}

	gen := identity.NewGenerator()
	gen.Now = fixedClock(2024, time.March, 10)
	a := gen.Generate(in)

	gen.Now = fixedClock(2025, time.March, 10)
	b := gen.Generate(in)

	if a.IDNumber != "32724042" {
		t.Errorf("2024 clock: idNumber = %q, want %q", a.IDNumber, "32724042")
	}
	if b.IDNumber != "32725042" {
		t.Errorf("2025 clock: idNumber = %q, want %q", b.IDNumber, "32725042")
	}
	if b.IDCode != "ADY-III-DSNSR-2025042" {
		t.Errorf("2025 clock: idCode = %q, want %q", b.IDCode, "ADY-III-DSNSR-2025042")
	}
}
