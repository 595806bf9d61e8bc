/*
generator.go - The identifier derivation algorithm

PURPOSE:
  Implements the two-part derivation:

  idNumber = levelCode + clusterCode + categoryCode + yy + seq3
  idCode   = "ADY-" + roman + "-" + deptPos + "-" + yyyy + seq3

  where seq3 is the zero-left-padded 3-digit sequence, yy/yyyy come from
  the join year, and deptPos is the department abbreviation (second
  hyphen segment of the department code) concatenated with the position
  code - or the literal "STAFF" when either half is missing.

FALLBACK TOKENS:
  Unresolved department  -> clusterCode "0", abbrev ""
  Unresolved position    -> categoryCode "0", abbrev ""
  Unresolved level       -> levelCode "0", roman from table
  Missing join date      -> current system date
  Either abbrev missing  -> deptPos "STAFF"

KNOWN LIMITATION:
  levelCode is NOT capped or fixed-width: a level of 12 contributes two
  digits to idNumber where a level of 3 contributes one, so the numeric
  identifier is variable-width and ambiguous to parse. Preserved as-is
  pending a product decision on a fixed-width format.

SEE ALSO:
  - types.go: Input/Identifiers and the organizational records
*/
package identity

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// romanNumerals maps single-digit level codes to their display form.
// Index 0 is the "no level selected" token.
var romanNumerals = [...]string{"0", "I", "II", "III", "IV", "V", "VI", "VII", "VIII", "IX"}

// Generator derives identifiers. The zero value is not usable; use
// NewGenerator. Now is overridable so tests with an absent join date
// stay deterministic.
type Generator struct {
	Now func() time.Time
}

func NewGenerator() *Generator {
	return &Generator{Now: time.Now}
}

// Generate derives both identifiers from the input. Pure: it never
// errors, never mutates the input records, and depends on the clock
// only when JoinDate is zero.
func (g *Generator) Generate(in Input) Identifiers {
	clusterCode := "0"
	if in.Department != nil && in.Department.ClusterCode != "" {
		clusterCode = in.Department.ClusterCode
	}

	categoryCode := "0"
	if in.Position != nil && in.Position.CategoryCode != "" {
		categoryCode = in.Position.CategoryCode
	}

	// Uncapped: levels >= 10 contribute extra digits (see file header).
	levelCode := "0"
	levelNum := 0
	if in.Level != nil {
		levelNum = in.Level.LevelCode
		levelCode = strconv.Itoa(levelNum)
	}

	join := in.JoinDate
	if join.IsZero() {
		join = g.Now()
	}
	yy := fmt.Sprintf("%02d", join.Year()%100)
	fullYear := fmt.Sprintf("%04d", join.Year())

	seq := PadSequence(in.Sequence)

	roman := "0"
	if in.Level != nil && in.Level.RomanCode != "" {
		roman = in.Level.RomanCode
	} else if levelNum >= 0 && levelNum < len(romanNumerals) {
		roman = romanNumerals[levelNum]
	}

	deptAbbrev := ""
	if in.Department != nil {
		if parts := strings.Split(in.Department.Code, "-"); len(parts) >= 2 {
			deptAbbrev = parts[1]
		}
	}
	posAbbrev := ""
	if in.Position != nil {
		posAbbrev = in.Position.Code
	}
	deptPos := "STAFF"
	if deptAbbrev != "" && posAbbrev != "" {
		deptPos = deptAbbrev + posAbbrev
	}

	return Identifiers{
		IDNumber: levelCode + clusterCode + categoryCode + yy + seq,
		IDCode:   "ADY-" + roman + "-" + deptPos + "-" + fullYear + seq,
	}
}

// Generate derives identifiers with the real clock. Convenience wrapper
// for callers that always supply a join date.
func Generate(in Input) Identifiers {
	return NewGenerator().Generate(in)
}

// PadSequence left-pads a sequence to three digits ("42" -> "042").
// It does not validate range; callers are expected to have checked the
// value is numeric and within 1..999 before handing it over.
func PadSequence(seq string) string {
	for len(seq) < 3 {
		seq = "0" + seq
	}
	return seq
}
