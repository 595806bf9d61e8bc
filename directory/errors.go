/*
errors.go - Sentinel errors for caller-side validation

PURPOSE:
  The derivation engines never error; these sentinels belong to the
  validations layered around them. API handlers map them to HTTP
  statuses with errors.Is().

SEE ALSO:
  - sequence.go: Uses the sequence errors
  - api/handlers.go: Maps these to 409/422 responses
*/
package directory

import "errors"

var (
	// ErrSequenceTaken is returned when a sequence is already in use by
	// an active employee.
	ErrSequenceTaken = errors.New("sequence already taken")

	// ErrSequenceExhausted is returned when all 999 sequence slots are
	// in use.
	ErrSequenceExhausted = errors.New("no free sequence available")

	// ErrLevelOutOfRange is returned when a level falls outside the
	// employment type's [min, max] band.
	ErrLevelOutOfRange = errors.New("level outside employment type range")
)
