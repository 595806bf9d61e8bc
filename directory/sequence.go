/*
sequence.go - Sequence uniqueness registry

PURPOSE:
  Sequences are 3-digit ordinals ("001".."999") distinguishing employees
  who would otherwise derive identical identifiers. Uniqueness across
  active employees is a caller responsibility - the identity generator
  only formats. This registry is that caller-side check: built from the
  taken set, consulted before committing a profile.

SEE ALSO:
  - identity/generator.go: PadSequence (the shared normal form)
  - store/sqlite: TakenSequences feeds the registry from the database
*/
package directory

import (
	"strconv"

	"github.com/adidayastudio/directory-engine/identity"
)

const maxSequence = 999

// SequenceRegistry tracks which sequences are in use. It is a plain
// request-scoped value, not a shared cache: build one from the current
// taken set, use it, drop it.
type SequenceRegistry struct {
	taken map[string]bool
}

// NewSequenceRegistry builds a registry from already-taken sequences.
// Inputs are normalized to the padded 3-digit form, so "42" and "042"
// mark the same slot.
func NewSequenceRegistry(taken []string) *SequenceRegistry {
	r := &SequenceRegistry{taken: make(map[string]bool, len(taken))}
	for _, seq := range taken {
		r.taken[identity.PadSequence(seq)] = true
	}
	return r
}

// Taken reports whether a sequence is already in use.
func (r *SequenceRegistry) Taken(seq string) bool {
	return r.taken[identity.PadSequence(seq)]
}

// Reserve marks a sequence as taken. It returns ErrSequenceTaken when
// the slot is already in use.
func (r *SequenceRegistry) Reserve(seq string) error {
	key := identity.PadSequence(seq)
	if r.taken[key] {
		return ErrSequenceTaken
	}
	r.taken[key] = true
	return nil
}

// NextFree returns the lowest unused sequence, scanning "001".."999".
// ErrSequenceExhausted when every slot is taken.
func (r *SequenceRegistry) NextFree() (string, error) {
	for n := 1; n <= maxSequence; n++ {
		seq := identity.PadSequence(strconv.Itoa(n))
		if !r.taken[seq] {
			return seq, nil
		}
	}
	return "", ErrSequenceExhausted
}
