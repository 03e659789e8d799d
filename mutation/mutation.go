// Package mutation classifies single-base substitutions.
package mutation

import (
	"fmt"
	"strings"
)

type Type byte

const (
	Same Type = iota
	Transition
	Transversion
)

func (t Type) String() string {
	switch t {
	case Same:
		return "same"
	case Transition:
		return "transition"
	case Transversion:
		return "transversion"
	}

	return fmt.Sprintf("Type(%d)", byte(t))
}

// ParseType is the inverse of Type.String, case-insensitive.
func ParseType(s string) (Type, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "same":
		return Same, nil
	case "transition":
		return Transition, nil
	case "transversion":
		return Transversion, nil
	}

	return Same, fmt.Errorf("%q is not a mutation type. Valid types include: same, transition, transversion", s)
}

// Classify reports whether replacing ref with alt is a transition (A<->G,
// C<->T), a transversion (any other change), or no change at all. Bases are
// expected to be uppercase.
func Classify(ref, alt byte) Type {
	if ref == alt {
		return Same
	}

	if IsPurine(ref) && IsPurine(alt) || IsPyrimidine(ref) && IsPyrimidine(alt) {
		return Transition
	}

	return Transversion
}

func IsPurine(b byte) bool {
	return b == 'A' || b == 'G'
}

func IsPyrimidine(b byte) bool {
	return b == 'C' || b == 'T'
}
