package strand

import (
	"errors"
	"fmt"
)

// Strand errors.
var (
	ErrInvalidStrand = errors.New("invalid strand")
	ErrNoStrand      = errors.New("no strand information")
)

// Strand is the orientation of a genomic feature relative to its
// reference sequence. The zero value is Unknown.
type Strand int8

const (
	Unknown Strand = iota
	Forward
	Reverse
)

// FromChar converts a strand designator character into a Strand.
//
// The mapping is as follows:
//   - '+', 'f', or 'F' becomes Forward
//   - '-', 'r', or 'R' becomes Reverse
//   - '.' or '?' becomes Unknown
//
// Any other character yields an error wrapping ErrInvalidStrand.
func FromChar(c rune) (Strand, error) {
	switch c {
	case '+', 'f', 'F':
		return Forward, nil
	case '-', 'r', 'R':
		return Reverse, nil
	case '.', '?':
		return Unknown, nil
	default:
		return Unknown, fmt.Errorf("character %q cannot be converted to a strand: %w", c, ErrInvalidStrand)
	}
}

// Parse converts the display form of a strand into a Strand. It accepts
// the single-character designators understood by FromChar, the location
// suffix forms "(+)" and "(-)", and the empty string, which parses as
// Unknown.
func Parse(s string) (Strand, error) {
	switch s {
	case "":
		return Unknown, nil
	case "(+)":
		return Forward, nil
	case "(-)":
		return Reverse, nil
	}
	if len(s) == 1 {
		return FromChar(rune(s[0]))
	}
	return Unknown, fmt.Errorf("string %q cannot be converted to a strand: %w", s, ErrInvalidStrand)
}

// IsUnknown reports whether the strand is unknown.
func (s Strand) IsUnknown() bool {
	return s != Forward && s != Reverse
}

// Reverse returns the reversed strand. Unknown stays unknown.
func (s Strand) Reverse() Strand {
	switch s {
	case Forward:
		return Reverse
	case Reverse:
		return Forward
	default:
		return Unknown
	}
}

// Req converts into a ReqStrand, indicating a specific, known strand.
// The second return is false when the strand is unknown.
func (s Strand) Req() (ReqStrand, bool) {
	switch s {
	case Forward:
		return ReqForward, true
	case Reverse:
		return ReqReverse, true
	default:
		return ReqForward, false
	}
}

// Symbol returns the single-character designator for the strand:
// "+", "-", or "." for unknown.
func (s Strand) Symbol() string {
	switch s {
	case Forward:
		return "+"
	case Reverse:
		return "-"
	default:
		return "."
	}
}

// Same reports whether two strands carry the same information. Unlike
// equality, two unknown strands are the "same" even though annotations
// with unknown strands never compare equal.
func (s Strand) Same(t Strand) bool {
	return s.normalize() == t.normalize()
}

// Equal reports strand equality. Two unknown strands are not equal.
func (s Strand) Equal(t Strand) bool {
	return !s.IsUnknown() && s.normalize() == t.normalize()
}

// normalize collapses every out-of-range value onto Unknown so that
// comparisons on arbitrary Strand values behave.
func (s Strand) normalize() Strand {
	if s == Forward || s == Reverse {
		return s
	}
	return Unknown
}

// String renders the strand as a location suffix: "(+)", "(-)", or the
// empty string for an unknown strand. This is the form appended to
// annotation display strings; use Symbol for the bare designator.
func (s Strand) String() string {
	if s.IsUnknown() {
		return ""
	}
	return "(" + s.Symbol() + ")"
}

// MarshalText encodes the strand as its symbol.
func (s Strand) MarshalText() ([]byte, error) {
	return []byte(s.Symbol()), nil
}

// UnmarshalText decodes any form accepted by Parse.
func (s *Strand) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(text))
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}
