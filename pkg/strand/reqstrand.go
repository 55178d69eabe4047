package strand

import "fmt"

// ReqStrand is strand information for annotations that require a
// strand. The zero value is ReqForward.
type ReqStrand int8

const (
	ReqForward ReqStrand = iota
	ReqReverse
)

// ParseReq converts the display form of a strand into a ReqStrand.
// It accepts the forms understood by Parse, except that an unknown or
// empty strand yields an error wrapping ErrNoStrand.
func ParseReq(s string) (ReqStrand, error) {
	st, err := Parse(s)
	if err != nil {
		return ReqForward, err
	}
	rs, ok := st.Req()
	if !ok {
		return ReqForward, fmt.Errorf("string %q: %w", s, ErrNoStrand)
	}
	return rs, nil
}

// Reverse returns the reversed strand.
func (rs ReqStrand) Reverse() ReqStrand {
	if rs == ReqForward {
		return ReqReverse
	}
	return ReqForward
}

// Strand widens into a Strand carrying the same orientation.
func (rs ReqStrand) Strand() Strand {
	if rs == ReqForward {
		return Forward
	}
	return Reverse
}

// Symbol returns the single-character designator: "+" or "-".
func (rs ReqStrand) Symbol() string {
	if rs == ReqForward {
		return "+"
	}
	return "-"
}

// OnStrand orients s relative to the receiver: positions and strands
// are unchanged on the forward strand and flipped on the reverse
// strand.
func (rs ReqStrand) OnStrand(s Strand) Strand {
	if rs == ReqReverse {
		return s.Reverse()
	}
	return s
}

// String renders the strand as a location suffix, "(+)" or "(-)".
func (rs ReqStrand) String() string {
	return "(" + rs.Symbol() + ")"
}

// MarshalText encodes the strand as its symbol.
func (rs ReqStrand) MarshalText() ([]byte, error) {
	return []byte(rs.Symbol()), nil
}

// UnmarshalText decodes any form accepted by ParseReq.
func (rs *ReqStrand) UnmarshalText(text []byte) error {
	parsed, err := ParseReq(string(text))
	if err != nil {
		return err
	}
	*rs = parsed
	return nil
}
