package annot

import (
	"fmt"
	"regexp"
	"strconv"

	"github.com/mesh-intelligence/biotypes/pkg/strand"
)

var posRE = regexp.MustCompile(`^(.*):(\d+)(\([+-]\))?$`)

// Pos is a position on a particular, named sequence (e.g. a
// chromosome), with optional strand information.
//
// The display format for a Pos is "chr:pos(+/-)". An unknown strand
// renders without the suffix.
type Pos struct {
	refid  string
	pos    int64
	strand strand.Strand
}

// NewPos constructs a new sequence position.
func NewPos(refid string, pos int64, st strand.Strand) Pos {
	return Pos{refid: refid, pos: pos, strand: st}
}

// ParsePos parses the display form of a position,
// e.g. "chrIV:683946(-)". A missing strand suffix parses as an
// unknown strand.
func ParsePos(s string) (Pos, error) {
	cap := posRE.FindStringSubmatch(s)
	if cap == nil {
		return Pos{}, fmt.Errorf("position %q: %w", s, ErrBadAnnot)
	}
	pos, err := strconv.ParseInt(cap[2], 10, 64)
	if err != nil {
		return Pos{}, fmt.Errorf("position %q: %w", s, err)
	}
	st, err := strand.Parse(cap[3])
	if err != nil {
		return Pos{}, fmt.Errorf("position %q: %w", s, err)
	}
	return NewPos(cap[1], pos, st), nil
}

// Refid returns the name of the reference sequence.
func (p Pos) Refid() string { return p.refid }

// Pos returns the position on the reference sequence (0-based).
func (p Pos) Pos() int64 { return p.pos }

// Strand returns the strand of the position.
func (p Pos) Strand() strand.Strand { return p.strand }

// Start implements Loc; a position starts at itself.
func (p Pos) Start() int64 { return p.pos }

// Length implements Loc; a position has length 1.
func (p Pos) Length() int64 { return 1 }

// WithStrand returns the position re-annotated on the given strand.
func (p Pos) WithStrand(st strand.Strand) Pos {
	p.strand = st
	return p
}

// Shift slides the reference position by an offset on the strand of
// the annotation: a positive dist numerically increases the position
// of forward-strand annotations and decreases it for reverse-strand
// annotations. Positions of unknown strand yield strand.ErrNoStrand.
func (p *Pos) Shift(dist int64) error {
	rs, ok := p.strand.Req()
	if !ok {
		return strand.ErrNoStrand
	}
	if rs == strand.ReqForward {
		p.pos += dist
	} else {
		p.pos -= dist
	}
	return nil
}

// Same reports whether two positions carry the same information.
// Positions with unknown strands can be the same but are never equal.
func (p Pos) Same(q Pos) bool {
	return p.refid == q.refid && p.pos == q.pos && p.strand.Same(q.strand)
}

// PosInto implements Loc for a single position: q maps to relative
// position 0 when it coincides with p.
func (p Pos) PosInto(q Pos) (Pos, error) {
	rs, ok := p.strand.Req()
	if !ok {
		return Pos{}, strand.ErrNoStrand
	}
	if p.refid != q.refid || p.pos != q.pos {
		return Pos{}, ErrOutside
	}
	return NewPos("", 0, rs.OnStrand(q.strand)), nil
}

// PosOutof implements Loc for a single position: relative position 0
// maps back onto p.
func (p Pos) PosOutof(q Pos) (Pos, error) {
	rs, ok := p.strand.Req()
	if !ok {
		return Pos{}, strand.ErrNoStrand
	}
	if q.pos != 0 {
		return Pos{}, ErrOutside
	}
	return NewPos(p.refid, p.pos, rs.OnStrand(q.strand)), nil
}

// ContigIntersection returns the position when it falls within the
// given contig. The second return is false when it does not.
func (p Pos) ContigIntersection(c Contig) (Pos, bool) {
	if p.refid != c.Refid() {
		return Pos{}, false
	}
	if p.pos >= c.Start() && p.pos < c.Start()+c.Length() {
		return p, true
	}
	return Pos{}, false
}

// String renders the position in its display form, "chr:pos(+/-)".
func (p Pos) String() string {
	return fmt.Sprintf("%s:%d%s", p.refid, p.pos, p.strand)
}

// MarshalText encodes the position in its display form.
func (p Pos) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}

// UnmarshalText decodes a position from its display form.
func (p *Pos) UnmarshalText(text []byte) error {
	parsed, err := ParsePos(string(text))
	if err != nil {
		return err
	}
	*p = parsed
	return nil
}
