package annot

import (
	"fmt"
	"regexp"
	"strconv"

	"github.com/mesh-intelligence/biotypes/pkg/strand"
)

var contigRE = regexp.MustCompile(`^(.*):(\d+)-(\d+)(\([+-]\))?$`)

// Contig is a contiguous sequence region on a particular, named
// sequence (e.g. a chromosome), with optional strand information.
//
// The display format for a Contig is "chr:start-end(+/-)". The
// boundaries are given as a half-open 0-based interval, like the BED
// format.
type Contig struct {
	refid  string
	start  int64
	length int64
	strand strand.Strand
}

// NewContig constructs a new contiguous sequence location from its
// left-most position and length.
func NewContig(refid string, start, length int64, st strand.Strand) Contig {
	return Contig{refid: refid, start: start, length: length, strand: st}
}

// WithFirstLength constructs a contig from a starting position and a
// length. The starting position is the first position of the contig
// on its annotated strand, so reverse-strand contigs extend toward
// lower coordinates from it. A contig shorter than two bases needs no
// orientation; longer contigs with an unknown-strand start yield
// strand.ErrNoStrand.
func WithFirstLength(pos Pos, length int64) (Contig, error) {
	if length < 2 {
		return NewContig(pos.Refid(), pos.Pos(), length, pos.Strand()), nil
	}
	rs, ok := pos.Strand().Req()
	if !ok {
		return Contig{}, strand.ErrNoStrand
	}
	start := pos.Pos()
	if rs == strand.ReqReverse {
		start = pos.Pos() - length + 1
	}
	return NewContig(pos.Refid(), start, length, pos.Strand()), nil
}

// ParseContig parses the display form of a contig,
// e.g. "chrXI:334412-334916(-)". A missing strand suffix parses as an
// unknown strand.
func ParseContig(s string) (Contig, error) {
	cap := contigRE.FindStringSubmatch(s)
	if cap == nil {
		return Contig{}, fmt.Errorf("contig %q: %w", s, ErrBadAnnot)
	}
	start, err := strconv.ParseInt(cap[2], 10, 64)
	if err != nil {
		return Contig{}, fmt.Errorf("contig %q: %w", s, err)
	}
	end, err := strconv.ParseInt(cap[3], 10, 64)
	if err != nil {
		return Contig{}, fmt.Errorf("contig %q: %w", s, err)
	}
	st, err := strand.Parse(cap[4])
	if err != nil {
		return Contig{}, fmt.Errorf("contig %q: %w", s, err)
	}
	if end < start {
		return Contig{}, fmt.Errorf("contig %q: %w", s, ErrEndBeforeStart)
	}
	return NewContig(cap[1], start, end-start, st), nil
}

// Refid returns the name of the reference sequence.
func (c Contig) Refid() string { return c.refid }

// Start returns the left-most position of the contig (0-based).
func (c Contig) Start() int64 { return c.start }

// Length returns the length of the contig.
func (c Contig) Length() int64 { return c.length }

// Strand returns the strand of the contig.
func (c Contig) Strand() strand.Strand { return c.strand }

// WithStrand returns the contig re-annotated on the given strand.
func (c Contig) WithStrand(st strand.Strand) Contig {
	c.strand = st
	return c
}

// ExtendUpstream extends the contig by dist in the upstream direction
// on the annotated strand: the left, 5'-most end grows for
// forward-strand contigs and the right, 3'-most end for
// reverse-strand contigs. Contigs of unknown strand yield
// strand.ErrNoStrand.
func (c *Contig) ExtendUpstream(dist int64) error {
	rs, ok := c.strand.Req()
	if !ok {
		return strand.ErrNoStrand
	}
	c.length += dist
	if rs == strand.ReqForward {
		c.start -= dist
	}
	return nil
}

// ExtendDownstream extends the contig by dist in the downstream
// direction on the annotated strand: the right, 3'-most end grows for
// forward-strand contigs and the left, 5'-most end for reverse-strand
// contigs. Contigs of unknown strand yield strand.ErrNoStrand.
func (c *Contig) ExtendDownstream(dist int64) error {
	rs, ok := c.strand.Req()
	if !ok {
		return strand.ErrNoStrand
	}
	c.length += dist
	if rs == strand.ReqReverse {
		c.start -= dist
	}
	return nil
}

// PosInto implements Loc; see the interface documentation.
func (c Contig) PosInto(p Pos) (Pos, error) {
	rs, ok := c.strand.Req()
	if !ok {
		return Pos{}, strand.ErrNoStrand
	}
	if c.refid != p.Refid() {
		return Pos{}, ErrOutside
	}
	offset := p.Pos() - c.start
	if offset < 0 || offset >= c.length {
		return Pos{}, ErrOutside
	}
	if rs == strand.ReqForward {
		return NewPos("", offset, p.Strand()), nil
	}
	return NewPos("", c.length-(offset+1), p.Strand().Reverse()), nil
}

// PosOutof implements Loc; see the interface documentation.
func (c Contig) PosOutof(p Pos) (Pos, error) {
	rs, ok := c.strand.Req()
	if !ok {
		return Pos{}, strand.ErrNoStrand
	}
	offset := p.Pos()
	if rs == strand.ReqReverse {
		offset = c.length - (p.Pos() + 1)
	}
	if offset < 0 || offset >= c.length {
		return Pos{}, ErrOutside
	}
	return NewPos(c.refid, c.start+offset, rs.OnStrand(p.Strand())), nil
}

// Intersection returns the intersection of two contigs on the same
// reference sequence, on the strand of the receiver. The second
// return is false when the contigs do not overlap. Contigs that
// merely touch intersect in a zero-length contig.
func (c Contig) Intersection(other Contig) (Contig, bool) {
	if c.refid != other.refid {
		return Contig{}, false
	}
	start := max(c.start, other.start)
	end := min(c.start+c.length, other.start+other.length)
	if start > end {
		return Contig{}, false
	}
	return NewContig(c.refid, start, end-start, c.strand), true
}

// String renders the contig in its display form, "chr:start-end(+/-)".
func (c Contig) String() string {
	return fmt.Sprintf("%s:%d-%d%s", c.refid, c.start, c.start+c.length, c.strand)
}

// MarshalText encodes the contig in its display form.
func (c Contig) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

// UnmarshalText decodes a contig from its display form.
func (c *Contig) UnmarshalText(text []byte) error {
	parsed, err := ParseContig(string(text))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}
