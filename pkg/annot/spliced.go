package annot

import (
	"fmt"
	"regexp"
	"slices"
	"strconv"
	"strings"

	"github.com/mesh-intelligence/biotypes/pkg/strand"
)

var (
	splicedRE = regexp.MustCompile(`^(.*):(\d+)-(\d+)((?:;\d+-\d+)*)(\([+-]\))?$`)
	exonRE    = regexp.MustCompile(`;(\d+)-(\d+)`)
)

// The spliced location representation inherently cannot represent
// "bad" splicing structures. Locations comprise a first exon length,
// with a list of intron-length/exon-length pairs. The inEx pairs
// after the first exon enforce strictly positive lengths, so only one
// set of positive-length exons with interleaved positive-length
// introns can represent a splicing structure.
type inEx struct {
	intronLen int64
	exonLen   int64
}

func newInEx(intronLen, exonLen int64) (inEx, error) {
	if intronLen < 1 {
		return inEx{}, ErrIntronLength
	}
	if exonLen < 1 {
		return inEx{}, ErrExonLength
	}
	return inEx{intronLen: intronLen, exonLen: exonLen}, nil
}

// ex is the start (relative to the start of the location) and length
// of a single exon, for internal coordinate math.
type ex struct {
	start  int64
	length int64
}

func (e ex) end() int64 { return e.start + e.length }

// Spliced is a spliced region on a particular, named sequence, e.g.
// the reverse strand of chromosome V, exon #1 at 166,875 through
// 166,885 and exon #2 at 166,237 through 166,771.
//
// The display format for a Spliced is
// "chr:start0-end0;start1-end1;...;startN-endN(+/-)". The boundaries
// of each exon are given as a half-open 0-based interval, like the
// BED format.
type Spliced struct {
	refid    string
	start    int64
	exon0Len int64
	inexes   []inEx
	strand   strand.Strand
}

// NewSpliced constructs a single-exon "spliced" location.
func NewSpliced(refid string, start, exon0Len int64, st strand.Strand) Spliced {
	return Spliced{refid: refid, start: start, exon0Len: exon0Len, strand: st}
}

// WithLengthsStarts constructs a multi-exon spliced location using
// BED-style exon starts and lengths, both relative to the location
// start. The first exon must start at 0, starts and lengths must pair
// up, and the blocks must be ascending and non-overlapping.
func WithLengthsStarts(refid string, start int64, exonLengths, exonStarts []int64, st strand.Strand) (Spliced, error) {
	if len(exonStarts) == 0 {
		return Spliced{}, ErrNoExons
	}
	if exonStarts[0] != 0 {
		return Spliced{}, ErrBlockStart
	}
	if len(exonStarts) != len(exonLengths) {
		return Spliced{}, ErrBlockMismatch
	}

	exon0Len := exonLengths[0]
	intronStart := exon0Len
	var inexes []inEx
	for i := 1; i < len(exonStarts); i++ {
		exonStart := exonStarts[i]
		if intronStart >= exonStart {
			return Spliced{}, ErrBlockOverlap
		}
		pair, err := newInEx(exonStart-intronStart, exonLengths[i])
		if err != nil {
			return Spliced{}, err
		}
		inexes = append(inexes, pair)
		intronStart = exonStart + exonLengths[i]
	}

	return Spliced{refid: refid, start: start, exon0Len: exon0Len, inexes: inexes, strand: st}, nil
}

// ParseSpliced parses the display form of a spliced location, e.g.
// "chrV:166236-166771;166874-166885(-)". A single-exon display form
// (the Contig form) is accepted. A missing strand suffix parses as an
// unknown strand.
func ParseSpliced(s string) (Spliced, error) {
	cap := splicedRE.FindStringSubmatch(s)
	if cap == nil {
		return Spliced{}, fmt.Errorf("spliced %q: %w", s, ErrBadAnnot)
	}

	firstStart, err := strconv.ParseInt(cap[2], 10, 64)
	if err != nil {
		return Spliced{}, fmt.Errorf("spliced %q: %w", s, err)
	}
	firstEnd, err := strconv.ParseInt(cap[3], 10, 64)
	if err != nil {
		return Spliced{}, fmt.Errorf("spliced %q: %w", s, err)
	}
	st, err := strand.Parse(cap[5])
	if err != nil {
		return Spliced{}, fmt.Errorf("spliced %q: %w", s, err)
	}
	if firstEnd < firstStart {
		return Spliced{}, fmt.Errorf("spliced %q: %w", s, ErrEndBeforeStart)
	}

	starts := []int64{0}
	lengths := []int64{firstEnd - firstStart}

	for _, exonCap := range exonRE.FindAllStringSubmatch(cap[4], -1) {
		nextStart, err := strconv.ParseInt(exonCap[1], 10, 64)
		if err != nil {
			return Spliced{}, fmt.Errorf("spliced %q: %w", s, err)
		}
		nextEnd, err := strconv.ParseInt(exonCap[2], 10, 64)
		if err != nil {
			return Spliced{}, fmt.Errorf("spliced %q: %w", s, err)
		}
		if nextEnd < nextStart {
			return Spliced{}, fmt.Errorf("spliced %q: %w", s, ErrEndBeforeStart)
		}
		starts = append(starts, nextStart-firstStart)
		lengths = append(lengths, nextEnd-nextStart)
	}

	spliced, err := WithLengthsStarts(cap[1], firstStart, lengths, starts, st)
	if err != nil {
		return Spliced{}, fmt.Errorf("spliced %q: %w", s, err)
	}
	return spliced, nil
}

// exes returns the exons from lowest to highest coordinate, relative
// to the location start.
func (s Spliced) exes() []ex {
	exes := make([]ex, 0, len(s.inexes)+1)
	exes = append(exes, ex{start: 0, length: s.exon0Len})
	currStart := s.exon0Len
	for _, pair := range s.inexes {
		exes = append(exes, ex{start: currStart + pair.intronLen, length: pair.exonLen})
		currStart += pair.intronLen + pair.exonLen
	}
	return exes
}

// Refid returns the name of the reference sequence.
func (s Spliced) Refid() string { return s.refid }

// Start returns the left-most position of the location (0-based).
func (s Spliced) Start() int64 { return s.start }

// Length returns the total length spanned on the reference, introns
// included. Use ExonTotalLength for the exon-only length.
func (s Spliced) Length() int64 {
	length := s.exon0Len
	for _, pair := range s.inexes {
		length += pair.intronLen + pair.exonLen
	}
	return length
}

// Strand returns the strand of the location.
func (s Spliced) Strand() strand.Strand { return s.strand }

// WithStrand returns the location re-annotated on the given strand.
func (s Spliced) WithStrand(st strand.Strand) Spliced {
	s.strand = st
	return s
}

// ExonCount returns the number of exons.
func (s Spliced) ExonCount() int { return len(s.inexes) + 1 }

// ExonStarts returns the exon starting positions relative to the
// start of the location, from left to right on the reference
// sequence regardless of strand.
func (s Spliced) ExonStarts() []int64 {
	starts := []int64{0}
	intronStart := s.exon0Len
	for _, pair := range s.inexes {
		starts = append(starts, intronStart+pair.intronLen)
		intronStart += pair.intronLen + pair.exonLen
	}
	return starts
}

// ExonLengths returns the exon lengths, from left to right on the
// reference sequence regardless of strand.
func (s Spliced) ExonLengths() []int64 {
	lengths := []int64{s.exon0Len}
	for _, pair := range s.inexes {
		lengths = append(lengths, pair.exonLen)
	}
	return lengths
}

// ExonTotalLength returns the total length of the exons only.
func (s Spliced) ExonTotalLength() int64 {
	var total int64
	for _, e := range s.exes() {
		total += e.length
	}
	return total
}

// ContigCover returns the contiguous location covering the whole
// spliced location, introns included.
func (s Spliced) ContigCover() Contig {
	return NewContig(s.refid, s.start, s.Length(), s.strand)
}

// ExonContigs returns one contig per exon, ordered 5' to 3' on the
// annotated strand: reference order for forward-strand locations and
// reversed for reverse-strand locations. Locations of unknown strand
// yield strand.ErrNoStrand.
func (s Spliced) ExonContigs() ([]Contig, error) {
	rs, ok := s.strand.Req()
	if !ok {
		return nil, strand.ErrNoStrand
	}
	exes := s.exes()
	contigs := make([]Contig, 0, len(exes))
	for _, e := range exes {
		contigs = append(contigs, NewContig(s.refid, s.start+e.start, e.length, s.strand))
	}
	if rs == strand.ReqReverse {
		slices.Reverse(contigs)
	}
	return contigs, nil
}

// Same reports whether two spliced locations carry the same
// information. Locations with unknown strands can be the same but are
// never equal.
func (s Spliced) Same(q Spliced) bool {
	return s.refid == q.refid &&
		s.start == q.start &&
		s.exon0Len == q.exon0Len &&
		slices.Equal(s.inexes, q.inexes) &&
		s.strand.Same(q.strand)
}

// PosInto implements Loc; see the interface documentation. Relative
// positions within a spliced location count exon bases only, and
// intronic reference positions are outside the location.
func (s Spliced) PosInto(p Pos) (Pos, error) {
	rs, ok := s.strand.Req()
	if !ok {
		return Pos{}, strand.ErrNoStrand
	}
	if s.refid != p.Refid() || p.Pos() < s.start {
		return Pos{}, ErrOutside
	}

	posOffset := p.Pos() - s.start
	var offsetBefore int64
	for _, e := range s.exes() {
		if posOffset >= e.start && posOffset < e.end() {
			offset := offsetBefore + posOffset - e.start
			if rs == strand.ReqForward {
				return NewPos("", offset, p.Strand()), nil
			}
			return NewPos("", s.ExonTotalLength()-(offset+1), p.Strand().Reverse()), nil
		}
		offsetBefore += e.length
	}
	return Pos{}, ErrOutside
}

// PosOutof implements Loc; see the interface documentation.
func (s Spliced) PosOutof(p Pos) (Pos, error) {
	rs, ok := s.strand.Req()
	if !ok {
		return Pos{}, strand.ErrNoStrand
	}

	offset := p.Pos()
	if rs == strand.ReqReverse {
		offset = s.ExonTotalLength() - (p.Pos() + 1)
	}
	if offset < 0 {
		return Pos{}, ErrOutside
	}

	for _, e := range s.exes() {
		if offset < e.length {
			return NewPos(s.refid, s.start+e.start+offset, rs.OnStrand(p.Strand())), nil
		}
		offset -= e.length
	}
	return Pos{}, ErrOutside
}

// Intersection returns the portion of the spliced location falling
// within the given contig, on the strand of the receiver. Exons are
// truncated at the contig boundaries and exons left uncovered are
// dropped. The second return is false when no exon overlaps the
// contig.
func (s Spliced) Intersection(c Contig) (Spliced, bool) {
	if s.refid != c.Refid() {
		return Spliced{}, false
	}

	var relStart int64
	if c.Start() > s.start {
		relStart = c.Start() - s.start
	}
	var relEnd int64
	if end := c.Start() + c.Length(); end > s.start {
		relEnd = end - s.start
	}

	var exonLengths, exonStarts []int64
	for _, e := range s.exes() {
		start := max(relStart, e.start)
		end := min(relEnd, e.end())
		if start < end {
			exonStarts = append(exonStarts, start-relStart)
			exonLengths = append(exonLengths, end-start)
		}
	}
	if len(exonStarts) == 0 {
		return Spliced{}, false
	}

	firstStart := exonStarts[0]
	for i := range exonStarts {
		exonStarts[i] -= firstStart
	}
	ixn, err := WithLengthsStarts(s.refid, max(s.start, c.Start())+firstStart, exonLengths, exonStarts, s.strand)
	if err != nil {
		// Unreachable: truncating a valid splicing structure yields a
		// valid splicing structure.
		return Spliced{}, false
	}
	return ixn, true
}

// String renders the location in its display form,
// "chr:start0-end0;...;startN-endN(+/-)".
func (s Spliced) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s:", s.refid)
	for i, e := range s.exes() {
		if i > 0 {
			b.WriteByte(';')
		}
		exStart := s.start + e.start
		fmt.Fprintf(&b, "%d-%d", exStart, exStart+e.length)
	}
	b.WriteString(s.strand.String())
	return b.String()
}

// MarshalText encodes the location in its display form.
func (s Spliced) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// UnmarshalText decodes a spliced location from its display form.
func (s *Spliced) UnmarshalText(text []byte) error {
	parsed, err := ParseSpliced(string(text))
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}
