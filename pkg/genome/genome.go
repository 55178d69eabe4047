// Package genome provides fundamental types for positions and
// intervals on genomic reference sequences.
package genome

import "cmp"

// Position is a 0-based coordinate on a contig.
type Position = int64

// Length is the length of a genomic feature.
type Length = int64

// Range is a half-open interval of positions, like BED coordinates.
type Range struct {
	Start Position `json:"start"`
	End   Position `json:"end"`
}

// Positioned is implemented by anything that occupies a single locus
// on a named contig, e.g. a variant record.
type Positioned interface {
	// Contig is the identifier of the reference sequence, e.g. a
	// chromosome name.
	Contig() string
	// Pos is the position on the contig.
	Pos() Position
}

// Ranged is implemented by anything that spans an interval on a named
// contig, e.g. a feature annotation.
type Ranged interface {
	// Contig is the identifier of the reference sequence.
	Contig() string
	// Range is the interval spanned on the contig.
	Range() Range
}

// Contains reports whether the interval r contains the locus p.
func Contains(r Ranged, p Positioned) bool {
	if r.Contig() != p.Contig() {
		return false
	}
	rng := r.Range()
	return p.Pos() >= rng.Start && p.Pos() < rng.End
}

// Locus is a single position on a named contig.
type Locus struct {
	contig string
	pos    Position
}

// NewLocus constructs a locus at the given position on a contig.
func NewLocus(contig string, pos Position) Locus {
	return Locus{contig: contig, pos: pos}
}

// Contig returns the reference sequence identifier.
func (l Locus) Contig() string { return l.contig }

// Pos returns the position on the contig.
func (l Locus) Pos() Position { return l.pos }

// SetPos moves the locus to the given position.
func (l *Locus) SetPos(pos Position) { l.pos = pos }

// Compare orders loci by contig name, then position.
func (l Locus) Compare(other Locus) int {
	if c := cmp.Compare(l.contig, other.contig); c != 0 {
		return c
	}
	return cmp.Compare(l.pos, other.pos)
}

// Interval is a half-open interval on a named contig.
type Interval struct {
	contig string
	rng    Range
}

// NewInterval constructs an interval covering rng on a contig.
func NewInterval(contig string, rng Range) Interval {
	return Interval{contig: contig, rng: rng}
}

// Contig returns the reference sequence identifier.
func (i Interval) Contig() string { return i.contig }

// Range returns the interval on the contig.
func (i Interval) Range() Range { return i.rng }

// SetRange replaces the interval on the contig.
func (i *Interval) SetRange(rng Range) { i.rng = rng }

// Contains reports whether the interval contains the given locus.
func (i Interval) Contains(p Positioned) bool {
	return Contains(i, p)
}

// Compare orders intervals by contig name, then start, then end.
func (i Interval) Compare(other Interval) int {
	if c := cmp.Compare(i.contig, other.contig); c != 0 {
		return c
	}
	if c := cmp.Compare(i.rng.Start, other.rng.Start); c != 0 {
		return c
	}
	return cmp.Compare(i.rng.End, other.rng.End)
}
