package annot

import (
	"github.com/mesh-intelligence/biotypes/pkg/strand"
)

// Loc is a sequence location: a defined region on a named chromosome
// (or other reference sequence), which may also carry strand
// information.
type Loc interface {
	// Refid is the name of the reference sequence (chromosome name,
	// etc.).
	Refid() string
	// Start is the lowest, left-most, 5'-most position on the
	// reference sequence (0-based).
	Start() int64
	// Length is the length of the region spanned on the reference.
	Length() int64
	// Strand of the location.
	Strand() strand.Strand

	// PosInto maps a sequence position on the reference sequence into
	// a relative position within the location. The first position of
	// the location maps to 0, the next to 1, and so forth. The
	// location must have a known strand; for reverse-strand
	// locations, the 3'-most reference position maps to 0 and the
	// strand of the mapped position is flipped. The mapped position
	// carries an empty refid. Positions on a different reference
	// sequence, or outside the location, yield ErrOutside; locations
	// of unknown strand yield strand.ErrNoStrand. PosInto is the
	// inverse of PosOutof.
	PosInto(p Pos) (Pos, error)

	// PosOutof maps a relative position within the location out onto
	// the enclosing reference sequence. Relative position 0 maps to
	// the first position of the location, taking strand into account.
	// Negative positions and positions past the end of the location
	// yield ErrOutside. The refid of p is ignored; the mapped
	// position receives the location's refid. PosOutof is the inverse
	// of PosInto.
	PosOutof(p Pos) (Pos, error)
}

// CoverContig returns the contiguous location that fully covers loc,
// spliced or not.
func CoverContig(loc Loc) Contig {
	return NewContig(loc.Refid(), loc.Start(), loc.Length(), loc.Strand())
}

// FirstPos returns the first position in a location on its annotated
// strand: the 5'-most reference position for forward-strand locations
// and the 3'-most for reverse-strand locations. The first position of
// a zero-length location is its start on either strand. Locations of
// unknown strand yield strand.ErrNoStrand.
func FirstPos(loc Loc) (Pos, error) {
	rs, ok := loc.Strand().Req()
	if !ok {
		return Pos{}, strand.ErrNoStrand
	}
	if rs == strand.ReqForward || loc.Length() == 0 {
		return NewPos(loc.Refid(), loc.Start(), loc.Strand()), nil
	}
	return NewPos(loc.Refid(), loc.Start()+loc.Length()-1, loc.Strand()), nil
}

// LastPos returns the last position in a location on its annotated
// strand. The last position of a zero-length location is its start on
// either strand. Locations of unknown strand yield strand.ErrNoStrand.
func LastPos(loc Loc) (Pos, error) {
	rs, ok := loc.Strand().Req()
	if !ok {
		return Pos{}, strand.ErrNoStrand
	}
	if rs == strand.ReqReverse || loc.Length() == 0 {
		return NewPos(loc.Refid(), loc.Start(), loc.Strand()), nil
	}
	return NewPos(loc.Refid(), loc.Start()+loc.Length()-1, loc.Strand()), nil
}
