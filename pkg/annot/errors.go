package annot

import "errors"

// Errors that arise in parsing annotations.
var (
	ErrBadAnnot       = errors.New("malformed annotation display string")
	ErrEndBeforeStart = errors.New("ending position before starting position")
)

// Errors that arise in manipulating annotations. Operations that need
// an orientation report strand.ErrNoStrand when the location strand is
// unknown.
var (
	ErrOutside = errors.New("position outside location")
)

// Errors that arise in building splicing structures.
var (
	ErrNoExons       = errors.New("no exons")
	ErrBlockStart    = errors.New("exons do not start at position 0")
	ErrBlockMismatch = errors.New("number of exon starts != number of exon lengths")
	ErrBlockOverlap  = errors.New("exon blocks overlap")
	ErrExonLength    = errors.New("invalid (non-positive) exon length")
	ErrIntronLength  = errors.New("invalid (non-positive) intron length")
)
