// Package variant provides types describing genomic variants.
package variant

import (
	"github.com/mesh-intelligence/biotypes/pkg/genome"
	"github.com/mesh-intelligence/biotypes/pkg/sequence"
)

// Kind is the kind of a genomic variant. The concrete kinds are SNV,
// MNV, Insertion, Deletion, Duplication, Inversion, and None.
type Kind interface {
	// Len is the length of the variant on the reference in bases.
	Len() genome.Length
}

// Variant provides variant information. It can, for example, be
// implemented by file readers.
type Variant interface {
	genome.Positioned
	Kind() Kind
}

// SNV is a single-nucleotide variant with the given alternative base.
type SNV struct {
	Base sequence.Base
}

// MNV is a multi-nucleotide variant with the given alternative
// sequence.
type MNV struct {
	Seq sequence.Sequence
}

// Insertion of the given sequence.
type Insertion struct {
	Seq sequence.Sequence
}

// Deletion of the given number of bases.
type Deletion genome.Length

// Duplication of the given number of bases.
type Duplication genome.Length

// Inversion of the given number of bases.
type Inversion genome.Length

// None marks a record that carries no variant, e.g. a reference call.
type None struct{}

func (SNV) Len() genome.Length           { return 1 }
func (v MNV) Len() genome.Length         { return genome.Length(len(v.Seq)) }
func (v Insertion) Len() genome.Length   { return genome.Length(len(v.Seq)) }
func (v Deletion) Len() genome.Length    { return genome.Length(v) }
func (v Duplication) Len() genome.Length { return genome.Length(v) }
func (v Inversion) Len() genome.Length   { return genome.Length(v) }
func (None) Len() genome.Length          { return 1 }
