// Package strand provides strand information for annotations on
// biological sequences.
//
// Two types are provided: Strand, which admits an unknown orientation,
// and ReqStrand, for annotations that are guaranteed to be stranded.
// By convention, as in BED and GFF files, the forward strand is "+",
// the reverse strand is "-", and an unknown or unspecified strand is ".".
package strand
