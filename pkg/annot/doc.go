// Package annot provides types for positions and regions on named
// sequences (e.g. chromosomes), useful for annotating features in a
// genome.
//
// Three location types are provided: Pos, a single position; Contig, a
// contiguous region; and Spliced, a multi-exon region. All three share
// a display format of the shape "chrX:200-300(+)", with 0-based
// half-open coordinates as in BED files, and round-trip through their
// Parse functions. The Loc interface abstracts over them and supports
// mapping reference positions into and out of a location while
// honoring its strand.
package annot
