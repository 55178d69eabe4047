// Package alignment provides types describing pairwise sequence
// alignments, together with a basic dynamic-programming aligner.
//
// Throughout the package, x is the query sequence and y the reference
// (subject) sequence. Coordinates are 0-based and intervals are
// half-open.
package alignment
