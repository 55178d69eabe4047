// Package sequencing provides types for investigating sequencing
// data.
package sequencing

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidOrientation reports an unrecognized read pair orientation
// name.
var ErrInvalidOrientation = errors.New("invalid read pair orientation")

// ReadPairOrientation is a readout of read mapping: the relative
// orientation of the two reads of a pair on the reference contig.
// F1R2 means the forward read comes first, followed by the reverse
// read, on the same contig.
type ReadPairOrientation string

const (
	F1R2 ReadPairOrientation = "F1R2"
	F2R1 ReadPairOrientation = "F2R1"
	R1F2 ReadPairOrientation = "R1F2"
	R2F1 ReadPairOrientation = "R2F1"
	F1F2 ReadPairOrientation = "F1F2"
	R1R2 ReadPairOrientation = "R1R2"
	F2F1 ReadPairOrientation = "F2F1"
	R2R1 ReadPairOrientation = "R2R1"
	// NoOrientation marks pairs whose orientation could not be
	// determined, for example when one mate is unmapped.
	NoOrientation ReadPairOrientation = "None"
)

// Orientations lists all defined read pair orientations,
// NoOrientation last.
func Orientations() []ReadPairOrientation {
	return []ReadPairOrientation{F1R2, F2R1, R1F2, R2F1, F1F2, R1R2, F2F1, R2R1, NoOrientation}
}

// ParseReadPairOrientation converts an orientation name into a
// ReadPairOrientation, case-insensitively.
func ParseReadPairOrientation(s string) (ReadPairOrientation, error) {
	for _, o := range Orientations() {
		if strings.EqualFold(s, string(o)) {
			return o, nil
		}
	}
	return NoOrientation, fmt.Errorf("%q: %w", s, ErrInvalidOrientation)
}

// String returns the orientation name, such as "F1R2".
func (o ReadPairOrientation) String() string {
	return string(o)
}
