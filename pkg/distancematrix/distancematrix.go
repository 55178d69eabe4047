// Package distancematrix provides pairwise distance matrices over
// named taxa, stored square or triangular.
package distancematrix

import (
	"errors"
	"fmt"
)

var (
	// ErrLengthMismatch reports that the name list and the distance
	// rows do not have matching lengths.
	ErrLengthMismatch = errors.New("names and matrix do not have matching length")
	// ErrBadShape reports a distance matrix that is neither square nor
	// triangular.
	ErrBadShape = errors.New("matrix has unrecognized shape")
)

// Type describes the storage shape of a distance matrix: square, lower
// triangular, or upper triangular. Triangular shapes exclude the
// diagonal. Square matrices are assumed symmetric; this is not
// enforced.
type Type uint8

const (
	Square Type = iota
	Lower
	Upper
)

// String returns the shape name.
func (t Type) String() string {
	switch t {
	case Square:
		return "square"
	case Lower:
		return "lower"
	case Upper:
		return "upper"
	default:
		return fmt.Sprintf("type(%d)", uint8(t))
	}
}

// Matrix is a distance matrix: a list of taxon names together with the
// pairwise distances between them. Distances holds one row per name;
// row lengths determine the shape.
type Matrix struct {
	Names     []string
	Distances [][]float64
	Type      Type
}

// New builds a distance matrix from names and distance rows. There
// must be one row per name, and the rows must form a square matrix, a
// lower triangle (row i has i entries), or an upper triangle (row i
// has len(names)-1-i entries). Ambiguous shapes resolve in that order.
func New(names []string, distances [][]float64) (*Matrix, error) {
	if len(names) != len(distances) {
		return nil, ErrLengthMismatch
	}
	n := len(names)
	square, lower, upper := true, true, true
	for i, row := range distances {
		square = square && len(row) == n
		lower = lower && len(row) == i
		upper = upper && len(row) == n-1-i
	}

	var typ Type
	switch {
	case square:
		typ = Square
	case lower:
		typ = Lower
	case upper:
		typ = Upper
	default:
		return nil, ErrBadShape
	}
	return &Matrix{Names: names, Distances: distances, Type: typ}, nil
}

// Len returns the number of taxa (rows) in the matrix.
func (m *Matrix) Len() int {
	return len(m.Names)
}

// index maps a logical (i, j) pair to the storage cell for the
// matrix's shape. For triangular matrices i and j must be distinct,
// and (i, j) and (j, i) map to the same cell.
func (m *Matrix) index(i, j int) (int, int) {
	switch m.Type {
	case Square:
		return i, j
	case Lower:
		if i == j {
			panic("distancematrix: diagonal access into triangular matrix")
		}
		return max(i, j), min(i, j)
	default:
		if i == j {
			panic("distancematrix: diagonal access into triangular matrix")
		}
		return min(i, j), max(i, j) - min(i, j) - 1
	}
}

// At returns the distance between taxa i and j. Indices address the
// matrix as if it were square regardless of its storage shape.
func (m *Matrix) At(i, j int) float64 {
	si, sj := m.index(i, j)
	return m.Distances[si][sj]
}

// Set stores the distance between taxa i and j. On triangular
// matrices setting (i, j) also sets (j, i).
func (m *Matrix) Set(i, j int, d float64) {
	si, sj := m.index(i, j)
	m.Distances[si][sj] = d
}
