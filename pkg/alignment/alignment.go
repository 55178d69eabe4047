package alignment

import (
	"fmt"
	"strings"
)

// Alignment is the result of aligning a query sequence x against a
// reference sequence y.
//
// XStart/XEnd and YStart/YEnd delimit the aligned half-open intervals
// of x and y; XLen and YLen are the full sequence lengths. Operations
// describes the aligned interval step by step and must be consistent
// with the coordinates.
type Alignment struct {
	// Score of the alignment under the scoring scheme that produced
	// it.
	Score int

	XStart int
	XEnd   int
	XLen   int

	YStart int
	YEnd   int
	YLen   int

	Operations []Operation
	Mode       Mode
}

// XAlnLen returns the number of x bases covered by the alignment.
func (a *Alignment) XAlnLen() int { return a.XEnd - a.XStart }

// YAlnLen returns the number of y bases covered by the alignment.
func (a *Alignment) YAlnLen() int { return a.YEnd - a.YStart }

// FilterClipOperations removes all clip operations from the
// alignment's operation list.
func (a *Alignment) FilterClipOperations() {
	filtered := a.Operations[:0]
	for _, op := range a.Operations {
		if !op.IsClip() {
			filtered = append(filtered, op)
		}
	}
	a.Operations = filtered
}

func opCigarChar(op Operation) byte {
	switch op.Op {
	case OpMatch:
		return '='
	case OpSubst:
		return 'X'
	case OpIns:
		return 'I'
	default:
		return 'D'
	}
}

// Cigar returns the CIGAR string of the alignment with respect to x:
// "=" for matches, "X" for substitutions, "I" for insertions (gaps in
// y), "D" for deletions (gaps in x), and "S" or "H" (with hardClip)
// for the unaligned ends of x. Clip lengths come from explicit XClip
// operations when present, and from XStart and XLen-XEnd otherwise.
// YClip operations have no CIGAR rendering.
func (a *Alignment) Cigar(hardClip bool) string {
	clipChar := byte('S')
	if hardClip {
		clipChar = 'H'
	}

	var prefixClip, suffixClip int
	explicit := false
	core := make([]Operation, 0, len(a.Operations))
	for _, op := range a.Operations {
		switch op.Op {
		case OpXClip:
			explicit = true
			if len(core) == 0 {
				prefixClip += op.Len
			} else {
				suffixClip += op.Len
			}
		case OpYClip:
			// not part of the x CIGAR
		default:
			core = append(core, op)
		}
	}
	if !explicit {
		prefixClip = a.XStart
		suffixClip = a.XLen - a.XEnd
	}

	var b strings.Builder
	if prefixClip > 0 {
		fmt.Fprintf(&b, "%d%c", prefixClip, clipChar)
	}
	for i := 0; i < len(core); {
		j := i
		for j < len(core) && core[j].Op == core[i].Op {
			j++
		}
		fmt.Fprintf(&b, "%d%c", j-i, opCigarChar(core[i]))
		i = j
	}
	if suffixClip > 0 {
		fmt.Fprintf(&b, "%d%c", suffixClip, clipChar)
	}
	return b.String()
}

// Step is one entry of an alignment path: the x and y coordinates
// reached after applying Op.
type Step struct {
	X  int
	Y  int
	Op Operation
}

// Path returns the coordinates along the aligned path, one step per
// non-clip operation.
func (a *Alignment) Path() []Step {
	steps := make([]Step, 0, len(a.Operations))
	xi, yi := a.XStart, a.YStart
	for _, op := range a.Operations {
		switch op.Op {
		case OpMatch, OpSubst:
			xi++
			yi++
		case OpIns:
			xi++
		case OpDel:
			yi++
		default:
			continue
		}
		steps = append(steps, Step{X: xi, Y: yi, Op: op})
	}
	return steps
}

// Pretty renders the alignment in three rows (x on top, y on the
// bottom) wrapped at ncol columns. The middle row marks each column:
// "|" for a match, "\" for a substitution, "+" for an insertion, "x"
// for a deletion, and a blank over clipped bases.
func (a *Alignment) Pretty(x, y []byte, ncol int) string {
	var xRow, mRow, yRow strings.Builder

	// Leading clip operations consume the bases just before the
	// aligned interval.
	xi, yi := a.XStart, a.YStart
	for _, op := range a.Operations {
		if !op.IsClip() {
			break
		}
		if op.Op == OpXClip {
			xi -= op.Len
		} else {
			yi -= op.Len
		}
	}

	for _, op := range a.Operations {
		switch op.Op {
		case OpMatch:
			xRow.WriteByte(x[xi])
			mRow.WriteByte('|')
			yRow.WriteByte(y[yi])
			xi++
			yi++
		case OpSubst:
			xRow.WriteByte(x[xi])
			mRow.WriteByte('\\')
			yRow.WriteByte(y[yi])
			xi++
			yi++
		case OpIns:
			xRow.WriteByte(x[xi])
			mRow.WriteByte('+')
			yRow.WriteByte('-')
			xi++
		case OpDel:
			xRow.WriteByte('-')
			mRow.WriteByte('x')
			yRow.WriteByte(y[yi])
			yi++
		case OpXClip:
			for n := 0; n < op.Len; n++ {
				xRow.WriteByte(x[xi])
				mRow.WriteByte(' ')
				yRow.WriteByte(' ')
				xi++
			}
		case OpYClip:
			for n := 0; n < op.Len; n++ {
				xRow.WriteByte(' ')
				mRow.WriteByte(' ')
				yRow.WriteByte(y[yi])
				yi++
			}
		}
	}

	return wrapRows(xRow.String(), mRow.String(), yRow.String(), ncol)
}

// wrapRows interleaves three equal-length rows into blocks of at most
// ncol columns, blocks separated by a blank line.
func wrapRows(xRow, mRow, yRow string, ncol int) string {
	if ncol < 1 {
		ncol = len(xRow)
	}
	var b strings.Builder
	for start := 0; start < len(xRow); start += ncol {
		end := min(start+ncol, len(xRow))
		if start > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(xRow[start:end])
		b.WriteByte('\n')
		b.WriteString(mRow[start:end])
		b.WriteByte('\n')
		b.WriteString(yRow[start:end])
		b.WriteByte('\n')
	}
	return b.String()
}
