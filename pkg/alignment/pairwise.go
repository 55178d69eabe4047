package alignment

import "slices"

// Scoring is a linear-gap scoring scheme for pairwise alignment.
type Scoring struct {
	Match    int // score for an identical pair, usually positive
	Mismatch int // score for a substituted pair, usually negative
	Gap      int // score per gap base, usually negative
}

// DefaultScoring returns the unit scoring scheme: +1 match, -1
// mismatch, -1 gap.
func DefaultScoring() Scoring {
	return Scoring{Match: 1, Mismatch: -1, Gap: -1}
}

// traceback directions
const (
	tbStop = iota
	tbDiag
	tbUp   // consumes x only (Ins)
	tbLeft // consumes y only (Del)
)

// Align computes a pairwise alignment of x against y under the given
// scoring scheme.
//
// Global mode aligns all of x with all of y (Needleman-Wunsch);
// Semiglobal aligns all of x with a substring of y; Local aligns a
// substring of x with a substring of y (Smith-Waterman). Custom is
// aligned like Global and marked as Custom.
//
// The aligner fills a full dynamic-programming matrix, so it is meant
// for sequences of moderate length, not whole chromosomes.
func Align(x, y []byte, sc Scoring, mode Mode) Alignment {
	m, n := len(x), len(y)

	score := make([][]int, m+1)
	tb := make([][]uint8, m+1)
	for i := range score {
		score[i] = make([]int, n+1)
		tb[i] = make([]uint8, n+1)
	}

	for i := 1; i <= m; i++ {
		switch mode {
		case Local:
			// free x prefix
		default:
			score[i][0] = i * sc.Gap
			tb[i][0] = tbUp
		}
	}
	for j := 1; j <= n; j++ {
		switch mode {
		case Global, Custom:
			score[0][j] = j * sc.Gap
			tb[0][j] = tbLeft
		default:
			// free y prefix for local and semiglobal alignments
		}
	}

	for i := 1; i <= m; i++ {
		for j := 1; j <= n; j++ {
			pair := sc.Mismatch
			if x[i-1] == y[j-1] {
				pair = sc.Match
			}
			best := score[i-1][j-1] + pair
			dir := uint8(tbDiag)
			if up := score[i-1][j] + sc.Gap; up > best {
				best = up
				dir = tbUp
			}
			if left := score[i][j-1] + sc.Gap; left > best {
				best = left
				dir = tbLeft
			}
			if mode == Local && best <= 0 {
				best = 0
				dir = tbStop
			}
			score[i][j] = best
			tb[i][j] = dir
		}
	}

	// Pick the traceback origin for each mode.
	endI, endJ := m, n
	switch mode {
	case Semiglobal:
		for j := 0; j <= n; j++ {
			if score[m][j] > score[m][endJ] {
				endJ = j
			}
		}
	case Local:
		endI, endJ = 0, 0
		for i := 0; i <= m; i++ {
			for j := 0; j <= n; j++ {
				if score[i][j] > score[endI][endJ] {
					endI, endJ = i, j
				}
			}
		}
	}

	var ops []Operation
	i, j := endI, endJ
	for i > 0 || j > 0 {
		if mode == Local && score[i][j] == 0 {
			break
		}
		if mode == Semiglobal && i == 0 {
			break
		}
		switch tb[i][j] {
		case tbDiag:
			if x[i-1] == y[j-1] {
				ops = append(ops, Match)
			} else {
				ops = append(ops, Subst)
			}
			i--
			j--
		case tbUp:
			ops = append(ops, Ins)
			i--
		case tbLeft:
			ops = append(ops, Del)
			j--
		default:
			i, j = 0, 0
		}
	}
	slices.Reverse(ops)

	return Alignment{
		Score:      score[endI][endJ],
		XStart:     i,
		XEnd:       endI,
		XLen:       m,
		YStart:     j,
		YEnd:       endJ,
		YLen:       n,
		Operations: ops,
		Mode:       mode,
	}
}
