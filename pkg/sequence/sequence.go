// Package sequence provides elementary types for biological sequences.
package sequence

// Base is a single DNA base.
type Base = byte

// AminoAcid is a single amino acid.
type AminoAcid = byte

// Sequence is a biological sequence.
type Sequence []byte

// String returns the sequence as text.
func (s Sequence) String() string { return string(s) }

// Len returns the sequence length.
func (s Sequence) Len() int { return len(s) }

// complement maps a DNA base to its complement. Unrecognized bases
// complement to 'N'.
func complement(b Base) Base {
	switch b {
	case 'A':
		return 'T'
	case 'T':
		return 'A'
	case 'C':
		return 'G'
	case 'G':
		return 'C'
	case 'a':
		return 't'
	case 't':
		return 'a'
	case 'c':
		return 'g'
	case 'g':
		return 'c'
	case 'N', 'n':
		return b
	default:
		return 'N'
	}
}

// ReverseComplement returns the reverse complement of a DNA sequence.
// The receiver is not modified.
func (s Sequence) ReverseComplement() Sequence {
	out := make(Sequence, len(s))
	for i, b := range s {
		out[len(s)-1-i] = complement(b)
	}
	return out
}

// GC returns the fraction of G and C bases in the sequence,
// case-insensitive. An empty sequence has GC content 0.
func (s Sequence) GC() float64 {
	if len(s) == 0 {
		return 0
	}
	count := 0
	for _, b := range s {
		if b == 'G' || b == 'C' || b == 'g' || b == 'c' {
			count++
		}
	}
	return float64(count) / float64(len(s))
}
