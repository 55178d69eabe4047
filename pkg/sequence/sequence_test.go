package sequence

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestReverseComplement(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "empty", in: "", want: ""},
		{name: "simple", in: "ACGT", want: "ACGT"},
		{name: "asymmetric", in: "AACGTT", want: "AACGTT"},
		{name: "with run", in: "GATTACA", want: "TGTAATC"},
		{name: "keeps N", in: "ANT", want: "ANT"},
		{name: "unknown base becomes N", in: "AXT", want: "ANT"},
		{name: "lower case", in: "acgt", want: "acgt"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Sequence(tt.in).ReverseComplement()
			assert.Equal(t, tt.want, got.String())
		})
	}
}

func TestGC(t *testing.T) {
	assert.Zero(t, Sequence("").GC())
	assert.Equal(t, 0.5, Sequence("ACGT").GC())
	assert.Equal(t, 1.0, Sequence("GGCC").GC())
	assert.Equal(t, 0.0, Sequence("ATAT").GC())
	assert.Equal(t, 0.5, Sequence("acgt").GC())
}
