package variant

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mesh-intelligence/biotypes/pkg/genome"
	"github.com/mesh-intelligence/biotypes/pkg/sequence"
)

func TestKindLen(t *testing.T) {
	tests := []struct {
		name string
		kind Kind
		want genome.Length
	}{
		{name: "snv is one base", kind: SNV{Base: 'A'}, want: 1},
		{name: "mnv spans its sequence", kind: MNV{Seq: sequence.Sequence("ACG")}, want: 3},
		{name: "insertion spans its sequence", kind: Insertion{Seq: sequence.Sequence("TTTT")}, want: 4},
		{name: "deletion carries its length", kind: Deletion(7), want: 7},
		{name: "duplication carries its length", kind: Duplication(12), want: 12},
		{name: "inversion carries its length", kind: Inversion(5), want: 5},
		{name: "none is one base", kind: None{}, want: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.kind.Len())
		})
	}
}
