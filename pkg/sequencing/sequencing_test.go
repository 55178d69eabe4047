package sequencing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseReadPairOrientation(t *testing.T) {
	tests := []struct {
		in   string
		want ReadPairOrientation
	}{
		{"F1R2", F1R2},
		{"f1r2", F1R2},
		{"R2F1", R2F1},
		{"r1r2", R1R2},
		{"None", NoOrientation},
		{"none", NoOrientation},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseReadPairOrientation(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	_, err := ParseReadPairOrientation("F3R4")
	assert.ErrorIs(t, err, ErrInvalidOrientation)
}

func TestOrientationString(t *testing.T) {
	assert.Equal(t, "R1F2", R1F2.String())
	assert.Equal(t, "None", NoOrientation.String())
	assert.Len(t, Orientations(), 9)
}
