package alignment

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAlignGlobal(t *testing.T) {
	a := Align([]byte("GATTACA"), []byte("GATGACA"), DefaultScoring(), Global)

	assert.Equal(t, 5, a.Score)
	assert.Equal(t, 0, a.XStart)
	assert.Equal(t, 7, a.XEnd)
	assert.Equal(t, 0, a.YStart)
	assert.Equal(t, 7, a.YEnd)
	assert.Equal(t, []Operation{Match, Match, Match, Subst, Match, Match, Match}, a.Operations)
	assert.Equal(t, "3=1X3=", a.Cigar(false))
}

func TestAlignGlobalGaps(t *testing.T) {
	a := Align([]byte("AACCTT"), []byte("AATT"), DefaultScoring(), Global)

	assert.Equal(t, 2, a.Score)
	assert.Equal(t, []Operation{Match, Match, Ins, Ins, Match, Match}, a.Operations)
	assert.Equal(t, "2=2I2=", a.Cigar(false))
	assert.Equal(t, 6, a.XAlnLen())
	assert.Equal(t, 4, a.YAlnLen())
}

func TestAlignLocal(t *testing.T) {
	a := Align([]byte("ACGT"), []byte("TTACGTT"), DefaultScoring(), Local)

	assert.Equal(t, 4, a.Score)
	assert.Equal(t, 0, a.XStart)
	assert.Equal(t, 4, a.XEnd)
	assert.Equal(t, 2, a.YStart)
	assert.Equal(t, 6, a.YEnd)
	assert.Equal(t, []Operation{Match, Match, Match, Match}, a.Operations)
	assert.Equal(t, "4=", a.Cigar(false))
}

func TestAlignSemiglobal(t *testing.T) {
	a := Align([]byte("ACGT"), []byte("TTACGTTT"), DefaultScoring(), Semiglobal)

	assert.Equal(t, 4, a.Score)
	assert.Equal(t, 0, a.XStart)
	assert.Equal(t, 4, a.XEnd)
	assert.Equal(t, 2, a.YStart)
	assert.Equal(t, 6, a.YEnd)
	assert.Equal(t, []Operation{Match, Match, Match, Match}, a.Operations)
}

func TestCigarImplicitClips(t *testing.T) {
	a := Alignment{
		XStart: 2, XEnd: 5, XLen: 8,
		YStart: 0, YEnd: 3, YLen: 3,
		Operations: []Operation{Match, Match, Match},
	}

	assert.Equal(t, "2S3=3S", a.Cigar(false))
	assert.Equal(t, "2H3=3H", a.Cigar(true))
}

func TestCigarExplicitClips(t *testing.T) {
	a := Alignment{
		XStart: 2, XEnd: 5, XLen: 8,
		YStart: 0, YEnd: 3, YLen: 3,
		Operations: []Operation{XClip(2), Match, Subst, Match, XClip(3)},
	}

	assert.Equal(t, "2S1=1X1=3S", a.Cigar(false))
	assert.Equal(t, "2H1=1X1=3H", a.Cigar(true))
}

func TestFilterClipOperations(t *testing.T) {
	a := Alignment{
		Operations: []Operation{XClip(2), YClip(1), Match, Del, Ins, XClip(3)},
	}
	a.FilterClipOperations()

	assert.Equal(t, []Operation{Match, Del, Ins}, a.Operations)
}

func TestPath(t *testing.T) {
	a := Align([]byte("GATTACA"), []byte("GATGACA"), DefaultScoring(), Global)
	path := a.Path()

	require.Len(t, path, 7)
	assert.Equal(t, Step{X: 1, Y: 1, Op: Match}, path[0])
	assert.Equal(t, Step{X: 4, Y: 4, Op: Subst}, path[3])
	assert.Equal(t, Step{X: 7, Y: 7, Op: Match}, path[6])
}

func TestPretty(t *testing.T) {
	x, y := []byte("GATTACA"), []byte("GATGACA")
	a := Align(x, y, DefaultScoring(), Global)

	assert.Equal(t, "GATTACA\n|||\\|||\nGATGACA\n", a.Pretty(x, y, 0))
	assert.Equal(t, "GATT\n|||\\\nGATG\n\nACA\n|||\nACA\n", a.Pretty(x, y, 4))
}

func TestPrettyGaps(t *testing.T) {
	x, y := []byte("AACCTT"), []byte("AATT")
	a := Align(x, y, DefaultScoring(), Global)

	assert.Equal(t, "AACCTT\n||++||\nAA--TT\n", a.Pretty(x, y, 0))
}

func TestOperationAsMapKey(t *testing.T) {
	counts := map[Operation]int{}
	for _, op := range []Operation{Match, Subst, Match, XClip(2), XClip(2), YClip(2)} {
		counts[op]++
	}

	assert.Equal(t, 2, counts[Match])
	assert.Equal(t, 1, counts[Subst])
	assert.Equal(t, 2, counts[XClip(2)])
	assert.Equal(t, 1, counts[YClip(2)])
	assert.Equal(t, 0, counts[Del])
}

func TestOperationString(t *testing.T) {
	assert.Equal(t, "Match", Match.String())
	assert.Equal(t, "XClip(7)", XClip(7).String())
	assert.Equal(t, "YClip(0)", YClip(0).String())
}

func TestParseMode(t *testing.T) {
	tests := []struct {
		in   string
		want Mode
	}{
		{"local", Local},
		{"Semiglobal", Semiglobal},
		{"GLOBAL", Global},
		{"custom", Custom},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseMode(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	_, err := ParseMode("sideways")
	assert.ErrorIs(t, err, ErrInvalidMode)
}

func TestModeFlagValue(t *testing.T) {
	var m Mode
	require.NoError(t, m.Set("global"))
	assert.Equal(t, Global, m)
	assert.Equal(t, "mode", m.Type())
	assert.ErrorIs(t, m.Set("bogus"), ErrInvalidMode)
}

func TestModeText(t *testing.T) {
	text, err := Semiglobal.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "semiglobal", string(text))

	var m Mode
	require.NoError(t, m.UnmarshalText([]byte("custom")))
	assert.Equal(t, Custom, m)
}
