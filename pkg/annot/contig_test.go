package annot

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/biotypes/pkg/strand"
)

func mustParseContig(t *testing.T, s string) Contig {
	t.Helper()
	c, err := ParseContig(s)
	require.NoError(t, err)
	return c
}

func mustParsePos(t *testing.T, s string) Pos {
	t.Helper()
	p, err := ParsePos(s)
	require.NoError(t, err)
	return p
}

func TestContigStringRoundTrip(t *testing.T) {
	tma19 := NewContig("chrXI", 334412, 334916-334412, strand.Reverse)
	assert.Equal(t, "chrXI:334412-334916(-)", tma19.String())

	parsed := mustParseContig(t, tma19.String())
	assert.Equal(t, tma19, parsed)

	unstranded := mustParseContig(t, "chrX:100-200")
	assert.Equal(t, "chrX:100-200", unstranded.String())
	assert.True(t, unstranded.Strand().IsUnknown())
}

func TestParseContigErrors(t *testing.T) {
	_, err := ParseContig("chrX:100")
	assert.ErrorIs(t, err, ErrBadAnnot)

	_, err = ParseContig("chrX:200-100(+)")
	assert.ErrorIs(t, err, ErrEndBeforeStart)
}

func TestContigFirstAndLast(t *testing.T) {
	tma22 := mustParseContig(t, "chrX:461829-462426(+)")
	first, err := FirstPos(tma22)
	require.NoError(t, err)
	assert.Equal(t, "chrX:461829(+)", first.String())
	last, err := LastPos(tma22)
	require.NoError(t, err)
	assert.Equal(t, "chrX:462425(+)", last.String())

	tma19 := mustParseContig(t, "chrXI:334412-334916(-)")
	first, err = FirstPos(tma19)
	require.NoError(t, err)
	assert.Equal(t, "chrXI:334915(-)", first.String())
	last, err = LastPos(tma19)
	require.NoError(t, err)
	assert.Equal(t, "chrXI:334412(-)", last.String())

	_, err = FirstPos(mustParseContig(t, "chrX:100-200"))
	assert.ErrorIs(t, err, strand.ErrNoStrand)
}

func TestContigWithFirstLength(t *testing.T) {
	tma22First := NewPos("chrX", 461829, strand.Forward)
	tma22, err := WithFirstLength(tma22First, 462426-461829)
	require.NoError(t, err)
	assert.Equal(t, "chrX:461829-462426(+)", tma22.String())

	tma19First := NewPos("chrXI", 335015, strand.Reverse)
	tma19, err := WithFirstLength(tma19First, 335016-334412)
	require.NoError(t, err)
	assert.Equal(t, "chrXI:334412-335016(-)", tma19.String())

	// A single position needs no orientation.
	single, err := WithFirstLength(NewPos("chrI", 100, strand.Unknown), 1)
	require.NoError(t, err)
	assert.Equal(t, "chrI:100-101", single.String())

	_, err = WithFirstLength(NewPos("chrI", 100, strand.Unknown), 10)
	assert.ErrorIs(t, err, strand.ErrNoStrand)
}

func TestContigExtend(t *testing.T) {
	tma22 := NewContig("chrX", 461829, 462426-461829, strand.Forward)
	require.NoError(t, tma22.ExtendUpstream(100))
	assert.Equal(t, "chrX:461729-462426(+)", tma22.String())
	require.NoError(t, tma22.ExtendDownstream(100))
	assert.Equal(t, "chrX:461729-462526(+)", tma22.String())

	tma19 := NewContig("chrXI", 334412, 334916-334412, strand.Reverse)
	require.NoError(t, tma19.ExtendUpstream(100))
	assert.Equal(t, "chrXI:334412-335016(-)", tma19.String())
	require.NoError(t, tma19.ExtendDownstream(100))
	assert.Equal(t, "chrXI:334312-335016(-)", tma19.String())

	unk := NewContig("chrI", 100, 50, strand.Unknown)
	assert.ErrorIs(t, unk.ExtendUpstream(10), strand.ErrNoStrand)
	assert.ErrorIs(t, unk.ExtendDownstream(10), strand.ErrNoStrand)
}

func TestContigPosIntoOutof(t *testing.T) {
	tma22 := mustParseContig(t, "chrX:461829-462426(+)")

	tests := []struct {
		name       string
		refPos     string
		wantOffset int64
		wantStrand strand.Strand
		wantErr    error
	}{
		{name: "first base forward", refPos: "chrX:461829(+)", wantOffset: 0, wantStrand: strand.Forward},
		{name: "interior reverse read", refPos: "chrX:461839(-)", wantOffset: 10, wantStrand: strand.Reverse},
		{name: "last base", refPos: "chrX:462425(+)", wantOffset: 596, wantStrand: strand.Forward},
		{name: "one base before start", refPos: "chrX:461828(+)", wantErr: ErrOutside},
		{name: "wrong refid", refPos: "chrV:461829(+)", wantErr: ErrOutside},
		{name: "one base past end", refPos: "chrX:462426(+)", wantErr: ErrOutside},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := mustParsePos(t, tt.refPos)
			into, err := tma22.PosInto(p)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.True(t, into.Same(NewPos("", tt.wantOffset, tt.wantStrand)))

			back, err := tma22.PosOutof(into)
			require.NoError(t, err)
			assert.True(t, back.Same(p))
		})
	}
}

func TestContigIntersection(t *testing.T) {
	tests := []struct {
		name string
		ca   string
		cb   string
		want string // empty means no intersection
	}{
		{name: "overlap at start", ca: "chrX:461829-462426(+)", cb: "chrX:461800-461900(+)", want: "chrX:461829-461900(+)"},
		{name: "reverse receiver keeps strand", ca: "chrX:461829-462426(-)", cb: "chrX:461800-461900(+)", want: "chrX:461829-461900(-)"},
		{name: "reverse argument ignored", ca: "chrX:461829-462426(+)", cb: "chrX:461800-461900(-)", want: "chrX:461829-461900(+)"},
		{name: "overlap at end", ca: "chrX:461829-462426(+)", cb: "chrX:462000-463000(+)", want: "chrX:462000-462426(+)"},
		{name: "argument covers receiver", ca: "chrX:461829-462426(+)", cb: "chrX:461000-463000(+)", want: "chrX:461829-462426(+)"},
		{name: "receiver covers argument", ca: "chrX:461829-462426(+)", cb: "chrX:462000-462100(+)", want: "chrX:462000-462100(+)"},
		{name: "disjoint before", ca: "chrX:461829-462426(+)", cb: "chrX:461000-461500(+)"},
		{name: "disjoint after", ca: "chrX:461829-462426(+)", cb: "chrX:463000-463500(+)"},
		{name: "different refid", ca: "chrX:461829-462426(+)", cb: "chrV:461000-463000(+)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ca := mustParseContig(t, tt.ca)
			cb := mustParseContig(t, tt.cb)
			got, ok := ca.Intersection(cb)
			if tt.want == "" {
				assert.False(t, ok)
				return
			}
			require.True(t, ok)
			assert.Equal(t, tt.want, got.String())
		})
	}
}

func TestCoverContig(t *testing.T) {
	tma22 := mustParseContig(t, "chrX:461829-462426(+)")
	assert.Equal(t, tma22, CoverContig(tma22))

	p := NewPos("chrIV", 683946, strand.Reverse)
	assert.Equal(t, "chrIV:683946-683947(-)", CoverContig(p).String())
}
