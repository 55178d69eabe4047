package annot

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mesh-intelligence/biotypes/pkg/strand"
)

func TestRefIDSetIntern(t *testing.T) {
	refids := NewRefIDSet()

	pau8 := NewContig(refids.Intern("chrI"), 1807, 2170-1807, strand.Reverse)
	seo1 := NewContig(refids.Intern("chrI"), 7235, 9017-7235, strand.Reverse)
	tda8 := NewContig(refids.Intern("chrI"), 13363, 13744-13363, strand.Reverse)

	assert.Equal(t, "chrI", pau8.Refid())
	assert.Equal(t, pau8.Refid(), seo1.Refid())
	assert.Equal(t, seo1.Refid(), tda8.Refid())
	assert.Equal(t, 1, refids.Len())

	refids.Intern("chrII")
	assert.Equal(t, 2, refids.Len())

	// Repeated interning returns the canonical copy.
	a := refids.Intern("chrII")
	b := refids.Intern("chrII")
	assert.Equal(t, a, b)
}
