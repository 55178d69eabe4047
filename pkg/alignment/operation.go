package alignment

import "fmt"

// Op enumerates the edit operation kinds of an alignment step.
type Op uint8

const (
	OpMatch Op = iota
	OpSubst
	OpDel
	OpIns
	OpXClip
	OpYClip
)

// Operation is a single edit step within an alignment. Operations are
// comparable and can be used as map keys or set members.
//
// Match and Subst consume one base of both x and y; Ins consumes one
// base of x only (a gap in y); Del consumes one base of y only (a gap
// in x); XClip and YClip skip Len unaligned bases at either end of x
// or y respectively.
type Operation struct {
	Op Op
	// Len is the number of clipped bases; it is zero for every
	// operation other than XClip and YClip.
	Len int
}

// The non-clip operations, ready for use in operation lists.
var (
	Match = Operation{Op: OpMatch}
	Subst = Operation{Op: OpSubst}
	Del   = Operation{Op: OpDel}
	Ins   = Operation{Op: OpIns}
)

// XClip returns an operation clipping n bases of x.
func XClip(n int) Operation { return Operation{Op: OpXClip, Len: n} }

// YClip returns an operation clipping n bases of y.
func YClip(n int) Operation { return Operation{Op: OpYClip, Len: n} }

// IsClip reports whether the operation is an XClip or YClip.
func (o Operation) IsClip() bool {
	return o.Op == OpXClip || o.Op == OpYClip
}

// String returns a debug rendering of the operation.
func (o Operation) String() string {
	switch o.Op {
	case OpMatch:
		return "Match"
	case OpSubst:
		return "Subst"
	case OpDel:
		return "Del"
	case OpIns:
		return "Ins"
	case OpXClip:
		return fmt.Sprintf("XClip(%d)", o.Len)
	case OpYClip:
		return fmt.Sprintf("YClip(%d)", o.Len)
	default:
		return fmt.Sprintf("Op(%d)", uint8(o.Op))
	}
}
