package annot

// RefIDSet interns reference sequence (e.g., chromosome) names.
//
// Annotation sets routinely carry millions of copies of a handful of
// chromosome names. Interning hands every caller the same canonical
// string value, so the backing bytes are shared and comparisons
// against other interned names stay cheap.
type RefIDSet struct {
	refids map[string]string
}

// NewRefIDSet creates a new, empty table of interned reference names.
func NewRefIDSet() *RefIDSet {
	return &RefIDSet{refids: make(map[string]string)}
}

// Intern returns the canonical copy of a reference name, storing it
// on first use. All calls with equal names return the same string
// value.
func (r *RefIDSet) Intern(id string) string {
	if canonical, ok := r.refids[id]; ok {
		return canonical
	}
	canonical := string([]byte(id))
	r.refids[id] = canonical
	return canonical
}

// Len returns the number of distinct interned names.
func (r *RefIDSet) Len() int {
	return len(r.refids)
}
