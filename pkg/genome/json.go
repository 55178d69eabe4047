package genome

import "encoding/json"

// JSON wire forms for Locus and Interval. Field names follow the
// accessors rather than the unexported struct fields.

type locusJSON struct {
	Contig string   `json:"contig"`
	Pos    Position `json:"pos"`
}

type intervalJSON struct {
	Contig string `json:"contig"`
	Range  Range  `json:"range"`
}

// MarshalJSON encodes the locus as {"contig": ..., "pos": ...}.
func (l Locus) MarshalJSON() ([]byte, error) {
	return json.Marshal(locusJSON{Contig: l.contig, Pos: l.pos})
}

// UnmarshalJSON decodes the form produced by MarshalJSON.
func (l *Locus) UnmarshalJSON(data []byte) error {
	var w locusJSON
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}
	l.contig = w.Contig
	l.pos = w.Pos
	return nil
}

// MarshalJSON encodes the interval as {"contig": ..., "range": ...}.
func (i Interval) MarshalJSON() ([]byte, error) {
	return json.Marshal(intervalJSON{Contig: i.contig, Range: i.rng})
}

// UnmarshalJSON decodes the form produced by MarshalJSON.
func (i *Interval) UnmarshalJSON(data []byte) error {
	var w intervalJSON
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}
	i.contig = w.Contig
	i.rng = w.Range
	return nil
}
