// Package phylogeny represents phylogenetic trees as directed graphs.
// Each node is a taxon identified by name, and each branch carries the
// phylogenetic distance between parent and child, or NaN when the
// distance is not defined.
package phylogeny

import (
	"errors"
	"math"
	"slices"

	"gonum.org/v1/gonum/graph"
	"gonum.org/v1/gonum/graph/simple"
)

var (
	// ErrUnknownTaxon reports a taxon name that is not part of the
	// tree.
	ErrUnknownTaxon = errors.New("unknown taxon")
	// ErrDuplicateTaxon reports an attempt to add a taxon name twice.
	ErrDuplicateTaxon = errors.New("duplicate taxon")
)

// Taxon names a node of a phylogenetic tree.
type Taxon = string

// Proximity is the phylogenetic distance along a branch.
type Proximity = float64

// Tree is a phylogenetic tree: a weighted directed graph whose nodes
// are taxa and whose edges point from parent to child. The zero value
// is not usable; call NewTree.
type Tree struct {
	g     *simple.WeightedDirectedGraph
	ids   map[Taxon]int64
	names map[int64]Taxon
}

// NewTree returns an empty phylogenetic tree.
func NewTree() *Tree {
	return &Tree{
		g:     simple.NewWeightedDirectedGraph(0, math.NaN()),
		ids:   make(map[Taxon]int64),
		names: make(map[int64]Taxon),
	}
}

// Len returns the number of taxa in the tree.
func (t *Tree) Len() int {
	return len(t.ids)
}

// Has reports whether the named taxon is part of the tree.
func (t *Tree) Has(taxon Taxon) bool {
	_, ok := t.ids[taxon]
	return ok
}

// Taxa returns the names of all taxa in the tree, sorted.
func (t *Tree) Taxa() []Taxon {
	taxa := make([]Taxon, 0, len(t.ids))
	for taxon := range t.ids {
		taxa = append(taxa, taxon)
	}
	slices.Sort(taxa)
	return taxa
}

// AddTaxon adds a taxon with no branches.
func (t *Tree) AddTaxon(taxon Taxon) error {
	if _, ok := t.ids[taxon]; ok {
		return ErrDuplicateTaxon
	}
	n := t.g.NewNode()
	t.g.AddNode(n)
	t.ids[taxon] = n.ID()
	t.names[n.ID()] = taxon
	return nil
}

// AddBranch adds a branch from parent to child with the given
// proximity, adding either taxon first if it is not yet part of the
// tree. Use NaN when the distance is unknown.
func (t *Tree) AddBranch(parent, child Taxon, proximity Proximity) error {
	for _, taxon := range []Taxon{parent, child} {
		if !t.Has(taxon) {
			if err := t.AddTaxon(taxon); err != nil {
				return err
			}
		}
	}
	from := t.g.Node(t.ids[parent])
	to := t.g.Node(t.ids[child])
	t.g.SetWeightedEdge(t.g.NewWeightedEdge(from, to, proximity))
	return nil
}

// Proximity returns the distance along the branch from parent to
// child. It is false when no such branch exists; it can be NaN when
// the branch exists but its distance was never defined.
func (t *Tree) Proximity(parent, child Taxon) (Proximity, bool) {
	pid, ok := t.ids[parent]
	if !ok {
		return 0, false
	}
	cid, ok := t.ids[child]
	if !ok {
		return 0, false
	}
	e := t.g.WeightedEdge(pid, cid)
	if e == nil {
		return 0, false
	}
	return e.Weight(), true
}

// Children returns the direct children of the named taxon.
func (t *Tree) Children(taxon Taxon) ([]Taxon, error) {
	id, ok := t.ids[taxon]
	if !ok {
		return nil, ErrUnknownTaxon
	}
	return t.neighbors(t.g.From(id)), nil
}

// Parent returns the parent of the named taxon. Root taxa have no
// parent, reported as false.
func (t *Tree) Parent(taxon Taxon) (Taxon, bool, error) {
	id, ok := t.ids[taxon]
	if !ok {
		return "", false, ErrUnknownTaxon
	}
	parents := t.neighbors(t.g.To(id))
	if len(parents) == 0 {
		return "", false, nil
	}
	return parents[0], true, nil
}

func (t *Tree) neighbors(nodes graph.Nodes) []Taxon {
	var taxa []Taxon
	for nodes.Next() {
		taxa = append(taxa, t.names[nodes.Node().ID()])
	}
	slices.Sort(taxa)
	return taxa
}
