// Package binning implements the pair finder (§4.3): given two mesh
// views and a binning policy, it produces the list of candidate face
// pairs whose bounding structures overlap. It never judges whether a
// pair is actually in contact — that is the contact-plane builder's job.
package binning

import "github.com/notargets/gocontact/meshview"

// Policy selects how candidate pairs are discovered.
type Policy int

const (
	// CartesianProduct enumerates every (f1, f2) pair. Degenerate but
	// correct; used for tiny meshes or when topology is pinned
	// (NO_SLIDING cases).
	CartesianProduct Policy = iota
	// Grid bins faces into a uniform spatial grid and only proposes
	// pairs sharing at least one cell.
	Grid
)

// Pair is a candidate face pair from mesh 1 and mesh 2 (which may be the
// same mesh view, for self-contact).
type Pair struct {
	Face1 int
	Face2 int
}

// Config tunes the grid policy. GridCellFactor scales the median face
// radius to derive the cell size — a performance knob, never a
// correctness one (§4.3).
type Config struct {
	Policy        Policy
	GridCellFactor float64
}

// DefaultConfig returns a Grid-policy config with a cell factor of 2,
// which keeps cell occupancy low without excessive cell counts for
// typical contact patches.
func DefaultConfig() Config {
	return Config{Policy: Grid, GridCellFactor: 2.0}
}

// FindPairs dispatches to the configured policy and returns a
// deduplicated, deterministically ordered candidate list.
func FindPairs(mv1, mv2 *meshview.MeshView, cfg Config) []Pair {
	switch cfg.Policy {
	case CartesianProduct:
		return cartesianProduct(mv1, mv2)
	case Grid:
		return gridPairs(mv1, mv2, cfg)
	default:
		return cartesianProduct(mv1, mv2)
	}
}

func cartesianProduct(mv1, mv2 *meshview.MeshView) []Pair {
	self := mv1 == mv2
	pairs := make([]Pair, 0, mv1.NumFaces*mv2.NumFaces)
	for f1 := 0; f1 < mv1.NumFaces; f1++ {
		for f2 := 0; f2 < mv2.NumFaces; f2++ {
			if self && f1 >= f2 {
				continue
			}
			pairs = append(pairs, Pair{Face1: f1, Face2: f2})
		}
	}
	return pairs
}
