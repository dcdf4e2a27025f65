package binning

import (
	"math"
	"sort"

	"github.com/notargets/gocontact/meshview"
)

type cellKey struct{ x, y, z int }

// gridPairs builds an axis-aligned grid over the union of face bounding
// boxes, inserts each face into every cell its (radius-grown) bounding
// box touches, and proposes candidate pairs for faces sharing a cell.
func gridPairs(mv1, mv2 *meshview.MeshView, cfg Config) []Pair {
	cellSize := gridCellSize(mv1, mv2, cfg.GridCellFactor)
	if cellSize <= 0 {
		return cartesianProduct(mv1, mv2)
	}

	grid := make(map[cellKey][]int) // face id in mv1, negative-1-offset ids won't collide since stored separately
	grid2 := make(map[cellKey][]int)

	insert := func(mv *meshview.MeshView, tbl map[cellKey][]int) {
		for f := 0; f < mv.NumFaces; f++ {
			lo, hi := mv.BoundingBox(f)
			cLo := cellIndex(lo, cellSize)
			cHi := cellIndex(hi, cellSize)
			for x := cLo.x; x <= cHi.x; x++ {
				for y := cLo.y; y <= cHi.y; y++ {
					zLo, zHi := cLo.z, cHi.z
					if mv.Dim == 2 {
						zLo, zHi = 0, 0
					}
					for z := zLo; z <= zHi; z++ {
						k := cellKey{x, y, z}
						tbl[k] = append(tbl[k], f)
					}
				}
			}
		}
	}
	insert(mv1, grid)
	insert(mv2, grid2)

	self := mv1 == mv2
	seen := make(map[Pair]bool)
	var pairs []Pair
	for k, faces1 := range grid {
		faces2, ok := grid2[k]
		if !ok {
			continue
		}
		for _, f1 := range faces1 {
			for _, f2 := range faces2 {
				if self && f1 >= f2 {
					continue
				}
				p := Pair{Face1: f1, Face2: f2}
				if seen[p] {
					continue
				}
				seen[p] = true
				pairs = append(pairs, p)
			}
		}
	}
	// Ordering is unspecified but must be deterministic for a given
	// input, per §4.3.
	sort.Slice(pairs, func(i, j int) bool {
		if pairs[i].Face1 != pairs[j].Face1 {
			return pairs[i].Face1 < pairs[j].Face1
		}
		return pairs[i].Face2 < pairs[j].Face2
	})
	return pairs
}

func gridCellSize(mv1, mv2 *meshview.MeshView, factor float64) float64 {
	r1 := mv1.MedianFaceRadius()
	r2 := mv2.MedianFaceRadius()
	r := math.Max(r1, r2)
	if r <= 0 {
		return 0
	}
	return factor * r
}

func cellIndex(p []float64, cellSize float64) cellKey {
	idx := func(v float64) int { return int(math.Floor(v / cellSize)) }
	k := cellKey{x: idx(p[0]), y: idx(p[1])}
	if len(p) > 2 {
		k.z = idx(p[2])
	}
	return k
}
