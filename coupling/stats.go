package coupling

import "github.com/notargets/gocontact/geom"

// CycleStats tallies per-cycle diagnostics (§7): per-pair geometry
// failures are never fatal, but are counted by category so the host can
// report a summary at the requested logging level. Supplements the
// distilled contact decision with the original's per-cycle counters.
type CycleStats struct {
	CandidatePairs  int
	ActivePlanes    int
	GeomErrorCounts map[geom.ErrorCode]int
	ResourceErrors  int
}

// NewCycleStats returns a zeroed CycleStats ready for one cycle's tallies.
func NewCycleStats() CycleStats {
	return CycleStats{GeomErrorCounts: make(map[geom.ErrorCode]int)}
}

// Tally records one per-pair geometry error by code.
func (s *CycleStats) Tally(code geom.ErrorCode) {
	if s.GeomErrorCounts == nil {
		s.GeomErrorCounts = make(map[geom.ErrorCode]int)
	}
	s.GeomErrorCounts[code]++
}

// Total returns the total number of geometry errors tallied this cycle
// across all categories.
func (s *CycleStats) Total() int {
	total := 0
	for _, n := range s.GeomErrorCounts {
		total += n
	}
	return total
}
