// Package coupling implements the orchestrator (§4.6): the coupling
// scheme holds configuration, owns the candidate-pair and contact-plane
// arrays, and sequences init → bin → apply → timestep-vote each cycle.
package coupling

import (
	"fmt"

	"github.com/notargets/gocontact/binning"
	"github.com/notargets/gocontact/contactcfg"
	"github.com/notargets/gocontact/contactplane"
	"github.com/notargets/gocontact/internal/colog"
	"github.com/notargets/gocontact/meshview"
	"github.com/notargets/gocontact/physics"
)

// ExecMode is the dispatch descriptor §9's Design Notes substitute for
// the source's sequential/OpenMP/CUDA/HIP template selection: chosen once
// at init() from the mesh views' memory residency.
type ExecMode int

const (
	Sequential ExecMode = iota
	HostParallel
	DeviceParallel
)

// State is the coupling scheme's lifecycle state (§4.6).
type State int

const (
	Constructed State = iota
	Initialized
	Finalized
)

// activeMortarPair couples one active plane to its mortar element record
// so the Jacobian/assembly stage has both without re-deriving the normal.
type activeMortarPair struct {
	plane   *contactplane.Plane
	element *physics.MortarElement
}

// Scheme is the coupling scheme (§3, §4.6).
type Scheme struct {
	Config Config
	MV1    *meshview.MeshView
	MV2    *meshview.MeshView
	Log    *colog.Logger

	state    State
	execMode ExecMode

	pairs      []binning.Pair
	pinBinning bool

	Planes   []*contactplane.Plane
	mortar   []activeMortarPair
	Assembly *physics.MortarAssembly

	Stats CycleStats
}

// New constructs an unvalidated scheme. Call Init before the first cycle.
func New(cfg Config, mv1, mv2 *meshview.MeshView) *Scheme {
	return &Scheme{
		Config: cfg,
		MV1:    mv1,
		MV2:    mv2,
		Log:    colog.New(cfg.LogLevel),
		state:  Constructed,
	}
}

func (s *Scheme) State() State { return s.state }

// Init validates the configuration, determines the execution mode from
// the mesh views' memory space, refreshes per-face cached data on both
// meshes, and pins binning for Cartesian-product/NO_SLIDING
// configurations where topology cannot evolve (§4.6).
func (s *Scheme) Init() error {
	adjusted, warnings, err := ValidateConfig(s.Config, s.MV1, s.MV2)
	if err != nil {
		return err
	}
	s.Config = adjusted
	for _, w := range warnings {
		s.Log.Warning("%s", w)
	}

	if s.MV1.MemSpace == meshview.Device || s.MV2.MemSpace == meshview.Device {
		s.execMode = DeviceParallel
	} else {
		s.execMode = HostParallel
	}

	if err := s.MV1.Refresh(); err != nil {
		return fmt.Errorf("mesh 1 refresh: %w", err)
	}
	if err := s.MV2.Refresh(); err != nil {
		return fmt.Errorf("mesh 2 refresh: %w", err)
	}

	s.pinBinning = s.Config.Binning == contactcfg.BinningCartesianProduct ||
		s.Config.Case == contactcfg.NoSliding ||
		s.Config.Mode == contactcfg.SurfaceToSurfaceConforming
	s.state = Initialized
	return nil
}

// PerformBinning invokes the pair finder, unless binning was pinned by a
// previous cycle.
func (s *Scheme) PerformBinning() {
	if s.pinBinning && s.pairs != nil {
		return
	}
	s.pairs = binning.FindPairs(s.MV1, s.MV2, binning.Config{Policy: binning.Policy(s.Config.Binning), GridCellFactor: binning.DefaultConfig().GridCellFactor})
}

// Apply runs the contact-plane builder over candidate pairs, compacts the
// active-plane array, runs the physics kernel, and returns the
// timestep-vote result for dt (§4.6). It never returns an error for
// per-pair geometry failures — those are tallied in s.Stats — only for
// scheme-level misuse (calling Apply before Init).
func (s *Scheme) Apply(cycle int, t, dt float64) (float64, error) {
	if s.state != Initialized {
		return dt, fmt.Errorf("apply called before init (state=%d)", s.state)
	}

	s.Stats = NewCycleStats()
	s.Stats.CandidatePairs = len(s.pairs)
	s.Planes = s.Planes[:0]

	for _, p := range s.pairs {
		plane, gerr := contactplane.CheckInterfacePair(s.MV1, s.MV2, p.Face1, p.Face2, s.Config.Model, s.Config.Case, s.Config.Tolerances)
		if gerr != nil {
			s.Stats.Tally(gerr.Code)
			continue
		}
		if plane == nil {
			continue
		}
		s.Planes = append(s.Planes, plane)
	}
	s.Stats.ActivePlanes = len(s.Planes)

	if err := s.runPhysics(); err != nil {
		s.Stats.ResourceErrors++
		s.Log.Error("physics kernel: %v", err)
	}

	newDt := ComputeTimestepVote(s.MV1, s.MV2, s.Planes, DefaultTimestepVoteConfig(), dt)
	if newDt < dt {
		s.Log.Info("cycle %d: timestep vote reduced dt from %.6g to %.6g", cycle, dt, newDt)
	}
	if s.Stats.Total() > 0 {
		s.Log.Warning("cycle %d: dropped %d candidate pairs to geometry errors", cycle, s.Stats.Total())
	}
	return newDt, nil
}

func (s *Scheme) runPhysics() error {
	switch s.Config.Method {
	case contactcfg.CommonPlane:
		for _, plane := range s.Planes {
			if err := physics.ApplyCommonPlanePenalty(s.MV1, s.MV2, plane, s.Config.Model, s.Config.Penalty); err != nil {
				return err
			}
		}
		return nil

	case contactcfg.SingleMortar, contactcfg.MortarWeights:
		s.mortar = s.mortar[:0]
		for _, plane := range s.Planes {
			el := physics.ComputeMortarWeights(s.MV1, s.MV2, plane)
			s.mortar = append(s.mortar, activeMortarPair{plane: plane, element: el})
		}
		if s.Config.Method == contactcfg.SingleMortar && s.Config.Enforcement == contactcfg.LagrangeMultiplier {
			s.assembleMortar()
		}
		return nil

	case contactcfg.AlignedMortar:
		s.mortar = s.mortar[:0]
		for _, plane := range s.Planes {
			el, err := physics.ComputeAlignedMortarWeights(s.MV1, s.MV2, plane)
			if err != nil {
				s.Stats.ResourceErrors++
				s.Log.Warning("aligned mortar pair (%d,%d): %v", plane.Face1, plane.Face2, err)
				continue
			}
			s.mortar = append(s.mortar, activeMortarPair{plane: plane, element: el})
		}
		if s.Config.Enforcement == contactcfg.LagrangeMultiplier {
			s.assembleMortar()
		}
		return nil

	default:
		return fmt.Errorf("unsupported method %v", s.Config.Method)
	}
}

// assembleMortar scatters every active mortar element's constraint
// coupling into the global sparse block operator (§4.5.2, §6). Pressure
// dofs are numbered by the nonmortar mesh's own node ids, per the
// contract's "row indices reference nodes of the nonmortar mesh".
func (s *Scheme) assembleMortar() {
	dim := s.MV1.Dim
	s.Assembly = physics.NewMortarAssembly(dim, s.MV1.NumNodes, dim*s.MV1.NumNodes, dim*s.MV2.NumNodes)
	for _, pair := range s.mortar {
		pressureDof := s.MV1.Connectivity[pair.element.Face1]
		s.Assembly.AddElement(pair.element, pair.plane.Normal, s.MV1, s.MV2, pressureDof)
	}
}

// Finalize tears the scheme down. Process-wide registries (§5's mesh/
// coupling-scheme registry) are owned by the host package, not here — a
// Scheme only needs to drop its own per-cycle state.
func (s *Scheme) Finalize() {
	s.pairs = nil
	s.Planes = nil
	s.mortar = nil
	s.Assembly = nil
	s.state = Finalized
}
