package coupling

import (
	"fmt"

	"github.com/notargets/gocontact/contactcfg"
	"github.com/notargets/gocontact/meshview"
)

// ValidationError is a tagged configuration-error code surfaced to the
// host from init() (§7: "Configuration errors... surfaced to the host as
// a validation failure from init(); process continues, coupling scheme
// inert").
type ValidationError struct {
	Code string
	Msg  string
}

func (e *ValidationError) Error() string { return fmt.Sprintf("%s: %s", e.Code, e.Msg) }

// ValidateConfig checks the mode/case/method/model/enforcement
// combination against the allow-list (§4.6), auto-correcting what the
// source reconciles silently (emitting a warning) and rejecting what it
// cannot. It returns the (possibly adjusted) config.
func ValidateConfig(cfg Config, mv1, mv2 *meshview.MeshView) (adjusted Config, warnings []string, err error) {
	adjusted = cfg

	if mv1.Dim != mv2.Dim {
		return adjusted, nil, &ValidationError{Code: "DIMENSION_MISMATCH", Msg: "both meshes must share the same spatial dimension"}
	}

	isMortar := cfg.Method == contactcfg.SingleMortar || cfg.Method == contactcfg.AlignedMortar || cfg.Method == contactcfg.MortarWeights
	if isMortar && mv1.ElemType != mv2.ElemType {
		return adjusted, nil, &ValidationError{Code: "DIFFERENT_FACE_TYPES", Msg: "mortar methods require matching face element types on both meshes"}
	}

	switch cfg.Method {
	case contactcfg.CommonPlane:
		if cfg.Enforcement == contactcfg.LagrangeMultiplier {
			return adjusted, nil, &ValidationError{Code: "INVALID_ENFORCEMENT", Msg: "COMMON_PLANE does not support LAGRANGE_MULTIPLIER enforcement"}
		}
	case contactcfg.SingleMortar, contactcfg.AlignedMortar:
		if cfg.Enforcement == contactcfg.Penalty {
			return adjusted, nil, &ValidationError{Code: "INVALID_ENFORCEMENT", Msg: "mortar methods require LAGRANGE_MULTIPLIER enforcement"}
		}
	case contactcfg.MortarWeights:
		if cfg.Enforcement != contactcfg.NullEnforcement {
			warnings = append(warnings, "MORTAR_WEIGHTS emits weights only; enforcement setting is ignored")
		}
	}

	// NO_SLIDING pins the candidate-pair list for the scheme's lifetime,
	// which is only sound if the topology truly cannot evolve: conforming
	// surfaces. A NO_SLIDING request against a non-conforming mode is
	// auto-corrected rather than rejected, mirroring the source's
	// "auto-correct with a warning" policy for this combination.
	if cfg.Case == contactcfg.NoSliding && cfg.Mode != contactcfg.SurfaceToSurfaceConforming {
		adjusted.Mode = contactcfg.SurfaceToSurfaceConforming
		warnings = append(warnings, "NO_SLIDING requires SURFACE_TO_SURFACE_CONFORMING; mode auto-corrected")
	}

	if cfg.Case == contactcfg.Auto {
		if mv1.Cache.Thickness == nil || mv2.Cache.Thickness == nil {
			return adjusted, warnings, &ValidationError{Code: "MISSING_ELEMENT_THICKNESS", Msg: "AUTO case requires element thickness registered on both meshes before init()"}
		}
	}

	if cfg.Model == contactcfg.Tied && cfg.Tolerances.GapTiedTol <= 0 {
		return adjusted, warnings, &ValidationError{Code: "INVALID_TOLERANCE", Msg: "TIED model requires a positive gap_tied_tol"}
	}

	return adjusted, warnings, nil
}
