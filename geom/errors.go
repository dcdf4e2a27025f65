package geom

// ErrorCode tags a geometry-primitive failure. Per-pair geometry errors are
// never fatal to the coupling scheme; they are tallied and the pair is
// dropped (see the coupling package's CycleStats).
type ErrorCode int

const (
	// NoGeomError indicates the operation completed normally.
	NoGeomError ErrorCode = iota
	// InvalidFaceInput flags a face with too few vertices, duplicated
	// vertices, or mismatched dimensionality.
	InvalidFaceInput
	// FaceOrientation flags a polygon that failed the CCW/convexity check.
	FaceOrientation
	// DegenerateOverlap flags a clip result with zero area or fewer than
	// the minimum number of vertices for its dimension.
	DegenerateOverlap
	// FaceVertexIndexExceedsOverlapVertices flags an internal indexing
	// error while building the overlap polygon (caps the 8-vertex 3D /
	// 2-vertex 2D budget).
	FaceVertexIndexExceedsOverlapVertices
	// NoFaceGeomError flags a face whose cached geometry (normal, area)
	// could not be computed.
	NoFaceGeomError
)

func (c ErrorCode) String() string {
	switch c {
	case NoGeomError:
		return "NO_GEOM_ERROR"
	case InvalidFaceInput:
		return "INVALID_FACE_INPUT"
	case FaceOrientation:
		return "FACE_ORIENTATION"
	case DegenerateOverlap:
		return "DEGENERATE_OVERLAP"
	case FaceVertexIndexExceedsOverlapVertices:
		return "FACE_VERTEX_INDEX_EXCEEDS_OVERLAP_VERTICES"
	case NoFaceGeomError:
		return "NO_FACE_GEOM_ERROR"
	default:
		return "UNKNOWN_GEOM_ERROR"
	}
}

// Error is the tagged-sum error value returned by the geometry primitives.
// It never wraps a stdlib error: the taxonomy is closed and callers switch
// on Code, not on string matching.
type Error struct {
	Code ErrorCode
	Msg  string
}

func (e *Error) Error() string {
	if e.Msg == "" {
		return e.Code.String()
	}
	return e.Code.String() + ": " + e.Msg
}

// NewError constructs a tagged geometry error.
func NewError(code ErrorCode, msg string) *Error {
	return &Error{Code: code, Msg: msg}
}
