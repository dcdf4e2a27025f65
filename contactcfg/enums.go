// Package contactcfg holds the host-facing enumerations and tolerance
// configuration shared across the binning, contact-plane, physics, and
// coupling packages. Values are preserved bit-exactly for host
// compatibility (§6) — never renumber an existing constant.
package contactcfg

import (
	"encoding/json"
	"fmt"
)

// ContactMode selects how the two meshes are expected to relate
// geometrically.
type ContactMode int

const (
	SurfaceToSurface ContactMode = iota
	SurfaceToSurfaceConforming
)

var contactModeNames = map[ContactMode]string{
	SurfaceToSurface:           "SURFACE_TO_SURFACE",
	SurfaceToSurfaceConforming: "SURFACE_TO_SURFACE_CONFORMING",
}

func (m ContactMode) String() string { return enumName(contactModeNames, m) }

func (m ContactMode) MarshalJSON() ([]byte, error) { return json.Marshal(m.String()) }

func (m *ContactMode) UnmarshalJSON(b []byte) error {
	return unmarshalEnumJSON(b, contactModeNames, m)
}

// ContactCase selects the sliding/thickness-bound policy applied during
// the contact-plane builder's contact decision (§4.4 step 6).
type ContactCase int

const (
	NoCase ContactCase = iota
	NoSliding
	Auto
	TiedNormal
)

var contactCaseNames = map[ContactCase]string{
	NoCase:     "NO_CASE",
	NoSliding:  "NO_SLIDING",
	Auto:       "AUTO",
	TiedNormal: "TIED_NORMAL",
}

func (c ContactCase) String() string { return enumName(contactCaseNames, c) }

func (c ContactCase) MarshalJSON() ([]byte, error) { return json.Marshal(c.String()) }

func (c *ContactCase) UnmarshalJSON(b []byte) error {
	return unmarshalEnumJSON(b, contactCaseNames, c)
}

// Method selects the physics kernel.
type Method int

const (
	CommonPlane Method = iota
	SingleMortar
	AlignedMortar
	MortarWeights
)

var methodNames = map[Method]string{
	CommonPlane:   "COMMON_PLANE",
	SingleMortar:  "SINGLE_MORTAR",
	AlignedMortar: "ALIGNED_MORTAR",
	MortarWeights: "MORTAR_WEIGHTS",
}

func (m Method) String() string { return enumName(methodNames, m) }

func (m Method) MarshalJSON() ([]byte, error) { return json.Marshal(m.String()) }

func (m *Method) UnmarshalJSON(b []byte) error {
	return unmarshalEnumJSON(b, methodNames, m)
}

// Model selects the contact-force model.
type Model int

const (
	Frictionless Model = iota
	Tied
	Coulomb // reserved
	NullModel
)

var modelNames = map[Model]string{
	Frictionless: "FRICTIONLESS",
	Tied:         "TIED",
	Coulomb:      "COULOMB",
	NullModel:    "NULL_MODEL",
}

func (m Model) String() string { return enumName(modelNames, m) }

func (m Model) MarshalJSON() ([]byte, error) { return json.Marshal(m.String()) }

func (m *Model) UnmarshalJSON(b []byte) error {
	return unmarshalEnumJSON(b, modelNames, m)
}

// Enforcement selects how non-penetration is enforced.
type Enforcement int

const (
	Penalty Enforcement = iota
	LagrangeMultiplier
	NullEnforcement
)

var enforcementNames = map[Enforcement]string{
	Penalty:            "PENALTY",
	LagrangeMultiplier: "LAGRANGE_MULTIPLIER",
	NullEnforcement:    "NULL_ENFORCEMENT",
}

func (e Enforcement) String() string { return enumName(enforcementNames, e) }

func (e Enforcement) MarshalJSON() ([]byte, error) { return json.Marshal(e.String()) }

func (e *Enforcement) UnmarshalJSON(b []byte) error {
	return unmarshalEnumJSON(b, enforcementNames, e)
}

// BinningPolicy selects the pair-finder strategy.
type BinningPolicy int

const (
	BinningCartesianProduct BinningPolicy = iota
	BinningGrid
)

var binningPolicyNames = map[BinningPolicy]string{
	BinningCartesianProduct: "CARTESIAN_PRODUCT",
	BinningGrid:             "GRID",
}

func (b BinningPolicy) String() string { return enumName(binningPolicyNames, b) }

func (b BinningPolicy) MarshalJSON() ([]byte, error) { return json.Marshal(b.String()) }

func (b *BinningPolicy) UnmarshalJSON(data []byte) error {
	return unmarshalEnumJSON(data, binningPolicyNames, b)
}

// LogLevel selects the verbosity of coupling-scheme diagnostics.
type LogLevel int

const (
	Debug LogLevel = iota
	Info
	Warning
	ErrorLevel
	Undefined
)

var logLevelNames = map[LogLevel]string{
	Debug:      "DEBUG",
	Info:       "INFO",
	Warning:    "WARNING",
	ErrorLevel: "ERROR",
	Undefined:  "UNDEFINED",
}

func (l LogLevel) String() string { return enumName(logLevelNames, l) }

func (l LogLevel) MarshalJSON() ([]byte, error) { return json.Marshal(l.String()) }

func (l *LogLevel) UnmarshalJSON(b []byte) error {
	return unmarshalEnumJSON(b, logLevelNames, l)
}

// enumName looks up name, falling back to a numeric placeholder so a
// stray value never panics a log line.
func enumName[E comparable](names map[E]string, v E) string {
	if n, ok := names[v]; ok {
		return n
	}
	return fmt.Sprintf("UNKNOWN(%v)", v)
}

// unmarshalEnumJSON accepts either the enum's canonical upper-snake-case
// name or its bare numeric value, so hand-written YAML and host-supplied
// integers both parse.
func unmarshalEnumJSON[E ~int](b []byte, names map[E]string, out *E) error {
	var s string
	if err := json.Unmarshal(b, &s); err == nil {
		for v, name := range names {
			if name == s {
				*out = v
				return nil
			}
		}
		return fmt.Errorf("unknown enum value %q", s)
	}
	var n int
	if err := json.Unmarshal(b, &n); err != nil {
		return fmt.Errorf("enum must be a string or integer: %w", err)
	}
	*out = E(n)
	return nil
}
