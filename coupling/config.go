package coupling

import (
	"github.com/ghodss/yaml"

	"github.com/notargets/gocontact/contactcfg"
	"github.com/notargets/gocontact/physics"
)

// Config is the coupling scheme's full configuration (§3): the
// mode/case/method/model/enforcement/binning selection, the shared
// tolerances, and method-specific options. It mirrors the teacher's
// InputParameters YAML-driven struct (cmd/2D.go). Parse uses
// github.com/ghodss/yaml, which converts YAML to JSON and decodes it with
// encoding/json: the yaml field tags below are not consulted, and keys
// match field names case-insensitively.
type Config struct {
	Mode        contactcfg.ContactMode   `yaml:"mode"`
	Case        contactcfg.ContactCase   `yaml:"case"`
	Method      contactcfg.Method        `yaml:"method"`
	Model       contactcfg.Model         `yaml:"model"`
	Enforcement contactcfg.Enforcement   `yaml:"enforcement"`
	Binning     contactcfg.BinningPolicy `yaml:"binning"`
	Tolerances  contactcfg.Tolerances    `yaml:"tolerances"`
	Penalty     physics.PenaltyConfig    `yaml:"penalty"`
	LogLevel    contactcfg.LogLevel      `yaml:"logLevel"`
}

// DefaultConfig returns the common-plane/penalty/frictionless baseline
// configuration.
func DefaultConfig() Config {
	return Config{
		Mode:        contactcfg.SurfaceToSurface,
		Case:        contactcfg.NoCase,
		Method:      contactcfg.CommonPlane,
		Model:       contactcfg.Frictionless,
		Enforcement: contactcfg.Penalty,
		Binning:     contactcfg.BinningGrid,
		Tolerances:  contactcfg.DefaultTolerances(),
		Penalty:     physics.PenaltyConfig{Policy: physics.ConstantStiffness},
		LogLevel:    contactcfg.Info,
	}
}

// Parse populates cfg from YAML bytes, the same ghodss/yaml-backed
// unmarshal the teacher's InputParameters.Parse uses.
func (cfg *Config) Parse(data []byte) error {
	return yaml.Unmarshal(data, cfg)
}
