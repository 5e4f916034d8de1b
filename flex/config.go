package flex

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"flexkit/matsubara"
)

// Config is the YAML representation of a solver run configuration.
//
//	fermionic_window: {lower: -15, upper: 15}
//	bosonic_window:   {lower: -14, upper: 14}
//	u: 2.0
//	j: 0.5
//	max_iterations: 40
//	norm: max        # or l2
//	tolerance: 1.0e-6
//
// Omitted fields inherit the DefaultOptions values.
type Config struct {
	FermionicWindow *WindowConfig `yaml:"fermionic_window"`
	BosonicWindow   *WindowConfig `yaml:"bosonic_window"`
	U               float64       `yaml:"u"`
	J               float64       `yaml:"j"`
	MaxIterations   *int          `yaml:"max_iterations"`
	Norm            string        `yaml:"norm"`
	Tolerance       float64       `yaml:"tolerance"`
}

// WindowConfig is the YAML shape of a Matsubara index window.
type WindowConfig struct {
	Lower int `yaml:"lower"`
	Upper int `yaml:"upper"`
}

// ParseNorm maps a configuration norm name to a Norm value.
// Returns ErrUnknownNorm for anything but "max", "l2" or "".
func ParseNorm(name string) (Norm, error) {
	switch name {
	case "", "max":
		return NormMax, nil
	case "l2":
		return NormL2, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownNorm, name)
	}
}

// Options converts the parsed configuration into validated run options.
func (c Config) Options() (Options, error) {
	opts := DefaultOptions()
	if c.FermionicWindow != nil {
		opts.FermionicWindow = matsubara.Window{Lower: c.FermionicWindow.Lower, Upper: c.FermionicWindow.Upper}
	}
	if c.BosonicWindow != nil {
		opts.BosonicWindow = matsubara.Window{Lower: c.BosonicWindow.Lower, Upper: c.BosonicWindow.Upper}
	}
	opts.U = c.U
	opts.J = c.J
	if c.MaxIterations != nil {
		opts.MaxIterations = *c.MaxIterations
	}
	norm, err := ParseNorm(c.Norm)
	if err != nil {
		return Options{}, err
	}
	opts.Norm = norm
	opts.Tolerance = c.Tolerance
	if err := opts.validate(); err != nil {
		return Options{}, err
	}
	return opts, nil
}

// ParseConfig decodes a YAML document into validated run options.
func ParseConfig(data []byte) (Options, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Options{}, fmt.Errorf("flex: parse config: %w", err)
	}
	return cfg.Options()
}

// LoadConfig reads a YAML configuration file into validated run options.
func LoadConfig(path string) (Options, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Options{}, fmt.Errorf("flex: read config %q: %w", path, err)
	}
	return ParseConfig(data)
}
