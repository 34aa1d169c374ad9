package parameters

import (
	"fmt"
	"os"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"

	"starlab/entity/format"
	"starlab/entity/mode"
)

// Streaks holds the Monte Carlo coin-flip simulation inputs.
type Streaks struct {
	Trials  int    `yaml:"trials" env:"STARLAB_TRIALS"`
	Flips   int    `yaml:"flips" env:"STARLAB_FLIPS"`
	Length  int    `yaml:"length" env:"STARLAB_LENGTH"`
	Seed    uint64 `yaml:"seed" env:"STARLAB_SEED"`
	Workers int    `yaml:"workers" env:"STARLAB_WORKERS"`
}

// Grain holds the presolar grain atom-count inputs.
type Grain struct {
	Diameter         float64 `yaml:"diameter" env:"STARLAB_DIAMETER"`                     // microns
	Density          float64 `yaml:"density" env:"STARLAB_DENSITY"`                       // g/cm^3
	Concentration    float64 `yaml:"concentration" env:"STARLAB_CONCENTRATION"`           // ppm
	ElementMolarMass float64 `yaml:"element_molar_mass" env:"STARLAB_ELEMENT_MOLAR_MASS"` // g/mol
	MeanMolarMass    float64 `yaml:"mean_molar_mass" env:"STARLAB_MEAN_MOLAR_MASS"`       // g/mol per atom
	Convention       string  `yaml:"convention" env:"STARLAB_CONVENTION"`                 // "weight" or "number"
}

type Parameters struct {
	Mode    mode.Mode     `yaml:"-" env:"-"`
	Format  format.Format `yaml:"-" env:"-"`
	Streaks Streaks       `yaml:"streaks"`
	Grain   Grain         `yaml:"grain"`
}

// Default returns the parameter set of the worked examples: streaks of seven
// in 100 flips, and a one-micron silicon carbide grain with 40 ppm of a
// trace element of molar mass 28 g/mol.
func Default() *Parameters {
	return &Parameters{
		Streaks: Streaks{
			Trials: 100000,
			Flips:  100,
			Length: 7,
			Seed:   1,
		},
		Grain: Grain{
			Diameter:         1.0,
			Density:          3.16,
			Concentration:    40,
			ElementMolarMass: 28,
			MeanMolarMass:    20,
			Convention:       "weight",
		},
	}
}

// Load reads a YAML parameter file over the defaults.
func Load(path string) (*Parameters, error) {
	p := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read parameter file: %w", err)
	}
	if err := yaml.Unmarshal(data, p); err != nil {
		return nil, fmt.Errorf("failed to parse parameter file: %w", err)
	}
	return p, nil
}

// ApplyEnv overrides fields from STARLAB_* environment variables.
func (p *Parameters) ApplyEnv() error {
	if err := env.Parse(p); err != nil {
		return fmt.Errorf("failed to parse environment: %w", err)
	}
	return nil
}
